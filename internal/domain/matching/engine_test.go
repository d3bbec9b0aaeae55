package matching

import (
	"math"
	"reflect"
	"testing"

	"skill-finder/internal/domain/skill"
)

func sk(name string) skill.Extracted {
	return skill.Extracted{Name: name, Category: "Skill", Confidence: 0.7, Evidence: name}
}

func TestCompare_Overlap(t *testing.T) {
	cand := []skill.Extracted{sk("Python"), sk("SQL")}
	jd := []skill.Extracted{sk("Python"), sk("Java"), sk("SQL")}

	got := Compare(cand, jd)

	if !reflect.DeepEqual(got.MatchedSkills, []string{"python", "sql"}) {
		t.Fatalf("matched: %v", got.MatchedSkills)
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"java"}) {
		t.Fatalf("missing: %v", got.MissingSkills)
	}
	if len(got.ExtraSkills) != 0 {
		t.Fatalf("extra: %v", got.ExtraSkills)
	}
	if math.Abs(got.MatchScore-2.0/3.0) > 1e-9 {
		t.Fatalf("score: %v", got.MatchScore)
	}
}

func TestCompare_EmptyJD(t *testing.T) {
	got := Compare([]skill.Extracted{sk("Python")}, nil)
	if got.MatchScore != 0.0 {
		t.Fatalf("expected zero score for empty JD, got %v", got.MatchScore)
	}
	if !reflect.DeepEqual(got.ExtraSkills, []string{"python"}) {
		t.Fatalf("extra: %v", got.ExtraSkills)
	}
	if len(got.MatchedSkills) != 0 || len(got.MissingSkills) != 0 {
		t.Fatalf("unexpected overlap: %+v", got)
	}
}

func TestCompare_BlankNamesDropped(t *testing.T) {
	got := Compare(
		[]skill.Extracted{sk("Python"), {Name: "  "}},
		[]skill.Extracted{sk("Python"), {Name: ""}},
	)
	if len(got.CandidateSkills) != 1 || len(got.JDSkills) != 1 {
		t.Fatalf("blank names must be dropped: %+v", got)
	}
	if got.MatchScore != 1.0 {
		t.Fatalf("score: %v", got.MatchScore)
	}
}

func TestCompare_CaseInsensitiveNames(t *testing.T) {
	got := Compare(
		[]skill.Extracted{{Name: "PYTHON", Confidence: 0.7}},
		[]skill.Extracted{{Name: "python", Confidence: 0.7}},
	)
	if !reflect.DeepEqual(got.MatchedSkills, []string{"python"}) {
		t.Fatalf("matched: %v", got.MatchedSkills)
	}
	if got.MatchScore != 1.0 {
		t.Fatalf("score: %v", got.MatchScore)
	}
}

func TestCompare_SortedOutput(t *testing.T) {
	got := Compare(nil, []skill.Extracted{sk("Zig"), sk("Ada"), sk("Go")})
	if !reflect.DeepEqual(got.MissingSkills, []string{"ada", "go", "zig"}) {
		t.Fatalf("missing not sorted: %v", got.MissingSkills)
	}
}
