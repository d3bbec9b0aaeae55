package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"skill-finder/internal/domain/conversation"
	"skill-finder/internal/domain/skill"
)

// dictAnalyzer runs the real deterministic path against the default catalog.
type dictAnalyzer struct {
	dict *skill.Dictionary
}

func (a dictAnalyzer) Analyze(_ context.Context, message string) conversation.Result {
	skills := a.dict.Extract(message)
	return conversation.Result{Reply: conversation.Compose(message, skills), Skills: skills}
}

func TestMatch_BlankInputs(t *testing.T) {
	uc := NewMatchUsecase(mockAnalyzer{})

	if _, err := uc.Match(context.Background(), "  ", "job"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Match(context.Background(), "cand", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatch_Overlap(t *testing.T) {
	uc := NewMatchUsecase(dictAnalyzer{dict: skill.MustDefaultDictionary()})

	res, err := uc.Match(context.Background(), "Python SQL", "Python Java SQL")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(res.MatchedSkills, []string{"python", "sql"}) {
		t.Fatalf("matched: %v", res.MatchedSkills)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"java"}) {
		t.Fatalf("missing: %v", res.MissingSkills)
	}
	if len(res.ExtraSkills) != 0 {
		t.Fatalf("extra: %v", res.ExtraSkills)
	}
	if math.Abs(res.MatchScore-2.0/3.0) > 1e-9 {
		t.Fatalf("score: %v", res.MatchScore)
	}
}

func TestMatch_NoJDSkills(t *testing.T) {
	uc := NewMatchUsecase(dictAnalyzer{dict: skill.MustDefaultDictionary()})

	res, err := uc.Match(context.Background(), "Python SQL", "looking for a friendly person")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.MatchScore != 0.0 {
		t.Fatalf("expected zero score, got %v", res.MatchScore)
	}
}
