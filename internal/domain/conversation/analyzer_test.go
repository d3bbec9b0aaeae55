package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"skill-finder/internal/domain/skill"
)

type mockGenerator struct {
	res   Result
	err   error
	calls int
}

func (m *mockGenerator) Generate(context.Context, string) (Result, error) {
	m.calls++
	return m.res, m.err
}

func testDict() func() *skill.Dictionary {
	d := skill.MustDefaultDictionary()
	return func() *skill.Dictionary { return d }
}

func TestAnalyze_DeterministicOnly(t *testing.T) {
	a := NewAnalyzer(testDict(), nil, time.Second, nil)

	res := a.Analyze(context.Background(), "I use python and docker")
	if len(res.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %+v", res.Skills)
	}
	if !strings.Contains(res.Reply, "Python, Docker") {
		t.Fatalf("unexpected reply: %q", res.Reply)
	}
}

func TestAnalyze_GeneratorSuccess(t *testing.T) {
	gen := &mockGenerator{res: Result{
		Reply: "generated reply",
		Skills: []skill.Extracted{
			{Name: "Python", Category: "Programming Language", Confidence: 0.9, Evidence: "python"},
			{Name: "   ", Category: "junk", Confidence: 0.1},
		},
	}}
	a := NewAnalyzer(testDict(), gen, time.Second, nil)

	res := a.Analyze(context.Background(), "whatever")
	if gen.calls != 1 {
		t.Fatalf("expected one generator call, got %d", gen.calls)
	}
	if res.Reply != "generated reply" {
		t.Fatalf("unexpected reply: %q", res.Reply)
	}
	if len(res.Skills) != 1 || res.Skills[0].Name != "Python" {
		t.Fatalf("blank-named entries must be dropped, got %+v", res.Skills)
	}
}

func TestAnalyze_GeneratorFailureFallsBack(t *testing.T) {
	gen := &mockGenerator{err: errors.New("quota exceeded")}
	a := NewAnalyzer(testDict(), gen, time.Second, nil)

	res := a.Analyze(context.Background(), "I use sql daily")
	if len(res.Skills) != 1 || res.Skills[0].Name != "SQL" {
		t.Fatalf("fallback extraction expected, got %+v", res.Skills)
	}
	if res.Reply == "" {
		t.Fatal("fallback must still compose a reply")
	}
}

func TestAnalyze_TotalOverEmptyInput(t *testing.T) {
	a := NewAnalyzer(testDict(), nil, time.Second, nil)

	res := a.Analyze(context.Background(), "")
	if res.Reply == "" {
		t.Fatal("empty input must still yield a reply")
	}
	if len(res.Skills) != 0 {
		t.Fatalf("empty input must yield no skills, got %+v", res.Skills)
	}
}
