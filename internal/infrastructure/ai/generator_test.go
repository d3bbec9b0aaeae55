package ai

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToResult_Valid(t *testing.T) {
	var gen generation
	raw := `{
		"assistant_response": "Nice stack!",
		"skills": [
			{"name": "Python", "category": "Programming Language", "confidence": 0.92, "evidence": "python"},
			{"name": "  ", "category": "junk", "confidence": 0.1, "evidence": ""},
			{"name": "Docker", "category": "DevOps", "confidence": 1.7, "evidence": "docker"}
		]
	}`
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	res, err := toResult(gen)
	if err != nil {
		t.Fatalf("toResult: %v", err)
	}
	if res.Reply != "Nice stack!" {
		t.Fatalf("reply: %q", res.Reply)
	}
	if len(res.Skills) != 2 {
		t.Fatalf("blank names must be dropped, got %+v", res.Skills)
	}
	if res.Skills[1].Confidence != 1 {
		t.Fatalf("confidence must be clamped to [0,1], got %v", res.Skills[1].Confidence)
	}
}

func TestToResult_MissingReply(t *testing.T) {
	_, err := toResult(generation{Reply: "   "})
	if err == nil || !strings.Contains(err.Error(), "assistant_response") {
		t.Fatalf("expected missing reply error, got %v", err)
	}
}

func TestBuildPrompt_ContainsContextAndMessage(t *testing.T) {
	p := buildPrompt("I write terraform modules")
	if !strings.Contains(p, "[CONTEXT]") || !strings.Contains(p, "Skills Knowledge Base") {
		t.Fatal("prompt must inline the knowledge base context")
	}
	if !strings.Contains(p, "[USER MESSAGE]\nI write terraform modules") {
		t.Fatal("prompt must carry the user message")
	}
	if !strings.Contains(p, "VALID JSON ONLY") {
		t.Fatal("prompt must demand JSON-only output")
	}
}
