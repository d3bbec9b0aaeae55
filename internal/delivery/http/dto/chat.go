package dto

import (
	"time"

	"skill-finder/internal/domain/skill"
)

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type SkillResponse struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

type ChatResponse struct {
	SessionID string          `json:"session_id"`
	Reply     string          `json:"reply"`
	Skills    []SkillResponse `json:"skills"`
	Timestamp time.Time       `json:"timestamp"`
}

func ToSkillResponses(skills []skill.Extracted) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse(s))
	}
	return out
}
