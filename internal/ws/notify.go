package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"skill-finder/internal/domain/skill"
)

// SkillsExtractedEvent is broadcast after each persisted chat turn.
type SkillsExtractedEvent struct {
	Type      string   `json:"type"`
	SessionID string   `json:"session_id"`
	Skills    []string `json:"skills"`
	Timestamp string   `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifySkillsExtracted broadcasts the skill names found in one turn. A nil
// default hub means no websocket listeners are configured; the call is a no-op.
func NotifySkillsExtracted(sessionID string, skills []skill.Extracted) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return
	}

	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}

	evt := SkillsExtractedEvent{
		Type:      "skills_extracted",
		SessionID: sessionID,
		Skills:    names,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
