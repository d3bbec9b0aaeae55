package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"skill-finder/internal/database"
	"skill-finder/internal/domain/skill"

	"github.com/google/uuid"
)

// Turn is one persisted chat exchange. Turns are append-only and ordered by
// (session_id, created_at).
type Turn struct {
	ID          uuid.UUID
	SessionID   string
	UserMessage string
	BotResponse string
	Skills      []skill.Extracted
	CreatedAt   time.Time
}

type TurnRepository interface {
	Append(ctx context.Context, turn Turn) (Turn, error)
	ListBySession(ctx context.Context, sessionID string) ([]Turn, error)
}

type PostgresTurnRepository struct {
	db database.DB
}

func NewPostgresTurnRepository(db database.DB) *PostgresTurnRepository {
	return &PostgresTurnRepository{db: db}
}

func (r *PostgresTurnRepository) Append(ctx context.Context, turn Turn) (Turn, error) {
	if turn.ID == uuid.Nil {
		turn.ID = uuid.New()
	}

	skillsJSON, err := json.Marshal(encodeSkills(turn.Skills))
	if err != nil {
		return Turn{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO conversation_turns (id, session_id, user_message, bot_response, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		turn.ID, turn.SessionID, turn.UserMessage, turn.BotResponse, skillsJSON,
	)
	if err := row.Scan(&turn.CreatedAt); err != nil {
		return Turn{}, err
	}
	return turn, nil
}

func (r *PostgresTurnRepository) ListBySession(ctx context.Context, sessionID string) ([]Turn, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, session_id, user_message, bot_response, skills, created_at
		 FROM conversation_turns
		 WHERE session_id = $1
		 ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Turn, 0)
	for rows.Next() {
		var t Turn
		var skillsJSON []byte
		if err := rows.Scan(&t.ID, &t.SessionID, &t.UserMessage, &t.BotResponse, &skillsJSON, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Skills = DecodeStoredSkills(skillsJSON)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type skillRecord struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

func encodeSkills(skills []skill.Extracted) []skillRecord {
	out := make([]skillRecord, 0, len(skills))
	for _, s := range skills {
		out = append(out, skillRecord(s))
	}
	return out
}

// DecodeStoredSkills parses the stored skill list element by element so one
// malformed record is skipped instead of aborting the whole listing. A payload
// that is not a JSON array at all decodes to an empty list.
func DecodeStoredSkills(data []byte) []skill.Extracted {
	out := make([]skill.Extracted, 0)
	if len(data) == 0 {
		return out
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return out
	}

	for _, item := range raw {
		var rec skillRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		out = append(out, skill.Extracted(rec))
	}
	return out
}
