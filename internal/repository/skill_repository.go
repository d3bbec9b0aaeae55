package repository

import (
	"context"
	"encoding/json"
	"time"

	"skill-finder/internal/database"

	"github.com/google/uuid"
)

// StoredSkill is an operator-added dictionary extension kept in the skills
// table and merged into the in-memory dictionary.
type StoredSkill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	Aliases   []string
	CreatedAt time.Time
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]StoredSkill, error)
	CreateSkill(ctx context.Context, name, category string, aliases []string) (StoredSkill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]StoredSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, aliases, created_at FROM skills ORDER BY created_at ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]StoredSkill, 0)
	for rows.Next() {
		var s StoredSkill
		var aliasesJSON []byte
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &aliasesJSON, &s.CreatedAt); err != nil {
			return nil, err
		}
		if len(aliasesJSON) > 0 {
			if err := json.Unmarshal(aliasesJSON, &s.Aliases); err != nil {
				s.Aliases = nil
			}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, name, category string, aliases []string) (StoredSkill, error) {
	aliasesJSON, err := json.Marshal(aliases)
	if err != nil {
		return StoredSkill{}, err
	}

	s := StoredSkill{ID: uuid.New(), Name: name, Category: category, Aliases: aliases}
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, category, aliases) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		s.ID, s.Name, s.Category, aliasesJSON,
	)
	if err := row.Scan(&s.CreatedAt); err != nil {
		return StoredSkill{}, err
	}
	return s, nil
}
