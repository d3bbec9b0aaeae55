package usecase

import (
	"context"
	"log"
	"strings"

	"skill-finder/internal/domain/skill"
	"skill-finder/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID       uuid.UUID
	Name     string
	Category string
	Aliases  []string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	AddSkill(ctx context.Context, name, category string, aliases []string) (SkillItem, error)
}

type Skill struct {
	repo   repository.SkillRepository
	store  *skill.Store
	logger *log.Logger
}

func NewSkillUsecase(repo repository.SkillRepository, store *skill.Store, logger *log.Logger) *Skill {
	return &Skill{repo: repo, store: store, logger: logger}
}

func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name, Category: it.Category, Aliases: it.Aliases})
	}
	return out, nil
}

// AddSkill stores a dictionary extension and makes it live immediately. A name
// or alias that collides with the current dictionary is a conflict.
func (u *Skill) AddSkill(ctx context.Context, name, category string, aliases []string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	normalized := make([]string, 0, len(aliases))
	for _, a := range aliases {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		normalized = append(normalized, a)
	}
	if len(normalized) == 0 {
		normalized = []string{strings.ToLower(name)}
	}

	def := skill.Definition{Name: name, Category: strings.TrimSpace(category), Aliases: normalized}

	// Validate against the live dictionary before touching the database.
	if _, err := u.store.Current().Extend(def); err != nil {
		return SkillItem{}, ErrConflict
	}

	created, err := u.repo.CreateSkill(ctx, def.Name, def.Category, def.Aliases)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("Skill persist failed | name=%s err=%v", name, err)
		}
		return SkillItem{}, ErrInternal
	}

	if err := u.store.Extend(def); err != nil {
		// A concurrent extension claimed the alias between validation and
		// swap; the stored row still wins at next startup merge.
		if u.logger != nil {
			u.logger.Printf("Dictionary extend skipped | name=%s err=%v", name, err)
		}
	}

	return SkillItem{ID: created.ID, Name: created.Name, Category: created.Category, Aliases: created.Aliases}, nil
}
