package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-finder/internal/domain/skill"
	"skill-finder/internal/repository"

	"github.com/google/uuid"
)

type mockSkillRepo struct {
	items   []repository.StoredSkill
	created []repository.StoredSkill
	err     error
}

func (m *mockSkillRepo) GetAllSkills(context.Context) ([]repository.StoredSkill, error) {
	return m.items, m.err
}

func (m *mockSkillRepo) CreateSkill(_ context.Context, name, category string, aliases []string) (repository.StoredSkill, error) {
	if m.err != nil {
		return repository.StoredSkill{}, m.err
	}
	s := repository.StoredSkill{ID: uuid.New(), Name: name, Category: category, Aliases: aliases}
	m.created = append(m.created, s)
	return s, nil
}

func TestAddSkill_ExtendsLiveDictionary(t *testing.T) {
	store := skill.NewStore(skill.MustDefaultDictionary())
	uc := NewSkillUsecase(&mockSkillRepo{}, store, nil)

	created, err := uc.AddSkill(context.Background(), "Terraform", "DevOps", []string{"Terraform", "  TF  "})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Name != "Terraform" {
		t.Fatalf("unexpected item: %+v", created)
	}

	got := store.Current().Extract("we ship with terraform")
	if len(got) != 1 || got[0].Name != "Terraform" {
		t.Fatalf("new skill must be live immediately, got %+v", got)
	}
}

func TestAddSkill_AliasConflict(t *testing.T) {
	store := skill.NewStore(skill.MustDefaultDictionary())
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo, store, nil)

	// "py" already belongs to Python.
	if _, err := uc.AddSkill(context.Background(), "Pytest", "Testing", []string{"py"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatal("conflicting skill must not be persisted")
	}
}

func TestAddSkill_BlankName(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, skill.NewStore(skill.MustDefaultDictionary()), nil)
	if _, err := uc.AddSkill(context.Background(), "  ", "", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAddSkill_DefaultsAliasToName(t *testing.T) {
	store := skill.NewStore(skill.MustDefaultDictionary())
	repo := &mockSkillRepo{}
	uc := NewSkillUsecase(repo, store, nil)

	if _, err := uc.AddSkill(context.Background(), "Elixir", "Programming Language", nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 || len(repo.created[0].Aliases) != 1 || repo.created[0].Aliases[0] != "elixir" {
		t.Fatalf("expected lowercased name as alias, got %+v", repo.created)
	}
}
