package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill-finder/internal/domain/conversation"
	"skill-finder/internal/domain/skill"
	"skill-finder/internal/repository"
)

type mockTurnRepo struct {
	appended []repository.Turn
	turns    []repository.Turn
	err      error
}

func (m *mockTurnRepo) Append(_ context.Context, turn repository.Turn) (repository.Turn, error) {
	if m.err != nil {
		return repository.Turn{}, m.err
	}
	turn.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.appended = append(m.appended, turn)
	return turn, nil
}

func (m *mockTurnRepo) ListBySession(context.Context, string) ([]repository.Turn, error) {
	return m.turns, m.err
}

type mockAnalyzer struct {
	res conversation.Result
}

func (m mockAnalyzer) Analyze(context.Context, string) conversation.Result { return m.res }

type mockCache struct {
	deleted []string
	setKeys []string
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (m *mockCache) SetJSON(_ context.Context, key string, _ any, _ time.Duration) error {
	m.setKeys = append(m.setKeys, key)
	return nil
}
func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func TestChat_BlankMessage(t *testing.T) {
	uc := NewChatUsecase(mockAnalyzer{}, &mockTurnRepo{}, nil, nil)
	if _, err := uc.Chat(context.Background(), "", "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChat_GeneratesSessionID(t *testing.T) {
	repo := &mockTurnRepo{}
	uc := NewChatUsecase(mockAnalyzer{res: conversation.Result{Reply: "ok"}}, repo, nil, nil)

	res, err := uc.Chat(context.Background(), "", "I use python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SessionID == "" {
		t.Fatal("expected generated session id")
	}
	if len(repo.appended) != 1 || repo.appended[0].SessionID != res.SessionID {
		t.Fatalf("turn not persisted under session: %+v", repo.appended)
	}
}

func TestChat_PersistsAndInvalidatesCache(t *testing.T) {
	repo := &mockTurnRepo{}
	c := &mockCache{}
	analyzer := mockAnalyzer{res: conversation.Result{
		Reply:  "found skills",
		Skills: []skill.Extracted{{Name: "Python", Category: "Programming Language", Confidence: 0.7, Evidence: "python"}},
	}}
	uc := NewChatUsecase(analyzer, repo, c, nil)

	res, err := uc.Chat(context.Background(), "sess-1", "python here")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SessionID != "sess-1" {
		t.Fatalf("client session id must be kept, got %q", res.SessionID)
	}
	if res.Reply != "found skills" || len(res.Skills) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Timestamp.IsZero() {
		t.Fatal("timestamp must come from the stored turn")
	}
	if len(c.deleted) != 1 || c.deleted[0] != "profile:sess-1" {
		t.Fatalf("profile cache must be invalidated, got %v", c.deleted)
	}
}

func TestChat_PersistFailure(t *testing.T) {
	repo := &mockTurnRepo{err: errors.New("db down")}
	uc := NewChatUsecase(mockAnalyzer{res: conversation.Result{Reply: "ok"}}, repo, nil, nil)

	if _, err := uc.Chat(context.Background(), "s", "python"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
