package usecase

import (
	"context"
	"log"
	"strings"

	"skill-finder/internal/repository"
)

type ConversationUsecase interface {
	ListTurns(ctx context.Context, sessionID string) ([]repository.Turn, error)
}

type Conversation struct {
	turns  repository.TurnRepository
	logger *log.Logger
}

func NewConversationUsecase(turns repository.TurnRepository, logger *log.Logger) *Conversation {
	return &Conversation{turns: turns, logger: logger}
}

// ListTurns returns the session history in creation order. An unknown session
// is an empty list, not an error; only the profile endpoint treats emptiness
// as not-found.
func (u *Conversation) ListTurns(ctx context.Context, sessionID string) ([]repository.Turn, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}

	turns, err := u.turns.ListBySession(ctx, sessionID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("Conversation list failed | session_id=%s err=%v", sessionID, err)
		}
		return nil, ErrInternal
	}
	return turns, nil
}
