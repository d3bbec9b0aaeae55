package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"skill-finder/internal/domain/conversation"
	"skill-finder/internal/domain/skill"
	"skill-finder/internal/infrastructure/cache"
	"skill-finder/internal/repository"
	"skill-finder/internal/ws"

	"github.com/google/uuid"
)

// Analyzer is the analysis entry point the chat and match usecases share.
type Analyzer interface {
	Analyze(ctx context.Context, message string) conversation.Result
}

// ProfileCache abstracts the Redis profile cache so usecases can be tested
// without a server.
type ProfileCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type ChatResult struct {
	SessionID string
	Reply     string
	Skills    []skill.Extracted
	Timestamp time.Time
}

type ChatUsecase interface {
	Chat(ctx context.Context, sessionID, message string) (ChatResult, error)
}

type Chat struct {
	analyzer Analyzer
	turns    repository.TurnRepository
	cache    ProfileCache
	logger   *log.Logger
}

func NewChatUsecase(analyzer Analyzer, turns repository.TurnRepository, profileCache ProfileCache, logger *log.Logger) *Chat {
	return &Chat{analyzer: analyzer, turns: turns, cache: profileCache, logger: logger}
}

// Chat analyzes one message, persists the turn, and returns the reply. A blank
// session id gets a fresh UUID so follow-up messages can keep the thread.
func (u *Chat) Chat(ctx context.Context, sessionID, message string) (ChatResult, error) {
	if strings.TrimSpace(message) == "" {
		return ChatResult{}, ErrInvalidInput
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	res := u.analyzer.Analyze(ctx, message)

	turn, err := u.turns.Append(ctx, repository.Turn{
		SessionID:   sessionID,
		UserMessage: message,
		BotResponse: res.Reply,
		Skills:      res.Skills,
	})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("Chat persist failed | session_id=%s err=%v", sessionID, err)
		}
		return ChatResult{}, ErrInternal
	}

	// The stored history changed, so any cached profile is stale.
	if u.cache != nil {
		_ = u.cache.Delete(ctx, cache.ProfileKey(sessionID))
	}

	ws.NotifySkillsExtracted(sessionID, res.Skills)

	return ChatResult{
		SessionID: sessionID,
		Reply:     res.Reply,
		Skills:    res.Skills,
		Timestamp: turn.CreatedAt,
	}, nil
}
