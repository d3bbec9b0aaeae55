package usecase

import (
	"context"
	"log"
	"strings"

	"skill-finder/internal/domain/profile"
	"skill-finder/internal/domain/skill"
	"skill-finder/internal/infrastructure/cache"
	"skill-finder/internal/repository"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, sessionID string) (profile.Profile, error)
}

type Profile struct {
	turns  repository.TurnRepository
	cache  ProfileCache
	logger *log.Logger
}

func NewProfileUsecase(turns repository.TurnRepository, profileCache ProfileCache, logger *log.Logger) *Profile {
	return &Profile{turns: turns, cache: profileCache, logger: logger}
}

// GetProfile aggregates the session's stored turns. A session with zero turns
// is indistinguishable from one that never existed and reports not-found.
func (u *Profile) GetProfile(ctx context.Context, sessionID string) (profile.Profile, error) {
	if strings.TrimSpace(sessionID) == "" {
		return profile.Profile{}, ErrInvalidInput
	}

	key := cache.ProfileKey(sessionID)
	if u.cache != nil {
		var cached profile.Profile
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	turns, err := u.turns.ListBySession(ctx, sessionID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("Profile list failed | session_id=%s err=%v", sessionID, err)
		}
		return profile.Profile{}, ErrInternal
	}
	if len(turns) == 0 {
		return profile.Profile{}, ErrSessionNotFound
	}

	turnSkills := make([][]skill.Extracted, 0, len(turns))
	for _, t := range turns {
		turnSkills = append(turnSkills, t.Skills)
	}

	prof := profile.Aggregate(sessionID, turnSkills)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, prof, 0)
	}

	return prof, nil
}
