package usecase

import (
	"context"
	"strings"

	"skill-finder/internal/domain/matching"
)

type MatchUsecase interface {
	Match(ctx context.Context, candidateText, jobDescription string) (matching.Result, error)
}

type Match struct {
	analyzer Analyzer
}

func NewMatchUsecase(analyzer Analyzer) *Match {
	return &Match{analyzer: analyzer}
}

// Match analyzes both texts independently and compares the resulting skill
// sets. The replies are discarded; only the skills matter here.
func (u *Match) Match(ctx context.Context, candidateText, jobDescription string) (matching.Result, error) {
	if strings.TrimSpace(candidateText) == "" || strings.TrimSpace(jobDescription) == "" {
		return matching.Result{}, ErrInvalidInput
	}

	cand := u.analyzer.Analyze(ctx, candidateText)
	jd := u.analyzer.Analyze(ctx, jobDescription)

	return matching.Compare(cand.Skills, jd.Skills), nil
}
