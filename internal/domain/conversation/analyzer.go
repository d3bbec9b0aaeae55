package conversation

import (
	"context"
	"log"
	"strings"
	"time"

	"skill-finder/internal/domain/skill"
)

// Result is one analysis outcome: the reply text and the skills behind it.
type Result struct {
	Reply  string
	Skills []skill.Extracted
}

// Generator is the optional enhanced analysis path. Implementations may call
// out over the network; any error (timeout, quota, malformed output) means the
// attempt is discarded and the deterministic path takes over.
type Generator interface {
	Generate(ctx context.Context, message string) (Result, error)
}

// Analyzer turns one message into a reply and a skill list. It is total: any
// string input, including empty, yields a valid Result without error.
type Analyzer struct {
	dict       func() *skill.Dictionary
	gen        Generator
	genTimeout time.Duration
	logger     *log.Logger
}

// NewAnalyzer wires the analyzer. dict must return the current dictionary.
// gen may be nil, which puts the analyzer in deterministic-only mode.
func NewAnalyzer(dict func() *skill.Dictionary, gen Generator, genTimeout time.Duration, logger *log.Logger) *Analyzer {
	if genTimeout <= 0 {
		genTimeout = 15 * time.Second
	}
	return &Analyzer{dict: dict, gen: gen, genTimeout: genTimeout, logger: logger}
}

// Analyze tries the generator when one is configured and falls back to the
// extractor plus composer on any failure. The fallback is also the normal
// path when no generator is wired.
func (a *Analyzer) Analyze(ctx context.Context, message string) Result {
	if a.gen != nil {
		genCtx, cancel := context.WithTimeout(ctx, a.genTimeout)
		res, err := a.gen.Generate(genCtx, message)
		cancel()
		if err == nil {
			return sanitize(res)
		}
		if a.logger != nil {
			a.logger.Printf("Analyzer fallback | reason=generator_failed err=%v", err)
		}
	}

	skills := a.dict().Extract(message)
	return Result{
		Reply:  Compose(message, skills),
		Skills: skills,
	}
}

// sanitize validates generator output once at the boundary: blank-named
// entries are dropped and the remaining fields are trimmed.
func sanitize(res Result) Result {
	out := make([]skill.Extracted, 0, len(res.Skills))
	for _, s := range res.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		out = append(out, skill.Extracted{
			Name:       name,
			Category:   strings.TrimSpace(s.Category),
			Confidence: s.Confidence,
			Evidence:   strings.TrimSpace(s.Evidence),
		})
	}
	res.Skills = out
	return res
}
