package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"skill-finder/internal/config"
	"skill-finder/internal/domain/conversation"
	"skill-finder/internal/domain/skill"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Generator is the enhanced analysis path backed by Gemini. It implements
// conversation.Generator; every failure mode surfaces as an error so the
// analyzer can fall back.
type Generator struct {
	client    *genai.Client
	modelName string
	breaker   *gobreaker.CircuitBreaker[generation]
	logger    *log.Logger
}

// generation mirrors the JSON shape we instruct the model to return.
type generation struct {
	Reply  string            `json:"assistant_response"`
	Skills []generationSkill `json:"skills"`
}

type generationSkill struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Evidence   string  `json:"evidence"`
}

// NewGenerator creates the Gemini-backed generator. The API key must be set;
// callers decide beforehand whether the enhanced path is enabled at all.
func NewGenerator(ctx context.Context, cfg config.AIConfig, logger *log.Logger) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.GeminiAPIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := strings.TrimSpace(cfg.GeminiModel)
	if model == "" {
		model = defaultModel
	}

	return &Generator{
		client:    client,
		modelName: model,
		breaker:   newBreaker(logger),
		logger:    logger,
	}, nil
}

// Generate asks the model to chat and extract skills in one shot. The caller
// bounds ctx with a timeout.
func (g *Generator) Generate(ctx context.Context, message string) (conversation.Result, error) {
	if g == nil || g.client == nil {
		return conversation.Result{}, errors.New("generator is not initialized")
	}

	gen, err := g.breaker.Execute(func() (generation, error) {
		return g.generate(ctx, message)
	})
	if err != nil {
		return conversation.Result{}, err
	}

	return toResult(gen)
}

func (g *Generator) generate(ctx context.Context, message string) (generation, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(buildPrompt(message)), cfg)
	if err != nil {
		return generation{}, fmt.Errorf("generate content: %w", err)
	}

	raw := collectText(resp)
	if raw == "" {
		return generation{}, errors.New("gemini returned empty response")
	}

	var gen generation
	if err := json.Unmarshal([]byte(raw), &gen); err != nil {
		return generation{}, fmt.Errorf("parse model output: %w", err)
	}
	return gen, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}
	return strings.TrimSpace(b.String())
}

func toResult(gen generation) (conversation.Result, error) {
	reply := strings.TrimSpace(gen.Reply)
	if reply == "" {
		return conversation.Result{}, errors.New("model output has no assistant_response")
	}

	skills := make([]skill.Extracted, 0, len(gen.Skills))
	for _, s := range gen.Skills {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			continue
		}
		conf := s.Confidence
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		skills = append(skills, skill.Extracted{
			Name:       name,
			Category:   strings.TrimSpace(s.Category),
			Confidence: conf,
			Evidence:   strings.TrimSpace(s.Evidence),
		})
	}

	return conversation.Result{Reply: reply, Skills: skills}, nil
}
