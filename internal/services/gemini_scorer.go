package services

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

// GeminiScorer asks Gemini for a JSON reply. If client is nil, scoring is disabled.
type GeminiScorer struct {
	client *genai.Client
	model  string
}

func NewGeminiScorer(ctx context.Context, apiKey, model string) (*GeminiScorer, error) {
	if model == "" {
		model = constants.DefaultGeminiModel
	}
	if apiKey == "" {
		return &GeminiScorer{client: nil, model: model}, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiScorer{client: c, model: model}, nil
}

func (s *GeminiScorer) Provider() string { return constants.AnalysisProviderGemini }
func (s *GeminiScorer) Model() string    { return s.model }
func (s *GeminiScorer) Configured() bool { return s.client != nil }

func (s *GeminiScorer) Score(ctx context.Context, system, prompt string) (string, error) {
	if s.client == nil {
		return "", utils.ErrScorerNotConfigured
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", utils.ErrScorerUpstream, err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini: no content generated", utils.ErrScorerUpstream)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: gemini: empty response", utils.ErrScorerUpstream)
	}
	return text.String(), nil
}
