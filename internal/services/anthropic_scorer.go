package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

const anthropicMaxTokens = 4096

// AnthropicScorer wraps the Claude Messages API. If client is nil, scoring
// is disabled.
type AnthropicScorer struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicScorer creates the scorer. Pass an empty apiKey to disable calls.
// Extra options are appended after the key (tests point the base URL at a fake).
func NewAnthropicScorer(apiKey, model string, opts ...option.RequestOption) *AnthropicScorer {
	if model == "" {
		model = constants.DefaultAnthropicModel
	}
	if apiKey == "" {
		return &AnthropicScorer{client: nil, model: model}
	}
	all := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	c := anthropic.NewClient(all...)
	return &AnthropicScorer{client: &c, model: model}
}

func (s *AnthropicScorer) Provider() string { return constants.AnalysisProviderAnthropic }
func (s *AnthropicScorer) Model() string    { return s.model }
func (s *AnthropicScorer) Configured() bool { return s.client != nil }

func (s *AnthropicScorer) Score(ctx context.Context, system, prompt string) (string, error) {
	if s.client == nil {
		return "", utils.ErrScorerNotConfigured
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: anthropic: %v", utils.ErrScorerUpstream, err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: anthropic: empty response", utils.ErrScorerUpstream)
	}
	return text.String(), nil
}
