package services

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/config"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/constants"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/utils"
)

const defaultChatPersona = "You are the Golden Visa Portal assistant. You help foreign investors " +
	"understand the Portuguese Golden Visa programme, their investment and the status of their application. " +
	"Be concise and factual, and recommend a licensed lawyer for legal advice."

var defaultChatFacts = []string{
	"The Golden Visa is a residence-by-investment permit issued by Portugal.",
	"Applicants keep the qualifying investment for at least five years.",
	"The minimum stay is seven days in the first year and fourteen days in each following two-year period.",
	"After five years the investor may apply for permanent residence or citizenship.",
	"Qualifying routes include investment funds and research and development contributions.",
	"Biometrics are collected in person at the immigration office.",
}

// ChatService relays a conversation to the Grok chat-completions endpoint.
// If client is nil, every call fails with ErrChatNotConfigured.
type ChatService struct {
	client       *openai.Client
	model        string
	systemPrompt string
}

// NewChatService creates the relay. Pass an empty apiKey to disable calls.
func NewChatService(apiKey, baseURL, model string, chatCfg config.ChatConfig) *ChatService {
	if model == "" {
		model = constants.DefaultGrokModel
	}
	if baseURL == "" {
		baseURL = constants.DefaultGrokBaseURL
	}
	s := &ChatService{model: model, systemPrompt: BuildChatSystemPrompt(chatCfg)}
	if apiKey == "" {
		return s
	}
	c := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)
	s.client = &c
	return s
}

// BuildChatSystemPrompt joins the persona and the domain facts.
func BuildChatSystemPrompt(cfg config.ChatConfig) string {
	persona := strings.TrimSpace(cfg.Persona)
	if persona == "" {
		persona = defaultChatPersona
	}
	facts := cfg.Facts
	if len(facts) == 0 {
		facts = defaultChatFacts
	}

	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\nKey facts:\n")
	for _, f := range facts {
		b.WriteString("- ")
		b.WriteString(strings.TrimSpace(f))
		b.WriteString("\n")
	}
	return b.String()
}

// Reply sends system prompt, history and the new message, and returns the
// first choice's text. There is no retry.
func (s *ChatService) Reply(ctx context.Context, message string, history []dtos.ChatMessage) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", utils.ErrChatMessageRequired
	}
	if s.client == nil {
		return "", utils.ErrChatNotConfigured
	}

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	msgs = append(msgs, openai.SystemMessage(s.systemPrompt))
	for _, h := range history {
		if strings.EqualFold(h.Role, "assistant") {
			msgs = append(msgs, openai.AssistantMessage(h.Content))
		} else {
			msgs = append(msgs, openai.UserMessage(h.Content))
		}
	}
	msgs = append(msgs, openai.UserMessage(message))

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(s.model),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrChatUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", utils.ErrChatUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}
