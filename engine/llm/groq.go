package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/remindly/remindly/engine/core"
)

const (
	// DefaultModel is used when a request does not name a model.
	DefaultModel = "llama-3.3-70b-versatile"

	groqBaseURL = "https://api.groq.com/openai/v1"
)

// GroqConfig configures the Groq-backed client.
type GroqConfig struct {
	APIKey string
	APIURL string
	Model  string
}

// GroqClient talks to the Groq OpenAI-compatible API through langchaingo.
type GroqClient struct {
	model        llms.Model
	defaultModel string
}

// NewGroqClient creates a Groq client. The API key is mandatory; the base
// URL and default model fall back to Groq's public endpoint and
// DefaultModel.
func NewGroqClient(cfg *GroqConfig) (*GroqClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: api key is required")
	}
	baseURL := groqBaseURL
	if cfg.APIURL != "" {
		baseURL = cfg.APIURL
	}
	defaultModel := cfg.Model
	if defaultModel == "" {
		defaultModel = DefaultModel
	}
	model, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(defaultModel),
	)
	if err != nil {
		return nil, fmt.Errorf("groq: creating client: %w", err)
	}
	return &GroqClient{model: model, defaultModel: defaultModel}, nil
}

// Generate performs a single blocking completion round trip.
func (c *GroqClient) Generate(ctx context.Context, req *Request) (*Completion, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("groq: at least one message is required")
	}
	messages := make([]llms.MessageContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role, err := chatMessageType(msg.Role)
		if err != nil {
			return nil, err
		}
		messages = append(messages, llms.TextParts(role, msg.Content))
	}
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}
	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(req.Temperature),
	)
	if err != nil {
		return nil, core.NewError(err, core.ErrCodeLLMUnavailable, "groq: generate content failed")
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq: model returned no choices")
	}
	completion := &Completion{Model: model}
	for i, choice := range resp.Choices {
		completion.Choices = append(completion.Choices, Choice{
			Index:        i,
			Message:      Message{Role: RoleAssistant, Content: choice.Content},
			FinishReason: choice.StopReason,
		})
	}
	return completion, nil
}

func chatMessageType(role string) (llms.ChatMessageType, error) {
	switch strings.ToLower(role) {
	case RoleSystem:
		return llms.ChatMessageTypeSystem, nil
	case RoleUser, "":
		return llms.ChatMessageTypeHuman, nil
	case RoleAssistant:
		return llms.ChatMessageTypeAI, nil
	default:
		return "", fmt.Errorf("groq: unsupported message role %q", role)
	}
}
