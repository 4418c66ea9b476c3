package extract

import (
	"context"
	"fmt"

	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/llm"
	"github.com/remindly/remindly/pkg/logger"
)

// Service turns free-form text into normalized extraction fields via a
// single deterministic model call.
type Service struct {
	client llm.Client
	model  string
}

// NewService creates an extraction service bound to a model identifier.
// An empty model falls back to llm.DefaultModel.
func NewService(client llm.Client, model string) *Service {
	if model == "" {
		model = llm.DefaultModel
	}
	return &Service{client: client, model: model}
}

// ExtractFromText builds the extraction prompt, invokes the model with
// deterministic sampling and parses the response strictly. The call is
// single-shot: any model or parse failure propagates to the caller and
// nothing is persisted.
func (s *Service) ExtractFromText(ctx context.Context, text string) (*Fields, error) {
	log := logger.FromContext(ctx)
	req := &llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: BuildExtractionPrompt(text)}},
		Model:       s.model,
		Temperature: 0,
	}
	completion, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("extraction model call: %w", err)
	}
	fields, err := ParseObject(completion.Content())
	if err != nil {
		log.Error("Extraction response did not parse", "error", err)
		return nil, core.NewError(err, core.ErrCodeMalformed, "model response is not valid extraction JSON")
	}
	fields.Normalize()
	log.Debug("Extracted task fields", "summary", fields.Summary, "priority", fields.Priority, "category", fields.Category)
	return fields, nil
}
