package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/remindly/remindly/engine/extract"
	"github.com/remindly/remindly/engine/llm"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/pkg/logger"
)

// NoPendingTasksMessage is returned without a model call when there is
// nothing to analyze.
const NoPendingTasksMessage = "No pending tasks to analyze. Great job staying on top of things!"

// suggestionTemperature keeps suggestions varied between requests, unlike
// the deterministic extraction call.
const suggestionTemperature = 0.7

const suggestionPrompt = `Analyze these tasks and provide 3-5 specific, actionable suggestions to optimize productivity and meet deadlines. Consider priorities, deadlines, categories, and potential conflicts. Be concise but helpful.

Tasks:
%s

Return suggestions as a JSON array of strings.`

// Synthesizer summarizes pending tasks into a compact prompt and asks the
// model for actionable suggestions.
type Synthesizer struct {
	client llm.Client
	model  string
}

func NewSynthesizer(client llm.Client, model string) *Synthesizer {
	if model == "" {
		model = llm.DefaultModel
	}
	return &Synthesizer{client: client, model: model}
}

// Suggest returns 3-5 suggestion strings for the given pending tasks.
// With zero pending tasks it short-circuits to a canned encouragement and
// makes no model call. Model responses are parsed best-effort: a response
// that cannot be parsed degrades to a one-element list, never an error.
func (s *Synthesizer) Suggest(ctx context.Context, pending []*task.Task) ([]string, error) {
	if len(pending) == 0 {
		return []string{NoPendingTasksMessage}, nil
	}
	log := logger.FromContext(ctx)
	req := &llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(suggestionPrompt, renderTaskLines(pending)),
		}},
		Model:       s.model,
		Temperature: suggestionTemperature,
	}
	completion, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suggestion model call: %w", err)
	}
	suggestions := extract.ParseStringList(completion.Content())
	log.Debug("Synthesized suggestions", "count", len(suggestions))
	return suggestions, nil
}

// renderTaskLines formats one line per task for the prompt.
func renderTaskLines(tasks []*task.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("- %s priority: %s (Deadline: %s, Category: %s)",
			t.Priority, t.Summary, t.Deadline, t.Category))
	}
	return strings.Join(lines, "\n")
}
