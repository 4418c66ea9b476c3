package extract

import (
	"strings"

	"github.com/remindly/remindly/engine/task"
)

// Fields is the structured payload the extraction model returns. All
// fields are optional on the wire; Normalize fills the gaps so a Task can
// always be built from the result.
type Fields struct {
	Summary  string `json:"summary"`
	Deadline string `json:"deadline"`
	Fine     string `json:"fine"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

// Normalize trims whitespace, applies the absent-field sentinels and
// canonicalizes the enum fields. The model is prompted for exact enum
// strings but is not trusted to deliver them.
func (f *Fields) Normalize() {
	f.Summary = strings.TrimSpace(f.Summary)
	f.Deadline = strings.TrimSpace(f.Deadline)
	f.Fine = strings.TrimSpace(f.Fine)
	if f.Deadline == "" {
		f.Deadline = task.DeadlineNotFound
	}
	if f.Fine == "" {
		f.Fine = task.FineNone
	}
	f.Priority = canonicalPriority(f.Priority)
	f.Category = canonicalCategory(f.Category)
}

func canonicalPriority(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return string(task.PriorityHigh)
	case "low":
		return string(task.PriorityLow)
	default:
		return string(task.PriorityMedium)
	}
}

func canonicalCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return task.CategoryGeneral
	}
	for _, known := range task.Categories {
		if strings.EqualFold(trimmed, known) {
			return known
		}
	}
	if strings.EqualFold(trimmed, task.CategoryGeneral) {
		return task.CategoryGeneral
	}
	return trimmed
}
