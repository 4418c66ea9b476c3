package task

import (
	"time"

	"github.com/remindly/remindly/engine/core"
)

// Priority is the model-assigned importance of a task.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank maps a priority to its sort rank, High first. Unknown values
// rank after Low so malformed model output never floats to the top.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Status tracks the task lifecycle. Tasks start pending and only ever
// move to completed; they are never deleted.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Sentinel values the extraction model uses for absent fields. These are
// distinct from empty strings and survive round trips through the store.
const (
	DeadlineNotFound = "Not Found"
	FineNone         = "None"
)

// CategoryGeneral is the fallback when the model omits a category. It sits
// outside the canonical set below on purpose: the upstream contract
// defaults to "General" and clients already group by it.
const CategoryGeneral = "General"

// Categories is the canonical category set offered to the model.
var Categories = []string{"Work", "Personal", "Health", "Finance", "Education", "Other"}

// Task is the unit of persisted work produced by the extraction pipeline.
type Task struct {
	ID        core.ID   `db:"id"         json:"id"`
	Summary   string    `db:"summary"    json:"summary"`
	Deadline  string    `db:"deadline"   json:"deadline"`
	Fine      string    `db:"fine"       json:"fine"`
	Priority  Priority  `db:"priority"   json:"priority"`
	Category  string    `db:"category"   json:"category"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Status    Status    `db:"status"     json:"status"`
}

// Urgency classifies remaining time to deadline for notifications. It is
// independent of Priority.
type Urgency string

const (
	UrgencyUrgent  Urgency = "urgent"
	UrgencyWarning Urgency = "warning"
	UrgencyNormal  Urgency = "normal"
)

func (u Urgency) Rank() int {
	switch u {
	case UrgencyUrgent:
		return 1
	case UrgencyWarning:
		return 2
	case UrgencyNormal:
		return 3
	default:
		return 4
	}
}

// Notification is derived per request from pending tasks and never persisted.
type Notification struct {
	ID             core.ID  `json:"id"`
	Summary        string   `json:"summary"`
	Deadline       string   `json:"deadline"`
	Priority       Priority `json:"priority"`
	HoursRemaining int      `json:"hoursRemaining"`
	Urgency        Urgency  `json:"urgency"`
}
