package uc

import (
	"context"
	"errors"

	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task"
)

// ErrTaskNotFound is returned when a task id does not exist in the store.
var ErrTaskNotFound = errors.New("task not found")

// Repository defines all data access operations for the task domain. The
// store is append/update-only: tasks are inserted once and mutated only by
// status transition, never deleted.
type Repository interface {
	Insert(ctx context.Context, t *task.Task) error
	ListAll(ctx context.Context) ([]*task.Task, error)
	ListByStatus(ctx context.Context, status task.Status) ([]*task.Task, error)
	ListByCategory(ctx context.Context, category string) ([]*task.Task, error)
	ListCategories(ctx context.Context) ([]string, error)
	SetStatus(ctx context.Context, id core.ID, status task.Status) error
}
