package uc

import (
	"context"
	"errors"
	"fmt"

	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/pkg/logger"
)

// CompleteTask transitions a task to completed. Completion is a status
// change, not removal: the record stays in the store and the transition
// never reverts.
type CompleteTask struct {
	repo Repository
	id   core.ID
}

func NewCompleteTask(repo Repository, id core.ID) *CompleteTask {
	return &CompleteTask{repo: repo, id: id}
}

func (uc *CompleteTask) Execute(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := uc.repo.SetStatus(ctx, uc.id, task.StatusCompleted); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return core.NewError(err, core.ErrCodeNotFound, fmt.Sprintf("task %s does not exist", uc.id))
		}
		return core.NewError(err, core.ErrCodeStore, fmt.Sprintf("failed to mark task %s as completed", uc.id))
	}
	log.Info("Task marked as completed", "task_id", uc.id)
	return nil
}
