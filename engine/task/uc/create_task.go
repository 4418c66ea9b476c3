package uc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/pkg/logger"
)

// CreateTaskInput carries the normalized extraction fields a new task is
// built from. Only the extraction pipeline creates tasks.
type CreateTaskInput struct {
	Summary  string
	Deadline string
	Fine     string
	Priority string
	Category string
}

// CreateTask use case for persisting one extracted task.
type CreateTask struct {
	repo  Repository
	input *CreateTaskInput
}

func NewCreateTask(repo Repository, input *CreateTaskInput) *CreateTask {
	return &CreateTask{repo: repo, input: input}
}

// Execute builds and inserts the task. The id and creation timestamp are
// assigned here, never by the model.
func (uc *CreateTask) Execute(ctx context.Context) (*task.Task, error) {
	log := logger.FromContext(ctx)
	summary := strings.TrimSpace(uc.input.Summary)
	if summary == "" {
		return nil, core.NewError(nil, core.ErrCodeEmptyInput, "task summary must not be empty")
	}
	id, err := core.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate task ID: %w", err)
	}
	t := &task.Task{
		ID:        id,
		Summary:   summary,
		Deadline:  uc.input.Deadline,
		Fine:      uc.input.Fine,
		Priority:  task.Priority(uc.input.Priority),
		Category:  uc.input.Category,
		CreatedAt: time.Now().UTC(),
		Status:    task.StatusPending,
	}
	if t.Deadline == "" {
		t.Deadline = task.DeadlineNotFound
	}
	if t.Fine == "" {
		t.Fine = task.FineNone
	}
	if t.Category == "" {
		t.Category = task.CategoryGeneral
	}
	if !t.Priority.Valid() {
		t.Priority = task.PriorityMedium
	}
	if err := uc.repo.Insert(ctx, t); err != nil {
		return nil, core.NewError(err, core.ErrCodeStore, "failed to insert task")
	}
	log.Info("Task created", "task_id", t.ID, "priority", t.Priority, "category", t.Category)
	return t, nil
}
