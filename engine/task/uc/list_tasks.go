package uc

import (
	"context"
	"fmt"

	"github.com/remindly/remindly/engine/task"
)

// ListTasks returns every task in the store, ranked by priority then
// recency.
type ListTasks struct {
	repo Repository
}

func NewListTasks(repo Repository) *ListTasks {
	return &ListTasks{repo: repo}
}

func (uc *ListTasks) Execute(ctx context.Context) ([]*task.Task, error) {
	tasks, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return task.RankTasks(tasks), nil
}

// ListPendingTasks returns all pending tasks, unranked. The notification
// and suggestion pipelines apply their own ordering.
type ListPendingTasks struct {
	repo Repository
}

func NewListPendingTasks(repo Repository) *ListPendingTasks {
	return &ListPendingTasks{repo: repo}
}

func (uc *ListPendingTasks) Execute(ctx context.Context) ([]*task.Task, error) {
	tasks, err := uc.repo.ListByStatus(ctx, task.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending tasks: %w", err)
	}
	return tasks, nil
}
