package uc

import (
	"context"
	"fmt"

	"github.com/remindly/remindly/engine/task"
)

// ListCategories returns the distinct, sorted categories present in the
// store.
type ListCategories struct {
	repo Repository
}

func NewListCategories(repo Repository) *ListCategories {
	return &ListCategories{repo: repo}
}

func (uc *ListCategories) Execute(ctx context.Context) ([]string, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListByCategory returns tasks whose category exactly matches, ranked.
type ListByCategory struct {
	repo     Repository
	category string
}

func NewListByCategory(repo Repository, category string) *ListByCategory {
	return &ListByCategory{repo: repo, category: category}
}

func (uc *ListByCategory) Execute(ctx context.Context) ([]*task.Task, error) {
	tasks, err := uc.repo.ListByCategory(ctx, uc.category)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by category: %w", err)
	}
	return task.RankTasks(tasks), nil
}
