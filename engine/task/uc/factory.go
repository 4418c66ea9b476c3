package uc

import "github.com/remindly/remindly/engine/core"

// Factory builds task use cases bound to a repository.
type Factory struct {
	repo Repository
}

func NewFactory(repo Repository) *Factory {
	return &Factory{repo: repo}
}

func (f *Factory) CreateTask(input *CreateTaskInput) *CreateTask {
	return NewCreateTask(f.repo, input)
}

func (f *Factory) ListTasks() *ListTasks {
	return NewListTasks(f.repo)
}

func (f *Factory) ListPendingTasks() *ListPendingTasks {
	return NewListPendingTasks(f.repo)
}

func (f *Factory) ListCategories() *ListCategories {
	return NewListCategories(f.repo)
}

func (f *Factory) ListByCategory(category string) *ListByCategory {
	return NewListByCategory(f.repo, category)
}

func (f *Factory) CompleteTask(id core.ID) *CompleteTask {
	return NewCompleteTask(f.repo, id)
}
