package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/engine/task/uc"
)

// Repository is a mutex-guarded in-memory task store. It backs dev mode
// when no database is configured, and handler tests. Insertion order is
// preserved; tasks are never removed.
type Repository struct {
	mu    sync.RWMutex
	tasks []*task.Task
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Insert(_ context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *t
	r.tasks = append(r.tasks, &stored)
	return nil
}

func (r *Repository) ListAll(_ context.Context) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(*task.Task) bool { return true }), nil
}

func (r *Repository) ListByStatus(_ context.Context, status task.Status) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(t *task.Task) bool { return t.Status == status }), nil
}

func (r *Repository) ListByCategory(_ context.Context, category string) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(t *task.Task) bool { return t.Category == category }), nil
}

func (r *Repository) ListCategories(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, t := range r.tasks {
		if t.Category != "" {
			seen[t.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *Repository) SetStatus(_ context.Context, id core.ID, status task.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return uc.ErrTaskNotFound
}

// snapshot copies matching tasks so callers can sort without racing
// concurrent inserts. Caller must hold at least the read lock.
func (r *Repository) snapshot(match func(*task.Task) bool) []*task.Task {
	out := make([]*task.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if match(t) {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out
}
