package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/remindly/remindly/engine/core"
	"github.com/remindly/remindly/engine/task"
	"github.com/remindly/remindly/engine/task/uc"
)

var taskColumns = []string{"id", "summary", "deadline", "fine", "priority", "category", "created_at", "status"}

// Repository implements the task repository interface using PostgreSQL
type Repository struct {
	db DBInterface
}

// DBInterface defines the minimal interface needed by the repository
type DBInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewRepository creates a new task repository
func NewRepository(db DBInterface) uc.Repository {
	return &Repository{db: db}
}

// Insert appends a new task record
func (r *Repository) Insert(ctx context.Context, t *task.Task) error {
	query, args, err := squirrel.Insert("tasks").
		Columns(taskColumns...).
		Values(t.ID, t.Summary, t.Deadline, t.Fine, t.Priority, t.Category, t.CreatedAt, t.Status).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// ListAll retrieves every task regardless of status
func (r *Repository) ListAll(ctx context.Context) ([]*task.Task, error) {
	query, args, err := squirrel.Select(taskColumns...).
		From("tasks").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var tasks []*task.Task
	if err := pgxscan.Select(ctx, r.db, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("scanning tasks: %w", err)
	}
	return tasks, nil
}

// ListByStatus retrieves all tasks in the given status
func (r *Repository) ListByStatus(ctx context.Context, status task.Status) ([]*task.Task, error) {
	query, args, err := squirrel.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var tasks []*task.Task
	if err := pgxscan.Select(ctx, r.db, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("scanning tasks by status: %w", err)
	}
	return tasks, nil
}

// ListByCategory retrieves all tasks whose category matches exactly
func (r *Repository) ListByCategory(ctx context.Context, category string) ([]*task.Task, error) {
	query, args, err := squirrel.Select(taskColumns...).
		From("tasks").
		Where(squirrel.Eq{"category": category}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var tasks []*task.Task
	if err := pgxscan.Select(ctx, r.db, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("scanning tasks by category: %w", err)
	}
	return tasks, nil
}

// ListCategories retrieves the distinct categories present in the store
func (r *Repository) ListCategories(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.Select("DISTINCT category").
		From("tasks").
		Where(squirrel.NotEq{"category": ""}).
		OrderBy("category ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}
	var categories []string
	if err := pgxscan.Select(ctx, r.db, &categories, query, args...); err != nil {
		return nil, fmt.Errorf("scanning categories: %w", err)
	}
	return categories, nil
}

// SetStatus transitions a task's status
func (r *Repository) SetStatus(ctx context.Context, id core.ID, status task.Status) error {
	query, args, err := squirrel.Update("tasks").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return uc.ErrTaskNotFound
	}
	return nil
}
