package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/repository"
)

var _ todo.Repository = (*TodoRepository)(nil)

const todoColumns = `
	id, user_id, text, completed, category, priority, created_at,
	scheduled_date, scheduled_time, start_time, end_time`

// TodoRepository implements todo.Repository for SQLite
type TodoRepository struct {
	db *DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create inserts a new todo
func (r *TodoRepository) Create(ctx context.Context, userID string, t *todo.Todo) error {
	query := `INSERT INTO todos (` + todoColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		userID,
		t.Text,
		t.Completed,
		t.Category,
		t.Priority,
		t.CreatedAt,
		nullString(t.ScheduledDate),
		nullString(t.ScheduledTime),
		nullString(t.StartTime),
		nullString(t.EndTime),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create todo: %w", err)
	}

	t.UserID = userID
	return nil
}

// Get retrieves a todo by ID
func (r *TodoRepository) Get(ctx context.Context, userID, id string) (*todo.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND user_id = ?`

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}
	return t, nil
}

// Update replaces the mutable fields and completion flag of a todo
func (r *TodoRepository) Update(ctx context.Context, userID string, t *todo.Todo) error {
	query := `
		UPDATE todos
		SET text = ?, completed = ?, category = ?, priority = ?,
		    scheduled_date = ?, scheduled_time = ?, start_time = ?, end_time = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		t.Text,
		t.Completed,
		t.Category,
		t.Priority,
		nullString(t.ScheduledDate),
		nullString(t.ScheduledTime),
		nullString(t.StartTime),
		nullString(t.EndTime),
		t.ID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a todo
func (r *TodoRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns the user's todos, newest first
func (r *TodoRepository) List(ctx context.Context, userID string) ([]todo.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []todo.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todo rows: %w", err)
	}
	return todos, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*todo.Todo, error) {
	var t todo.Todo
	var scheduledDate, scheduledTime, startTime, endTime sql.NullString
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Text,
		&t.Completed,
		&t.Category,
		&t.Priority,
		&t.CreatedAt,
		&scheduledDate,
		&scheduledTime,
		&startTime,
		&endTime,
	); err != nil {
		return nil, err
	}
	t.ScheduledDate = scheduledDate.String
	t.ScheduledTime = scheduledTime.String
	t.StartTime = startTime.String
	t.EndTime = endTime.String
	return &t, nil
}
