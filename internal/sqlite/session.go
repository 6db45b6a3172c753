package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/taskboard/internal/domain/user"
	"github.com/rpggio/taskboard/internal/repository"
)

var _ user.SessionRepository = (*SessionRepository)(nil)

// SessionRepository implements user.SessionRepository for SQLite
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, sess *user.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, status, created_at, expires_at, closed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sess.ID,
		sess.UserID,
		sess.Status,
		sess.CreatedAt,
		sess.ExpiresAt,
		sess.ClosedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(ctx context.Context, userID, id string) (*user.Session, error) {
	query := `
		SELECT id, user_id, status, created_at, expires_at, closed_at
		FROM sessions
		WHERE id = ? AND user_id = ?
	`

	var sess user.Session
	var closedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&sess.ID,
		&sess.UserID,
		&sess.Status,
		&sess.CreatedAt,
		&sess.ExpiresAt,
		&closedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if closedAt.Valid {
		sess.ClosedAt = &closedAt.Time
	}

	return &sess, nil
}

// Close marks a session closed
func (r *SessionRepository) Close(ctx context.Context, userID, id string) error {
	query := `
		UPDATE sessions
		SET status = ?, closed_at = ?
		WHERE id = ? AND user_id = ? AND status = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		user.StatusClosed,
		time.Now().UTC(),
		id,
		userID,
		user.StatusActive,
	)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
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
