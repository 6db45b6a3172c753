package user

import (
	"context"

	"github.com/rpggio/taskboard/internal/domain/activity"
)

// Repository provides persistence for users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// SessionRepository provides persistence for sign-in sessions.
type SessionRepository interface {
	Create(ctx context.Context, sess *Session) error
	Get(ctx context.Context, userID, id string) (*Session, error)
	Close(ctx context.Context, userID, id string) error
}

// ActivityRepository logs auth activities.
type ActivityRepository interface {
	Log(ctx context.Context, userID string, entry *activity.ActivityEntry) error
}
