package todo

import (
	"context"

	"github.com/rpggio/taskboard/internal/domain/activity"
)

// Repository provides persistence for todos.
type Repository interface {
	Create(ctx context.Context, userID string, t *Todo) error
	Get(ctx context.Context, userID, id string) (*Todo, error)
	Update(ctx context.Context, userID string, t *Todo) error
	Delete(ctx context.Context, userID, id string) error
	List(ctx context.Context, userID string) ([]Todo, error)
}

// ActivityRepository logs todo activities.
type ActivityRepository interface {
	Log(ctx context.Context, userID string, entry *activity.ActivityEntry) error
}

// Guard serializes mutations per key. Acquire fails fast when the key is
// already held; the returned func releases it.
type Guard interface {
	Acquire(ctx context.Context, key string) (func(), error)
}
