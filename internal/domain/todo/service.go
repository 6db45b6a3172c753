package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/rpggio/taskboard/internal/inflight"
	"github.com/rpggio/taskboard/internal/repository"
)

// Service handles todo persistence and the mutation rules around it.
type Service struct {
	todos      Repository
	activities ActivityRepository
	guard      Guard
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new todo service. activities and guard may be nil.
func NewService(todos Repository, activities ActivityRepository, guard Guard, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		todos:      todos,
		activities: activities,
		guard:      guard,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// List returns the user's todos, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Todo, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	todos, err := s.todos.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	return todos, nil
}

// Get returns a single todo.
func (s *Service) Get(ctx context.Context, userID, id string) (*Todo, error) {
	if userID == "" || id == "" {
		return nil, ErrInvalidInput
	}
	t, err := s.todos.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("getting todo: %w", err)
	}
	return t, nil
}

// Create validates fields and stores a new, incomplete todo.
func (s *Service) Create(ctx context.Context, userID string, fields Fields) (*Todo, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	fields, err := NormalizeFields(fields)
	if err != nil {
		return nil, err
	}

	t := &Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: s.now(),
	}
	t.Apply(fields)

	if err := s.todos.Create(ctx, userID, t); err != nil {
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	s.logActivity(ctx, userID, t.ID, activity.TypeTodoCreated, fmt.Sprintf("created todo %q", t.Text))
	return t, nil
}

// Update replaces the whole mutable field set of a todo.
func (s *Service) Update(ctx context.Context, userID, id string, fields Fields) (*Todo, error) {
	if userID == "" || id == "" {
		return nil, ErrInvalidInput
	}
	fields, err := NormalizeFields(fields)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, id, activity.TypeTodoUpdated, func(t *Todo) {
		t.Apply(fields)
	})
}

// Toggle flips the completion flag of a todo.
func (s *Service) Toggle(ctx context.Context, userID, id string) (*Todo, error) {
	if userID == "" || id == "" {
		return nil, ErrInvalidInput
	}
	return s.mutate(ctx, userID, id, activity.TypeTodoToggled, func(t *Todo) {
		t.Completed = !t.Completed
	})
}

// Delete removes a todo.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return ErrInvalidInput
	}

	release, err := s.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	if err := s.todos.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("deleting todo: %w", err)
	}

	s.logActivity(ctx, userID, id, activity.TypeTodoDeleted, fmt.Sprintf("deleted todo %s", id))
	return nil
}

// mutate loads a todo under the in-flight guard, applies change and stores
// the result. Nothing is written unless the load succeeds.
func (s *Service) mutate(ctx context.Context, userID, id string, kind activity.ActivityType, change func(*Todo)) (*Todo, error) {
	release, err := s.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	current, err := s.todos.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("loading todo: %w", err)
	}

	updated := *current
	change(&updated)

	if err := s.todos.Update(ctx, userID, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("updating todo: %w", err)
	}

	s.logActivity(ctx, userID, id, kind, fmt.Sprintf("%s %s", strings.TrimPrefix(string(kind), "todo_"), id))
	return &updated, nil
}

func (s *Service) acquire(ctx context.Context, id string) (func(), error) {
	if s.guard == nil {
		return func() {}, nil
	}
	release, err := s.guard.Acquire(ctx, "todo:"+id)
	if err != nil {
		if errors.Is(err, inflight.ErrBusy) {
			return nil, ErrMutationInFlight
		}
		return nil, fmt.Errorf("acquiring mutation guard: %w", err)
	}
	return release, nil
}

func (s *Service) logActivity(ctx context.Context, userID, todoID string, kind activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	err := s.activities.Log(ctx, userID, &activity.ActivityEntry{
		TodoID:       &todoID,
		ActivityType: kind,
		Summary:      summary,
		CreatedAt:    s.now(),
	})
	if err != nil {
		s.logger.Warn("failed to log todo activity", "todo_id", todoID, "type", kind, "error", err)
	}
}
