package todo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/inflight"
	"github.com/rpggio/taskboard/internal/repository"
	"github.com/rpggio/taskboard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTodoService_Create(t *testing.T) {
	ctx := context.Background()
	userID := "user1"

	todos := &mocks.TodoRepository{}
	activities := &mocks.ActivityRepository{}

	todos.On("Create", ctx, userID, mock.MatchedBy(func(t *todo.Todo) bool {
		return t.ID != "" && t.Text == "write report" && !t.Completed && t.Priority == todo.PriorityMedium
	})).Return(nil)
	activities.On("Log", ctx, userID, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeTodoCreated && e.TodoID != nil
	})).Return(nil)

	svc := todo.NewService(todos, activities, nil, nil)
	created, err := svc.Create(ctx, userID, todo.Fields{Text: " write report "})
	require.NoError(t, err)
	require.Equal(t, userID, created.UserID)
	require.Equal(t, "write report", created.Text)
	require.False(t, created.CreatedAt.IsZero())

	todos.AssertExpectations(t)
	activities.AssertExpectations(t)
}

func TestTodoService_Create_InvalidInputNeverReachesStore(t *testing.T) {
	todos := &mocks.TodoRepository{}
	svc := todo.NewService(todos, nil, nil, nil)

	_, err := svc.Create(context.Background(), "user1", todo.Fields{Text: ""})
	require.ErrorIs(t, err, todo.ErrInvalidInput)
	todos.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestTodoService_Toggle(t *testing.T) {
	ctx := context.Background()
	userID := "user1"
	existing := &todo.Todo{ID: "t1", UserID: userID, Text: "x", Priority: todo.PriorityLow}

	todos := &mocks.TodoRepository{}
	todos.On("Get", ctx, userID, "t1").Return(existing, nil)
	todos.On("Update", ctx, userID, mock.MatchedBy(func(t *todo.Todo) bool {
		return t.ID == "t1" && t.Completed
	})).Return(nil)

	guard := inflight.NewMemory()
	svc := todo.NewService(todos, nil, guard, nil)

	toggled, err := svc.Toggle(ctx, userID, "t1")
	require.NoError(t, err)
	require.True(t, toggled.Completed)
	require.False(t, existing.Completed, "stored record is not mutated in place")
	require.False(t, guard.Held("todo:t1"), "guard released after mutation")
	todos.AssertExpectations(t)
}

func TestTodoService_Update_ReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	userID := "user1"
	existing := &todo.Todo{
		ID:            "t1",
		UserID:        userID,
		Text:          "old",
		Completed:     true,
		Category:      "work",
		Priority:      todo.PriorityHigh,
		ScheduledDate: "2024-01-08",
		StartTime:     "09:00",
		EndTime:       "10:00",
	}

	todos := &mocks.TodoRepository{}
	todos.On("Get", ctx, userID, "t1").Return(existing, nil)
	todos.On("Update", ctx, userID, mock.Anything).Return(nil)

	svc := todo.NewService(todos, nil, nil, nil)
	updated, err := svc.Update(ctx, userID, "t1", todo.Fields{Text: "new"})
	require.NoError(t, err)
	require.Equal(t, "new", updated.Text)
	require.Equal(t, "", updated.Category)
	require.Equal(t, todo.PriorityMedium, updated.Priority)
	require.Equal(t, "", updated.ScheduledDate)
	require.Equal(t, "", updated.StartTime)
	require.True(t, updated.Completed, "completion is not part of the field set")
}

func TestTodoService_NotFound(t *testing.T) {
	ctx := context.Background()
	userID := "user1"

	todos := &mocks.TodoRepository{}
	todos.On("Get", ctx, userID, "missing").Return(nil, repository.ErrNotFound)
	todos.On("Delete", ctx, userID, "missing").Return(repository.ErrNotFound)

	svc := todo.NewService(todos, nil, nil, nil)

	_, err := svc.Get(ctx, userID, "missing")
	require.ErrorIs(t, err, todo.ErrTodoNotFound)

	_, err = svc.Toggle(ctx, userID, "missing")
	require.ErrorIs(t, err, todo.ErrTodoNotFound)

	require.ErrorIs(t, svc.Delete(ctx, userID, "missing"), todo.ErrTodoNotFound)
	todos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestTodoService_MutationInFlight(t *testing.T) {
	ctx := context.Background()
	userID := "user1"

	todos := &mocks.TodoRepository{}
	guard := inflight.NewMemory()
	svc := todo.NewService(todos, nil, guard, nil)

	release, err := guard.Acquire(ctx, "todo:t1")
	require.NoError(t, err)
	defer release()

	_, err = svc.Toggle(ctx, userID, "t1")
	require.ErrorIs(t, err, todo.ErrMutationInFlight)

	_, err = svc.Update(ctx, userID, "t1", todo.Fields{Text: "x"})
	require.ErrorIs(t, err, todo.ErrMutationInFlight)

	require.ErrorIs(t, svc.Delete(ctx, userID, "t1"), todo.ErrMutationInFlight)

	todos.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	todos.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestTodoService_GuardErrorIsWrapped(t *testing.T) {
	ctx := context.Background()
	guard := &mocks.Guard{}
	guard.On("Acquire", ctx, "todo:t1").Return(nil, errors.New("redis down"))

	svc := todo.NewService(&mocks.TodoRepository{}, nil, guard, nil)
	_, err := svc.Toggle(ctx, "user1", "t1")
	require.Error(t, err)
	require.NotErrorIs(t, err, todo.ErrMutationInFlight)
}

func TestTodoService_ActivityFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	userID := "user1"

	todos := &mocks.TodoRepository{}
	todos.On("Delete", ctx, userID, "t1").Return(nil)
	activities := &mocks.ActivityRepository{}
	activities.On("Log", ctx, userID, mock.Anything).Return(errors.New("disk full"))

	svc := todo.NewService(todos, activities, nil, nil)
	require.NoError(t, svc.Delete(ctx, userID, "t1"))
	activities.AssertExpectations(t)
}

func TestTodoService_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	list := []todo.Todo{
		{ID: "b", CreatedAt: now},
		{ID: "a", CreatedAt: now.Add(-time.Hour)},
	}

	todos := &mocks.TodoRepository{}
	todos.On("List", ctx, "user1").Return(list, nil)

	svc := todo.NewService(todos, nil, nil, nil)
	got, err := svc.List(ctx, "user1")
	require.NoError(t, err)
	require.Equal(t, list, got)

	_, err = svc.List(ctx, " ")
	require.ErrorIs(t, err, todo.ErrInvalidInput)
}
