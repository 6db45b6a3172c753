package views_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/projection"
	"github.com/rpggio/taskboard/internal/repository/mocks"
	"github.com/rpggio/taskboard/internal/views"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T, todos []todo.Todo) *views.Service {
	t.Helper()
	repo := &mocks.TodoRepository{}
	repo.On("List", context.Background(), "u1").Return(todos, nil)
	return views.NewService(repo, views.Options{
		Now:          func() time.Time { return fixedNow },
		MonthPreview: 2,
	})
}

func board() []todo.Todo {
	return []todo.Todo{
		{ID: "a", Text: "a", Priority: todo.PriorityHigh, Category: "work", ScheduledDate: "2024-01-10", ScheduledTime: "09:00", Completed: true},
		{ID: "b", Text: "b", Priority: todo.PriorityLow, Category: "work", ScheduledDate: "2024-01-10"},
		{ID: "c", Text: "c", Priority: todo.PriorityLow, Category: "home", ScheduledDate: "2024-01-10"},
		{ID: "d", Text: "d", Priority: todo.PriorityMedium, StartTime: "09:00", EndTime: "10:00"},
		{ID: "e", Text: "e", Priority: todo.PriorityLow, ScheduledDate: "2024-02-14"},
	}
}

func TestParseParams(t *testing.T) {
	p, err := views.ParseParams("", "")
	require.NoError(t, err)
	require.Equal(t, projection.Params{Status: projection.StatusAll, Category: projection.CategoryAll}, p)

	_, err = views.ParseParams("finished", "")
	require.ErrorIs(t, err, views.ErrInvalidQuery)
}

func TestList_ProgressCoversAllTodos(t *testing.T) {
	svc := newService(t, board())

	view, err := svc.List(context.Background(), "u1", projection.Params{Status: projection.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, view.Todos, 1)
	require.Equal(t, projection.Stats{Completed: 1, Total: 5, Rate: 20}, view.Progress)
	require.Contains(t, view.Message, "making progress")
}

func TestMatrix_UsesFilter(t *testing.T) {
	svc := newService(t, board())

	view, err := svc.Matrix(context.Background(), "u1", projection.Params{Category: "work"})
	require.NoError(t, err)
	require.Len(t, view.Quadrants.UrgentImportant, 1)
	require.Len(t, view.Quadrants.UrgentNotImportant, 1)
	require.Equal(t, 2, view.Quadrants.Len())
}

func TestTimetable_DefaultsToToday(t *testing.T) {
	svc := newService(t, board())

	view, err := svc.Timetable(context.Background(), "u1", "", projection.Params{})
	require.NoError(t, err)
	require.Equal(t, "2024-01-10", view.Date)
	require.True(t, view.Slots[9].IsCurrentHour)
	require.Len(t, view.Slots[9].Todos, 2)
	require.Len(t, view.Slots[10].Todos, 1)

	_, err = svc.Timetable(context.Background(), "u1", "10/01/2024", projection.Params{})
	require.ErrorIs(t, err, views.ErrInvalidQuery)
}

func TestWeek_Navigation(t *testing.T) {
	svc := newService(t, board())

	view, err := svc.Week(context.Background(), "u1", "2024-01-10", 0, projection.Params{})
	require.NoError(t, err)
	require.Equal(t, "2024-01-08", view.WeekStart)
	require.Equal(t, "2024-01-03", view.Previous)
	require.Equal(t, "2024-01-17", view.Next)
	require.True(t, view.Days[2].IsToday)
	require.Len(t, view.Days[2].Todos, 3)

	next, err := svc.Week(context.Background(), "u1", "2024-01-10", 1, projection.Params{})
	require.NoError(t, err)
	require.Equal(t, "2024-01-15", next.WeekStart)
}

func TestStepOutOfRange(t *testing.T) {
	svc := newService(t, board())

	_, err := svc.Week(context.Background(), "u1", "2024-01-10", views.MaxStep+1, projection.Params{})
	require.ErrorIs(t, err, views.ErrInvalidQuery)

	_, err = svc.Month(context.Background(), "u1", "2024-01-10", -views.MaxStep-1, projection.Params{})
	require.ErrorIs(t, err, views.ErrInvalidQuery)

	view, err := svc.Month(context.Background(), "u1", "2024-01-10", views.MaxStep, projection.Params{})
	require.NoError(t, err)
	require.Equal(t, "2124-01-01", view.Anchor)
}

func TestMonth_PreviewAndNavigation(t *testing.T) {
	svc := newService(t, board())

	view, err := svc.Month(context.Background(), "u1", "", 0, projection.Params{})
	require.NoError(t, err)
	require.Equal(t, "2024-01", view.Month)
	require.Equal(t, "2023-12-01", view.Previous)
	require.Equal(t, "2024-02-01", view.Next)
	require.Len(t, view.Cells, 42)

	cell := view.Cells[9]
	require.Equal(t, "2024-01-10", cell.Date)
	require.Equal(t, 3, cell.Count)
	require.Len(t, cell.Preview, 2)
	require.Equal(t, 1, cell.Hidden)

	feb, err := svc.Month(context.Background(), "u1", "2024-01-31", 1, projection.Params{})
	require.NoError(t, err)
	require.Equal(t, "2024-02", feb.Month)
	require.Equal(t, "2024-02-01", feb.Anchor)
}

func TestDashboard(t *testing.T) {
	svc := newService(t, board())

	view, err := svc.Dashboard(context.Background(), "u1", "")
	require.NoError(t, err)
	require.Equal(t, "2024-01-10", view.Date)
	require.Equal(t, projection.Stats{Completed: 1, Total: 3, Rate: 33}, view.Today)
	require.Equal(t, 0, view.PendingHighPriority)
}

func TestCategories(t *testing.T) {
	svc := newService(t, board())

	cats, err := svc.Categories(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "home", cats[len(cats)-1].Value)
}

func TestStoreErrorIsWrapped(t *testing.T) {
	repo := &mocks.TodoRepository{}
	boom := errors.New("db down")
	repo.On("List", context.Background(), "u1").Return(nil, boom)

	svc := views.NewService(repo, views.Options{})
	_, err := svc.List(context.Background(), "u1", projection.Params{})
	require.ErrorIs(t, err, boom)
}
