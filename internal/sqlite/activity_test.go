package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	todoID := "t1"
	base := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	entry1 := &activity.ActivityEntry{
		TodoID:       &todoID,
		ActivityType: activity.TypeTodoCreated,
		Summary:      "created todo",
		Details:      `{"id":"t1"}`,
		CreatedAt:    base,
	}
	entry2 := &activity.ActivityEntry{
		ActivityType: activity.TypeUserSignedIn,
		Summary:      "signed in",
		CreatedAt:    base.Add(time.Minute),
	}

	require.NoError(t, repo.Log(ctx, "u1", entry1))
	require.NoError(t, repo.Log(ctx, "u1", entry2))
	require.NotZero(t, entry1.ID)
	require.Equal(t, "u1", entry1.UserID)

	entries, err := repo.List(ctx, "u1", activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, activity.TypeUserSignedIn, entries[0].ActivityType)
	require.Nil(t, entries[0].TodoID)
	require.Equal(t, activity.TypeTodoCreated, entries[1].ActivityType)
	require.Equal(t, "t1", *entries[1].TodoID)
	require.Equal(t, `{"id":"t1"}`, entries[1].Details)
}

func TestActivityRepository_FiltersAndUserIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	t1, t2 := "t1", "t2"
	base := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	logs := []struct {
		user  string
		entry *activity.ActivityEntry
	}{
		{"u1", &activity.ActivityEntry{TodoID: &t1, ActivityType: activity.TypeTodoCreated, Summary: "a", CreatedAt: base}},
		{"u1", &activity.ActivityEntry{TodoID: &t1, ActivityType: activity.TypeTodoToggled, Summary: "b", CreatedAt: base.Add(time.Minute)}},
		{"u1", &activity.ActivityEntry{TodoID: &t2, ActivityType: activity.TypeTodoCreated, Summary: "c", CreatedAt: base.Add(2 * time.Minute)}},
		{"u2", &activity.ActivityEntry{TodoID: &t1, ActivityType: activity.TypeTodoCreated, Summary: "d", CreatedAt: base}},
	}
	for _, l := range logs {
		require.NoError(t, repo.Log(ctx, l.user, l.entry))
	}

	byTodo, err := repo.List(ctx, "u1", activity.ListActivityOptions{TodoID: &t1})
	require.NoError(t, err)
	require.Len(t, byTodo, 2)

	created := activity.TypeTodoCreated
	byType, err := repo.List(ctx, "u1", activity.ListActivityOptions{ActivityType: &created})
	require.NoError(t, err)
	require.Len(t, byType, 2)
	require.Equal(t, "c", byType[0].Summary)

	page, err := repo.List(ctx, "u1", activity.ListActivityOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "b", page[0].Summary)

	offsetOnly, err := repo.List(ctx, "u1", activity.ListActivityOptions{Offset: 2})
	require.NoError(t, err)
	require.Len(t, offsetOnly, 1)
	require.Equal(t, "a", offsetOnly[0].Summary)

	other, err := repo.List(ctx, "u2", activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, other, 1)
}
