package testserver_test

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rpggio/taskboard/internal/testserver"
	"github.com/stretchr/testify/require"
)

type todoBody struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Completed     bool   `json:"completed"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func createTodo(t *testing.T, ts *testserver.TestServer, token string, fields map[string]string) todoBody {
	t.Helper()
	resp := ts.Do(t, http.MethodPost, "/api/todos", token, fields)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	var created todoBody
	resp.Decode(t, &created)
	return created
}

func TestAPI_AuthFlow(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	token := ts.SignUp(t, "Ada@Example.com", "secret1")

	resp := ts.Do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me struct {
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"`
	}
	resp.Decode(t, &me)
	require.Equal(t, "ada@example.com", me.Email)
	require.Empty(t, me.PasswordHash)

	resp = ts.Do(t, http.MethodPost, "/api/auth/signout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.Do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_SignUpErrors(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	ts.SignUp(t, "ada@example.com", "secret1")

	resp := ts.Do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{"email": "ADA@example.com", "password": "secret1"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = ts.Do(t, http.MethodPost, "/api/auth/signup", "", map[string]string{"email": "bob@example.com", "password": "123"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = ts.Do(t, http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "ada@example.com", "password": "wrong!"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_TodoLifecycle(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	token := ts.SignUp(t, "ada@example.com", "secret1")

	created := createTodo(t, ts, token, map[string]string{"text": "  Write report ", "category": "work", "priority": "high"})
	require.Equal(t, "Write report", created.Text)
	require.False(t, created.Completed)

	resp := ts.Do(t, http.MethodPost, "/api/todos/"+created.ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled todoBody
	resp.Decode(t, &toggled)
	require.True(t, toggled.Completed)

	resp = ts.Do(t, http.MethodPut, "/api/todos/"+created.ID, token, map[string]string{
		"text":           "Write final report",
		"priority":       "low",
		"scheduled_date": "2024-01-12",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	var updated todoBody
	resp.Decode(t, &updated)
	require.Equal(t, "Write final report", updated.Text)
	require.Equal(t, "", updated.Category)
	require.Equal(t, "low", updated.Priority)
	require.True(t, updated.Completed)

	resp = ts.Do(t, http.MethodGet, "/api/todos/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.Do(t, http.MethodDelete, "/api/todos/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.Do(t, http.MethodGet, "/api/todos/"+created.ID, token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var notFound errorBody
	resp.Decode(t, &notFound)
	require.Equal(t, "not_found", notFound.Error.Code)

	resp = ts.Do(t, http.MethodGet, "/api/activity?limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var activity struct {
		Activity []struct {
			Type string `json:"type"`
		} `json:"activity"`
	}
	resp.Decode(t, &activity)
	types := make([]string, 0, len(activity.Activity))
	for _, a := range activity.Activity {
		types = append(types, a.Type)
	}
	require.Subset(t, types, []string{"todo_created", "todo_toggled", "todo_updated", "todo_deleted", "user_signed_up"})
}

func TestAPI_CreateTodoValidation(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	token := ts.SignUp(t, "ada@example.com", "secret1")

	for _, fields := range []map[string]string{
		{"text": "   "},
		{"text": "x", "priority": "urgent"},
		{"text": "x", "scheduled_date": "2024-02-30"},
		{"text": "x", "start_time": "10:00"},
		{"text": "x", "start_time": "11:00", "end_time": "10:00"},
	} {
		resp := ts.Do(t, http.MethodPost, "/api/todos", token, fields)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, fields)
	}

	resp := ts.Do(t, http.MethodGet, "/api/todos", token, nil)
	var list struct {
		Todos []todoBody `json:"todos"`
	}
	resp.Decode(t, &list)
	require.Empty(t, list.Todos)
}

func TestAPI_UsersAreIsolated(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	ada := ts.SignUp(t, "ada@example.com", "secret1")
	bob := ts.SignUp(t, "bob@example.com", "secret2")

	created := createTodo(t, ts, ada, map[string]string{"text": "Ada's task"})

	resp := ts.Do(t, http.MethodGet, "/api/todos/"+created.ID, bob, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = ts.Do(t, http.MethodPost, "/api/todos/"+created.ID+"/toggle", bob, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.Do(t, http.MethodGet, "/api/todos", bob, nil)
	var list struct {
		Todos []todoBody `json:"todos"`
	}
	resp.Decode(t, &list)
	require.Empty(t, list.Todos)
}

func TestAPI_Views(t *testing.T) {
	ts := testserver.New(t, testserver.Options{})
	token := ts.SignUp(t, "ada@example.com", "secret1")

	meeting := createTodo(t, ts, token, map[string]string{
		"text": "Meeting", "category": "work", "priority": "high",
		"scheduled_date": "2024-01-10", "scheduled_time": "14:30",
	})
	createTodo(t, ts, token, map[string]string{
		"text": "Gym", "category": "health", "priority": "low",
		"scheduled_date": "2024-01-12", "start_time": "07:00", "end_time": "08:30",
	})
	createTodo(t, ts, token, map[string]string{"text": "Read", "category": "learning"})

	resp := ts.Do(t, http.MethodPost, "/api/todos/"+meeting.ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("list", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/views/list?status=active", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			Todos    []todoBody `json:"todos"`
			Progress struct {
				Completed int `json:"completed"`
				Total     int `json:"total"`
				Rate      int `json:"rate"`
			} `json:"progress"`
			Message string `json:"message"`
		}
		resp.Decode(t, &view)
		require.Len(t, view.Todos, 2)
		require.Equal(t, "Read", view.Todos[0].Text)
		require.Equal(t, 1, view.Progress.Completed)
		require.Equal(t, 3, view.Progress.Total)
		require.Equal(t, 33, view.Progress.Rate)
		require.NotEmpty(t, view.Message)
	})

	t.Run("matrix", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/views/matrix", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			Quadrants map[string][]todoBody `json:"quadrants"`
		}
		resp.Decode(t, &view)
		require.Len(t, view.Quadrants["urgent_important"], 1)
		require.Len(t, view.Quadrants["not_urgent_important"], 1)
		require.Len(t, view.Quadrants["urgent_not_important"], 1)
		require.Empty(t, view.Quadrants["not_urgent_not_important"])
	})

	t.Run("timetable defaults to today", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/views/timetable", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			Date  string `json:"date"`
			Slots []struct {
				Hour          int        `json:"hour"`
				IsCurrentHour bool       `json:"is_current_hour"`
				Todos         []todoBody `json:"todos"`
			} `json:"slots"`
		}
		resp.Decode(t, &view)
		require.Equal(t, "2024-01-10", view.Date)
		require.Len(t, view.Slots, 24)
		require.True(t, view.Slots[9].IsCurrentHour)
		require.Len(t, view.Slots[14].Todos, 1)
		require.Equal(t, "Meeting", view.Slots[14].Todos[0].Text)
		// Gym is on another date.
		require.Empty(t, view.Slots[7].Todos)
	})

	t.Run("timetable on another date", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/views/timetable?date=2024-01-12", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			Slots []struct {
				IsCurrentHour bool       `json:"is_current_hour"`
				Todos         []todoBody `json:"todos"`
			} `json:"slots"`
		}
		resp.Decode(t, &view)
		require.Len(t, view.Slots[7].Todos, 1)
		require.Len(t, view.Slots[8].Todos, 1)
		require.Empty(t, view.Slots[9].Todos)
		require.False(t, view.Slots[9].IsCurrentHour)
	})

	t.Run("week", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/views/week", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			WeekStart string `json:"week_start"`
			Next      string `json:"next"`
			Days      []struct {
				Date    string     `json:"date"`
				IsToday bool       `json:"is_today"`
				Todos   []todoBody `json:"todos"`
			} `json:"days"`
		}
		resp.Decode(t, &view)
		require.Equal(t, "2024-01-08", view.WeekStart)
		require.Equal(t, "2024-01-17", view.Next)
		require.Len(t, view.Days, 7)
		require.True(t, view.Days[2].IsToday)
		require.Len(t, view.Days[2].Todos, 1)
		require.Len(t, view.Days[4].Todos, 1)
		require.Empty(t, view.Days[0].Todos)
	})

	t.Run("month", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/views/month?step=1", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			Month string `json:"month"`
			Cells []struct {
				Date string `json:"date"`
			} `json:"cells"`
		}
		resp.Decode(t, &view)
		require.Equal(t, "2024-02", view.Month)
		require.Len(t, view.Cells, 42)
		require.Equal(t, "2024-01-29", view.Cells[0].Date)
	})

	t.Run("dashboard", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/dashboard", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var view struct {
			Date  string `json:"date"`
			Today struct {
				Completed int `json:"completed"`
				Total     int `json:"total"`
				Rate      int `json:"rate"`
			} `json:"today"`
			PendingHighPriority int    `json:"pending_high_priority"`
			Band                string `json:"band"`
		}
		resp.Decode(t, &view)
		require.Equal(t, "2024-01-10", view.Date)
		require.Equal(t, 1, view.Today.Total)
		require.Equal(t, 100, view.Today.Rate)
		require.Zero(t, view.PendingHighPriority)
		require.NotEmpty(t, view.Band)
	})

	t.Run("categories", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/categories", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Categories []struct {
				Value string `json:"value"`
			} `json:"categories"`
		}
		resp.Decode(t, &body)
		require.NotEmpty(t, body.Categories)
		require.Equal(t, "all", body.Categories[0].Value)
	})
}

func TestAPI_AuthDisabledUsesLocalUser(t *testing.T) {
	ts := testserver.New(t, testserver.Options{AuthDisabled: true})

	created := createTodo(t, ts, "", map[string]string{"text": "Local task"})

	todos, err := ts.App.Todos.List(t.Context(), ts.Config.Auth.LocalUserID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	require.Equal(t, created.ID, todos[0].ID)

	resp := ts.Do(t, http.MethodGet, "/api/me", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_RedisGuard(t *testing.T) {
	mr := miniredis.RunT(t)
	ts := testserver.New(t, testserver.Options{RedisURL: "redis://" + mr.Addr()})
	token := ts.SignUp(t, "ada@example.com", "secret1")

	created := createTodo(t, ts, token, map[string]string{"text": "Guarded"})

	resp := ts.Do(t, http.MethodPost, "/api/todos/"+created.ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	// The lease is released once the mutation finishes.
	require.Empty(t, mr.Keys())
}
