package projection

import (
	"time"

	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/motivation"
)

// Stats is a completion summary.
type Stats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Rate      int `json:"rate"` // percent, rounded half up
}

// Progress counts completed todos. Rate is 0 for an empty collection.
func Progress(todos []todo.Todo) Stats {
	s := Stats{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			s.Completed++
		}
	}
	s.Rate = percent(s.Completed, s.Total)
	return s
}

// TodayProgress is Progress over the todos scheduled on today.
func TodayProgress(todos []todo.Todo, today time.Time) Stats {
	date := FormatDate(Day(today))
	var s Stats
	for _, t := range todos {
		if t.ScheduledDate != date {
			continue
		}
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	s.Rate = percent(s.Completed, s.Total)
	return s
}

// PendingHighPriority counts incomplete high priority todos.
func PendingHighPriority(todos []todo.Todo) int {
	n := 0
	for _, t := range todos {
		if t.Priority == todo.PriorityHigh && !t.Completed {
			n++
		}
	}
	return n
}

// DashboardStats backs the dashboard header.
type DashboardStats struct {
	Overall             Stats           `json:"overall"`
	Today               Stats           `json:"today"`
	PendingHighPriority int             `json:"pending_high_priority"`
	Band                motivation.Band `json:"band"`
	Message             string          `json:"message"`
}

// Dashboard summarizes todos as of today. The band follows the overall rate.
func Dashboard(todos []todo.Todo, today time.Time) DashboardStats {
	overall := Progress(todos)
	band := motivation.BandFor(overall.Rate)
	return DashboardStats{
		Overall:             overall,
		Today:               TodayProgress(todos, today),
		PendingHighPriority: PendingHighPriority(todos),
		Band:                band,
		Message:             band.Message(),
	}
}

// percent is round(100*part/whole) with halves rounded up, in integers.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}
