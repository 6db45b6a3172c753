package projection

import (
	"strconv"
	"strings"
	"time"

	"github.com/rpggio/taskboard/internal/domain/todo"
)

// DateLayout is the calendar date format used for scheduled dates.
const DateLayout = "2006-01-02"

// Day returns midnight UTC of t's calendar date in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate formats t's calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseHour extracts the hour from an HH:MM value. ok is false when the
// value has no parseable hour in 0..23.
func ParseHour(clock string) (hour int, ok bool) {
	head, _, _ := strings.Cut(clock, ":")
	h, err := strconv.Atoi(head)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// bucketByDate indexes todos by scheduled date, keeping input order within
// each date. Unscheduled todos are skipped.
func bucketByDate(todos []todo.Todo) map[string][]todo.Todo {
	buckets := make(map[string][]todo.Todo)
	for _, t := range todos {
		if t.ScheduledDate == "" {
			continue
		}
		buckets[t.ScheduledDate] = append(buckets[t.ScheduledDate], t)
	}
	return buckets
}
