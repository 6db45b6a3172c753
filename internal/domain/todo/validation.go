package todo

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// NormalizeFields trims and validates a field set at the creation boundary.
// An empty priority defaults to medium. A time range must have both ends and
// must not run backwards.
func NormalizeFields(f Fields) (Fields, error) {
	f.Text = strings.TrimSpace(f.Text)
	f.Category = strings.TrimSpace(f.Category)
	f.ScheduledDate = strings.TrimSpace(f.ScheduledDate)
	f.ScheduledTime = strings.TrimSpace(f.ScheduledTime)
	f.StartTime = strings.TrimSpace(f.StartTime)
	f.EndTime = strings.TrimSpace(f.EndTime)

	if f.Text == "" {
		return Fields{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	if f.Priority == "" {
		f.Priority = PriorityMedium
	}
	if !f.Priority.Valid() {
		return Fields{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, f.Priority)
	}

	if f.ScheduledDate != "" {
		if _, err := time.Parse(dateLayout, f.ScheduledDate); err != nil {
			return Fields{}, fmt.Errorf("%w: scheduled_date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	clocks := []struct{ name, value string }{
		{"scheduled_time", f.ScheduledTime},
		{"start_time", f.StartTime},
		{"end_time", f.EndTime},
	}
	for _, c := range clocks {
		if c.value != "" && !validClock(c.value) {
			return Fields{}, fmt.Errorf("%w: %s must be HH:MM", ErrInvalidInput, c.name)
		}
	}

	if (f.StartTime == "") != (f.EndTime == "") {
		return Fields{}, fmt.Errorf("%w: start_time and end_time must be set together", ErrInvalidInput)
	}
	// Zero-padded HH:MM values order lexically.
	if f.StartTime > f.EndTime {
		return Fields{}, fmt.Errorf("%w: start_time is after end_time", ErrInvalidInput)
	}

	return f, nil
}

func validClock(value string) bool {
	if len(value) != len(timeLayout) {
		return false
	}
	_, err := time.Parse(timeLayout, value)
	return err == nil
}
