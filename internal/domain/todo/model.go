package todo

import "time"

// Priority ranks a todo for the matrix and list views.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Todo is a user-created work item. Optional scheduling fields use the empty
// string for "absent".
type Todo struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Text          string    `json:"text"`
	Completed     bool      `json:"completed"`
	Category      string    `json:"category"`
	Priority      Priority  `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
	ScheduledDate string    `json:"scheduled_date,omitempty"` // YYYY-MM-DD
	ScheduledTime string    `json:"scheduled_time,omitempty"` // HH:MM
	StartTime     string    `json:"start_time,omitempty"`     // HH:MM
	EndTime       string    `json:"end_time,omitempty"`       // HH:MM
}

// Fields is the mutable field set of a todo. Updates replace all of it.
type Fields struct {
	Text          string   `json:"text"`
	Category      string   `json:"category"`
	Priority      Priority `json:"priority"`
	ScheduledDate string   `json:"scheduled_date,omitempty"`
	ScheduledTime string   `json:"scheduled_time,omitempty"`
	StartTime     string   `json:"start_time,omitempty"`
	EndTime       string   `json:"end_time,omitempty"`
}

// Scheduled reports whether the todo has a scheduled date.
func (t Todo) Scheduled() bool {
	return t.ScheduledDate != ""
}

// HasRange reports whether both ends of the time range are set.
func (t Todo) HasRange() bool {
	return t.StartTime != "" && t.EndTime != ""
}

// Fields returns the mutable field set of t.
func (t Todo) Fields() Fields {
	return Fields{
		Text:          t.Text,
		Category:      t.Category,
		Priority:      t.Priority,
		ScheduledDate: t.ScheduledDate,
		ScheduledTime: t.ScheduledTime,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
	}
}

// Apply replaces every mutable field of t with f.
func (t *Todo) Apply(f Fields) {
	t.Text = f.Text
	t.Category = f.Category
	t.Priority = f.Priority
	t.ScheduledDate = f.ScheduledDate
	t.ScheduledTime = f.ScheduledTime
	t.StartTime = f.StartTime
	t.EndTime = f.EndTime
}
