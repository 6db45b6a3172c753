package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeTodoCreated   ActivityType = "todo_created"
	TypeTodoUpdated   ActivityType = "todo_updated"
	TypeTodoToggled   ActivityType = "todo_toggled"
	TypeTodoDeleted   ActivityType = "todo_deleted"
	TypeUserSignedUp  ActivityType = "user_signed_up"
	TypeUserSignedIn  ActivityType = "user_signed_in"
	TypeUserSignedOut ActivityType = "user_signed_out"
)

// ActivityEntry represents an event in a user's activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	UserID       string       `json:"user_id"`
	TodoID       *string      `json:"todo_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
