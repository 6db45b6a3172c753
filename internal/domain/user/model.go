package user

import "time"

// User is an account that owns todos.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionStatus represents the lifecycle status of a sign-in session.
type SessionStatus string

const (
	StatusActive SessionStatus = "active"
	StatusClosed SessionStatus = "closed"
)

// Session is one signed-in period. Its id is carried in the access token.
type Session struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Status    SessionStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
	ClosedAt  *time.Time    `json:"closed_at,omitempty"`
}

// SignInResult is returned by a successful sign-in.
type SignInResult struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
