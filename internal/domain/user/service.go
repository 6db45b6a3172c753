package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/rpggio/taskboard/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Service handles sign-up, sign-in and token resolution.
type Service struct {
	users      Repository
	sessions   SessionRepository
	activities ActivityRepository
	opts       Options
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new identity service. activities may be nil.
func NewService(users Repository, sessions SessionRepository, activities ActivityRepository, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		activities: activities,
		opts:       opts.withDefaults(),
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SignUp registers a new account.
func (s *Service) SignUp(ctx context.Context, email, password string) (*User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return nil, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, MaxPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logActivity(ctx, u.ID, activity.TypeUserSignedUp, "signed up as "+email)
	return u, nil
}

// SignIn verifies credentials and opens a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Status:    StatusActive,
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.TokenTTL),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	token, err := s.issueToken(u, sess)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, u.ID, activity.TypeUserSignedIn, "signed in")
	return &SignInResult{User: u, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

// SignOut closes the session behind token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}
	if err := s.sessions.Close(ctx, claims.Subject, claims.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("closing session: %w", err)
	}
	s.logActivity(ctx, claims.Subject, activity.TypeUserSignedOut, "signed out")
	return nil
}

// ResolveUser returns the id of the user behind an access token. The token
// must be valid and its session still active.
func (s *Service) ResolveUser(ctx context.Context, token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}

	sess, err := s.sessions.Get(ctx, claims.Subject, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%w: unknown session", ErrUnauthorized)
		}
		return "", fmt.Errorf("loading session: %w", err)
	}
	if sess.Status != StatusActive {
		return "", fmt.Errorf("%w: session closed", ErrUnauthorized)
	}
	if !s.now().Before(sess.ExpiresAt) {
		return "", fmt.Errorf("%w: session expired", ErrUnauthorized)
	}
	return sess.UserID, nil
}

// Current returns the user with the given id.
func (s *Service) Current(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	return u, nil
}

// EnsureLocal returns the passwordless local user, creating it if needed.
// It backs single-user modes that run without sign-in.
func (s *Service) EnsureLocal(ctx context.Context, id, email string) (*User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	u, err := s.users.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading local user: %w", err)
	}

	email, err = normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	u = &User{ID: id, Email: email, CreatedAt: s.now()}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating local user: %w", err)
	}
	s.logger.Info("created local user", "user_id", id, "email", email)
	return u, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}
	return email, nil
}

func (s *Service) logActivity(ctx context.Context, userID string, kind activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	err := s.activities.Log(ctx, userID, &activity.ActivityEntry{
		ActivityType: kind,
		Summary:      summary,
		CreatedAt:    s.now(),
	})
	if err != nil {
		s.logger.Warn("failed to log user activity", "user_id", userID, "type", kind, "error", err)
	}
}
