package mocks

import (
	"context"

	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// TodoRepository is a mock for todo.Repository.
type TodoRepository struct {
	mock.Mock
}

func (m *TodoRepository) Create(ctx context.Context, userID string, t *todo.Todo) error {
	args := m.Called(ctx, userID, t)
	return args.Error(0)
}

func (m *TodoRepository) Get(ctx context.Context, userID, id string) (*todo.Todo, error) {
	args := m.Called(ctx, userID, id)
	if t, ok := args.Get(0).(*todo.Todo); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TodoRepository) Update(ctx context.Context, userID string, t *todo.Todo) error {
	args := m.Called(ctx, userID, t)
	return args.Error(0)
}

func (m *TodoRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *TodoRepository) List(ctx context.Context, userID string) ([]todo.Todo, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]todo.Todo); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// SessionRepository is a mock for user.SessionRepository.
type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, sess *user.Session) error {
	args := m.Called(ctx, sess)
	return args.Error(0)
}

func (m *SessionRepository) Get(ctx context.Context, userID, id string) (*user.Session, error) {
	args := m.Called(ctx, userID, id)
	if sess, ok := args.Get(0).(*user.Session); ok {
		return sess, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SessionRepository) Close(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, userID string, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, userID, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, userID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, userID, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Guard is a mock for todo.Guard.
type Guard struct {
	mock.Mock
}

func (m *Guard) Acquire(ctx context.Context, key string) (func(), error) {
	args := m.Called(ctx, key)
	if release, ok := args.Get(0).(func()); ok {
		return release, args.Error(1)
	}
	return nil, args.Error(1)
}
