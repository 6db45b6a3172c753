// Package app assembles the taskboard services from configuration.
package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/taskboard/internal/config"
	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/domain/user"
	"github.com/rpggio/taskboard/internal/inflight"
	"github.com/rpggio/taskboard/internal/mcp"
	"github.com/rpggio/taskboard/internal/sqlite"
	"github.com/rpggio/taskboard/internal/transport"
	"github.com/rpggio/taskboard/internal/views"
)

// Version is reported by the MCP server and the version command.
var Version = "dev"

// App holds the wired services.
type App struct {
	DB       *sqlite.DB
	Todos    *todo.Service
	Users    *user.Service
	Activity *activity.Service
	Views    *views.Service

	cfg     config.Config
	logger  *slog.Logger
	closers []io.Closer
}

// Option customizes New.
type Option func(*options)

type options struct {
	now      func() time.Time
	hashCost int
}

// WithClock sets the clock views use for "today" and "now".
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithHashCost overrides the bcrypt cost of password hashes.
func WithHashCost(cost int) Option {
	return func(o *options) { o.hashCost = cost }
}

// New opens the database, applies migrations and wires every service.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger, opts ...Option) (*App, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &App{cfg: cfg, logger: logger}

	if err := EnsureDBDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("preparing database path: %w", err)
	}
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.DB = db
	a.closers = append(a.closers, db)

	if err := db.RunMigrations(); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	guard, err := a.newGuard(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	todoRepo := sqlite.NewTodoRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	a.Activity = activity.NewService(activityRepo, logger)
	a.Todos = todo.NewService(todoRepo, activityRepo, guard, logger)
	secret, err := signingSecret(cfg.Auth)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Users = user.NewService(userRepo, sessionRepo, activityRepo, user.Options{
		Secret:   secret,
		TokenTTL: cfg.Auth.TokenTTL,
		HashCost: o.hashCost,
	}, logger)
	a.Views = views.NewService(a.Todos, views.Options{
		Now:          o.now,
		MonthPreview: cfg.Views.MonthPreview,
		Logger:       logger,
	})

	if _, err := a.Users.EnsureLocal(ctx, cfg.Auth.LocalUserID, cfg.Auth.LocalUserEmail); err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("creating local user: %w", err)
	}

	return a, nil
}

func (a *App) newGuard(ctx context.Context) (todo.Guard, error) {
	if a.cfg.Redis.URL == "" {
		return inflight.NewMemory(), nil
	}
	rdb, err := inflight.Dial(ctx, a.cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, rdb)
	a.logger.Info("using redis in-flight guard")
	return inflight.NewRedis(rdb, a.cfg.Redis.InflightTTL, a.logger), nil
}

// MCPServer builds the MCP server for the given transport mode.
func (a *App) MCPServer(mode string) *sdkmcp.Server {
	return mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Todos: a.Todos,
			Views: a.Views,
		},
		Resolver:      a.Users,
		AuthEnabled:   a.cfg.Auth.Enabled,
		LocalUserID:   a.cfg.Auth.LocalUserID,
		TransportMode: mode,
		Version:       Version,
		LogTraffic:    a.cfg.MCP.LogTraffic,
		Logger:        a.logger,
	})
}

// Handler returns the HTTP API, with the MCP endpoint mounted when enabled.
func (a *App) Handler() http.Handler {
	opts := transport.Options{
		AuthEnabled: a.cfg.Auth.Enabled,
		LocalUserID: a.cfg.Auth.LocalUserID,
		Logger:      a.logger,
	}
	if a.cfg.MCP.Enabled {
		server := a.MCPServer("http")
		opts.MCP = sdkmcp.NewStreamableHTTPHandler(
			func(*http.Request) *sdkmcp.Server { return server },
			&sdkmcp.StreamableHTTPOptions{SessionTimeout: a.cfg.MCP.SessionTimeout},
		)
		opts.MCPPath = a.cfg.MCP.Path
	}

	return transport.NewServer(transport.Services{
		Todos:    a.Todos,
		Users:    a.Users,
		Views:    a.Views,
		Activity: a.Activity,
	}, opts)
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i].Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// signingSecret returns the configured JWT secret. Without auth there may be
// none, so tokens from sign-in are signed with a per-process key.
func signingSecret(cfg config.AuthConfig) ([]byte, error) {
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret), nil
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating signing secret: %w", err)
	}
	return secret, nil
}

// EnsureDBDir creates the directory holding a database file.
func EnsureDBDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
