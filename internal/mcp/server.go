package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/projection"
	"github.com/rpggio/taskboard/internal/views"
)

// TodoService defines todo operations needed by MCP.
type TodoService interface {
	List(ctx context.Context, userID string) ([]todo.Todo, error)
	Create(ctx context.Context, userID string, fields todo.Fields) (*todo.Todo, error)
	Update(ctx context.Context, userID, id string, fields todo.Fields) (*todo.Todo, error)
	Toggle(ctx context.Context, userID, id string) (*todo.Todo, error)
	Delete(ctx context.Context, userID, id string) error
}

// ViewService defines the projected views needed by MCP.
type ViewService interface {
	List(ctx context.Context, userID string, p projection.Params) (*views.ListView, error)
	Matrix(ctx context.Context, userID string, p projection.Params) (*views.MatrixView, error)
	Timetable(ctx context.Context, userID, date string, p projection.Params) (*views.TimetableView, error)
	Week(ctx context.Context, userID, anchor string, step int, p projection.Params) (*views.WeekView, error)
	Month(ctx context.Context, userID, anchor string, step int, p projection.Params) (*views.MonthView, error)
	Dashboard(ctx context.Context, userID, today string) (*views.DashboardView, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Todos TodoService
	Views ViewService
}

// Config contains server configuration.
type Config struct {
	Services    Services
	Resolver    UserResolver
	AuthEnabled bool
	// LocalUserID acts for every call when auth is disabled.
	LocalUserID   string
	TransportMode string // "stdio" or "http"
	Version       string
	// LogTraffic logs every message at debug level.
	LogTraffic bool
	Logger     *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "taskboard",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio is local only and never authenticates.
	if cfg.TransportMode != "stdio" && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	} else {
		server.AddReceivingMiddleware(noAuthMiddleware(cfg.LocalUserID))
	}
	if cfg.LogTraffic {
		server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
		server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))
	}

	registerTools(server, cfg.Services, cfg.Logger)

	return server
}
