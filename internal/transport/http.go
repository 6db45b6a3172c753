package transport

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/taskboard/internal/domain/activity"
	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/domain/user"
	"github.com/rpggio/taskboard/internal/projection"
	"github.com/rpggio/taskboard/internal/views"
)

// TodoService defines todo operations needed by the API.
type TodoService interface {
	List(ctx context.Context, userID string) ([]todo.Todo, error)
	Get(ctx context.Context, userID, id string) (*todo.Todo, error)
	Create(ctx context.Context, userID string, fields todo.Fields) (*todo.Todo, error)
	Update(ctx context.Context, userID, id string, fields todo.Fields) (*todo.Todo, error)
	Toggle(ctx context.Context, userID, id string) (*todo.Todo, error)
	Delete(ctx context.Context, userID, id string) error
}

// UserService defines identity operations needed by the API.
type UserService interface {
	UserResolver
	SignUp(ctx context.Context, email, password string) (*user.User, error)
	SignIn(ctx context.Context, email, password string) (*user.SignInResult, error)
	SignOut(ctx context.Context, token string) error
	Current(ctx context.Context, userID string) (*user.User, error)
}

// ViewService defines the projected views needed by the API.
type ViewService interface {
	List(ctx context.Context, userID string, p projection.Params) (*views.ListView, error)
	Matrix(ctx context.Context, userID string, p projection.Params) (*views.MatrixView, error)
	Timetable(ctx context.Context, userID, date string, p projection.Params) (*views.TimetableView, error)
	Week(ctx context.Context, userID, anchor string, step int, p projection.Params) (*views.WeekView, error)
	Month(ctx context.Context, userID, anchor string, step int, p projection.Params) (*views.MonthView, error)
	Dashboard(ctx context.Context, userID, today string) (*views.DashboardView, error)
	Categories(ctx context.Context, userID string) ([]projection.Category, error)
}

// ActivityService defines activity operations needed by the API.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, userID string, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by the API.
type Services struct {
	Todos    TodoService
	Users    UserService
	Views    ViewService
	Activity ActivityService
}

// Options configures the HTTP server.
type Options struct {
	// AuthEnabled requires bearer tokens; otherwise every request acts as
	// LocalUserID.
	AuthEnabled bool
	LocalUserID string
	// MCP, when set, is mounted at MCPPath behind the same authentication.
	MCP     http.Handler
	MCPPath string
	// Rand picks quotes and affirmations.
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	svc    Services
	logger *slog.Logger

	randMu sync.Mutex
	rand   *rand.Rand
}

// NewServer creates an HTTP server router with middleware.
func NewServer(svc Services, opts Options) *chi.Mux {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}

	srv := &Server{svc: svc, logger: opts.Logger, rand: opts.Rand}

	r := chi.NewRouter()
	r.Use(requestLogger(opts.Logger))

	r.Get("/health", srv.handleHealth)
	r.Post("/api/auth/signup", srv.handleSignUp)
	r.Post("/api/auth/signin", srv.handleSignIn)

	r.Group(func(r chi.Router) {
		if opts.AuthEnabled {
			r.Use(AuthMiddleware(svc.Users))
		} else {
			r.Use(LocalUserMiddleware(opts.LocalUserID))
		}

		r.Post("/api/auth/signout", srv.handleSignOut)
		r.Get("/api/me", srv.handleMe)

		r.Route("/api/todos", func(r chi.Router) {
			r.Get("/", srv.handleListTodos)
			r.Post("/", srv.handleCreateTodo)
			r.Get("/{id}", srv.handleGetTodo)
			r.Put("/{id}", srv.handleUpdateTodo)
			r.Delete("/{id}", srv.handleDeleteTodo)
			r.Post("/{id}/toggle", srv.handleToggleTodo)
		})

		r.Route("/api/views", func(r chi.Router) {
			r.Get("/list", srv.handleListView)
			r.Get("/matrix", srv.handleMatrixView)
			r.Get("/timetable", srv.handleTimetableView)
			r.Get("/week", srv.handleWeekView)
			r.Get("/month", srv.handleMonthView)
		})

		r.Get("/api/dashboard", srv.handleDashboard)
		r.Get("/api/categories", srv.handleCategories)
		r.Get("/api/activity", srv.handleActivity)
		r.Get("/api/motivation", srv.handleMotivation)

		if opts.MCP != nil {
			path := opts.MCPPath
			if path == "" {
				path = "/mcp"
			}
			r.Handle(path, opts.MCP)
			r.Handle(path+"/*", opts.MCP)
		}
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// userID returns the authenticated user. The auth group guarantees one.
func (s *Server) userID(r *http.Request) string {
	id, _ := UserFromContext(r.Context())
	return id
}
