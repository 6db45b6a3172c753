// Package views loads a user's todos and projects them into the list,
// matrix, timetable, week, month and dashboard layouts. Both the HTTP API
// and the MCP tools read views through it.
package views

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/motivation"
	"github.com/rpggio/taskboard/internal/projection"
)

// TodoLister provides the todo collection a view is built from.
type TodoLister interface {
	List(ctx context.Context, userID string) ([]todo.Todo, error)
}

// Options configures the view service.
type Options struct {
	// Now supplies "today" and "now" when a query leaves them out.
	Now func() time.Time
	// MonthPreview is how many todos each month cell previews.
	MonthPreview int
	Logger       *slog.Logger
}

// Service builds views from the todo store.
type Service struct {
	todos   TodoLister
	now     func() time.Time
	preview int
	logger  *slog.Logger
}

// NewService creates a new view service.
func NewService(todos TodoLister, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MonthPreview <= 0 {
		opts.MonthPreview = projection.DefaultPreview
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		todos:   todos,
		now:     opts.Now,
		preview: opts.MonthPreview,
		logger:  opts.Logger,
	}
}

// ParseParams validates raw status and category filters. Empty values mean
// "all".
func ParseParams(status, category string) (projection.Params, error) {
	s, ok := projection.ParseStatus(status)
	if !ok {
		return projection.Params{}, fmt.Errorf("%w: unknown status %q", ErrInvalidQuery, status)
	}
	if category == "" {
		category = projection.CategoryAll
	}
	return projection.Params{Status: s, Category: category}, nil
}

// ListView is the filtered list with overall progress.
type ListView struct {
	Params   projection.Params `json:"params"`
	Todos    []todo.Todo       `json:"todos"`
	Progress projection.Stats  `json:"progress"`
	Message  string            `json:"message"`
}

// List returns the filtered todos. Progress covers every todo so the bar
// does not move when filters change.
func (s *Service) List(ctx context.Context, userID string, p projection.Params) (*ListView, error) {
	all, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress := projection.Progress(all)
	return &ListView{
		Params:   p,
		Todos:    projection.Filter(all, p),
		Progress: progress,
		Message:  motivation.ProgressMessage(progress.Rate),
	}, nil
}

// MatrixView is the Eisenhower matrix of the filtered todos.
type MatrixView struct {
	Params    projection.Params    `json:"params"`
	Quadrants projection.Quadrants `json:"quadrants"`
}

// Matrix buckets the filtered todos into quadrants.
func (s *Service) Matrix(ctx context.Context, userID string, p projection.Params) (*MatrixView, error) {
	filtered, err := s.filtered(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return &MatrixView{Params: p, Quadrants: projection.Matrix(filtered)}, nil
}

// TimetableView is the hourly layout of one day.
type TimetableView struct {
	Params projection.Params     `json:"params"`
	Date   string                `json:"date"`
	Slots  []projection.HourSlot `json:"slots"`
}

// Timetable lays the filtered todos out over date, today when empty.
func (s *Service) Timetable(ctx context.Context, userID, date string, p projection.Params) (*TimetableView, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	filtered, err := s.filtered(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return &TimetableView{
		Params: p,
		Date:   projection.FormatDate(day),
		Slots:  projection.Timetable(filtered, day, s.now()),
	}, nil
}

// WeekView is seven days starting on a Monday.
type WeekView struct {
	Params    projection.Params    `json:"params"`
	Anchor    string               `json:"anchor"`
	WeekStart string               `json:"week_start"`
	Previous  string               `json:"previous"`
	Next      string               `json:"next"`
	Days      []projection.WeekDay `json:"days"`
}

// Week shows the week of anchor (today when empty) moved by step weeks.
func (s *Service) Week(ctx context.Context, userID, anchor string, step int, p projection.Params) (*WeekView, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	day, err := s.resolveDate(anchor)
	if err != nil {
		return nil, err
	}
	day = projection.ShiftWeek(day, step)

	filtered, err := s.filtered(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	return &WeekView{
		Params:    p,
		Anchor:    projection.FormatDate(day),
		WeekStart: projection.FormatDate(projection.WeekStart(day)),
		Previous:  projection.FormatDate(projection.ShiftWeek(day, -1)),
		Next:      projection.FormatDate(projection.ShiftWeek(day, 1)),
		Days:      projection.Week(filtered, day, projection.Today(s.now)),
	}, nil
}

// MonthCell is a grid cell with its preview.
type MonthCell struct {
	projection.Cell
	Preview []todo.Todo `json:"preview"`
	Hidden  int         `json:"hidden"`
}

// MonthView is the 42-cell grid of one month.
type MonthView struct {
	Params   projection.Params `json:"params"`
	Anchor   string            `json:"anchor"`
	Month    string            `json:"month"`
	Previous string            `json:"previous"`
	Next     string            `json:"next"`
	Cells    []MonthCell       `json:"cells"`
}

// Month shows the month of anchor (today when empty) moved by step months.
func (s *Service) Month(ctx context.Context, userID, anchor string, step int, p projection.Params) (*MonthView, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	day, err := s.resolveDate(anchor)
	if err != nil {
		return nil, err
	}
	if step != 0 {
		day = projection.ShiftMonth(day, step)
	}

	filtered, err := s.filtered(ctx, userID, p)
	if err != nil {
		return nil, err
	}
	grid := projection.Month(filtered, day, projection.Today(s.now))

	cells := make([]MonthCell, len(grid.Cells))
	for i, c := range grid.Cells {
		shown, hidden := c.Preview(s.preview)
		cells[i] = MonthCell{Cell: c, Preview: shown, Hidden: hidden}
	}
	return &MonthView{
		Params:   p,
		Anchor:   projection.FormatDate(day),
		Month:    grid.Month,
		Previous: projection.FormatDate(projection.ShiftMonth(day, -1)),
		Next:     projection.FormatDate(projection.ShiftMonth(day, 1)),
		Cells:    cells,
	}, nil
}

// DashboardView is the dashboard summary as of a date.
type DashboardView struct {
	Date string `json:"date"`
	projection.DashboardStats
}

// Dashboard summarizes every todo as of today (the current date when empty).
func (s *Service) Dashboard(ctx context.Context, userID, today string) (*DashboardView, error) {
	day, err := s.resolveDate(today)
	if err != nil {
		return nil, err
	}
	all, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &DashboardView{
		Date:           projection.FormatDate(day),
		DashboardStats: projection.Dashboard(all, day),
	}, nil
}

// Categories lists the category filter options for the user's todos.
func (s *Service) Categories(ctx context.Context, userID string) ([]projection.Category, error) {
	all, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return projection.Categories(all), nil
}

func (s *Service) load(ctx context.Context, userID string) ([]todo.Todo, error) {
	todos, err := s.todos.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading todos: %w", err)
	}
	return todos, nil
}

func (s *Service) filtered(ctx context.Context, userID string, p projection.Params) ([]todo.Todo, error) {
	all, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return projection.Filter(all, p), nil
}

func (s *Service) resolveDate(value string) (time.Time, error) {
	if value == "" {
		return projection.Today(s.now), nil
	}
	day, err := projection.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidQuery, value)
	}
	return day, nil
}

func checkStep(step int) error {
	if step < -MaxStep || step > MaxStep {
		return fmt.Errorf("%w: step must be between %d and %d", ErrInvalidQuery, -MaxStep, MaxStep)
	}
	return nil
}
