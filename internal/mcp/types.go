package mcp

import (
	"time"

	"github.com/rpggio/taskboard/internal/domain/todo"
	"github.com/rpggio/taskboard/internal/projection"
)

type ListTodosInput struct {
	Status   string `json:"status,omitempty" jsonschema:"all, active or completed (default all)"`
	Category string `json:"category,omitempty" jsonschema:"category to keep, or all (default all)"`
}

type CreateTodoInput struct {
	Text          string `json:"text" jsonschema:"what needs doing"`
	Category      string `json:"category,omitempty" jsonschema:"free-form category such as work or personal"`
	Priority      string `json:"priority,omitempty" jsonschema:"high, medium or low (default medium)"`
	ScheduledDate string `json:"scheduled_date,omitempty" jsonschema:"YYYY-MM-DD"`
	ScheduledTime string `json:"scheduled_time,omitempty" jsonschema:"HH:MM"`
	StartTime     string `json:"start_time,omitempty" jsonschema:"HH:MM, requires end_time"`
	EndTime       string `json:"end_time,omitempty" jsonschema:"HH:MM, requires start_time"`
}

func (in CreateTodoInput) fields() todo.Fields {
	return todo.Fields{
		Text:          in.Text,
		Category:      in.Category,
		Priority:      todo.Priority(in.Priority),
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
	}
}

// UpdateTodoInput replaces every field of a todo.
type UpdateTodoInput struct {
	ID            string `json:"id" jsonschema:"todo identifier"`
	Text          string `json:"text" jsonschema:"what needs doing"`
	Category      string `json:"category,omitempty" jsonschema:"free-form category"`
	Priority      string `json:"priority,omitempty" jsonschema:"high, medium or low (default medium)"`
	ScheduledDate string `json:"scheduled_date,omitempty" jsonschema:"YYYY-MM-DD, omit to unschedule"`
	ScheduledTime string `json:"scheduled_time,omitempty" jsonschema:"HH:MM"`
	StartTime     string `json:"start_time,omitempty" jsonschema:"HH:MM, requires end_time"`
	EndTime       string `json:"end_time,omitempty" jsonschema:"HH:MM, requires start_time"`
}

func (in UpdateTodoInput) fields() todo.Fields {
	return CreateTodoInput{
		Text:          in.Text,
		Category:      in.Category,
		Priority:      in.Priority,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
	}.fields()
}

type TodoIDInput struct {
	ID string `json:"id" jsonschema:"todo identifier"`
}

type TimetableInput struct {
	Date     string `json:"date,omitempty" jsonschema:"YYYY-MM-DD (default today)"`
	Status   string `json:"status,omitempty" jsonschema:"all, active or completed (default all)"`
	Category string `json:"category,omitempty" jsonschema:"category to keep, or all (default all)"`
}

type CalendarInput struct {
	Anchor   string `json:"anchor,omitempty" jsonschema:"any date inside the period, YYYY-MM-DD (default today)"`
	Step     int    `json:"step,omitempty" jsonschema:"periods to move from the anchor, at most 1200 either way, negative for the past"`
	Status   string `json:"status,omitempty" jsonschema:"all, active or completed (default all)"`
	Category string `json:"category,omitempty" jsonschema:"category to keep, or all (default all)"`
}

type DashboardInput struct {
	Today string `json:"today,omitempty" jsonschema:"YYYY-MM-DD (default today)"`
}

// TodoOutput is a todo as tools return it.
type TodoOutput struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Completed     bool   `json:"completed"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	CreatedAt     string `json:"created_at"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
}

func todoOutput(t todo.Todo) TodoOutput {
	return TodoOutput{
		ID:            t.ID,
		Text:          t.Text,
		Completed:     t.Completed,
		Category:      t.Category,
		Priority:      string(t.Priority),
		CreatedAt:     t.CreatedAt.UTC().Format(time.RFC3339),
		ScheduledDate: t.ScheduledDate,
		ScheduledTime: t.ScheduledTime,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
	}
}

func todoOutputs(todos []todo.Todo) []TodoOutput {
	out := make([]TodoOutput, 0, len(todos))
	for _, t := range todos {
		out = append(out, todoOutput(t))
	}
	return out
}

type ProgressOutput struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Rate      int `json:"rate"`
}

func progressOutput(s projection.Stats) ProgressOutput {
	return ProgressOutput{Completed: s.Completed, Total: s.Total, Rate: s.Rate}
}

type TodoListOutput struct {
	Todos    []TodoOutput   `json:"todos"`
	Progress ProgressOutput `json:"progress"`
	Message  string         `json:"message"`
}

type DeleteTodoOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type MatrixOutput struct {
	UrgentImportant       []TodoOutput `json:"urgent_important"`
	NotUrgentImportant    []TodoOutput `json:"not_urgent_important"`
	UrgentNotImportant    []TodoOutput `json:"urgent_not_important"`
	NotUrgentNotImportant []TodoOutput `json:"not_urgent_not_important"`
}

type HourSlotOutput struct {
	Hour          int          `json:"hour"`
	Label         string       `json:"label"`
	IsCurrentHour bool         `json:"is_current_hour"`
	Todos         []TodoOutput `json:"todos"`
}

type TimetableOutput struct {
	Date  string           `json:"date"`
	Slots []HourSlotOutput `json:"slots"`
}

type WeekDayOutput struct {
	Date    string       `json:"date"`
	Weekday string       `json:"weekday"`
	IsToday bool         `json:"is_today"`
	Todos   []TodoOutput `json:"todos"`
}

type WeekOutput struct {
	WeekStart string          `json:"week_start"`
	Previous  string          `json:"previous"`
	Next      string          `json:"next"`
	Days      []WeekDayOutput `json:"days"`
}

type MonthCellOutput struct {
	Date           string       `json:"date"`
	Day            int          `json:"day"`
	IsCurrentMonth bool         `json:"is_current_month"`
	IsToday        bool         `json:"is_today"`
	Count          int          `json:"count"`
	Preview        []TodoOutput `json:"preview"`
	Hidden         int          `json:"hidden"`
}

type MonthOutput struct {
	Month    string            `json:"month"`
	Previous string            `json:"previous"`
	Next     string            `json:"next"`
	Cells    []MonthCellOutput `json:"cells"`
}

type DashboardOutput struct {
	Date                string         `json:"date"`
	Overall             ProgressOutput `json:"overall"`
	Today               ProgressOutput `json:"today"`
	PendingHighPriority int            `json:"pending_high_priority"`
	Band                string         `json:"band"`
	Message             string         `json:"message"`
}
