package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/taskboard/internal/views"
)

func registerTools(server *sdkmcp.Server, svc Services, logger *slog.Logger) {
	t := &tools{svc: svc, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_todos",
		Description: "List todos newest first, filtered by status and category, with overall progress",
	}, t.listTodos)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_todo",
		Description: "Create a todo; it starts not completed",
	}, t.createTodo)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_todo",
		Description: "Replace every editable field of a todo; omitted optional fields are cleared",
	}, t.updateTodo)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_todo",
		Description: "Flip a todo between completed and not completed",
	}, t.toggleTodo)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_todo",
		Description: "Delete a todo permanently",
	}, t.deleteTodo)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "view_matrix",
		Description: "Eisenhower matrix: high is urgent and important, medium is important, scheduled low is urgent, other low is neither",
	}, t.viewMatrix)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "view_timetable",
		Description: "24 hourly slots for one day; unscheduled todos appear on every day",
	}, t.viewTimetable)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "view_week",
		Description: "Seven days from Monday holding the todos scheduled on each date",
	}, t.viewWeek)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "view_month",
		Description: "42-cell Monday-first month grid with a short preview per day",
	}, t.viewMonth)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Overall and today's progress, pending high priority count and a progress message",
	}, t.getDashboard)
}

type tools struct {
	svc    Services
	logger *slog.Logger
}

func (t *tools) listTodos(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListTodosInput) (*sdkmcp.CallToolResult, TodoListOutput, error) {
	p, err := views.ParseParams(in.Status, in.Category)
	if err != nil {
		return nil, TodoListOutput{}, toolError(t.logger, "list_todos", err)
	}
	view, err := t.svc.Views.List(ctx, getUserID(ctx), p)
	if err != nil {
		return nil, TodoListOutput{}, toolError(t.logger, "list_todos", err)
	}
	return nil, TodoListOutput{
		Todos:    todoOutputs(view.Todos),
		Progress: progressOutput(view.Progress),
		Message:  view.Message,
	}, nil
}

func (t *tools) createTodo(ctx context.Context, _ *sdkmcp.CallToolRequest, in CreateTodoInput) (*sdkmcp.CallToolResult, TodoOutput, error) {
	created, err := t.svc.Todos.Create(ctx, getUserID(ctx), in.fields())
	if err != nil {
		return nil, TodoOutput{}, toolError(t.logger, "create_todo", err)
	}
	return nil, todoOutput(*created), nil
}

func (t *tools) updateTodo(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateTodoInput) (*sdkmcp.CallToolResult, TodoOutput, error) {
	updated, err := t.svc.Todos.Update(ctx, getUserID(ctx), in.ID, in.fields())
	if err != nil {
		return nil, TodoOutput{}, toolError(t.logger, "update_todo", err)
	}
	return nil, todoOutput(*updated), nil
}

func (t *tools) toggleTodo(ctx context.Context, _ *sdkmcp.CallToolRequest, in TodoIDInput) (*sdkmcp.CallToolResult, TodoOutput, error) {
	toggled, err := t.svc.Todos.Toggle(ctx, getUserID(ctx), in.ID)
	if err != nil {
		return nil, TodoOutput{}, toolError(t.logger, "toggle_todo", err)
	}
	return nil, todoOutput(*toggled), nil
}

func (t *tools) deleteTodo(ctx context.Context, _ *sdkmcp.CallToolRequest, in TodoIDInput) (*sdkmcp.CallToolResult, DeleteTodoOutput, error) {
	if err := t.svc.Todos.Delete(ctx, getUserID(ctx), in.ID); err != nil {
		return nil, DeleteTodoOutput{}, toolError(t.logger, "delete_todo", err)
	}
	return nil, DeleteTodoOutput{ID: in.ID, Deleted: true}, nil
}

func (t *tools) viewMatrix(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListTodosInput) (*sdkmcp.CallToolResult, MatrixOutput, error) {
	p, err := views.ParseParams(in.Status, in.Category)
	if err != nil {
		return nil, MatrixOutput{}, toolError(t.logger, "view_matrix", err)
	}
	view, err := t.svc.Views.Matrix(ctx, getUserID(ctx), p)
	if err != nil {
		return nil, MatrixOutput{}, toolError(t.logger, "view_matrix", err)
	}
	q := view.Quadrants
	return nil, MatrixOutput{
		UrgentImportant:       todoOutputs(q.UrgentImportant),
		NotUrgentImportant:    todoOutputs(q.NotUrgentImportant),
		UrgentNotImportant:    todoOutputs(q.UrgentNotImportant),
		NotUrgentNotImportant: todoOutputs(q.NotUrgentNotImportant),
	}, nil
}

func (t *tools) viewTimetable(ctx context.Context, _ *sdkmcp.CallToolRequest, in TimetableInput) (*sdkmcp.CallToolResult, TimetableOutput, error) {
	p, err := views.ParseParams(in.Status, in.Category)
	if err != nil {
		return nil, TimetableOutput{}, toolError(t.logger, "view_timetable", err)
	}
	view, err := t.svc.Views.Timetable(ctx, getUserID(ctx), in.Date, p)
	if err != nil {
		return nil, TimetableOutput{}, toolError(t.logger, "view_timetable", err)
	}

	out := TimetableOutput{Date: view.Date, Slots: make([]HourSlotOutput, 0, len(view.Slots))}
	for _, slot := range view.Slots {
		out.Slots = append(out.Slots, HourSlotOutput{
			Hour:          slot.Hour,
			Label:         slot.Label,
			IsCurrentHour: slot.IsCurrentHour,
			Todos:         todoOutputs(slot.Todos),
		})
	}
	return nil, out, nil
}

func (t *tools) viewWeek(ctx context.Context, _ *sdkmcp.CallToolRequest, in CalendarInput) (*sdkmcp.CallToolResult, WeekOutput, error) {
	p, err := views.ParseParams(in.Status, in.Category)
	if err != nil {
		return nil, WeekOutput{}, toolError(t.logger, "view_week", err)
	}
	view, err := t.svc.Views.Week(ctx, getUserID(ctx), in.Anchor, in.Step, p)
	if err != nil {
		return nil, WeekOutput{}, toolError(t.logger, "view_week", err)
	}

	out := WeekOutput{
		WeekStart: view.WeekStart,
		Previous:  view.Previous,
		Next:      view.Next,
		Days:      make([]WeekDayOutput, 0, len(view.Days)),
	}
	for _, day := range view.Days {
		out.Days = append(out.Days, WeekDayOutput{
			Date:    day.Date,
			Weekday: day.Weekday,
			IsToday: day.IsToday,
			Todos:   todoOutputs(day.Todos),
		})
	}
	return nil, out, nil
}

func (t *tools) viewMonth(ctx context.Context, _ *sdkmcp.CallToolRequest, in CalendarInput) (*sdkmcp.CallToolResult, MonthOutput, error) {
	p, err := views.ParseParams(in.Status, in.Category)
	if err != nil {
		return nil, MonthOutput{}, toolError(t.logger, "view_month", err)
	}
	view, err := t.svc.Views.Month(ctx, getUserID(ctx), in.Anchor, in.Step, p)
	if err != nil {
		return nil, MonthOutput{}, toolError(t.logger, "view_month", err)
	}

	out := MonthOutput{
		Month:    view.Month,
		Previous: view.Previous,
		Next:     view.Next,
		Cells:    make([]MonthCellOutput, 0, len(view.Cells)),
	}
	for _, c := range view.Cells {
		out.Cells = append(out.Cells, MonthCellOutput{
			Date:           c.Date,
			Day:            c.Day,
			IsCurrentMonth: c.IsCurrentMonth,
			IsToday:        c.IsToday,
			Count:          c.Count,
			Preview:        todoOutputs(c.Preview),
			Hidden:         c.Hidden,
		})
	}
	return nil, out, nil
}

func (t *tools) getDashboard(ctx context.Context, _ *sdkmcp.CallToolRequest, in DashboardInput) (*sdkmcp.CallToolResult, DashboardOutput, error) {
	view, err := t.svc.Views.Dashboard(ctx, getUserID(ctx), in.Today)
	if err != nil {
		return nil, DashboardOutput{}, toolError(t.logger, "get_dashboard", err)
	}
	return nil, DashboardOutput{
		Date:                view.Date,
		Overall:             progressOutput(view.Overall),
		Today:               progressOutput(view.Today),
		PendingHighPriority: view.PendingHighPriority,
		Band:                view.Band.String(),
		Message:             view.Message,
	}, nil
}
