package projection

import (
	"time"

	"github.com/rpggio/taskboard/internal/domain/todo"
)

const (
	// DaysPerWeek is the length of the week view.
	DaysPerWeek = 7
	// GridCells is the size of the month grid: six Monday-first rows.
	GridCells = 6 * DaysPerWeek
	// DefaultPreview is how many todos a month cell shows before "+N more".
	DefaultPreview = 3
)

// WeekStart returns the Monday of anchor's week. A Sunday belongs to the
// week that started six days earlier.
func WeekStart(anchor time.Time) time.Time {
	d := Day(anchor)
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -back)
}

// WeekDay is one column of the week view.
type WeekDay struct {
	Date    string      `json:"date"`
	Weekday string      `json:"weekday"`
	IsToday bool        `json:"is_today"`
	Todos   []todo.Todo `json:"todos"`
}

// Week buckets scheduled todos into the seven days of anchor's week.
// Unscheduled todos never appear.
func Week(todos []todo.Todo, anchor, today time.Time) []WeekDay {
	buckets := bucketByDate(todos)
	todayDate := FormatDate(Day(today))
	start := WeekStart(anchor)

	days := make([]WeekDay, DaysPerWeek)
	for i := range days {
		d := start.AddDate(0, 0, i)
		date := FormatDate(d)
		days[i] = WeekDay{
			Date:    date,
			Weekday: d.Weekday().String(),
			IsToday: date == todayDate,
			Todos:   nonNil(buckets[date]),
		}
	}
	return days
}

// Cell is one day of the month grid.
type Cell struct {
	Date           string      `json:"date"`
	Day            int         `json:"day"`
	IsCurrentMonth bool        `json:"is_current_month"`
	IsToday        bool        `json:"is_today"`
	Todos          []todo.Todo `json:"todos"`
	Count          int         `json:"count"`
}

// Preview returns at most n of the cell's todos and how many were left out.
func (c Cell) Preview(n int) (shown []todo.Todo, hidden int) {
	if n < 0 {
		n = 0
	}
	if len(c.Todos) <= n {
		return c.Todos, 0
	}
	return c.Todos[:n], len(c.Todos) - n
}

// MonthGrid returns the empty 42-cell grid for anchor's month. The first
// cell is the Monday on or before the 1st; cells outside the month are
// padding from the neighbouring months.
func MonthGrid(anchor time.Time) []Cell {
	d := Day(anchor)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := WeekStart(first)

	cells := make([]Cell, GridCells)
	for i := range cells {
		day := start.AddDate(0, 0, i)
		cells[i] = Cell{
			Date:           FormatDate(day),
			Day:            day.Day(),
			IsCurrentMonth: day.Month() == first.Month(),
			Todos:          []todo.Todo{},
		}
	}
	return cells
}

// MonthView is the month grid with todos bucketed into its cells.
type MonthView struct {
	Month string `json:"month"` // "2024-01"
	Cells []Cell `json:"cells"`
}

// Month buckets scheduled todos into anchor's month grid. Every cell carries
// its full bucket; truncation is left to Cell.Preview.
func Month(todos []todo.Todo, anchor, today time.Time) MonthView {
	buckets := bucketByDate(todos)
	todayDate := FormatDate(Day(today))

	cells := MonthGrid(anchor)
	for i := range cells {
		c := &cells[i]
		c.Todos = nonNil(buckets[c.Date])
		c.Count = len(c.Todos)
		c.IsToday = c.Date == todayDate
	}
	return MonthView{
		Month: Day(anchor).Format("2006-01"),
		Cells: cells,
	}
}

func nonNil(todos []todo.Todo) []todo.Todo {
	if todos == nil {
		return []todo.Todo{}
	}
	return todos
}
