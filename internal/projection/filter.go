package projection

import "github.com/rpggio/taskboard/internal/domain/todo"

// Status selects todos by completion.
type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// ParseStatus maps a status name to a Status. The empty string means all.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case "", StatusAll:
		return StatusAll, true
	case StatusActive:
		return StatusActive, true
	case StatusCompleted:
		return StatusCompleted, true
	}
	return "", false
}

// Params are the view parameters every projection starts from. The zero
// value matches every todo.
type Params struct {
	Status   Status `json:"status"`
	Category string `json:"category"`
}

// Match reports whether t passes both the status and the category filter.
func (p Params) Match(t todo.Todo) bool {
	switch p.Status {
	case StatusActive:
		if t.Completed {
			return false
		}
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	}
	if p.Category == "" || p.Category == CategoryAll {
		return true
	}
	return t.Category == p.Category
}

// Filter returns the todos matching p in their input order.
func Filter(todos []todo.Todo, p Params) []todo.Todo {
	out := make([]todo.Todo, 0, len(todos))
	for _, t := range todos {
		if p.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
