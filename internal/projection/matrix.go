package projection

import "github.com/rpggio/taskboard/internal/domain/todo"

// Quadrants is the Eisenhower partition of a todo sequence.
//
// High priority is always urgent and important and medium is always important
// but not urgent, whatever their scheduling. Only low priority todos are split
// by scheduling: a scheduled date makes them urgent.
type Quadrants struct {
	UrgentImportant       []todo.Todo `json:"urgent_important"`
	NotUrgentImportant    []todo.Todo `json:"not_urgent_important"`
	UrgentNotImportant    []todo.Todo `json:"urgent_not_important"`
	NotUrgentNotImportant []todo.Todo `json:"not_urgent_not_important"`
}

// Matrix buckets todos into quadrants, keeping input order in each. A todo
// with no priority counts as medium; one with an unknown priority is left out.
func Matrix(todos []todo.Todo) Quadrants {
	q := Quadrants{
		UrgentImportant:       []todo.Todo{},
		NotUrgentImportant:    []todo.Todo{},
		UrgentNotImportant:    []todo.Todo{},
		NotUrgentNotImportant: []todo.Todo{},
	}
	for _, t := range todos {
		switch t.Priority {
		case todo.PriorityHigh:
			q.UrgentImportant = append(q.UrgentImportant, t)
		case todo.PriorityMedium, "":
			q.NotUrgentImportant = append(q.NotUrgentImportant, t)
		case todo.PriorityLow:
			if t.Scheduled() {
				q.UrgentNotImportant = append(q.UrgentNotImportant, t)
			} else {
				q.NotUrgentNotImportant = append(q.NotUrgentNotImportant, t)
			}
		}
	}
	return q
}

// Len returns the number of todos across all quadrants.
func (q Quadrants) Len() int {
	return len(q.UrgentImportant) + len(q.NotUrgentImportant) +
		len(q.UrgentNotImportant) + len(q.NotUrgentNotImportant)
}
