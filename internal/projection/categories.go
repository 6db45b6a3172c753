package projection

import (
	"github.com/rpggio/taskboard/internal/domain/todo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultCategories are offered even before any todo uses them.
var DefaultCategories = []string{"work", "personal", "health", "learning", "errands"}

// Category is a category filter option.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Categories returns the filter options: "all", then the defaults, then any
// other category in first-seen order. Empty categories are not listed.
func Categories(todos []todo.Todo) []Category {
	title := cases.Title(language.English)

	seen := map[string]bool{CategoryAll: true}
	out := []Category{{Value: CategoryAll, Label: title.String(CategoryAll)}}
	add := func(c string) {
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		out = append(out, Category{Value: c, Label: title.String(c)})
	}

	for _, c := range DefaultCategories {
		add(c)
	}
	for _, t := range todos {
		add(t.Category)
	}
	return out
}
