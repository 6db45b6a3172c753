package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `taskboard keeps a personal todo list and lays it out in several views.

- Mutate with create_todo, update_todo, toggle_todo, delete_todo. update_todo replaces every field.
- Read with list_todos, view_matrix, view_timetable, view_week, view_month, get_dashboard.
- Dates are YYYY-MM-DD and times HH:MM. Views default to today.
- A MUTATION_IN_FLIGHT error means another change to the same todo is running; retry after it finishes.

Read taskboard://docs/views for how each view places todos.`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "taskboard://docs/views",
		Name:        "docs_views",
		Title:       "How views place todos",
		Description: "Rules each view uses to select and group todos.",
		Content: `# Views

All views apply the status and category filters first.

## Matrix
- high priority: urgent and important
- medium priority: important, not urgent
- low priority with a scheduled date: urgent, not important
- low priority without a date: neither urgent nor important

## Timetable
A todo with a scheduled date only appears on that date; an unscheduled todo appears every day.
It occupies hour h when its scheduled time is in hour h, or when it has both start and end
times and h lies between the start hour and the end hour inclusive.

## Week and month
Weeks start on Monday. Only todos whose scheduled date equals the day are shown.
The month grid always has 42 cells and includes days of the neighbouring months.

## Progress
Rate is the completed percentage rounded half up; it is 0 when there are no todos.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, _ *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      doc.URI,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
