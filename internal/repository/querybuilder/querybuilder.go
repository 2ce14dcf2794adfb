// Package querybuilder holds the SQL fragments shared by the task stores.
package querybuilder

import (
	"strings"

	"github.com/dtroode/tasklist-server/internal/model"
)

// Placeholder renders the n-th (1-based) bind parameter of a dialect.
type Placeholder func(n int) string

// Question renders sqlite style "?" parameters.
func Question(int) string { return "?" }

// OrderBy returns the ORDER BY expression for sort. Unknown values fall back to newest first.
func OrderBy(sort model.TaskSort) string {
	switch sort {
	case model.SortPriority:
		return "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 WHEN 'low' THEN 2 ELSE 3 END, id DESC"
	case model.SortDueDate:
		return "due_date IS NULL, due_date ASC, id DESC"
	default:
		return "id DESC"
	}
}

// UpdateSet renders the SET list for patch starting at parameter 1 and returns its arguments.
// An empty due date is stored as NULL.
func UpdateSet(patch model.TaskPatch, ph Placeholder) (string, []any) {
	var (
		cols []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		cols = append(cols, col+" = "+ph(len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Completed != nil {
		add("completed", *patch.Completed)
	}
	if patch.Priority != nil {
		add("priority", string(*patch.Priority))
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			add("due_date", nil)
		} else {
			add("due_date", *patch.DueDate)
		}
	}

	return strings.Join(cols, ", "), args
}
