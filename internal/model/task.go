package model

import (
	"context"
	"time"
)

// TaskStore defines persistence operations for tasks. Every method is scoped by owner.
type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID int64, sort TaskSort) ([]Task, error)
	Create(ctx context.Context, task Task) (Task, error)
	Update(ctx context.Context, ownerID, id int64, patch TaskPatch) error
	Delete(ctx context.Context, ownerID, id int64) error
}

// Task represents a to-do item owned by a single user.
type Task struct {
	ID        int64
	OwnerID   int64
	Title     string
	Completed bool
	Priority  Priority
	Status    Status
	DueDate   *string
	CreatedAt time.Time
}

// Priority enumerates task priorities.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Status enumerates task workflow states.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskSort selects the ordering of a task listing.
type TaskSort string

const (
	// SortNewest orders by id descending.
	SortNewest TaskSort = ""
	// SortPriority orders high, medium, low.
	SortPriority TaskSort = "priority"
	// SortDueDate orders by due date ascending with undated tasks last.
	SortDueDate TaskSort = "dueDate"
)

// DueDateLayout is the accepted due date format.
const DueDateLayout = "2006-01-02"

// NewTask contains the caller-supplied fields of a task being created.
type NewTask struct {
	Title    string
	Priority *Priority
	Status   *Status
	DueDate  *string
}

// TaskPatch contains the fields of a task update. Nil fields are left untouched;
// an empty DueDate clears the stored date.
type TaskPatch struct {
	Title     *string
	Completed *bool
	Priority  *Priority
	Status    *Status
	DueDate   *string
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Completed == nil && p.Priority == nil && p.Status == nil && p.DueDate == nil
}
