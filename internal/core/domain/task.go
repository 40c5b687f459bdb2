package domain

import (
	"fmt"
	"strings"
)

// Priority ranks a task. Stored lowercase.
type Priority string

// Available priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultPriority is assigned when the user does not choose one.
const DefaultPriority = PriorityMedium

// IsValid returns true if the priority is recognised.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority normalises user input (case and surrounding space) and
// returns the matching priority. Unknown values wrap ErrInvalidPriority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q (want one of low, medium, high)", ErrInvalidPriority, s)
	}
	return p, nil
}

// AllPriorities returns all priorities, lowest first.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Task is a single to-do record.
// Field order matches the persisted document.
type Task struct {
	// Description is user-supplied text, opaque to the system.
	Description string `json:"description" validate:"required"`

	// Done is false at creation and only ever flips to true.
	Done bool `json:"done"`

	// Due is the optional due date.
	Due DueDate `json:"due"`

	// Priority is one of low, medium, high.
	Priority Priority `json:"priority" validate:"oneof=low medium high"`
}

// NewTask creates a pending task.
func NewTask(description string, due DueDate, priority Priority) Task {
	return Task{
		Description: description,
		Due:         due,
		Priority:    priority,
	}
}

// DoneFilter restricts a listing by completion state.
type DoneFilter int

// Done filter values.
const (
	// DoneAny applies no completion filter.
	DoneAny DoneFilter = iota
	// DoneOnly keeps completed tasks.
	DoneOnly
	// PendingOnly keeps tasks that are not completed.
	PendingOnly
)

// Matches reports whether a task with the given done flag passes the filter.
func (f DoneFilter) Matches(done bool) bool {
	switch f {
	case DoneOnly:
		return done
	case PendingOnly:
		return !done
	default:
		return true
	}
}

// TaskFilter selects tasks when listing. Predicates compose with AND.
// The zero value matches every task.
type TaskFilter struct {
	Done DoneFilter

	// Priority keeps only tasks with this priority. Empty means any.
	Priority Priority
}

// Matches reports whether the task passes every predicate of the filter.
func (f TaskFilter) Matches(t Task) bool {
	if !f.Done.Matches(t.Done) {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	return true
}

// ListedTask is a task as shown by a listing: the stored record plus the
// due-date classification computed at list time.
type ListedTask struct {
	Task
	DueStatus DueStatus
}
