package driving

import (
	"context"
	"iter"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// TaskService implements the task operations.
// Positions are 1-based indexes into the current, unfiltered collection.
type TaskService interface {
	// Add appends a pending task and returns its position.
	// An empty priority means the configured default.
	Add(ctx context.Context, description string, due domain.DueDate, priority string) (int, error)

	// List returns the tasks passing filter, keyed by their unfiltered position.
	// The sequence reads a snapshot taken by this call and can be ranged over
	// any number of times.
	List(ctx context.Context, filter domain.TaskFilter) (iter.Seq2[int, domain.ListedTask], error)

	// MarkDone marks the task at position as done.
	MarkDone(ctx context.Context, position int) error

	// Delete removes the task at position and returns its description.
	Delete(ctx context.Context, position int) (string, error)

	// ClearDone removes every done task and returns how many were removed.
	ClearDone(ctx context.Context) (int, error)
}
