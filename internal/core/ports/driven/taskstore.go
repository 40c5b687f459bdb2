package driven

import (
	"context"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

// TaskStore persists the task collection as a whole.
// There are no per-task operations: callers load everything, change it in
// memory, and save everything back.
type TaskStore interface {
	// Load returns the collection in stored order.
	// A store that has never been saved returns an empty collection.
	// A malformed store returns an error wrapping domain.ErrCorruptStore.
	Load(ctx context.Context) ([]domain.Task, error)

	// Save replaces the stored collection with tasks.
	// Either the previous or the new collection survives a failure, never a mix.
	// Write failures wrap domain.ErrStoreIO.
	Save(ctx context.Context, tasks []domain.Task) error
}
