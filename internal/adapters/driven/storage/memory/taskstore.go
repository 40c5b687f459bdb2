package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
)

// Ensure TaskStore implements the interface.
var _ driven.TaskStore = (*TaskStore)(nil)

// TaskStore is an in-memory implementation of driven.TaskStore.
// Load and Save copy the collection so callers never share its backing array.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// NewTaskStore creates a new in-memory task store seeded with tasks.
func NewTaskStore(tasks ...domain.Task) *TaskStore {
	return &TaskStore{
		tasks: clone(tasks),
	}
}

// Load returns a copy of the stored collection.
func (s *TaskStore) Load(_ context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tasks), nil
}

// Save replaces the stored collection with a copy of tasks.
func (s *TaskStore) Save(_ context.Context, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = clone(tasks)
	return nil
}

func clone(tasks []domain.Task) []domain.Task {
	result := make([]domain.Task, len(tasks))
	copy(result, tasks)
	return result
}
