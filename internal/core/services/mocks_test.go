package services

import (
	"context"

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
)

// spyTaskStore wraps a memory store, counts calls and can fail on demand.
type spyTaskStore struct {
	inner   *memory.TaskStore
	loads   int
	saves   int
	loadErr error
	saveErr error
}

var _ driven.TaskStore = (*spyTaskStore)(nil)

func newSpyTaskStore(tasks ...domain.Task) *spyTaskStore {
	return &spyTaskStore{inner: memory.NewTaskStore(tasks...)}
}

func (s *spyTaskStore) Load(ctx context.Context) ([]domain.Task, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.inner.Load(ctx)
}

func (s *spyTaskStore) Save(ctx context.Context, tasks []domain.Task) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	return s.inner.Save(ctx, tasks)
}

// snapshot returns the persisted collection.
func (s *spyTaskStore) snapshot() []domain.Task {
	tasks, _ := s.inner.Load(context.Background())
	return tasks
}
