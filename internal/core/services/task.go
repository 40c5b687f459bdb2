package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// Ensure TaskService implements the interface.
var _ driving.TaskService = (*TaskService)(nil)

// validate is shared by the services; it caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// TaskService implements task operations on top of a driven.TaskStore.
// Every operation loads the whole collection, works on it in memory and,
// when it mutates, saves it back. Validation happens before any mutation,
// so a failed operation never reaches Save.
type TaskService struct {
	store           driven.TaskStore
	now             func() time.Time
	defaultPriority domain.Priority
}

// TaskServiceOption configures a TaskService.
type TaskServiceOption func(*TaskService)

// WithClock sets the clock used for due-date classification.
func WithClock(now func() time.Time) TaskServiceOption {
	return func(s *TaskService) {
		s.now = now
	}
}

// WithDefaultPriority sets the priority used when Add gets none.
// Invalid priorities are ignored.
func WithDefaultPriority(p domain.Priority) TaskServiceOption {
	return func(s *TaskService) {
		if p.IsValid() {
			s.defaultPriority = p
		}
	}
}

// NewTaskService creates a new task service.
func NewTaskService(store driven.TaskStore, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		store:           store,
		now:             time.Now,
		defaultPriority: domain.DefaultPriority,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a pending task and returns its position.
func (s *TaskService) Add(ctx context.Context, description string, due domain.DueDate, priority string) (int, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}

	task, err := s.newTask(description, due, priority)
	if err != nil {
		return 0, err
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	tasks = append(tasks, task)
	if err := s.store.Save(ctx, tasks); err != nil {
		return 0, err
	}

	logger.Debug("added task at position %d (priority %s)", len(tasks), task.Priority)
	return len(tasks), nil
}

// newTask validates add input and builds the task.
func (s *TaskService) newTask(description string, due domain.DueDate, priority string) (domain.Task, error) {
	if strings.TrimSpace(description) == "" {
		return domain.Task{}, fmt.Errorf("%w: description must not be empty", domain.ErrInvalidInput)
	}

	p := s.defaultPriority
	if strings.TrimSpace(priority) != "" {
		parsed, err := domain.ParsePriority(priority)
		if err != nil {
			return domain.Task{}, err
		}
		p = parsed
	}

	// Shape only. Calendar validity is left to list time.
	if due.IsSet() && !due.IsWellFormed() {
		return domain.Task{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", domain.ErrInvalidDueDate, due.String())
	}

	task := domain.NewTask(description, due, p)
	if err := validateTask(task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// validateTask runs the struct tag rules on a task and maps failures to
// domain errors.
func validateTask(task domain.Task) error {
	err := validate.Struct(task)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fe := fieldErrs[0]
	switch fe.Field() {
	case "Priority":
		return fmt.Errorf("%w: %q", domain.ErrInvalidPriority, fe.Value())
	default:
		return fmt.Errorf("%w: %s failed %q", domain.ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag())
	}
}

// List returns the tasks passing filter, keyed by unfiltered position.
func (s *TaskService) List(ctx context.Context, filter domain.TaskFilter) (iter.Seq2[int, domain.ListedTask], error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}

	if filter.Priority != "" {
		p, err := domain.ParsePriority(string(filter.Priority))
		if err != nil {
			return nil, err
		}
		filter.Priority = p
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()

	return func(yield func(int, domain.ListedTask) bool) {
		for i, task := range tasks {
			if !filter.Matches(task) {
				continue
			}
			listed := domain.ListedTask{
				Task:      task,
				DueStatus: task.Due.Classify(now),
			}
			if !yield(i+1, listed) {
				return
			}
		}
	}, nil
}

// MarkDone marks the task at position as done.
func (s *TaskService) MarkDone(ctx context.Context, position int) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := checkPosition(position, len(tasks)); err != nil {
		return err
	}

	tasks[position-1].Done = true
	if err := s.store.Save(ctx, tasks); err != nil {
		return err
	}

	logger.Debug("marked task %d done", position)
	return nil
}

// Delete removes the task at position and returns its description.
// Later tasks move up by one position.
func (s *TaskService) Delete(ctx context.Context, position int) (string, error) {
	if s.store == nil {
		return "", domain.ErrNotImplemented
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if err := checkPosition(position, len(tasks)); err != nil {
		return "", err
	}

	removed := tasks[position-1]
	tasks = append(tasks[:position-1], tasks[position:]...)
	if err := s.store.Save(ctx, tasks); err != nil {
		return "", err
	}

	logger.Debug("deleted task %d, %d remaining", position, len(tasks))
	return removed.Description, nil
}

// ClearDone removes every done task, keeping the order of the rest.
// The collection is saved even when nothing was removed.
func (s *TaskService) ClearDone(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, domain.ErrNotImplemented
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if !task.Done {
			kept = append(kept, task)
		}
	}

	if err := s.store.Save(ctx, kept); err != nil {
		return 0, err
	}

	removed := len(tasks) - len(kept)
	logger.Debug("cleared %d done tasks", removed)
	return removed, nil
}

// checkPosition verifies 1 <= position <= n.
func checkPosition(position, n int) error {
	if position < 1 || position > n {
		if n == 0 {
			return fmt.Errorf("%w: %d (there are no tasks)", domain.ErrInvalidPosition, position)
		}
		return fmt.Errorf("%w: %d (valid range is 1-%d)", domain.ErrInvalidPosition, position, n)
	}
	return nil
}
