package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// Ensure TaskStore implements the interface.
var _ driven.TaskStore = (*TaskStore)(nil)

const indent = "    "

// TaskStore persists the task collection as a JSON document at a fixed path.
type TaskStore struct {
	path   string
	schema *jsonschema.Schema
}

// NewTaskStore creates a store for the document at path.
// The file is not touched until Load or Save.
func NewTaskStore(path string) (*TaskStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: task file path is empty", domain.ErrInvalidInput)
	}
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	return &TaskStore{
		path:   path,
		schema: schema,
	}, nil
}

// Path returns the document path.
func (s *TaskStore) Path() string {
	return s.path
}

// Load reads and validates the document.
// A missing document is an empty collection.
func (s *TaskStore) Load(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("task file %s does not exist, starting empty", s.path)
			return []domain.Task{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreIO, s.path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptStore, s.path, err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrCorruptStore, s.path, describeSchemaError(err))
	}

	tasks := []domain.Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptStore, s.path, err)
	}

	logger.Debug("loaded %d tasks from %s", len(tasks), s.path)
	return tasks, nil
}

// Save replaces the document with tasks.
func (s *TaskStore) Save(ctx context.Context, tasks []domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", indent)
	if err != nil {
		return fmt.Errorf("%w: encode tasks: %v", domain.ErrStoreIO, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreIO, err)
	}

	logger.Debug("saved %d tasks to %s", len(tasks), s.path)
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place. The temp file is removed on failure.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}

	success = true
	return nil
}
