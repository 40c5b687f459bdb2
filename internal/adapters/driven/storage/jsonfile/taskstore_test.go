package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

func newTestStore(t *testing.T) (*TaskStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	store, err := NewTaskStore(path)
	require.NoError(t, err)
	return store, path
}

func writeDoc(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewTaskStore_EmptyPath(t *testing.T) {
	store, err := NewTaskStore("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, store)
}

func TestNewTaskStore_DoesNotCreateFile(t *testing.T) {
	store, path := newTestStore(t)
	assert.Equal(t, path, store.Path())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestTaskStore_Load_MissingFile(t *testing.T) {
	store, path := newTestStore(t)

	tasks, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "load must not create the file")
}

func TestTaskStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	want := []domain.Task{
		domain.NewTask("Buy milk", domain.NoDueDate(), domain.PriorityMedium),
		{Description: "Pay rent", Done: true, Due: domain.DueOn("2024-07-01"), Priority: domain.PriorityHigh},
		domain.NewTask("Ünïcödé ✓", domain.DueOn("2024-13-45"), domain.PriorityLow),
	}

	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTaskStore_Save_Format(t *testing.T) {
	store, path := newTestStore(t)

	err := store.Save(context.Background(), []domain.Task{
		{Description: "Buy milk", Due: domain.DueOn("2024-06-01"), Priority: domain.PriorityHigh},
		domain.NewTask("Call mom", domain.NoDueDate(), domain.PriorityMedium),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
    {
        "description": "Buy milk",
        "done": false,
        "due": "2024-06-01",
        "priority": "high"
    },
    {
        "description": "Call mom",
        "done": false,
        "due": null,
        "priority": "medium"
    }
]
`
	assert.Equal(t, want, string(data))
}

func TestTaskStore_Save_NilAndEmpty(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	require.NoError(t, store.Save(ctx, []domain.Task{}))
	tasks, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_Save_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")
	store, err := NewTaskStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), []domain.Task{
		domain.NewTask("a", domain.NoDueDate(), domain.PriorityLow),
	}))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestTaskStore_Save_LeavesNoTempFiles(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, []domain.Task{
			domain.NewTask("a", domain.NoDueDate(), domain.PriorityLow),
		}))
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
}

func TestTaskStore_Save_UnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	// The target path is an existing non-empty directory, so the rename fails.
	target := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "child"), 0o755))

	store, err := NewTaskStore(target)
	require.NoError(t, err)

	err = store.Save(context.Background(), []domain.Task{
		domain.NewTask("a", domain.NoDueDate(), domain.PriorityLow),
	})
	assert.ErrorIs(t, err, domain.ErrStoreIO)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up")
}

func TestTaskStore_Load_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "syntax error", content: `[{"description": "a",`},
		{name: "not an array", content: `{"description": "a"}`},
		{name: "missing key", content: `[{"description": "a", "done": false, "priority": "low"}]`},
		{name: "extra key", content: `[{"description": "a", "done": false, "due": null, "priority": "low", "id": 1}]`},
		{name: "unknown priority", content: `[{"description": "a", "done": false, "due": null, "priority": "urgent"}]`},
		{name: "uppercase priority", content: `[{"description": "a", "done": false, "due": null, "priority": "HIGH"}]`},
		{name: "done not bool", content: `[{"description": "a", "done": "yes", "due": null, "priority": "low"}]`},
		{name: "due wrong type", content: `[{"description": "a", "done": false, "due": 20240101, "priority": "low"}]`},
		{name: "element not object", content: `["a"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestStore(t)
			writeDoc(t, path, tt.content)

			tasks, err := store.Load(context.Background())

			assert.ErrorIs(t, err, domain.ErrCorruptStore)
			assert.Nil(t, tasks)

			data, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(data), "load must not modify the document")
		})
	}
}

func TestTaskStore_Load_AcceptsHandWrittenDocument(t *testing.T) {
	store, path := newTestStore(t)
	writeDoc(t, path, `[{"priority":"low","due":"2024-01-01","done":true,"description":"x"}]`)

	tasks, err := store.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.Task{Description: "x", Done: true, Due: domain.DueOn("2024-01-01"), Priority: domain.PriorityLow}, tasks[0])
}

func TestTaskStore_Load_Unreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	store, path := newTestStore(t)
	writeDoc(t, path, "[]")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	_, err := store.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrStoreIO)
}

func TestTaskStore_Load_Directory(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTaskStore(dir)
	require.NoError(t, err)

	_, err = store.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrStoreIO)
}

func TestTaskStore_CanceledContext(t *testing.T) {
	store, path := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	err = store.Save(ctx, []domain.Task{domain.NewTask("a", domain.NoDueDate(), domain.PriorityLow)})
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDescribeSchemaError(t *testing.T) {
	schema, err := compileSchema()
	require.NoError(t, err)

	verr := schema.Validate([]any{map[string]any{
		"description": "a", "done": false, "due": nil, "priority": "urgent",
	}})
	require.Error(t, verr)

	msg := describeSchemaError(verr)
	assert.Contains(t, msg, "/0/priority")
}
