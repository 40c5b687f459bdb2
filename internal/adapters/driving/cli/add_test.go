package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

func TestAddCmd_Use(t *testing.T) {
	assert.Equal(t, "add [description]", addCmd.Use)
	assert.NotNil(t, addCmd.Flags().Lookup("due"))
	assert.NotNil(t, addCmd.Flags().Lookup("priority"))
}

func TestAddCmd_RequiresDescription(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute("add")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAddCmd_Success(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	stdout, _, err := execute("add", "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Added task 1: Buy milk\n", stdout)

	stdout, _, err = execute("add", "Pay rent", "--due", "2024-07-01", "--priority", "high")
	require.NoError(t, err)
	assert.Equal(t, "Added task 2: Pay rent\n", stdout)

	tasks := env.stored()
	require.Len(t, tasks, 2)
	assert.Equal(t, domain.Task{Description: "Buy milk", Priority: domain.PriorityMedium}, tasks[0])
	assert.Equal(t, domain.Task{Description: "Pay rent", Due: domain.DueOn("2024-07-01"), Priority: domain.PriorityHigh}, tasks[1])
}

func TestAddCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	env, cleanup := setupTestServices()
	defer cleanup()

	_, _, err := execute("add", "first", "--due", "2024-07-01", "--priority", "low")
	require.NoError(t, err)
	_, _, err = execute("add", "second")
	require.NoError(t, err)

	tasks := env.stored()
	require.Len(t, tasks, 2)
	assert.False(t, tasks[1].Due.IsSet())
	assert.Equal(t, domain.PriorityMedium, tasks[1].Priority)
}

func TestAddCmd_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "bad priority",
			args:    []string{"add", "x", "--priority", "urgent"},
			wantErr: domain.ErrInvalidPriority,
			wantMsg: "Error: failed to add task: invalid priority",
		},
		{
			name:    "bad due date",
			args:    []string{"add", "x", "--due", "2024/07/01"},
			wantErr: domain.ErrInvalidDueDate,
			wantMsg: "Error: failed to add task: invalid due date",
		},
		{
			name:    "empty due date",
			args:    []string{"add", "x", "--due", ""},
			wantErr: domain.ErrInvalidDueDate,
		},
		{
			name:    "blank description",
			args:    []string{"add", "   "},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, cleanup := setupTestServices()
			defer cleanup()

			stdout, stderr, err := execute(tt.args...)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, stdout)
			assert.Empty(t, env.stored())
			if tt.wantMsg != "" {
				assert.Contains(t, stderr, tt.wantMsg)
			}
		})
	}
}

func TestAddCmd_NoService(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	taskService = nil

	_, _, err := execute("add", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "task service not configured")
}
