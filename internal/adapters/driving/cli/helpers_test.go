package cli

import (
	"bytes"
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/services"
)

var testNow = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

// testEnv holds the in-memory stores behind the test services.
type testEnv struct {
	tasks  *memory.TaskStore
	config *memory.ConfigStore
}

// setupTestServices wires in-memory services and returns a cleanup func.
func setupTestServices(seed ...domain.Task) (*testEnv, func()) {
	env := &testEnv{
		tasks:  memory.NewTaskStore(seed...),
		config: memory.NewConfigStore(),
	}

	origTasks, origSettings, origColor, origBoot := taskService, settingsService, colorMode, bootstrap

	taskService = services.NewTaskService(env.tasks, services.WithClock(func() time.Time { return testNow }))
	settingsService = services.NewSettingsService(env.config)
	colorMode = domain.ColorNever
	bootstrap = nil

	return env, func() {
		taskService, settingsService, colorMode, bootstrap = origTasks, origSettings, origColor, origBoot
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command and returns stdout, stderr and the error.
func execute(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// stored returns the tasks currently in the test store.
func (e *testEnv) stored() []domain.Task {
	tasks, _ := e.tasks.Load(context.Background())
	return tasks
}
