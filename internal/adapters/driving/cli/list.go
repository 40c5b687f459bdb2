package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks as a table.

Numbers are the task positions in the full list, also when filters hide
some rows, so they can be passed to 'done' and 'delete' directly.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listDone     bool
	listUndone   bool
	listPriority string
)

func init() {
	listCmd.Flags().BoolVar(&listDone, "done", false, "show only completed tasks")
	listCmd.Flags().BoolVar(&listUndone, "undone", false, "show only pending tasks")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "show only tasks with this priority")
	listCmd.MarkFlagsMutuallyExclusive("done", "undone")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	filter := domain.TaskFilter{
		Priority: domain.Priority(listPriority),
	}
	switch {
	case listDone:
		filter.Done = domain.DoneOnly
	case listUndone:
		filter.Done = domain.PendingOnly
	}

	tasks, err := taskService.List(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	var rows []listRow
	for position, task := range tasks {
		rows = append(rows, listRow{Position: position, Task: task})
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No tasks.")
		return nil
	}

	fmt.Fprintln(out, renderTaskTable(out, rows, colorMode, terminalWidth(out)))
	return nil
}
