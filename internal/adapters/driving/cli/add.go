package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a task",
	Long: `Add a pending task to the end of the list.

The due date must be written as YYYY-MM-DD. Without --priority the
configured default (tasks.default_priority) is used.`,
	Example: `  taskmgr add "Buy milk"
  taskmgr add "Pay rent" --due 2024-07-01 --priority high`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addDue      string
	addPriority string
)

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "priority (low, medium, high)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	due := domain.NoDueDate()
	if cmd.Flags().Changed("due") {
		due = domain.DueOn(addDue)
	}

	description := args[0]
	position, err := taskService.Add(cmd.Context(), description, due, addPriority)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", position, description)
	return nil
}
