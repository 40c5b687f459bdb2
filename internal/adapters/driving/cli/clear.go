package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearDoneCmd = &cobra.Command{
	Use:     "clear_done",
	Aliases: []string{"clear-done"},
	Short:   "Remove all completed tasks",
	Args:    cobra.NoArgs,
	RunE:    runClearDone,
}

func init() {
	rootCmd.AddCommand(clearDoneCmd)
}

func runClearDone(cmd *cobra.Command, _ []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	removed, err := taskService.ClearDone(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clear completed tasks: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d completed task(s).\n", removed)
	return nil
}
