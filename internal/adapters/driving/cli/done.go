package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

var doneCmd = &cobra.Command{
	Use:   "done [number]",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	position, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	if err := taskService.MarkDone(cmd.Context(), position); err != nil {
		return fmt.Errorf("failed to mark task done: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Task %d marked as done.\n", position)
	return nil
}

// parsePosition parses a task number argument.
func parsePosition(arg string) (int, error) {
	position, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidPosition, arg)
	}
	return position, nil
}
