package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [number]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long:    `Delete a task. Tasks after it move up by one number.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	position, err := parsePosition(args[0])
	if err != nil {
		return err
	}

	description, err := taskService.Delete(cmd.Context(), position)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", description)
	return nil
}
