package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage settings",
	Long: `View and change taskmgr settings stored in config.toml.

Keys:
  storage.backend         json or sqlite
  storage.path            task store path (default <config-dir>/tasks.json or tasks.db)
  tasks.default_priority  low, medium or high
  display.color           auto, always or never
  log.level               debug, info, warn or error`,
	Annotations: map[string]string{annotationSettingsOnly: "true"},
	RunE:        runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show current settings",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationSettingsOnly: "true"},
	RunE:        runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:         "set [key] [value]",
	Short:       "Change a setting",
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{annotationSettingsOnly: "true"},
	RunE:        runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:         "path",
	Short:       "Print the config file path",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationSettingsOnly: "true"},
	RunE:        runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	path := settings.Storage.Path
	if path == "" {
		path = "(default)"
	}

	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "  backend = %s (%s)\n", settings.Storage.Backend, settings.Storage.Backend.Description())
	fmt.Fprintf(out, "  path = %s\n", path)
	fmt.Fprintln(out, "[tasks]")
	fmt.Fprintf(out, "  default_priority = %s\n", settings.Tasks.DefaultPriority)
	fmt.Fprintln(out, "[display]")
	fmt.Fprintf(out, "  color = %s\n", settings.Display.Color)
	fmt.Fprintln(out, "[log]")
	fmt.Fprintf(out, "  level = %s\n", settings.Log.Level)
	fmt.Fprintln(out)

	if err := settingsService.Validate(); err != nil {
		fmt.Fprintf(out, "Warning: %v\n", err)
		fmt.Fprintln(out, "Run 'taskmgr config set <key> <value>' to fix it.")
	} else {
		fmt.Fprintln(out, "Configuration is valid.")
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	fmt.Fprintln(cmd.OutOrStdout(), settingsService.Path())
	return nil
}
