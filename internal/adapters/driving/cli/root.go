// Package cli implements the taskmgr command line on top of the driving ports.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// Annotation keys read by the root pre-run hook.
const (
	annotationNoServices   = "taskmgr/no-services"
	annotationSettingsOnly = "taskmgr/settings-only"
)

// version is set at build time via ldflags or by Execute.
var version = "dev"

// Services wired by the bootstrap (or directly by tests).
var (
	taskService     driving.TaskService
	settingsService driving.SettingsService
	colorMode       = domain.ColorAuto
	closeServices   func() error
)

var (
	bootstrap Bootstrap
	options   Options
)

// Options holds the persistent flag values passed to the bootstrap.
type Options struct {
	// File overrides the task store path.
	File string
	// ConfigDir is the directory holding config.toml. Empty means ~/.taskmgr.
	ConfigDir string
	// Verbose enables debug logging.
	Verbose bool
	// NeedTasks is false for commands that only touch settings.
	NeedTasks bool
}

// Services is what the bootstrap hands back to the commands.
type Services struct {
	Tasks    driving.TaskService
	Settings driving.SettingsService
	Color    domain.ColorMode
	// Close releases the task store, if it holds resources. May be nil.
	Close func() error
}

// Bootstrap builds the services for one invocation.
type Bootstrap func(Options) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "taskmgr",
	Short: "Manage a personal task list",
	Long: `taskmgr keeps an ordered list of tasks in a local file.

Tasks are addressed by their 1-based number as shown by 'taskmgr list'.
Numbers shift when tasks are deleted or cleared.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&options.File, "file", "", "task store path (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&options.ConfigDir, "config-dir", "", "config directory (default ~/.taskmgr)")
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "enable debug logging")
}

// setupServices configures logging and runs the bootstrap for commands
// that need services.
func setupServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)

	if bootstrap == nil || cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}

	opts := options
	opts.NeedTasks = cmd.Annotations[annotationSettingsOnly] != "true"

	svcs, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}

	taskService = svcs.Tasks
	settingsService = svcs.Settings
	if svcs.Color != "" {
		colorMode = svcs.Color
	}
	closeServices = svcs.Close
	return nil
}

// Execute runs the root command with the given version and bootstrap.
func Execute(ver string, boot Bootstrap) error {
	if ver != "" {
		version = ver
	}
	bootstrap = boot

	err := rootCmd.Execute()

	if closeServices != nil {
		if cerr := closeServices(); cerr != nil {
			logger.Warn("closing task store: %v", cerr)
		}
		closeServices = nil
	}
	return err
}
