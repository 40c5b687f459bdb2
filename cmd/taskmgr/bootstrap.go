package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/config/file"
	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/taskmgr/internal/adapters/driving/cli"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/core/services"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// bootstrap is the composition root: config store, settings, then the task
// store selected by settings and flags.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}
	configDir = expandHome(configDir)

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}
	if !opts.Verbose {
		logger.SetLevel(settings.Log.Level)
	}
	logger.Debug("config file %s", configStore.Path())

	svcs := &cli.Services{
		Settings: settingsService,
		Color:    settings.Display.Color,
	}
	if !opts.NeedTasks {
		return svcs, nil
	}

	if err := settingsService.Validate(); err != nil {
		return nil, err
	}

	backend, path := resolveStore(settings.Storage, opts.File, configDir)
	store, closeFn, err := openTaskStore(backend, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("using %s store at %s", backend.Description(), path)

	svcs.Tasks = services.NewTaskService(store,
		services.WithDefaultPriority(settings.Tasks.DefaultPriority))
	svcs.Close = closeFn
	return svcs, nil
}

// resolveStore picks the backend and path. --file wins over storage.path,
// which wins over <config dir>/<backend default file name>. A --file with a
// recognised extension also selects the backend.
func resolveStore(storage domain.StorageSettings, override, configDir string) (domain.StorageBackend, string) {
	backend := storage.Backend
	if !backend.IsValid() {
		backend = domain.StorageJSON
	}

	if override != "" {
		switch strings.ToLower(filepath.Ext(override)) {
		case ".json":
			backend = domain.StorageJSON
		case ".db", ".sqlite", ".sqlite3":
			backend = domain.StorageSQLite
		}
		return backend, expandHome(override)
	}
	if storage.Path != "" {
		return backend, expandHome(storage.Path)
	}
	return backend, filepath.Join(configDir, backend.DefaultFileName())
}

// openTaskStore constructs the adapter for backend. The close func may be nil.
func openTaskStore(backend domain.StorageBackend, path string) (driven.TaskStore, func() error, error) {
	switch backend {
	case domain.StorageSQLite:
		store, err := sqlite.NewStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		store, err := jsonfile.NewTaskStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
