package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend  = "storage.backend"
	keyStoragePath     = "storage.path"
	keyDefaultPriority = "tasks.default_priority"
	keyDisplayColor    = "display.color"
	keyLogLevel        = "log.level"
)

// settingKeys lists every settable key in display order.
var settingKeys = []string{
	keyStorageBackend,
	keyStoragePath,
	keyDefaultPriority,
	keyDisplayColor,
	keyLogLevel,
}

// settingFields maps each key to its AppSettings field, relative to the struct.
var settingFields = map[string]string{
	keyStorageBackend:  "Storage.Backend",
	keyStoragePath:     "Storage.Path",
	keyDefaultPriority: "Tasks.DefaultPriority",
	keyDisplayColor:    "Display.Color",
	keyLogLevel:        "Log.Level",
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing keys take their default values.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: domain.StorageBackend(s.getString(keyStorageBackend, defaults.Storage.Backend.String())),
			Path:    s.configStore.GetString(keyStoragePath), // No default - resolved against the config dir
		},
		Tasks: domain.TaskSettings{
			DefaultPriority: domain.Priority(s.getString(keyDefaultPriority, defaults.Tasks.DefaultPriority.String())),
		},
		Display: domain.DisplaySettings{
			Color: domain.ColorMode(s.getString(keyDisplayColor, string(defaults.Display.Color))),
		},
		Log: domain.LogSettings{
			Level: s.getString(keyLogLevel, defaults.Log.Level),
		},
	}

	return settings, nil
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case keyStorageBackend:
		value = strings.ToLower(value)
		settings.Storage.Backend = domain.StorageBackend(value)
	case keyStoragePath:
		settings.Storage.Path = value
	case keyDefaultPriority:
		value = strings.ToLower(value)
		settings.Tasks.DefaultPriority = domain.Priority(value)
	case keyDisplayColor:
		value = strings.ToLower(value)
		settings.Display.Color = domain.ColorMode(value)
	case keyLogLevel:
		value = strings.ToLower(value)
		settings.Log.Level = value
	default:
		return fmt.Errorf("%w: unknown key %q (known keys: %s)",
			domain.ErrInvalidSetting, key, strings.Join(settingKeys, ", "))
	}

	// Only the changed key is validated.
	if err := validateSettings(settings, settingFields[key]); err != nil {
		return err
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every settable key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// Validate checks if current settings are valid.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validateSettings(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the settings file path, or empty without a config store.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// validateSettings runs the struct tag rules and reports the first failure
// using its config key. With fields set, only those fields are checked.
func validateSettings(settings *domain.AppSettings, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = validate.StructPartial(settings, fields...)
	} else {
		err = validate.Struct(settings)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSetting, err)
	}

	fe := fieldErrs[0]
	return fmt.Errorf("%w: %s = %q (want one of: %s)",
		domain.ErrInvalidSetting, namespaceKey(fe.StructNamespace()), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
}

// namespaceKey maps a validator struct namespace to its config key.
func namespaceKey(ns string) string {
	switch ns {
	case "AppSettings.Storage.Backend":
		return keyStorageBackend
	case "AppSettings.Tasks.DefaultPriority":
		return keyDefaultPriority
	case "AppSettings.Display.Color":
		return keyDisplayColor
	case "AppSettings.Log.Level":
		return keyLogLevel
	default:
		return ns
	}
}

// getString returns the string at key, or def when unset or empty.
func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}
