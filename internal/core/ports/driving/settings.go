package driving

import "github.com/custodia-labs/taskmgr/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults filled in.
	Get() (*domain.AppSettings, error)

	// Set validates and persists a single setting by its dotted key.
	Set(key, value string) error

	// Keys returns every settable key in display order.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns the location of the settings file.
	Path() string
}
