package domain

const unknownDescription = "Unknown"

// StorageBackend selects where the task collection is persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageJSON keeps the collection in a single JSON document.
	StorageJSON StorageBackend = "json"

	// StorageSQLite keeps the collection in a SQLite database file.
	StorageSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageJSON, StorageSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageJSON:
		return "JSON document"
	case StorageSQLite:
		return "SQLite database"
	default:
		return unknownDescription
	}
}

// DefaultFileName returns the file name used when no path is configured.
func (b StorageBackend) DefaultFileName() string {
	if b == StorageSQLite {
		return "tasks.db"
	}
	return "tasks.json"
}

// ColorMode controls colour in rendered output.
type ColorMode string

// Available colour modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// StorageSettings configures task persistence.
type StorageSettings struct {
	// Backend is json or sqlite.
	Backend StorageBackend `validate:"oneof=json sqlite"`

	// Path is the store file. Empty means <config dir>/<backend default name>.
	Path string
}

// TaskSettings configures task defaults.
type TaskSettings struct {
	// DefaultPriority is used by add when no priority is given.
	DefaultPriority Priority `validate:"oneof=low medium high"`
}

// DisplaySettings configures console output.
type DisplaySettings struct {
	Color ColorMode `validate:"oneof=auto always never"`
}

// LogSettings configures diagnostic logging.
type LogSettings struct {
	Level string `validate:"oneof=debug info warn error"`
}

// AppSettings holds all user-facing configuration.
type AppSettings struct {
	Storage StorageSettings
	Tasks   TaskSettings
	Display DisplaySettings
	Log     LogSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{
			Backend: StorageJSON,
		},
		Tasks: TaskSettings{
			DefaultPriority: DefaultPriority,
		},
		Display: DisplaySettings{
			Color: ColorAuto,
		},
		Log: LogSettings{
			Level: "warn",
		},
	}
}
