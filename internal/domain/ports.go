package domain

import "time"

// TaskListStore persists a whole task list.
type TaskListStore interface {
	// Load reads the stored list.
	// Returns ErrStoreNotFound if nothing was saved yet and a *FormatError if the content is unusable.
	Load() (*TaskList, error)
	// Save overwrites the stored list.
	Save(list *TaskList) error
	// Backup copies the stored file next to itself with the given suffix and returns the copy's path.
	Backup(suffix string) (string, error)
	// Path returns the location of the stored file.
	Path() string
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration.
	Load() (*Config, error)
	// Sources returns the config files consulted by Load, in merge order.
	Sources() []ConfigSource
}

// ConfigManager creates configuration files.
type ConfigManager interface {
	// InitGlobalConfig writes the template to the global config path.
	InitGlobalConfig() (string, error)
	// InitLocalConfig writes the template to the local config path.
	InitLocalConfig() (string, error)
}

// ConfigSource describes a config file location.
type ConfigSource struct {
	Path   string
	Exists bool
}

// Logger writes audit lines for task operations.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(_, _ string)  {}
func (NopLogger) Debug(_, _ string) {}
func (NopLogger) Warn(_, _ string)  {}
func (NopLogger) Error(_, _ string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock, in UTC.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}
