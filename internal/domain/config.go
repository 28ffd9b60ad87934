package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config file names and defaults.
const (
	ConfigFileName      = "config.toml" // Global config file name inside the config directory
	LocalConfigFileName = ".todo.toml"  // Config file looked up in the working directory
	DefaultStorePath    = "todolist.json"
	DefaultDateFormat   = "2006-01-02 15:04:05"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"` // Problems found while loading (unknown keys, bad values)
	Log      LogConfig   `toml:"log"`
	Store    StoreConfig `toml:"store"`
	UI       UIConfig    `toml:"ui"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Path          string `toml:"path"`           // Task list file
	BackupCorrupt bool   `toml:"backup_corrupt"` // Keep a copy of a malformed file before replacing it
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // Audit log path (empty = disabled)
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	DateFormat string `toml:"date_format"`
	Color      bool   `toml:"color"`
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:          DefaultStorePath,
			BackupCorrupt: true,
		},
		Log: LogConfig{
			Level: "warn",
		},
		UI: UIConfig{
			DateFormat: DefaultDateFormat,
			Color:      true,
		},
	}
}

// RenderConfigTemplate renders the commented config file for cfg.
func RenderConfigTemplate(cfg *Config) (string, error) {
	tmpl, err := template.New("config").Parse(configTemplateContent)
	if err != nil {
		return "", fmt.Errorf("parse config template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("render config template: %w", err)
	}
	return buf.String(), nil
}
