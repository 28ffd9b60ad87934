// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Environment variables that override file settings.
const (
	EnvStorePath = "TODO_FILE"
	EnvLogLevel  = "TODO_LOG_LEVEL"
	EnvLogFile   = "TODO_LOG_FILE"
	dotEnvFile   = ".env"
)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	lookupEnv     func(string) (string, bool)
	workDir       string // Directory holding .todo.toml and .env
	explicitPath  string // File given with --config (must exist when set)
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoader creates a new Loader.
func NewLoader(workDir, explicitPath string) *Loader {
	return NewLoaderWithGlobalDir(workDir, explicitPath, defaultGlobalConfigDir())
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, explicitPath, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		explicitPath:  explicitPath,
		globalConfDir: globalConfDir,
		lookupEnv:     os.LookupEnv,
	}
}

// WithLookupEnv replaces the environment lookup. This is useful for testing.
func (l *Loader) WithLookupEnv(fn func(string) (string, bool)) *Loader {
	l.lookupEnv = fn
	return l
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "todo")
}

// GlobalConfigPath returns the global config file path, or "" if unknown.
func (l *Loader) GlobalConfigPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// LocalConfigPath returns the config file path in the working directory.
func (l *Loader) LocalConfigPath() string {
	return filepath.Join(l.workDir, domain.LocalConfigFileName)
}

// Sources returns the config files consulted by Load, in merge order.
func (l *Loader) Sources() []domain.ConfigSource {
	var sources []domain.ConfigSource
	for _, path := range l.paths() {
		_, err := os.Stat(path)
		sources = append(sources, domain.ConfigSource{Path: path, Exists: err == nil})
	}
	return sources
}

func (l *Loader) paths() []string {
	var paths []string
	if p := l.GlobalConfigPath(); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, l.LocalConfigPath())
	if l.explicitPath != "" {
		paths = append(paths, l.explicitPath)
	}
	return paths
}

// Load returns the merged configuration.
// Merge order: defaults <- global <- local <- --config file <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	for _, path := range l.paths() {
		raw, err := loadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && path != l.explicitPath {
				continue
			}
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		cfg.Warnings = append(cfg.Warnings, applyRaw(cfg, raw, path)...)
	}

	dotenv, err := godotenv.Read(filepath.Join(l.workDir, dotEnvFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("ignoring %s: %v", dotEnvFile, err))
	}
	l.applyEnv(cfg, dotenv)

	return cfg, nil
}

// applyEnv applies environment overrides. Process variables win over .env values.
func (l *Loader) applyEnv(cfg *domain.Config, dotenv map[string]string) {
	lookup := func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvStorePath); ok && v != "" {
		cfg.Store.Path = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Log.File = v
	}
}

// loadFile parses a TOML file into a raw map.
func loadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// applyRaw copies known keys from raw onto cfg and returns warnings for the rest.
func applyRaw(cfg *domain.Config, raw map[string]any, source string) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf("%s: ", source)+fmt.Sprintf(format, args...))
	}

	for _, section := range sortedKeys(raw) {
		m, ok := raw[section].(map[string]any)
		if !ok {
			warn("unknown key: %s", section)
			continue
		}
		for _, k := range sortedKeys(m) {
			v := m[k]
			switch section + "." + k {
			case "store.path":
				setString(&cfg.Store.Path, v, section, k, warn)
			case "store.backup_corrupt":
				setBool(&cfg.Store.BackupCorrupt, v, section, k, warn)
			case "log.level":
				setString(&cfg.Log.Level, v, section, k, warn)
			case "log.file":
				setString(&cfg.Log.File, v, section, k, warn)
			case "ui.date_format":
				setString(&cfg.UI.DateFormat, v, section, k, warn)
			case "ui.color":
				setBool(&cfg.UI.Color, v, section, k, warn)
			default:
				warn("unknown key in [%s]: %s", section, k)
			}
		}
	}
	return warnings
}

func setString(dst *string, v any, section, key string, warn func(string, ...any)) {
	s, ok := v.(string)
	if !ok {
		warn("[%s] %s must be a string", section, key)
		return
	}
	*dst = s
}

func setBool(dst *bool, v any, section, key string, warn func(string, ...any)) {
	b, ok := v.(bool)
	if !ok {
		warn("[%s] %s must be a boolean", section, key)
		return
	}
	*dst = b
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
