package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager creates configuration files.
type Manager struct {
	loader *Loader
}

// NewManager creates a new Manager writing to the loader's config locations.
func NewManager(loader *Loader) *Manager {
	return &Manager{loader: loader}
}

// InitGlobalConfig writes the config template to the global config path.
func (m *Manager) InitGlobalConfig() (string, error) {
	path := m.loader.GlobalConfigPath()
	if path == "" {
		return "", errors.New("cannot determine global config directory")
	}
	return path, writeTemplate(path)
}

// InitLocalConfig writes the config template to the working directory.
func (m *Manager) InitLocalConfig() (string, error) {
	path := m.loader.LocalConfigPath()
	return path, writeTemplate(path)
}

func writeTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	}

	content, err := domain.RenderConfigTemplate(domain.NewDefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
