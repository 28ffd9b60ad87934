// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// Ensure MockStore implements domain.TaskListStore.
var _ domain.TaskListStore = (*MockStore)(nil)

// MockStore is an in-memory test double for domain.TaskListStore.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	Saved      *domain.TaskList // Last saved list (nil until Save succeeds)
	LoadErr    error
	SaveErr    error
	BackupErr  error
	PathValue  string
	Backups    []string
	SaveCalled int
}

// NewMockStore creates a MockStore with nothing saved yet.
func NewMockStore() *MockStore {
	return &MockStore{PathValue: "todolist.json"}
}

// Load returns a copy of the saved list, LoadErr, or domain.ErrStoreNotFound.
func (m *MockStore) Load() (*domain.TaskList, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Saved == nil {
		return nil, domain.ErrStoreNotFound
	}
	return m.Saved.Clone(), nil
}

// Save stores a copy of list.
func (m *MockStore) Save(list *domain.TaskList) error {
	m.SaveCalled++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = list.Clone()
	return nil
}

// Backup records the backup request.
func (m *MockStore) Backup(suffix string) (string, error) {
	if m.BackupErr != nil {
		return "", m.BackupErr
	}
	path := m.PathValue + suffix
	m.Backups = append(m.Backups, path)
	return path, nil
}

// Path returns PathValue.
func (m *MockStore) Path() string {
	return m.PathValue
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

// MockLogger records log lines as "LEVEL category: msg".
type MockLogger struct {
	Lines []string
}

func (m *MockLogger) record(level, category, msg string) {
	m.Lines = append(m.Lines, fmt.Sprintf("%s %s: %s", level, category, msg))
}

// Info records an info line.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Debug records a debug line.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Warn records a warning line.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error line.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config     *domain.Config
	LoadErr    error
	SourceList []domain.ConfigSource
}

// Load returns Config (defaults when nil) or LoadErr.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// Sources returns SourceList.
func (m *MockConfigLoader) Sources() []domain.ConfigSource {
	return m.SourceList
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr     error
	GlobalPath  string
	LocalPath   string
	GlobalCalls int
	LocalCalls  int
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig() (string, error) {
	m.GlobalCalls++
	return m.GlobalPath, m.InitErr
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig() (string, error) {
	m.LocalCalls++
	return m.LocalPath, m.InitErr
}
