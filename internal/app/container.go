// Package app provides the dependency injection container for the application.
package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the locations the container is built from.
type Config struct {
	WorkDir    string // Directory holding .todo.toml, .env and relative store paths
	ConfigPath string // Explicit config file (--config); empty = none
	StorePath  string // Store path override (--file); empty = use config
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskListStore
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	AuditLog      domain.Logger

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	auditFile *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container, loading configuration from the given locations.
func New(cfg Config) (*Container, error) {
	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		cfg.WorkDir = wd
	}

	configLoader := config.NewLoader(cfg.WorkDir, cfg.ConfigPath)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}
	if cfg.StorePath != "" {
		appConfig.Store.Path = cfg.StorePath
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	auditFile := logging.New(resolvePath(cfg.WorkDir, appConfig.Log.File), level)

	return &Container{
		Store:         jsonstore.New(resolvePath(cfg.WorkDir, appConfig.Store.Path)),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(configLoader),
		AuditLog:      auditFile,
		Logger:        logger,
		AppConfig:     appConfig,
		auditFile:     auditFile,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskListStore, clock domain.Clock, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Store:     store,
		Clock:     clock,
		AuditLog:  domain.NopLogger{},
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Close releases the audit log file.
func (c *Container) Close() error {
	if c.auditFile == nil {
		return nil
	}
	return c.auditFile.Close()
}

// resolvePath makes a relative path relative to dir. Empty stays empty.
func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// UseCase factory methods

// LoadListUseCase returns a new LoadList use case.
func (c *Container) LoadListUseCase() *usecase.LoadList {
	return usecase.NewLoadList(c.Store, c.AuditLog, c.AppConfig.Store.BackupCorrupt)
}

// SaveListUseCase returns a new SaveList use case.
func (c *Container) SaveListUseCase() *usecase.SaveList {
	return usecase.NewSaveList(c.Store, c.AuditLog)
}

// AddTaskUseCase returns a new AddTask use case operating on list.
func (c *Container) AddTaskUseCase(list *domain.TaskList) *usecase.AddTask {
	return usecase.NewAddTask(list, c.Clock, c.AuditLog)
}

// CompleteTaskUseCase returns a new CompleteTask use case operating on list.
func (c *Container) CompleteTaskUseCase(list *domain.TaskList) *usecase.CompleteTask {
	return usecase.NewCompleteTask(list, c.Clock, c.AuditLog)
}

// RemoveTaskUseCase returns a new RemoveTask use case operating on list.
func (c *Container) RemoveTaskUseCase(list *domain.TaskList) *usecase.RemoveTask {
	return usecase.NewRemoveTask(list, c.AuditLog)
}

// EditTaskUseCase returns a new EditTask use case operating on list.
func (c *Container) EditTaskUseCase(list *domain.TaskList) *usecase.EditTask {
	return usecase.NewEditTask(list, c.AuditLog)
}

// ListTasksUseCase returns a new ListTasks use case operating on list.
func (c *Container) ListTasksUseCase(list *domain.TaskList) *usecase.ListTasks {
	return usecase.NewListTasks(list)
}

// ImportTasksUseCase returns a new ImportTasks use case operating on list.
func (c *Container) ImportTasksUseCase(list *domain.TaskList) *usecase.ImportTasks {
	return usecase.NewImportTasks(list, c.Clock, c.AuditLog)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
