// Package cli provides the command-line interface for todo.
package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/tui"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// ContainerFactory builds the container once global flags are parsed.
type ContainerFactory func(cfg app.Config) (*app.Container, error)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// deps carries the container from PersistentPreRunE to the subcommands.
type deps struct {
	factory   ContainerFactory
	container *app.Container
	file      string
	config    string
}

func (d *deps) init(cmd *cobra.Command) error {
	if d.container != nil {
		return nil
	}
	c, err := d.factory(app.Config{
		ConfigPath: d.config,
		StorePath:  d.file,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	d.container = c

	for _, w := range c.AppConfig.Warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	return nil
}

// loadList loads the task list for a command.
// Strict mode is used by one-shot commands so a malformed file is reported instead of overwritten.
func (d *deps) loadList(cmd *cobra.Command, strict bool) (*domain.TaskList, error) {
	out, err := d.container.LoadListUseCase().Execute(cmd.Context(), usecase.LoadListInput{Strict: strict})
	if err != nil {
		return nil, err
	}
	if out.Warning != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", out.Warning)
		d.container.Logger.Warn("task list unusable", "path", d.container.Store.Path(), "backup", out.Backup)
	}
	return out.List, nil
}

// saveList persists the task list for a command.
func (d *deps) saveList(ctx context.Context, list *domain.TaskList) error {
	_, err := d.container.SaveListUseCase().Execute(ctx, usecase.SaveListInput{List: list})
	return err
}

// mutate loads the list strictly, applies fn and saves the result.
func (d *deps) mutate(cmd *cobra.Command, fn func(list *domain.TaskList) error) error {
	list, err := d.loadList(cmd, true)
	if err != nil {
		return err
	}
	if err := fn(list); err != nil {
		return err
	}
	return d.saveList(cmd.Context(), list)
}

// NewRootCommand creates the root command for todo.
// The container is built by factory after flags are parsed.
func NewRootCommand(factory ContainerFactory, version string) *cobra.Command {
	d := &deps{factory: factory}

	root := &cobra.Command{
		Use:   "todo",
		Short: "Personal task list manager",
		Long: `todo keeps a personal task list in a JSON file.

Without a subcommand, an interactive numbered menu is started. The list
is loaded on start and saved when you choose "Save and exit".

Subcommands act on the file directly and save after each change.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return d.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := d.loadList(cmd, false)
			if err != nil {
				return err
			}
			shell := NewShell(d.container, list, cmd.InOrStdin(), cmd.OutOrStdout())
			return shell.Run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&d.file, "file", "f", "", "Task list file (default: store.path from config, todolist.json)")
	root.PersistentFlags().StringVar(&d.config, "config", "", "Config file to load after the global and local ones")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	configCmd := newConfigCommand(d)
	configCmd.GroupID = groupSetup

	addCmd := newAddCommand(d)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(d)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(d)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(d)
	rmCmd.GroupID = groupTask

	editCmd := newEditCommand(d)
	editCmd.GroupID = groupTask

	importCmd := newImportCommand(d)
	importCmd.GroupID = groupTask

	tuiCmd := newTUICommand(d)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		configCmd,
		addCmd,
		listCmd,
		doneCmd,
		rmCmd,
		editCmd,
		importCmd,
		tuiCmd,
	)

	return root
}

// launchTUI runs the full-screen interface until the user quits.
func launchTUI(c *app.Container, list *domain.TaskList) error {
	model := tui.New(c, list)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
