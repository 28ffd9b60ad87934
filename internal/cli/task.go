package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command for creating a task.
func newAddCommand(d *deps) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Long: `Append a pending task to the list and save it.

Examples:
  # Add a task
  todo add --title "Buy milk"

  # Add a task with a description and a priority
  todo add --title "Pay rent" --body "Before the 5th" --priority high`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title := strings.TrimSpace(opts.Title)
			if title == "" {
				return domain.ErrEmptyTitle
			}
			pref, err := domain.ParsePreference(opts.Priority)
			if err != nil {
				return err
			}

			var out *usecase.AddTaskOutput
			err = d.mutate(cmd, func(list *domain.TaskList) error {
				out, err = d.container.AddTaskUseCase(list).Execute(cmd.Context(), usecase.AddTaskInput{
					Title:       title,
					Description: strings.TrimSpace(opts.Description),
					Preference:  pref,
				})
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %d\n", out.Index)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: high, medium, low or none")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(d *deps) *cobra.Command {
	var opts struct {
		Filter string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display tasks with their index.

Filters:
  all            every task (default)
  pending        tasks not yet completed
  completed      completed tasks
  unprioritized  pending tasks without a priority
  prioritized    pending tasks with a priority

Examples:
  # List pending tasks
  todo list --filter pending

  # Print all tasks as JSON
  todo list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseFilter(opts.Filter)
			if err != nil {
				return err
			}

			list, err := d.loadList(cmd, true)
			if err != nil {
				return err
			}

			out, err := d.container.ListTasksUseCase(list).Execute(cmd.Context(), usecase.ListTasksInput{
				Filter: filter,
			})
			if err != nil {
				return err
			}

			if opts.JSON {
				return printEntriesJSON(cmd, out.Entries)
			}
			newRenderer(cmd.OutOrStdout(), d.container.AppConfig).Entries(out.Entries, "No tasks.")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", string(domain.FilterAll), "View to list: all, pending, completed, unprioritized, prioritized")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

type jsonTask struct {
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Index       int        `json:"index"`
}

func printEntriesJSON(cmd *cobra.Command, entries []domain.Entry) error {
	tasks := make([]jsonTask, 0, len(entries))
	for _, e := range entries {
		tasks = append(tasks, jsonTask{
			Index:       e.Index,
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Status:      string(e.Status),
			Priority:    string(e.Preference),
			CreatedAt:   e.CreatedAt,
			CompletedAt: e.CompletedAt,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

// newDoneCommand creates the done command for completing a task.
func newDoneCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <index>",
		Short: "Complete a task",
		Long: `Mark the task at the given index as completed and save.

Examples:
  todo done 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			var out *usecase.CompleteTaskOutput
			err = d.mutate(cmd, func(list *domain.TaskList) error {
				out, err = d.container.CompleteTaskUseCase(list).Execute(cmd.Context(), usecase.CompleteTaskInput{
					Index: index,
				})
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task %d: %s\n", index, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newRmCommand creates the rm command for removing a task.
func newRmCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove a task",
		Long: `Remove the task at the given index and save.
Tasks after it move down by one.

Examples:
  todo rm 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			var out *usecase.RemoveTaskOutput
			err = d.mutate(cmd, func(list *domain.TaskList) error {
				out, err = d.container.RemoveTaskUseCase(list).Execute(cmd.Context(), usecase.RemoveTaskInput{
					Index: index,
				})
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed task %d: %s\n", index, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newEditCommand creates the edit command for changing a task's title or priority.
func newEditCommand(d *deps) *cobra.Command {
	var opts struct {
		Title    string
		Priority string
	}

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Edit a task",
		Long: `Change the title or priority of the task at the given index and save.

Examples:
  # Rename a task
  todo edit 1 --title "Call the bank"

  # Drop a task's priority
  todo edit 1 --priority none`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			input := usecase.EditTaskInput{Index: index}
			if cmd.Flags().Changed("title") {
				input.Title = &opts.Title
			}
			if cmd.Flags().Changed("priority") {
				pref, err := domain.ParsePreference(opts.Priority)
				if err != nil {
					return err
				}
				input.Preference = &pref
			}

			var out *usecase.EditTaskOutput
			err = d.mutate(cmd, func(list *domain.TaskList) error {
				out, err = d.container.EditTaskUseCase(list).Execute(cmd.Context(), input)
				return err
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d: %s (%s)\n", index, out.Task.Title, out.Task.Preference.Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority: high, medium, low or none")

	return cmd
}

// newImportCommand creates the import command for adding tasks from a markdown file.
func newImportCommand(d *deps) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add tasks from a markdown file",
		Long: `Add every task described in a markdown file and save.
Nothing is added if any block is invalid.

File format:
  ---
  title: Buy milk
  priority: high
  ---
  Description here.

  ---
  title: Call the bank
  done: true
  ---`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			input := usecase.ImportTasksInput{Content: string(content), DryRun: dryRun}
			w := cmd.OutOrStdout()

			if dryRun {
				list, err := d.loadList(cmd, true)
				if err != nil {
					return err
				}
				out, err := d.container.ImportTasksUseCase(list).Execute(cmd.Context(), input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(w, "Would add %d tasks:\n", len(out.Drafts))
				for _, draft := range out.Drafts {
					state := domain.StatusPending
					if draft.Done {
						state = domain.StatusCompleted
					}
					_, _ = fmt.Fprintf(w, "  - %s [%s, %s]\n", draft.Title, state.Display(), draft.Preference.Display())
				}
				return nil
			}

			var out *usecase.ImportTasksOutput
			err = d.mutate(cmd, func(list *domain.TaskList) error {
				out, err = d.container.ImportTasksUseCase(list).Execute(cmd.Context(), input)
				return err
			})
			if err != nil {
				return err
			}

			for i, index := range out.Indexes {
				_, _ = fmt.Fprintf(w, "Added task %d: %s\n", index, out.Drafts[i].Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview tasks without adding them")

	return cmd
}

// parseIndex parses a zero-based task index.
func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	if index < 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index)
	}
	return index, nil
}
