package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Main menu options.
const (
	menuAdd = iota + 1
	menuComplete
	menuRemove
	menuShow
	menuEdit
	menuExit
)

// priorityMenu maps priority menu numbers to levels.
var priorityMenu = []domain.Preference{
	domain.PreferenceHigh,
	domain.PreferenceMedium,
	domain.PreferenceLow,
	domain.PreferenceNone,
}

// Shell is the numbered-menu interactive loop.
// It owns one task list for its lifetime and saves it on exit.
type Shell struct {
	c    *app.Container
	list *domain.TaskList
	in   *bufio.Scanner
	out  io.Writer
	r    *renderer
}

// NewShell creates a shell reading commands from in and writing to out.
func NewShell(c *app.Container, list *domain.TaskList, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		c:    c,
		list: list,
		in:   bufio.NewScanner(in),
		out:  out,
		r:    newRenderer(out, c.AppConfig),
	}
}

// Run executes the menu loop until the user exits or input ends.
// The list is saved on the way out; a save failure is returned after the loop ends.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.printMenu()
		choice, err := s.readInt("Choose an option: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.println("")
				return s.exit(ctx)
			}
			return err
		}

		switch choice {
		case menuAdd:
			err = s.add(ctx)
		case menuComplete:
			err = s.complete(ctx)
		case menuRemove:
			err = s.remove(ctx)
		case menuShow:
			err = s.show(ctx)
		case menuEdit:
			err = s.edit(ctx)
		case menuExit:
			return s.exit(ctx)
		default:
			s.println("Invalid option.")
		}

		if errors.Is(err, io.EOF) {
			s.println("")
			return s.exit(ctx)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) printMenu() {
	s.println("")
	s.println("Choose an action:")
	s.println("1 - Add task")
	s.println("2 - Complete task")
	s.println("3 - Remove task")
	s.println("4 - Show tasks")
	s.println("5 - Edit task")
	s.println("6 - Save and exit")
}

func (s *Shell) add(ctx context.Context) error {
	title, err := s.readLine("Title: ")
	if err != nil {
		return err
	}
	description, err := s.readLine("Description: ")
	if err != nil {
		return err
	}

	out, err := s.c.AddTaskUseCase(s.list).Execute(ctx, usecase.AddTaskInput{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return err
	}
	s.printf("Task added at index %d.\n", out.Index)
	return nil
}

func (s *Shell) complete(ctx context.Context) error {
	if !s.showFiltered(ctx, domain.FilterAll) {
		return nil
	}
	index, err := s.readInt("Index of the task to complete: ")
	if err != nil {
		return err
	}

	_, err = s.c.CompleteTaskUseCase(s.list).Execute(ctx, usecase.CompleteTaskInput{Index: index})
	if errors.Is(err, domain.ErrInvalidIndex) {
		s.println("Invalid index.")
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("Task %d completed.\n", index)
	return nil
}

func (s *Shell) remove(ctx context.Context) error {
	if !s.showFiltered(ctx, domain.FilterAll) {
		return nil
	}
	index, err := s.readInt("Index of the task to remove: ")
	if err != nil {
		return err
	}

	out, err := s.c.RemoveTaskUseCase(s.list).Execute(ctx, usecase.RemoveTaskInput{Index: index})
	if errors.Is(err, domain.ErrInvalidIndex) {
		s.println("Invalid index.")
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("Removed %q.\n", out.Task.Title)
	return nil
}

func (s *Shell) show(ctx context.Context) error {
	s.println("Which tasks do you want to see?")
	s.println("1 - All")
	s.println("2 - Completed")
	s.println("3 - Pending")
	choice, err := s.readInt("Choose an option: ")
	if err != nil {
		return err
	}

	filters := []domain.Filter{domain.FilterAll, domain.FilterCompleted, domain.FilterPending}
	if choice < 1 || choice > len(filters) {
		s.println("Invalid option.")
		return nil
	}
	s.showFiltered(ctx, filters[choice-1])
	return nil
}

func (s *Shell) edit(ctx context.Context) error {
	s.println("What do you want to edit?")
	s.println("1 - Change the title")
	s.println("2 - Add a priority")
	s.println("3 - Change the priority")
	choice, err := s.readInt("Choose an option: ")
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return s.editTitle(ctx)
	case 2:
		return s.editPreference(ctx, domain.FilterUnprioritized, "Index of the task to prioritize: ")
	case 3:
		return s.editPreference(ctx, domain.FilterPrioritized, "Index of the task to change: ")
	default:
		s.println("Invalid option.")
		return nil
	}
}

func (s *Shell) editTitle(ctx context.Context) error {
	if !s.showFiltered(ctx, domain.FilterPending) {
		return nil
	}
	index, err := s.readInt("Index of the task to rename: ")
	if err != nil {
		return err
	}
	if _, ok := s.list.Get(index); !ok {
		s.println("Task not found.")
		return nil
	}
	title, err := s.readLine("New title: ")
	if err != nil {
		return err
	}

	return s.applyEdit(ctx, usecase.EditTaskInput{Index: index, Title: &title})
}

func (s *Shell) editPreference(ctx context.Context, filter domain.Filter, prompt string) error {
	if !s.showFiltered(ctx, filter) {
		return nil
	}
	index, err := s.readInt(prompt)
	if err != nil {
		return err
	}
	if _, ok := s.list.Get(index); !ok {
		s.println("Task not found.")
		return nil
	}
	pref, err := s.readPreference()
	if err != nil {
		return err
	}

	return s.applyEdit(ctx, usecase.EditTaskInput{Index: index, Preference: &pref})
}

func (s *Shell) applyEdit(ctx context.Context, in usecase.EditTaskInput) error {
	out, err := s.c.EditTaskUseCase(s.list).Execute(ctx, in)
	if errors.Is(err, domain.ErrTaskNotFound) {
		s.println("Task not found.")
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("Task %d updated: %s (%s).\n", in.Index, out.Task.Title, out.Task.Preference.Display())
	return nil
}

// readPreference asks for a priority until a listed number is entered.
func (s *Shell) readPreference() (domain.Preference, error) {
	s.println("Which priority?")
	for i, p := range priorityMenu {
		s.printf("%d - %s\n", i+1, p.Display())
	}
	for {
		choice, err := s.readInt("Choose an option: ")
		if err != nil {
			return "", err
		}
		if choice >= 1 && choice <= len(priorityMenu) {
			return priorityMenu[choice-1], nil
		}
		s.println("Invalid option.")
	}
}

// showFiltered prints the tasks in the view and reports whether there were any.
func (s *Shell) showFiltered(ctx context.Context, filter domain.Filter) bool {
	out, err := s.c.ListTasksUseCase(s.list).Execute(ctx, usecase.ListTasksInput{Filter: filter})
	if err != nil {
		s.printf("Error: %v\n", err)
		return false
	}
	s.r.Entries(out.Entries, "No tasks.")
	return len(out.Entries) > 0
}

func (s *Shell) exit(ctx context.Context) error {
	out, err := s.c.SaveListUseCase().Execute(ctx, usecase.SaveListInput{List: s.list})
	if err != nil {
		s.println("Exiting without saving.")
		return err
	}
	s.printf("Saved %d tasks to %s.\n", out.Count, out.Path)
	s.println("Exiting...")
	return nil
}

// readLine prompts and returns the next line, trimmed.
// Returns io.EOF when input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readInt prompts until a whole number is entered.
func (s *Shell) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		s.println("Invalid input, enter a number.")
	}
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}
