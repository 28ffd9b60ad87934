// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Title       string            // Task title, used verbatim
	Description string            // Task description, used verbatim
	Preference  domain.Preference // Initial priority (empty = none)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  domain.Task
	Index int // Position of the new task
}

// AddTask is the use case for appending a task to the list.
type AddTask struct {
	list   *domain.TaskList
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(list *domain.TaskList, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		list:   list,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a pending task and appends it to the list.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	pref := in.Preference
	if pref == "" {
		pref = domain.PreferenceNone
	}
	if !pref.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPreference, in.Preference)
	}

	task := domain.NewTask(in.Title, in.Description, uc.clock.Now())
	task.SetPreference(pref)
	index := uc.list.Add(task)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added #%d: %q", index, task.Title))
	}

	return &AddTaskOutput{Task: task, Index: index}, nil
}
