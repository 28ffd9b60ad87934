package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title      *string            // New title (nil = no change); trimmed before use
	Preference *domain.Preference // New priority (nil = no change)
	Index      int                // Position of the task to edit
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task // The task after editing
}

// EditTask is the use case for changing a task's title or priority.
type EditTask struct {
	list   *domain.TaskList
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(list *domain.TaskList, logger domain.Logger) *EditTask {
	return &EditTask{
		list:   list,
		logger: logger,
	}
}

// Execute applies the requested changes.
// Returns domain.ErrTaskNotFound if the index is out of range; nothing is changed in that case.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Title == nil && in.Preference == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if _, ok := uc.list.Get(in.Index); !ok {
		return nil, domain.ErrTaskNotFound
	}
	if in.Preference != nil && !in.Preference.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPreference, *in.Preference)
	}

	var changes []string
	if in.Title != nil {
		if err := uc.list.EditTitle(in.Index, *in.Title); err != nil {
			return nil, err
		}
		changes = append(changes, fmt.Sprintf("title=%q", strings.TrimSpace(*in.Title)))
	}
	if in.Preference != nil {
		if err := uc.list.EditPreference(in.Index, *in.Preference); err != nil {
			return nil, err
		}
		changes = append(changes, "priority="+string(*in.Preference))
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("edited #%d: %s", in.Index, strings.Join(changes, ", ")))
	}

	task, _ := uc.list.Get(in.Index)
	return &EditTaskOutput{Task: task}, nil
}
