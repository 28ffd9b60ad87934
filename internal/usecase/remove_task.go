package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	Index int // Position of the task to remove
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task domain.Task // The removed task
}

// RemoveTask is the use case for deleting a task from the list.
type RemoveTask struct {
	list   *domain.TaskList
	logger domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(list *domain.TaskList, logger domain.Logger) *RemoveTask {
	return &RemoveTask{
		list:   list,
		logger: logger,
	}
}

// Execute removes the task at the given index; later tasks move down by one.
// Returns domain.ErrInvalidIndex if the index is out of range.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	task, err := uc.list.Remove(in.Index)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("removed #%d: %q", in.Index, task.Title))
	}

	return &RemoveTaskOutput{Task: task}, nil
}
