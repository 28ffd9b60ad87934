package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Index int // Position of the task to complete
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task domain.Task // The task after completion
}

// CompleteTask is the use case for marking a task as completed.
type CompleteTask struct {
	list   *domain.TaskList
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(list *domain.TaskList, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		list:   list,
		clock:  clock,
		logger: logger,
	}
}

// Execute marks the task at the given index as completed.
// Returns domain.ErrInvalidIndex if the index is out of range.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	if err := uc.list.Complete(in.Index, uc.clock.Now()); err != nil {
		return nil, err
	}

	task, _ := uc.list.Get(in.Index)
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("completed #%d: %q", in.Index, task.Title))
	}

	return &CompleteTaskOutput{Task: task}, nil
}
