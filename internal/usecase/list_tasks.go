package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.Filter // View to list (empty = all)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Entries []domain.Entry // Matching tasks with their indexes, in list order
	Total   int            // Number of tasks in the whole list
}

// ListTasks is the use case for listing a filtered view of the list.
type ListTasks struct {
	list *domain.TaskList
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(list *domain.TaskList) *ListTasks {
	return &ListTasks{list: list}
}

// Execute returns the tasks matching the filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := in.Filter
	if filter == "" {
		filter = domain.FilterAll
	}
	if _, err := domain.ParseFilter(string(filter)); err != nil {
		return nil, err
	}

	return &ListTasksOutput{
		Entries: uc.list.Entries(filter),
		Total:   uc.list.Len(),
	}, nil
}
