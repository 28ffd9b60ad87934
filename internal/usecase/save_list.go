package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// SaveListInput contains the parameters for saving the task list.
type SaveListInput struct {
	List *domain.TaskList
}

// SaveListOutput contains the result of saving the task list.
type SaveListOutput struct {
	Path  string // Where the list was written
	Count int    // Number of tasks written
}

// SaveList is the use case for persisting the whole task list.
type SaveList struct {
	store  domain.TaskListStore
	logger domain.Logger
}

// NewSaveList creates a new SaveList use case.
func NewSaveList(store domain.TaskListStore, logger domain.Logger) *SaveList {
	return &SaveList{
		store:  store,
		logger: logger,
	}
}

// Execute overwrites the stored file with the given list.
func (uc *SaveList) Execute(_ context.Context, in SaveListInput) (*SaveListOutput, error) {
	list := in.List
	if list == nil {
		list = domain.NewTaskList()
	}

	if err := uc.store.Save(list); err != nil {
		if uc.logger != nil {
			uc.logger.Error("store", fmt.Sprintf("save failed: %v", err))
		}
		return nil, fmt.Errorf("save task list: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("store", fmt.Sprintf("saved %d tasks to %s", list.Len(), uc.store.Path()))
	}

	return &SaveListOutput{Path: uc.store.Path(), Count: list.Len()}, nil
}
