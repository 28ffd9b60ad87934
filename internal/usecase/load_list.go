package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// CorruptSuffix is appended to the store path when a malformed file is backed up.
const CorruptSuffix = ".corrupt"

// LoadListInput contains the parameters for loading the task list.
type LoadListInput struct {
	// Strict returns load failures instead of falling back to an empty list.
	// A missing file is never a failure.
	Strict bool
}

// LoadListOutput contains the result of loading the task list.
// Fields are ordered to minimize memory padding.
type LoadListOutput struct {
	List    *domain.TaskList
	Warning string // Set when the stored file could not be used and an empty list was returned
	Backup  string // Path of the copy made of an unusable file, if any
	Fresh   bool   // True when no stored file existed
}

// LoadList is the use case for reading the task list at startup.
type LoadList struct {
	store         domain.TaskListStore
	logger        domain.Logger
	backupCorrupt bool
}

// NewLoadList creates a new LoadList use case.
func NewLoadList(store domain.TaskListStore, logger domain.Logger, backupCorrupt bool) *LoadList {
	return &LoadList{
		store:         store,
		logger:        logger,
		backupCorrupt: backupCorrupt,
	}
}

// Execute loads the stored list.
// A missing file yields an empty list silently. A malformed or unreadable file
// yields an empty list and a warning, unless Strict is set.
func (uc *LoadList) Execute(_ context.Context, in LoadListInput) (*LoadListOutput, error) {
	list, err := uc.store.Load()
	if err == nil {
		uc.debug(fmt.Sprintf("loaded %d tasks from %s", list.Len(), uc.store.Path()))
		return &LoadListOutput{List: list}, nil
	}

	if errors.Is(err, domain.ErrStoreNotFound) {
		uc.debug(fmt.Sprintf("no task list at %s, starting empty", uc.store.Path()))
		return &LoadListOutput{List: domain.NewTaskList(), Fresh: true}, nil
	}

	if in.Strict {
		return nil, fmt.Errorf("load task list: %w", err)
	}

	out := &LoadListOutput{List: domain.NewTaskList()}
	if domain.IsFormatError(err) {
		out.Warning = fmt.Sprintf("%v; starting with an empty list", err)
	} else {
		out.Warning = fmt.Sprintf("could not read task list: %v; starting with an empty list", err)
	}
	// Keep a copy of whatever is there; the next save replaces the file.
	if uc.backupCorrupt {
		backup, backupErr := uc.store.Backup(CorruptSuffix)
		if backupErr != nil {
			out.Warning += fmt.Sprintf(" (backup failed: %v)", backupErr)
		} else {
			out.Backup = backup
			out.Warning += fmt.Sprintf(" (original kept at %s)", backup)
		}
	}

	if uc.logger != nil {
		uc.logger.Warn("store", out.Warning)
	}
	return out, nil
}

func (uc *LoadList) debug(msg string) {
	if uc.logger != nil {
		uc.logger.Debug("store", msg)
	}
}
