package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrInvalidIndex           = errors.New("invalid index")
	ErrTaskNotFound           = errors.New("task not found")
	ErrEmptyTitle             = errors.New("title cannot be empty")
	ErrNoFieldsToUpdate       = errors.New("no fields to update")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidPreference      = errors.New("invalid preference")
	ErrInvalidFilter          = errors.New("invalid filter")
	ErrMissingCreatedAt       = errors.New("created_at is missing")
	ErrCompletionMismatch     = errors.New("completed_at does not match status")
	ErrCompletedBeforeCreated = errors.New("completed_at is before created_at")
	ErrStoreNotFound          = errors.New("task list file not found")
	ErrConfigExists           = errors.New("config file already exists")
	ErrEmptyFile              = errors.New("file is empty")
	ErrNoTasksInFile          = errors.New("no tasks found in file")
	ErrInvalidFrontmatter     = errors.New("invalid frontmatter")
)

// FormatError reports a task list file whose content cannot be used.
// It is distinct from I/O errors so a corrupt file is never mistaken for a missing one.
type FormatError struct {
	Err  error
	Path string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed task list %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err wraps a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
