// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Task represents one to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt   time.Time  `json:"created_at"`   // Set once at construction
	CompletedAt *time.Time `json:"completed_at"` // nil until completed
	ID          string     `json:"id"`           // Stable identifier, survives removal of other tasks
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	Preference  Preference `json:"preference"`
}

// NewTask creates a pending task with no priority.
// Title and description are used verbatim; trimming belongs to the input boundary.
func NewTask(title, description string, now time.Time) Task {
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		Preference:  PreferenceNone,
		CreatedAt:   now,
	}
}

// Complete marks the task as completed at now.
// Completing an already completed task moves CompletedAt forward.
func (t *Task) Complete(now time.Time) {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.Status = StatusCompleted
	t.CompletedAt = &now
}

// SetPreference sets the task priority.
func (t *Task) SetPreference(p Preference) {
	t.Preference = p
}

// IsCompleted returns true if the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.Status.IsCompleted()
}

// Validate checks the task invariants.
func (t *Task) Validate() error {
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Preference.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, t.Preference)
	}
	if t.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}
	if t.IsCompleted() != (t.CompletedAt != nil) {
		return ErrCompletionMismatch
	}
	if t.CompletedAt != nil && t.CompletedAt.Before(t.CreatedAt) {
		return ErrCompletedBeforeCreated
	}
	return nil
}

// clone returns a copy that shares no memory with t.
func (t Task) clone() Task {
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		t.CompletedAt = &completed
	}
	return t
}
