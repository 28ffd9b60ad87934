package domain

import "slices"

// Status represents the completion state of a task.
type Status string

const (
	StatusPending   Status = "Pending"   // Created, not done yet
	StatusCompleted Status = "Completed" // Done; CompletedAt is set
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	return slices.Contains(AllStatuses(), s)
}

// IsCompleted returns true for the completed status.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
