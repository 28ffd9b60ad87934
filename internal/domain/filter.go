package domain

import (
	"fmt"
	"strings"
)

// Filter selects a view over a task list.
type Filter string

const (
	FilterAll           Filter = "all"
	FilterCompleted     Filter = "completed"
	FilterPending       Filter = "pending"
	FilterUnprioritized Filter = "unprioritized" // Pending with no priority yet
	FilterPrioritized   Filter = "prioritized"   // Pending with a priority assigned
)

// AllFilters returns all filters in display order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterPending, FilterCompleted, FilterUnprioritized, FilterPrioritized}
}

// ParseFilter parses a filter name. An empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FilterAll, nil
	}
	for _, known := range AllFilters() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Match reports whether the task belongs to the view.
func (f Filter) Match(t *Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterCompleted:
		return t.IsCompleted()
	case FilterPending:
		return !t.IsCompleted()
	case FilterUnprioritized:
		return !t.IsCompleted() && !t.Preference.IsSet()
	case FilterPrioritized:
		return !t.IsCompleted() && t.Preference.IsSet()
	default:
		return false
	}
}

// Display returns a human-readable name for the filter.
func (f Filter) Display() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterCompleted:
		return "Completed"
	case FilterPending:
		return "Pending"
	case FilterUnprioritized:
		return "No priority"
	case FilterPrioritized:
		return "Prioritized"
	default:
		return string(f)
	}
}
