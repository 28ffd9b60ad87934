package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Preference is the priority a user assigned to a task.
type Preference string

const (
	PreferenceHigh   Preference = "high"
	PreferenceMedium Preference = "medium"
	PreferenceLow    Preference = "low"
	PreferenceNone   Preference = "none" // Default for new tasks
)

// AllPreferences returns all preference levels, highest first.
func AllPreferences() []Preference {
	return []Preference{PreferenceHigh, PreferenceMedium, PreferenceLow, PreferenceNone}
}

// IsValid returns true if the preference is one of the known levels.
func (p Preference) IsValid() bool {
	return slices.Contains(AllPreferences(), p)
}

// IsSet returns true if a priority has been assigned.
func (p Preference) IsSet() bool {
	return p != PreferenceNone
}

// Next cycles High -> Medium -> Low -> None -> High.
func (p Preference) Next() Preference {
	switch p {
	case PreferenceHigh:
		return PreferenceMedium
	case PreferenceMedium:
		return PreferenceLow
	case PreferenceLow:
		return PreferenceNone
	default:
		return PreferenceHigh
	}
}

// Display returns a human-readable representation of the preference.
func (p Preference) Display() string {
	switch p {
	case PreferenceHigh:
		return "High"
	case PreferenceMedium:
		return "Medium"
	case PreferenceLow:
		return "Low"
	case PreferenceNone:
		return "None"
	default:
		return string(p)
	}
}

// ParsePreference parses a preference name. Matching is case-insensitive and
// accepts the stored names (alto, medio, baixo, vazio) as aliases.
// An empty string parses as PreferenceNone.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "h", "alto":
		return PreferenceHigh, nil
	case "medium", "m", "medio":
		return PreferenceMedium, nil
	case "low", "l", "baixo":
		return PreferenceLow, nil
	case "none", "", "vazio":
		return PreferenceNone, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: high, medium, low, none)", ErrInvalidPreference, s)
	}
}
