package jsonstore

import (
	"fmt"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// fileData represents the JSON file structure.
type fileData struct {
	Tasks []taskRecord `json:"tasks"`
}

// taskRecord is the stored form of a task. Field order and tag values are
// kept stable so files written by earlier versions keep loading.
type taskRecord struct {
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Preference  string     `json:"preference"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"` // Derived from Status on write, ignored on read
	ID          string     `json:"id,omitempty"`
}

// Stored preference tags.
const (
	tagHigh   = "Alto"
	tagMedium = "Medio"
	tagLow    = "Baixo"
	tagNone   = "Vazio"
)

func preferenceTag(p domain.Preference) (string, error) {
	switch p {
	case domain.PreferenceHigh:
		return tagHigh, nil
	case domain.PreferenceMedium:
		return tagMedium, nil
	case domain.PreferenceLow:
		return tagLow, nil
	case domain.PreferenceNone:
		return tagNone, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPreference, p)
	}
}

func preferenceFromTag(tag string) (domain.Preference, error) {
	switch tag {
	case tagHigh:
		return domain.PreferenceHigh, nil
	case tagMedium:
		return domain.PreferenceMedium, nil
	case tagLow:
		return domain.PreferenceLow, nil
	case tagNone:
		return domain.PreferenceNone, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPreference, tag)
	}
}

func toRecord(t domain.Task) (taskRecord, error) {
	if !t.Status.IsValid() {
		return taskRecord{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, t.Status)
	}
	tag, err := preferenceTag(t.Preference)
	if err != nil {
		return taskRecord{}, err
	}
	rec := taskRecord{
		Title:       t.Title,
		Status:      string(t.Status),
		Preference:  tag,
		CreatedAt:   t.CreatedAt.UTC(),
		Description: t.Description,
		Completed:   t.IsCompleted(),
		ID:          t.ID,
	}
	if t.CompletedAt != nil {
		completed := t.CompletedAt.UTC()
		rec.CompletedAt = &completed
	}
	return rec, nil
}

func fromRecord(rec taskRecord) (domain.Task, error) {
	pref, err := preferenceFromTag(rec.Preference)
	if err != nil {
		return domain.Task{}, err
	}
	task := domain.Task{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Status:      domain.Status(rec.Status),
		Preference:  pref,
		CreatedAt:   rec.CreatedAt.UTC(),
	}
	if rec.CompletedAt != nil {
		completed := rec.CompletedAt.UTC()
		task.CompletedAt = &completed
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}
