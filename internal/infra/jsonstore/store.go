// Package jsonstore provides a JSON file-based implementation of TaskListStore.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements TaskListStore.
var _ domain.TaskListStore = (*Store)(nil)

// Store reads and writes a whole task list as one JSON document.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list from disk.
// A missing file yields domain.ErrStoreNotFound; content that is not a valid
// task list yields a *domain.FormatError.
func (s *Store) Load() (*domain.TaskList, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", domain.ErrStoreNotFound, err)
		}
		return nil, fmt.Errorf("read task list: %w", err)
	}

	list, err := decode(content)
	if err != nil {
		return nil, &domain.FormatError{Path: s.path, Err: err}
	}
	return list, nil
}

// Save writes the task list, replacing any existing file.
func (s *Store) Save(list *domain.TaskList) error {
	content, err := encode(list)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	// Write to a uniquely named temp file first, then rename for atomicity
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Backup copies the current file to path+suffix.
func (s *Store) Backup(suffix string) (string, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read task list: %w", err)
	}
	backupPath := s.path + suffix
	if err := os.WriteFile(backupPath, content, 0o600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backupPath, nil
}

func encode(list *domain.TaskList) ([]byte, error) {
	data := fileData{Tasks: make([]taskRecord, 0, list.Len())}
	for i, t := range list.Tasks() {
		rec, err := toRecord(t)
		if err != nil {
			return nil, fmt.Errorf("encode task %d: %w", i, err)
		}
		data.Tasks = append(data.Tasks, rec)
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}
	return append(content, '\n'), nil
}

func decode(content []byte) (*domain.TaskList, error) {
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var data fileData
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode task list: %w", err)
	}

	tasks := make([]domain.Task, 0, len(data.Tasks))
	seen := make(map[string]struct{}, len(data.Tasks))
	for i, rec := range data.Tasks {
		task, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		// Ids are not user-facing; missing or repeated ones (hand-copied records) get a fresh one.
		if _, dup := seen[task.ID]; task.ID == "" || dup {
			task.ID = uuid.NewString()
		}
		seen[task.ID] = struct{}{}
		tasks = append(tasks, task)
	}
	return domain.NewTaskList(tasks...), nil
}
