package domain

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created from file input.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string
	Description string
	Preference  Preference
	Done        bool
}

// draftFrontmatter is the YAML header of a draft block.
type draftFrontmatter struct {
	Title    string `yaml:"title"`
	Priority string `yaml:"priority"`
	Done     bool   `yaml:"done"`
}

// frontmatterKeys are the keys that may start a draft header.
var frontmatterKeys = []string{"title:", "priority:", "done:"}

// ParseTaskDrafts parses a markdown file containing one or more task definitions.
// Tasks are separated by frontmatter blocks starting with "---".
//
// Format:
//
//	---
//	title: Buy milk
//	priority: high
//	---
//	2%, organic.
//
//	---
//	title: Call the bank
//	done: true
//	---
func ParseTaskDrafts(content string) ([]TaskDraft, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	blocks := splitTaskBlocks(content)
	if len(blocks) == 0 {
		return nil, ErrNoTasksInFile
	}

	drafts := make([]TaskDraft, 0, len(blocks))
	for i, block := range blocks {
		draft, err := parseTaskBlock(block)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// ToTask builds the task described by the draft.
func (d TaskDraft) ToTask(now time.Time) Task {
	task := NewTask(d.Title, d.Description, now)
	task.SetPreference(d.Preference)
	if d.Done {
		task.Complete(now)
	}
	return task
}

// splitTaskBlocks splits content into separate task blocks.
// Each block starts with "---" on its own line; a "---" inside a description
// only starts a new block when the next line looks like a frontmatter key.
func splitTaskBlocks(content string) []string {
	var blocks []string
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	started := false
	var current []string

	for i, line := range lines {
		if strings.TrimRight(line, " \t") != "---" {
			if started {
				current = append(current, line)
			}
			continue
		}
		switch {
		case !started:
			started = true
			current = []string{}
		case len(current) == 0 || !hasClosingDelimiter(current):
			current = append(current, line)
		case i+1 < len(lines) && isFrontmatterKey(lines[i+1]):
			blocks = append(blocks, strings.Join(current, "\n"))
			current = []string{}
		default:
			current = append(current, line)
		}
	}

	if len(current) > 0 {
		blocks = append(blocks, strings.Join(current, "\n"))
	}

	return blocks
}

// hasClosingDelimiter reports whether the block already closed its frontmatter.
func hasClosingDelimiter(lines []string) bool {
	for _, l := range lines {
		if strings.TrimRight(l, " \t") == "---" {
			return true
		}
	}
	return false
}

// isFrontmatterKey checks if a line looks like a frontmatter key.
func isFrontmatterKey(line string) bool {
	for _, key := range frontmatterKeys {
		if strings.HasPrefix(line, key) {
			return true
		}
	}
	return false
}

// parseTaskBlock parses a single block: YAML header, "---", description.
func parseTaskBlock(block string) (TaskDraft, error) {
	header, description, found := strings.Cut(block, "\n---")
	if !found {
		if strings.HasPrefix(block, "---") {
			header, description = "", strings.TrimPrefix(block, "---")
		} else {
			return TaskDraft{}, fmt.Errorf("%w: missing closing ---", ErrInvalidFrontmatter)
		}
	}

	var fm draftFrontmatter
	dec := yaml.NewDecoder(strings.NewReader(header))
	dec.KnownFields(true)
	if err := dec.Decode(&fm); err != nil && !errors.Is(err, io.EOF) {
		return TaskDraft{}, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	title := strings.TrimSpace(fm.Title)
	if title == "" {
		return TaskDraft{}, ErrEmptyTitle
	}

	pref, err := ParsePreference(fm.Priority)
	if err != nil {
		return TaskDraft{}, err
	}

	return TaskDraft{
		Title:       title,
		Description: strings.TrimSpace(description),
		Preference:  pref,
		Done:        fm.Done,
	}, nil
}
