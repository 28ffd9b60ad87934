package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks from markdown.
type ImportTasksInput struct {
	Content string // Markdown with one frontmatter block per task
	DryRun  bool   // Parse and report without changing the list
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Drafts  []domain.TaskDraft // Parsed drafts, in file order
	Indexes []int              // Indexes of the added tasks (empty on dry run)
}

// ImportTasks is the use case for adding tasks described in a markdown file.
type ImportTasks struct {
	list   *domain.TaskList
	clock  domain.Clock
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(list *domain.TaskList, clock domain.Clock, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		list:   list,
		clock:  clock,
		logger: logger,
	}
}

// Execute parses every draft first and adds them only if all are valid.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, fmt.Errorf("parse tasks: %w", err)
	}

	out := &ImportTasksOutput{Drafts: drafts}
	if in.DryRun {
		return out, nil
	}

	now := uc.clock.Now()
	out.Indexes = make([]int, 0, len(drafts))
	for _, d := range drafts {
		out.Indexes = append(out.Indexes, uc.list.Add(d.ToTask(now)))
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("imported %d tasks", len(drafts)))
	}

	return out, nil
}
