package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importContent = `---
title: Buy milk
priority: high
---
2%, organic.

---
title: Call the bank
done: true
---
`

func TestImportTasks_Execute_Success(t *testing.T) {
	// Setup
	list := newTestList("existing")
	logger := &testutil.MockLogger{}
	uc := NewImportTasks(list, newTestClock(), logger)

	// Execute
	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importContent})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Drafts, 2)
	assert.Equal(t, []int{1, 2}, out.Indexes)
	assert.Equal(t, []string{"existing", "Buy milk", "Call the bank"}, titlesOf(list))

	milk, _ := list.Get(1)
	assert.Equal(t, "2%, organic.", milk.Description)
	assert.Equal(t, domain.PreferenceHigh, milk.Preference)
	assert.Equal(t, domain.StatusPending, milk.Status)

	bank, _ := list.Get(2)
	assert.Equal(t, domain.StatusCompleted, bank.Status)
	require.NotNil(t, bank.CompletedAt)
	assert.Equal(t, []string{"INFO task: imported 2 tasks"}, logger.Lines)
}

func TestImportTasks_Execute_DryRun(t *testing.T) {
	list := newTestList("existing")
	uc := NewImportTasks(list, newTestClock(), nil)

	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: importContent, DryRun: true})

	require.NoError(t, err)
	assert.Len(t, out.Drafts, 2)
	assert.Empty(t, out.Indexes)
	assert.Equal(t, 1, list.Len())
}

func TestImportTasks_Execute_InvalidLeavesListUnchanged(t *testing.T) {
	content := importContent + `
---
title: Broken
priority: someday
---
`
	list := newTestList("existing")
	uc := NewImportTasks(list, newTestClock(), nil)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: content})

	assert.ErrorIs(t, err, domain.ErrInvalidPreference)
	assert.Equal(t, 1, list.Len())
}

func TestImportTasks_Execute_Empty(t *testing.T) {
	uc := NewImportTasks(domain.NewTaskList(), newTestClock(), nil)

	_, err := uc.Execute(context.Background(), ImportTasksInput{Content: "  \n"})

	assert.ErrorIs(t, err, domain.ErrEmptyFile)
}
