package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveList_Execute_Success(t *testing.T) {
	// Setup
	store := testutil.NewMockStore()
	logger := &testutil.MockLogger{}
	uc := NewSaveList(store, logger)
	list := newTestList("a", "b")

	// Execute
	out, err := uc.Execute(context.Background(), SaveListInput{List: list})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "todolist.json", out.Path)
	assert.Equal(t, 2, out.Count)
	require.NotNil(t, store.Saved)
	assert.Equal(t, list.Tasks(), store.Saved.Tasks())
	assert.Equal(t, []string{"INFO store: saved 2 tasks to todolist.json"}, logger.Lines)
}

func TestSaveList_Execute_NilListSavesEmpty(t *testing.T) {
	store := testutil.NewMockStore()
	uc := NewSaveList(store, nil)

	out, err := uc.Execute(context.Background(), SaveListInput{})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.Equal(t, 0, store.Saved.Len())
}

func TestSaveList_Execute_Error(t *testing.T) {
	// Setup
	store := testutil.NewMockStore()
	store.SaveErr = assert.AnError
	logger := &testutil.MockLogger{}
	uc := NewSaveList(store, logger)

	// Execute
	_, err := uc.Execute(context.Background(), SaveListInput{List: domain.NewTaskList()})

	// Assert
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save task list")
	require.Len(t, logger.Lines, 1)
	assert.Contains(t, logger.Lines[0], "ERROR store: save failed")
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	store := testutil.NewMockStore()
	list := newTestList("a", "b", "c")
	require.NoError(t, list.Complete(1, baseTime.Add(time.Hour)))
	require.NoError(t, list.EditPreference(2, domain.PreferenceLow))

	_, err := NewSaveList(store, nil).Execute(context.Background(), SaveListInput{List: list})
	require.NoError(t, err)
	out, err := NewLoadList(store, nil, true).Execute(context.Background(), LoadListInput{})

	require.NoError(t, err)
	assert.Equal(t, list.Tasks(), out.List.Tasks())
}
