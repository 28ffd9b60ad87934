package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveTask_Execute_Success(t *testing.T) {
	// Setup
	list := newTestList("a", "b", "c")
	logger := &testutil.MockLogger{}
	uc := NewRemoveTask(list, logger)

	// Execute
	out, err := uc.Execute(context.Background(), RemoveTaskInput{Index: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "b", out.Task.Title)
	assert.Equal(t, []string{"a", "c"}, titlesOf(list))
	assert.Equal(t, []string{`INFO task: removed #1: "b"`}, logger.Lines)
}

func TestRemoveTask_Execute_OutOfRange(t *testing.T) {
	// Setup
	list := newTestList("a")
	logger := &testutil.MockLogger{}
	uc := NewRemoveTask(list, logger)

	// Execute
	_, err := uc.Execute(context.Background(), RemoveTaskInput{Index: 5})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	assert.Equal(t, []string{"a"}, titlesOf(list))
	assert.Empty(t, logger.Lines)
}
