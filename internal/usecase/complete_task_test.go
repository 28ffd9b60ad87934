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

func TestCompleteTask_Execute_Success(t *testing.T) {
	// Setup
	list := newTestList("a", "b")
	clock := newTestClock()
	clock.Advance(time.Hour)
	logger := &testutil.MockLogger{}
	uc := NewCompleteTask(list, clock, logger)

	// Execute
	out, err := uc.Execute(context.Background(), CompleteTaskInput{Index: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Task.Status)
	require.NotNil(t, out.Task.CompletedAt)
	assert.True(t, out.Task.CompletedAt.Equal(baseTime.Add(time.Hour)))

	status, _ := list.Status(1)
	assert.Equal(t, domain.StatusCompleted, status)
	status, _ = list.Status(0)
	assert.Equal(t, domain.StatusPending, status)
	assert.Equal(t, []string{`INFO task: completed #1: "b"`}, logger.Lines)
}

func TestCompleteTask_Execute_Twice(t *testing.T) {
	list := newTestList("a")
	clock := newTestClock()
	uc := NewCompleteTask(list, clock, nil)

	_, err := uc.Execute(context.Background(), CompleteTaskInput{Index: 0})
	require.NoError(t, err)

	clock.Advance(time.Hour)
	out, err := uc.Execute(context.Background(), CompleteTaskInput{Index: 0})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Task.Status)
	assert.True(t, out.Task.CompletedAt.Equal(baseTime.Add(time.Hour)))
}

func TestCompleteTask_Execute_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"equal to length", 2},
		{"far beyond", 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newTestList("a", "b")
			before := list.Tasks()
			uc := NewCompleteTask(list, newTestClock(), nil)

			_, err := uc.Execute(context.Background(), CompleteTaskInput{Index: tt.index})

			assert.ErrorIs(t, err, domain.ErrInvalidIndex)
			assert.Equal(t, before, list.Tasks())
		})
	}
}
