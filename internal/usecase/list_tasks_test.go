package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute(t *testing.T) {
	// Setup: a completed, b pending+high, c pending+none
	list := newTestList("a", "b", "c")
	require.NoError(t, list.Complete(0, baseTime))
	require.NoError(t, list.EditPreference(1, domain.PreferenceHigh))

	tests := []struct {
		name    string
		filter  domain.Filter
		indexes []int
	}{
		{"default is all", "", []int{0, 1, 2}},
		{"all", domain.FilterAll, []int{0, 1, 2}},
		{"completed", domain.FilterCompleted, []int{0}},
		{"pending", domain.FilterPending, []int{1, 2}},
		{"unprioritized", domain.FilterUnprioritized, []int{2}},
		{"prioritized", domain.FilterPrioritized, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewListTasks(list)

			out, err := uc.Execute(context.Background(), ListTasksInput{Filter: tt.filter})

			require.NoError(t, err)
			assert.Equal(t, 3, out.Total)
			got := make([]int, 0, len(out.Entries))
			for _, e := range out.Entries {
				got = append(got, e.Index)
			}
			assert.Equal(t, tt.indexes, got)
		})
	}
}

func TestListTasks_Execute_InvalidFilter(t *testing.T) {
	uc := NewListTasks(newTestList("a"))

	_, err := uc.Execute(context.Background(), ListTasksInput{Filter: "someday"})

	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestListTasks_Execute_Empty(t *testing.T) {
	uc := NewListTasks(domain.NewTaskList())

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Entries)
	assert.Equal(t, 0, out.Total)
}
