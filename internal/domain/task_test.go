package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk", "2%, organic", testNow)

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2%, organic", task.Description)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, PreferenceNone, task.Preference)
	assert.True(t, task.CreatedAt.Equal(testNow))
	assert.Nil(t, task.CompletedAt)
	assert.NotEmpty(t, task.ID)
	require.NoError(t, task.Validate())
}

func TestNewTask_KeepsInputVerbatim(t *testing.T) {
	task := NewTask("  padded  ", "\tdesc\n", testNow)

	assert.Equal(t, "  padded  ", task.Title)
	assert.Equal(t, "\tdesc\n", task.Description)
}

func TestNewTask_UniqueIDs(t *testing.T) {
	a := NewTask("a", "", testNow)
	b := NewTask("a", "", testNow)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestTask_Complete(t *testing.T) {
	task := NewTask("Write report", "", testNow)
	later := testNow.Add(time.Hour)

	task.Complete(later)

	assert.Equal(t, StatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(later))
	assert.True(t, task.IsCompleted())
	require.NoError(t, task.Validate())
}

func TestTask_Complete_Twice_MovesCompletedAt(t *testing.T) {
	task := NewTask("Write report", "", testNow)
	first := testNow.Add(time.Minute)
	second := testNow.Add(time.Hour)

	task.Complete(first)
	task.Complete(second)

	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(second))
}

func TestTask_Complete_ClockBehindCreation(t *testing.T) {
	task := NewTask("Write report", "", testNow)

	task.Complete(testNow.Add(-time.Hour))

	require.NotNil(t, task.CompletedAt)
	assert.True(t, task.CompletedAt.Equal(task.CreatedAt))
	assert.NoError(t, task.Validate())
}

func TestTask_SetPreference(t *testing.T) {
	for _, p := range AllPreferences() {
		t.Run(string(p), func(t *testing.T) {
			task := NewTask("x", "", testNow)
			task.SetPreference(p)
			assert.Equal(t, p, task.Preference)
		})
	}
}

func TestTask_Validate(t *testing.T) {
	completedAt := testNow.Add(time.Minute)
	before := testNow.Add(-time.Minute)

	tests := []struct {
		wantErr error
		task    Task
		name    string
	}{
		{
			name: "valid pending",
			task: Task{Title: "a", Status: StatusPending, Preference: PreferenceLow, CreatedAt: testNow},
		},
		{
			name: "valid completed",
			task: Task{Title: "a", Status: StatusCompleted, Preference: PreferenceNone, CreatedAt: testNow, CompletedAt: &completedAt},
		},
		{
			name:    "unknown status",
			task:    Task{Status: "Done", Preference: PreferenceNone, CreatedAt: testNow},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown preference",
			task:    Task{Status: StatusPending, Preference: "urgent", CreatedAt: testNow},
			wantErr: ErrInvalidPreference,
		},
		{
			name:    "missing created_at",
			task:    Task{Status: StatusPending, Preference: PreferenceNone},
			wantErr: ErrMissingCreatedAt,
		},
		{
			name:    "completed without completed_at",
			task:    Task{Status: StatusCompleted, Preference: PreferenceNone, CreatedAt: testNow},
			wantErr: ErrCompletionMismatch,
		},
		{
			name:    "pending with completed_at",
			task:    Task{Status: StatusPending, Preference: PreferenceNone, CreatedAt: testNow, CompletedAt: &completedAt},
			wantErr: ErrCompletionMismatch,
		},
		{
			name:    "completed before created",
			task:    Task{Status: StatusCompleted, Preference: PreferenceNone, CreatedAt: testNow, CompletedAt: &before},
			wantErr: ErrCompletedBeforeCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("pending").IsValid())
	assert.False(t, Status("").IsValid())
	assert.True(t, StatusCompleted.IsCompleted())
	assert.False(t, StatusPending.IsCompleted())
	assert.Equal(t, "Pending", StatusPending.Display())
	assert.Len(t, AllStatuses(), 2)
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), "%s", s)
	}
	assert.False(t, Preference("Alto").IsValid(), "stored tags are not preference values")
}

func TestParsePreference(t *testing.T) {
	tests := []struct {
		input   string
		want    Preference
		wantErr bool
	}{
		{input: "high", want: PreferenceHigh},
		{input: "HIGH", want: PreferenceHigh},
		{input: " m ", want: PreferenceMedium},
		{input: "low", want: PreferenceLow},
		{input: "", want: PreferenceNone},
		{input: "none", want: PreferenceNone},
		{input: "alto", want: PreferenceHigh},
		{input: "Medio", want: PreferenceMedium},
		{input: "baixo", want: PreferenceLow},
		{input: "vazio", want: PreferenceNone},
		{input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePreference(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPreference)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreference_Next(t *testing.T) {
	p := PreferenceNone
	var seen []Preference
	for range 4 {
		p = p.Next()
		seen = append(seen, p)
	}
	assert.Equal(t, []Preference{PreferenceHigh, PreferenceMedium, PreferenceLow, PreferenceNone}, seen)
}

func TestPreference_Display(t *testing.T) {
	assert.Equal(t, "High", PreferenceHigh.Display())
	assert.Equal(t, "None", PreferenceNone.Display())
	assert.False(t, PreferenceNone.IsSet())
	assert.True(t, PreferenceLow.IsSet())
}
