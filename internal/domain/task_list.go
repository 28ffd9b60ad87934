package domain

import (
	"iter"
	"strings"
	"time"
)

// Entry pairs a task with its current position in the list.
type Entry struct {
	Task
	Index int
}

// TaskList is an ordered collection of tasks.
// The position of a task is its index; removing a task shifts later tasks down by one.
// A TaskList is owned by a single caller and is not safe for concurrent use.
type TaskList struct {
	tasks []Task
}

// NewTaskList creates a task list holding copies of the given tasks.
func NewTaskList(tasks ...Task) *TaskList {
	l := &TaskList{tasks: make([]Task, 0, len(tasks))}
	for _, t := range tasks {
		l.tasks = append(l.tasks, t.clone())
	}
	return l
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of all tasks in order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		out = append(out, t.clone())
	}
	return out
}

// Clone returns a deep copy of the list.
func (l *TaskList) Clone() *TaskList {
	return NewTaskList(l.tasks...)
}

// Add appends a task and returns its index.
func (l *TaskList) Add(task Task) int {
	l.tasks = append(l.tasks, task.clone())
	return len(l.tasks) - 1
}

// Remove deletes the task at index and returns it.
func (l *TaskList) Remove(index int) (Task, error) {
	if !l.inRange(index) {
		return Task{}, ErrInvalidIndex
	}
	removed := l.tasks[index]
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return removed, nil
}

// Complete marks the task at index as completed.
func (l *TaskList) Complete(index int, now time.Time) error {
	if !l.inRange(index) {
		return ErrInvalidIndex
	}
	l.tasks[index].Complete(now)
	return nil
}

// EditTitle replaces the title of the task at index. The new title is trimmed.
func (l *TaskList) EditTitle(index int, title string) error {
	if !l.inRange(index) {
		return ErrTaskNotFound
	}
	l.tasks[index].Title = strings.TrimSpace(title)
	return nil
}

// EditPreference replaces the priority of the task at index.
func (l *TaskList) EditPreference(index int, p Preference) error {
	if !l.inRange(index) {
		return ErrTaskNotFound
	}
	l.tasks[index].SetPreference(p)
	return nil
}

// Get returns a copy of the task at index.
func (l *TaskList) Get(index int) (Task, bool) {
	if !l.inRange(index) {
		return Task{}, false
	}
	return l.tasks[index].clone(), true
}

// Status returns the status of the task at index.
func (l *TaskList) Status(index int) (Status, bool) {
	if !l.inRange(index) {
		return "", false
	}
	return l.tasks[index].Status, true
}

// Preference returns the priority of the task at index.
func (l *TaskList) Preference(index int) (Preference, bool) {
	if !l.inRange(index) {
		return "", false
	}
	return l.tasks[index].Preference, true
}

// IndexOf returns the current index of the task with the given ID.
func (l *TaskList) IndexOf(id string) (int, bool) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Select returns a lazy view of the tasks matching f, keyed by index.
// The sequence may be iterated any number of times and never mutates the list.
func (l *TaskList) Select(f Filter) iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i := range l.tasks {
			if !f.Match(&l.tasks[i]) {
				continue
			}
			if !yield(i, l.tasks[i].clone()) {
				return
			}
		}
	}
}

// Entries returns the tasks matching f as a slice.
func (l *TaskList) Entries(f Filter) []Entry {
	var entries []Entry
	for i, t := range l.Select(f) {
		entries = append(entries, Entry{Index: i, Task: t})
	}
	return entries
}

func (l *TaskList) inRange(index int) bool {
	return index >= 0 && index < len(l.tasks)
}
