package usecase

import (
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: baseTime}
}

// newTestList builds a list with one task per title, created a minute apart.
func newTestList(titles ...string) *domain.TaskList {
	list := domain.NewTaskList()
	for i, title := range titles {
		list.Add(domain.NewTask(title, "", baseTime.Add(time.Duration(i)*time.Minute)))
	}
	return list
}

func titlesOf(list *domain.TaskList) []string {
	titles := make([]string, 0, list.Len())
	for _, task := range list.Tasks() {
		titles = append(titles, task.Title)
	}
	return titles
}
