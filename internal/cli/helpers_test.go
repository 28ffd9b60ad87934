package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// testEnv wires the root command to in-memory doubles.
type testEnv struct {
	store     *testutil.MockStore
	clock     *testutil.MockClock
	loader    *testutil.MockConfigLoader
	manager   *testutil.MockConfigManager
	appConfig *domain.Config
	got       app.Config // Config passed to the factory
	built     int        // Number of containers built
}

func newTestEnv() *testEnv {
	cfg := domain.NewDefaultConfig()
	cfg.UI.Color = false
	return &testEnv{
		store:     testutil.NewMockStore(),
		clock:     &testutil.MockClock{NowTime: baseTime.Add(time.Hour)},
		loader:    &testutil.MockConfigLoader{Config: cfg},
		manager:   &testutil.MockConfigManager{},
		appConfig: cfg,
	}
}

func (e *testEnv) factory(cfg app.Config) (*app.Container, error) {
	e.got = cfg
	e.built++
	c := app.NewWithDeps(cfg, e.appConfig, e.store, e.clock, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.ConfigLoader = e.loader
	c.ConfigManager = e.manager
	return c, nil
}

// seed stores a list with one pending task per title, created a minute apart.
func (e *testEnv) seed(titles ...string) *domain.TaskList {
	list := domain.NewTaskList()
	for i, title := range titles {
		list.Add(domain.NewTask(title, "", baseTime.Add(time.Duration(i)*time.Minute)))
	}
	e.store.Saved = list
	return list
}

// run executes the root command with args, feeding stdin.
func (e *testEnv) run(stdin string, args ...string) (stdout, stderr string, err error) {
	root := NewRootCommand(e.factory, "test-version")
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// saved returns the last saved list, failing if nothing was saved.
func (e *testEnv) saved(t *testing.T) *domain.TaskList {
	t.Helper()
	require.NotNil(t, e.store.Saved, "expected the list to be saved")
	return e.store.Saved
}

func titlesOf(list *domain.TaskList) []string {
	titles := make([]string, 0, list.Len())
	for _, task := range list.Tasks() {
		titles = append(titles, task.Title)
	}
	return titles
}
