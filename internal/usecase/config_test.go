package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns effective config and sources", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Store.Path = "/data/tasks.json"
		loader := &testutil.MockConfigLoader{
			Config: cfg,
			SourceList: []domain.ConfigSource{
				{Path: "/home/test/.config/todo/config.toml", Exists: false},
				{Path: "/work/.todo.toml", Exists: true},
			},
		}

		out, err := NewShowConfig(loader).Execute(context.Background(), ShowConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/data/tasks.json", out.EffectiveConfig.Store.Path)
		require.Len(t, out.Sources, 2)
		assert.True(t, out.Sources[1].Exists)
	})

	t.Run("propagates load errors", func(t *testing.T) {
		loader := &testutil.MockConfigLoader{LoadErr: assert.AnError}

		_, err := NewShowConfig(loader).Execute(context.Background(), ShowConfigInput{})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		manager := &testutil.MockConfigManager{LocalPath: "/work/.todo.toml"}

		out, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/work/.todo.toml", out.Path)
		assert.Equal(t, 1, manager.LocalCalls)
		assert.Equal(t, 0, manager.GlobalCalls)
	})

	t.Run("global", func(t *testing.T) {
		manager := &testutil.MockConfigManager{GlobalPath: "/home/test/.config/todo/config.toml"}

		out, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{Global: true})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/todo/config.toml", out.Path)
		assert.Equal(t, 1, manager.GlobalCalls)
	})

	t.Run("already exists", func(t *testing.T) {
		manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

		_, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
