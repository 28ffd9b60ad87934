package cli

import (
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShowCommand(t *testing.T) {
	env := newTestEnv()
	env.loader.SourceList = []domain.ConfigSource{
		{Path: "/home/test/.config/todo/config.toml", Exists: false},
		{Path: "/work/.todo.toml", Exists: true},
	}

	out, _, err := env.run("", "--file", "other.json", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]\n- /home/test/.config/todo/config.toml (not found)\n- /work/.todo.toml\n")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, "path = 'other.json'")
	assert.NotContains(t, out, "Warnings")
}

func TestConfigTemplateCommand(t *testing.T) {
	env := newTestEnv()

	out, _, err := env.run("", "config", "template")

	require.NoError(t, err)
	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, "[log]")
	assert.Contains(t, out, "[ui]")
}

func TestConfigInitCommand(t *testing.T) {
	t.Run("local", func(t *testing.T) {
		env := newTestEnv()
		env.manager.LocalPath = "/work/.todo.toml"

		out, _, err := env.run("", "config", "init")

		require.NoError(t, err)
		assert.Equal(t, "Created config file: /work/.todo.toml\n", out)
		assert.Equal(t, 1, env.manager.LocalCalls)
	})

	t.Run("global", func(t *testing.T) {
		env := newTestEnv()
		env.manager.GlobalPath = "/home/test/.config/todo/config.toml"

		_, _, err := env.run("", "config", "init", "--global")

		require.NoError(t, err)
		assert.Equal(t, 1, env.manager.GlobalCalls)
	})

	t.Run("exists", func(t *testing.T) {
		env := newTestEnv()
		env.manager.InitErr = domain.ErrConfigExists

		_, _, err := env.run("", "config", "init")

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
