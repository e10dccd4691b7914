package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, "log-level: debug\nboard:\n  size: 6\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 6, conf.Board.Size)
	})

	t.Run("Falls back to defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: loading it
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 8, conf.Board.Size)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and a BOARD_SIZE variable
		path := writeConfig(t, "board:\n  size: 6\n")
		t.Setenv("BOARD_SIZE", "10")

		// When: loading it
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, 10, conf.Board.Size)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		assert.Error(t, err)
	})

}

func TestMustLoad(t *testing.T) {
	t.Run("Falls back to the environment without a config file", func(t *testing.T) {
		// Given: no config file and a BOARD_SIZE variable
		t.Setenv("BOARD_SIZE", "6")

		// When: loading a missing path
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment and defaults are used
		assert.Equal(t, 6, conf.Board.Size)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("Panics on a broken config file", func(t *testing.T) {
		path := writeConfig(t, "board: [\n")

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	conf, err := LoadFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, 8, conf.Board.Size)
}
