package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
)

func TestRoot_Commands(t *testing.T) {
	root := Root()

	play, _, err := root.Find([]string{"play"})
	require.NoError(t, err)
	assert.Equal(t, "play", play.Name())

	serve, _, err := root.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	// running without a subcommand plays in the terminal
	assert.NotNil(t, root.RunE)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))
}

func TestRoot_BadConfig(t *testing.T) {
	// Given: a config file with an unknown storage
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage: postgres\n"), 0o600))

	root := Root()
	root.SetArgs([]string{"serve", "--config", path})

	// When: running a command
	err := root.Execute()

	// Then: the config error is returned before anything starts
	require.ErrorIs(t, err, config.ErrUnknownStorage)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		"info":    "INFO",
		"warn":    "WARN",
		"error":   "ERROR",
		"verbose": "INFO",
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in).String(), in)
	}
}
