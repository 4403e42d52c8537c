package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numtasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 1, cfg.Run.Workers)
	assert.Equal(t, "text", cfg.Run.Output)
	assert.True(t, cfg.Run.Parallel)
	assert.Empty(t, cfg.Run.Tasks)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
run:
  workers: 4
  tasks: [1, 7, 12]
  categories: [set]
  output: yaml
  parallel: false
  save_dir: out/arrays
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Run.Workers)
	assert.Equal(t, []int{1, 7, 12}, cfg.Run.Tasks)
	assert.Equal(t, []string{"set"}, cfg.Run.Categories)
	assert.Equal(t, "yaml", cfg.Run.Output)
	assert.False(t, cfg.Run.Parallel)
	assert.Equal(t, "out/arrays", cfg.Run.SaveDir)
}

func TestLoad_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "numtasks.yaml"), []byte("run:\n  workers: 3\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Run.Workers)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NUMTASKS_RUN_WORKERS", "8")
	t.Setenv("NUMTASKS_LOG_LEVEL", "warn")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Run.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	tests := map[string]string{
		"workers": "run:\n  workers: 0\n",
		"output":  "run:\n  output: xml\n",
		"format":  "log:\n  format: pretty\n",
		"level":   "log:\n  level: loud\n",
		"tasks":   "run:\n  tasks: [0]\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(New(), writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
