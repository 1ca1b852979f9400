package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// chdir isolates the default file lookups from the package directory.
func chdir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 0, cfg.StepLimit)
	assert.Equal(t, 1, cfg.StoreEvery)
	assert.Equal(t, SimConfig{Width: 16, Height: 16, Seed: 1}, cfg.Sim)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	chdir(t)
	path := writeFile(t, "mouse.yaml", `
log_level: debug
step_limit: 5000
store: redis
redis_ttl: 1h
sim:
  width: 8
  seed: 99
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.StepLimit)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, time.Hour, cfg.RedisTTL)
	assert.Equal(t, 8, cfg.Sim.Width)
	assert.Equal(t, 16, cfg.Sim.Height, "nested defaults survive a partial section")
	assert.Equal(t, int64(99), cfg.Sim.Seed)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	chdir(t)
	path := writeFile(t, "mouse.yaml", "step_limit: 10\nsim:\n  height: 4\n")
	t.Setenv("MOUSE_STEP_LIMIT", "20")
	t.Setenv("MOUSE_SIM_HEIGHT", "6")

	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.StepLimit)
	assert.Equal(t, 6, cfg.Sim.Height)
}

func TestLoad_EnvFile(t *testing.T) {
	chdir(t)
	envFile := writeFile(t, "test.env", "MOUSE_STORE=file\nMOUSE_STORE_PATH=/tmp/runs\n")
	t.Cleanup(func() {
		os.Unsetenv("MOUSE_STORE")
		os.Unsetenv("MOUSE_STORE_PATH")
	})

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "/tmp/runs", cfg.StorePath)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t)

	tests := map[string]string{
		"unknown store": "store: postgres\n",
		"unknown key":   "colour: blue\n",
		"bad number":    "step_limit: many\n",
		"negative":      "step_limit: -1\n",
		"empty maze":    "sim:\n  width: 0\n",
		"bad yaml":      "store: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "mouse.yaml", content), "")
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExplicitFilesMustExist(t *testing.T) {
	chdir(t)

	_, err := Load("missing.yaml", "")
	assert.Error(t, err)

	_, err = Load("", "missing.env")
	assert.Error(t, err)
}

func TestDecode_MazeFileAllowsZeroSize(t *testing.T) {
	values := Defaults()
	values["sim"] = map[string]any{"width": 0, "height": 0, "maze_file": "maze.map"}

	cfg, err := Decode(values)
	require.NoError(t, err)
	assert.Equal(t, "maze.map", cfg.Sim.MazeFile)
}
