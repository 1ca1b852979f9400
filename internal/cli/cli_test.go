package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/micromouse/internal/config"
	"github.com/aretw0/micromouse/pkg/adapters/sim"
	"github.com/aretw0/micromouse/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	values := config.Defaults()
	values["sim"] = map[string]any{"width": 6, "height": 6, "seed": 3}
	cfg, err := config.Decode(values)
	require.NoError(t, err)
	return cfg
}

func TestRunSim_ReachesCenter(t *testing.T) {
	cfg := testConfig(t)
	cfg.StatusAddr = "127.0.0.1:0"
	var stdout, stderr bytes.Buffer

	err := RunSim(Options{Config: cfg, RunID: "sim-1", Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Reached the center at")
	assert.Contains(t, out, "sim-1")
	assert.Contains(t, out, "Dead ends")
	assert.Contains(t, stderr.String(), "mouse position", "moves are logged on stderr")
	assert.Contains(t, stderr.String(), "status server listening")
}

func TestRunSim_Quiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := RunSim(Options{Config: testConfig(t), Quiet: true, Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunSim_StepLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.StepLimit = 2
	var stdout bytes.Buffer

	err := RunSim(Options{Config: cfg, Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.ErrorIs(t, err, domain.ErrStepLimit)
	assert.Contains(t, stdout.String(), "Gave up at")
}

func TestRunSim_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout bytes.Buffer

	err := RunSim(Options{Config: testConfig(t), Context: ctx, Stdout: &stdout, Stderr: &bytes.Buffer{}})
	require.NoError(t, err, "interruptions exit cleanly")
	assert.Contains(t, stdout.String(), "Interrupted at (0, 0)")
}

func TestRunSim_MazeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.map")
	require.NoError(t, os.WriteFile(path, []byte(sim.Generate(5, 5, 8).String()), 0644))

	cfg := testConfig(t)
	cfg.Sim.MazeFile = path
	cfg.Store = config.StoreFile
	cfg.StorePath = filepath.Join(t.TempDir(), "runs")

	require.NoError(t, RunSim(Options{Config: cfg, RunID: "from-file", Quiet: true}))

	store, _, err := OpenStore(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	snap, err := store.Load(context.Background(), "from-file")
	require.NoError(t, err)
	assert.True(t, snap.Done())
	assert.Equal(t, domain.Bounds{Width: 5, Height: 5}, snap.Bounds)
}

func TestRunSim_MissingMazeFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sim.MazeFile = filepath.Join(t.TempDir(), "missing.map")
	assert.Error(t, RunSim(Options{Config: cfg, Quiet: true}))
}

func TestRunSession_InvalidBounds(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := RunSession(Options{
		Config: testConfig(t),
		Stdin:  strings.NewReader("0\n0\n"),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.ErrorIs(t, err, domain.ErrInvalidBounds)
	assert.Equal(t, "mazeWidth\nmazeHeight\n", stdout.String(), "stdout carries only protocol commands")
}

func TestRunSession_SimulatorGone(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := RunSession(Options{
		Config: testConfig(t),
		Stdin:  strings.NewReader("16\n16\nack\n"),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.ErrorIs(t, err, domain.ErrPlatformClosed)
	assert.Contains(t, stderr.String(), "Stopped at (0, 0)")
	assert.True(t, strings.HasPrefix(stdout.String(), "mazeWidth\nmazeHeight\nsetText 0 0 X\nsetColor 0 0 G\nackReset\n"))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("memory", func(t *testing.T) {
		store, closeFn, err := OpenStore(ctx, testConfig(t), logger)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, domain.NewSnapshot("a", domain.Bounds{Width: 1, Height: 1})))
		assert.NoError(t, closeFn())
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(t)
		cfg.Store = config.StoreRedis
		cfg.RedisAddr = mr.Addr()
		cfg.RedisPrefix = "test:"

		store, closeFn, err := OpenStore(ctx, cfg, logger)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, domain.NewSnapshot("a", domain.Bounds{Width: 1, Height: 1})))
		assert.True(t, mr.Exists("test:a"))
		assert.NoError(t, closeFn())
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cfg := testConfig(t)
		cfg.Store = config.StoreRedis
		cfg.RedisAddr = addr
		_, _, err := OpenStore(ctx, cfg, logger)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Store = "tape"
		_, _, err := OpenStore(ctx, cfg, logger)
		assert.Error(t, err)
	})
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := testConfig(t)
	cfg.StatusAddr = "127.0.0.1:0"
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Serve(Options{Config: cfg, Context: ctx, Quiet: true, Stderr: &bytes.Buffer{}})
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop")
	}
}

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := createLogger(&buf, "info", false, true)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")

	logger, err = createLogger(&buf, "error", true, false)
	require.NoError(t, err)
	logger.Debug("debug wins")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "debug wins")

	_, err = createLogger(&buf, "loud", false, false)
	assert.Error(t, err)
}
