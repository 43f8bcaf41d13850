package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.Grid.Rows)
	assert.Equal(t, 800, cfg.Grid.Width)
	assert.Equal(t, "manhattan", cfg.Search.Heuristic)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astargrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grid:
  rows: 20
search:
  heuristic: dijkstra
  step_delay: 5ms
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Grid.Rows)
	assert.Equal(t, 800, cfg.Grid.Width, "unset fields keep defaults")
	assert.Equal(t, "dijkstra", cfg.Search.Heuristic)
	assert.Equal(t, 5*time.Millisecond, cfg.Search.StepDelay)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown heuristic", "search: {heuristic: octile}"},
		{"too few rows", "grid: {rows: 1}"},
		{"width below rows", "grid: {rows: 100, width: 50}"},
		{"bad level", "log: {level: loud}"},
		{"zero frame_every", "render: {frame_every: 0}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := Decode([]byte(tt.doc), &cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	cfg := Default()
	err := Decode([]byte("grid: {colums: 3}"), &cfg)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
