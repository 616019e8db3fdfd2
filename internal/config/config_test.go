package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinxiao27/sortvis/internal/errs"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: merge
size: 128
replay:
  ops_per_frame: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "merge", cfg.Algorithm)
	assert.Equal(t, 128, cfg.Size)
	assert.Equal(t, 5, cfg.Replay.OpsPerFrame)
	assert.Equal(t, 60, cfg.Replay.FPS, "unset keys keep their default")
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sortvis.yaml")
	cfg := Default()
	cfg.Algorithm = "bubble"
	cfg.Seed = 17
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Equal(t, errs.CodeInvalidConfig, errs.CodeOf(err))
}

func TestValidateFPSBounds(t *testing.T) {
	cfg := Default()
	cfg.Replay.FPS = 0
	assert.NoError(t, cfg.Validate(), "0 is unpaced")
	cfg.Replay.FPS = MaxFPS
	assert.NoError(t, cfg.Validate())
	cfg.Replay.FPS = MaxFPS + 1
	assert.ErrorIs(t, cfg.Validate(), errs.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"algorithm", func(c *Config) { c.Algorithm = "quick" }},
		{"size", func(c *Config) { c.Size = -1 }},
		{"order", func(c *Config) { c.Order = "random" }},
		{"ops", func(c *Config) { c.Replay.OpsPerFrame = 0 }},
		{"fps", func(c *Config) { c.Replay.FPS = -3 }},
		{"fps too high", func(c *Config) { c.Replay.FPS = 2_000_000_000 }},
		{"max size", func(c *Config) { c.Server.MaxSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errs.CodeInvalidConfig, errs.CodeOf(err))
		})
	}
}
