package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Dashboard.Role)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[dashboard]
role = "project-manager"
section = "timeline"
reference-date = "2025-10-01"

[milestones]
cast-removal = "2025-09-29"

[timer]
presets = [15, 50]

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Dashboard.Role)
	assert.Equal(t, "project-manager", *cfg.Dashboard.Role)
	assert.Equal(t, "timeline", *cfg.Dashboard.Section)
	assert.Equal(t, "2025-10-01", *cfg.Dashboard.ReferenceDate)
	assert.Equal(t, "2025-09-29", *cfg.Milestones.CastRemoval)
	assert.Nil(t, cfg.Milestones.Application)
	assert.Equal(t, []int{15, 50}, cfg.Timer.Presets)
	assert.Equal(t, "debug", *cfg.Log.Level)
}

func TestLoadConfigRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[phase]\nstart = \"15/09/2025\"\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phase.start")
}

func TestLoadConfigRejectsNegativePreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timer]\npresets = [25, -5]\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	assert.Equal(t, "/tmp/cfg/prepdeck/config.toml", DefaultConfigPath())
	assert.Equal(t, "/tmp/cfg/prepdeck/content.toml", DefaultContentPath())
	assert.Equal(t, "/tmp/state/prepdeck/prepdeck.log", DefaultLogPath())
}
