package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npratt/splitchance/internal/component/keyvalue"
	"github.com/npratt/splitchance/internal/testutil"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	assert.Equal(t, 40, cfg.Display.Width)
	assert.Equal(t, time.Second, cfg.Display.RefreshInterval)
	assert.Equal(t, ".splitchance/bridge.sock", cfg.Paths.Socket)
	assert.Equal(t, 10, cfg.LogRotation.MaxSizeMB)
	assert.True(t, cfg.LogRotation.Compress)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{
			name:   "narrow display",
			modify: func(c *Config) { c.Display.Width = 4 },
			want:   "Config.Display.Width: must be at least 16",
		},
		{
			name:   "wide display",
			modify: func(c *Config) { c.Display.Width = 500 },
			want:   "must be at most 200",
		},
		{
			name:   "fast refresh",
			modify: func(c *Config) { c.Display.RefreshInterval = 10 * time.Millisecond },
			want:   "Config.Display.RefreshInterval",
		},
		{
			name:   "bad label color",
			modify: func(c *Config) { c.Component.LabelColor = "purple" },
			want:   `Config.Component.LabelColor: "purple" is not a hex color`,
		},
		{
			name:   "bad text color",
			modify: func(c *Config) { c.Display.TextColor = "" },
			want:   "Config.Display.TextColor",
		},
		{
			name:   "zero log size",
			modify: func(c *Config) { c.LogRotation.MaxSizeMB = 0 },
			want:   "Config.LogRotation.MaxSizeMB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestComponentSettings(t *testing.T) {
	cfg := Default()
	cfg.Component.ShowSuccesses = true
	cfg.Component.DisplayTwoRows = true
	cfg.Component.ValueColor = "#00FF00"

	s, err := cfg.ComponentSettings()
	require.NoError(t, err)
	assert.True(t, s.ShowSuccesses)
	assert.True(t, s.DisplayTwoRows)
	assert.False(t, s.ShowAttemptDetails)
	assert.Equal(t, keyvalue.DefaultGradient, s.Background)
	assert.Nil(t, s.LabelColor)
	require.NotNil(t, s.ValueColor)
	assert.Equal(t, "#00FF00FF", s.ValueColor.String())

	cfg.Component.LabelColor = "nope"
	_, err = cfg.ComponentSettings()
	assert.ErrorContains(t, err, "label_color")
}

func TestRenderer(t *testing.T) {
	cfg := Default()
	cfg.Display.Width = 32
	cfg.Display.TextColor = "#FF0000"

	r, err := cfg.Renderer()
	require.NoError(t, err)
	assert.Equal(t, 32, r.Width)
	assert.Equal(t, "#FF0000FF", r.TextColor.String())

	cfg.Display.TextColor = "zzz"
	_, err = cfg.Renderer()
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	path := testutil.WriteFile(t, t.TempDir(), "config.yaml", `component:
  show_successes: true
  label_color: "#FFAA00"
display:
  width: 60
  refresh_interval: 250ms
paths:
  run: runs/celeste.yaml
`)

	v := viper.New()
	v.Set("config", path)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)

	assert.True(t, cfg.Component.ShowSuccesses)
	assert.Equal(t, "#FFAA00", cfg.Component.LabelColor)
	assert.Equal(t, 60, cfg.Display.Width)
	assert.Equal(t, 250*time.Millisecond, cfg.Display.RefreshInterval)
	assert.Equal(t, "runs/celeste.yaml", cfg.Paths.Run)
	assert.Equal(t, "#FFFFFF", cfg.Display.TextColor, "unset keys keep defaults")
}

func TestLoadConfigPrecedence(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	project := t.TempDir()
	chdir(t, project)

	testutil.WriteFile(t, xdg, filepath.Join(GlobalConfigDir, GlobalConfigFile), "display:\n  width: 50\n  text_color: \"#00FF00\"\n")
	testutil.WriteFile(t, project, filepath.Join(ProjectConfigDir, ProjectConfigFile), "display:\n  width: 70\n")

	cfg, err := LoadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 70, cfg.Display.Width)
	assert.Equal(t, "#00FF00", cfg.Display.TextColor)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := LoadConfig(v)
	assert.Error(t, err)

	path := testutil.WriteFile(t, t.TempDir(), "bad.yaml", "display:\n  width: 3\n")
	v = viper.New()
	v.Set("config", path)
	_, err = LoadConfig(v)
	assert.ErrorContains(t, err, "Config.Display.Width")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
