package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Empty(t, cfg.OpenCommand)
	assert.True(t, cfg.UISettings.ShowLinkTargets)
	assert.Equal(t, 3000, cfg.UISettings.StatusTimeoutMS)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService()

	cfg, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	svc := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	original := &Config{
		Version:     1,
		OpenCommand: "firefox",
		UISettings: UISettings{
			ShowLinkTargets: false,
			ShowLineNumbers: true,
			StatusTimeoutMS: 1500,
		},
	}

	require.NoError(t, svc.SaveToPath(original, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("open_command = \"xdg-open\"\n"), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "xdg-open", cfg.OpenCommand)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 3000, cfg.UISettings.StatusTimeoutMS)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}
