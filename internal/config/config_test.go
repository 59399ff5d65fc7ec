package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, appName)
}

func TestLoadMerged_NoProfile(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{Game: "4g", Workers: 3, Format: "JSON"})
	require.NoError(t, err)
	assert.Contains(t, used, "default config in memory")
	assert.Equal(t, "4g", cfg.Game)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}

func TestLoadMerged_ProfileThenFlags(t *testing.T) {
	root := isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "configs", "Default.yaml"), path)

	cfg := DefaultConfig()
	cfg.Game = "3a"
	cfg.Variant = "Sub-boss"
	cfg.BaseURL = "http://example.test/"
	require.NoError(t, SaveYAML(cfg, path))

	got, used, err := LoadMerged(Options{Variant: "Boss"})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "3a", got.Game)
	assert.Equal(t, "Boss", got.Variant)
	assert.Equal(t, "http://example.test", got.BaseURL)

	got, _, err = LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)
	assert.Equal(t, "3j", got.Game)
}

func TestLoadMerged_BadFormat(t *testing.T) {
	isolate(t)

	_, _, err := LoadMerged(Options{Format: "xml"})
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestProfiles(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)
	_, err = InitDefaultConfig()
	assert.True(t, errors.Is(err, os.ErrExist))

	_, err = CreateConfig("p4", DefaultConfig())
	require.NoError(t, err)
	_, err = CreateConfig("p4", DefaultConfig())
	assert.Error(t, err)
	_, err = CreateConfig("../escape", DefaultConfig())
	assert.Error(t, err)

	require.NoError(t, SwitchConfig("p4"))
	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "p4", label)

	require.NoError(t, RenameConfig("p4", "golden"))
	label, _ = CurrentLabel()
	assert.Equal(t, "golden", label)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.True(t, list[1].Active)

	switched, err := RemoveConfig("golden")
	require.NoError(t, err)
	assert.True(t, switched)
	label, _ = CurrentLabel()
	assert.Equal(t, "Default", label)

	_, err = RemoveConfig("Default")
	assert.Error(t, err)

	_, err = ConfigPathByLabel("golden")
	assert.Error(t, err)
}
