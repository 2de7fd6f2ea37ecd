package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestGetConfigFilePath(t *testing.T) {
	dir := setConfigHome(t)
	assert.Equal(t, filepath.Join(dir, "blackjack", "config.toml"), GetConfigFilePath())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	setConfigHome(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, config.Color)
	assert.Nil(t, config.Seed)

	_, err = os.Stat(GetConfigFilePath())
	require.NoError(t, err)

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, again)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = \"never\"\nseed = 42\n"), 0644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, config.Color)
	require.NotNil(t, config.Seed)
	assert.Equal(t, int64(42), *config.Seed)
}

func TestLoadConfigFileDefaultsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, ColorAuto, config.Color)
}

func TestLoadConfigFileErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("color = \n"), 0644))
	_, err := LoadConfigFile(bad)
	assert.Error(t, err)

	mode := filepath.Join(dir, "mode.toml")
	require.NoError(t, os.WriteFile(mode, []byte("color = \"rainbow\"\n"), 0644))
	_, err = LoadConfigFile(mode)
	assert.ErrorContains(t, err, "rainbow")
}

func TestSetSeed(t *testing.T) {
	setConfigHome(t)

	seed := int64(7)
	require.NoError(t, SetSeed(&seed))

	config, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, config.Seed)
	assert.Equal(t, int64(7), *config.Seed)

	require.NoError(t, SetSeed(nil))
	config, err = LoadConfig()
	require.NoError(t, err)
	assert.Nil(t, config.Seed)
}
