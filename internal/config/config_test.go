package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, "plugins", cfg.PluginsDir)
	assert.Equal(t, "changed_files.txt", cfg.ChangedFiles)
	assert.Equal(t, "index.json", cfg.Index.Output)
	assert.Equal(t, "GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	assert.Equal(t, 1000, cfg.Watch.DebounceMS)
}

func TestGitHubConfig_Token(t *testing.T) {
	t.Setenv("CAULDRON_TEST_TOKEN", "hunter2")

	assert.Equal(t, "hunter2", GitHubConfig{TokenEnv: "CAULDRON_TEST_TOKEN"}.Token())
	assert.Empty(t, GitHubConfig{TokenEnv: "CAULDRON_UNSET_TOKEN"}.Token())
	assert.Empty(t, GitHubConfig{}.Token())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cauldron", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The template must stay parseable and match the defaults.
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "plugins", parsed["plugins_dir"])
}
