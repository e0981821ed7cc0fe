// Package config provides configuration types and defaults for cauldron.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/potions-sh/cauldron/internal/log"
)

// Config holds all configuration options for cauldron.
type Config struct {
	PluginsDir   string       `mapstructure:"plugins_dir"`
	ChangedFiles string       `mapstructure:"changed_files"`
	Index        IndexConfig  `mapstructure:"index"`
	GitHub       GitHubConfig `mapstructure:"github"`
	Watch        WatchConfig  `mapstructure:"watch"`
}

// IndexConfig holds index generation options.
type IndexConfig struct {
	Output string `mapstructure:"output"`
}

// GitHubConfig holds options for remote repository checks.
type GitHubConfig struct {
	// BaseURL overrides the API endpoint, e.g. for GitHub Enterprise.
	BaseURL string `mapstructure:"base_url"`

	// TokenEnv names the environment variable holding the API token.
	TokenEnv string `mapstructure:"token_env"`
}

// WatchConfig holds resolve --watch options.
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		PluginsDir:   "plugins",
		ChangedFiles: "changed_files.txt",
		Index: IndexConfig{
			Output: "index.json",
		},
		GitHub: GitHubConfig{
			TokenEnv: "GITHUB_TOKEN",
		},
		Watch: WatchConfig{
			DebounceMS: 1000,
		},
	}
}

// Token resolves the GitHub API token from the configured environment
// variable. Empty means unauthenticated.
func (g GitHubConfig) Token() string {
	if g.TokenEnv == "" {
		return ""
	}
	return os.Getenv(g.TokenEnv)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Cauldron Configuration

# Directory holding the registry's .potion manifests
plugins_dir: plugins

# Newline-delimited list of changed manifest paths, produced by CI
changed_files: changed_files.txt

# Index generation
index:
  output: index.json

# Remote repository checks
github:
  # base_url: https://github.example.com/api/v3  # GitHub Enterprise
  token_env: GITHUB_TOKEN

# resolve --watch behavior
watch:
  debounce_ms: 1000
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
