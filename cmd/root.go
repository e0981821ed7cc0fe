package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/potions-sh/cauldron/internal/config"
	"github.com/potions-sh/cauldron/internal/github"
	"github.com/potions-sh/cauldron/internal/log"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cauldron",
	Short: "CI toolkit for the Potions plugin registry",
	Long: `Cauldron runs the continuous-integration checks for a registry of Potions
plugin manifests: dependency resolution with cycle detection, checksum and
engine-version format validation, remote repository checks, and index
generation.

Each subcommand exits 0 when its error list is empty and 1 otherwise.
Warnings never affect the exit code.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .cauldron/config.yaml or ~/.config/cauldron/config.yaml)")
	rootCmd.PersistentFlags().StringP("plugins-dir", "p", "",
		"directory holding the registry's .potion manifests")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging to stderr")

	// Bind flags to viper
	_ = viper.BindPFlag("plugins_dir", rootCmd.PersistentFlags().Lookup("plugins-dir"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("plugins_dir", defaults.PluginsDir)
	viper.SetDefault("changed_files", defaults.ChangedFiles)
	viper.SetDefault("index.output", defaults.Index.Output)
	viper.SetDefault("github.base_url", defaults.GitHub.BaseURL)
	viper.SetDefault("github.token_env", defaults.GitHub.TokenEnv)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .cauldron/config.yaml (current directory, i.e. the registry repo)
		// 2. ~/.config/cauldron/config.yaml (user config)
		if _, err := os.Stat(".cauldron/config.yaml"); err == nil {
			viper.SetConfigFile(".cauldron/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "cauldron"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .cauldron/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".cauldron/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if debug || os.Getenv("CAULDRON_DEBUG") != "" {
		log.SetEnabled(true)
		log.SetMinLevel(log.LevelDebug)
	}
}

// newGitHubClient builds the API client from config.
func newGitHubClient() *github.Client {
	opts := []github.Option{github.WithToken(cfg.GitHub.Token())}
	if cfg.GitHub.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHub.BaseURL))
	}
	return github.NewClient(opts...)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
