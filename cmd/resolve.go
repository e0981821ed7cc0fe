package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/depgraph"
	"github.com/potions-sh/cauldron/internal/log"
	"github.com/potions-sh/cauldron/internal/manifest"
	"github.com/potions-sh/cauldron/internal/resolver"
	"github.com/potions-sh/cauldron/internal/watcher"
)

var (
	resolveManifest string
	resolveWatch    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve and validate plugin dependencies",
	Long: `Load every manifest from the plugins directory, build the dependency
graph, detect circular dependencies, and validate each plugin's declared
dependency constraints against the registry.

With --manifest, only that manifest is validated against the loaded
registry and the registry-wide cycle scan is skipped. This gates a single
changed manifest in CI without re-checking the whole graph.

Examples:
  # Validate the whole registry
  cauldron resolve -p plugins

  # Gate one changed manifest
  cauldron resolve -p plugins --manifest plugins/brew-cache.potion

  # Re-run on every manifest change
  cauldron resolve -p plugins --watch`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveManifest, "manifest", "m", "",
		"validate a single manifest file against the registry")
	resolveCmd.Flags().BoolVarP(&resolveWatch, "watch", "w", false,
		"watch the plugins directory and re-resolve on changes")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolveWatch {
		return runResolveWatch()
	}
	return resolveOnce()
}

func resolveOnce() error {
	reg, err := manifest.Load(cfg.PluginsDir)
	if err != nil {
		return err
	}
	graph := depgraph.Build(reg)

	if resolveManifest != "" {
		m, err := manifest.ParseFile(resolveManifest)
		if err != nil {
			return err
		}
		res := resolver.ResolveOne(m, reg)
		if !res.OK {
			fmt.Fprintln(os.Stderr, "Dependency validation failed:")
			for _, e := range res.Strings() {
				fmt.Fprintf(os.Stderr, "  - %s\n", e)
			}
			return errors.New("dependency validation failed")
		}
		fmt.Println("✓ All dependencies are valid")
		return nil
	}

	res := resolver.ResolveAll(reg, graph)
	if !res.OK {
		fmt.Fprintln(os.Stderr, "Dependency resolution failed:")
		for _, e := range res.Strings() {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		return errors.New("dependency resolution failed")
	}

	fmt.Println("✓ All dependencies resolved successfully")
	fmt.Printf("  Total plugins: %d\n", len(reg))
	fmt.Printf("  Total dependencies: %d\n", graph.EdgeCount())
	return nil
}

// runResolveWatch re-runs resolution whenever a manifest changes, until
// interrupted. The watch loop itself always exits cleanly; individual
// failed runs are reported but keep the watch alive.
func runResolveWatch() error {
	w, err := watcher.New(watcher.Config{
		PluginsDir:  cfg.PluginsDir,
		DebounceDur: time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	if err := resolveOnce(); err != nil {
		fmt.Fprintln(os.Stderr, "watching for changes...")
	}

	for {
		select {
		case <-changes:
			log.Debug(log.CatWatcher, "manifest change detected, re-resolving")
			if err := resolveOnce(); err != nil {
				fmt.Fprintln(os.Stderr, "watching for changes...")
			}
		case <-interrupt:
			return nil
		}
	}
}
