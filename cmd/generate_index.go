package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/registryindex"
)

var indexOutput string

var generateIndexCmd = &cobra.Command{
	Use:   "index:generate",
	Short: "Generate index.json from the plugins directory",
	Long: `Scan the plugins directory, read every .potion manifest, and generate
the searchable index.json for the registry. Unparsable manifests are
skipped with a warning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output := indexOutput
		if output == "" {
			output = cfg.Index.Output
		}

		idx, err := registryindex.Write(cfg.PluginsDir, output)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Generated index with %d plugins\n", idx.TotalPlugins)
		fmt.Printf("  Categories: %d\n", len(idx.Categories))
		fmt.Printf("  Output: %s\n", output)
		return nil
	},
}

func init() {
	generateIndexCmd.Flags().StringVarP(&indexOutput, "output", "o", "",
		"index output path (default from config)")
	rootCmd.AddCommand(generateIndexCmd)
}
