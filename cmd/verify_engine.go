package cmd

import (
	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/checks"
)

var engineChanged string

var verifyEngineCmd = &cobra.Command{
	Use:   "verify:engine",
	Short: "Validate supported engine version bounds in changed manifests",
	Long: `Validate that min_potions_version and max_potions_version in changed
manifests are well-formed semantic versions and that min does not exceed
max when both are declared.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := checks.ReadChangedFiles(changedFilesArg(engineChanged))
		if err != nil {
			return err
		}
		report := checks.VerifyEngineVersions(files)
		return printReport(cmd, report,
			"Engine version warnings",
			"Engine version errors",
			"Engine version bounds are valid")
	},
}

func init() {
	verifyEngineCmd.Flags().StringVar(&engineChanged, "changed", "",
		"path to the changed-files list (default from config)")
	rootCmd.AddCommand(verifyEngineCmd)
}
