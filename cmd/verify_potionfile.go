package cmd

import (
	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/checks"
)

var potionfileChanged string

var verifyPotionfileCmd = &cobra.Command{
	Use:   "verify:potionfile",
	Short: "Verify Potionfile existence for changed manifests",
	Long: `Verify that a Potionfile exists at each changed manifest's declared
potionfile_path (default "Potionfile") inside its repository.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := checks.ReadChangedFiles(changedFilesArg(potionfileChanged))
		if err != nil {
			return err
		}
		report := checks.VerifyPotionfiles(cmd.Context(), newGitHubClient(), files)
		return printReport(cmd, report,
			"Potionfile warnings",
			"Potionfile verification errors",
			"All Potionfiles exist")
	},
}

func init() {
	verifyPotionfileCmd.Flags().StringVar(&potionfileChanged, "changed", "",
		"path to the changed-files list (default from config)")
	rootCmd.AddCommand(verifyPotionfileCmd)
}
