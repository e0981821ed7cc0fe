package cmd

import (
	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/checks"
)

var advisoriesChanged string

var checkAdvisoriesCmd = &cobra.Command{
	Use:   "check:advisories",
	Short: "Probe security advisories for changed manifests",
	Long: `Probe the GitHub vulnerability-alerts endpoint for each changed
manifest's repository. The probe is best-effort and never fails the run;
full vulnerability scanning requires dedicated tooling.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := checks.ReadChangedFiles(changedFilesArg(advisoriesChanged))
		if err != nil {
			return err
		}
		report := checks.CheckAdvisories(cmd.Context(), newGitHubClient(), files)
		return printReport(cmd, report,
			"Advisory warnings",
			"Advisory errors",
			"Security advisory check completed")
	},
}

func init() {
	checkAdvisoriesCmd.Flags().StringVar(&advisoriesChanged, "changed", "",
		"path to the changed-files list (default from config)")
	rootCmd.AddCommand(checkAdvisoriesCmd)
}
