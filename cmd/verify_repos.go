package cmd

import (
	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/checks"
)

var reposChanged string

var verifyReposCmd = &cobra.Command{
	Use:   "verify:repos",
	Short: "Verify repository accessibility for changed manifests",
	Long: `Verify that each changed manifest's repository exists, is accessible
through the GitHub API, and is neither archived nor disabled.

Set GITHUB_TOKEN (or the variable named by github.token_env in the config)
to raise the API rate limit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := checks.ReadChangedFiles(changedFilesArg(reposChanged))
		if err != nil {
			return err
		}
		report := checks.VerifyRepositories(cmd.Context(), newGitHubClient(), files)
		return printReport(cmd, report,
			"Repository warnings",
			"Repository verification errors",
			"All repositories are accessible")
	},
}

func init() {
	verifyReposCmd.Flags().StringVar(&reposChanged, "changed", "",
		"path to the changed-files list (default from config)")
	rootCmd.AddCommand(verifyReposCmd)
}
