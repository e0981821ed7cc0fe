package cmd

import (
	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/checks"
)

var checksumsChanged string

var verifyChecksumsCmd = &cobra.Command{
	Use:   "verify:checksums",
	Short: "Validate checksum format in changed manifests",
	Long: `Validate that checksums in changed plugin manifests follow the expected
format: a "sha256:" prefix followed by a 64-character digest. A missing
checksum is reported as a warning only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := checks.ReadChangedFiles(changedFilesArg(checksumsChanged))
		if err != nil {
			return err
		}
		report := checks.VerifyChecksums(files)
		return printReport(cmd, report,
			"Checksum warnings",
			"Checksum verification errors",
			"Checksum format validation passed")
	},
}

func init() {
	verifyChecksumsCmd.Flags().StringVar(&checksumsChanged, "changed", "",
		"path to the changed-files list (default from config)")
	rootCmd.AddCommand(verifyChecksumsCmd)
}
