package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/potions-sh/cauldron/internal/checks"
)

// printReport renders a check report the way CI logs expect: warnings and
// errors itemized on stderr, a checkmark line on stdout on success. Failed
// reports also print their run id so the failure can be matched against
// debug log entries. The returned error is non-nil when the check failed,
// which drives the exit code through Execute.
func printReport(cmd *cobra.Command, report *checks.Report, warnHeader, errHeader, successMsg string) error {
	errw := cmd.ErrOrStderr()

	if len(report.Warnings) > 0 {
		fmt.Fprintf(errw, "%s:\n", warnHeader)
		for _, w := range report.Warnings {
			fmt.Fprintf(errw, "  - %s\n", w)
		}
	}

	if !report.OK() {
		fmt.Fprintf(errw, "%s:\n", errHeader)
		for _, e := range report.Errors {
			fmt.Fprintf(errw, "  - %s\n", e)
		}
		fmt.Fprintf(errw, "Run ID: %s\n", report.RunID)
		return errors.New("check failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", successMsg)
	return nil
}

// changedFilesArg resolves the changed-files list path for a check command.
func changedFilesArg(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.ChangedFiles
}
