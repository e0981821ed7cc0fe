package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potions-sh/cauldron/internal/checks"
)

func reportCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	c := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(errOut)
	return c, out, errOut
}

func TestPrintReport_Success(t *testing.T) {
	c, out, errOut := reportCommand()
	report := checks.NewReport("verify:checksums")

	err := printReport(c, report, "Warnings", "Errors", "all checks passed")

	require.NoError(t, err)
	assert.Equal(t, "✓ all checks passed\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestPrintReport_WarningsDoNotFail(t *testing.T) {
	c, out, errOut := reportCommand()
	report := checks.NewReport("verify:checksums")
	report.Warnf("No checksum provided")

	err := printReport(c, report, "Warnings", "Errors", "all checks passed")

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Warnings:\n  - No checksum provided\n")
	assert.Contains(t, out.String(), "✓ all checks passed")
}

func TestPrintReport_FailureIncludesRunID(t *testing.T) {
	c, out, errOut := reportCommand()
	report := checks.NewReport("verify:repos")
	report.Errorf("Repository not found: https://github.com/potions-sh/ghost")

	err := printReport(c, report, "Warnings", "Errors", "all checks passed")

	require.Error(t, err)
	assert.Contains(t, errOut.String(), "Errors:\n  - Repository not found")
	assert.Contains(t, errOut.String(), "Run ID: "+report.RunID)
	assert.Empty(t, out.String())
}
