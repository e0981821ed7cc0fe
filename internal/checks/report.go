// Package checks implements the independent CI checks that run over plugin
// manifests: checksum format, repository accessibility, Potionfile
// existence, security advisories, and engine version bounds.
//
// Each check accumulates errors and warnings across all inputs instead of
// stopping at the first problem. Warnings never fail a check.
package checks

import (
	"fmt"

	"github.com/potions-sh/cauldron/internal/log"
)

// Report is the outcome of one check run.
type Report struct {
	// RunID is the process run id, the same one stamped on every log
	// entry, so a failed report can be correlated with its debug output.
	RunID string

	// Check names the check that produced the report.
	Check string

	Errors   []string
	Warnings []string
}

// NewReport creates an empty report for the named check.
func NewReport(check string) *Report {
	return &Report{RunID: log.RunID(), Check: check}
}

// OK reports whether the check passed.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}

// Errorf records a failure.
func (r *Report) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Warnf records a non-fatal observation.
func (r *Report) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
