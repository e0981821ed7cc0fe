package checks

import (
	"context"

	"github.com/potions-sh/cauldron/internal/github"
	"github.com/potions-sh/cauldron/internal/log"
	"github.com/potions-sh/cauldron/internal/manifest"
)

// CheckAdvisories probes the vulnerability-alerts endpoint for each
// manifest's repository. The probe is best-effort: failures are logged and
// never fail the check. Full vulnerability scanning requires dedicated
// tooling and is out of scope here.
func CheckAdvisories(ctx context.Context, client *github.Client, paths []string) *Report {
	report := NewReport("check:advisories")

	for _, path := range paths {
		m, err := manifest.ParseFile(path)
		if err != nil {
			log.Warn(log.CatChecks, "skipping unparsable manifest", "path", path, "error", err)
			continue
		}
		if m.Repository == "" {
			continue
		}
		repoPath := github.ParseRepoPath(m.Repository)
		if err := client.ProbeVulnerabilityAlerts(ctx, repoPath); err != nil {
			log.Warn(log.CatChecks, "advisory probe failed", "repo", repoPath, "error", err)
		}
	}

	return report
}
