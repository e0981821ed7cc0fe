package checks

import (
	"context"
	"errors"

	"github.com/potions-sh/cauldron/internal/github"
	"github.com/potions-sh/cauldron/internal/manifest"
)

// VerifyRepositories checks that each manifest's repository exists, is
// accessible, and is neither archived nor disabled. Manifests without a
// repository URL are skipped.
func VerifyRepositories(ctx context.Context, client *github.Client, paths []string) *Report {
	report := NewReport("verify:repos")

	loadEach(paths, report, func(path string, m *manifest.Manifest) {
		if m.Repository == "" {
			return
		}
		repoPath := github.ParseRepoPath(m.Repository)

		repo, err := client.GetRepository(ctx, repoPath)
		if err != nil {
			var statusErr *github.StatusError
			if errors.As(err, &statusErr) && statusErr.Status == 404 {
				report.Errorf("%s: Repository not found: %s", path, m.Repository)
			} else if errors.As(err, &statusErr) {
				report.Errorf("%s: Repository check failed (status %d): %s", path, statusErr.Status, m.Repository)
			} else {
				report.Errorf("%s: Error checking repository: %v", path, err)
			}
			return
		}

		if repo.Archived {
			report.Errorf("%s: Repository is archived: %s", path, m.Repository)
		}
		if repo.Disabled {
			report.Errorf("%s: Repository is disabled: %s", path, m.Repository)
		}
	})

	return report
}
