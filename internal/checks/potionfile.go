package checks

import (
	"context"
	"errors"

	"github.com/potions-sh/cauldron/internal/github"
	"github.com/potions-sh/cauldron/internal/manifest"
)

// DefaultPotionfilePath is where a plugin's Potionfile is expected when the
// manifest does not say otherwise.
const DefaultPotionfilePath = "Potionfile"

// VerifyPotionfiles checks that a Potionfile exists at each manifest's
// declared potionfile_path inside its repository.
func VerifyPotionfiles(ctx context.Context, client *github.Client, paths []string) *Report {
	report := NewReport("verify:potionfile")

	loadEach(paths, report, func(path string, m *manifest.Manifest) {
		if m.Repository == "" {
			return
		}
		potionfilePath := m.PotionfilePath
		if potionfilePath == "" {
			potionfilePath = DefaultPotionfilePath
		}
		repoPath := github.ParseRepoPath(m.Repository)

		exists, err := client.FileExists(ctx, repoPath, potionfilePath)
		if err != nil {
			var statusErr *github.StatusError
			if errors.As(err, &statusErr) {
				report.Errorf("%s: Failed to check Potionfile (status %d)", path, statusErr.Status)
			} else {
				report.Errorf("%s: Error checking Potionfile: %v", path, err)
			}
			return
		}
		if !exists {
			report.Errorf("%s: Potionfile not found at '%s' in %s", path, potionfilePath, m.Repository)
		}
	})

	return report
}
