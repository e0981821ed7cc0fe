package checks

import (
	mm "github.com/Masterminds/semver/v3"

	"github.com/potions-sh/cauldron/internal/manifest"
)

// VerifyEngineVersions validates each manifest's supported engine range:
// min_potions_version and max_potions_version must be well-formed semantic
// versions, and when both are present min must not exceed max.
//
// Unlike dependency constraints, engine bounds follow standard semver
// ordering, so this check uses the ecosystem parser rather than the
// registry's constraint matcher.
func VerifyEngineVersions(paths []string) *Report {
	report := NewReport("verify:engine")

	loadEach(paths, report, func(path string, m *manifest.Manifest) {
		var minV, maxV *mm.Version
		var err error

		if m.MinPotionsVersion != "" {
			minV, err = mm.NewVersion(m.MinPotionsVersion)
			if err != nil {
				report.Errorf("%s: Invalid min_potions_version '%s': %v", path, m.MinPotionsVersion, err)
			}
		}
		if m.MaxPotionsVersion != "" {
			maxV, err = mm.NewVersion(m.MaxPotionsVersion)
			if err != nil {
				report.Errorf("%s: Invalid max_potions_version '%s': %v", path, m.MaxPotionsVersion, err)
			}
		}
		if minV != nil && maxV != nil && minV.GreaterThan(maxV) {
			report.Errorf("%s: min_potions_version '%s' exceeds max_potions_version '%s'",
				path, m.MinPotionsVersion, m.MaxPotionsVersion)
		}
	})

	return report
}
