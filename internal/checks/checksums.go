package checks

import (
	"strings"

	"github.com/potions-sh/cauldron/internal/manifest"
)

const sha256Prefix = "sha256:"
const sha256HexLen = 64

// VerifyChecksums validates the checksum format declared in each manifest:
// a "sha256:" prefix followed by a 64-character digest. A missing checksum
// is a warning, not an error. Manifests without a repository URL are skipped
// past the missing-checksum warning, since there is nothing the digest could
// ever be verified against.
//
// Full digest verification would require downloading the plugin; only the
// format is validated here.
func VerifyChecksums(paths []string) *Report {
	report := NewReport("verify:checksums")

	loadEach(paths, report, func(path string, m *manifest.Manifest) {
		if m.Checksum == "" {
			report.Warnf("%s: No checksum provided (recommended for security)", path)
			return
		}
		if m.Repository == "" {
			return
		}
		if !strings.HasPrefix(m.Checksum, sha256Prefix) {
			report.Errorf("%s: Invalid checksum format (must start with 'sha256:')", path)
			return
		}
		if len(strings.TrimPrefix(m.Checksum, sha256Prefix)) != sha256HexLen {
			report.Errorf("%s: Invalid SHA256 checksum length", path)
		}
	})

	return report
}
