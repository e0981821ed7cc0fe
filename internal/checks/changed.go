package checks

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/potions-sh/cauldron/internal/log"
	"github.com/potions-sh/cauldron/internal/manifest"
)

// ReadChangedFiles reads a newline-delimited list of manifest paths, the
// format CI produces for a pull request's changed files. Blank lines are
// skipped. A missing list file is an error; missing listed files are not
// (they were deleted in the change under review) and are filtered out here.
func ReadChangedFiles(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("changed files list not found: %s", path)
	}
	defer func() { _ = f.Close() }()

	var files []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := os.Stat(line); err != nil {
			log.Debug(log.CatChecks, "skipping missing changed file", "path", line)
			continue
		}
		files = append(files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading changed files list %s: %w", path, err)
	}
	return files, nil
}

// loadEach parses every manifest path, invoking fn per successfully parsed
// manifest and recording a per-file error for unparsable ones.
func loadEach(paths []string, report *Report, fn func(path string, m *manifest.Manifest)) {
	for _, path := range paths {
		m, err := manifest.ParseFile(path)
		if err != nil {
			report.Errorf("%s: %v", path, err)
			continue
		}
		fn(path, m)
	}
}
