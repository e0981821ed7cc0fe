package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/potions-sh/cauldron/internal/log"
)

// Extension is the manifest file extension recognized by the loader.
const Extension = ".potion"

// Registry maps plugin name to its manifest. It is rebuilt from scratch on
// every run and never persisted.
type Registry map[string]*Manifest

// Load reads every *.potion file directly under dir (non-recursive) and
// builds a Registry keyed by manifest name.
//
// Files that fail to parse or lack a name are skipped with a warning; a bad
// file never fails the whole load. Later files with a duplicate name replace
// earlier ones, so load order (lexical by filename) is observable.
func Load(dir string) (Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading plugins directory %s: %w", dir, err)
	}

	reg := make(Registry)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		m, err := ParseFile(path)
		if err != nil {
			log.Warn(log.CatManifest, "skipping unparsable manifest", "path", path, "error", err)
			continue
		}
		if m.Name == "" {
			log.Warn(log.CatManifest, "skipping manifest without a name", "path", path)
			continue
		}
		reg[m.Name] = m
	}

	log.Debug(log.CatManifest, "registry loaded", "dir", dir, "plugins", len(reg))
	return reg, nil
}

// Names returns the registry's plugin names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VersionOf returns the registered version for name, defaulting to "0.0.0"
// when the manifest declares none.
func (r Registry) VersionOf(name string) string {
	m, ok := r[name]
	if !ok || m.Version == "" {
		return "0.0.0"
	}
	return m.Version
}
