// Package registryindex generates the searchable index.json for the plugin
// registry.
package registryindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/potions-sh/cauldron/internal/log"
	"github.com/potions-sh/cauldron/internal/manifest"
)

// FormatVersion is the index schema version.
const FormatVersion = "1.0.0"

// Entry is one plugin's record in the index.
type Entry struct {
	Name              string                `json:"name"`
	Version           string                `json:"version,omitempty"`
	Description       string                `json:"description,omitempty"`
	Author            string                `json:"author,omitempty"`
	Repository        string                `json:"repository,omitempty"`
	Homepage          string                `json:"homepage,omitempty"`
	License           string                `json:"license,omitempty"`
	Tags              []string              `json:"tags,omitempty"`
	Verified          bool                  `json:"verified"`
	PotionfilePath    string                `json:"potionfile_path"`
	MinPotionsVersion string                `json:"min_potions_version,omitempty"`
	MaxPotionsVersion string                `json:"max_potions_version,omitempty"`
	Dependencies      []manifest.Dependency `json:"dependencies,omitempty"`
	Install           manifest.Install      `json:"install"`
}

// Index is the full registry index document.
type Index struct {
	Version      string              `json:"version"`
	GeneratedAt  string              `json:"generated_at"`
	BuildID      string              `json:"build_id"`
	TotalPlugins int                 `json:"total_plugins"`
	Plugins      []Entry             `json:"plugins"`
	Categories   map[string][]string `json:"categories"`
}

// Build creates an index from a loaded registry. Plugins are sorted by name
// and the category map groups plugin names under each tag.
func Build(reg manifest.Registry) *Index {
	idx := &Index{
		Version:     FormatVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		BuildID:     uuid.NewString(),
		Categories:  make(map[string][]string),
	}

	for _, name := range reg.Names() {
		m := reg[name]
		idx.Plugins = append(idx.Plugins, newEntry(m))
		for _, tag := range m.Tags {
			idx.Categories[tag] = append(idx.Categories[tag], name)
		}
	}
	for tag := range idx.Categories {
		sort.Strings(idx.Categories[tag])
	}
	idx.TotalPlugins = len(idx.Plugins)

	return idx
}

func newEntry(m *manifest.Manifest) Entry {
	e := Entry{
		Name:              m.Name,
		Version:           m.Version,
		Description:       m.Description,
		Author:            m.Author,
		Repository:        m.Repository,
		Homepage:          m.Homepage,
		License:           m.License,
		Tags:              m.Tags,
		Verified:          m.Verified,
		PotionfilePath:    m.PotionfilePath,
		MinPotionsVersion: m.MinPotionsVersion,
		MaxPotionsVersion: m.MaxPotionsVersion,
		Dependencies:      m.Dependencies,
		Install:           manifest.Install{Type: "git", Path: "/"},
	}
	if e.PotionfilePath == "" {
		e.PotionfilePath = "Potionfile"
	}
	if m.Install != nil {
		e.Install = *m.Install
	}
	return e
}

// Write generates the index from the plugins directory and writes it to
// outputPath, creating the output directory if needed.
func Write(pluginsDir, outputPath string) (*Index, error) {
	reg, err := manifest.Load(pluginsDir)
	if err != nil {
		return nil, err
	}
	if len(reg) == 0 {
		log.Warn(log.CatIndex, "no manifest files found in plugins directory", "dir", pluginsDir)
	}

	idx := Build(reg)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(outputPath, append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing index file: %w", err)
	}

	log.Info(log.CatIndex, "index generated", "plugins", idx.TotalPlugins, "output", outputPath)
	return idx, nil
}
