// Package manifest defines the Potions plugin manifest format and loads
// manifest files into an in-memory registry.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dependency is a single dependency declaration in a manifest.
type Dependency struct {
	Name string `yaml:"name"`
	// Version is an optional constraint string, e.g. ">=1.0.0" or "~>1.2".
	Version string `yaml:"version,omitempty"`
}

// Install describes how a plugin is installed from its repository.
type Install struct {
	Type string `yaml:"type,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// Manifest is a plugin's declarative descriptor. Name and Version identify
// the plugin; the remaining fields describe it for the registry index and
// the collaborator checks.
type Manifest struct {
	Name              string       `yaml:"name"`
	Version           string       `yaml:"version"`
	Description       string       `yaml:"description,omitempty"`
	Author            string       `yaml:"author,omitempty"`
	Repository        string       `yaml:"repository,omitempty"`
	Homepage          string       `yaml:"homepage,omitempty"`
	License           string       `yaml:"license,omitempty"`
	Tags              []string     `yaml:"tags,omitempty"`
	Verified          bool         `yaml:"verified,omitempty"`
	Checksum          string       `yaml:"checksum,omitempty"`
	PotionfilePath    string       `yaml:"potionfile_path,omitempty"`
	MinPotionsVersion string       `yaml:"min_potions_version,omitempty"`
	MaxPotionsVersion string       `yaml:"max_potions_version,omitempty"`
	Dependencies      []Dependency `yaml:"dependencies,omitempty"`
	Install           *Install     `yaml:"install,omitempty"`
}

// ParseFile reads and parses a single manifest file.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
