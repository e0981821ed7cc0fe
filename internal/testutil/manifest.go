// Package testutil builds .potion manifest fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/potions-sh/cauldron/internal/manifest"
)

// RegistryBuilder accumulates manifests and writes them into a plugins
// directory in the order they were added.
type RegistryBuilder struct {
	t         *testing.T
	dir       string
	manifests []fileManifest
}

type fileManifest struct {
	filename string
	m        manifest.Manifest
}

// NewRegistryBuilder creates a builder rooted at a fresh temp directory.
func NewRegistryBuilder(t *testing.T) *RegistryBuilder {
	t.Helper()
	return &RegistryBuilder{t: t, dir: t.TempDir()}
}

// Dir returns the plugins directory being built.
func (b *RegistryBuilder) Dir() string {
	return b.dir
}

// WithPlugin adds a plugin manifest written as <name>.potion.
func (b *RegistryBuilder) WithPlugin(name, version string, opts ...ManifestOption) *RegistryBuilder {
	m := manifest.Manifest{Name: name, Version: version}
	for _, opt := range opts {
		opt(&m)
	}
	b.manifests = append(b.manifests, fileManifest{filename: name + ".potion", m: m})
	return b
}

// WithFile adds a manifest under an explicit filename, for duplicate-name
// and load-order scenarios.
func (b *RegistryBuilder) WithFile(filename string, m manifest.Manifest) *RegistryBuilder {
	b.manifests = append(b.manifests, fileManifest{filename: filename, m: m})
	return b
}

// WithRawFile writes literal file content, for unparsable-manifest scenarios.
func (b *RegistryBuilder) WithRawFile(filename, content string) *RegistryBuilder {
	b.t.Helper()
	err := os.WriteFile(filepath.Join(b.dir, filename), []byte(content), 0o644)
	require.NoError(b.t, err)
	return b
}

// Build writes all accumulated manifests and returns the plugins directory.
func (b *RegistryBuilder) Build() string {
	b.t.Helper()
	for _, fm := range b.manifests {
		data, err := yaml.Marshal(fm.m)
		require.NoError(b.t, err)
		err = os.WriteFile(filepath.Join(b.dir, fm.filename), data, 0o644)
		require.NoError(b.t, err)
	}
	return b.dir
}

// ManifestOption mutates a manifest under construction.
type ManifestOption func(*manifest.Manifest)

// WithDependency declares a dependency, optionally constrained.
func WithDependency(name, constraint string) ManifestOption {
	return func(m *manifest.Manifest) {
		m.Dependencies = append(m.Dependencies, manifest.Dependency{Name: name, Version: constraint})
	}
}

// WithRepository sets the repository URL.
func WithRepository(url string) ManifestOption {
	return func(m *manifest.Manifest) {
		m.Repository = url
	}
}

// WithChecksum sets the checksum field.
func WithChecksum(sum string) ManifestOption {
	return func(m *manifest.Manifest) {
		m.Checksum = sum
	}
}

// WithTags sets the tag list.
func WithTags(tags ...string) ManifestOption {
	return func(m *manifest.Manifest) {
		m.Tags = tags
	}
}

// WithPotionsVersions sets the supported engine version bounds.
func WithPotionsVersions(min, max string) ManifestOption {
	return func(m *manifest.Manifest) {
		m.MinPotionsVersion = min
		m.MaxPotionsVersion = max
	}
}
