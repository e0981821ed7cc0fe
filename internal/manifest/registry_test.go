package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potions-sh/cauldron/internal/manifest"
	"github.com/potions-sh/cauldron/internal/testutil"
)

func TestLoad(t *testing.T) {
	dir := testutil.NewRegistryBuilder(t).
		WithPlugin("brew-cache", "1.2.0", testutil.WithDependency("cork", ">=1.0.0")).
		WithPlugin("cork", "1.4.1").
		Build()

	reg, err := manifest.Load(dir)

	require.NoError(t, err)
	require.Len(t, reg, 2)
	assert.Equal(t, "1.2.0", reg["brew-cache"].Version)
	require.Len(t, reg["brew-cache"].Dependencies, 1)
	assert.Equal(t, "cork", reg["brew-cache"].Dependencies[0].Name)
	assert.Equal(t, ">=1.0.0", reg["brew-cache"].Dependencies[0].Version)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := manifest.Load("/nonexistent/plugins")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading plugins directory")
}

func TestLoad_SkipsUnparsableFile(t *testing.T) {
	dir := testutil.NewRegistryBuilder(t).
		WithPlugin("good", "1.0.0").
		WithRawFile("broken.potion", "name: [unclosed\n\t::bad").
		Build()

	reg, err := manifest.Load(dir)

	require.NoError(t, err)
	require.Len(t, reg, 1)
	assert.Contains(t, reg, "good")
}

func TestLoad_SkipsManifestWithoutName(t *testing.T) {
	dir := testutil.NewRegistryBuilder(t).
		WithFile("anonymous.potion", manifest.Manifest{Version: "1.0.0"}).
		WithPlugin("named", "1.0.0").
		Build()

	reg, err := manifest.Load(dir)

	require.NoError(t, err)
	require.Len(t, reg, 1)
	assert.Contains(t, reg, "named")
}

func TestLoad_DuplicateNameLastWins(t *testing.T) {
	// Files load in lexical filename order, so the later file's manifest
	// replaces the earlier one under the shared name.
	dir := testutil.NewRegistryBuilder(t).
		WithFile("a-first.potion", manifest.Manifest{Name: "dup", Version: "1.0.0"}).
		WithFile("b-second.potion", manifest.Manifest{Name: "dup", Version: "2.0.0"}).
		Build()

	reg, err := manifest.Load(dir)

	require.NoError(t, err)
	require.Len(t, reg, 1)
	assert.Equal(t, "2.0.0", reg["dup"].Version)
}

func TestLoad_IgnoresOtherExtensions(t *testing.T) {
	dir := testutil.NewRegistryBuilder(t).
		WithPlugin("real", "1.0.0").
		WithRawFile("README.md", "# not a manifest").
		WithRawFile("notes.yaml", "name: decoy\nversion: 9.9.9").
		Build()

	reg, err := manifest.Load(dir)

	require.NoError(t, err)
	require.Len(t, reg, 1)
	assert.Contains(t, reg, "real")
}

func TestRegistry_Names(t *testing.T) {
	reg := manifest.Registry{
		"zeta":  {Name: "zeta"},
		"alpha": {Name: "alpha"},
		"mid":   {Name: "mid"},
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
}

func TestRegistry_VersionOf(t *testing.T) {
	reg := manifest.Registry{
		"versioned":   {Name: "versioned", Version: "1.2.3"},
		"unversioned": {Name: "unversioned"},
	}

	assert.Equal(t, "1.2.3", reg.VersionOf("versioned"))
	assert.Equal(t, "0.0.0", reg.VersionOf("unversioned"))
	assert.Equal(t, "0.0.0", reg.VersionOf("absent"))
}

func TestParseFile(t *testing.T) {
	dir := testutil.NewRegistryBuilder(t).
		WithPlugin("single", "0.3.0", testutil.WithRepository("https://github.com/potions-sh/single")).
		Build()

	m, err := manifest.ParseFile(dir + "/single.potion")

	require.NoError(t, err)
	assert.Equal(t, "single", m.Name)
	assert.Equal(t, "https://github.com/potions-sh/single", m.Repository)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := manifest.ParseFile("/nonexistent.potion")
	require.Error(t, err)
}
