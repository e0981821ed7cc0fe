package depgraph

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potions-sh/cauldron/internal/log"
	"github.com/potions-sh/cauldron/internal/manifest"
)

func testRegistry(deps map[string][]string) manifest.Registry {
	reg := make(manifest.Registry)
	for name, names := range deps {
		m := &manifest.Manifest{Name: name, Version: "1.0.0"}
		for _, d := range names {
			m.Dependencies = append(m.Dependencies, manifest.Dependency{Name: d})
		}
		reg[name] = m
	}
	return reg
}

func TestBuild_ForwardAndReverseEdges(t *testing.T) {
	reg := testRegistry(map[string][]string{
		"alpha": {"beta", "gamma"},
		"beta":  {"gamma"},
		"gamma": nil,
	})

	g := Build(reg)

	assert.True(t, g.DependsOn["alpha"]["beta"])
	assert.True(t, g.DependsOn["alpha"]["gamma"])
	assert.True(t, g.DependsOn["beta"]["gamma"])
	assert.True(t, g.DependedOnBy["gamma"]["alpha"])
	assert.True(t, g.DependedOnBy["gamma"]["beta"])
	assert.True(t, g.DependedOnBy["beta"]["alpha"])
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuild_UnresolvedEdgeKept(t *testing.T) {
	// Edges to names absent from the registry stay in the graph; they are a
	// validation concern, not a graph concern.
	reg := testRegistry(map[string][]string{"alpha": {"ghost"}})

	g := Build(reg)

	assert.True(t, g.DependsOn["alpha"]["ghost"])
	assert.True(t, g.DependedOnBy["ghost"]["alpha"])
}

func TestBuild_SkipsEmptyDependencyNames(t *testing.T) {
	reg := manifest.Registry{
		"alpha": {
			Name:         "alpha",
			Dependencies: []manifest.Dependency{{Name: ""}, {Name: "beta"}},
		},
	}

	g := Build(reg)

	require.Len(t, g.DependsOn["alpha"], 1)
	assert.True(t, g.DependsOn["alpha"]["beta"])
}

func TestBuild_DuplicateDeclarationsCollapse(t *testing.T) {
	reg := manifest.Registry{
		"alpha": {
			Name:         "alpha",
			Dependencies: []manifest.Dependency{{Name: "beta"}, {Name: "beta", Version: ">=1.0.0"}},
		},
	}

	g := Build(reg)

	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuild_LogsConstruction(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetEnabled(true)
	log.SetMinLevel(log.LevelDebug)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetEnabled(false)
		log.SetMinLevel(log.LevelWarn)
	})

	Build(testRegistry(map[string][]string{
		"alpha": {"beta"},
		"beta":  nil,
	}))

	out := buf.String()
	assert.Contains(t, out, "[graph]")
	assert.Contains(t, out, "graph built")
	assert.Contains(t, out, "plugins=2")
	assert.Contains(t, out, "edges=1")
}

func TestBuild_NoDependenciesNoEdges(t *testing.T) {
	reg := testRegistry(map[string][]string{"solo": nil})

	g := Build(reg)

	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.DependsOn["solo"])
}
