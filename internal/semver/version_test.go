package semver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"1.2.3", Version{1, 2, 3}},
		{"1.2", Version{1, 2, 0}},
		{"1", Version{1, 0, 0}},
		{"0.0.0", Version{0, 0, 0}},
		{"10.20.30", Version{10, 20, 30}},
		{"1.2.3-beta", Version{1, 2, 3}},
		{"1.2.3+build.7", Version{1, 2, 3}},
		{"1.2.3-beta+001", Version{1, 2, 3}},
		{"2-rc1", Version{2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1.x.3", "1..3", "v1.2.3", "1.2.three"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseVersion(input)
			require.Error(t, err)
		})
	}
}

// Pre-release and build suffixes never affect the parsed triple.
func TestParseVersion_SuffixStripRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		major := rapid.IntRange(0, 999).Draw(t, "major")
		minor := rapid.IntRange(0, 999).Draw(t, "minor")
		patch := rapid.IntRange(0, 999).Draw(t, "patch")
		suffix := rapid.SampledFrom([]string{"", "-beta", "-rc.1", "+build", "-beta+001"}).Draw(t, "suffix")

		raw := fmt.Sprintf("%d.%d.%d%s", major, minor, patch, suffix)
		got, err := ParseVersion(raw)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", raw, err)
		}
		want := Version{Major: major, Minor: minor, Patch: patch}
		if got != want {
			t.Fatalf("ParseVersion(%q) = %v, want %v", raw, got, want)
		}
	})
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.0", "1.10.0", -1},
		{"1.2.3", "1.2.4", -1},
		{"0.9.0", "0.10.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			got := Compare(MustParseVersion(tt.a), MustParseVersion(tt.b))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersion_String(t *testing.T) {
	assert.Equal(t, "1.2.3", Version{1, 2, 3}.String())
	assert.Equal(t, "0.0.0", Version{}.String())
}
