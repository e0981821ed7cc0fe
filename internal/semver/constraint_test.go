package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstraint(t *testing.T) {
	tests := []struct {
		input      string
		op         Operator
		rawVersion string
	}{
		{"=1.2.0", OpEq, "1.2.0"},
		{">=1.0.0", OpGte, "1.0.0"},
		{"<=2.0.0", OpLte, "2.0.0"},
		{">1.0.0", OpGt, "1.0.0"},
		{"<2.0.0", OpLt, "2.0.0"},
		{"~>1.2.3", OpPessimistic, "1.2.3"},
		{"^1.2.3", OpCaret, "1.2.3"},
		{"~>1.2", OpPessimistic, "1.2"},
		{">=1.2.3-beta", OpGte, "1.2.3-beta"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseConstraint(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.op, c.Op)
			assert.Equal(t, tt.rawVersion, c.RawVersion)
		})
	}
}

func TestParseConstraint_Invalid(t *testing.T) {
	for _, input := range []string{"", "1.2.3", "==1.0.0", ">=", "~1.2.3", ">=x.y.z", "latest"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseConstraint(input)
			require.Error(t, err)
		})
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		constraint string
		candidate  string
		want       bool
	}{
		// Exact match compares raw strings, not parsed triples.
		{"=1.2.0", "1.2.0", true},
		{"=1.2.0", "1.2", false},
		{"=1.2", "1.2", true},
		{"=1.2.0", "1.2.1", false},

		{">=1.0.0", "1.0.0", true},
		{">=1.0.0", "2.0.0", true},
		{">=2.0.0", "1.5.0", false},
		{"<=1.5.0", "1.5.0", true},
		{"<=1.5.0", "1.5.1", false},
		{">1.0.0", "1.0.1", true},
		{">1.0.0", "1.0.0", false},
		{"<2.0.0", "1.9.9", true},
		{"<2.0.0", "2.0.0", false},

		// Pessimistic: >=ref and <(major, minor+1, 0).
		{"~>1.2.3", "1.2.3", true},
		{"~>1.2.3", "1.2.9", true},
		{"~>1.2.3", "1.3.0", false},
		{"~>1.2.3", "1.2.2", false},
		{"~>1.2", "1.2.9", true},
		{"~>1.2", "1.3.0", false},

		// Caret: >=ref and <(major+1, 0, 0).
		{"^1.2.3", "1.2.3", true},
		{"^1.2.3", "1.9.9", true},
		{"^1.2.3", "2.0.0", false},
		{"^1.2.3", "1.2.2", false},
		{"^0.1.0", "0.9.0", true},
		{"^0.1.0", "1.0.0", false},

		// Suffixes are stripped for ordered comparisons.
		{">=1.2.0", "1.2.0-beta", true},
	}

	for _, tt := range tests {
		t.Run(tt.constraint+" vs "+tt.candidate, func(t *testing.T) {
			c := MustParseConstraint(tt.constraint)
			got, err := c.Satisfies(tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSatisfies_InvalidCandidate(t *testing.T) {
	c := MustParseConstraint(">=1.0.0")
	_, err := c.Satisfies("not-a-version")
	require.Error(t, err)
}

func TestSatisfies_EqNeverParsesCandidate(t *testing.T) {
	// The exact-match operator is pure string comparison, so an unparsable
	// candidate is simply unequal rather than an error.
	c := MustParseConstraint("=1.2.0")
	ok, err := c.Satisfies("garbage")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConstraint_String(t *testing.T) {
	assert.Equal(t, "~>1.2.3", MustParseConstraint("~>1.2.3").String())
	assert.Equal(t, ">=1.0", MustParseConstraint(">=1.0").String())
}
