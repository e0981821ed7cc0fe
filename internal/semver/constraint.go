package semver

import (
	"fmt"
	"strings"
)

// Operator is a version constraint operator.
type Operator string

const (
	OpEq          Operator = "="
	OpGte         Operator = ">="
	OpLte         Operator = "<="
	OpGt          Operator = ">"
	OpLt          Operator = "<"
	OpPessimistic Operator = "~>"
	OpCaret       Operator = "^"
)

// operators is ordered so that two-character operators match before their
// one-character prefixes.
var operators = []Operator{OpGte, OpLte, OpPessimistic, OpGt, OpLt, OpEq, OpCaret}

// Constraint is an operator plus a reference version.
//
// Constraints are transient values derived from a manifest's dependency
// declaration; they are never persisted.
type Constraint struct {
	Op Operator

	// RawVersion is the version text as written in the constraint. The =
	// operator compares against this, not the parsed triple.
	RawVersion string

	Version Version
}

// ParseConstraint parses a string of the form <operator><version>.
//
// The reference version is parsed eagerly, so ">=not.a.version" fails here
// rather than at match time.
func ParseConstraint(raw string) (Constraint, error) {
	for _, op := range operators {
		rest, ok := strings.CutPrefix(raw, string(op))
		if !ok || rest == "" {
			continue
		}
		v, err := ParseVersion(rest)
		if err != nil {
			return Constraint{}, fmt.Errorf("invalid version constraint %q: %w", raw, err)
		}
		return Constraint{Op: op, RawVersion: rest, Version: v}, nil
	}
	return Constraint{}, fmt.Errorf("invalid version constraint: %s", raw)
}

// MustParseConstraint is ParseConstraint for statically known inputs.
func MustParseConstraint(raw string) Constraint {
	c, err := ParseConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Satisfies reports whether candidate satisfies the constraint.
//
// The = operator compares the candidate string against the constraint's
// original version text: "=1.2.0" is not satisfied by "1.2" even though the
// two parse to the same triple. Registries rely on this strictness, so it is
// not normalized away. All other operators compare parsed triples.
func (c Constraint) Satisfies(candidate string) (bool, error) {
	if c.Op == OpEq {
		return c.RawVersion == candidate, nil
	}

	v, err := ParseVersion(candidate)
	if err != nil {
		return false, err
	}

	switch c.Op {
	case OpGte:
		return Compare(v, c.Version) >= 0, nil
	case OpLte:
		return Compare(v, c.Version) <= 0, nil
	case OpGt:
		return Compare(v, c.Version) > 0, nil
	case OpLt:
		return Compare(v, c.Version) < 0, nil
	case OpPessimistic:
		// ~>1.2.3 means >=1.2.3 and <1.3.0. The upper bound always bumps
		// the minor of the parsed triple, even for two-component
		// constraints like ~>1.2.
		upper := Version{Major: c.Version.Major, Minor: c.Version.Minor + 1}
		return Compare(v, c.Version) >= 0 && Compare(v, upper) < 0, nil
	case OpCaret:
		// ^1.2.3 means >=1.2.3 and <2.0.0.
		upper := Version{Major: c.Version.Major + 1}
		return Compare(v, c.Version) >= 0 && Compare(v, upper) < 0, nil
	default:
		return false, nil
	}
}

func (c Constraint) String() string {
	return string(c.Op) + c.RawVersion
}
