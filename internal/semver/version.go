// Package semver implements the version and constraint semantics used by
// Potions plugin manifests.
//
// The behavior here intentionally differs from strict Semantic Versioning:
// pre-release and build-metadata suffixes are stripped before comparison and
// carry no ordering weight, and missing trailing components default to zero.
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a (major, minor, patch) triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a version string into a Version.
//
// Anything from the first '-' or '+' onward is discarded, so
// "1.2.3-beta+001" parses identically to "1.2.3". Missing trailing
// components default to zero: "1.2" parses as (1, 2, 0).
func ParseVersion(raw string) (Version, error) {
	trimmed := raw
	if i := strings.IndexAny(trimmed, "-+"); i >= 0 {
		trimmed = trimmed[:i]
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}

	var v Version
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: component %q is not a non-negative integer", raw, part)
		}
		*fields[i] = n
	}
	return v, nil
}

// MustParseVersion is ParseVersion for statically known inputs.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare compares a and b component-wise, returning:
// -1 if a < b
//
//	0 if a == b
//	1 if a > b
func Compare(a, b Version) int {
	if c := compareInt(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareInt(a.Minor, b.Minor); c != 0 {
		return c
	}
	return compareInt(a.Patch, b.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
