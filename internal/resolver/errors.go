package resolver

import (
	"fmt"
	"strings"
)

// Kind discriminates resolution error categories.
type Kind string

const (
	KindMissingDependencyName Kind = "missing_dependency_name"
	KindDependencyNotFound    Kind = "dependency_not_found"
	KindInvalidConstraint     Kind = "invalid_constraint"
	KindUnsatisfiedVersion    Kind = "unsatisfied_version"
	KindCircularDependency    Kind = "circular_dependency"
)

// ResolutionError is a single resolution failure with enough context for
// callers to format or filter programmatically. Error() renders the
// human-readable form used by the CLI.
type ResolutionError struct {
	Kind Kind

	// Manifest is the owning manifest's name, when known.
	Manifest string

	// Dependency is the dependency name the error is about.
	Dependency string

	// Constraint is the declared constraint string.
	Constraint string

	// Actual is the version the registry holds for the dependency.
	Actual string

	// Cycle is the closed walk for circular dependency errors.
	Cycle []string

	// Detail carries the parse failure for invalid constraints.
	Detail error
}

func (e ResolutionError) Error() string {
	var msg string
	switch e.Kind {
	case KindMissingDependencyName:
		msg = "invalid dependency: missing name"
	case KindDependencyNotFound:
		msg = fmt.Sprintf("dependency '%s' not found in registry", e.Dependency)
	case KindInvalidConstraint:
		msg = fmt.Sprintf("invalid version constraint for '%s': %v", e.Dependency, e.Detail)
	case KindUnsatisfiedVersion:
		msg = fmt.Sprintf("dependency '%s' version '%s' does not satisfy constraint '%s'",
			e.Dependency, e.Actual, e.Constraint)
	case KindCircularDependency:
		msg = fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Cycle, " -> "))
	default:
		msg = "resolution error"
	}
	if e.Manifest != "" {
		return fmt.Sprintf("[%s] %s", e.Manifest, msg)
	}
	return msg
}

func (e ResolutionError) Unwrap() error {
	return e.Detail
}
