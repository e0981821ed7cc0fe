// Package resolver validates plugin dependency declarations against a
// loaded registry and orchestrates registry-wide resolution.
package resolver

import (
	"github.com/potions-sh/cauldron/internal/depgraph"
	"github.com/potions-sh/cauldron/internal/log"
	"github.com/potions-sh/cauldron/internal/manifest"
	"github.com/potions-sh/cauldron/internal/semver"
)

// Result is the outcome of a resolution run.
type Result struct {
	OK     bool
	Errors []ResolutionError
}

// Strings renders every error in order.
func (r Result) Strings() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Error())
	}
	return out
}

// ValidateManifest checks every dependency declaration of m against the
// registry: the dependency must have a name, the name must exist in the
// registry, and the registry's version for it must satisfy the declared
// constraint. Errors are accumulated, never short-circuited.
//
// Returned errors carry no manifest attribution; ResolveAll adds it when
// validating the whole registry.
func ValidateManifest(m *manifest.Manifest, reg manifest.Registry) (bool, []ResolutionError) {
	var errs []ResolutionError

	for _, dep := range m.Dependencies {
		if dep.Name == "" {
			errs = append(errs, ResolutionError{Kind: KindMissingDependencyName})
			continue
		}

		if _, ok := reg[dep.Name]; !ok {
			errs = append(errs, ResolutionError{
				Kind:       KindDependencyNotFound,
				Dependency: dep.Name,
			})
			continue
		}

		if dep.Version == "" {
			continue
		}

		constraint, err := semver.ParseConstraint(dep.Version)
		if err != nil {
			errs = append(errs, ResolutionError{
				Kind:       KindInvalidConstraint,
				Dependency: dep.Name,
				Constraint: dep.Version,
				Detail:     err,
			})
			continue
		}

		actual := reg.VersionOf(dep.Name)
		ok, err := constraint.Satisfies(actual)
		if err != nil {
			// The registered version itself does not parse; surfaced in the
			// same class as an invalid constraint, matching how constraint
			// evaluation failures have always been reported.
			errs = append(errs, ResolutionError{
				Kind:       KindInvalidConstraint,
				Dependency: dep.Name,
				Constraint: dep.Version,
				Detail:     err,
			})
			continue
		}
		if !ok {
			errs = append(errs, ResolutionError{
				Kind:       KindUnsatisfiedVersion,
				Dependency: dep.Name,
				Constraint: dep.Version,
				Actual:     actual,
			})
		}
	}

	return len(errs) == 0, errs
}

// ResolveAll runs cycle detection over every registry key, then validates
// every manifest, collecting all errors rather than stopping at the first.
func ResolveAll(reg manifest.Registry, g *depgraph.Graph) Result {
	var errs []ResolutionError

	for _, cycle := range g.FindCycles(reg.Names()) {
		errs = append(errs, ResolutionError{
			Kind:  KindCircularDependency,
			Cycle: cycle,
		})
	}

	for _, name := range reg.Names() {
		_, manifestErrs := ValidateManifest(reg[name], reg)
		for _, e := range manifestErrs {
			e.Manifest = name
			errs = append(errs, e)
		}
	}

	log.Debug(log.CatResolver, "resolution finished",
		"plugins", len(reg), "edges", g.EdgeCount(), "errors", len(errs))

	return Result{OK: len(errs) == 0, Errors: errs}
}

// ResolveOne validates a single manifest against an already-loaded registry.
// It skips the registry-wide cycle scan, which makes it suitable for gating
// one changed manifest in CI.
func ResolveOne(m *manifest.Manifest, reg manifest.Registry) Result {
	_, errs := ValidateManifest(m, reg)
	return Result{OK: len(errs) == 0, Errors: errs}
}
