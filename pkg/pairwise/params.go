// Package pairwise builds 2-way (pairwise) covering test suites.
//
// Given a set of parameters, each with an ordered domain of at least two
// distinct values, the package enumerates every value pair across distinct
// parameters and constructs an ordered suite of test cases that covers all
// of them. Construction is a deterministic greedy heuristic: identical
// input always produces an identical suite. The result is a valid covering
// array, not necessarily a globally minimal one (that problem is NP-hard).
package pairwise

import (
	"errors"
	"fmt"
)

// ErrPrecondition reports invalid input: too few parameters, a domain
// with fewer than two values, or empty/duplicate names or values. The
// caller is expected to validate input first; the core re-checks.
var ErrPrecondition = errors.New("precondition violated")

// ErrInternalConsistency reports that the greedy builder failed to reach
// full coverage within its safety bound. It indicates a defect in the
// engine, not bad input, and is not recoverable for the call.
var ErrInternalConsistency = errors.New("internal consistency failure")

// Parameter is a named input dimension with an ordered domain of values.
// Domain order is significant: it fixes greedy tie-breaking and therefore
// the exact suite produced.
type Parameter struct {
	Name   string
	Values []string
}

// Parameters is an ordered parameter set. Declaration order is
// significant for the same reason domain order is.
type Parameters []Parameter

// Validate checks the core preconditions: at least two parameters,
// unique non-empty names, and per parameter at least two unique
// non-empty values. It does not trim or otherwise normalize strings;
// that is the caller's job.
func (ps Parameters) Validate() error {
	if len(ps) < 2 {
		return fmt.Errorf("%w: need at least 2 parameters, got %d", ErrPrecondition, len(ps))
	}
	names := make(map[string]bool, len(ps))
	for _, p := range ps {
		if p.Name == "" {
			return fmt.Errorf("%w: empty parameter name", ErrPrecondition)
		}
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate parameter %q", ErrPrecondition, p.Name)
		}
		names[p.Name] = true

		if len(p.Values) < 2 {
			return fmt.Errorf("%w: parameter %q needs at least 2 values, got %d", ErrPrecondition, p.Name, len(p.Values))
		}
		seen := make(map[string]bool, len(p.Values))
		for _, v := range p.Values {
			if v == "" {
				return fmt.Errorf("%w: parameter %q has an empty value", ErrPrecondition, p.Name)
			}
			if seen[v] {
				return fmt.Errorf("%w: parameter %q has duplicate value %q", ErrPrecondition, p.Name, v)
			}
			seen[v] = true
		}
	}
	return nil
}

// Names returns the parameter names in declaration order.
func (ps Parameters) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}
