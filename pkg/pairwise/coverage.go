package pairwise

import "fmt"

// Coverage is the analyzer's report over a finished suite.
type Coverage struct {
	// Covered is the set of pairs the suite actually exercises.
	// Equal to the required universe when the builder behaved.
	Covered PairSet
	// PerTest holds the pairs each test case contributes, aligned
	// with suite order. Derivable from each test case alone.
	PerTest []PairSet
	// NewUniqueCounts holds, per test case in suite order, how many
	// of its pairs no earlier test case had covered. Sums to
	// len(Covered) exactly: every covered pair is attributed to the
	// first test case that covers it.
	NewUniqueCounts []int
}

// AnalyzeCoverage recomputes coverage for a suite independently of the
// builder's own bookkeeping, so the two can be checked against each
// other. It reports what it observes and does not enforce completeness;
// a short suite simply yields a smaller Covered set.
func AnalyzeCoverage(suite TestSuite, required PairSet, params Parameters) (Coverage, error) {
	if err := params.Validate(); err != nil {
		return Coverage{}, err
	}
	for i, tc := range suite {
		if len(tc) != len(params) {
			return Coverage{}, fmt.Errorf("%w: test case %d assigns %d values for %d parameters",
				ErrPrecondition, i, len(tc), len(params))
		}
	}

	cov := Coverage{
		Covered:         make(PairSet, len(required)),
		PerTest:         make([]PairSet, len(suite)),
		NewUniqueCounts: make([]int, len(suite)),
	}
	for i, tc := range suite {
		perTest := make(PairSet)
		for _, p := range pairsOf(params, tc) {
			perTest.Add(p)
			if !cov.Covered.Contains(p) {
				cov.Covered.Add(p)
				cov.NewUniqueCounts[i]++
			}
		}
		cov.PerTest[i] = perTest
	}
	return cov, nil
}

// FirstCoveredBy maps every covered pair to the index of the first test
// case that covers it. Used by reporting to show attribution.
func FirstCoveredBy(suite TestSuite, params Parameters) map[Pair]int {
	first := make(map[Pair]int)
	for i, tc := range suite {
		for _, p := range pairsOf(params, tc) {
			if _, ok := first[p]; !ok {
				first[p] = i
			}
		}
	}
	return first
}
