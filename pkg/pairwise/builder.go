package pairwise

import "fmt"

// TestCase assigns exactly one value per parameter, aligned with the
// parameter set's declaration order.
type TestCase []string

// TestSuite is an ordered sequence of test cases. Order is significant:
// first-covered-by attribution downstream depends on it, so a suite must
// never be re-sorted or filtered without recomputing coverage.
type TestSuite []TestCase

// Generate enumerates the required pairs for params and builds a covering
// suite in one call. This is the usual entry point for callers.
func Generate(params Parameters) (TestSuite, PairSet, error) {
	required, err := EnumeratePairs(params)
	if err != nil {
		return nil, nil, err
	}
	suite, err := BuildSuite(params, required)
	if err != nil {
		return nil, nil, err
	}
	return suite, required, nil
}

// BuildSuite constructs an ordered suite covering every pair in required.
//
// Each iteration seeds a candidate from the first still-uncovered pair in
// deterministic scan order (parameter declaration order, then domain
// order), then fills the remaining parameters one by one, picking the
// value that newly covers the most uncovered pairs against the choices
// already fixed in the candidate. Ties go to the earlier-declared value.
// The seed guarantees every iteration covers at least one new pair, so
// the loop terminates within |required| iterations; exceeding that bound
// means the bookkeeping is broken and the call fails with
// ErrInternalConsistency.
//
// After full coverage a front-to-back pass drops any test case whose
// every pair is also covered by another remaining test case.
func BuildSuite(params Parameters, required PairSet) (TestSuite, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	covered := make(PairSet, len(required))
	var suite TestSuite
	for iter := 0; len(covered) < len(required); iter++ {
		if iter >= len(required) {
			return nil, fmt.Errorf("%w: %d of %d pairs covered after %d iterations",
				ErrInternalConsistency, len(covered), len(required), iter)
		}
		tc := buildCandidate(params, required, covered)
		suite = append(suite, tc)
		for _, p := range pairsOf(params, tc) {
			covered.Add(p)
		}
	}
	return dropRedundant(params, suite), nil
}

// buildCandidate assembles one test case: seed from the first uncovered
// pair, then greedy fill.
func buildCandidate(params Parameters, required, covered PairSet) TestCase {
	chosen := make(TestCase, len(params))
	fixed := make([]bool, len(params))

	i, vi, j, wj, ok := firstUncovered(params, required, covered)
	if ok {
		chosen[i], fixed[i] = params[i].Values[vi], true
		chosen[j], fixed[j] = params[j].Values[wj], true
	}

	for k := range params {
		if fixed[k] {
			continue
		}
		best, bestGain := 0, -1
		for vk, v := range params[k].Values {
			gain := 0
			for m := range params {
				if !fixed[m] {
					continue
				}
				p := NewPair(
					Assignment{Parameter: params[m].Name, Value: chosen[m]},
					Assignment{Parameter: params[k].Name, Value: v},
				)
				if required.Contains(p) && !covered.Contains(p) {
					gain++
				}
			}
			// Strict > keeps the earlier-declared value on ties.
			if gain > bestGain {
				best, bestGain = vk, gain
			}
		}
		chosen[k], fixed[k] = params[k].Values[best], true
	}
	return chosen
}

// firstUncovered scans parameter index pairs and domains in declaration
// order and returns the first pair not yet covered. The fixed scan order
// is what makes the builder deterministic despite PairSet being a map.
func firstUncovered(params Parameters, required, covered PairSet) (i, vi, j, wj int, ok bool) {
	for i = 0; i < len(params); i++ {
		for j = i + 1; j < len(params); j++ {
			for vi = range params[i].Values {
				for wj = range params[j].Values {
					p := NewPair(
						Assignment{Parameter: params[i].Name, Value: params[i].Values[vi]},
						Assignment{Parameter: params[j].Name, Value: params[j].Values[wj]},
					)
					if required.Contains(p) && !covered.Contains(p) {
						return i, vi, j, wj, true
					}
				}
			}
		}
	}
	return 0, 0, 0, 0, false
}

// pairsOf lists every pair a test case covers: one per unordered
// parameter index pair, C(k,2) in total.
func pairsOf(params Parameters, tc TestCase) []Pair {
	k := len(params)
	pairs := make([]Pair, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			pairs = append(pairs, NewPair(
				Assignment{Parameter: params[i].Name, Value: tc[i]},
				Assignment{Parameter: params[j].Name, Value: tc[j]},
			))
		}
	}
	return pairs
}

// dropRedundant removes, front to back, every test case whose pairs are
// all covered at least twice by the suite as it stands. Completeness is
// preserved: a pair's count only drops to one when its last duplicate
// holder is removed, and a test case holding the sole copy of any pair
// is never removed.
func dropRedundant(params Parameters, suite TestSuite) TestSuite {
	counts := make(map[Pair]int)
	for _, tc := range suite {
		for _, p := range pairsOf(params, tc) {
			counts[p]++
		}
	}
	out := make(TestSuite, 0, len(suite))
	for _, tc := range suite {
		pairs := pairsOf(params, tc)
		redundant := true
		for _, p := range pairs {
			if counts[p] < 2 {
				redundant = false
				break
			}
		}
		if redundant {
			for _, p := range pairs {
				counts[p]--
			}
			continue
		}
		out = append(out, tc)
	}
	return out
}
