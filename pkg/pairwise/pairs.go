package pairwise

// Assignment binds one parameter to one of its values.
type Assignment struct {
	Parameter string
	Value     string
}

// Pair is an unordered pair of assignments to two distinct parameters.
// It is stored canonically (A.Parameter < B.Parameter) so that identity
// is independent of construction order and Pair can key a map.
type Pair struct {
	A, B Assignment
}

// NewPair canonicalizes two assignments into a Pair.
func NewPair(x, y Assignment) Pair {
	if y.Parameter < x.Parameter {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// PairSet is a set of pairs. Never iterate it where ordering matters;
// deterministic code scans parameters and domains instead.
type PairSet map[Pair]struct{}

// Contains reports whether p is in the set.
func (s PairSet) Contains(p Pair) bool {
	_, ok := s[p]
	return ok
}

// Add inserts p.
func (s PairSet) Add(p Pair) {
	s[p] = struct{}{}
}

// EnumeratePairs builds the full universe of required pairs: one entry
// for every value combination across every unordered pair of distinct
// parameters. Size is the sum over i<j of |domain(i)|*|domain(j)|.
func EnumeratePairs(params Parameters) (PairSet, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	pairs := make(PairSet)
	for i := 0; i < len(params); i++ {
		for j := i + 1; j < len(params); j++ {
			for _, v := range params[i].Values {
				for _, w := range params[j].Values {
					pairs.Add(NewPair(
						Assignment{Parameter: params[i].Name, Value: v},
						Assignment{Parameter: params[j].Name, Value: w},
					))
				}
			}
		}
	}
	return pairs, nil
}
