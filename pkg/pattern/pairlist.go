package pattern

// PairList enumerates required pairs and which test case first covers
// each — the verification view behind --pairs.
type PairList struct {
	Label string
	Items []PairItem
}

// PairItem is one required pair and its attribution.
type PairItem struct {
	ParamA, ValueA string
	ParamB, ValueB string
	FirstTest      int // 1-based index of first covering test, 0 if uncovered
}

func (p *PairList) Type() PatternType { return PatternTypePairList }
