package pattern

// SuiteTable represents a generated test suite: one column per
// parameter plus the per-row count of newly covered pairs. Row order is
// generation order and must not be re-sorted — the NewPairs attribution
// is only meaningful in that order.
type SuiteTable struct {
	Label   string
	Columns []string // parameter names, declaration order
	Rows    []SuiteRow
}

// SuiteRow is one test case.
type SuiteRow struct {
	Index    int      // 1-based position in the suite
	Values   []string // aligned with Columns
	NewPairs int      // pairs first covered by this row
}

func (s *SuiteTable) Type() PatternType { return PatternTypeSuiteTable }
