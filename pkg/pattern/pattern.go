// Package pattern defines the semantic data types for pairgen's report
// output. Patterns are pure data — renderers decide presentation.
package pattern

// PatternType identifies the kind of report pattern.
type PatternType string

const (
	PatternTypeSummary    PatternType = "summary"
	PatternTypeSuiteTable PatternType = "suite-table"
	PatternTypePairList   PatternType = "pair-list"
)

// Pattern is the interface all report patterns implement.
// Patterns hold data; renderers decide how to present it.
type Pattern interface {
	Type() PatternType
}
