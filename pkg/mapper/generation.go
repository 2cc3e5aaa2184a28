// Package mapper converts engine results into report patterns.
package mapper

import (
	"fmt"

	"github.com/dkoosis/pairgen/pkg/pairwise"
	"github.com/dkoosis/pairgen/pkg/pattern"
)

// FromGeneration converts a generated suite and its coverage analysis
// into patterns: Summary + SuiteTable.
func FromGeneration(params pairwise.Parameters, suite pairwise.TestSuite, required pairwise.PairSet, cov pairwise.Coverage) []pattern.Pattern {
	return []pattern.Pattern{
		generationSummary(suite, required, cov),
		suiteTable(params, suite, cov),
	}
}

func generationSummary(suite pairwise.TestSuite, required pairwise.PairSet, cov pairwise.Coverage) *pattern.Summary {
	coverageKind := "success"
	if len(cov.Covered) < len(required) {
		coverageKind = "error"
	}
	return &pattern.Summary{
		Label: "generation summary",
		Metrics: []pattern.SummaryItem{
			{Label: "Required Pairs", Value: fmt.Sprintf("%d", len(required)), Kind: "info"},
			{Label: "Test Cases", Value: fmt.Sprintf("%d", len(suite)), Kind: "info"},
			{Label: "Covered Pairs", Value: fmt.Sprintf("%d of %d", len(cov.Covered), len(required)), Kind: coverageKind},
		},
	}
}

func suiteTable(params pairwise.Parameters, suite pairwise.TestSuite, cov pairwise.Coverage) *pattern.SuiteTable {
	st := &pattern.SuiteTable{
		Label:   "test cases",
		Columns: params.Names(),
		Rows:    make([]pattern.SuiteRow, len(suite)),
	}
	for i, tc := range suite {
		st.Rows[i] = pattern.SuiteRow{
			Index:    i + 1,
			Values:   tc,
			NewPairs: cov.NewUniqueCounts[i],
		}
	}
	return st
}

// PairList builds the per-pair attribution view. Items are emitted in
// deterministic order: parameter declaration order, then domain order,
// never map iteration order.
func PairList(params pairwise.Parameters, suite pairwise.TestSuite) *pattern.PairList {
	first := pairwise.FirstCoveredBy(suite, params)
	pl := &pattern.PairList{Label: "required pairs"}
	for i := 0; i < len(params); i++ {
		for j := i + 1; j < len(params); j++ {
			for _, v := range params[i].Values {
				for _, w := range params[j].Values {
					p := pairwise.NewPair(
						pairwise.Assignment{Parameter: params[i].Name, Value: v},
						pairwise.Assignment{Parameter: params[j].Name, Value: w},
					)
					item := pattern.PairItem{
						ParamA: p.A.Parameter, ValueA: p.A.Value,
						ParamB: p.B.Parameter, ValueB: p.B.Value,
					}
					if idx, ok := first[p]; ok {
						item.FirstTest = idx + 1
					}
					pl.Items = append(pl.Items, item)
				}
			}
		}
	}
	return pl
}
