package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/pairgen/pkg/pairwise"
	"github.com/dkoosis/pairgen/pkg/pattern"
)

func generated(t *testing.T) (pairwise.Parameters, pairwise.TestSuite, pairwise.PairSet, pairwise.Coverage) {
	t.Helper()
	params := pairwise.Parameters{
		{Name: "Browser", Values: []string{"Chrome", "Firefox"}},
		{Name: "OS", Values: []string{"Windows", "Mac"}},
	}
	suite, required, err := pairwise.Generate(params)
	require.NoError(t, err)
	cov, err := pairwise.AnalyzeCoverage(suite, required, params)
	require.NoError(t, err)
	return params, suite, required, cov
}

func TestFromGeneration_SummaryThenTable(t *testing.T) {
	t.Parallel()

	params, suite, required, cov := generated(t)
	patterns := FromGeneration(params, suite, required, cov)
	require.Len(t, patterns, 2)

	summary, ok := patterns[0].(*pattern.Summary)
	require.True(t, ok)
	assert.Equal(t, "Required Pairs", summary.Metrics[0].Label)
	assert.Equal(t, "4", summary.Metrics[0].Value)
	assert.Equal(t, "success", summary.Metrics[2].Kind)

	table, ok := patterns[1].(*pattern.SuiteTable)
	require.True(t, ok)
	assert.Equal(t, []string{"Browser", "OS"}, table.Columns)
	require.Len(t, table.Rows, len(suite))
	assert.Equal(t, 1, table.Rows[0].Index)
	assert.Equal(t, cov.NewUniqueCounts[0], table.Rows[0].NewPairs)
}

func TestFromGeneration_IncompleteCoverageFlagged(t *testing.T) {
	t.Parallel()

	params, suite, required, _ := generated(t)
	short := suite[:1]
	cov, err := pairwise.AnalyzeCoverage(short, required, params)
	require.NoError(t, err)

	patterns := FromGeneration(params, short, required, cov)
	summary := patterns[0].(*pattern.Summary)
	assert.Equal(t, "error", summary.Metrics[2].Kind)
}

func TestPairList_DeterministicOrderAndAttribution(t *testing.T) {
	t.Parallel()

	params, suite, _, _ := generated(t)
	pl := PairList(params, suite)
	require.Len(t, pl.Items, 4)

	// Declaration-then-domain order: Chrome pairs before Firefox pairs.
	assert.Equal(t, "Chrome", pl.Items[0].ValueA)
	assert.Equal(t, "Windows", pl.Items[0].ValueB)

	for _, item := range pl.Items {
		assert.Positive(t, item.FirstTest, "pair %v should be covered", item)
		assert.LessOrEqual(t, item.FirstTest, len(suite))
	}
}

func TestPairList_UncoveredMarkedZero(t *testing.T) {
	t.Parallel()

	params, _, _, _ := generated(t)
	pl := PairList(params, pairwise.TestSuite{{"Chrome", "Windows"}})

	covered := 0
	for _, item := range pl.Items {
		if item.FirstTest > 0 {
			covered++
		}
	}
	assert.Equal(t, 1, covered)
}
