package pairwise

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyzeCoverage_AttributionSumsToCovered(t *testing.T) {
	params := browserParams()
	suite, required, err := Generate(params)
	if err != nil {
		t.Fatal(err)
	}

	cov, err := AnalyzeCoverage(suite, required, params)
	if err != nil {
		t.Fatal(err)
	}

	sum := 0
	for _, n := range cov.NewUniqueCounts {
		sum += n
	}
	if sum != len(cov.Covered) {
		t.Errorf("newUniqueCounts sum %d != covered %d", sum, len(cov.Covered))
	}
}

func TestAnalyzeCoverage_PerTestPairCount(t *testing.T) {
	params := browserParams()
	suite, required, err := Generate(params)
	if err != nil {
		t.Fatal(err)
	}

	cov, err := AnalyzeCoverage(suite, required, params)
	if err != nil {
		t.Fatal(err)
	}

	// k=3 parameters: each test case covers exactly C(3,2)=3 pairs.
	for i, perTest := range cov.PerTest {
		if len(perTest) != 3 {
			t.Errorf("test case %d: expected 3 pairs, got %d", i, len(perTest))
		}
	}
}

func TestAnalyzeCoverage_HandCheckedSuite(t *testing.T) {
	// The classical 4-row covering array for Browser x OS x Language:
	// every one of the 12 pairs appears exactly once across the rows'
	// first-coverage attribution.
	params := browserParams()
	required, err := EnumeratePairs(params)
	if err != nil {
		t.Fatal(err)
	}
	suite := TestSuite{
		{"Chrome", "Windows", "EN"},
		{"Chrome", "Mac", "FR"},
		{"Firefox", "Windows", "FR"},
		{"Firefox", "Mac", "EN"},
	}

	cov, err := AnalyzeCoverage(suite, required, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(cov.Covered) != 12 {
		t.Fatalf("expected all 12 pairs covered, got %d", len(cov.Covered))
	}
	want := []int{3, 3, 3, 3}
	if !reflect.DeepEqual(cov.NewUniqueCounts, want) {
		t.Errorf("expected counts %v, got %v", want, cov.NewUniqueCounts)
	}
}

func TestAnalyzeCoverage_OrderDependence(t *testing.T) {
	// Reversing suite order must shift attribution, not total coverage.
	params := Parameters{
		{Name: "A", Values: []string{"a1", "a2"}},
		{Name: "B", Values: []string{"b1", "b2"}},
	}
	required, err := EnumeratePairs(params)
	if err != nil {
		t.Fatal(err)
	}
	suite := TestSuite{{"a1", "b1"}, {"a1", "b1"}, {"a2", "b2"}}

	cov, err := AnalyzeCoverage(suite, required, params)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 0, 1}
	if !reflect.DeepEqual(cov.NewUniqueCounts, want) {
		t.Errorf("expected %v, got %v", want, cov.NewUniqueCounts)
	}
}

func TestAnalyzeCoverage_Idempotent(t *testing.T) {
	params := browserParams()
	suite, required, err := Generate(params)
	if err != nil {
		t.Fatal(err)
	}

	first, err := AnalyzeCoverage(suite, required, params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := AnalyzeCoverage(suite, required, params)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.NewUniqueCounts, second.NewUniqueCounts) {
		t.Error("newUniqueCounts differ across identical calls")
	}
	if !reflect.DeepEqual(first.Covered, second.Covered) {
		t.Error("covered sets differ across identical calls")
	}
}

func TestAnalyzeCoverage_RejectsMisshapenSuite(t *testing.T) {
	params := browserParams()
	required, err := EnumeratePairs(params)
	if err != nil {
		t.Fatal(err)
	}
	suite := TestSuite{{"Chrome", "Windows"}} // missing Language

	_, err = AnalyzeCoverage(suite, required, params)
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}

func TestFirstCoveredBy_FirstWins(t *testing.T) {
	params := Parameters{
		{Name: "A", Values: []string{"a1", "a2"}},
		{Name: "B", Values: []string{"b1", "b2"}},
	}
	suite := TestSuite{{"a1", "b1"}, {"a1", "b1"}}

	first := FirstCoveredBy(suite, params)
	p := NewPair(Assignment{Parameter: "A", Value: "a1"}, Assignment{Parameter: "B", Value: "b1"})
	if first[p] != 0 {
		t.Errorf("expected attribution to test 0, got %d", first[p])
	}
}
