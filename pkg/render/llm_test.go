package render

import (
	"strings"
	"testing"

	"github.com/dkoosis/pairgen/pkg/pattern"
)

func TestLLM_RendersTabSeparatedSuite(t *testing.T) {
	out := NewLLM().Render([]pattern.Pattern{sampleTable()})

	if !strings.Contains(out, "SUITE:") {
		t.Error("missing SUITE header")
	}
	if !strings.Contains(out, "#\tBrowser\tOS\tnew_pairs") {
		t.Errorf("missing header row, got:\n%s", out)
	}
	if !strings.Contains(out, "1\tChrome\tWindows\t1") {
		t.Errorf("missing data row, got:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("llm output contains ANSI codes")
	}
}

func TestLLM_RendersSummaryLine(t *testing.T) {
	s := &pattern.Summary{
		Metrics: []pattern.SummaryItem{
			{Label: "pairs", Value: "12"},
			{Label: "tests", Value: "4"},
		},
	}
	out := NewLLM().Render([]pattern.Pattern{s})
	if !strings.Contains(out, "SUMMARY: pairs=12 tests=4") {
		t.Errorf("unexpected summary line:\n%s", out)
	}
}

func TestJSON_RoundTrips(t *testing.T) {
	out := NewJSON().Render([]pattern.Pattern{sampleTable()})
	for _, want := range []string{`"version": "1.0"`, `"type": "suite-table"`, `"Chrome"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in JSON output:\n%s", want, out)
		}
	}
}
