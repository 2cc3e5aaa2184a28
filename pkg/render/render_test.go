package render

import (
	"strings"
	"testing"

	"github.com/dkoosis/pairgen/pkg/pattern"
)

func sampleTable() *pattern.SuiteTable {
	return &pattern.SuiteTable{
		Label:   "test cases",
		Columns: []string{"Browser", "OS"},
		Rows: []pattern.SuiteRow{
			{Index: 1, Values: []string{"Chrome", "Windows"}, NewPairs: 1},
			{Index: 2, Values: []string{"Firefox", "Mac"}, NewPairs: 1},
		},
	}
}

func TestTerminal_RendersSuiteTable(t *testing.T) {
	r := NewTerminal(MonoTheme(), 80)
	out := r.Render([]pattern.Pattern{sampleTable()})

	if !strings.Contains(out, "Test Cases") {
		t.Error("missing title-cased label")
	}
	for _, want := range []string{"Browser", "OS", "New Pairs", "Chrome", "Firefox"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestTerminal_ColumnsAligned(t *testing.T) {
	r := NewTerminal(MonoTheme(), 80)
	out := r.Render([]pattern.Pattern{sampleTable()})

	// "Chrome " pads to the width of "Firefox": the OS column starts at
	// the same offset on both rows.
	lines := strings.Split(out, "\n")
	var rows []string
	for _, line := range lines {
		if strings.Contains(line, "Chrome") || strings.Contains(line, "Firefox") {
			rows = append(rows, line)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(rows))
	}
	if strings.Index(rows[0], "Windows") != strings.Index(rows[1], "Mac") {
		t.Errorf("OS column misaligned:\n%s\n%s", rows[0], rows[1])
	}
}

func TestTerminal_RendersSummary(t *testing.T) {
	r := NewTerminal(MonoTheme(), 80)
	s := &pattern.Summary{
		Label: "generation summary",
		Metrics: []pattern.SummaryItem{
			{Label: "Required Pairs", Value: "12", Kind: "info"},
			{Label: "Test Cases", Value: "4", Kind: "success"},
		},
	}
	out := r.Render([]pattern.Pattern{s})

	if !strings.Contains(out, "Generation Summary") {
		t.Error("missing title-cased label")
	}
	if !strings.Contains(out, "Required Pairs: 12") {
		t.Errorf("missing metric, got:\n%s", out)
	}
}

func TestTerminal_RendersPairList(t *testing.T) {
	r := NewTerminal(MonoTheme(), 80)
	pl := &pattern.PairList{
		Label: "required pairs",
		Items: []pattern.PairItem{
			{ParamA: "Browser", ValueA: "Chrome", ParamB: "OS", ValueB: "Mac", FirstTest: 2},
			{ParamA: "Browser", ValueA: "Firefox", ParamB: "OS", ValueB: "Windows", FirstTest: 0},
		},
	}
	out := r.Render([]pattern.Pattern{pl})

	if !strings.Contains(out, "(test 2)") {
		t.Errorf("missing attribution, got:\n%s", out)
	}
	if !strings.Contains(out, "uncovered") {
		t.Errorf("missing uncovered marker, got:\n%s", out)
	}
}

func TestMonoTheme_NoANSICodes(t *testing.T) {
	r := NewTerminal(MonoTheme(), 80)
	out := r.Render([]pattern.Pattern{sampleTable()})
	if strings.Contains(out, "\x1b[3") {
		t.Error("mono theme output contains color codes")
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("orca").Name != "orca" {
		t.Error("expected orca theme")
	}
	if ThemeByName("mono").Name != "mono" {
		t.Error("expected mono theme")
	}
	if ThemeByName("bogus").Name != "default" {
		t.Error("expected fallback to default theme")
	}
}
