package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/pairgen/pkg/pattern"
)

// LLM renders patterns as terse plain text optimized for piped and AI
// consumption. Zero ANSI codes, tab-separated table, deterministic.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all patterns as plain text.
func (l *LLM) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			l.renderSummary(&sb, v)
		case *pattern.SuiteTable:
			l.renderSuiteTable(&sb, v)
		case *pattern.PairList:
			l.renderPairList(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderSummary(sb *strings.Builder, s *pattern.Summary) {
	var parts []string
	for _, m := range s.Metrics {
		parts = append(parts, m.Label+"="+m.Value)
	}
	fmt.Fprintf(sb, "SUMMARY: %s\n", strings.Join(parts, " "))
}

func (l *LLM) renderSuiteTable(sb *strings.Builder, st *pattern.SuiteTable) {
	sb.WriteString("SUITE:\n")
	header := append([]string{"#"}, st.Columns...)
	header = append(header, "new_pairs")
	sb.WriteString(strings.Join(header, "\t"))
	sb.WriteString("\n")
	for _, r := range st.Rows {
		row := append([]string{fmt.Sprintf("%d", r.Index)}, r.Values...)
		row = append(row, fmt.Sprintf("%d", r.NewPairs))
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
}

func (l *LLM) renderPairList(sb *strings.Builder, pl *pattern.PairList) {
	sb.WriteString("PAIRS:\n")
	for _, item := range pl.Items {
		status := "uncovered"
		if item.FirstTest > 0 {
			status = fmt.Sprintf("test=%d", item.FirstTest)
		}
		fmt.Fprintf(sb, "%s=%s\t%s=%s\t%s\n", item.ParamA, item.ValueA, item.ParamB, item.ValueB, status)
	}
}
