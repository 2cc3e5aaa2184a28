package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/pairgen/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
	caser cases.Caser
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width, caser: cases.Title(language.English)}
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.SuiteTable:
		return t.renderSuiteTable(v)
	case *pattern.PairList:
		return t.renderPairList(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Bold.Render(t.caser.String(s.Label)))
		sb.WriteString("\n")
	}
	for _, m := range s.Metrics {
		sb.WriteString("  ")
		icon, style := t.iconStyle(m.Kind)
		sb.WriteString(style.Render(icon + " " + m.Label + ": " + m.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderSuiteTable(st *pattern.SuiteTable) string {
	if len(st.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	if st.Label != "" {
		sb.WriteString(t.theme.Bold.Render(t.caser.String(st.Label)))
		sb.WriteString("\n")
	}

	const newPairsHeader = "New Pairs"
	headers := append([]string{"#"}, st.Columns...)
	headers = append(headers, newPairsHeader)

	// Column widths from headers and every cell; runewidth keeps wide
	// characters in user-supplied values aligned.
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range st.Rows {
		if w := runewidth.StringWidth(fmt.Sprintf("%d", r.Index)); w > widths[0] {
			widths[0] = w
		}
		for i, v := range r.Values {
			if w := runewidth.StringWidth(v); w > widths[i+1] {
				widths[i+1] = w
			}
		}
	}

	// Header row
	sb.WriteString("  ")
	for i, h := range headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(t.theme.Header.Render(pad(h, widths[i])))
	}
	sb.WriteString("\n")

	// Separator
	sb.WriteString("  ")
	for i := range headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(t.theme.Muted.Render(strings.Repeat("─", widths[i])))
	}
	sb.WriteString("\n")

	// Rows
	last := len(headers) - 1
	for _, r := range st.Rows {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(padLeft(fmt.Sprintf("%d", r.Index), widths[0])))
		for i, v := range r.Values {
			sb.WriteString("  ")
			sb.WriteString(t.theme.Primary.Render(pad(v, widths[i+1])))
		}
		sb.WriteString("  ")
		count := fmt.Sprintf("%d", r.NewPairs)
		if r.NewPairs > 0 {
			sb.WriteString(t.theme.Success.Render(padLeft(count, widths[last])))
		} else {
			sb.WriteString(t.theme.Muted.Render(padLeft(count, widths[last])))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderPairList(pl *pattern.PairList) string {
	if len(pl.Items) == 0 {
		return ""
	}
	var sb strings.Builder
	if pl.Label != "" {
		sb.WriteString(t.theme.Bold.Render(t.caser.String(pl.Label)))
		sb.WriteString("\n")
	}
	for _, item := range pl.Items {
		sb.WriteString("  ")
		left := fmt.Sprintf("%s=%s %s %s=%s", item.ParamA, item.ValueA, t.theme.Icons.Bullet, item.ParamB, item.ValueB)
		if item.FirstTest > 0 {
			sb.WriteString(t.theme.Success.Render(t.theme.Icons.Pass + " "))
			sb.WriteString(left)
			sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("  (test %d)", item.FirstTest)))
		} else {
			sb.WriteString(t.theme.Error.Render(t.theme.Icons.Fail + " "))
			sb.WriteString(left)
			sb.WriteString(t.theme.Error.Render("  uncovered"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) iconStyle(kind string) (string, lipgloss.Style) {
	switch kind {
	case "success":
		return t.theme.Icons.Pass, t.theme.Success
	case "error":
		return t.theme.Icons.Fail, t.theme.Error
	case "warning":
		return t.theme.Icons.Fail, t.theme.Warning
	default:
		return t.theme.Icons.Info, t.theme.Primary
	}
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func padLeft(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
