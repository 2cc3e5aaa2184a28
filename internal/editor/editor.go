// Package editor is the interactive parameter editor: add, update, and
// delete parameters, then generate and inspect a pairwise suite without
// leaving the terminal. It owns the parameter set between generations;
// the engine itself is stateless and is handed a fresh copy per run.
package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/pairgen/internal/paramfile"
	"github.com/dkoosis/pairgen/pkg/mapper"
	"github.com/dkoosis/pairgen/pkg/pairwise"
	"github.com/dkoosis/pairgen/pkg/render"
)

type mode int

const (
	modeBrowse mode = iota
	modeEditName
	modeEditValues
	modeResults
)

// Run launches the editor seeded with params and blocks until the user
// quits. Returns the parameter set as it stood on exit.
func Run(params pairwise.Parameters, theme render.Theme) (pairwise.Parameters, error) {
	program := tea.NewProgram(newModel(params, theme), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, err
	}
	return final.(model).params, nil
}

type model struct {
	params   pairwise.Parameters
	selected int
	mode     mode

	nameInput   textinput.Model
	valuesInput textinput.Model
	editing     int // index being edited; -1 when adding

	results viewport.Model
	status  string
	theme   render.Theme
	width   int
	height  int
	ready   bool
}

func newModel(params pairwise.Parameters, theme render.Theme) model {
	name := textinput.New()
	name.Placeholder = "parameter name"
	name.CharLimit = 64

	values := textinput.New()
	values.Placeholder = "comma-separated values"
	values.CharLimit = 256

	return model{
		params:      params,
		nameInput:   name,
		valuesInput: values,
		editing:     -1,
		results:     viewport.New(0, 0),
		theme:       theme,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = msg.Width - 4
		m.results.Height = msg.Height - 6
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeEditName, modeEditValues:
			return m.updateInputs(msg)
		case modeResults:
			return m.updateResults(msg)
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.params)-1 {
			m.selected++
		}
	case "a":
		m.editing = -1
		m.nameInput.SetValue("")
		m.valuesInput.SetValue("")
		m.mode = modeEditName
		return m, m.nameInput.Focus()
	case "enter", "e":
		if len(m.params) == 0 {
			break
		}
		p := m.params[m.selected]
		m.editing = m.selected
		m.nameInput.SetValue(p.Name)
		m.valuesInput.SetValue(strings.Join(p.Values, ", "))
		m.mode = modeEditName
		return m, m.nameInput.Focus()
	case "d":
		// The original editor refuses to drop below two parameters.
		if len(m.params) <= 2 {
			m.status = "cannot delete: minimum 2 parameters required"
			break
		}
		name := m.params[m.selected].Name
		m.params = append(m.params[:m.selected:m.selected], m.params[m.selected+1:]...)
		if m.selected >= len(m.params) {
			m.selected = len(m.params) - 1
		}
		m.status = fmt.Sprintf("deleted %s", name)
	case "g":
		return m.generate()
	}
	return m, nil
}

func (m model) updateInputs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.nameInput.Blur()
		m.valuesInput.Blur()
		return m, nil
	case "enter":
		if m.mode == modeEditName {
			m.mode = modeEditValues
			m.nameInput.Blur()
			return m, m.valuesInput.Focus()
		}
		params, err := commit(m.params, m.editing, m.nameInput.Value(), m.valuesInput.Value())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.params = params
		if m.editing < 0 {
			m.selected = len(m.params) - 1
			m.status = fmt.Sprintf("added %s", m.params[m.selected].Name)
		} else {
			m.status = fmt.Sprintf("updated %s", m.params[m.editing].Name)
		}
		m.mode = modeBrowse
		m.valuesInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.mode == modeEditName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.valuesInput, cmd = m.valuesInput.Update(msg)
	}
	return m, cmd
}

func (m model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m model) generate() (tea.Model, tea.Cmd) {
	suite, required, err := pairwise.Generate(m.params)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	cov, err := pairwise.AnalyzeCoverage(suite, required, m.params)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	renderer := render.NewTerminal(m.theme, m.results.Width)
	m.results.SetContent(renderer.Render(mapper.FromGeneration(m.params, suite, required, cov)))
	m.results.SetYOffset(0)
	m.mode = modeResults
	return m, nil
}

// commit validates the inputs and applies an add (editing < 0) or an
// in-place update, preserving declaration order.
func commit(params pairwise.Parameters, editing int, rawName, rawValues string) (pairwise.Parameters, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return nil, fmt.Errorf("parameter name cannot be empty")
	}
	for i, p := range params {
		if p.Name == name && i != editing {
			return nil, fmt.Errorf("parameter name already exists")
		}
	}
	values, err := paramfile.ParseValues(rawValues)
	if err != nil {
		return nil, err
	}

	out := make(pairwise.Parameters, len(params))
	copy(out, params)
	if editing < 0 {
		return append(out, pairwise.Parameter{Name: name, Values: values}), nil
	}
	out[editing] = pairwise.Parameter{Name: name, Values: values}
	return out, nil
}

func (m model) View() string {
	if !m.ready {
		return "Loading editor..."
	}

	title := m.theme.Bold.Render("pairgen — pairwise test case generator")

	switch m.mode {
	case modeResults:
		help := m.theme.Muted.Render("↑/↓ scroll · esc back")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.results.View(), "", help)
	case modeEditName, modeEditValues:
		verb := "Add parameter"
		if m.editing >= 0 {
			verb = "Edit parameter"
		}
		form := lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Primary.Render(verb),
			"  Name:   "+m.nameInput.View(),
			"  Values: "+m.valuesInput.View(),
		)
		help := m.theme.Muted.Render("enter next/confirm · esc cancel")
		return lipgloss.JoinVertical(lipgloss.Left, title, "", form, "", m.statusLine(), help)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, title, "", m.paramList(), "", m.statusLine(),
			m.theme.Muted.Render("↑/↓ navigate · a add · e edit · d delete · g generate · q quit"))
	}
}

func (m model) paramList() string {
	var lines []string
	for i, p := range m.params {
		line := fmt.Sprintf("%s: %s", p.Name, strings.Join(p.Values, ", "))
		if i == m.selected {
			lines = append(lines, m.theme.Primary.Render("▸ "+line))
		} else {
			lines = append(lines, "  "+line)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, m.theme.Muted.Render("  no parameters — press a to add one"))
	}
	return strings.Join(lines, "\n")
}

func (m model) statusLine() string {
	if m.status == "" {
		return ""
	}
	return m.theme.Warning.Render(m.status)
}
