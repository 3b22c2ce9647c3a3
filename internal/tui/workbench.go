// Package tui is an interactive workbench: pick an element, nudge its
// value, and watch the circuit re-solve.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/voltlab/internal/circuit"
	"github.com/san-kum/voltlab/internal/metrics"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	selBg  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
)

const valueStep = 1.1

type model struct {
	name     string
	elements []circuit.Element
	cursor   int
	result   *circuit.Result
	summary  map[string]float64
	solveErr error
}

func newModel(name string, elements []circuit.Element) model {
	m := model{name: name, elements: elements}
	m.resolve()
	return m
}

func (m *model) resolve() {
	c := circuit.New()
	for _, e := range m.elements {
		c.Add(e)
	}

	res, err := c.Solve()
	if err != nil {
		m.result = nil
		m.summary = nil
		m.solveErr = err
		return
	}
	m.result = res
	m.summary = metrics.Summary(c, res)
	m.solveErr = nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.elements)-1 {
			m.cursor++
		}
	case "left", "h":
		m.elements[m.cursor].Value /= valueStep
		m.resolve()
	case "right", "l":
		m.elements[m.cursor].Value *= valueStep
		m.resolve()
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("voltlab workbench"))
	b.WriteString(dim.Render(fmt.Sprintf("  [%s]", m.name)))
	b.WriteString("\n\n")

	for i, e := range m.elements {
		line := fmt.Sprintf("%-16s %-14s %.6g", e.Label, e.Kind, e.Value)
		if i == m.cursor {
			b.WriteString(selBg.Render("> " + line))
		} else {
			b.WriteString(white.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.solveErr != nil {
		b.WriteString(yellow.Render("solve failed: " + m.solveErr.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(green.Render(fmt.Sprintf("node voltage: %.6g V", m.result.Voltage())))
		b.WriteString("\n")
		for _, br := range m.result.Branches {
			b.WriteString(white.Render(fmt.Sprintf("  %-16s %.6g A", br.Label, br.Current)))
			b.WriteString("\n")
		}
		b.WriteString(dim.Render(fmt.Sprintf("power: %.6g W   kcl residual: %.3g A",
			m.summary["dissipated_power"], m.summary["kcl_residual"])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("↑/↓ select  ←/→ adjust value  q quit"))
	b.WriteString("\n")

	return b.String()
}

// Run launches the workbench over a copy of the given elements.
func Run(name string, elements []circuit.Element) error {
	elems := make([]circuit.Element, len(elements))
	copy(elems, elements)

	_, err := tea.NewProgram(newModel(name, elems)).Run()
	return err
}
