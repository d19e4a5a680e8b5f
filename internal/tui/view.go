package tui

import (
	"fmt"
	"strings"
)

var inputLabels = []string{"Target", "Max int", "Exclude", "Max numbers", "Top"}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Number Combination Solver"))
	b.WriteString("\n\n")

	switch m.state {
	case stateForm:
		m.viewForm(&b)
	case stateSearching:
		m.viewSearching(&b)
	case stateResults:
		m.viewResults(&b)
	}

	return b.String()
}

func (m Model) viewForm(b *strings.Builder) {
	for i, input := range m.inputs {
		label := inputLabels[i]
		if m.focus == i {
			label = m.styles.focused.Render("> " + label)
		} else {
			label = m.styles.label.Render("  " + label)
		}
		fmt.Fprintf(b, "%-28s %s\n", label, input.View())
	}
	b.WriteString("\n")

	for i, label := range toggleLabels {
		mark := " "
		if m.toggles[i] {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s", mark, label)
		if m.focus == numInputs+i {
			line = m.styles.focused.Render("> " + line)
		} else {
			line = m.styles.label.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.errText.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("tab/arrows move, space toggles, enter searches, esc quits"))
	b.WriteString("\n")
}

func (m Model) viewSearching(b *strings.Builder) {
	fmt.Fprintf(b, "%s Searching for %d...\n\n", m.spin.View(), m.target)
	for _, line := range m.progress {
		b.WriteString(m.styles.muted.Render("  " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("esc cancels"))
	b.WriteString("\n")
}

func (m Model) viewResults(b *strings.Builder) {
	if m.err != nil {
		b.WriteString(m.styles.errText.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(m.styles.muted.Render("enter/esc returns to the form, q quits"))
		b.WriteString("\n")
		return
	}

	if len(m.results) == 0 {
		fmt.Fprintf(b, "No solutions found for %d.\n", m.target)
	} else {
		fmt.Fprintf(b, "Solutions for %d:\n\n", m.target)
		for i, sol := range m.results {
			line := fmt.Sprintf("%2d. %s", i+1, sol.Expression)
			b.WriteString(m.styles.solution.Render(line))
			b.WriteString(m.styles.muted.Render(fmt.Sprintf("   (%d operators)", sol.OpCount)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("enter/esc returns to the form, q quits"))
	b.WriteString("\n")
}
