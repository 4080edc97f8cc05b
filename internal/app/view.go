package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NDC Format Converter (10 <-> 11 digits)"))
	b.WriteString("\n\n")

	switch m.step {
	case stepDirection:
		b.WriteString("Select conversion type:\n\n")
		for i, d := range directions {
			cursor := "  "
			line := fmt.Sprintf("%d. Convert %s", i+1, d.Label())
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
				line = cursorStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString(helpStyle.Render("\nup/down to move, enter to select, q to quit\n"))

	case stepFile:
		b.WriteString("Path to your input file (CSV or Excel):\n\n")
		b.WriteString(m.fileInput.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render("\n" + m.err.Error() + "\n"))
		}
		b.WriteString(helpStyle.Render("\nenter to continue, esc to go back\n"))

	case stepColumn:
		b.WriteString("Select the column containing NDCs:\n\n")
		for i, col := range m.columns {
			cursor := "  "
			line := fmt.Sprintf("%d. %s", i+1, col)
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
				line = cursorStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString(helpStyle.Render("\nup/down to move, enter to select, esc to go back\n"))

	case stepOutput:
		b.WriteString("Output filename:\n\n")
		b.WriteString(m.outputInput.View())
		b.WriteString(helpStyle.Render("\n\nenter to convert, esc to go back\n"))

	case stepRunning:
		b.WriteString(m.spin.View())
		b.WriteString(" Processing...\n")

	case stepDone:
		if m.err != nil {
			b.WriteString(errorStyle.Render("Conversion failed: " + m.err.Error()))
			b.WriteString("\n")
		} else if m.result != nil {
			b.WriteString(successStyle.Render("Done."))
			b.WriteString("\n\n")
			b.WriteString(m.result.Summary())
		}
		b.WriteString(helpStyle.Render("\npress any key to exit\n"))
	}

	return b.String()
}
