package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	rowStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedHighlightStyle = selectedStyle.Bold(true)
	expressionStyle        = lipgloss.NewStyle().
				Foreground(lipgloss.Color("3")).
				Italic(true)
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(hintStyle.Render("no matching members"))
		b.WriteString("\n")

		return b.String()
	}

	end := min(m.offset+m.height, len(m.matches))

	for i := m.offset; i < end; i++ {
		b.WriteString(renderMatch(m.matches[i], i == m.cursor))
		b.WriteString("\n")
	}

	row := m.rows[m.matches[m.cursor].Index]

	b.WriteString(hintStyle.Render(fmt.Sprintf("%d/%d  ", m.cursor+1, len(m.matches))))
	b.WriteString(expressionStyle.Render(row.Expression))
	b.WriteString("\n")

	return b.String()
}

// renderMatch renders a row with the characters matching the query
// highlighted.
func renderMatch(match fuzzy.Match, selected bool) string {
	base, highlight := rowStyle, highlightStyle
	if selected {
		base, highlight = selectedStyle, selectedHighlightStyle
	}

	matchSet := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matchSet[idx] = true
	}

	var b strings.Builder

	if selected {
		b.WriteString(promptStyle.Render(prompt))
	} else {
		b.WriteString("  ")
	}

	for i, r := range match.Str {
		if matchSet[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
