package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/minicube"
)

// styles groups the lipgloss styles used by every command. With color
// disabled all of them render plain text.
type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	solved lipgloss.Style
	moved  lipgloss.Style
	errorS lipgloss.Style
	help   lipgloss.Style
	box    lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		solved: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		moved: lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")),
		errorS: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1),
	}
}

// renderState draws one row per slot. Slots whose corner is displaced or
// twisted are highlighted.
func (st styles) renderState(s minicube.State) string {
	var b strings.Builder
	b.WriteString(st.title.Render("slot  corner  twist"))
	for slot := 0; slot < minicube.NumCorners; slot++ {
		c, o := s.CornerAt(slot)
		row := fmt.Sprintf("%-4s  %-6s  %d", minicube.Corner(slot), c, o)
		if int(c) != slot || o != 0 {
			row = st.moved.Render(row)
		}
		b.WriteString("\n")
		b.WriteString(row)
	}
	return st.box.Render(b.String())
}

// renderRaw prints the permutation and orientation arrays.
func (st styles) renderRaw(s minicube.State) string {
	return st.status.Render(s.String())
}

// renderSolved reports the evaluator result.
func (st styles) renderSolved(s minicube.State) string {
	if s.IsSolved() {
		return st.solved.Render("Solved: yes")
	}
	return st.status.Render(fmt.Sprintf("Solved: no (twist %d)", s.Twist()))
}
