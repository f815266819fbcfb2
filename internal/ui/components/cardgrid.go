package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/minhtran/lingo/internal/ui/theme"
)

// GridCard is one tile in a card grid.
type GridCard struct {
	Label   string
	FaceUp  bool
	Matched bool
}

// CardGrid renders face-down and face-up cards in rows.
type CardGrid struct {
	Cards    []GridCard
	Columns  int
	Cursor   int
	CellWide int
}

// NewCardGrid creates a grid with the given column count.
func NewCardGrid(cards []GridCard, columns int) CardGrid {
	return CardGrid{
		Cards:    cards,
		Columns:  columns,
		CellWide: 16,
	}
}

// MoveCursor shifts the cursor by the given row/column delta, clamped
// to the grid.
func (g *CardGrid) MoveCursor(dRow, dCol int) {
	if len(g.Cards) == 0 || g.Columns <= 0 {
		return
	}
	next := g.Cursor + dRow*g.Columns + dCol
	if next >= 0 && next < len(g.Cards) {
		g.Cursor = next
	}
}

// View renders the grid.
func (g CardGrid) View() string {
	if g.Columns <= 0 {
		return ""
	}

	cell := lipgloss.NewStyle().
		Width(g.CellWide).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	var rows []string
	for start := 0; start < len(g.Cards); start += g.Columns {
		end := start + g.Columns
		if end > len(g.Cards) {
			end = len(g.Cards)
		}

		var cells []string
		for i := start; i < end; i++ {
			c := g.Cards[i]

			label := fmt.Sprintf("%d", i+1)
			style := cell.BorderForeground(theme.Border).Foreground(theme.TextDim)

			switch {
			case c.Matched:
				label = c.Label
				style = cell.BorderForeground(theme.Success).Foreground(theme.Success).Faint(true)
			case c.FaceUp:
				label = c.Label
				style = cell.BorderForeground(theme.Accent).Foreground(theme.Text).Bold(true)
			}

			if i == g.Cursor && !c.Matched {
				style = style.BorderForeground(theme.Primary)
			}

			cells = append(cells, style.Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
