package games

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/minhtran/lingo/internal/game"
	"github.com/minhtran/lingo/internal/storage"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// saveResult persists a finished round. Failures are logged and
// swallowed: history is a convenience, not a gameplay dependency.
func saveResult(log *zap.Logger, results storage.GameResultRepo, roundID string, res game.Result) {
	if results == nil {
		return
	}
	err := results.Append(&storage.GameResult{
		RoundID:      roundID,
		GameKind:     string(res.Kind),
		Score:        res.Score,
		CorrectCount: res.CorrectCount,
		TotalItems:   res.TotalItems,
		DurationSecs: res.DurationSecs,
		EndedReason:  string(res.Reason),
	})
	if err != nil && log != nil {
		log.Warn("game result write failed",
			zap.String("round", roundID),
			zap.Error(err))
	}
}

// renderResult renders the end-of-round summary.
func renderResult(res game.Result, width int) string {
	headline := "Round complete!"
	if res.Reason == game.EndedByTimeout {
		headline = "Time's up!"
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render(headline))
	b.WriteString("\n\n")
	b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).
		Render(fmt.Sprintf("+%d points", res.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).
		Render(fmt.Sprintf("%d of %d in %ds", res.CorrectCount, res.TotalItems, res.DurationSecs)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Enter to play again · Esc for game menu"))
	return b.String()
}

// renderTimer renders the score and countdown status line.
func renderTimer(score, remaining, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Score: %d", score))

	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("0:%02d", remaining))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}
