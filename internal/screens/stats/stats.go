// Package stats implements the progress dashboard: level, streak,
// achievements, recent game rounds, and the guarded progress reset.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/screen"
	"github.com/minhtran/lingo/internal/storage"
	"github.com/minhtran/lingo/internal/ui/components"
	"github.com/minhtran/lingo/internal/ui/layout"
	"github.com/minhtran/lingo/internal/ui/theme"
)

const recentRounds = 5

// StatsScreen shows the learner's accumulated progress.
type StatsScreen struct {
	prog         *progress.Store
	results      storage.GameResultRepo
	recent       []storage.GameResult
	confirmReset bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the progress dashboard.
func New(prog *progress.Store, results storage.GameResultRepo) *StatsScreen {
	s := &StatsScreen{
		prog:    prog,
		results: results,
	}
	s.loadRecent()
	return s
}

func (s *StatsScreen) loadRecent() {
	if s.results == nil {
		return
	}
	recent, err := s.results.Recent(recentRounds)
	if err != nil {
		return
	}
	s.recent = recent
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Erase everything"},
			{Key: "N", Description: "Keep my progress"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Reset progress"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmReset {
		switch kmsg.String() {
		case "y", "Y":
			s.prog.Reset()
			s.confirmReset = false
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	if kmsg.String() == "r" {
		s.confirmReset = true
	}

	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.confirmReset {
		return s.renderConfirm(width)
	}

	p := s.prog.Current()

	var b strings.Builder
	b.WriteString("\n")

	intoLevel := p.TotalPoints % progress.PointsPerLevel
	bar := components.NewProgressBar(
		fmt.Sprintf("  Level %d", p.Level),
		float64(intoLevel)/float64(progress.PointsPerLevel),
		false,
		min(width-6, 50),
	)
	b.WriteString(bar.View())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d / %d", intoLevel, progress.PointsPerLevel)))
	b.WriteString("\n\n")

	stat := func(label string, value int) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+label+": ") +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%d", value))
	}
	b.WriteString(stat("Total points", p.TotalPoints))
	b.WriteString("\n")
	b.WriteString(stat("Words learned", len(p.WordsLearned)))
	b.WriteString("\n")
	b.WriteString(stat("Lessons completed", len(p.LessonsCompleted)))
	b.WriteString("\n")
	b.WriteString(stat("Day streak", p.CurrentStreak))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Achievements"))
	b.WriteString("\n")
	for _, a := range progress.AllAchievements() {
		if p.HasAchievement(a.ID) {
			b.WriteString(theme.Correct.Render("  ✓ " + a.Name))
		} else {
			b.WriteString(theme.Locked.Render("  · " + a.Name))
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + a.Description))
		b.WriteString("\n")
	}

	if len(s.recent) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Recent games"))
		b.WriteString("\n")
		for _, r := range s.recent {
			line := fmt.Sprintf("  %-8s %3d pts  %d/%d  %s",
				r.GameKind, r.Score, r.CorrectCount, r.TotalItems, r.EndedReason)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *StatsScreen) renderConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
		Render("Reset all progress?"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).
		Render("Points, learned words, lessons, streak, and achievements will be erased."))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Y to confirm · N to cancel"))
	return b.String()
}
