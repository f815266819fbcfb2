package games

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/game"
	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/screen"
	"github.com/minhtran/lingo/internal/storage"
	"github.com/minhtran/lingo/internal/ui/layout"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// matchScreen drives the matching quiz round.
type matchScreen struct {
	round    *game.MatchRound
	results  storage.GameResultRepo
	log      *zap.Logger
	rng      *rand.Rand
	prog     *progress.Store
	roundID  string
	selected int
	saved    bool
}

var _ screen.Screen = (*matchScreen)(nil)
var _ screen.KeyHintProvider = (*matchScreen)(nil)

func newMatchScreen(prog *progress.Store, results storage.GameResultRepo, log *zap.Logger, rng *rand.Rand) *matchScreen {
	s := &matchScreen{
		results: results,
		log:     log,
		rng:     rng,
		prog:    prog,
	}
	s.restart()
	return s
}

func (s *matchScreen) restart() {
	s.round = game.NewMatchRound(s.rng, s.prog)
	s.round.Start(catalog.Words())
	s.roundID = uuid.New().String()
	s.selected = 0
	s.saved = false
}

func (s *matchScreen) Init() tea.Cmd {
	return tickCmd(s.roundID)
}

func (s *matchScreen) Title() string {
	return "Matching Quiz"
}

func (s *matchScreen) KeyHints() []layout.KeyHint {
	if s.round.Status() == game.StatusEnded {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Pick"},
		{Key: "Enter", Description: "Pick selected"},
		{Key: "Esc", Description: "Quit round"},
	}
}

func (s *matchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.roundID != s.roundID || s.round.Status() == game.StatusEnded {
			return s, nil
		}
		s.round.Tick()
		if s.round.Status() == game.StatusEnded {
			s.finish()
			return s, nil
		}
		return s, tickCmd(s.roundID)

	case revealDoneMsg:
		s.round.Advance()
		if s.round.Status() == game.StatusEnded {
			s.finish()
			return s, nil
		}
		s.selected = 0
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *matchScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.round.Status() == game.StatusEnded {
		if msg.String() == "enter" {
			s.restart()
			return s, tickCmd(s.roundID)
		}
		return s, nil
	}

	if s.round.Status() != game.StatusActive {
		return s, nil
	}

	options := s.round.Options()
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(options)-1 {
			s.selected++
		}
	case "enter":
		return s.choose(s.selected)
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(options) {
			return s.choose(idx)
		}
	}

	return s, nil
}

func (s *matchScreen) choose(idx int) (screen.Screen, tea.Cmd) {
	options := s.round.Options()
	if idx < 0 || idx >= len(options) {
		return s, nil
	}
	if !s.round.Choose(options[idx]) {
		return s, nil
	}
	s.selected = idx
	return s, revealCmd()
}

func (s *matchScreen) finish() {
	if s.saved {
		return
	}
	s.saved = true
	saveResult(s.log, s.results, s.roundID, s.round.Result())
}

func (s *matchScreen) View(width, height int) string {
	if s.round.Status() == game.StatusEnded {
		return renderResult(s.round.Result(), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderTimer(s.round.Score(), s.round.Remaining(), width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	word := s.round.CurrentWord()
	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(word.Term)
	b.WriteString(question)
	b.WriteString("\n\n")

	resolving := s.round.Status() == game.StatusResolving
	correct := word.Translation

	for i, opt := range s.round.Options() {
		prefix := "  "
		if i == s.selected && !resolving {
			prefix = "▸ "
		}
		line := fmt.Sprintf("  %s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case resolving && opt == correct:
			style = theme.Correct
		case resolving && opt == s.round.Chosen():
			style = theme.Incorrect
		case resolving:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == s.selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  word %d of %d", s.round.Index()+1, s.round.Total())))

	return b.String()
}
