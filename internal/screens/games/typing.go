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
	"github.com/minhtran/lingo/internal/ui/components"
	"github.com/minhtran/lingo/internal/ui/layout"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// typingScreen drives the typing race round.
type typingScreen struct {
	round   *game.TypingRound
	results storage.GameResultRepo
	log     *zap.Logger
	rng     *rand.Rand
	prog    *progress.Store
	roundID string
	input   components.TextInput
	saved   bool
}

var _ screen.Screen = (*typingScreen)(nil)
var _ screen.KeyHintProvider = (*typingScreen)(nil)

func newTypingScreen(prog *progress.Store, results storage.GameResultRepo, log *zap.Logger, rng *rand.Rand) *typingScreen {
	s := &typingScreen{
		results: results,
		log:     log,
		rng:     rng,
		prog:    prog,
	}
	s.restart()
	return s
}

func (s *typingScreen) restart() {
	s.round = game.NewTypingRound(s.rng, s.prog)
	s.round.Start(catalog.Words())
	s.roundID = uuid.New().String()
	s.input = components.NewTextInput("Type the word...", 40)
	s.saved = false
}

func (s *typingScreen) Init() tea.Cmd {
	return tea.Batch(tickCmd(s.roundID), s.input.Init())
}

func (s *typingScreen) Title() string {
	return "Typing Race"
}

func (s *typingScreen) KeyHints() []layout.KeyHint {
	if s.round.Status() == game.StatusEnded {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "type", Description: "Match the word"},
		{Key: "Esc", Description: "Quit round"},
	}
}

func (s *typingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

	case tea.KeyMsg:
		if s.round.Status() == game.StatusEnded {
			if msg.String() == "enter" {
				s.restart()
				return s, tea.Batch(tickCmd(s.roundID), s.input.Init())
			}
			return s, nil
		}
	}

	if s.round.Status() != game.StatusActive {
		return s, nil
	}

	// Every keystroke is fed to the round; a completed word clears the
	// input box for the next prompt.
	prev := s.round.Completed()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.round.SetInput(s.input.Value())

	if s.round.Status() == game.StatusEnded {
		s.finish()
		return s, nil
	}
	if s.round.Completed() != prev {
		s.input = components.NewTextInput("Type the word...", 40)
		return s, s.input.Init()
	}
	return s, cmd
}

func (s *typingScreen) finish() {
	if s.saved {
		return
	}
	s.saved = true
	saveResult(s.log, s.results, s.roundID, s.round.Result())
}

func (s *typingScreen) View(width, height int) string {
	if s.round.Status() == game.StatusEnded {
		return renderResult(s.round.Result(), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderTimer(s.round.Score(), s.round.Remaining(), width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.round.Prompt())
	b.WriteString(prompt)
	b.WriteString("\n\n")

	inputLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.input.View())
	b.WriteString(inputLine)
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  typed %d of %d", s.round.Completed(), s.round.Total())))

	return b.String()
}
