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

const memoryColumns = 4

// memoryScreen drives the memory pairing round.
type memoryScreen struct {
	round   *game.MemoryRound
	results storage.GameResultRepo
	log     *zap.Logger
	rng     *rand.Rand
	prog    *progress.Store
	roundID string
	cursor  int
	saved   bool
}

var _ screen.Screen = (*memoryScreen)(nil)
var _ screen.KeyHintProvider = (*memoryScreen)(nil)

func newMemoryScreen(prog *progress.Store, results storage.GameResultRepo, log *zap.Logger, rng *rand.Rand) *memoryScreen {
	s := &memoryScreen{
		results: results,
		log:     log,
		rng:     rng,
		prog:    prog,
	}
	s.restart()
	return s
}

func (s *memoryScreen) restart() {
	s.round = game.NewMemoryRound(s.rng, s.prog)
	s.round.Start(catalog.Words())
	s.roundID = uuid.New().String()
	s.cursor = 0
	s.saved = false
}

func (s *memoryScreen) Init() tea.Cmd {
	return tickCmd(s.roundID)
}

func (s *memoryScreen) Title() string {
	return "Memory Pairing"
}

func (s *memoryScreen) KeyHints() []layout.KeyHint {
	if s.round.Status() == game.StatusEnded {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Move"},
		{Key: "Enter", Description: "Flip"},
		{Key: "Esc", Description: "Quit round"},
	}
}

func (s *memoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

	case flipBackMsg:
		s.round.FlipBack()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *memoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.round.Status() == game.StatusEnded {
		if msg.String() == "enter" {
			s.restart()
			return s, tickCmd(s.roundID)
		}
		return s, nil
	}

	cards := s.round.Cards()
	move := func(dRow, dCol int) {
		next := s.cursor + dRow*memoryColumns + dCol
		if next >= 0 && next < len(cards) {
			s.cursor = next
		}
	}

	switch msg.String() {
	case "up", "k":
		move(-1, 0)
	case "down", "j":
		move(1, 0)
	case "left", "h":
		move(0, -1)
	case "right", "l":
		move(0, 1)
	case "enter", " ", "space":
		if s.round.Flip(s.cursor) && s.round.MismatchPending() {
			return s, flipBackCmd()
		}
		if s.round.Status() == game.StatusEnded {
			s.finish()
		}
	}

	return s, nil
}

func (s *memoryScreen) finish() {
	if s.saved {
		return
	}
	s.saved = true
	saveResult(s.log, s.results, s.roundID, s.round.Result())
}

func (s *memoryScreen) View(width, height int) string {
	if s.round.Status() == game.StatusEnded {
		return renderResult(s.round.Result(), width)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderTimer(s.round.Score(), s.round.Remaining(), width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	cards := s.round.Cards()
	grid := make([]components.GridCard, len(cards))
	for i, c := range cards {
		grid[i] = components.GridCard{
			Label:   c.Text,
			FaceUp:  c.FaceUp,
			Matched: c.Matched,
		}
	}

	g := components.NewCardGrid(grid, memoryColumns)
	g.Cursor = s.cursor

	board := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(g.View())
	b.WriteString(board)
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  pairs %d of %d", s.round.MatchedCount(), game.MemoryPairs)))

	return b.String()
}
