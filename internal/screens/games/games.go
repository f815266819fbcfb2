// Package games implements the mini-game screens: the picker, the
// matching quiz, the typing race, and the memory pairing game. Screens
// drive the round state machines with key input and timer ticks and
// persist each finished round.
package games

import (
	"math/rand"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/router"
	"github.com/minhtran/lingo/internal/screen"
	"github.com/minhtran/lingo/internal/storage"
	"github.com/minhtran/lingo/internal/ui/components"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// PickerScreen selects which mini-game to play.
type PickerScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)

// New creates the game picker.
func New(prog *progress.Store, results storage.GameResultRepo, log *zap.Logger, rng *rand.Rand) *PickerScreen {
	items := []components.MenuItem{
		{Label: "MATCHING QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newMatchScreen(prog, results, log, rng)}
			}
		}},
		{Label: "TYPING RACE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newTypingScreen(prog, results, log, rng)}
			}
		}},
		{Label: "MEMORY PAIRING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newMemoryScreen(prog, results, log, rng)}
			}
		}},
	}

	return &PickerScreen{menu: components.NewMenu(items)}
}

func (s *PickerScreen) Init() tea.Cmd {
	return nil
}

func (s *PickerScreen) Title() string {
	return "Games"
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PickerScreen) View(width, height int) string {
	intro := theme.Subtitle.Width(width).Render("60 seconds on the clock. Score as many as you can.")
	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.menu.View())
	return "\n" + intro + "\n\n" + menu
}
