package home

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/router"
	"github.com/minhtran/lingo/internal/screen"
	"github.com/minhtran/lingo/internal/screens/flashcards"
	"github.com/minhtran/lingo/internal/screens/games"
	"github.com/minhtran/lingo/internal/screens/lessons"
	"github.com/minhtran/lingo/internal/screens/stats"
	"github.com/minhtran/lingo/internal/speech"
	"github.com/minhtran/lingo/internal/storage"
	"github.com/minhtran/lingo/internal/ui/components"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
	prog *progress.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(prog *progress.Store, results storage.GameResultRepo, log *zap.Logger, speaker speech.Speaker, lang string, rng *rand.Rand) *HomeScreen {
	items := []components.MenuItem{
		{Label: "FLASHCARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: flashcards.New(prog, speaker, lang, rng)}
			}
		}},
		{Label: "LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New(prog, speaker, lang)}
			}
		}},
		{Label: "GAMES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: games.New(prog, results, log, rng)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(prog, results)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		prog: prog,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.prog.Current()

	title := theme.Title.Width(width).Render("L I N G O")
	subtitle := theme.Subtitle.Width(width).Render("English · Tiếng Việt")

	statsLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d words learned   %d lessons done   %d day streak",
			len(p.WordsLearned), len(p.LessonsCompleted), p.CurrentStreak))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	sections := []string{
		"",
		title,
		subtitle,
		"",
		statsLine,
		"",
		menu,
	}

	return strings.Join(sections, "\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}
