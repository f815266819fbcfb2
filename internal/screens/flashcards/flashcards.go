// Package flashcards implements the flashcard review screen: flip
// through the word catalog, reveal translations, and grade recall.
package flashcards

import (
	"fmt"
	"math/rand"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/randutil"
	"github.com/minhtran/lingo/internal/screen"
	"github.com/minhtran/lingo/internal/speech"
	"github.com/minhtran/lingo/internal/ui/layout"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// FlashcardsScreen cycles through catalog words as flip cards.
type FlashcardsScreen struct {
	prog    *progress.Store
	speaker speech.Speaker
	lang    string
	rng     *rand.Rand

	words    []catalog.Word
	index    int
	revealed bool

	categories []string
	catIdx     int
	levels     []string
	lvlIdx     int
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates the flashcard screen over the full catalog.
func New(prog *progress.Store, speaker speech.Speaker, lang string, rng *rand.Rand) *FlashcardsScreen {
	s := &FlashcardsScreen{
		prog:       prog,
		speaker:    speaker,
		lang:       lang,
		rng:        rng,
		categories: append([]string{"all"}, catalog.Categories()...),
		levels: []string{
			"all",
			string(catalog.LevelBeginner),
			string(catalog.LevelIntermediate),
			string(catalog.LevelAdvanced),
		},
	}
	s.reload()
	return s
}

// reload re-filters and reshuffles the deck for the active filters.
func (s *FlashcardsScreen) reload() {
	filtered := catalog.FilterWords(s.categories[s.catIdx], catalog.Level(s.levels[s.lvlIdx]))
	s.words = randutil.Shuffle(s.rng, filtered)
	s.index = 0
	s.revealed = false
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if !s.revealed {
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "P", Description: "Pronounce"},
			{Key: "C/L", Description: "Filters"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "E", Description: "Easy +5"},
		{Key: "H", Description: "Hard +10"},
		{Key: "N", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if len(s.words) == 0 {
		switch kmsg.String() {
		case "c":
			s.catIdx = (s.catIdx + 1) % len(s.categories)
			s.reload()
		case "l":
			s.lvlIdx = (s.lvlIdx + 1) % len(s.levels)
			s.reload()
		}
		return s, nil
	}

	switch kmsg.String() {
	case " ", "space", "enter":
		s.revealed = true
	case "p":
		s.speaker.Speak(s.words[s.index].Term, s.lang)
	case "e":
		if s.revealed {
			s.grade(progress.PointsFlashcardEasy)
		}
	case "h":
		if s.revealed {
			s.grade(progress.PointsFlashcardHard)
		}
	case "n", "right":
		s.next()
	case "c":
		s.catIdx = (s.catIdx + 1) % len(s.categories)
		s.reload()
	case "l":
		s.lvlIdx = (s.lvlIdx + 1) % len(s.levels)
		s.reload()
	}

	return s, nil
}

// grade records the current word as learned, awards the difficulty
// bonus, and moves to the next card.
func (s *FlashcardsScreen) grade(points int) {
	s.prog.RecordWordsLearned([]string{s.words[s.index].ID})
	s.prog.AddPoints(points)
	s.next()
}

func (s *FlashcardsScreen) next() {
	s.index = (s.index + 1) % len(s.words)
	s.revealed = false
}

func (s *FlashcardsScreen) View(width, height int) string {
	filterLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("category: %s   level: %s", s.categories[s.catIdx], s.levels[s.lvlIdx]))

	if len(s.words) == 0 {
		empty := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nNo words match these filters.")
		return filterLine + empty
	}

	w := s.words[s.index]

	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(w.Term))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(w.Pronunciation))
	b.WriteString("\n\n")

	if s.revealed {
		b.WriteString(theme.Correct.Render(w.Translation))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("“" + w.Example + "”"))
	} else {
		b.WriteString(theme.Hint.Render("· · ·"))
	}

	card := theme.Card.Width(44).Align(lipgloss.Center).Render(b.String())

	counter := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("card %d of %d", s.index+1, len(s.words)))

	body := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card)

	return "\n" + filterLine + "\n\n" + body + "\n" + counter
}
