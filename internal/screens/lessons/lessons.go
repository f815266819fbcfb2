// Package lessons implements the lesson list and the lesson runner
// screens.
package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/lesson"
	"github.com/minhtran/lingo/internal/progress"
	"github.com/minhtran/lingo/internal/router"
	"github.com/minhtran/lingo/internal/screen"
	"github.com/minhtran/lingo/internal/speech"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// ListScreen shows all lessons with their lock and completion state.
type ListScreen struct {
	prog     *progress.Store
	speaker  speech.Speaker
	lang     string
	lessons  []catalog.Lesson
	selected int
	notice   string
}

var _ screen.Screen = (*ListScreen)(nil)

// New creates the lesson list screen.
func New(prog *progress.Store, speaker speech.Speaker, lang string) *ListScreen {
	return &ListScreen{
		prog:    prog,
		speaker: speaker,
		lang:    lang,
		lessons: catalog.Lessons(),
	}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Title() string {
	return "Lessons"
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		s.notice = ""
	case "down", "j":
		if s.selected < len(s.lessons)-1 {
			s.selected++
		}
		s.notice = ""
	case "enter":
		return s.open()
	}

	return s, nil
}

// open starts the selected lesson unless it is locked. Lock state is
// checked at press time so finishing a lesson unlocks the next without
// a screen rebuild.
func (s *ListScreen) open() (screen.Screen, tea.Cmd) {
	p := s.prog.Current()
	if lesson.Locked(s.lessons, s.selected, p.HasCompletedLesson) {
		s.notice = "Complete the previous lesson first."
		return s, nil
	}

	l := s.lessons[s.selected]
	run := lesson.NewRun(l, p.HasCompletedLesson(l.ID), s.prog)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: newRunner(run, s.speaker, s.lang)}
	}
}

func (s *ListScreen) View(width, height int) string {
	p := s.prog.Current()

	var b strings.Builder
	b.WriteString("\n")

	for i, l := range s.lessons {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)

		switch {
		case p.HasCompletedLesson(l.ID):
			marker = "✓ "
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case lesson.Locked(s.lessons, i, p.HasCompletedLesson):
			marker = "⊘ "
			style = theme.Locked
		}

		line := fmt.Sprintf("  %s%s  (%d exercises, %s)", marker, l.Title, len(l.Exercises), l.Level)
		if i == s.selected {
			line = "▸" + line[1:]
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + s.notice))
	}

	return b.String()
}
