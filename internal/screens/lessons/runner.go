package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/lesson"
	"github.com/minhtran/lingo/internal/router"
	"github.com/minhtran/lingo/internal/screen"
	"github.com/minhtran/lingo/internal/speech"
	"github.com/minhtran/lingo/internal/ui/components"
	"github.com/minhtran/lingo/internal/ui/layout"
	"github.com/minhtran/lingo/internal/ui/theme"
)

// runnerScreen walks a learner through one lesson run.
type runnerScreen struct {
	run     *lesson.Run
	speaker speech.Speaker
	lang    string

	mc    components.MultiChoice
	input components.TextInput
}

var _ screen.Screen = (*runnerScreen)(nil)
var _ screen.KeyHintProvider = (*runnerScreen)(nil)

func newRunner(run *lesson.Run, speaker speech.Speaker, lang string) *runnerScreen {
	s := &runnerScreen{
		run:     run,
		speaker: speaker,
		lang:    lang,
	}
	s.setupExercise()
	return s
}

// setupExercise prepares the input widget for the current exercise.
func (s *runnerScreen) setupExercise() {
	ex := s.run.Current()
	switch ex.Kind {
	case catalog.KindMultipleChoice:
		correct := 0
		for i, opt := range ex.Options {
			if opt == ex.CorrectAnswer {
				correct = i
			}
		}
		s.mc = components.NewMultiChoice(ex.Question, ex.Options, correct)
	case catalog.KindFillBlank:
		s.input = components.NewTextInput("Type your answer...", 40)
	}
}

func (s *runnerScreen) Init() tea.Cmd {
	if s.run.Current().Kind == catalog.KindFillBlank {
		return s.input.Init()
	}
	return nil
}

func (s *runnerScreen) Title() string {
	return s.run.Lesson().Title
}

func (s *runnerScreen) KeyHints() []layout.KeyHint {
	switch s.run.Phase() {
	case lesson.PhaseAnswered:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case lesson.PhaseComplete:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
	if !s.run.Current().Gradable() {
		return []layout.KeyHint{
			{Key: "P", Description: "Play"},
			{Key: "S", Description: "Skip"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *runnerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)

	switch s.run.Phase() {
	case lesson.PhaseComplete:
		if isKey && (kmsg.String() == "enter" || kmsg.String() == "esc") {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case lesson.PhaseAnswered:
		if isKey {
			if s.run.Next() {
				s.setupExercise()
				return s, s.Init()
			}
		}
		return s, nil
	}

	ex := s.run.Current()

	if !ex.Gradable() {
		if isKey {
			switch kmsg.String() {
			case "p":
				s.speaker.Speak(ex.CorrectAnswer, s.lang)
			case "s":
				s.run.Skip()
			}
		}
		return s, nil
	}

	switch ex.Kind {
	case catalog.KindMultipleChoice:
		if isKey && kmsg.String() == "enter" {
			if s.mc.Selected >= 0 && s.mc.Selected < len(ex.Options) {
				s.run.Submit(ex.Options[s.mc.Selected])
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		return s, cmd

	case catalog.KindFillBlank:
		if isKey && kmsg.String() == "enter" {
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			s.run.Submit(s.input.Value())
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *runnerScreen) View(width, height int) string {
	switch s.run.Phase() {
	case lesson.PhaseComplete:
		return s.renderComplete(width)
	case lesson.PhaseAnswered:
		return s.renderFeedback(width)
	}
	return s.renderExercise(width)
}

func (s *runnerScreen) renderExercise(width int) string {
	ex := s.run.Current()

	progressLine := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Exercise %d of %d", s.run.Index()+1, s.run.Total()))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(progressLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if !ex.Gradable() {
		b.WriteString(theme.Body.Bold(true).Render("  " + ex.Question))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  This exercise type is not supported in the terminal."))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Press S to skip (counts as incorrect)."))
		return b.String()
	}

	switch ex.Kind {
	case catalog.KindMultipleChoice:
		b.WriteString(s.mc.View())
	case catalog.KindFillBlank:
		b.WriteString(theme.Body.Bold(true).Render("  " + ex.Question))
		b.WriteString("\n\n")
		b.WriteString("  " + s.input.View())
	}

	return b.String()
}

func (s *runnerScreen) renderFeedback(width int) string {
	ex := s.run.Current()

	var b strings.Builder
	b.WriteString("\n\n")
	if s.run.LastResult() {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Not quite."))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Width(width).Render("Answer: " + ex.CorrectAnswer))
	}

	if ex.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(ex.Explanation))
	}

	return b.String()
}

func (s *runnerScreen) renderComplete(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(width).Render("Lesson finished"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("Score: %d%%", s.run.Score())))
	b.WriteString("\n")

	if s.run.CompletedNow() {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Lesson complete! +100 points"))
	} else if s.run.Score() < lesson.PassThreshold {
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("You need %d%% to complete the lesson. Try again!", lesson.PassThreshold)))
	}

	return b.String()
}
