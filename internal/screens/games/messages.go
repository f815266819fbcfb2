package games

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/minhtran/lingo/internal/game"
)

// timerTickMsg is sent every second to advance the round countdown. It
// carries the ID of the round it was armed for; a tick still in flight
// when the player starts a fresh round carries the old ID and is dropped,
// so restarting never stacks a second tick chain.
type timerTickMsg struct {
	roundID string
}

// revealDoneMsg is sent when the answer reveal period ends.
type revealDoneMsg struct{}

// flipBackMsg is sent when mismatched memory cards should flip back down.
type flipBackMsg struct{}

// tickCmd returns a 1-second tick command for the given round.
func tickCmd(roundID string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{roundID: roundID}
	})
}

// revealCmd schedules the end of the answer reveal.
func revealCmd() tea.Cmd {
	return tea.Tick(game.RevealDelay, func(time.Time) tea.Msg {
		return revealDoneMsg{}
	})
}

// flipBackCmd schedules the mismatch flip-back.
func flipBackCmd() tea.Cmd {
	return tea.Tick(game.FlipBackDelay, func(time.Time) tea.Msg {
		return flipBackMsg{}
	})
}
