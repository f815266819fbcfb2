// Package game implements the three mini-game round state machines:
// the matching quiz, the timed typing race, and the memory pairing game.
// The machines are pure state: a screen layer drives them with user
// actions and one-second timer ticks, and renders whatever they expose.
package game

import (
	"strings"
	"time"
)

// Kind identifies a mini-game variant.
type Kind string

const (
	KindMatch  Kind = "match"
	KindTyping Kind = "typing"
	KindMemory Kind = "memory"
)

// Status is the lifecycle state of a round.
type Status int

const (
	StatusNotStarted Status = iota
	StatusActive
	StatusResolving // a pending pair or answer reveal is on display
	StatusEnded
)

// EndReason distinguishes how a round ended.
type EndReason string

const (
	EndedByCompletion EndReason = "completion"
	EndedByTimeout    EndReason = "timeout"
	EndedByAbandon    EndReason = "abandon"
)

// Round geometry and scoring constants.
const (
	RoundWords   = 20
	RoundSeconds = 60
	MemoryPairs  = 6

	MatchOptionCount = 4

	PointsPerMatch     = 10
	PointsPerTypedWord = 15
	PointsPerPair      = 20
)

// Display delays gating the two feedback transitions. The screen layer
// schedules these; the machines only expose when one is pending.
const (
	RevealDelay   = 1500 * time.Millisecond
	FlipBackDelay = time.Second
)

// Reporter receives the final score of a finished round. Abandoned
// rounds report nothing.
type Reporter interface {
	AddPoints(amount int)
}

// Result summarizes a finished round for history and display.
type Result struct {
	Kind         Kind
	Score        int
	CorrectCount int
	TotalItems   int
	DurationSecs int
	Reason       EndReason
}

// normalize prepares learner input for comparison: trimmed and lowercased.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
