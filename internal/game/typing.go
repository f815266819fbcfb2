package game

import (
	"math/rand"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/randutil"
)

// TypingRound is the timed typing race: the translation is shown as a
// prompt and the learner types the source-language term. Every keystroke
// is evaluated live.
type TypingRound struct {
	rng      *rand.Rand
	reporter Reporter

	words     []catalog.Word
	index     int
	input     string
	score     int
	completed int
	remaining int
	status    Status
	reason    EndReason
}

// NewTypingRound creates an unstarted typing race round.
func NewTypingRound(rng *rand.Rand, reporter Reporter) *TypingRound {
	return &TypingRound{rng: rng, reporter: reporter, status: StatusNotStarted}
}

// Start samples the round's word pool and resets timer, score, and input.
func (r *TypingRound) Start(pool []catalog.Word) {
	r.words = randutil.Sample(r.rng, pool, RoundWords)
	r.index = 0
	r.input = ""
	r.score = 0
	r.completed = 0
	r.remaining = RoundSeconds
	r.status = StatusActive
}

// SetInput replaces the typed text and evaluates it against the current
// term, case-insensitive and trimmed. An exact match awards
// PointsPerTypedWord, clears the input, and advances; exhausting the
// pool ends the round.
func (r *TypingRound) SetInput(text string) {
	if r.status != StatusActive {
		return
	}

	r.input = text
	if normalize(text) != normalize(r.words[r.index].Term) {
		return
	}

	r.score += PointsPerTypedWord
	r.completed++
	r.index++
	r.input = ""
	if r.index >= len(r.words) {
		r.end(EndedByCompletion)
	}
}

// Tick advances the countdown by one second; zero ends the round with
// whatever score has accumulated.
func (r *TypingRound) Tick() {
	if r.status != StatusActive {
		return
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.end(EndedByTimeout)
	}
}

// Abandon discards the round. Nothing is reported.
func (r *TypingRound) Abandon() {
	if r.status == StatusEnded || r.status == StatusNotStarted {
		return
	}
	r.status = StatusEnded
	r.reason = EndedByAbandon
}

func (r *TypingRound) end(reason EndReason) {
	r.status = StatusEnded
	r.reason = reason
	if r.reporter != nil {
		r.reporter.AddPoints(r.score)
	}
}

// Prompt returns the translation the learner must type the term for.
func (r *TypingRound) Prompt() string {
	if r.index >= len(r.words) {
		return ""
	}
	return r.words[r.index].Translation
}

// Input returns the current typed text.
func (r *TypingRound) Input() string { return r.input }

// Score returns the accumulated round score.
func (r *TypingRound) Score() int { return r.score }

// Completed returns how many words have been typed correctly.
func (r *TypingRound) Completed() int { return r.completed }

// Remaining returns the seconds left on the round timer.
func (r *TypingRound) Remaining() int { return r.remaining }

// Status returns the round lifecycle state.
func (r *TypingRound) Status() Status { return r.status }

// Total returns the number of words in the round pool.
func (r *TypingRound) Total() int { return len(r.words) }

// Result summarizes the finished round.
func (r *TypingRound) Result() Result {
	return Result{
		Kind:         KindTyping,
		Score:        r.score,
		CorrectCount: r.completed,
		TotalItems:   len(r.words),
		DurationSecs: RoundSeconds - r.remaining,
		Reason:       r.reason,
	}
}
