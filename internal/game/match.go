package game

import (
	"math/rand"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/randutil"
)

// MatchRound is the matching quiz: the learner picks the translation of
// the shown term from four options.
type MatchRound struct {
	rng      *rand.Rand
	reporter Reporter

	words     []catalog.Word
	index     int
	options   []string
	chosen    string
	score     int
	correct   int
	remaining int
	status    Status
	reason    EndReason
}

// NewMatchRound creates an unstarted matching quiz round.
func NewMatchRound(rng *rand.Rand, reporter Reporter) *MatchRound {
	return &MatchRound{rng: rng, reporter: reporter, status: StatusNotStarted}
}

// Start samples the round's word pool from the catalog words, resets the
// timer and score, and generates the first option set.
func (r *MatchRound) Start(pool []catalog.Word) {
	r.words = randutil.Sample(r.rng, pool, RoundWords)
	r.index = 0
	r.score = 0
	r.correct = 0
	r.remaining = RoundSeconds
	r.chosen = ""
	r.status = StatusActive
	r.generateOptions()
}

// generateOptions builds the display options for the current word: three
// distinct incorrect translations drawn from the rest of the pool plus
// the correct one, shuffled. Exactly one option is correct.
func (r *MatchRound) generateOptions() {
	current := r.words[r.index]
	rest := make([]catalog.Word, 0, len(r.words)-1)
	for _, w := range r.words {
		if w.ID != current.ID {
			rest = append(rest, w)
		}
	}

	wrong := randutil.Sample(r.rng, rest, MatchOptionCount-1)
	options := make([]string, 0, MatchOptionCount)
	options = append(options, current.Translation)
	for _, w := range wrong {
		options = append(options, w.Translation)
	}
	r.options = randutil.Shuffle(r.rng, options)
}

// Choose submits an option for the current question. While the question
// is unresolved the first choice locks further input; later calls are
// rejected. A correct choice awards PointsPerMatch.
func (r *MatchRound) Choose(option string) bool {
	if r.status != StatusActive {
		return false
	}

	r.chosen = option
	r.status = StatusResolving
	if option == r.words[r.index].Translation {
		r.score += PointsPerMatch
		r.correct++
	}
	return true
}

// Advance moves past the resolved question after the reveal delay:
// on to the next word with fresh options, or round end if the pool is
// exhausted.
func (r *MatchRound) Advance() {
	if r.status != StatusResolving {
		return
	}

	r.index++
	r.chosen = ""
	if r.index >= len(r.words) {
		r.end(EndedByCompletion)
		return
	}
	r.status = StatusActive
	r.generateOptions()
}

// Tick advances the countdown by one second. Reaching zero ends the
// round immediately regardless of question progress.
func (r *MatchRound) Tick() {
	if r.status != StatusActive && r.status != StatusResolving {
		return
	}
	r.remaining--
	if r.remaining <= 0 {
		r.remaining = 0
		r.end(EndedByTimeout)
	}
}

// Abandon discards the round. Nothing is reported.
func (r *MatchRound) Abandon() {
	if r.status == StatusEnded || r.status == StatusNotStarted {
		return
	}
	r.status = StatusEnded
	r.reason = EndedByAbandon
}

func (r *MatchRound) end(reason EndReason) {
	r.status = StatusEnded
	r.reason = reason
	if r.reporter != nil {
		r.reporter.AddPoints(r.score)
	}
}

// CurrentWord returns the word under question.
func (r *MatchRound) CurrentWord() catalog.Word {
	if r.index >= len(r.words) {
		return catalog.Word{}
	}
	return r.words[r.index]
}

// Options returns the current display options.
func (r *MatchRound) Options() []string { return r.options }

// Chosen returns the locked-in option, or "" while unresolved.
func (r *MatchRound) Chosen() string { return r.chosen }

// LastCorrect reports whether the locked-in choice was correct.
func (r *MatchRound) LastCorrect() bool {
	return r.chosen != "" && r.index < len(r.words) && r.chosen == r.words[r.index].Translation
}

// Score returns the accumulated round score.
func (r *MatchRound) Score() int { return r.score }

// Remaining returns the seconds left on the round timer.
func (r *MatchRound) Remaining() int { return r.remaining }

// Status returns the round lifecycle state.
func (r *MatchRound) Status() Status { return r.status }

// Index returns the zero-based position in the word pool.
func (r *MatchRound) Index() int { return r.index }

// Total returns the number of words in the round pool.
func (r *MatchRound) Total() int { return len(r.words) }

// Result summarizes the finished round.
func (r *MatchRound) Result() Result {
	return Result{
		Kind:         KindMatch,
		Score:        r.score,
		CorrectCount: r.correct,
		TotalItems:   len(r.words),
		DurationSecs: RoundSeconds - r.remaining,
		Reason:       r.reason,
	}
}
