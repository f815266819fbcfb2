package game

import (
	"math/rand"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/randutil"
)

// Card is one face of a word pair on the memory board. Text is what the
// card shows when face-up; PairText is the text of its partner card.
type Card struct {
	ID       string
	Text     string
	PairText string
	FaceUp   bool
	Matched  bool
}

// MemoryRound is the memory pairing game: twelve face-down cards, two
// per word (term side and translation side), matched by flipping pairs.
type MemoryRound struct {
	rng      *rand.Rand
	reporter Reporter

	cards     []Card
	pending   []int
	score     int
	matched   int
	remaining int
	status    Status
	reason    EndReason
}

// NewMemoryRound creates an unstarted memory pairing round.
func NewMemoryRound(rng *rand.Rand, reporter Reporter) *MemoryRound {
	return &MemoryRound{rng: rng, reporter: reporter, status: StatusNotStarted}
}

// Start builds the board: the first MemoryPairs words of a sampled pool
// become two cards each, shuffled into a fixed grid order.
func (r *MemoryRound) Start(pool []catalog.Word) {
	words := randutil.Sample(r.rng, pool, RoundWords)
	if len(words) > MemoryPairs {
		words = words[:MemoryPairs]
	}

	cards := make([]Card, 0, 2*len(words))
	for _, w := range words {
		cards = append(cards,
			Card{ID: w.ID + "-term", Text: w.Term, PairText: w.Translation},
			Card{ID: w.ID + "-trans", Text: w.Translation, PairText: w.Term},
		)
	}
	r.cards = randutil.Shuffle(r.rng, cards)
	r.pending = nil
	r.score = 0
	r.matched = 0
	r.remaining = RoundSeconds
	r.status = StatusActive
}

// Flip turns the card at index face-up. The flip is rejected while two
// cards await resolution, and for cards already face-up or matched.
// When the flip completes a pair, the pair resolves: a match marks both
// cards permanently and awards PointsPerPair; a mismatch leaves the
// round resolving until FlipBack is called after the display delay.
func (r *MemoryRound) Flip(index int) bool {
	if r.status != StatusActive {
		return false
	}
	if index < 0 || index >= len(r.cards) {
		return false
	}
	if len(r.pending) == 2 {
		return false
	}
	c := &r.cards[index]
	if c.FaceUp || c.Matched {
		return false
	}

	c.FaceUp = true
	r.pending = append(r.pending, index)
	if len(r.pending) == 2 {
		r.resolvePair()
	}
	return true
}

// resolvePair checks the two pending cards. The match rule is symmetric:
// each card's shown text must equal the other's tagged partner text.
func (r *MemoryRound) resolvePair() {
	a := &r.cards[r.pending[0]]
	b := &r.cards[r.pending[1]]

	if a.Text == b.PairText && b.Text == a.PairText {
		a.Matched = true
		b.Matched = true
		r.matched += 2
		r.score += PointsPerPair
		r.pending = nil
		if r.matched == len(r.cards) {
			r.end(EndedByCompletion)
		}
		return
	}

	// Mismatch: keep both face-up until the display delay elapses.
	r.status = StatusResolving
}

// FlipBack turns a mismatched pending pair face-down again and clears
// the pending buffer. No-op unless a mismatch is on display.
func (r *MemoryRound) FlipBack() {
	if r.status != StatusResolving {
		return
	}
	for _, i := range r.pending {
		r.cards[i].FaceUp = false
	}
	r.pending = nil
	r.status = StatusActive
}

// Tick advances the countdown by one second; zero ends the round.
func (r *MemoryRound) Tick() {
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
func (r *MemoryRound) Abandon() {
	if r.status == StatusEnded || r.status == StatusNotStarted {
		return
	}
	r.status = StatusEnded
	r.reason = EndedByAbandon
}

func (r *MemoryRound) end(reason EndReason) {
	r.status = StatusEnded
	r.reason = reason
	if r.reporter != nil {
		r.reporter.AddPoints(r.score)
	}
}

// Cards returns the board in grid order.
func (r *MemoryRound) Cards() []Card { return r.cards }

// MismatchPending reports whether a mismatched pair is on display
// awaiting FlipBack.
func (r *MemoryRound) MismatchPending() bool { return r.status == StatusResolving }

// Score returns the accumulated round score.
func (r *MemoryRound) Score() int { return r.score }

// MatchedCount returns how many cards are permanently matched.
func (r *MemoryRound) MatchedCount() int { return r.matched }

// Remaining returns the seconds left on the round timer.
func (r *MemoryRound) Remaining() int { return r.remaining }

// Status returns the round lifecycle state.
func (r *MemoryRound) Status() Status { return r.status }

// Result summarizes the finished round.
func (r *MemoryRound) Result() Result {
	return Result{
		Kind:         KindMemory,
		Score:        r.score,
		CorrectCount: r.matched / 2,
		TotalItems:   len(r.cards),
		DurationSecs: RoundSeconds - r.remaining,
		Reason:       r.reason,
	}
}
