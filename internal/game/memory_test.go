package game

import (
	"math/rand"
	"testing"
)

// findPair returns the indices of a card and its partner on the board.
func findPair(r *MemoryRound, from int) (int, int) {
	cards := r.Cards()
	for i := from; i < len(cards); i++ {
		if cards[i].Matched || cards[i].FaceUp {
			continue
		}
		for j := 0; j < len(cards); j++ {
			if j == i || cards[j].Matched || cards[j].FaceUp {
				continue
			}
			if cards[i].Text == cards[j].PairText && cards[j].Text == cards[i].PairText {
				return i, j
			}
		}
	}
	return -1, -1
}

// findMismatch returns two unmatched card indices that do not pair.
func findMismatch(r *MemoryRound) (int, int) {
	cards := r.Cards()
	for i := range cards {
		for j := range cards {
			if i == j {
				continue
			}
			if cards[i].Text == cards[j].PairText && cards[j].Text == cards[i].PairText {
				continue
			}
			return i, j
		}
	}
	return -1, -1
}

func TestMemoryBoardSetup(t *testing.T) {
	r := NewMemoryRound(rand.New(rand.NewSource(21)), nil)
	r.Start(testPool(30))

	cards := r.Cards()
	if len(cards) != 2*MemoryPairs {
		t.Fatalf("board has %d cards, want %d", len(cards), 2*MemoryPairs)
	}
	for i, c := range cards {
		if c.FaceUp || c.Matched {
			t.Errorf("card %d not face-down at start", i)
		}
		if c.Text == "" || c.PairText == "" {
			t.Errorf("card %d missing text", i)
		}
	}
}

func TestMemoryMatchAwardsAndLocks(t *testing.T) {
	r := NewMemoryRound(rand.New(rand.NewSource(22)), nil)
	r.Start(testPool(30))

	i, j := findPair(r, 0)
	if i < 0 {
		t.Fatal("no pair found on fresh board")
	}

	if !r.Flip(i) || !r.Flip(j) {
		t.Fatal("flips rejected")
	}

	if r.Score() != PointsPerPair {
		t.Errorf("Score = %d, want %d", r.Score(), PointsPerPair)
	}
	if !r.Cards()[i].Matched || !r.Cards()[j].Matched {
		t.Error("matched cards not locked")
	}
	if r.MismatchPending() {
		t.Error("match must not leave a mismatch pending")
	}
	// Matched cards reject further flips.
	if r.Flip(i) {
		t.Error("flip of a matched card must be rejected")
	}
}

func TestMemoryMismatchFlipsBack(t *testing.T) {
	r := NewMemoryRound(rand.New(rand.NewSource(23)), nil)
	r.Start(testPool(30))

	i, j := findMismatch(r)
	if i < 0 {
		t.Fatal("no mismatch found")
	}

	r.Flip(i)
	r.Flip(j)

	if r.Score() != 0 {
		t.Errorf("Score = %d, mismatch must award 0", r.Score())
	}
	if !r.MismatchPending() {
		t.Fatal("expected a pending mismatch")
	}
	// Third flip is rejected while the pair is on display.
	k, _ := findPair(r, 0)
	if k >= 0 && r.Flip(k) {
		t.Error("flip during pending resolution must be rejected")
	}

	r.FlipBack()

	if r.Cards()[i].FaceUp || r.Cards()[j].FaceUp {
		t.Error("mismatched cards still face-up after FlipBack")
	}
	if r.MismatchPending() {
		t.Error("pending pair not cleared")
	}
}

func TestMemoryFullBoardEndsByCompletion(t *testing.T) {
	rep := &fakeReporter{}
	r := NewMemoryRound(rand.New(rand.NewSource(24)), rep)
	r.Start(testPool(30))

	for r.Status() != StatusEnded {
		i, j := findPair(r, 0)
		if i < 0 {
			t.Fatal("ran out of pairs before completion")
		}
		r.Flip(i)
		r.Flip(j)
	}

	res := r.Result()
	if res.Reason != EndedByCompletion {
		t.Errorf("reason = %q, want completion", res.Reason)
	}
	want := MemoryPairs * PointsPerPair
	if res.Score != want {
		t.Errorf("Score = %d, want %d", res.Score, want)
	}
	if res.CorrectCount != MemoryPairs {
		t.Errorf("CorrectCount = %d, want %d", res.CorrectCount, MemoryPairs)
	}
	if len(rep.reports) != 1 || rep.reports[0] != want {
		t.Errorf("reports = %v, want [%d]", rep.reports, want)
	}
}

func TestMemoryTimeoutDuringMismatch(t *testing.T) {
	rep := &fakeReporter{}
	r := NewMemoryRound(rand.New(rand.NewSource(25)), rep)
	r.Start(testPool(30))

	i, j := findMismatch(r)
	r.Flip(i)
	r.Flip(j)

	for n := 0; n < RoundSeconds; n++ {
		r.Tick()
	}

	if r.Status() != StatusEnded {
		t.Fatal("timer must end the round even mid-resolution")
	}
	if r.Result().Reason != EndedByTimeout {
		t.Errorf("reason = %q, want timeout", r.Result().Reason)
	}
	if len(rep.reports) != 1 || rep.reports[0] != 0 {
		t.Errorf("reports = %v, want [0]", rep.reports)
	}
}

func TestMemoryFlipRejections(t *testing.T) {
	r := NewMemoryRound(rand.New(rand.NewSource(26)), nil)
	r.Start(testPool(30))

	if r.Flip(-1) || r.Flip(len(r.Cards())) {
		t.Error("out-of-range flip accepted")
	}
	r.Flip(0)
	if r.Flip(0) {
		t.Error("flip of an already face-up card accepted")
	}
}

func TestMemoryAbandonReportsNothing(t *testing.T) {
	rep := &fakeReporter{}
	r := NewMemoryRound(rand.New(rand.NewSource(27)), rep)
	r.Start(testPool(30))
	i, j := findPair(r, 0)
	r.Flip(i)
	r.Flip(j)

	r.Abandon()

	if len(rep.reports) != 0 {
		t.Errorf("abandoned round reported: %v", rep.reports)
	}
}
