package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/minhtran/lingo/internal/catalog"
)

// fakeReporter captures point reports.
type fakeReporter struct {
	reports []int
}

func (f *fakeReporter) AddPoints(amount int) {
	f.reports = append(f.reports, amount)
}

// testPool builds n distinct catalog words.
func testPool(n int) []catalog.Word {
	pool := make([]catalog.Word, n)
	for i := range pool {
		pool[i] = catalog.Word{
			ID:          fmt.Sprintf("w-%02d", i),
			Term:        fmt.Sprintf("term%02d", i),
			Translation: fmt.Sprintf("trans%02d", i),
		}
	}
	return pool
}

func TestMatchStartSamplesPool(t *testing.T) {
	r := NewMatchRound(rand.New(rand.NewSource(1)), nil)

	r.Start(testPool(30))

	if r.Status() != StatusActive {
		t.Fatalf("status = %v, want active", r.Status())
	}
	if r.Total() != RoundWords {
		t.Errorf("Total = %d, want %d", r.Total(), RoundWords)
	}
	if r.Remaining() != RoundSeconds {
		t.Errorf("Remaining = %d, want %d", r.Remaining(), RoundSeconds)
	}
}

func TestMatchOptionSetHasExactlyOneCorrect(t *testing.T) {
	r := NewMatchRound(rand.New(rand.NewSource(7)), nil)
	r.Start(testPool(25))

	for q := 0; q < r.Total(); q++ {
		opts := r.Options()
		if len(opts) != MatchOptionCount {
			t.Fatalf("question %d: %d options, want %d", q, len(opts), MatchOptionCount)
		}
		correct := 0
		seen := make(map[string]bool)
		for _, o := range opts {
			if seen[o] {
				t.Fatalf("question %d: duplicate option %q", q, o)
			}
			seen[o] = true
			if o == r.CurrentWord().Translation {
				correct++
			}
		}
		if correct != 1 {
			t.Fatalf("question %d: %d correct options, want 1", q, correct)
		}
		r.Choose(opts[0])
		r.Advance()
	}
}

func TestMatchScoring(t *testing.T) {
	r := NewMatchRound(rand.New(rand.NewSource(2)), nil)
	r.Start(testPool(25))

	if !r.Choose(r.CurrentWord().Translation) {
		t.Fatal("choice rejected")
	}
	if r.Score() != PointsPerMatch {
		t.Errorf("Score = %d, want %d after correct answer", r.Score(), PointsPerMatch)
	}
	r.Advance()

	// Pick a wrong option for the next question.
	var wrong string
	for _, o := range r.Options() {
		if o != r.CurrentWord().Translation {
			wrong = o
			break
		}
	}
	r.Choose(wrong)
	if r.Score() != PointsPerMatch {
		t.Errorf("Score = %d, wrong answer must award 0", r.Score())
	}
}

func TestMatchChoiceLocksQuestion(t *testing.T) {
	r := NewMatchRound(rand.New(rand.NewSource(3)), nil)
	r.Start(testPool(25))

	r.Choose(r.Options()[0])
	if r.Choose(r.CurrentWord().Translation) {
		t.Error("second choice on a resolved question must be rejected")
	}
	if r.Status() != StatusResolving {
		t.Errorf("status = %v, want resolving", r.Status())
	}
}

func TestMatchExhaustionEndsAndReports(t *testing.T) {
	rep := &fakeReporter{}
	r := NewMatchRound(rand.New(rand.NewSource(4)), rep)
	r.Start(testPool(25))

	for r.Status() != StatusEnded {
		r.Choose(r.CurrentWord().Translation)
		r.Advance()
	}

	if r.Result().Reason != EndedByCompletion {
		t.Errorf("reason = %q, want completion", r.Result().Reason)
	}
	want := RoundWords * PointsPerMatch
	if len(rep.reports) != 1 || rep.reports[0] != want {
		t.Errorf("reports = %v, want [%d]", rep.reports, want)
	}
}

func TestMatchTimeoutEndsImmediately(t *testing.T) {
	rep := &fakeReporter{}
	r := NewMatchRound(rand.New(rand.NewSource(5)), rep)
	r.Start(testPool(25))

	r.Choose(r.CurrentWord().Translation) // mid-reveal when time runs out
	for i := 0; i < RoundSeconds; i++ {
		r.Tick()
	}

	if r.Status() != StatusEnded {
		t.Fatalf("status = %v, want ended", r.Status())
	}
	if r.Result().Reason != EndedByTimeout {
		t.Errorf("reason = %q, want timeout", r.Result().Reason)
	}
	if len(rep.reports) != 1 || rep.reports[0] != PointsPerMatch {
		t.Errorf("reports = %v, want [%d]", rep.reports, PointsPerMatch)
	}
}

func TestMatchAbandonReportsNothing(t *testing.T) {
	rep := &fakeReporter{}
	r := NewMatchRound(rand.New(rand.NewSource(6)), rep)
	r.Start(testPool(25))
	r.Choose(r.CurrentWord().Translation)

	r.Abandon()

	if r.Status() != StatusEnded {
		t.Errorf("status = %v, want ended", r.Status())
	}
	if len(rep.reports) != 0 {
		t.Errorf("abandoned round must not report, got %v", rep.reports)
	}
	// A stale tick after the round ended must not revive it.
	r.Tick()
	if len(rep.reports) != 0 {
		t.Errorf("tick after end reported points: %v", rep.reports)
	}
}

func TestMatchSmallPoolCapsRound(t *testing.T) {
	r := NewMatchRound(rand.New(rand.NewSource(8)), nil)
	r.Start(testPool(5))

	if r.Total() != 5 {
		t.Errorf("Total = %d, want 5", r.Total())
	}
	// Options still come out at full count while enough distinct
	// translations exist in the pool.
	if len(r.Options()) != MatchOptionCount {
		t.Errorf("options = %d, want %d", len(r.Options()), MatchOptionCount)
	}
}
