// Package lesson implements the lesson run evaluator: it walks a
// lesson's ordered exercises, grades answers, accumulates results, and
// reports completion to the progress store when the pass threshold is met.
package lesson

import (
	"math"
	"strings"

	"github.com/minhtran/lingo/internal/catalog"
	"github.com/minhtran/lingo/internal/progress"
)

// PassThreshold is the minimum percentage score that completes a lesson.
const PassThreshold = 70

// Phase is the lifecycle state of a lesson run.
type Phase int

const (
	PhaseInLesson Phase = iota // current exercise awaits an answer
	PhaseAnswered              // feedback for the graded answer is on display
	PhaseComplete              // all exercises done, final score computed
)

// Reporter is the progress surface the evaluator reports into.
type Reporter interface {
	AddPoints(amount int)
	CompleteLesson(lessonID string)
}

// Grade compares a submitted answer against the correct one:
// whitespace-trimmed, case-insensitive exact match.
func Grade(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// Locked reports whether the lesson at index is locked: every lesson
// except the first requires its immediate predecessor to be completed.
func Locked(lessons []catalog.Lesson, index int, completed func(id string) bool) bool {
	if index <= 0 {
		return false
	}
	return !completed(lessons[index-1].ID)
}

// Run is one learner pass through a lesson's exercises.
type Run struct {
	lesson           catalog.Lesson
	reporter         Reporter
	index            int
	results          []bool
	phase            Phase
	finalScore       int
	alreadyCompleted bool
	completedNow     bool
}

// NewRun starts a run over the lesson's exercises. alreadyCompleted
// marks whether the lesson was completed on a previous run, in which
// case a passing score must not re-award completion.
func NewRun(l catalog.Lesson, alreadyCompleted bool, reporter Reporter) *Run {
	return &Run{
		lesson:           l,
		reporter:         reporter,
		alreadyCompleted: alreadyCompleted,
	}
}

// Current returns the exercise under answer.
func (r *Run) Current() catalog.Exercise {
	if r.index >= len(r.lesson.Exercises) {
		return catalog.Exercise{}
	}
	return r.lesson.Exercises[r.index]
}

// Submit grades the answer for the current exercise, appends the result,
// and awards exercise points on a correct answer. Returns whether the
// answer was correct. Submissions outside the answering phase are
// ignored and report false.
func (r *Run) Submit(answer string) bool {
	if r.phase != PhaseInLesson {
		return false
	}

	correct := Grade(answer, r.Current().CorrectAnswer)
	r.results = append(r.results, correct)
	r.phase = PhaseAnswered
	if correct && r.reporter != nil {
		r.reporter.AddPoints(progress.PointsPerExercise)
	}
	return correct
}

// Skip records an incorrect result without grading. Used for exercise
// kinds that have no grading path (content-authoring defects are
// rendered, never crashed on).
func (r *Run) Skip() {
	if r.phase != PhaseInLesson {
		return
	}
	r.results = append(r.results, false)
	r.phase = PhaseAnswered
}

// Next moves past the answered exercise. When exercises remain it
// returns true and the run re-enters the answering phase. Otherwise it
// computes the percentage score, reports lesson completion when the
// pass threshold is met on a first completion, and returns false.
func (r *Run) Next() bool {
	if r.phase != PhaseAnswered {
		return r.phase == PhaseInLesson
	}

	if r.index < len(r.lesson.Exercises)-1 {
		r.index++
		r.phase = PhaseInLesson
		return true
	}

	correct := 0
	for _, ok := range r.results {
		if ok {
			correct++
		}
	}
	total := len(r.lesson.Exercises)
	if total > 0 {
		r.finalScore = int(math.Round(float64(correct) / float64(total) * 100))
	}

	if r.finalScore >= PassThreshold && !r.alreadyCompleted {
		r.completedNow = true
		if r.reporter != nil {
			r.reporter.CompleteLesson(r.lesson.ID)
		}
	}
	r.phase = PhaseComplete
	return false
}

// LastResult reports whether the most recently graded answer was correct.
func (r *Run) LastResult() bool {
	if len(r.results) == 0 {
		return false
	}
	return r.results[len(r.results)-1]
}

// Results returns the pass/fail vector accumulated so far.
func (r *Run) Results() []bool {
	out := make([]bool, len(r.results))
	copy(out, r.results)
	return out
}

// Score returns the final percentage, valid once the run is complete.
func (r *Run) Score() int { return r.finalScore }

// CompletedNow reports whether this run completed the lesson.
func (r *Run) CompletedNow() bool { return r.completedNow }

// Phase returns the run lifecycle state.
func (r *Run) Phase() Phase { return r.phase }

// Index returns the zero-based exercise position.
func (r *Run) Index() int { return r.index }

// Total returns the exercise count.
func (r *Run) Total() int { return len(r.lesson.Exercises) }

// Lesson returns the lesson under evaluation.
func (r *Run) Lesson() catalog.Lesson { return r.lesson }
