package lesson

import (
	"testing"

	"github.com/minhtran/lingo/internal/catalog"
)

type fakeReporter struct {
	points    int
	completed []string
}

func (f *fakeReporter) AddPoints(amount int) { f.points += amount }

func (f *fakeReporter) CompleteLesson(lessonID string) {
	f.completed = append(f.completed, lessonID)
}

func testLesson(n int) catalog.Lesson {
	l := catalog.Lesson{ID: "lesson-test", Title: "Test"}
	answers := []string{"hello", "goodbye", "please", "thanks", "sorry"}
	for i := 0; i < n; i++ {
		l.Exercises = append(l.Exercises, catalog.Exercise{
			ID:            "ex-" + answers[i%len(answers)],
			Kind:          catalog.KindFillBlank,
			Question:      "Translate",
			CorrectAnswer: answers[i%len(answers)],
		})
	}
	return l
}

func TestGrade(t *testing.T) {
	cases := []struct {
		submitted, correct string
		want               bool
	}{
		{"hello", "hello", true},
		{"  Hello  ", "hello", true},
		{"HELLO", "hello", true},
		{"helo", "hello", false},
		{"", "hello", false},
		{"  ", "", true},
	}
	for _, c := range cases {
		if got := Grade(c.submitted, c.correct); got != c.want {
			t.Errorf("Grade(%q, %q) = %v, want %v", c.submitted, c.correct, got, c.want)
		}
	}
}

func TestLocked(t *testing.T) {
	lessons := []catalog.Lesson{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	done := map[string]bool{"a": true}
	completed := func(id string) bool { return done[id] }

	if Locked(lessons, 0, completed) {
		t.Error("first lesson must never be locked")
	}
	if Locked(lessons, 1, completed) {
		t.Error("lesson with completed predecessor should be unlocked")
	}
	if !Locked(lessons, 2, completed) {
		t.Error("lesson with incomplete predecessor should be locked")
	}
}

func TestSubmitAwardsPointsPerCorrect(t *testing.T) {
	rep := &fakeReporter{}
	r := NewRun(testLesson(3), false, rep)

	if !r.Submit("hello") {
		t.Fatal("correct answer graded incorrect")
	}
	if rep.points != 20 {
		t.Errorf("points after one correct = %d, want 20", rep.points)
	}
	r.Next()
	if r.Submit("wrong") {
		t.Fatal("incorrect answer graded correct")
	}
	if rep.points != 20 {
		t.Errorf("incorrect answer changed points: %d", rep.points)
	}
}

func TestSubmitRejectedOutsideAnsweringPhase(t *testing.T) {
	rep := &fakeReporter{}
	r := NewRun(testLesson(2), false, rep)

	r.Submit("hello")
	if r.Submit("hello") {
		t.Error("second submit for the same exercise should be rejected")
	}
	if len(r.Results()) != 1 {
		t.Errorf("results after double submit = %d, want 1", len(r.Results()))
	}
	if rep.points != 20 {
		t.Errorf("double submit awarded extra points: %d", rep.points)
	}
}

func TestPerfectRunCompletesLesson(t *testing.T) {
	rep := &fakeReporter{}
	l := testLesson(3)
	r := NewRun(l, false, rep)

	for i := 0; i < 3; i++ {
		r.Submit(l.Exercises[i].CorrectAnswer)
		r.Next()
	}

	if r.Phase() != PhaseComplete {
		t.Fatalf("phase = %v, want PhaseComplete", r.Phase())
	}
	if r.Score() != 100 {
		t.Errorf("score = %d, want 100", r.Score())
	}
	if !r.CompletedNow() {
		t.Error("passing run should complete the lesson")
	}
	if len(rep.completed) != 1 || rep.completed[0] != l.ID {
		t.Errorf("completed = %v, want [%s]", rep.completed, l.ID)
	}
	if rep.points != 60 {
		t.Errorf("points = %d, want 60", rep.points)
	}
}

func TestScoreRounding(t *testing.T) {
	// 2 of 3 correct is 66.67, rounded to 67: below threshold.
	rep := &fakeReporter{}
	l := testLesson(3)
	r := NewRun(l, false, rep)

	r.Submit(l.Exercises[0].CorrectAnswer)
	r.Next()
	r.Submit(l.Exercises[1].CorrectAnswer)
	r.Next()
	r.Submit("wrong")
	r.Next()

	if r.Score() != 67 {
		t.Errorf("score = %d, want 67", r.Score())
	}
	if r.CompletedNow() {
		t.Error("67 is below the pass threshold, lesson must not complete")
	}
	if len(rep.completed) != 0 {
		t.Errorf("completed = %v, want none", rep.completed)
	}
}

func TestThresholdBoundary(t *testing.T) {
	// 7 of 10 correct is exactly 70: completes.
	rep := &fakeReporter{}
	l := catalog.Lesson{ID: "lesson-long"}
	for i := 0; i < 10; i++ {
		l.Exercises = append(l.Exercises, catalog.Exercise{
			Kind:          catalog.KindFillBlank,
			CorrectAnswer: "yes",
		})
	}
	r := NewRun(l, false, rep)
	for i := 0; i < 10; i++ {
		if i < 7 {
			r.Submit("yes")
		} else {
			r.Submit("no")
		}
		r.Next()
	}

	if r.Score() != 70 {
		t.Fatalf("score = %d, want 70", r.Score())
	}
	if !r.CompletedNow() {
		t.Error("score of exactly 70 should complete the lesson")
	}
}

func TestAlreadyCompletedLessonNotReCompleted(t *testing.T) {
	rep := &fakeReporter{}
	l := testLesson(2)
	r := NewRun(l, true, rep)

	for i := 0; i < 2; i++ {
		r.Submit(l.Exercises[i].CorrectAnswer)
		r.Next()
	}

	if r.Score() != 100 {
		t.Fatalf("score = %d, want 100", r.Score())
	}
	if r.CompletedNow() {
		t.Error("already completed lesson must not re-complete")
	}
	if len(rep.completed) != 0 {
		t.Errorf("completed = %v, want none", rep.completed)
	}
	if rep.points != 40 {
		t.Errorf("exercise points still award on replay: got %d, want 40", rep.points)
	}
}

func TestSkipCountsAsIncorrect(t *testing.T) {
	rep := &fakeReporter{}
	l := testLesson(2)
	r := NewRun(l, false, rep)

	r.Skip()
	if r.LastResult() {
		t.Error("skipped exercise should record an incorrect result")
	}
	r.Next()
	r.Submit(l.Exercises[1].CorrectAnswer)
	r.Next()

	if r.Score() != 50 {
		t.Errorf("score = %d, want 50", r.Score())
	}
	if rep.points != 20 {
		t.Errorf("points = %d, want 20", rep.points)
	}
}

func TestNextAdvancesThroughExercises(t *testing.T) {
	l := testLesson(3)
	r := NewRun(l, false, &fakeReporter{})

	if r.Index() != 0 || r.Total() != 3 {
		t.Fatalf("index/total = %d/%d, want 0/3", r.Index(), r.Total())
	}
	r.Submit("x")
	if !r.Next() {
		t.Fatal("Next should report remaining exercises")
	}
	if r.Index() != 1 {
		t.Errorf("index = %d, want 1", r.Index())
	}
	if r.Current().ID != l.Exercises[1].ID {
		t.Errorf("current = %s, want %s", r.Current().ID, l.Exercises[1].ID)
	}
}
