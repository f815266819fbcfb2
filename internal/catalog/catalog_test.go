package catalog

import "testing"

func TestWordsAreCopied(t *testing.T) {
	a := Words()
	a[0].Term = "mutated"
	b := Words()
	if b[0].Term == "mutated" {
		t.Error("Words() must return a copy, not the seed slice")
	}
}

func TestWordIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range Words() {
		if seen[w.ID] {
			t.Errorf("duplicate word id %q", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestLessonOrderingAndLookups(t *testing.T) {
	lessons := Lessons()
	if len(lessons) < 2 {
		t.Fatalf("expected at least 2 lessons, got %d", len(lessons))
	}
	for _, l := range lessons {
		if len(l.Exercises) == 0 {
			t.Errorf("lesson %q has no exercises", l.ID)
		}
		got, ok := LessonByID(l.ID)
		if !ok || got.Title != l.Title {
			t.Errorf("LessonByID(%q) lookup failed", l.ID)
		}
	}
	if _, ok := LessonByID("no-such-lesson"); ok {
		t.Error("LessonByID should report absence")
	}
}

func TestMultipleChoiceExercisesHaveOptions(t *testing.T) {
	for _, l := range Lessons() {
		for _, ex := range l.Exercises {
			if ex.Kind == KindMultipleChoice && len(ex.Options) == 0 {
				t.Errorf("exercise %q is multiple-choice without options", ex.ID)
			}
		}
	}
}

func TestFilterWords(t *testing.T) {
	tests := []struct {
		name     string
		category string
		level    Level
		check    func(Word) bool
	}{
		{"all", "all", "all", func(Word) bool { return true }},
		{"category", "greetings", "all", func(w Word) bool { return w.Category == "greetings" }},
		{"level", "all", LevelAdvanced, func(w Word) bool { return w.Level == LevelAdvanced }},
		{"both", "nouns", LevelAdvanced, func(w Word) bool { return w.Category == "nouns" && w.Level == LevelAdvanced }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterWords(tt.category, tt.level)
			if len(got) == 0 {
				t.Fatal("expected at least one word")
			}
			for _, w := range got {
				if !tt.check(w) {
					t.Errorf("word %q does not match filter %s", w.ID, tt.name)
				}
			}
		})
	}
}

func TestGradable(t *testing.T) {
	if !(Exercise{Kind: KindMultipleChoice}).Gradable() {
		t.Error("multiple-choice should be gradable")
	}
	if !(Exercise{Kind: KindFillBlank}).Gradable() {
		t.Error("fill-blank should be gradable")
	}
	if (Exercise{Kind: KindSpeaking}).Gradable() {
		t.Error("speaking should not be gradable")
	}
}
