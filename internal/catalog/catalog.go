// Package catalog provides the read-only content catalog: the fixed set of
// learnable words, structured lessons, topic categories, and difficulty levels.
package catalog

// Level represents a word or lesson difficulty level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// AllLevels returns the three difficulty levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Word is a single vocabulary entry. Words are immutable; the catalog owns them.
type Word struct {
	ID            string
	Term          string // source-language term the learner studies
	Translation   string // target-language translation
	Pronunciation string
	Example       string
	Level         Level
	Category      string
}

// ExerciseKind identifies the interaction type of a lesson exercise.
type ExerciseKind string

const (
	KindMultipleChoice ExerciseKind = "multiple-choice"
	KindFillBlank      ExerciseKind = "fill-blank"
	KindSpeaking       ExerciseKind = "speaking"
	KindListening      ExerciseKind = "listening"
)

// Exercise is a single gradable item inside a lesson.
type Exercise struct {
	ID            string
	Kind          ExerciseKind
	Question      string
	Options       []string // required for multiple-choice, empty otherwise
	CorrectAnswer string
	Explanation   string
}

// Gradable reports whether the exercise kind has a grading path.
// Speaking and listening exercises have no input capture and are
// skipped gracefully by the evaluator.
func (e Exercise) Gradable() bool {
	return e.Kind == KindMultipleChoice || e.Kind == KindFillBlank
}

// Lesson is an ordered unit of exercises over a subset of catalog words.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Level       Level
	Words       []Word
	Exercises   []Exercise
}

// Words returns every word in the catalog in stable order.
func Words() []Word {
	out := make([]Word, len(seedWords))
	copy(out, seedWords)
	return out
}

// Lessons returns every lesson in catalog order. The order is meaningful:
// a lesson is locked until its immediate predecessor is completed.
func Lessons() []Lesson {
	out := make([]Lesson, len(seedLessons))
	copy(out, seedLessons)
	return out
}

// Categories returns the ordered topic category list.
func Categories() []string {
	out := make([]string, len(seedCategories))
	copy(out, seedCategories)
	return out
}

// WordByID looks up a word by identifier. Returns false if absent.
func WordByID(id string) (Word, bool) {
	for _, w := range seedWords {
		if w.ID == id {
			return w, true
		}
	}
	return Word{}, false
}

// LessonByID looks up a lesson by identifier. Returns false if absent.
func LessonByID(id string) (Lesson, bool) {
	for _, l := range seedLessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// FilterWords returns the catalog words matching the given category and
// level. An empty string (or "all") matches everything.
func FilterWords(category string, level Level) []Word {
	var out []Word
	for _, w := range seedWords {
		if category != "" && category != "all" && w.Category != category {
			continue
		}
		if level != "" && level != "all" && w.Level != level {
			continue
		}
		out = append(out, w)
	}
	return out
}
