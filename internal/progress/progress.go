// Package progress owns the learner's cumulative progress: points, level,
// streak, learned words, completed lessons, and unlocked achievements.
// The aggregate is persisted as a single JSON document after every mutation.
package progress

import "time"

// PointsPerLevel is the point threshold separating levels.
const PointsPerLevel = 1000

// Point awards for learning actions.
const (
	PointsPerNewWord    = 10
	PointsPerLesson     = 100
	PointsPerExercise   = 20
	PointsFlashcardEasy = 5
	PointsFlashcardHard = 10
)

// AchievementUnlock records when an achievement was first earned.
type AchievementUnlock struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// UserProgress is the sole persisted aggregate.
type UserProgress struct {
	UserID           string              `json:"userId"`
	WordsLearned     []string            `json:"wordsLearned"`
	LessonsCompleted []string            `json:"lessonsCompleted"`
	CurrentStreak    int                 `json:"currentStreak"`
	TotalPoints      int                 `json:"totalPoints"`
	Level            int                 `json:"level"`
	Achievements     []AchievementUnlock `json:"achievements"`
}

// NewUserProgress returns the zero-value aggregate for a learner.
func NewUserProgress(userID string) UserProgress {
	return UserProgress{
		UserID:           userID,
		WordsLearned:     []string{},
		LessonsCompleted: []string{},
		Level:            1,
		Achievements:     []AchievementUnlock{},
	}
}

// LevelForPoints computes the level for a point total. Level is always
// derived from points, never stored independently.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// HasLearnedWord reports whether the word id is in the learned set.
func (p *UserProgress) HasLearnedWord(id string) bool {
	for _, w := range p.WordsLearned {
		if w == id {
			return true
		}
	}
	return false
}

// HasCompletedLesson reports whether the lesson id is in the completed set.
func (p *UserProgress) HasCompletedLesson(id string) bool {
	for _, l := range p.LessonsCompleted {
		if l == id {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement id has been unlocked.
func (p UserProgress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
