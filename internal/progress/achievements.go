package progress

import "time"

// Achievement is a fixed milestone the learner can unlock.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Earned      func(p *UserProgress) bool
}

// AllAchievements returns the achievement definitions in display order.
func AllAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "first-word",
			Name:        "First Word",
			Description: "Learn your first word",
			Earned:      func(p *UserProgress) bool { return len(p.WordsLearned) >= 1 },
		},
		{
			ID:          "word-collector",
			Name:        "Word Collector",
			Description: "Learn 10 words",
			Earned:      func(p *UserProgress) bool { return len(p.WordsLearned) >= 10 },
		},
		{
			ID:          "first-lesson",
			Name:        "Diligent Student",
			Description: "Complete your first lesson",
			Earned:      func(p *UserProgress) bool { return len(p.LessonsCompleted) >= 1 },
		},
		{
			ID:          "point-hunter",
			Name:        "Point Hunter",
			Description: "Reach 500 points",
			Earned:      func(p *UserProgress) bool { return p.TotalPoints >= 500 },
		},
		{
			ID:          "streak-master",
			Name:        "Streak Master",
			Description: "Reach a streak of 7",
			Earned:      func(p *UserProgress) bool { return p.CurrentStreak >= 7 },
		},
	}
}

// unlockEarned appends any newly earned achievements to the aggregate.
// Unlocks are monotonic: an achievement is never re-locked.
func unlockEarned(p *UserProgress, now time.Time) {
	for _, a := range AllAchievements() {
		if p.HasAchievement(a.ID) {
			continue
		}
		if a.Earned(p) {
			p.Achievements = append(p.Achievements, AchievementUnlock{ID: a.ID, UnlockedAt: now})
		}
	}
}
