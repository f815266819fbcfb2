package progress

import (
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/minhtran/lingo/internal/storage"
)

// StorageKey is the fixed key under which the aggregate is persisted.
const StorageKey = "userProgress"

// DefaultUserID identifies the single local learner.
const DefaultUserID = "learner-1"

// Store owns the in-memory aggregate and writes it through to the
// key-value collaborator after every mutation. Writes are best-effort:
// failures are logged and the in-memory state stays authoritative.
type Store struct {
	kv    storage.KV
	log   *zap.Logger
	now   func() time.Time
	state UserProgress
}

// NewStore loads the persisted aggregate from kv, substituting zero
// defaults when the key is absent or the payload does not parse.
func NewStore(kv storage.KV, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{kv: kv, log: log, now: time.Now}
	s.state = s.load()
	return s
}

func (s *Store) load() UserProgress {
	raw, err := s.kv.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("progress read failed, starting fresh", zap.Error(err))
		}
		return NewUserProgress(DefaultUserID)
	}

	var p UserProgress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.log.Warn("progress payload corrupt, starting fresh", zap.Error(err))
		return NewUserProgress(DefaultUserID)
	}
	if p.WordsLearned == nil {
		p.WordsLearned = []string{}
	}
	if p.LessonsCompleted == nil {
		p.LessonsCompleted = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []AchievementUnlock{}
	}
	p.Level = LevelForPoints(p.TotalPoints)
	return p
}

// Current returns a copy of the aggregate for display.
func (s *Store) Current() UserProgress {
	p := s.state
	p.WordsLearned = append([]string(nil), s.state.WordsLearned...)
	p.LessonsCompleted = append([]string(nil), s.state.LessonsCompleted...)
	p.Achievements = append([]AchievementUnlock(nil), s.state.Achievements...)
	return p
}

// RecordWordsLearned merges the given word ids into the learned set and
// awards PointsPerNewWord for each id not already present. Duplicate ids
// contribute nothing. A nil or empty set is a no-op.
func (s *Store) RecordWordsLearned(wordIDs []string) {
	if len(wordIDs) == 0 {
		return
	}

	added := 0
	for _, id := range wordIDs {
		if s.state.HasLearnedWord(id) {
			continue
		}
		s.state.WordsLearned = append(s.state.WordsLearned, id)
		added++
	}
	if added == 0 {
		return
	}

	s.state.TotalPoints += added * PointsPerNewWord
	s.afterMutation()
}

// CompleteLesson marks a lesson completed, awarding PointsPerLesson and
// incrementing the streak. Completing an already-completed lesson is a
// no-op: no points, no streak change.
func (s *Store) CompleteLesson(lessonID string) {
	if s.state.HasCompletedLesson(lessonID) {
		return
	}

	s.state.LessonsCompleted = append(s.state.LessonsCompleted, lessonID)
	s.state.TotalPoints += PointsPerLesson
	s.state.CurrentStreak++
	s.afterMutation()
}

// AddPoints adds amount to the point total and recomputes the level.
// A zero amount still persists, so a finished round with no score
// leaves a write behind like any other.
func (s *Store) AddPoints(amount int) {
	s.state.TotalPoints += amount
	s.afterMutation()
}

// Reset restores the aggregate to its zero defaults and persists.
func (s *Store) Reset() {
	s.state = NewUserProgress(s.state.UserID)
	s.persist()
}

func (s *Store) afterMutation() {
	s.state.Level = LevelForPoints(s.state.TotalPoints)
	unlockEarned(&s.state, s.now())
	s.persist()
}

// persist writes the full aggregate through to the collaborator.
// Failures are logged and swallowed; the session continues with
// unsaved state until the next successful write.
func (s *Store) persist() {
	raw, err := json.Marshal(s.state)
	if err != nil {
		s.log.Error("progress marshal failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(StorageKey, string(raw)); err != nil {
		s.log.Warn("progress write failed", zap.Error(err))
	}
}
