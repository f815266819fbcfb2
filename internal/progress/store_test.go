package progress

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/minhtran/lingo/internal/storage"
)

// memKV is an in-memory KV fake.
type memKV struct {
	data     map[string]string
	setErr   error
	setCalls int
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(key, value string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{0, 1},
		{999, 1},
		{1000, 2},
		{1001, 2},
		{2500, 3},
		{-50, 1},
	}

	for _, tt := range tests {
		if got := LevelForPoints(tt.points); got != tt.want {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestNewStoreStartsFromDefaults(t *testing.T) {
	s := NewStore(newMemKV(), nil)

	p := s.Current()
	if p.TotalPoints != 0 || p.Level != 1 || p.CurrentStreak != 0 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if len(p.WordsLearned) != 0 || len(p.LessonsCompleted) != 0 {
		t.Errorf("expected empty sets: %+v", p)
	}
}

func TestNewStoreRecoversFromCorruptPayload(t *testing.T) {
	kv := newMemKV()
	kv.data[StorageKey] = "{not json"

	s := NewStore(kv, nil)

	if got := s.Current().TotalPoints; got != 0 {
		t.Errorf("TotalPoints = %d, want 0 after corrupt read", got)
	}
}

func TestNewStoreLoadsPersistedState(t *testing.T) {
	kv := newMemKV()
	kv.data[StorageKey] = `{"userId":"learner-1","wordsLearned":["w-001"],"lessonsCompleted":["lesson-greetings"],"currentStreak":1,"totalPoints":1250}`

	s := NewStore(kv, nil)

	p := s.Current()
	if p.TotalPoints != 1250 {
		t.Errorf("TotalPoints = %d, want 1250", p.TotalPoints)
	}
	// Level is always rederived from points on load.
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
	if !p.HasLearnedWord("w-001") || !p.HasCompletedLesson("lesson-greetings") {
		t.Errorf("sets not loaded: %+v", p)
	}
}

func TestRecordWordsLearned(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv, nil)

	s.RecordWordsLearned([]string{"a", "b"})

	p := s.Current()
	if p.TotalPoints != 2*PointsPerNewWord {
		t.Errorf("TotalPoints = %d, want %d", p.TotalPoints, 2*PointsPerNewWord)
	}
	if len(p.WordsLearned) != 2 {
		t.Errorf("WordsLearned = %v", p.WordsLearned)
	}

	// Re-recording an already-learned word awards nothing and does not duplicate.
	s.RecordWordsLearned([]string{"a", "c"})

	p = s.Current()
	if p.TotalPoints != 3*PointsPerNewWord {
		t.Errorf("TotalPoints = %d, want %d", p.TotalPoints, 3*PointsPerNewWord)
	}
	if len(p.WordsLearned) != 3 {
		t.Errorf("WordsLearned = %v", p.WordsLearned)
	}
}

func TestRecordWordsLearnedEmptyIsNoop(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv, nil)
	before := kv.setCalls

	s.RecordWordsLearned(nil)
	s.RecordWordsLearned([]string{})

	if kv.setCalls != before {
		t.Error("empty record should not persist")
	}
}

func TestCompleteLessonIdempotent(t *testing.T) {
	s := NewStore(newMemKV(), nil)

	s.CompleteLesson("lesson-1")
	s.CompleteLesson("lesson-1")

	p := s.Current()
	if p.TotalPoints != PointsPerLesson {
		t.Errorf("TotalPoints = %d, want %d", p.TotalPoints, PointsPerLesson)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", p.CurrentStreak)
	}
	if len(p.LessonsCompleted) != 1 {
		t.Errorf("LessonsCompleted = %v", p.LessonsCompleted)
	}
}

func TestAddPointsMaintainsLevelInvariant(t *testing.T) {
	s := NewStore(newMemKV(), nil)

	prevLevel := 0
	for _, amount := range []int{10, 500, 490, 1, 2000} {
		s.AddPoints(amount)
		p := s.Current()
		want := p.TotalPoints/PointsPerLevel + 1
		if p.Level != want {
			t.Errorf("Level = %d, want %d at %d points", p.Level, want, p.TotalPoints)
		}
		if p.Level < prevLevel {
			t.Errorf("level decreased: %d -> %d", prevLevel, p.Level)
		}
		prevLevel = p.Level
	}
}

func TestAddPointsZeroStillPersists(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv, nil)
	before := kv.setCalls

	s.AddPoints(0)

	if kv.setCalls != before+1 {
		t.Errorf("setCalls = %d, want %d: a zero award must still write through", kv.setCalls, before+1)
	}
	p := s.Current()
	if p.TotalPoints != 0 || p.Level != 1 {
		t.Errorf("zero award changed state: %+v", p)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv, nil)

	s.RecordWordsLearned([]string{"a"})
	s.CompleteLesson("l1")
	s.AddPoints(5)
	s.Reset()

	if kv.setCalls != 4 {
		t.Errorf("setCalls = %d, want 4", kv.setCalls)
	}

	var p UserProgress
	if err := json.Unmarshal([]byte(kv.data[StorageKey]), &p); err != nil {
		t.Fatalf("persisted payload not JSON: %v", err)
	}
	if p.TotalPoints != 0 {
		t.Errorf("TotalPoints after reset = %d, want 0", p.TotalPoints)
	}
}

func TestWriteFailureIsSwallowed(t *testing.T) {
	kv := newMemKV()
	kv.setErr = errors.New("disk full")
	s := NewStore(kv, nil)

	s.AddPoints(30)

	// In-memory state stays authoritative despite the failed write.
	if got := s.Current().TotalPoints; got != 30 {
		t.Errorf("TotalPoints = %d, want 30", got)
	}
}

func TestAchievementsUnlockOnceAndStayUnlocked(t *testing.T) {
	s := NewStore(newMemKV(), nil)

	s.RecordWordsLearned([]string{"w1"})
	if !s.Current().HasAchievement("first-word") {
		t.Fatal("first-word should unlock after one learned word")
	}

	s.AddPoints(600)
	p := s.Current()
	if !p.HasAchievement("point-hunter") {
		t.Error("point-hunter should unlock at 500 points")
	}

	// Unlock count for first-word stays one.
	count := 0
	for _, a := range p.Achievements {
		if a.ID == "first-word" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("first-word unlocked %d times", count)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewStore(newMemKV(), nil)
	s.RecordWordsLearned([]string{"a", "b"})
	s.CompleteLesson("l1")

	s.Reset()

	p := s.Current()
	if p.TotalPoints != 0 || p.CurrentStreak != 0 || p.Level != 1 {
		t.Errorf("reset left state: %+v", p)
	}
	if len(p.WordsLearned) != 0 || len(p.LessonsCompleted) != 0 || len(p.Achievements) != 0 {
		t.Errorf("reset left sets: %+v", p)
	}
}
