package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wortbot/pkg/models"
)

var now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLoadMissingDocumentReturnsDefault(t *testing.T) {
	s := newStore(t)

	rec := s.Load("12345", now)

	assert.Equal(t, "12345", rec.ChatID)
	assert.Equal(t, models.LevelA1, rec.CurrentLevel)
	assert.Equal(t, 1, rec.FreezeAvailable)
	assert.Zero(t, rec.TotalWordsLearned)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)

	rec := s.Load("12345", now)
	rec.AddLearnedWord("das Haus", models.LevelA1)
	rec.AddLearnedWord("die Wohnung", models.LevelA2)
	rec.DailyStreak = 4
	rec.LastLessonDate = "2024-03-01"
	rec.SpacedRepetition["das Haus"] = &models.ReviewState{
		ReviewCount:  2,
		SuccessCount: 1,
		LastReviewed: now,
		NextReview:   now.AddDate(0, 0, 3),
		Intervals:    []int{1, 3, 7, 14, 30},
		SuccessRate:  0.5,
	}
	rec.RecordQuizScore(4, 5, now)
	rec.Analytics.DailyWordCounts["2024-03-01"] = 2

	require.NoError(t, s.Save(rec))

	loaded := s.Load("12345", now)
	assert.Equal(t, rec, loaded)
}

func TestLoadMalformedDocumentReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "progress_999.json"), []byte("{not json"), 0644))

	rec := s.Load("999", now)
	assert.Equal(t, "999", rec.ChatID)
	assert.Zero(t, rec.TotalWordsLearned)
	assert.NotNil(t, rec.SpacedRepetition)
}

func TestLoadRecomputesTotalInvariant(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	// A hand-edited document with an inconsistent total.
	doc := `{"chat_id":"7","current_level":"A1","total_words_learned":99,` +
		`"words_by_level":{"A1":{"learned":["a","b"]},"A2":{"learned":["c"]}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "progress_7.json"), []byte(doc), 0644))

	rec := s.Load("7", now)
	assert.Equal(t, 3, rec.TotalWordsLearned)
}

func TestList(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(models.NewLearnerRecord("222", now)))
	require.NoError(t, s.Save(models.NewLearnerRecord("111", now)))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222"}, ids)
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "wortbot.db"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "progress_5.json.tmp"), []byte("x"), 0644))
	require.NoError(t, s.Save(models.NewLearnerRecord("5", now)))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, ids)
}
