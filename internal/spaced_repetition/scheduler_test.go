package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wortbot/pkg/models"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newRecord() *models.LearnerRecord {
	return models.NewLearnerRecord("12345", epoch)
}

func TestScheduleSetsFirstInterval(t *testing.T) {
	s := New()
	rec := newRecord()

	s.Schedule(rec, "Haus", epoch)

	state := rec.SpacedRepetition["Haus"]
	require.NotNil(t, state)
	assert.Equal(t, epoch.AddDate(0, 0, 1), state.NextReview)
	assert.Equal(t, DefaultIntervals, state.Intervals)
	assert.Zero(t, state.ReviewCount)
}

func TestConsecutiveSuccessesClimbLadder(t *testing.T) {
	s := New()
	rec := newRecord()
	s.Schedule(rec, "Haus", epoch)

	// After k consecutive successes next-due is now + intervals[min(k-1, top)].
	expected := []int{1, 3, 7, 14, 30, 30, 30}
	now := epoch
	for k, days := range expected {
		now = now.AddDate(0, 0, 1)
		s.RecordOutcome(rec, "Haus", true, now)

		state := rec.SpacedRepetition["Haus"]
		assert.Equal(t, k+1, state.ReviewCount)
		assert.Equal(t, now.AddDate(0, 0, days), state.NextReview, "after %d successes", k+1)
	}
}

func TestFailureResetsToFirstRung(t *testing.T) {
	s := New()
	rec := newRecord()
	s.Schedule(rec, "Haus", epoch)

	s.RecordOutcome(rec, "Haus", true, epoch)
	s.RecordOutcome(rec, "Haus", true, epoch)
	require.Equal(t, epoch.AddDate(0, 0, 3), rec.SpacedRepetition["Haus"].NextReview)

	later := epoch.AddDate(0, 0, 3)
	s.RecordOutcome(rec, "Haus", false, later)

	state := rec.SpacedRepetition["Haus"]
	assert.Equal(t, later.AddDate(0, 0, 1), state.NextReview)
	assert.Equal(t, 3, state.ReviewCount)
	assert.InDelta(t, 2.0/3.0, state.SuccessRate, 0.001)
}

func TestFailureThenSuccessUsesSecondRung(t *testing.T) {
	s := New()
	rec := newRecord()
	s.Schedule(rec, "Haus", epoch)

	// First review fails: next-due = now + 1.
	s.RecordOutcome(rec, "Haus", false, epoch)
	assert.Equal(t, epoch.AddDate(0, 0, 1), rec.SpacedRepetition["Haus"].NextReview)

	// Second review succeeds: review count is 2, so rung index 1 (+3 days).
	next := epoch.AddDate(0, 0, 1)
	s.RecordOutcome(rec, "Haus", true, next)
	assert.Equal(t, next.AddDate(0, 0, 3), rec.SpacedRepetition["Haus"].NextReview)
}

func TestRecordOutcomeIgnoresUnscheduledWord(t *testing.T) {
	s := New()
	rec := newRecord()

	s.RecordOutcome(rec, "unbekannt", true, epoch)

	assert.Empty(t, rec.SpacedRepetition)
}

func TestDueWords(t *testing.T) {
	s := New()
	rec := newRecord()
	s.Schedule(rec, "Haus", epoch)
	s.Schedule(rec, "Wasser", epoch.AddDate(0, 0, 5))

	due := s.DueWords(rec, epoch.AddDate(0, 0, 2))
	assert.Equal(t, []string{"Haus"}, due)

	assert.True(t, s.IsDue(rec, "Haus", epoch.AddDate(0, 0, 1)))
	assert.False(t, s.IsDue(rec, "Wasser", epoch.AddDate(0, 0, 1)))
	assert.False(t, s.IsDue(rec, "unbekannt", epoch.AddDate(0, 0, 100)))
}
