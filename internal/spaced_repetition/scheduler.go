// Package spaced_repetition implements the interval-ladder review scheduler.
// Each learned word climbs a fixed ladder of day intervals on successful
// reviews and falls back to the first rung on failure.
package spaced_repetition

import (
	"time"

	"github.com/example/wortbot/pkg/models"
)

// DefaultIntervals is the review ladder in days: next day, then 3 days,
// a week, two weeks, a month.
var DefaultIntervals = []int{1, 3, 7, 14, 30}

// Scheduler assigns and advances per-word review schedules on a
// LearnerRecord. The zero value is not usable; use New.
type Scheduler struct {
	Intervals []int
}

// New returns a scheduler with the default interval ladder.
func New() *Scheduler {
	return &Scheduler{Intervals: DefaultIntervals}
}

// Schedule initializes the review state for a word. Calling it for a word
// that already has a schedule resets the ladder position, so callers guard
// with the learned set and only schedule on first add.
func (s *Scheduler) Schedule(rec *models.LearnerRecord, wordID string, now time.Time) {
	intervals := make([]int, len(s.Intervals))
	copy(intervals, s.Intervals)

	rec.SpacedRepetition[wordID] = &models.ReviewState{
		Intervals:    intervals,
		LastReviewed: now,
		NextReview:   now.AddDate(0, 0, intervals[0]),
	}
}

// RecordOutcome advances the schedule after a review. On success the word
// moves to rung min(reviewCount-1, top) of its ladder, counting the review
// just taken; on failure it falls back to the first rung. Words without a
// schedule are ignored.
func (s *Scheduler) RecordOutcome(rec *models.LearnerRecord, wordID string, success bool, now time.Time) {
	state, ok := rec.SpacedRepetition[wordID]
	if !ok {
		return
	}

	state.ReviewCount++
	if success {
		state.SuccessCount++
	}
	state.SuccessRate = float64(state.SuccessCount) / float64(state.ReviewCount)
	state.LastReviewed = now

	idx := 0
	if success {
		idx = state.ReviewCount - 1
		if max := len(state.Intervals) - 1; idx > max {
			idx = max
		}
	}
	state.NextReview = now.AddDate(0, 0, state.Intervals[idx])
}

// DueWords returns the identifiers of all words whose next review is at or
// before now. Order among ties is unspecified.
func (s *Scheduler) DueWords(rec *models.LearnerRecord, now time.Time) []string {
	var due []string
	for wordID, state := range rec.SpacedRepetition {
		if !state.NextReview.After(now) {
			due = append(due, wordID)
		}
	}
	return due
}

// IsDue reports whether a single word is due for review. Words without a
// schedule are never due.
func (s *Scheduler) IsDue(rec *models.LearnerRecord, wordID string, now time.Time) bool {
	state, ok := rec.SpacedRepetition[wordID]
	if !ok {
		return false
	}
	return !state.NextReview.After(now)
}
