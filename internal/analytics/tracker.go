// Package analytics accumulates learning statistics inside a learner record
// and derives scores and summaries from them.
package analytics

import (
	"time"

	"github.com/example/wortbot/pkg/models"
)

const dateLayout = "2006-01-02"

// Tracker updates the analytics blob of a learner record.
type Tracker struct{}

// New creates a tracker.
func New() *Tracker {
	return &Tracker{}
}

// TrackSession records a completed learning session: the session entry, the
// daily word count, per-category counters, and the derived velocity and
// engagement scores.
func (t *Tracker) TrackSession(rec *models.LearnerRecord, words []models.VocabularyItem, durationMinutes int, now time.Time) {
	rec.Analytics.Sessions = append(rec.Analytics.Sessions, models.SessionRecord{
		Date:            now,
		WordCount:       len(words),
		Words:           wordIDs(words),
		Categories:      distinct(words, func(w models.VocabularyItem) string { return w.Category }),
		Levels:          distinct(words, func(w models.VocabularyItem) string { return w.Level }),
		DurationMinutes: durationMinutes,
	})

	day := now.Format(dateLayout)
	rec.Analytics.DailyWordCounts[day] += len(words)

	for _, w := range words {
		stats := rec.Analytics.CategoryStats[w.Category]
		if stats == nil {
			stats = &models.CategoryStats{}
			rec.Analytics.CategoryStats[w.Category] = stats
		}
		stats.WordsLearned++
	}
	for _, cat := range distinct(words, func(w models.VocabularyItem) string { return w.Category }) {
		rec.Analytics.CategoryStats[cat].TotalSessions++
	}

	rec.Analytics.LearningVelocity = t.Velocity(rec, now)
	rec.Analytics.EngagementScore = t.Engagement(rec, now)
}

// TrackQuiz records a completed quiz and updates per-word retention from its
// outcomes.
func (t *Tracker) TrackQuiz(rec *models.LearnerRecord, result models.QuizResult, mode string, now time.Time) {
	rec.Analytics.QuizHistory = append(rec.Analytics.QuizHistory, models.QuizRecord{
		Date:       now,
		Score:      result.Score,
		Total:      result.Total,
		Percentage: result.Percentage,
		QuizMode:   mode,
	})

	for _, outcome := range result.Outcomes {
		t.RecordRetention(rec, outcome.WordID, outcome.Correct)
	}

	rec.Analytics.EngagementScore = t.Engagement(rec, now)
}

// RecordRetention folds a single test outcome into the word's retention
// stats.
func (t *Tracker) RecordRetention(rec *models.LearnerRecord, wordID string, correct bool) {
	stats := rec.Analytics.Retention[wordID]
	if stats == nil {
		stats = &models.RetentionStats{}
		rec.Analytics.Retention[wordID] = stats
	}
	stats.TestsTaken++
	if correct {
		stats.CorrectAnswers++
	}
	stats.RetentionRate = float64(stats.CorrectAnswers) / float64(stats.TestsTaken) * 100
}

// Velocity returns the mean words-per-day over the last 30 days.
func (t *Tracker) Velocity(rec *models.LearnerRecord, now time.Time) float64 {
	if len(rec.Analytics.DailyWordCounts) == 0 {
		return 0
	}
	total := 0
	for i := 0; i < 30; i++ {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		total += rec.Analytics.DailyWordCounts[day]
	}
	return float64(total) / 30
}

// Consistency returns the share of the last 30 days with at least one
// learned word, as a percentage. Fewer than 7 recorded days yields 0.
func (t *Tracker) Consistency(rec *models.LearnerRecord, now time.Time) float64 {
	if len(rec.Analytics.DailyWordCounts) < 7 {
		return 0
	}
	active := 0
	for i := 0; i < 30; i++ {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		if rec.Analytics.DailyWordCounts[day] > 0 {
			active++
		}
	}
	return float64(active) / 30 * 100
}

// AverageQuizPerformance returns the mean percentage over the last 10
// quizzes.
func (t *Tracker) AverageQuizPerformance(rec *models.LearnerRecord) float64 {
	history := rec.Analytics.QuizHistory
	if len(history) == 0 {
		return 0
	}
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	sum := 0.0
	for _, q := range history {
		sum += q.Percentage
	}
	return sum / float64(len(history))
}

// Engagement combines streak (40%), velocity (30%), quiz performance (20%)
// and consistency (10%) into a 0-100 score.
func (t *Tracker) Engagement(rec *models.LearnerRecord, now time.Time) float64 {
	score := 0.0

	streakScore := float64(rec.DailyStreak) * 2
	if streakScore > 40 {
		streakScore = 40
	}
	score += streakScore

	velocityScore := t.Velocity(rec, now) * 10
	if velocityScore > 30 {
		velocityScore = 30
	}
	score += velocityScore

	score += t.AverageQuizPerformance(rec) * 0.2
	score += t.Consistency(rec, now) * 0.1

	if score > 100 {
		score = 100
	}
	return score
}

// PerformanceLevel classifies an engagement score.
func PerformanceLevel(engagement float64) string {
	switch {
	case engagement >= 80:
		return "Excellent"
	case engagement >= 60:
		return "Good"
	case engagement >= 40:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}

func wordIDs(words []models.VocabularyItem) []string {
	ids := make([]string, len(words))
	for i, w := range words {
		ids[i] = w.German
	}
	return ids
}

func distinct(words []models.VocabularyItem, key func(models.VocabularyItem) string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, w := range words {
		k := key(w)
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
