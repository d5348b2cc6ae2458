package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wortbot/pkg/models"
)

var now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func newRecord() *models.LearnerRecord {
	return models.NewLearnerRecord("42", now)
}

func sampleWords() []models.VocabularyItem {
	return []models.VocabularyItem{
		{German: "das Haus", English: "house", Category: "home", Level: models.LevelA1},
		{German: "die Tür", English: "door", Category: "home", Level: models.LevelA1},
		{German: "gehen", English: "to go", Category: "verbs", Level: models.LevelA2},
	}
}

func TestTrackSessionRecordsSessionAndCounts(t *testing.T) {
	tracker := New()
	rec := newRecord()

	tracker.TrackSession(rec, sampleWords(), 5, now)

	require.Len(t, rec.Analytics.Sessions, 1)
	session := rec.Analytics.Sessions[0]
	assert.Equal(t, 3, session.WordCount)
	assert.Equal(t, []string{"das Haus", "die Tür", "gehen"}, session.Words)
	assert.Equal(t, []string{"home", "verbs"}, session.Categories)
	assert.Equal(t, []string{"A1", "A2"}, session.Levels)
	assert.Equal(t, 5, session.DurationMinutes)

	assert.Equal(t, 3, rec.Analytics.DailyWordCounts["2024-03-15"])
	assert.Equal(t, 2, rec.Analytics.CategoryStats["home"].WordsLearned)
	assert.Equal(t, 1, rec.Analytics.CategoryStats["home"].TotalSessions)
	assert.Equal(t, 1, rec.Analytics.CategoryStats["verbs"].WordsLearned)
}

func TestTrackSessionAccumulatesAcrossDays(t *testing.T) {
	tracker := New()
	rec := newRecord()

	tracker.TrackSession(rec, sampleWords(), 5, now)
	tracker.TrackSession(rec, sampleWords()[:1], 5, now.AddDate(0, 0, 1))

	assert.Equal(t, 3, rec.Analytics.DailyWordCounts["2024-03-15"])
	assert.Equal(t, 1, rec.Analytics.DailyWordCounts["2024-03-16"])
	assert.Equal(t, 2, rec.Analytics.CategoryStats["home"].TotalSessions)
	assert.Equal(t, 3, rec.Analytics.CategoryStats["home"].WordsLearned)
}

func TestVelocityIsThirtyDayMean(t *testing.T) {
	tracker := New()
	rec := newRecord()

	// 3 words a day for the last 10 days, zeros otherwise.
	for i := 0; i < 10; i++ {
		day := now.AddDate(0, 0, -i).Format(dateLayout)
		rec.Analytics.DailyWordCounts[day] = 3
	}

	assert.InDelta(t, 1.0, tracker.Velocity(rec, now), 1e-9)
}

func TestVelocityIgnoresCountsOutsideWindow(t *testing.T) {
	tracker := New()
	rec := newRecord()

	rec.Analytics.DailyWordCounts[now.AddDate(0, 0, -40).Format(dateLayout)] = 300
	rec.Analytics.DailyWordCounts[now.Format(dateLayout)] = 3

	assert.InDelta(t, 0.1, tracker.Velocity(rec, now), 1e-9)
}

func TestVelocityEmptyRecordIsZero(t *testing.T) {
	tracker := New()
	assert.Zero(t, tracker.Velocity(newRecord(), now))
}

func TestConsistencyRequiresSevenRecordedDays(t *testing.T) {
	tracker := New()
	rec := newRecord()

	for i := 0; i < 6; i++ {
		rec.Analytics.DailyWordCounts[now.AddDate(0, 0, -i).Format(dateLayout)] = 3
	}
	assert.Zero(t, tracker.Consistency(rec, now))

	rec.Analytics.DailyWordCounts[now.AddDate(0, 0, -6).Format(dateLayout)] = 3
	assert.InDelta(t, 7.0/30*100, tracker.Consistency(rec, now), 1e-9)
}

func TestRecordRetentionMath(t *testing.T) {
	tracker := New()
	rec := newRecord()

	tracker.RecordRetention(rec, "das Haus", true)
	tracker.RecordRetention(rec, "das Haus", true)
	tracker.RecordRetention(rec, "das Haus", false)

	stats := rec.Analytics.Retention["das Haus"]
	require.NotNil(t, stats)
	assert.Equal(t, 3, stats.TestsTaken)
	assert.Equal(t, 2, stats.CorrectAnswers)
	assert.InDelta(t, 66.666, stats.RetentionRate, 0.001)
}

func TestTrackQuizAppendsHistoryAndRetention(t *testing.T) {
	tracker := New()
	rec := newRecord()

	result := models.QuizResult{
		Score:      1,
		Total:      2,
		Percentage: 50,
		Outcomes: []models.QuestionOutcome{
			{WordID: "das Haus", Kind: models.KindMultipleChoice, Correct: true, Answered: true},
			{WordID: "gehen", Kind: models.KindFillInBlank, Correct: false, Answered: true},
		},
	}
	tracker.TrackQuiz(rec, result, "daily", now)

	require.Len(t, rec.Analytics.QuizHistory, 1)
	assert.Equal(t, "daily", rec.Analytics.QuizHistory[0].QuizMode)
	assert.InDelta(t, 50.0, rec.Analytics.QuizHistory[0].Percentage, 1e-9)
	assert.Equal(t, 1, rec.Analytics.Retention["das Haus"].CorrectAnswers)
	assert.Equal(t, 1, rec.Analytics.Retention["gehen"].TestsTaken)
	assert.Zero(t, rec.Analytics.Retention["gehen"].CorrectAnswers)
}

func TestAverageQuizPerformanceUsesLastTen(t *testing.T) {
	tracker := New()
	rec := newRecord()

	// One old bad quiz followed by ten perfect quizzes.
	rec.Analytics.QuizHistory = append(rec.Analytics.QuizHistory, models.QuizRecord{Percentage: 0})
	for i := 0; i < 10; i++ {
		rec.Analytics.QuizHistory = append(rec.Analytics.QuizHistory, models.QuizRecord{Percentage: 100})
	}

	assert.InDelta(t, 100.0, tracker.AverageQuizPerformance(rec), 1e-9)
}

func TestEngagementCapsComponents(t *testing.T) {
	tracker := New()
	rec := newRecord()
	rec.DailyStreak = 400 // streak component capped at 40

	for i := 0; i < 30; i++ {
		rec.Analytics.DailyWordCounts[now.AddDate(0, 0, -i).Format(dateLayout)] = 50
	}
	for i := 0; i < 10; i++ {
		rec.Analytics.QuizHistory = append(rec.Analytics.QuizHistory, models.QuizRecord{Percentage: 100})
	}

	// 40 + 30 + 20 + 10 exactly hits the cap.
	assert.InDelta(t, 100.0, tracker.Engagement(rec, now), 1e-9)
}

func TestEngagementZeroForFreshRecord(t *testing.T) {
	tracker := New()
	assert.Zero(t, tracker.Engagement(newRecord(), now))
}

func TestPerformanceLevelBuckets(t *testing.T) {
	assert.Equal(t, "Excellent", PerformanceLevel(85))
	assert.Equal(t, "Good", PerformanceLevel(60))
	assert.Equal(t, "Fair", PerformanceLevel(45))
	assert.Equal(t, "Needs Improvement", PerformanceLevel(10))
}
