package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wortbot/pkg/models"
)

func TestComputeWeeklyStats(t *testing.T) {
	tracker := New()
	rec := newRecord()
	rec.Preferences.WordsPerDay = 3 // weekly goal 21

	// 3 words on 5 of the trailing 7 days.
	for i := 1; i <= 5; i++ {
		rec.Analytics.DailyWordCounts[now.AddDate(0, 0, -i).Format(dateLayout)] = 3
	}
	// Previous week: 10 words total.
	rec.Analytics.DailyWordCounts[now.AddDate(0, 0, -10).Format(dateLayout)] = 10

	rec.Analytics.Sessions = []models.SessionRecord{
		{Date: now.AddDate(0, 0, -2), DurationMinutes: 5, Categories: []string{"home", "verbs"}},
		{Date: now.AddDate(0, 0, -3), DurationMinutes: 5, Categories: []string{"home"}},
		{Date: now.AddDate(0, 0, -20), DurationMinutes: 5, Categories: []string{"travel"}},
	}

	stats := tracker.ComputeWeeklyStats(rec, now)

	assert.Equal(t, 15, stats.WordsThisWeek)
	assert.Equal(t, 5, stats.StudyDays)
	assert.InDelta(t, 15.0/21*100, stats.GoalAchievement, 1e-9)
	assert.Equal(t, 10, stats.StudyMinutes)
	assert.InDelta(t, 50.0, stats.Improvement, 1e-9)

	require.Len(t, stats.TopCategories, 2)
	assert.Equal(t, CategoryCount{Category: "home", Count: 2}, stats.TopCategories[0])
	assert.Equal(t, CategoryCount{Category: "verbs", Count: 1}, stats.TopCategories[1])
}

func TestComputeWeeklyStatsEmptyRecord(t *testing.T) {
	tracker := New()
	stats := tracker.ComputeWeeklyStats(newRecord(), now)

	assert.Zero(t, stats.WordsThisWeek)
	assert.Zero(t, stats.StudyDays)
	assert.Zero(t, stats.Improvement)
	assert.Empty(t, stats.TopCategories)
}

func TestWeeklyRecommendationsFlagWeakSpots(t *testing.T) {
	tracker := New()
	rec := newRecord()
	rec.DailyStreak = 2

	recs := tracker.WeeklyRecommendations(rec, WeeklyStats{
		StudyDays:       3,
		GoalAchievement: 40,
		Improvement:     -10,
	})

	assert.Contains(t, recs, "Try to study at least 5 days next week for better consistency")
	assert.Contains(t, recs, "Focus on building a 7-day learning streak")
	assert.Contains(t, recs, "Review previously learned words to strengthen retention")
}

func TestWeeklyRecommendationsDefaultsWhenStrong(t *testing.T) {
	tracker := New()
	rec := newRecord()
	rec.DailyStreak = 30

	recs := tracker.WeeklyRecommendations(rec, WeeklyStats{
		StudyDays:       7,
		GoalAchievement: 110,
		Improvement:     20,
		TopCategories: []CategoryCount{
			{Category: "home", Count: 4},
			{Category: "verbs", Count: 3},
			{Category: "travel", Count: 2},
		},
	})

	require.Len(t, recs, 3)
	assert.Equal(t, "Continue your excellent learning momentum", recs[0])
}

func TestMotivationalMessageTiers(t *testing.T) {
	assert.Contains(t, MotivationalMessage(WeeklyStats{GoalAchievement: 120}), "Outstanding")
	assert.Contains(t, MotivationalMessage(WeeklyStats{GoalAchievement: 85}), "Great job")
	assert.Contains(t, MotivationalMessage(WeeklyStats{GoalAchievement: 65}), "Good effort")
	assert.Contains(t, MotivationalMessage(WeeklyStats{GoalAchievement: 10, StudyDays: 5}), "Consistent effort")
	assert.Contains(t, MotivationalMessage(WeeklyStats{}), "Every step counts")
}

func TestFormatWeeklyReportSections(t *testing.T) {
	tracker := New()
	rec := newRecord()
	rec.DailyStreak = 5
	rec.LongestStreak = 12
	for i := 1; i <= 4; i++ {
		rec.Analytics.DailyWordCounts[now.AddDate(0, 0, -i).Format(dateLayout)] = 3
	}
	rec.Analytics.Sessions = []models.SessionRecord{
		{Date: now.AddDate(0, 0, -1), DurationMinutes: 5, Categories: []string{"home"}},
	}

	report := tracker.FormatWeeklyReport(rec, now)

	assert.True(t, strings.Contains(report, "WEEKLY LEARNING SUMMARY"))
	assert.Contains(t, report, "Words Learned: 12")
	assert.Contains(t, report, "Study Days: 4/7")
	assert.Contains(t, report, "Current Streak: 5 days")
	assert.Contains(t, report, "Longest Streak: 12 days")
	assert.Contains(t, report, "Home: 1 sessions")
	assert.Contains(t, report, "NEXT WEEK'S FOCUS")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Home", capitalize("home"))
	assert.Equal(t, "Übung", capitalize("übung"))
	assert.Equal(t, "", capitalize(""))
}
