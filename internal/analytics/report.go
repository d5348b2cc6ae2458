package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/example/wortbot/pkg/models"
)

// WeeklyStats summarizes the trailing seven days of learning.
type WeeklyStats struct {
	WordsThisWeek   int
	StudyDays       int
	GoalAchievement float64 // percentage of the weekly word goal
	StudyMinutes    int
	Improvement     float64 // percentage vs the week before
	TopCategories   []CategoryCount
}

// CategoryCount pairs a category with its session count.
type CategoryCount struct {
	Category string
	Count    int
}

// ComputeWeeklyStats derives the weekly summary numbers from the record.
func (t *Tracker) ComputeWeeklyStats(rec *models.LearnerRecord, now time.Time) WeeklyStats {
	var stats WeeklyStats
	weekStart := now.AddDate(0, 0, -7)

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i).Format(dateLayout)
		count := rec.Analytics.DailyWordCounts[day]
		stats.WordsThisWeek += count
		if count > 0 {
			stats.StudyDays++
		}
	}

	weeklyGoal := rec.Preferences.WordsPerDay * 7
	if weeklyGoal > 0 {
		stats.GoalAchievement = float64(stats.WordsThisWeek) / float64(weeklyGoal) * 100
	}

	categoryCounts := make(map[string]int)
	for _, session := range rec.Analytics.Sessions {
		if session.Date.Before(weekStart) {
			continue
		}
		stats.StudyMinutes += session.DurationMinutes
		for _, cat := range session.Categories {
			categoryCounts[cat]++
		}
	}
	for cat, count := range categoryCounts {
		stats.TopCategories = append(stats.TopCategories, CategoryCount{Category: cat, Count: count})
	}
	sort.Slice(stats.TopCategories, func(i, j int) bool {
		if stats.TopCategories[i].Count != stats.TopCategories[j].Count {
			return stats.TopCategories[i].Count > stats.TopCategories[j].Count
		}
		return stats.TopCategories[i].Category < stats.TopCategories[j].Category
	})

	lastWeekStart := weekStart.AddDate(0, 0, -7)
	lastWeekWords := 0
	for i := 0; i < 7; i++ {
		day := lastWeekStart.AddDate(0, 0, i).Format(dateLayout)
		lastWeekWords += rec.Analytics.DailyWordCounts[day]
	}
	if lastWeekWords > 0 {
		stats.Improvement = float64(stats.WordsThisWeek-lastWeekWords) / float64(lastWeekWords) * 100
	}

	return stats
}

// WeeklyRecommendations derives next-week suggestions from the weekly stats.
func (t *Tracker) WeeklyRecommendations(rec *models.LearnerRecord, stats WeeklyStats) []string {
	var recs []string

	if stats.StudyDays < 5 {
		recs = append(recs, "Try to study at least 5 days next week for better consistency")
	}
	if stats.GoalAchievement < 80 {
		recs = append(recs, "Aim to reach your daily word goals more consistently")
	}
	if len(stats.TopCategories) < 3 {
		recs = append(recs, "Explore different vocabulary categories for well-rounded learning")
	}
	if rec.DailyStreak < 7 {
		recs = append(recs, "Focus on building a 7-day learning streak")
	}
	if stats.Improvement < 0 {
		recs = append(recs, "Review previously learned words to strengthen retention")
	}

	if len(recs) == 0 {
		recs = []string{
			"Continue your excellent learning momentum",
			"Try challenging yourself with more advanced vocabulary",
			"Consider taking more quizzes to test your knowledge",
		}
	}
	return recs
}

// MotivationalMessage picks a closing line matching the week's performance.
func MotivationalMessage(stats WeeklyStats) string {
	switch {
	case stats.GoalAchievement >= 100:
		return "🌟 Outstanding work! You exceeded your weekly goals!"
	case stats.GoalAchievement >= 80:
		return "🎉 Great job! You're making excellent progress!"
	case stats.GoalAchievement >= 60:
		return "👍 Good effort! Keep building that momentum!"
	case stats.StudyDays >= 5:
		return "💪 Consistent effort pays off! Keep it up!"
	default:
		return "🚀 Every step counts! Let's make next week even better!"
	}
}

// FormatWeeklyReport renders the weekly summary message for a learner.
func (t *Tracker) FormatWeeklyReport(rec *models.LearnerRecord, now time.Time) string {
	stats := t.ComputeWeeklyStats(rec, now)

	var b strings.Builder
	b.WriteString("📊 *WEEKLY LEARNING SUMMARY* 📊\n\n")

	b.WriteString("🎯 *THIS WEEK'S PROGRESS*\n")
	fmt.Fprintf(&b, "📚 Words Learned: %d\n", stats.WordsThisWeek)
	fmt.Fprintf(&b, "🔥 Study Days: %d/7\n", stats.StudyDays)
	fmt.Fprintf(&b, "🎯 Daily Goal Achievement: %.1f%%\n", stats.GoalAchievement)
	fmt.Fprintf(&b, "⏱️ Total Study Time: %d minutes\n\n", stats.StudyMinutes)

	b.WriteString("🔥 *STREAK STATUS*\n")
	fmt.Fprintf(&b, "📈 Current Streak: %d days\n", rec.DailyStreak)
	fmt.Fprintf(&b, "🏆 Longest Streak: %d days\n\n", rec.LongestStreak)

	b.WriteString("📈 *PERFORMANCE TRENDS*\n")
	switch {
	case stats.Improvement > 0:
		fmt.Fprintf(&b, "📊 Improvement: +%.1f%% vs last week\n", stats.Improvement)
		b.WriteString("🎉 You're getting better!\n\n")
	case stats.Improvement < 0:
		fmt.Fprintf(&b, "📊 Change: %.1f%% vs last week\n", stats.Improvement)
		b.WriteString("💪 Let's aim higher next week!\n\n")
	default:
		b.WriteString("📊 Steady progress maintained\n\n")
	}

	if len(stats.TopCategories) > 0 {
		b.WriteString("🎯 *TOP LEARNING CATEGORIES*\n")
		top := stats.TopCategories
		if len(top) > 3 {
			top = top[:3]
		}
		for i, cc := range top {
			fmt.Fprintf(&b, "%d. %s: %d sessions\n", i+1, capitalize(cc.Category), cc.Count)
		}
		b.WriteString("\n")
	}

	b.WriteString("💡 *NEXT WEEK'S FOCUS*\n")
	recs := t.WeeklyRecommendations(rec, stats)
	if len(recs) > 3 {
		recs = recs[:3]
	}
	for i, rec := range recs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	b.WriteString(MotivationalMessage(stats))
	return b.String()
}

// capitalize upper-cases the first rune of a category name for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
