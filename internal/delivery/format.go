package delivery

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/wortbot/internal/analytics"
	"github.com/example/wortbot/internal/difficulty"
	"github.com/example/wortbot/internal/streak"
	"github.com/example/wortbot/internal/vocab"
	"github.com/example/wortbot/pkg/models"
)

// FormatLesson renders the daily lesson message: the words, optional grammar
// tips, streak status, and any milestone or level-up banner.
func FormatLesson(rec *models.LearnerRecord, words []models.VocabularyItem, upd streak.Update, leveledUp string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 *Your German words for today* (%s)\n\n", rec.CurrentLevel)

	for i, w := range words {
		fmt.Fprintf(&b, "*%d. %s* — %s\n", i+1, w.German, w.English)
		if w.Pronunciation != "" {
			fmt.Fprintf(&b, "🗣 %s\n", w.Pronunciation)
		}
		if w.Example != "" {
			fmt.Fprintf(&b, "📝 %s\n", w.Example)
			if w.ExampleTranslation != "" {
				fmt.Fprintf(&b, "🇬🇧 %s\n", w.ExampleTranslation)
			}
		}
		fmt.Fprintf(&b, "⚡ Difficulty: %s\n\n", difficulty.Label(difficulty.Score(w)))
	}

	if rec.Preferences.IncludeGrammarTips {
		var types []string
		for _, w := range words {
			types = append(types, w.WordType)
		}
		tips := vocab.TipsForTypes(types)
		if len(tips) > 0 {
			b.WriteString("📚 *Grammar tips*\n")
			for _, tip := range tips {
				fmt.Fprintf(&b, "• %s\n", tip)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "🔥 Streak: %d day(s)", rec.DailyStreak)
	if next := streak.NextMilestone(rec); next > 0 {
		fmt.Fprintf(&b, " — %d to go until the next milestone", next-rec.DailyStreak)
	}
	b.WriteString("\n")

	switch {
	case upd.Milestone > 0:
		reward := streak.Rewards[upd.Milestone]
		fmt.Fprintf(&b, "\n🏆 *%d-day milestone reached!* %s\n", upd.Milestone, reward.Title)
		if reward.FreezeBonus > 0 {
			fmt.Fprintf(&b, "🧊 +%d streak freeze(s) earned\n", reward.FreezeBonus)
		}
	case upd.Recovered:
		b.WriteString("\n🧊 A streak freeze saved your streak — welcome back!\n")
	case upd.GracePeriodUsed:
		b.WriteString("\n⏳ Grace period used — don't miss tomorrow!\n")
	case upd.Broken:
		b.WriteString("\n💔 Streak reset — today is day one of a new run!\n")
	}

	if leveledUp != "" {
		fmt.Fprintf(&b, "\n🎓 *Congratulations!* You advanced to level %s!\n", leveledUp)
	}

	return b.String()
}

// FormatStats renders the /stats summary for a learner.
func FormatStats(rec *models.LearnerRecord, tracker *analytics.Tracker, now time.Time) string {
	var b strings.Builder
	b.WriteString("📊 *Your learning stats*\n\n")
	fmt.Fprintf(&b, "🎓 Level: %s\n", rec.CurrentLevel)
	fmt.Fprintf(&b, "📚 Words learned: %d\n", rec.TotalWordsLearned)
	fmt.Fprintf(&b, "🔥 Current streak: %d day(s)\n", rec.DailyStreak)
	fmt.Fprintf(&b, "🏆 Longest streak: %d day(s)\n", rec.LongestStreak)
	fmt.Fprintf(&b, "📅 Total study days: %d\n", rec.TotalStudyDays)
	fmt.Fprintf(&b, "🧊 Streak freezes: %d\n\n", rec.FreezeAvailable)

	for _, level := range models.Levels {
		if lp := rec.WordsByLevel[level]; lp != nil && len(lp.Learned) > 0 {
			fmt.Fprintf(&b, "%s: %d words\n", level, len(lp.Learned))
		}
	}

	engagement := tracker.Engagement(rec, now)
	fmt.Fprintf(&b, "\n⚡ Engagement: %.0f/100 (%s)\n", engagement, analytics.PerformanceLevel(engagement))
	fmt.Fprintf(&b, "🚀 Velocity: %.1f words/day\n", tracker.Velocity(rec, now))
	if avg := rec.RecentQuizAverage(10); avg > 0 {
		fmt.Fprintf(&b, "🧠 Recent quiz average: %.0f%%\n", avg)
	}

	forecast := tracker.Predict(rec, now)
	if forecast.ProjectedMonthWords > 0 {
		fmt.Fprintf(&b, "🔮 On pace for %d words in the next 30 days\n", forecast.ProjectedMonthWords)
	}
	if forecast.Risk != "Low" {
		b.WriteString("📉 Your pace has slowed. A short lesson today keeps the streak alive!\n")
	}

	if len(rec.Achievements) > 0 {
		b.WriteString("\n🏅 *Recent achievements*\n")
		start := len(rec.Achievements) - 3
		if start < 0 {
			start = 0
		}
		for _, a := range rec.Achievements[start:] {
			switch a.Type {
			case "level_up":
				fmt.Fprintf(&b, "• Reached level %s\n", a.Level)
			default:
				fmt.Fprintf(&b, "• %d-day streak: %s\n", a.Milestone, a.Title)
			}
		}
	}
	return b.String()
}
