// Package streak tracks day-over-day learning continuity: streak counters,
// the one-day grace period, freeze-credit recovery and milestone awards.
package streak

import (
	"time"

	"github.com/example/wortbot/pkg/models"
)

// Milestones are the streak-day thresholds that earn achievements,
// in ascending order.
var Milestones = []int{7, 14, 30, 50, 100, 200, 365, 500, 1000}

// Reward describes the achievement granted at a milestone.
type Reward struct {
	Title       string
	Description string
	FreezeBonus int
}

// Rewards maps each milestone to its achievement title and freeze-credit
// bonus.
var Rewards = map[int]Reward{
	7:    {"Week Warrior", "7 days of consistent learning!", 1},
	14:   {"Fortnight Fighter", "2 weeks strong!", 1},
	30:   {"Monthly Master", "30 days of dedication!", 2},
	50:   {"Fifty Fantastic", "50 days of German mastery!", 2},
	100:  {"Century Scholar", "100 days of excellence!", 3},
	200:  {"Bicentennial Brain", "200 days of linguistic growth!", 3},
	365:  {"Annual Achiever", "A full year of German learning!", 5},
	500:  {"Quincentennial Genius", "500 days of unwavering commitment!", 5},
	1000: {"Millennium Master", "1000 days of German excellence!", 10},
}

// freezeLookbackDays bounds how old a broken streak can be and still be
// recovered with a freeze credit.
const freezeLookbackDays = 7

// Update is the outcome descriptor for one tracker transition. Exactly which
// flags are set depends on the gap since the last lesson; the caller renders
// it into a user-facing message.
type Update struct {
	Continued       bool
	Broken          bool
	Recovered       bool
	GracePeriodUsed bool
	Milestone       int // 0 when no milestone was reached
}

// Tracker advances the streak fields of a LearnerRecord. It has no state of
// its own; every transition is a pure function of the record and the lesson
// date.
type Tracker struct{}

// New returns a streak tracker.
func New() *Tracker {
	return &Tracker{}
}

// Track applies one lesson date to the record. Repeated calls on the same
// calendar day are no-ops. The date is compared at day granularity; time of
// day is ignored.
func (t *Tracker) Track(rec *models.LearnerRecord, lessonDate time.Time) Update {
	var upd Update
	date := lessonDate.Format("2006-01-02")

	last, parseErr := time.Parse("2006-01-02", rec.LastLessonDate)

	if rec.LastLessonDate == "" || parseErr != nil {
		// First lesson ever, or an unparseable stored date. Either way the
		// streak restarts at one and the date below becomes valid again.
		rec.DailyStreak = 1
		rec.TotalStudyDays++
		upd.Continued = true
	} else {
		gap := daysBetween(last, lessonDate)

		switch {
		case gap == 0:
			// Same calendar day: already counted.
			return upd

		case gap < 0:
			// Backdated call; leave the streak untouched.
			return upd

		case gap == 1:
			rec.DailyStreak++
			rec.TotalStudyDays++
			upd.Continued = true
			// An on-time lesson ends any earlier grace period.
			rec.GracePeriodActive = false
			rec.GracePeriodExpires = nil

		case gap == 2 && !rec.GracePeriodActive:
			// One missed day, covered by the single-use grace period.
			rec.DailyStreak++
			rec.TotalStudyDays++
			rec.GracePeriodActive = true
			expires := lessonDate.AddDate(0, 0, 1)
			rec.GracePeriodExpires = &expires
			upd.GracePeriodUsed = true
			upd.Continued = true

		default:
			oldStreak := rec.DailyStreak
			rec.TotalStudyDays++

			if rec.FreezeAvailable > 0 && gap <= freezeLookbackDays {
				rec.FreezeAvailable--
				rec.FreezeUsed++
				rec.DailyStreak = oldStreak + 1
				upd.Recovered = true
			} else {
				if oldStreak > rec.LongestStreak {
					rec.LongestStreak = oldStreak
				}
				rec.DailyStreak = 1
				upd.Broken = true
			}
		}
	}

	rec.LastLessonDate = date

	if m := t.unreachedMilestone(rec); m > 0 {
		t.award(rec, m, lessonDate)
		upd.Milestone = m
	}

	if rec.DailyStreak > rec.LongestStreak {
		rec.LongestStreak = rec.DailyStreak
	}
	return upd
}

// unreachedMilestone returns the first milestone at or below the current
// streak that has not been awarded yet, or 0.
func (t *Tracker) unreachedMilestone(rec *models.LearnerRecord) int {
	for _, m := range Milestones {
		if rec.DailyStreak >= m && !rec.HasMilestone(m) {
			return m
		}
	}
	return 0
}

func (t *Tracker) award(rec *models.LearnerRecord, milestone int, now time.Time) {
	rec.StreakMilestones = append(rec.StreakMilestones, milestone)

	reward := Rewards[milestone]
	rec.Achievements = append(rec.Achievements, models.Achievement{
		Type:        "streak_milestone",
		Date:        now,
		Milestone:   milestone,
		Title:       reward.Title,
		Description: reward.Description,
	})
	rec.FreezeAvailable += reward.FreezeBonus
}

// NextMilestone returns the first milestone above the current streak, or 0
// when all milestones are behind the learner.
func NextMilestone(rec *models.LearnerRecord) int {
	for _, m := range Milestones {
		if m > rec.DailyStreak {
			return m
		}
	}
	return 0
}

// Consistency returns the share of calendar days since the start date on
// which the learner studied, as a percentage capped at 100.
func Consistency(rec *models.LearnerRecord, now time.Time) float64 {
	if rec.TotalStudyDays == 0 {
		return 0
	}
	days := daysBetween(rec.StartDate, now) + 1
	if days < 1 {
		days = 1
	}
	pct := float64(rec.TotalStudyDays) / float64(days) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// daysBetween returns the number of calendar days from a to b, ignoring the
// time of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	at := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bt := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bt.Sub(at).Hours() / 24)
}
