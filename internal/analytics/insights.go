package analytics

import (
	"time"

	"github.com/example/wortbot/pkg/models"
)

// Forecast is a forward-looking read of the learner's engagement: how likely
// they are to fall off, and what the current pace projects to.
type Forecast struct {
	Risk                 string   // "Low", "Medium", "High"
	RiskFactors          []string
	ProjectedMonthWords  int
	StreakSustainability string // "Low", "Medium", "High"
}

// Predict assesses engagement risk from the current engagement score, streak
// and velocity. Two or more weak signals mean high risk, one means medium.
func (t *Tracker) Predict(rec *models.LearnerRecord, now time.Time) Forecast {
	engagement := t.Engagement(rec, now)
	velocity := t.Velocity(rec, now)

	var factors []string
	if engagement < 40 {
		factors = append(factors, "Low engagement score")
	}
	if rec.DailyStreak < 3 {
		factors = append(factors, "Short learning streak")
	}
	if velocity < 1 {
		factors = append(factors, "Low learning velocity")
	}

	risk := "Low"
	switch {
	case len(factors) >= 2:
		risk = "High"
	case len(factors) == 1:
		risk = "Medium"
	}

	sustainability := "Low"
	switch {
	case rec.DailyStreak >= 14:
		sustainability = "High"
	case rec.DailyStreak >= 7:
		sustainability = "Medium"
	}

	return Forecast{
		Risk:                 risk,
		RiskFactors:          factors,
		ProjectedMonthWords:  int(velocity * 30),
		StreakSustainability: sustainability,
	}
}
