package quiz

import (
	"strings"
	"time"

	"github.com/example/wortbot/internal/analytics"
	"github.com/example/wortbot/internal/spaced_repetition"
	"github.com/example/wortbot/pkg/models"
)

// kindRecommendations map a weak question kind to a study suggestion.
var kindRecommendations = map[models.QuestionKind]string{
	models.KindMultipleChoice: "Review word translations with flashcards to strengthen recognition",
	models.KindFillInBlank:    "Practice writing words in context to improve recall",
	models.KindConstruction:   "Practice building full sentences to improve word order",
}

// Grade compares submitted answers against the quiz. Missing answers count
// as incorrect; fill-in-blank and construction answers compare
// case-insensitively after trimming. Up to three recommendations are derived
// from question kinds answered below 60% accuracy.
func Grade(quiz models.Quiz, answers []models.Answer) models.QuizResult {
	result := models.QuizResult{Total: len(quiz.Questions)}

	type kindTally struct{ correct, total int }
	tallies := make(map[models.QuestionKind]*kindTally)

	for i, q := range quiz.Questions {
		outcome := models.QuestionOutcome{WordID: q.WordID, Kind: q.Kind}
		if i < len(answers) {
			outcome.Answered = true
			outcome.Correct = correct(q, answers[i])
		}
		if outcome.Correct {
			result.Score++
		}
		result.Outcomes = append(result.Outcomes, outcome)

		tally := tallies[q.Kind]
		if tally == nil {
			tally = &kindTally{}
			tallies[q.Kind] = tally
		}
		tally.total++
		if outcome.Correct {
			tally.correct++
		}
	}

	if result.Total > 0 {
		result.Percentage = float64(result.Score) / float64(result.Total) * 100
	}

	for _, kind := range models.QuestionKinds {
		if len(result.Recommendations) >= 3 {
			break
		}
		tally := tallies[kind]
		if tally == nil || tally.total == 0 {
			continue
		}
		accuracy := float64(tally.correct) / float64(tally.total) * 100
		if accuracy < 60 {
			result.Recommendations = append(result.Recommendations, kindRecommendations[kind])
		}
	}

	return result
}

func correct(q models.Question, a models.Answer) bool {
	switch q.Kind {
	case models.KindMultipleChoice:
		return a.Index == q.CorrectIndex
	case models.KindFillInBlank, models.KindConstruction:
		return strings.EqualFold(strings.TrimSpace(a.Text), strings.TrimSpace(q.CorrectText))
	}
	return false
}

// ProcessOutcomes grades the quiz and folds every outcome into the learner's
// review schedule and analytics, then records the quiz score.
func ProcessOutcomes(rec *models.LearnerRecord, quiz models.Quiz, answers []models.Answer, sched *spaced_repetition.Scheduler, tracker *analytics.Tracker, now time.Time) models.QuizResult {
	result := Grade(quiz, answers)

	for _, outcome := range result.Outcomes {
		sched.RecordOutcome(rec, outcome.WordID, outcome.Correct, now)
	}
	tracker.TrackQuiz(rec, result, quiz.Mode, now)
	rec.RecordQuizScore(result.Score, result.Total, now)

	return result
}
