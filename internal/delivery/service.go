// Package delivery orchestrates the daily batch steps: lessons, quizzes and
// weekly reports. Each entry point loads one learner document, mutates it in
// memory, sends messages, and writes the document back in full.
package delivery

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/example/wortbot/internal/analytics"
	"github.com/example/wortbot/internal/difficulty"
	"github.com/example/wortbot/internal/quiz"
	"github.com/example/wortbot/internal/spaced_repetition"
	"github.com/example/wortbot/internal/store"
	"github.com/example/wortbot/internal/streak"
	"github.com/example/wortbot/internal/vocab"
	"github.com/example/wortbot/pkg/models"
)

const dateLayout = "2006-01-02"

// sessionMinutes is the assumed duration of one lesson for analytics.
const sessionMinutes = 5

// reviewSwapChance is the probability that one new word in a lesson is
// replaced by a word due for review.
const reviewSwapChance = 0.25

// Sender delivers a text message to a chat. Implementations split long
// messages before sending.
type Sender interface {
	SendText(chatID, text string) error
}

// Service wires the learning components into idempotent per-day batch steps.
type Service struct {
	store   *store.Store
	catalog *vocab.Catalog
	sched   *spaced_repetition.Scheduler
	streaks *streak.Tracker
	tracker *analytics.Tracker
	gen     *quiz.Generator
	sender  Sender
	logger  *zap.Logger
	rng     *rand.Rand
	clock   func() time.Time
}

// New creates a delivery service. A nil rng falls back to a time-seeded
// source; a nil clock falls back to time.Now.
func New(st *store.Store, catalog *vocab.Catalog, sender Sender, logger *zap.Logger, rng *rand.Rand) *Service {
	if rng == nil {
		rng = difficulty.NewRand()
	}
	return &Service{
		store:   st,
		catalog: catalog,
		sched:   spaced_repetition.New(),
		streaks: streak.New(),
		tracker: analytics.New(),
		gen:     quiz.NewGenerator(catalog, rng),
		sender:  sender,
		logger:  logger,
		rng:     rng,
		clock:   time.Now,
	}
}

// WithClock overrides the time source.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// DeliverLesson sends today's words to the learner, marks them learned,
// schedules their reviews, and advances the streak. Repeated calls on the
// same calendar day are no-ops.
func (s *Service) DeliverLesson(chatID string) error {
	now := s.clock()
	today := now.Format(dateLayout)
	rec := s.store.Load(chatID, now)

	if rec.LastLessonDate == today {
		s.logger.Info("lesson already delivered today", zap.String("chat_id", chatID))
		return nil
	}

	words := s.selectLessonWords(rec, now)
	if len(words) == 0 {
		s.logger.Warn("no words available for lesson",
			zap.String("chat_id", chatID), zap.String("level", rec.CurrentLevel))
		sendErr := s.sender.SendText(chatID, "🎉 You have learned every available word at your level!")
		// Stamp the day so the congratulation is once-per-day too.
		rec.LastLessonDate = today
		if err := s.store.Save(rec); err != nil {
			return fmt.Errorf("failed to save progress for %s: %w", chatID, err)
		}
		return sendErr
	}

	upd := s.streaks.Track(rec, now)

	for _, word := range words {
		if rec.AddLearnedWord(word.German, word.Level) {
			s.sched.Schedule(rec, word.German, now)
		}
	}
	s.tracker.TrackSession(rec, words, sessionMinutes, now)
	rec.LastLessonDate = today

	var leveledUp string
	if rec.ShouldLevelUp() {
		leveledUp = rec.LevelUp(now)
	}

	msg := FormatLesson(rec, words, upd, leveledUp)
	sendErr := s.sender.SendText(chatID, msg)
	if sendErr != nil {
		s.logger.Error("failed to send lesson",
			zap.String("chat_id", chatID), zap.Error(sendErr))
	}

	// The mutations stand even when the send failed: at-least-once, not
	// exactly-once.
	if err := s.store.Save(rec); err != nil {
		return fmt.Errorf("failed to save progress for %s: %w", chatID, err)
	}

	s.logger.Info("lesson delivered",
		zap.String("chat_id", chatID),
		zap.Int("words", len(words)),
		zap.Int("streak", rec.DailyStreak),
		zap.Int("milestone", upd.Milestone))
	return sendErr
}

// selectLessonWords picks the day's new words, occasionally swapping one for
// a word due for review.
func (s *Service) selectLessonWords(rec *models.LearnerRecord, now time.Time) []models.VocabularyItem {
	count := rec.Preferences.WordsPerDay
	if count <= 0 {
		count = 3
	}
	words := s.catalog.ProgressiveWords(rec.CurrentLevel, count, rec.LearnedWords(), s.rng)

	if len(words) > 0 && s.rng.Float64() < reviewSwapChance {
		due := s.sched.DueWords(rec, now)
		if len(due) > 0 {
			if item, ok := s.catalog.ByID(due[s.rng.Intn(len(due))]); ok {
				words[len(words)-1] = item
			}
		}
	}
	return words
}

// ShouldQuiz reports whether today calls for a quiz: every third streak day,
// or any day with ten or more learned words.
func (s *Service) ShouldQuiz(rec *models.LearnerRecord) bool {
	if rec.TotalWordsLearned == 0 {
		return false
	}
	if rec.DailyStreak > 0 && rec.DailyStreak%3 == 0 {
		return true
	}
	return rec.TotalWordsLearned >= 10
}

// DeliverQuiz sends a self-check quiz over the learner's weakest words.
// Repeated calls on the same calendar day are no-ops.
func (s *Service) DeliverQuiz(chatID string) error {
	now := s.clock()
	today := now.Format(dateLayout)
	rec := s.store.Load(chatID, now)

	if rec.LastQuizDate == today {
		s.logger.Info("quiz already delivered today", zap.String("chat_id", chatID))
		return nil
	}

	q := s.BuildQuiz(rec, 5, "daily", now)
	if len(q.Questions) == 0 {
		s.logger.Info("no quiz material yet", zap.String("chat_id", chatID))
		return nil
	}

	sendErr := s.sender.SendText(chatID, quiz.FormatQuizMessage(q))
	if sendErr != nil {
		s.logger.Error("failed to send quiz",
			zap.String("chat_id", chatID), zap.Error(sendErr))
	}

	rec.LastQuizDate = today
	if err := s.store.Save(rec); err != nil {
		return fmt.Errorf("failed to save progress for %s: %w", chatID, err)
	}

	s.logger.Info("quiz delivered",
		zap.String("chat_id", chatID), zap.Int("questions", len(q.Questions)))
	return sendErr
}

// BuildQuiz assembles a quiz over the learner's priority words: low mastery
// first, due-for-review ahead of the rest, recent errors weighted in.
func (s *Service) BuildQuiz(rec *models.LearnerRecord, wordCount int, mode string, now time.Time) models.Quiz {
	var candidates []difficulty.Candidate
	for _, id := range rec.LearnedWords() {
		item, ok := s.catalog.ByID(id)
		if !ok {
			continue
		}
		stats := rec.Analytics.WordRetention(id)
		candidates = append(candidates, difficulty.Candidate{
			Item:         item,
			Mastery:      difficulty.Mastery(stats),
			DueForReview: s.sched.IsDue(rec, id, now),
			RecentErrors: difficulty.RecentErrorEstimate(stats),
		})
	}
	selected := difficulty.SelectPriorityWords(candidates, wordCount, s.rng)
	return s.gen.Generate(rec, selected, mode, now)
}

// CompleteQuiz grades a submitted quiz, folds the outcomes into the review
// schedule and analytics, sends the feedback message, and persists.
func (s *Service) CompleteQuiz(chatID string, q models.Quiz, answers []models.Answer) (models.QuizResult, error) {
	now := s.clock()
	rec := s.store.Load(chatID, now)

	result := quiz.ProcessOutcomes(rec, q, answers, s.sched, s.tracker, now)
	rec.LastQuizDate = now.Format(dateLayout)

	sendErr := s.sender.SendText(chatID, quiz.FormatResultMessage(result))
	if sendErr != nil {
		s.logger.Error("failed to send quiz result",
			zap.String("chat_id", chatID), zap.Error(sendErr))
	}

	if err := s.store.Save(rec); err != nil {
		return result, fmt.Errorf("failed to save progress for %s: %w", chatID, err)
	}
	return result, sendErr
}

// DeliverWeeklyReport sends the weekly analytics summary. Repeated calls on
// the same calendar day are no-ops.
func (s *Service) DeliverWeeklyReport(chatID string) error {
	now := s.clock()
	today := now.Format(dateLayout)
	rec := s.store.Load(chatID, now)

	if rec.LastReportDate == today {
		s.logger.Info("report already delivered today", zap.String("chat_id", chatID))
		return nil
	}

	msg := s.tracker.FormatWeeklyReport(rec, now)
	sendErr := s.sender.SendText(chatID, msg)
	if sendErr != nil {
		s.logger.Error("failed to send weekly report",
			zap.String("chat_id", chatID), zap.Error(sendErr))
	}

	rec.LastReportDate = today
	if err := s.store.Save(rec); err != nil {
		return fmt.Errorf("failed to save progress for %s: %w", chatID, err)
	}

	s.logger.Info("weekly report delivered", zap.String("chat_id", chatID))
	return sendErr
}

// ForAllLearners runs the step for every stored learner document, logging
// and continuing past per-user failures.
func (s *Service) ForAllLearners(step func(chatID string) error) error {
	ids, err := s.store.List()
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := step(id); err != nil {
			s.logger.Error("batch step failed", zap.String("chat_id", id), zap.Error(err))
		}
	}
	return nil
}

// Record loads a learner record without mutating it, for read-only surfaces
// such as /stats.
func (s *Service) Record(chatID string) *models.LearnerRecord {
	return s.store.Load(chatID, s.clock())
}

// Tracker exposes the analytics tracker for read-only rendering.
func (s *Service) Tracker() *analytics.Tracker {
	return s.tracker
}
