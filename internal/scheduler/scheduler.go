// Package scheduler drives the daily batch steps: an hourly sweep that
// delivers lessons and quizzes at each learner's notification hour, and the
// Sunday weekly report run.
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/example/wortbot/internal/delivery"
)

// Scheduler manages the recurring delivery jobs.
type Scheduler struct {
	scheduler *gocron.Scheduler
	svc       *delivery.Service
	logger    *zap.Logger
}

// New creates a scheduler over the delivery service.
func New(svc *delivery.Service, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		svc:       svc,
		logger:    logger,
	}
}

// Start registers the jobs and begins running them asynchronously.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.runHourlySweep)
	s.scheduler.Every(1).Sunday().At("18:00").Do(s.runWeeklyReports)
	s.scheduler.StartAsync()
	s.logger.Info("scheduler started")
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("scheduler stopped")
}

// runHourlySweep delivers the lesson (and, when due, the quiz) to every
// learner whose notification hour matches the current hour. The delivery
// steps are idempotent per day, so an extra sweep does no harm.
func (s *Scheduler) runHourlySweep() {
	hour := time.Now().UTC().Hour()
	err := s.svc.ForAllLearners(func(chatID string) error {
		rec := s.svc.Record(chatID)
		if rec.Preferences.NotificationHour != hour {
			return nil
		}
		if err := s.svc.DeliverLesson(chatID); err != nil {
			return err
		}
		// Reload: the lesson just advanced the streak and word counts.
		rec = s.svc.Record(chatID)
		if s.svc.ShouldQuiz(rec) {
			return s.svc.DeliverQuiz(chatID)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("hourly sweep failed", zap.Error(err))
	}
}

// runWeeklyReports sends the weekly summary to every learner.
func (s *Scheduler) runWeeklyReports() {
	if err := s.svc.ForAllLearners(s.svc.DeliverWeeklyReport); err != nil {
		s.logger.Error("weekly report run failed", zap.Error(err))
	}
}
