package models

import "time"

// ReviewState tracks the spaced-repetition schedule for a single word.
type ReviewState struct {
	ReviewCount  int       `json:"review_count"`
	SuccessCount int       `json:"success_count"`
	LastReviewed time.Time `json:"last_reviewed"`
	NextReview   time.Time `json:"next_review"`
	Intervals    []int     `json:"intervals"` // review intervals in days
	SuccessRate  float64   `json:"success_rate"`
}

// Achievement is an immutable record appended on milestone or level-up
// events. It is never mutated after creation.
type Achievement struct {
	Type         string    `json:"type"` // "streak_milestone" or "level_up"
	Date         time.Time `json:"date"`
	Milestone    int       `json:"milestone,omitempty"`
	Level        string    `json:"level,omitempty"`
	Title        string    `json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	WordsLearned int       `json:"words_learned,omitempty"`
}

// QuizScore is one entry in the learner's quiz history.
type QuizScore struct {
	Date       time.Time `json:"date"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage float64   `json:"percentage"`
}

// LevelProgress holds the learned word identifiers for one CEFR level.
type LevelProgress struct {
	Learned []string `json:"learned"`
}

// Preferences holds per-learner delivery settings.
type Preferences struct {
	WordsPerDay        int  `json:"words_per_day"`
	IncludeGrammarTips bool `json:"include_grammar_tips"`
	NotificationHour   int  `json:"notification_hour"` // 0-23, local to the scheduler
}

// LearnerRecord is the per-user progress document. It is loaded and saved as
// a whole; every learning, quiz and streak event mutates it in memory before
// the batch step persists it.
type LearnerRecord struct {
	ChatID             string                    `json:"chat_id"`
	CurrentLevel       string                    `json:"current_level"`
	StartDate          time.Time                 `json:"start_date"`
	TotalWordsLearned  int                       `json:"total_words_learned"`
	WordsByLevel       map[string]*LevelProgress `json:"words_by_level"`
	DailyStreak        int                       `json:"daily_streak"`
	LongestStreak      int                       `json:"longest_streak"`
	TotalStudyDays     int                       `json:"total_study_days"`
	StreakMilestones   []int                     `json:"streak_milestones"`
	LastLessonDate     string                    `json:"last_lesson_date,omitempty"` // YYYY-MM-DD
	LastQuizDate       string                    `json:"last_quiz_date,omitempty"`
	LastReportDate     string                    `json:"last_report_date,omitempty"`
	FreezeAvailable    int                       `json:"streak_freeze_available"`
	FreezeUsed         int                       `json:"streak_freeze_used"`
	GracePeriodActive  bool                      `json:"grace_period_active"`
	GracePeriodExpires *time.Time                `json:"grace_period_expires,omitempty"`
	QuizScores         []QuizScore               `json:"quiz_scores"`
	Achievements       []Achievement             `json:"achievements"`
	SpacedRepetition   map[string]*ReviewState   `json:"spaced_repetition"`
	Analytics          Analytics                 `json:"learning_analytics"`
	Preferences        Preferences               `json:"preferences"`
}

// NewLearnerRecord returns a fresh record with defaulted fields, used on
// first access for a chat id and as the fallback for unreadable documents.
func NewLearnerRecord(chatID string, now time.Time) *LearnerRecord {
	rec := &LearnerRecord{
		ChatID:           chatID,
		CurrentLevel:     LevelA1,
		StartDate:        now,
		WordsByLevel:     make(map[string]*LevelProgress, len(Levels)),
		FreezeAvailable:  1,
		SpacedRepetition: make(map[string]*ReviewState),
		Analytics:        newAnalytics(),
		Preferences: Preferences{
			WordsPerDay:        3,
			IncludeGrammarTips: true,
			NotificationHour:   9,
		},
	}
	for _, level := range Levels {
		rec.WordsByLevel[level] = &LevelProgress{}
	}
	return rec
}

// Normalize repairs a record loaded from disk: nil maps from hand-edited or
// older documents are allocated, missing levels added, and the total learned
// count is recomputed so it always equals the sum of the per-level sets.
func (r *LearnerRecord) Normalize() {
	if r.CurrentLevel == "" {
		r.CurrentLevel = LevelA1
	}
	if r.WordsByLevel == nil {
		r.WordsByLevel = make(map[string]*LevelProgress, len(Levels))
	}
	for _, level := range Levels {
		if r.WordsByLevel[level] == nil {
			r.WordsByLevel[level] = &LevelProgress{}
		}
	}
	if r.SpacedRepetition == nil {
		r.SpacedRepetition = make(map[string]*ReviewState)
	}
	r.Analytics.normalize()

	total := 0
	for _, lp := range r.WordsByLevel {
		total += len(lp.Learned)
	}
	r.TotalWordsLearned = total
}

// IsLearned reports whether the word is in any level's learned set.
func (r *LearnerRecord) IsLearned(wordID string) bool {
	for _, lp := range r.WordsByLevel {
		for _, id := range lp.Learned {
			if id == wordID {
				return true
			}
		}
	}
	return false
}

// AddLearnedWord records the word in its level's learned set. It returns
// false when the word was already learned; callers use that to avoid
// resetting an existing review schedule.
func (r *LearnerRecord) AddLearnedWord(wordID, level string) bool {
	if r.IsLearned(wordID) {
		return false
	}
	lp := r.WordsByLevel[level]
	if lp == nil {
		lp = &LevelProgress{}
		r.WordsByLevel[level] = lp
	}
	lp.Learned = append(lp.Learned, wordID)
	r.TotalWordsLearned++
	return true
}

// LearnedWords returns all learned word identifiers across levels.
func (r *LearnerRecord) LearnedWords() []string {
	var words []string
	for _, level := range Levels {
		if lp := r.WordsByLevel[level]; lp != nil {
			words = append(words, lp.Learned...)
		}
	}
	return words
}

// HasMilestone reports whether the streak milestone was already awarded.
func (r *LearnerRecord) HasMilestone(milestone int) bool {
	for _, m := range r.StreakMilestones {
		if m == milestone {
			return true
		}
	}
	return false
}

// ShouldLevelUp reports whether the learner meets the word-count requirement
// for progressing past the current level.
func (r *LearnerRecord) ShouldLevelUp() bool {
	required, ok := LevelUpRequirements[r.CurrentLevel]
	if !ok {
		return false
	}
	lp := r.WordsByLevel[r.CurrentLevel]
	return lp != nil && len(lp.Learned) >= required
}

// LevelUp advances the learner to the next CEFR level and appends a level-up
// achievement. It returns the new level, or "" when already at the target.
func (r *LearnerRecord) LevelUp(now time.Time) string {
	next := NextLevel(r.CurrentLevel)
	if next == "" {
		return ""
	}
	r.CurrentLevel = next
	r.Achievements = append(r.Achievements, Achievement{
		Type:         "level_up",
		Date:         now,
		Level:        next,
		WordsLearned: r.TotalWordsLearned,
	})
	return next
}

// RecordQuizScore appends a quiz result to the learner's score history.
func (r *LearnerRecord) RecordQuizScore(score, total int, now time.Time) {
	pct := 0.0
	if total > 0 {
		pct = float64(score) / float64(total) * 100
	}
	r.QuizScores = append(r.QuizScores, QuizScore{
		Date:       now,
		Score:      score,
		Total:      total,
		Percentage: pct,
	})
}

// RecentQuizAverage returns the mean percentage over the last n quizzes,
// or 0 when there is no quiz history.
func (r *LearnerRecord) RecentQuizAverage(n int) float64 {
	scores := r.QuizScores
	if len(scores) == 0 {
		return 0
	}
	if len(scores) > n {
		scores = scores[len(scores)-n:]
	}
	sum := 0.0
	for _, s := range scores {
		sum += s.Percentage
	}
	return sum / float64(len(scores))
}
