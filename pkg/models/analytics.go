package models

import "time"

// SessionRecord captures one completed learning session.
type SessionRecord struct {
	Date            time.Time `json:"date"`
	WordCount       int       `json:"words_count"`
	Words           []string  `json:"words"`
	Categories      []string  `json:"categories"`
	Levels          []string  `json:"levels"`
	DurationMinutes int       `json:"duration_minutes"`
}

// QuizRecord captures one completed quiz for the analytics history.
type QuizRecord struct {
	Date       time.Time `json:"date"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage float64   `json:"percentage"`
	QuizMode   string    `json:"quiz_mode"`
}

// RetentionStats accumulates per-word quiz performance.
type RetentionStats struct {
	TestsTaken     int     `json:"tests_taken"`
	CorrectAnswers int     `json:"correct_answers"`
	RetentionRate  float64 `json:"retention_rate"` // percentage
}

// CategoryStats accumulates per-category learning counters.
type CategoryStats struct {
	WordsLearned  int `json:"words_learned"`
	TotalSessions int `json:"total_sessions"`
}

// Analytics is the nested analytics blob inside a LearnerRecord.
type Analytics struct {
	Sessions         []SessionRecord            `json:"sessions"`
	DailyWordCounts  map[string]int             `json:"daily_word_counts"` // keyed by YYYY-MM-DD
	CategoryStats    map[string]*CategoryStats  `json:"category_performance"`
	Retention        map[string]*RetentionStats `json:"retention_rates"` // keyed by word id
	QuizHistory      []QuizRecord               `json:"quiz_performance"`
	LearningVelocity float64                    `json:"learning_velocity"` // words/day, 30-day mean
	EngagementScore  float64                    `json:"engagement_score"`  // 0-100
}

func newAnalytics() Analytics {
	return Analytics{
		DailyWordCounts: make(map[string]int),
		CategoryStats:   make(map[string]*CategoryStats),
		Retention:       make(map[string]*RetentionStats),
	}
}

func (a *Analytics) normalize() {
	if a.DailyWordCounts == nil {
		a.DailyWordCounts = make(map[string]int)
	}
	if a.CategoryStats == nil {
		a.CategoryStats = make(map[string]*CategoryStats)
	}
	if a.Retention == nil {
		a.Retention = make(map[string]*RetentionStats)
	}
}

// WordRetention returns the retention stats for a word, or nil when the word
// has never been tested.
func (a *Analytics) WordRetention(wordID string) *RetentionStats {
	if a.Retention == nil {
		return nil
	}
	return a.Retention[wordID]
}
