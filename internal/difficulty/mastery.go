package difficulty

import (
	"math/rand"
	"sort"
	"time"

	"github.com/example/wortbot/pkg/models"
)

// Mastery level names, indexed by level 1-5.
var masteryNames = map[int]string{
	1: "Introduced",
	2: "Familiar",
	3: "Practiced",
	4: "Mastered",
	5: "Expert",
}

// MasteryName returns the display name for a mastery level.
func MasteryName(level int) string {
	if name, ok := masteryNames[level]; ok {
		return name
	}
	return "Unknown"
}

// Mastery maps a word's retention stats to an ordinal 1-5 level. Untested
// words are always level 1. The mapping is monotonic in the retention rate
// for a fixed test count.
func Mastery(stats *models.RetentionStats) int {
	if stats == nil || stats.TestsTaken == 0 {
		return 1
	}
	switch rate := stats.RetentionRate; {
	case rate >= 90 && stats.TestsTaken >= 5:
		return 5
	case rate >= 80:
		return 4
	case rate >= 70:
		return 3
	case rate >= 50:
		return 2
	default:
		return 1
	}
}

// RecentErrorEstimate approximates how many of the learner's last five tests
// on a word were wrong, from the aggregate retention rate.
func RecentErrorEstimate(stats *models.RetentionStats) int {
	if stats == nil || stats.TestsTaken == 0 {
		return 0
	}
	window := stats.TestsTaken
	if window > 5 {
		window = 5
	}
	errorRate := (100 - stats.RetentionRate) / 100
	return int(errorRate * float64(window))
}

// Candidate is one word considered for priority selection.
type Candidate struct {
	Item         models.VocabularyItem
	Mastery      int
	DueForReview bool
	RecentErrors int
}

// SelectPriorityWords scores every candidate and returns the n with the
// lowest scores (lower = higher priority). A small uniform jitter from rng
// breaks ties so repeated quizzes do not always pick the same words; pass a
// seeded rng for reproducible selection in tests.
func SelectPriorityWords(candidates []Candidate, n int, rng *rand.Rand) []models.VocabularyItem {
	type scored struct {
		item  models.VocabularyItem
		score float64
	}
	scoredWords := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		score := float64(6 - c.Mastery)
		if !c.DueForReview {
			score += 2
		}
		score += float64(c.RecentErrors) * 0.5
		score += rng.Float64()
		scoredWords = append(scoredWords, scored{c.Item, score})
	}

	sort.SliceStable(scoredWords, func(i, j int) bool {
		return scoredWords[i].score < scoredWords[j].score
	})

	if n > len(scoredWords) {
		n = len(scoredWords)
	}
	selected := make([]models.VocabularyItem, 0, n)
	for _, s := range scoredWords[:n] {
		selected = append(selected, s.item)
	}
	return selected
}

// NewRand returns a time-seeded random source for production call sites.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
