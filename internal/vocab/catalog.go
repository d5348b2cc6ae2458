// Package vocab manages the static vocabulary catalog: storage, import, and
// the word-selection heuristics used to assemble daily lessons and quizzes.
package vocab

import (
	"math/rand"
	"sort"

	"github.com/example/wortbot/pkg/models"
)

// Catalog is the in-memory vocabulary index. It is built once per process
// from the repository (or a JSON file) and read-only afterwards.
type Catalog struct {
	words      []models.VocabularyItem
	byID       map[string]models.VocabularyItem
	byLevel    map[string][]models.VocabularyItem
	byCategory map[string][]models.VocabularyItem
}

// NewCatalog indexes the given items by identifier, level and category.
// Items with an unknown level are bucketed as A1.
func NewCatalog(items []models.VocabularyItem) *Catalog {
	c := &Catalog{
		words:      items,
		byID:       make(map[string]models.VocabularyItem, len(items)),
		byLevel:    make(map[string][]models.VocabularyItem),
		byCategory: make(map[string][]models.VocabularyItem),
	}
	for _, item := range items {
		if item.Level == "" {
			item.Level = models.LevelA1
		}
		if item.Category == "" {
			item.Category = "general"
		}
		c.byID[item.German] = item
		c.byLevel[item.Level] = append(c.byLevel[item.Level], item)
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item)
	}
	return c
}

// Size returns the number of catalog entries.
func (c *Catalog) Size() int {
	return len(c.words)
}

// All returns every catalog entry.
func (c *Catalog) All() []models.VocabularyItem {
	return c.words
}

// ByID looks up a word by its identifier.
func (c *Catalog) ByID(wordID string) (models.VocabularyItem, bool) {
	item, ok := c.byID[wordID]
	return item, ok
}

// ByLevel returns the entries at the given CEFR level.
func (c *Catalog) ByLevel(level string) []models.VocabularyItem {
	return c.byLevel[level]
}

// ByCategory returns the entries in the given category.
func (c *Catalog) ByCategory(category string) []models.VocabularyItem {
	return c.byCategory[category]
}

// progressiveMix defines, per learner level, how a lesson mixes word levels:
// higher learner levels still review a share of easier vocabulary.
var progressiveMix = map[string]map[string]float64{
	models.LevelA1: {models.LevelA1: 1.0},
	models.LevelA2: {models.LevelA1: 0.3, models.LevelA2: 0.7},
	models.LevelB1: {models.LevelA1: 0.1, models.LevelA2: 0.3, models.LevelB1: 0.6},
	models.LevelB2: {models.LevelA1: 0.1, models.LevelA2: 0.2, models.LevelB1: 0.3, models.LevelB2: 0.4},
}

// WordsForLevel selects up to count unlearned words at one level, biased
// toward the most frequent words: candidates are sorted by ascending
// frequency rank and sampled from the top half of the pool.
func (c *Catalog) WordsForLevel(level string, count int, exclude []string, rng *rand.Rand) []models.VocabularyItem {
	if _, ok := c.byLevel[level]; !ok {
		level = models.LevelA1
	}
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	available := make([]models.VocabularyItem, 0, len(c.byLevel[level]))
	for _, item := range c.byLevel[level] {
		if !excluded[item.German] {
			available = append(available, item)
		}
	}
	if len(available) == 0 {
		return nil
	}

	sort.SliceStable(available, func(i, j int) bool {
		return frequencyRank(available[i]) < frequencyRank(available[j])
	})

	poolSize := count * 3
	if half := len(available) / 2; half > poolSize {
		poolSize = half
	}
	if poolSize > len(available) {
		poolSize = len(available)
	}
	pool := available[:poolSize]

	if count > len(pool) {
		count = len(pool)
	}
	picks := rng.Perm(len(pool))[:count]
	selected := make([]models.VocabularyItem, 0, count)
	for _, i := range picks {
		selected = append(selected, pool[i])
	}
	return selected
}

// ProgressiveWords selects count unlearned words mixed across levels
// according to the learner's level, topping up from the learner's own level
// when a bucket runs dry.
func (c *Catalog) ProgressiveWords(userLevel string, count int, learned []string, rng *rand.Rand) []models.VocabularyItem {
	mix, ok := progressiveMix[userLevel]
	if !ok {
		userLevel = models.LevelA1
		mix = progressiveMix[userLevel]
	}

	var selected []models.VocabularyItem
	for _, level := range models.Levels {
		ratio, ok := mix[level]
		if !ok {
			continue
		}
		levelCount := int(float64(count) * ratio)
		if levelCount < 1 {
			levelCount = 1
		}
		selected = append(selected, c.WordsForLevel(level, levelCount, learned, rng)...)
	}

	if len(selected) > count {
		selected = selected[:count]
	}
	for len(selected) < count {
		exclude := append(append([]string{}, learned...), ids(selected)...)
		more := c.WordsForLevel(userLevel, count-len(selected), exclude, rng)
		if len(more) == 0 {
			break
		}
		selected = append(selected, more...)
	}
	return selected
}

// ReviewWords returns catalog entries for up to count of the given learned
// word identifiers, randomly sampled.
func (c *Catalog) ReviewWords(learned []string, count int, rng *rand.Rand) []models.VocabularyItem {
	candidates := make([]models.VocabularyItem, 0, len(learned))
	for _, id := range learned {
		if item, ok := c.byID[id]; ok {
			candidates = append(candidates, item)
		}
	}
	if count > len(candidates) {
		count = len(candidates)
	}
	if count == 0 {
		return nil
	}
	picks := rng.Perm(len(candidates))[:count]
	selected := make([]models.VocabularyItem, 0, count)
	for _, i := range picks {
		selected = append(selected, candidates[i])
	}
	return selected
}

// fallbackCategories widen a distractor pool when the target's own category
// is too small.
var fallbackCategories = []string{"general", "basic", "common"}

// Distractors returns up to count catalog words suitable as wrong answers
// for the target: same category first, then same level, then the generic
// fallback categories, and finally the whole catalog. The target itself is
// always excluded. Fewer than count distractors may be returned when the
// catalog is small.
func (c *Catalog) Distractors(target models.VocabularyItem, count int, rng *rand.Rand) []models.VocabularyItem {
	seen := map[string]bool{target.German: true}
	var pool []models.VocabularyItem

	add := func(items []models.VocabularyItem) {
		for _, item := range items {
			if !seen[item.German] {
				seen[item.German] = true
				pool = append(pool, item)
			}
		}
	}

	add(c.byCategory[target.Category])
	if len(pool) < count {
		add(c.byLevel[target.Level])
	}
	if len(pool) < count {
		for _, cat := range fallbackCategories {
			add(c.byCategory[cat])
		}
	}
	if len(pool) < count {
		add(c.words)
	}

	if count > len(pool) {
		count = len(pool)
	}
	picks := rng.Perm(len(pool))[:count]
	selected := make([]models.VocabularyItem, 0, count)
	for _, i := range picks {
		selected = append(selected, pool[i])
	}
	return selected
}

func frequencyRank(item models.VocabularyItem) int {
	if item.Frequency == 0 {
		return 999
	}
	return item.Frequency
}

func ids(items []models.VocabularyItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.German
	}
	return out
}
