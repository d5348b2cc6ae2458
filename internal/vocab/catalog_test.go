package vocab

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/wortbot/pkg/models"
)

func testCatalog() *Catalog {
	return NewCatalog([]models.VocabularyItem{
		{German: "das Haus", English: "house", Category: "home", Level: models.LevelA1, Frequency: 1, WordType: "noun"},
		{German: "die Tür", English: "door", Category: "home", Level: models.LevelA1, Frequency: 2, WordType: "noun"},
		{German: "das Fenster", English: "window", Category: "home", Level: models.LevelA1, Frequency: 3, WordType: "noun"},
		{German: "gehen", English: "to go", Category: "verbs", Level: models.LevelA1, Frequency: 1, WordType: "verb"},
		{German: "die Wohnung", English: "apartment", Category: "home", Level: models.LevelA2, Frequency: 1, WordType: "noun"},
		{German: "die Miete", English: "rent", Category: "home", Level: models.LevelA2, Frequency: 4, WordType: "noun"},
		{German: "der Vertrag", English: "contract", Category: "work", Level: models.LevelB1, Frequency: 2, WordType: "noun"},
		{German: "die Verhandlung", English: "negotiation", Category: "work", Level: models.LevelB2, Frequency: 5, WordType: "noun"},
	})
}

func TestNewCatalogDefaultsLevelAndCategory(t *testing.T) {
	c := NewCatalog([]models.VocabularyItem{{German: "ja", English: "yes"}})

	item, ok := c.ByID("ja")
	require.True(t, ok)
	assert.Equal(t, models.LevelA1, item.Level)
	assert.Equal(t, "general", item.Category)
	assert.Len(t, c.ByLevel(models.LevelA1), 1)
	assert.Len(t, c.ByCategory("general"), 1)
}

func TestWordsForLevelExcludesLearned(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(1))

	words := c.WordsForLevel(models.LevelA1, 4, []string{"das Haus", "gehen"}, rng)

	require.Len(t, words, 2)
	for _, w := range words {
		assert.NotEqual(t, "das Haus", w.German)
		assert.NotEqual(t, "gehen", w.German)
		assert.Equal(t, models.LevelA1, w.Level)
	}
}

func TestWordsForLevelEmptyWhenAllLearned(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(1))

	words := c.WordsForLevel(models.LevelA2, 2, []string{"die Wohnung", "die Miete"}, rng)
	assert.Empty(t, words)
}

func TestWordsForLevelUnknownLevelFallsBackToA1(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(1))

	words := c.WordsForLevel("C2", 2, nil, rng)
	require.NotEmpty(t, words)
	for _, w := range words {
		assert.Equal(t, models.LevelA1, w.Level)
	}
}

func TestProgressiveWordsMixesLevelsForB1(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(3))

	words := c.ProgressiveWords(models.LevelB1, 3, nil, rng)
	require.Len(t, words, 3)

	levels := map[string]bool{}
	for _, w := range words {
		levels[w.Level] = true
	}
	// Each level in the B1 mix contributes at least one word.
	assert.True(t, levels[models.LevelA1])
	assert.True(t, levels[models.LevelA2])
	assert.True(t, levels[models.LevelB1])
}

func TestProgressiveWordsNeverRepeatsLearned(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(7))
	learned := []string{"das Haus", "die Wohnung"}

	words := c.ProgressiveWords(models.LevelA2, 3, learned, rng)
	for _, w := range words {
		assert.NotContains(t, learned, w.German)
	}
}

func TestProgressiveWordsUnknownLevelTreatedAsA1(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(2))

	words := c.ProgressiveWords("Z9", 2, nil, rng)
	require.Len(t, words, 2)
	for _, w := range words {
		assert.Equal(t, models.LevelA1, w.Level)
	}
}

func TestReviewWordsSamplesFromLearnedOnly(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(4))
	learned := []string{"das Haus", "gehen", "not-in-catalog"}

	words := c.ReviewWords(learned, 5, rng)
	require.Len(t, words, 2)
	for _, w := range words {
		assert.Contains(t, []string{"das Haus", "gehen"}, w.German)
	}
}

func TestDistractorsExcludeTargetAndDeduplicate(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(5))
	target, _ := c.ByID("das Haus")

	distractors := c.Distractors(target, 3, rng)
	require.Len(t, distractors, 3)

	seen := map[string]bool{}
	for _, d := range distractors {
		assert.NotEqual(t, target.German, d.German)
		assert.False(t, seen[d.German])
		seen[d.German] = true
	}
}

func TestDistractorsWidenBeyondCategory(t *testing.T) {
	c := testCatalog()
	rng := rand.New(rand.NewSource(6))
	// "work" only has two entries, so asking for three must pull from the
	// wider catalog.
	target, _ := c.ByID("der Vertrag")

	distractors := c.Distractors(target, 3, rng)
	require.Len(t, distractors, 3)
	for _, d := range distractors {
		assert.NotEqual(t, target.German, d.German)
	}
}

func TestDistractorsSmallCatalogReturnsWhatExists(t *testing.T) {
	c := NewCatalog([]models.VocabularyItem{
		{German: "ja", English: "yes"},
		{German: "nein", English: "no"},
	})
	rng := rand.New(rand.NewSource(1))
	target, _ := c.ByID("ja")

	distractors := c.Distractors(target, 3, rng)
	require.Len(t, distractors, 1)
	assert.Equal(t, "nein", distractors[0].German)
}

func TestTipsForTypesDeduplicatesAndKeepsOrder(t *testing.T) {
	tips := TipsForTypes([]string{"noun", "verb", "noun", "unknown"})

	require.Len(t, tips, 2)
	assert.Equal(t, grammarTips["noun"], tips[0])
	assert.Equal(t, grammarTips["verb"], tips[1])
}

func TestSeedWordsAreWellFormed(t *testing.T) {
	require.NotEmpty(t, SeedWords)

	seen := map[string]bool{}
	levels := map[string]bool{}
	for _, w := range SeedWords {
		assert.NotEmpty(t, w.German)
		assert.NotEmpty(t, w.English)
		assert.Contains(t, models.Levels, w.Level)
		assert.False(t, seen[w.German], "duplicate seed word %q", w.German)
		seen[w.German] = true
		levels[w.Level] = true
	}
	// The seed set spans every level so every learner has material.
	for _, level := range models.Levels {
		assert.True(t, levels[level], "no seed words at level %s", level)
	}
}
