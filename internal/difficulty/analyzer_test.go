package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/wortbot/pkg/models"
)

var sampleWords = []models.VocabularyItem{
	{German: "ja", English: "yes", Frequency: 1, WordType: "adverb"},
	{German: "das Haus", English: "house", Frequency: 2, WordType: "noun"},
	{German: "gehen", English: "to go", Frequency: 1, WordType: "verb"},
	{German: "gemütlich", English: "cozy", Frequency: 4, WordType: "adjective"},
	{German: "die Nachhaltigkeit", English: "sustainability", Frequency: 5, WordType: "noun"},
	{German: "beeinträchtigen", English: "to impair", Frequency: 6, WordType: "verb"},
	{German: "die Auseinandersetzung", English: "dispute", Frequency: 6, WordType: "noun"},
	{German: "", English: "", Frequency: 0},
}

func TestScoreIsDeterministicAndBounded(t *testing.T) {
	for _, w := range sampleWords {
		first := Score(w)
		assert.GreaterOrEqual(t, first, 1.0, "word %q", w.German)
		assert.LessOrEqual(t, first, 10.0, "word %q", w.German)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Score(w), "word %q", w.German)
		}
	}
}

func TestShortCommonWordEasierThanLongRareWord(t *testing.T) {
	easy := Score(models.VocabularyItem{German: "ja", English: "yes", Frequency: 1})
	hard := Score(models.VocabularyItem{German: "die Auseinandersetzung", English: "dispute", Frequency: 6, WordType: "noun"})
	assert.Less(t, easy, hard)
}

func TestAnalyzeExposesAllFactors(t *testing.T) {
	a := Analyze(models.VocabularyItem{German: "gemütlich", English: "cozy", Frequency: 4, WordType: "adjective"})

	for _, factor := range []string{
		"length", "phonetic_complexity", "frequency", "grammar_complexity",
		"cognate_similarity", "syllable_count", "special_characters",
	} {
		assert.Contains(t, a.Factors, factor)
	}
	assert.NotEmpty(t, a.Label)
}

func TestCognatesScoreLower(t *testing.T) {
	cognate := cognateScore("Information", "information")
	unrelated := cognateScore("Herausforderung", "challenge")
	assert.Less(t, cognate, unrelated)
}

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"ja":     1,
		"Haus":   1,
		"gehen":  2,
		"Wasser": 2,
		"Woche":  1, // trailing-e adjustment

		"x":      1, // no vowels still counts one
	}
	for word, want := range cases {
		assert.Equal(t, want, CountSyllables(word), "word %q", word)
	}
}

func TestLabelBuckets(t *testing.T) {
	assert.Equal(t, "Very Easy", Label(1.5))
	assert.Equal(t, "Easy", Label(3.5))
	assert.Equal(t, "Medium", Label(5.0))
	assert.Equal(t, "Hard", Label(7.0))
	assert.Equal(t, "Very Hard", Label(9.0))
}
