// Package difficulty scores vocabulary items with linguistic heuristics and
// summarizes a learner's per-word mastery. Scores drive adaptive word
// selection for lessons and quizzes.
package difficulty

import (
	"strings"
	"unicode"

	"github.com/example/wortbot/pkg/models"
)

// Factor weights sum to 1.0. Frequency dominates: rare words are hard
// regardless of shape.
const (
	weightLength       = 0.15
	weightPhonetic     = 0.20
	weightFrequency    = 0.25
	weightGrammar      = 0.15
	weightCognate      = 0.10
	weightSyllables    = 0.10
	weightSpecialChars = 0.05
)

var (
	difficultPatterns = []string{"sch", "tsch", "pf", "tz", "ch", "ck", "qu"}
	specialChars      = []rune{'ä', 'ö', 'ü', 'ß'}

	separablePrefixes = []string{"ab", "an", "auf", "aus", "bei", "ein", "mit", "nach", "vor", "zu"}
	modalVerbs        = []string{"können", "müssen", "sollen", "wollen", "dürfen", "mögen"}
	irregularVerbs    = []string{"sein", "haben", "werden", "gehen", "kommen", "sehen", "wissen"}
	complexEndings    = []string{"lich", "isch", "haft", "sam", "bar"}

	// English/German cognate suffix pairs; matching pairs make a word easier.
	cognatePairs = [][2]string{
		{"tion", "tion"}, {"lich", "ly"}, {"er", "er"}, {"ung", "ing"},
		{"voll", "ful"}, {"los", "less"}, {"heit", "ness"},
	}
)

// Analysis breaks a word's difficulty into its weighted factors.
type Analysis struct {
	Word    string
	Overall float64 // 1-10
	Label   string
	Factors map[string]float64
}

// Score returns the overall difficulty of a word on a 1-10 scale. It is a
// deterministic pure function of the item and safe to memoize.
func Score(item models.VocabularyItem) float64 {
	return Analyze(item).Overall
}

// Analyze computes all difficulty factors for a word.
func Analyze(item models.VocabularyItem) Analysis {
	factors := map[string]float64{
		"length":             lengthScore(item.German),
		"phonetic_complexity": phoneticScore(item),
		"frequency":          frequencyScore(item.Frequency),
		"grammar_complexity": grammarScore(item),
		"cognate_similarity": cognateScore(item.German, item.English),
		"syllable_count":     syllableScore(item.German),
		"special_characters": specialCharScore(item.German),
	}

	overall := factors["length"]*weightLength +
		factors["phonetic_complexity"]*weightPhonetic +
		factors["frequency"]*weightFrequency +
		factors["grammar_complexity"]*weightGrammar +
		factors["cognate_similarity"]*weightCognate +
		factors["syllable_count"]*weightSyllables +
		factors["special_characters"]*weightSpecialChars

	return Analysis{
		Word:    item.German,
		Overall: clamp(overall, 1, 10),
		Label:   Label(clamp(overall, 1, 10)),
		Factors: factors,
	}
}

// Label converts a numeric difficulty to a coarse level name.
func Label(score float64) string {
	switch {
	case score <= 2.5:
		return "Very Easy"
	case score <= 4.0:
		return "Easy"
	case score <= 6.0:
		return "Medium"
	case score <= 7.5:
		return "Hard"
	default:
		return "Very Hard"
	}
}

func lengthScore(word string) float64 {
	switch n := len([]rune(word)); {
	case n <= 4:
		return 1
	case n <= 7:
		return 3
	case n <= 10:
		return 6
	default:
		return 9
	}
}

func phoneticScore(item models.VocabularyItem) float64 {
	word := strings.ToLower(item.German)
	score := 3.0
	for _, p := range difficultPatterns {
		if strings.Contains(word, p) {
			score++
		}
	}
	for _, c := range specialChars {
		if strings.ContainsRune(word, c) {
			score += 0.5
		}
	}
	return clamp(score, 1, 10)
}

func frequencyScore(freq int) float64 {
	if freq == 0 {
		freq = 5 // unscored items count as medium frequency
	}
	switch {
	case freq == 1:
		return 1
	case freq <= 3:
		return 3
	case freq <= 6:
		return 5
	case freq <= 8:
		return 7
	default:
		return 9
	}
}

func grammarScore(item models.VocabularyItem) float64 {
	word := item.German
	score := 2.0

	switch item.WordType {
	case "verb":
		lower := strings.ToLower(word)
		for _, prefix := range separablePrefixes {
			if strings.HasPrefix(lower, prefix) {
				score += 2
				break
			}
		}
		if contains(modalVerbs, lower) {
			score += 1.5
		}
		if contains(irregularVerbs, lower) {
			score += 2
		}
	case "noun":
		runes := []rune(word)
		if len(runes) > 10 && unicode.IsUpper(runes[0]) {
			score += 1.5 // long capitalized noun: likely a compound
		}
		capitals := 0
		for _, r := range runes {
			if unicode.IsUpper(r) {
				capitals++
			}
		}
		if capitals > 1 {
			score++
		}
	case "adjective":
		for _, ending := range complexEndings {
			if strings.HasSuffix(word, ending) {
				score++
				break
			}
		}
	}
	return clamp(score, 1, 10)
}

func cognateScore(german, english string) float64 {
	similarity := stringSimilarity(strings.ToLower(german), strings.ToLower(english))

	patternBonus := 0.0
	for _, pair := range cognatePairs {
		if strings.HasSuffix(german, pair[0]) && strings.HasSuffix(english, pair[1]) {
			patternBonus = 2
			break
		}
	}

	score := 8.0 - similarity*6.0 - patternBonus
	return clamp(score, 1, 10)
}

func syllableScore(word string) float64 {
	switch n := CountSyllables(word); {
	case n <= 1:
		return 1
	case n <= 2:
		return 2
	case n <= 3:
		return 4
	case n <= 4:
		return 6
	default:
		return 8
	}
}

func specialCharScore(word string) float64 {
	count := 0
	for _, r := range strings.ToLower(word) {
		for _, c := range specialChars {
			if r == c {
				count++
			}
		}
	}
	return clamp(float64(count)*1.5, 0, 5)
}

// CountSyllables estimates the syllable count of a German word by counting
// vowel groups, with the trailing-e adjustment common in German.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouäöü", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// stringSimilarity returns 1 - normalized Levenshtein distance, in [0,1].
func stringSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	sim := 1.0 - float64(prev[len(rb)])/float64(maxLen)
	if sim < 0 {
		sim = 0
	}
	return sim
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
