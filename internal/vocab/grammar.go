package vocab

import "strings"

// grammarTips maps a word type to a short usage note shown alongside lessons.
var grammarTips = map[string]string{
	"noun":        "German nouns are always capitalized and carry a gender (der/die/das). Learn each noun together with its article.",
	"verb":        "German verbs conjugate by person and number. In main clauses the conjugated verb takes the second position.",
	"adjective":   "Adjectives before a noun take endings that agree with the noun's gender, case and article (ein guter Mann, der gute Mann).",
	"adverb":      "Adverbs never change form. They usually follow the conjugated verb: time before manner before place.",
	"pronoun":     "Pronouns change by case: ich/mich/mir, du/dich/dir. The case depends on the verb or preposition governing them.",
	"preposition": "Each preposition governs a fixed case (mit + Dativ, für + Akkusativ). Wechselpräpositionen take Akkusativ for movement and Dativ for location.",
	"conjunction": "Coordinating conjunctions (und, aber, oder) keep normal word order; subordinating ones (weil, dass, wenn) push the verb to the end.",
	"numeral":     "Numbers above twenty are read back to front: einundzwanzig is one-and-twenty.",
}

// TipsForTypes returns the usage notes for the given word types, preserving
// first-appearance order and skipping duplicates and unknown types.
func TipsForTypes(wordTypes []string) []string {
	var tips []string
	seen := make(map[string]bool)
	for _, wt := range wordTypes {
		key := strings.ToLower(strings.TrimSpace(wt))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if tip, ok := grammarTips[key]; ok {
			tips = append(tips, tip)
		}
	}
	return tips
}
