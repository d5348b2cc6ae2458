package models

// CEFR levels supported by the vocabulary catalog, in progression order.
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
	LevelB2 = "B2"
)

// Levels lists the CEFR levels in ascending order.
var Levels = []string{LevelA1, LevelA2, LevelB1, LevelB2}

// NextLevel returns the level that follows the given one, or "" when the
// learner is already at the target level.
func NextLevel(level string) string {
	for i, l := range Levels {
		if l == level && i+1 < len(Levels) {
			return Levels[i+1]
		}
	}
	return ""
}

// LevelUpRequirements maps a CEFR level to the number of learned words at
// that level required before progressing to the next one. B2 is the target
// level and has no requirement.
var LevelUpRequirements = map[string]int{
	LevelA1: 50,
	LevelA2: 100,
	LevelB1: 150,
}

// VocabularyItem is a static dictionary entry. The German word doubles as the
// item identifier throughout the system. Items are read-only at runtime.
type VocabularyItem struct {
	German             string `json:"german" db:"german"`
	English            string `json:"english" db:"english"`
	Pronunciation      string `json:"pronunciation" db:"pronunciation"`
	Example            string `json:"example" db:"example"`
	ExampleTranslation string `json:"example_translation" db:"example_translation"`
	Category           string `json:"category" db:"category"`
	Level              string `json:"level" db:"level"`
	Frequency          int    `json:"frequency" db:"frequency"` // 1 = very common, 10 = rare
	WordType           string `json:"word_type" db:"word_type"` // noun, verb, adjective, ...
}

// ID returns the item identifier.
func (v VocabularyItem) ID() string {
	return v.German
}
