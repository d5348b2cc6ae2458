package models

import "time"

// QuestionKind is the closed set of question variants. Dispatch over kinds
// is total; there is no fallback branch for unknown kinds.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindFillInBlank    QuestionKind = "fill_in_blank"
	KindConstruction   QuestionKind = "sentence_construction"
)

// QuestionKinds lists every variant, for exhaustive iteration in tests and
// recommendation bucketing.
var QuestionKinds = []QuestionKind{KindMultipleChoice, KindFillInBlank, KindConstruction}

// Question is one quiz item. Options/CorrectIndex are set for multiple
// choice; CorrectText for the free-text variants; WordParts only for
// sentence construction.
type Question struct {
	WordID       string       `json:"word_id"`
	Kind         QuestionKind `json:"kind"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options,omitempty"`
	CorrectIndex int          `json:"correct_index"`
	CorrectText  string       `json:"correct_text,omitempty"`
	WordParts    []string     `json:"word_parts,omitempty"`
	Explanation  string       `json:"explanation,omitempty"`
	Hint         string       `json:"hint,omitempty"`
	Difficulty   int          `json:"difficulty"` // 1-3, drives mastery-keyed selection
	Mastery      int          `json:"mastery"`    // learner's mastery at generation time
}

// Quiz is a generated quiz instance.
type Quiz struct {
	ID        string     `json:"id"`
	Mode      string     `json:"mode"`
	UserLevel string     `json:"user_level"`
	CreatedAt time.Time  `json:"created_at"`
	Questions []Question `json:"questions"`
}

// Answer is a submitted answer. Index is the chosen option for multiple
// choice (-1 when unused); Text is the free-text answer otherwise.
type Answer struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// QuestionOutcome is one graded question.
type QuestionOutcome struct {
	WordID   string       `json:"word_id"`
	Kind     QuestionKind `json:"kind"`
	Correct  bool         `json:"correct"`
	Answered bool         `json:"answered"`
}

// QuizResult aggregates graded outcomes and derived recommendations.
type QuizResult struct {
	Score           int               `json:"score"`
	Total           int               `json:"total"`
	Percentage      float64           `json:"percentage"`
	Outcomes        []QuestionOutcome `json:"outcomes"`
	Recommendations []string          `json:"recommendations"`
}
