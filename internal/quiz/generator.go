// Package quiz generates adaptive vocabulary quizzes and grades submitted
// answers.
package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/wortbot/internal/difficulty"
	"github.com/example/wortbot/internal/vocab"
	"github.com/example/wortbot/pkg/models"
)

// kindDifficulty orders the question kinds by challenge.
var kindDifficulty = map[models.QuestionKind]int{
	models.KindMultipleChoice: 1,
	models.KindFillInBlank:    2,
	models.KindConstruction:   3,
}

// constructionFillers pad the word-part pool of construction questions.
var constructionFillers = []string{"nicht", "aber", "oder", "und"}

// Generator builds quizzes from the catalog.
type Generator struct {
	catalog *vocab.Catalog
	rng     *rand.Rand
}

// NewGenerator creates a quiz generator. A nil rng falls back to a
// time-seeded source.
func NewGenerator(catalog *vocab.Catalog, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = difficulty.NewRand()
	}
	return &Generator{catalog: catalog, rng: rng}
}

// Generate builds a quiz over the given words, choosing a question kind per
// word from the learner's mastery of it. Words that cannot produce a valid
// question are skipped.
func (g *Generator) Generate(rec *models.LearnerRecord, words []models.VocabularyItem, mode string, now time.Time) models.Quiz {
	quiz := models.Quiz{
		ID:        uuid.NewString(),
		Mode:      mode,
		UserLevel: rec.CurrentLevel,
		CreatedAt: now,
	}
	for _, word := range words {
		mastery := difficulty.Mastery(rec.Analytics.WordRetention(word.German))
		kind := g.pickKind(mastery)
		q, ok := g.Question(word, kind)
		if !ok {
			continue
		}
		q.Mastery = mastery
		quiz.Questions = append(quiz.Questions, q)
	}
	return quiz
}

// pickKind chooses a question kind matching the learner's mastery: well-known
// words get the harder free-text variants, fresh words stay with recognition.
func (g *Generator) pickKind(mastery int) models.QuestionKind {
	var pool []models.QuestionKind
	switch {
	case mastery >= 4:
		pool = []models.QuestionKind{models.KindFillInBlank, models.KindConstruction}
	case mastery >= 3:
		pool = models.QuestionKinds
	default:
		pool = []models.QuestionKind{models.KindMultipleChoice, models.KindFillInBlank}
	}
	return pool[g.rng.Intn(len(pool))]
}

// Question builds a single question of the given kind. The dispatch is total
// over the kind enum. ok is false when the word cannot produce a valid
// question of that kind.
func (g *Generator) Question(word models.VocabularyItem, kind models.QuestionKind) (models.Question, bool) {
	switch kind {
	case models.KindMultipleChoice:
		return g.multipleChoice(word)
	case models.KindFillInBlank:
		return g.fillInBlank(word), true
	case models.KindConstruction:
		return g.construction(word), true
	}
	return models.Question{}, false
}

// multipleChoice asks for the English translation among distractor
// translations. Words whose distractor pool yields fewer than two options
// produce no question.
func (g *Generator) multipleChoice(word models.VocabularyItem) (models.Question, bool) {
	distractors := g.catalog.Distractors(word, 3, g.rng)
	options := []string{word.English}
	for _, d := range distractors {
		if !strings.EqualFold(d.English, word.English) {
			options = append(options, d.English)
		}
	}
	if len(options) < 2 {
		return models.Question{}, false
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	correct := 0
	for i, opt := range options {
		if opt == word.English {
			correct = i
			break
		}
	}

	return models.Question{
		WordID:       word.German,
		Kind:         models.KindMultipleChoice,
		Prompt:       fmt.Sprintf("What does '%s' mean?", word.German),
		Options:      options,
		CorrectIndex: correct,
		Explanation:  fmt.Sprintf("'%s' means '%s'.", word.German, word.English),
		Difficulty:   kindDifficulty[models.KindMultipleChoice],
	}, true
}

// fillInBlank blanks the target word out of its example sentence, falling
// back to a stock sentence when the example does not contain the word.
func (g *Generator) fillInBlank(word models.VocabularyItem) models.Question {
	target := headword(word.German)
	example := word.Example
	if example == "" || !strings.Contains(example, target) {
		example = fmt.Sprintf("Ich möchte %s haben.", target)
	}
	blanked := strings.Replace(example, target, "____", 1)

	return models.Question{
		WordID:      word.German,
		Kind:        models.KindFillInBlank,
		Prompt:      fmt.Sprintf("Fill in the blank:\n%s", blanked),
		CorrectText: target,
		Explanation: fmt.Sprintf("Complete sentence: %s", example),
		Hint:        fmt.Sprintf("English: %s", word.English),
		Difficulty:  kindDifficulty[models.KindFillInBlank],
	}
}

// construction asks the learner to assemble a sentence from shuffled parts,
// two of which are fillers that do not belong.
func (g *Generator) construction(word models.VocabularyItem) models.Question {
	target := headword(word.German)
	parts := []string{target, "ist", "sehr", "gut"}
	fillerIdx := g.rng.Perm(len(constructionFillers))[:2]
	for _, i := range fillerIdx {
		parts = append(parts, constructionFillers[i])
	}
	g.rng.Shuffle(len(parts), func(i, j int) {
		parts[i], parts[j] = parts[j], parts[i]
	})

	correct := fmt.Sprintf("%s ist sehr gut.", target)
	return models.Question{
		WordID:      word.German,
		Kind:        models.KindConstruction,
		Prompt:      fmt.Sprintf("Construct a sentence using '%s' from these words:", target),
		WordParts:   parts,
		CorrectText: correct,
		Explanation: fmt.Sprintf("Correct sentence: %s", correct),
		Hint:        fmt.Sprintf("Use '%s' as the subject", target),
		Difficulty:  kindDifficulty[models.KindConstruction],
	}
}

// headword strips a leading article from a noun entry ("das Haus" -> "Haus")
// so sentence templates read naturally.
func headword(german string) string {
	for _, article := range []string{"der ", "die ", "das "} {
		if strings.HasPrefix(german, article) {
			return german[len(article):]
		}
	}
	return german
}
