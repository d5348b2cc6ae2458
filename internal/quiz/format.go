package quiz

import (
	"fmt"
	"strings"

	"github.com/example/wortbot/pkg/models"
)

// FormatQuizMessage renders a quiz for messaging, with answers revealed after
// each question for self-checking in batch mode.
func FormatQuizMessage(quiz models.Quiz) string {
	if len(quiz.Questions) == 0 {
		return "No quiz available at this time."
	}

	var b strings.Builder
	b.WriteString("🧠 *German Quiz* 🧠\n")
	fmt.Fprintf(&b, "🎯 Level: %s\n", quiz.UserLevel)
	fmt.Fprintf(&b, "❓ Questions: %d\n\n", len(quiz.Questions))

	for i, q := range quiz.Questions {
		fmt.Fprintf(&b, "*Question %d:*\n%s\n\n", i+1, q.Prompt)

		switch q.Kind {
		case models.KindMultipleChoice:
			for j, opt := range q.Options {
				fmt.Fprintf(&b, "%c) %s\n", 'A'+j, opt)
			}
			fmt.Fprintf(&b, "\n💡 Answer: %c\n", 'A'+q.CorrectIndex)
		case models.KindConstruction:
			fmt.Fprintf(&b, "🧩 Words: %s\n", strings.Join(q.WordParts, ", "))
			fmt.Fprintf(&b, "\n💡 Answer: %s\n", q.CorrectText)
		default:
			b.WriteString("💭 Type your answer\n")
			if q.Hint != "" {
				fmt.Fprintf(&b, "💡 Hint: %s\n", q.Hint)
			}
			fmt.Fprintf(&b, "\n💡 Answer: %s\n", q.CorrectText)
		}
		if q.Explanation != "" {
			fmt.Fprintf(&b, "📝 %s\n", q.Explanation)
		}
		b.WriteString("\n")
	}

	b.WriteString("🎯 *How did you do?*\n")
	b.WriteString("📚 Review any words you missed and keep practicing!")
	return b.String()
}

// FormatResultMessage renders graded quiz feedback.
func FormatResultMessage(result models.QuizResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏁 *Quiz Complete!*\n\nScore: %d/%d (%.0f%%)\n\n", result.Score, result.Total, result.Percentage)

	switch {
	case result.Percentage >= 90:
		b.WriteString("🌟 Excellent work! Your German vocabulary knowledge is impressive!")
	case result.Percentage >= 80:
		b.WriteString("👍 Great job! You're making solid progress in your German learning.")
	case result.Percentage >= 70:
		b.WriteString("📈 Good effort! Keep practicing to strengthen your vocabulary.")
	default:
		b.WriteString("💪 Don't worry! Every mistake is a learning opportunity. Keep going!")
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("\n\n💡 *Suggestions:*\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "• %s\n", rec)
		}
	}
	return b.String()
}
