package quizgen

import (
	"fmt"
	"strings"

	"quizforge/internal/quiz"
)

const systemPrompt = `You are an expert at creating educational quizzes. You generate relevant, well-phrased questions based on the provided text. Respond only with valid JSON.`

// buildUserMessage renders the generation prompt for a source text. The
// question count comes from Config so tests can pin it.
func buildUserMessage(sourceText string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the following text and generate exactly %d quiz questions with %d answer options each.\n", cfg.QuestionCount, quiz.OptionCount)
	b.WriteString("The quiz must be based on the content of the provided text.\n\n")

	b.WriteString("Text to analyze:\n")
	fmt.Fprintf(&b, "%q\n\n", sourceText)

	b.WriteString("Respond ONLY with a valid JSON object in this exact format:\n")
	b.WriteString(`{
  "questions": [
    {
      "question": "Question based on the text",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "Correct option (must be identical to one of the options)"
    }
  ]
}
`)

	b.WriteString("\nImportant rules:\n")
	fmt.Fprintf(&b, "- Generate exactly %d questions\n", cfg.QuestionCount)
	fmt.Fprintf(&b, "- Each question must have exactly %d options\n", quiz.OptionCount)
	b.WriteString("- Questions must be relevant to the text\n")
	b.WriteString("- Exactly one correct answer per question\n")
	b.WriteString("- The correctAnswer must match one of the options exactly\n")
	b.WriteString("- Vary the question types (comprehension, details, analysis, etc.)")

	return b.String()
}
