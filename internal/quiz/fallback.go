package quiz

// fallbackQuestions is the fixed question set used when the AI path is
// unavailable. Generic comprehension questions, not derived from the
// source text.
var fallbackQuestions = []Question{
	{
		Text: "What is the main idea addressed in the text?",
		Options: []string{
			"The central concept developed in the passage",
			"A secondary idea mentioned in passing",
			"A specific technical detail",
			"A general conclusion",
		},
		CorrectAnswer: "The central concept developed in the passage",
	},
	{
		Text: "Which important element is highlighted?",
		Options: []string{
			"A technical aspect",
			"The key element of the subject discussed",
			"A piece of background information",
			"An illustrative example",
		},
		CorrectAnswer: "The key element of the subject discussed",
	},
	{
		Text: "According to the text, what conclusion can be drawn?",
		Options: []string{
			"A personal interpretation",
			"The logical conclusion of the argument",
			"An unconfirmed hypothesis",
			"An alternative point of view",
		},
		CorrectAnswer: "The logical conclusion of the argument",
	},
}

// Fallback produces a deterministic quiz without any external call.
// It uses the same id and timestamp construction as the AI path. The
// pipeline never invokes it automatically on failure; choosing the
// fallback is the caller's decision.
func (b *Builder) Fallback(title string) Quiz {
	questions := make([]Question, len(fallbackQuestions))
	for i, q := range fallbackQuestions {
		questions[i] = Question{
			Text:          q.Text,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return b.Build(title, questions)
}
