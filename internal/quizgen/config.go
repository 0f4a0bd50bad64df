package quizgen

// Config controls the behavior of the Service.
type Config struct {
	// QuestionCount is the number of questions the prompt asks for.
	// The validator does not enforce it; a response with fewer valid
	// questions still produces a quiz.
	QuestionCount int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// StructuredOutput sends QuizSchema with the request so providers
	// that support it constrain the response shape server-side. The
	// client-side validator runs regardless.
	StructuredOutput bool
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		QuestionCount: 5,
		MaxTokens:     2000,
		Temperature:   0.7,
	}
}
