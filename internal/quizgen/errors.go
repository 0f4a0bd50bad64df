package quizgen

import "fmt"

// ParseError reports that the generation response was not valid JSON.
// It carries the original text for diagnostics. No recovery is
// attempted: no markdown-fence stripping, no partial-JSON repair.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in generation response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationKind identifies which schema rule a candidate violated.
type ValidationKind string

const (
	// MissingQuestionsField: the candidate has no questions array.
	MissingQuestionsField ValidationKind = "missing_questions_field"

	// MalformedQuestion: a question lacks its text, options array, or
	// correct answer.
	MalformedQuestion ValidationKind = "malformed_question"

	// WrongOptionCount: a question does not have exactly 4 options.
	WrongOptionCount ValidationKind = "wrong_option_count"

	// AnswerNotInOptions: the correct answer matches none of the
	// options verbatim.
	AnswerNotInOptions ValidationKind = "answer_not_in_options"

	// NoValidQuestions: validation produced an empty question sequence.
	NoValidQuestions ValidationKind = "no_valid_questions"
)

// ValidationError describes why a candidate failed validation. Index is
// the 0-based position of the offending question; user-facing messages
// render it 1-based. Index is -1 for violations that are not tied to a
// single question.
type ValidationError struct {
	Kind  ValidationKind
	Index int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case MissingQuestionsField:
		return "response has no questions array"
	case MalformedQuestion:
		return fmt.Sprintf("question %d is malformed", e.Index+1)
	case WrongOptionCount:
		return fmt.Sprintf("question %d must have exactly 4 options", e.Index+1)
	case AnswerNotInOptions:
		return fmt.Sprintf("question %d: correct answer does not match any option", e.Index+1)
	case NoValidQuestions:
		return "no valid questions generated"
	default:
		return fmt.Sprintf("validation failed: %s", e.Kind)
	}
}
