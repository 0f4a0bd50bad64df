package quizgen

import (
	"encoding/json"
	"strings"

	"quizforge/internal/quiz"
)

// ValidateCandidate checks a candidate against the required quiz shape
// and normalizes whitespace. It fails fast at the first violation, in
// order: questions array present, per-question field presence, option
// count, correct-answer membership. The membership check runs against
// the raw (pre-trim) values; trimming happens after a question passes.
//
// The returned sequence preserves the candidate's order. Questions are
// not deduplicated and options are not checked for pairwise
// distinctness.
func ValidateCandidate(c *Candidate) ([]quiz.Question, error) {
	if c == nil || len(c.Questions) == 0 || string(c.Questions) == "null" {
		return nil, &ValidationError{Kind: MissingQuestionsField, Index: -1}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(c.Questions, &elements); err != nil {
		// Present but not an array.
		return nil, &ValidationError{Kind: MissingQuestionsField, Index: -1}
	}

	questions := make([]quiz.Question, 0, len(elements))
	for i, element := range elements {
		var cq candidateQuestion
		if err := json.Unmarshal(element, &cq); err != nil {
			return nil, &ValidationError{Kind: MalformedQuestion, Index: i}
		}
		if cq.Question == "" || cq.Options == nil || cq.CorrectAnswer == "" {
			return nil, &ValidationError{Kind: MalformedQuestion, Index: i}
		}
		if len(cq.Options) != quiz.OptionCount {
			return nil, &ValidationError{Kind: WrongOptionCount, Index: i}
		}
		if !contains(cq.Options, cq.CorrectAnswer) {
			return nil, &ValidationError{Kind: AnswerNotInOptions, Index: i}
		}

		options := make([]string, len(cq.Options))
		for j, opt := range cq.Options {
			options[j] = strings.TrimSpace(opt)
		}
		questions = append(questions, quiz.Question{
			Text:          strings.TrimSpace(cq.Question),
			Options:       options,
			CorrectAnswer: strings.TrimSpace(cq.CorrectAnswer),
		})
	}

	if len(questions) == 0 {
		return nil, &ValidationError{Kind: NoValidQuestions, Index: -1}
	}
	return questions, nil
}

func contains(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
