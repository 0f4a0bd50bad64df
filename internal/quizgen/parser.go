package quizgen

import (
	"encoding/json"
	"errors"
)

// Candidate is the decoded-but-not-yet-validated structure produced
// from raw generation output. The questions payload stays raw so the
// validator can distinguish a missing field from a malformed one.
type Candidate struct {
	Questions json.RawMessage `json:"questions"`
}

// candidateQuestion mirrors the per-question shape the model is asked
// to produce.
type candidateQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// ParseResponse decodes the raw text returned by the generation call.
// Any decode failure yields a *ParseError carrying the original text;
// downstream schema violations are the validator's concern.
func ParseResponse(raw []byte) (*Candidate, error) {
	var c Candidate
	if err := json.Unmarshal(raw, &c); err != nil {
		// A top-level non-object (e.g. a bare string or array) is
		// syntactically valid JSON with the wrong shape; that is the
		// validator's verdict to give, not a parse failure.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &Candidate{}, nil
		}
		return nil, &ParseError{Raw: string(raw), Err: err}
	}
	return &c, nil
}
