package quizgen

import (
	"errors"
	"strings"
	"testing"
)

func TestParseResponse_ValidObject(t *testing.T) {
	raw := []byte(`{"questions": [{"question": "Q?", "options": ["a","b","c","d"], "correctAnswer": "a"}]}`)

	c, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Questions == nil {
		t.Error("expected questions payload to be captured")
	}
}

func TestParseResponse_MalformedJSON(t *testing.T) {
	raw := []byte(`{"questions": [{"question": "Q?"`)

	_, err := ParseResponse(raw)
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Raw != string(raw) {
		t.Errorf("expected original text to be preserved, got %q", perr.Raw)
	}
}

func TestParseResponse_MarkdownFencedJSON(t *testing.T) {
	// No fence stripping: fenced output is a parse failure.
	raw := []byte("```json\n{\"questions\": []}\n```")

	_, err := ParseResponse(raw)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestParseResponse_NonObjectJSON(t *testing.T) {
	// Valid JSON of the wrong shape is a validation concern, not a
	// parse failure.
	for _, raw := range []string{`"just a string"`, `[1, 2, 3]`, `42`} {
		c, err := ParseResponse([]byte(raw))
		if err != nil {
			t.Fatalf("ParseResponse(%s): unexpected error: %v", raw, err)
		}
		if c.Questions != nil {
			t.Errorf("ParseResponse(%s): expected empty candidate", raw)
		}
	}
}

func TestParseResponse_EmptyInput(t *testing.T) {
	_, err := ParseResponse([]byte(""))
	if err == nil {
		t.Fatal("expected parse error for empty input")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("unexpected error message: %v", err)
	}
}
