package quiz

import "time"

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is a single multiple-choice question.
type Question struct {
	// Text is the question prompt displayed to the player.
	Text string `json:"question"`

	// Options holds exactly 4 display strings, one of which is correct.
	// Pairwise distinctness is not enforced.
	Options []string `json:"options"`

	// CorrectAnswer is the text of the correct option. It equals exactly
	// one element of Options after trimming.
	CorrectAnswer string `json:"correctAnswer"`
}

// Quiz is a persisted, immutable set of questions with metadata.
// A Quiz is created once, appended to the store, replayed any number of
// times, and removed at most once. There is no edit operation.
type Quiz struct {
	// ID is unique within the store and assigned at construction time.
	ID string `json:"id"`

	// Title is the trimmed display title.
	Title string `json:"title"`

	// Questions is the ordered question set, length >= 1. The AI path
	// produces exactly 5, the fallback path exactly 3.
	Questions []Question `json:"questions"`

	// CreatedAt is captured once at construction. Serialized as RFC 3339
	// so stored values sort and parse cleanly.
	CreatedAt time.Time `json:"createdAt"`
}
