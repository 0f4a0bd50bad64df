package quiz

import (
	"testing"
	"time"
)

func TestFallback_ThreeQuestions(t *testing.T) {
	now := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	b := NewBuilderWith(fixedClock(now), fixedID("fb-1"))

	q := b.Fallback("Sample")

	if len(q.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(q.Questions))
	}
	if q.ID != "fb-1" {
		t.Errorf("expected freshly generated id, got %q", q.ID)
	}
	if !q.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt equal to call time, got %v", q.CreatedAt)
	}
	if q.Title != "Sample" {
		t.Errorf("expected title %q, got %q", "Sample", q.Title)
	}
}

func TestFallback_QuestionInvariants(t *testing.T) {
	q := NewBuilder().Fallback("Sample")

	for i, question := range q.Questions {
		if question.Text == "" {
			t.Errorf("question %d: empty text", i)
		}
		if len(question.Options) != OptionCount {
			t.Errorf("question %d: expected %d options, got %d", i, OptionCount, len(question.Options))
		}
		found := false
		for _, opt := range question.Options {
			if opt == question.CorrectAnswer {
				found = true
			}
		}
		if !found {
			t.Errorf("question %d: correct answer %q not among options", i, question.CorrectAnswer)
		}
	}
}

func TestFallback_CopiesOptions(t *testing.T) {
	b := NewBuilder()
	first := b.Fallback("A")
	first.Questions[0].Options[0] = "mutated"

	second := b.Fallback("B")
	if second.Questions[0].Options[0] == "mutated" {
		t.Error("fallback quizzes share option slices")
	}
}
