package quiz

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func fixedID(id string) IDGenerator {
	return func(time.Time) string { return id }
}

func sampleQuestions() []Question {
	return []Question{
		{
			Text:          "What sound do cats make?",
			Options:       []string{"Purr", "Bark", "Moo", "Quack"},
			CorrectAnswer: "Purr",
		},
	}
}

func TestBuild_Deterministic(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	b := NewBuilderWith(fixedClock(now), fixedID("quiz-1"))

	q1 := b.Build("Animals", sampleQuestions())
	q2 := b.Build("Animals", sampleQuestions())

	if q1.ID != "quiz-1" || q2.ID != "quiz-1" {
		t.Fatalf("expected fixed id, got %q and %q", q1.ID, q2.ID)
	}
	if !q1.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, q1.CreatedAt)
	}
	if q1.Title != q2.Title || len(q1.Questions) != len(q2.Questions) {
		t.Error("expected identical quizzes for identical inputs")
	}
}

func TestBuild_TrimsTitle(t *testing.T) {
	b := NewBuilder()
	q := b.Build("  Animals  ", sampleQuestions())
	if q.Title != "Animals" {
		t.Errorf("expected trimmed title, got %q", q.Title)
	}
}

func TestBuild_CreatedAtCapturedOnce(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	b := NewBuilderWith(clock, nil)
	b.Build("Animals", sampleQuestions())
	if calls != 1 {
		t.Errorf("expected clock read once, got %d reads", calls)
	}
}

func TestNewID_TimePrefixed(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	id := NewID(now)

	want := strconv.FormatInt(now.UnixMilli(), 10)
	if !strings.HasPrefix(id, want) {
		t.Fatalf("expected prefix %q, got id %q", want, id)
	}
	if len(id) <= len(want) {
		t.Errorf("expected random suffix after timestamp, got %q", id)
	}
}

func TestNewID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for range 100 {
		id := NewID(now)
		if seen[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		seen[id] = true
	}
}
