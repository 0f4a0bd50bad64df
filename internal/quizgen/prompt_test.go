package quizgen

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_ContainsSourceText(t *testing.T) {
	msg := buildUserMessage("Photosynthesis converts light into energy.", DefaultConfig())

	if !strings.Contains(msg, "Photosynthesis converts light into energy.") {
		t.Error("expected source text in prompt")
	}
	if !strings.Contains(msg, "exactly 5 questions") {
		t.Error("expected question count in prompt")
	}
	if !strings.Contains(msg, "4 answer options") {
		t.Error("expected option count in prompt")
	}
}

func TestBuildUserMessage_QuestionCountConfigurable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.QuestionCount = 3

	msg := buildUserMessage("text", cfg)
	if !strings.Contains(msg, "exactly 3 questions") {
		t.Error("expected configured question count in prompt")
	}
}

func TestBuildUserMessage_DescribesFormat(t *testing.T) {
	msg := buildUserMessage("text", DefaultConfig())

	for _, want := range []string{`"questions"`, `"question"`, `"options"`, `"correctAnswer"`, "valid JSON"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestSystemPrompt_MentionsJSON(t *testing.T) {
	if !strings.Contains(systemPrompt, "JSON") {
		t.Error("expected system prompt to demand JSON output")
	}
}
