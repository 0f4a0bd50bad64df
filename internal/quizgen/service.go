package quizgen

import (
	"context"
	"fmt"

	"quizforge/internal/llm"
	"quizforge/internal/quiz"
)

// Generator produces quizzes from source text.
type Generator interface {
	// Generate builds a quiz from the given source text. The returned
	// quiz carries a fresh ID and timestamp.
	Generate(ctx context.Context, sourceText, title string) (*quiz.Quiz, error)

	// Fallback builds a quiz of generic comprehension questions,
	// for when generation fails and the caller still wants a quiz.
	Fallback(title string) (*quiz.Quiz, error)
}

// Service implements Generator using the LLM provider.
type Service struct {
	provider llm.Provider
	builder  *quiz.Builder
	config   Config
}

// New creates a Service with the given provider and config. A nil
// builder gets the default clock and ID generator.
func New(provider llm.Provider, builder *quiz.Builder, cfg Config) *Service {
	if builder == nil {
		builder = quiz.NewBuilder()
	}
	return &Service{provider: provider, builder: builder, config: cfg}
}

// Generate runs the full pipeline: prompt the model, parse its output,
// validate the question set, and assemble the quiz. It never retries
// on its own; the caller decides whether to fall back.
func (s *Service) Generate(ctx context.Context, sourceText, title string) (*quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuizGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(sourceText, s.config)},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}
	if s.config.StructuredOutput {
		req.Schema = QuizSchema
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}
	if len(resp.Content) == 0 {
		return nil, &llm.ErrEmptyResponse{}
	}

	candidate, err := ParseResponse(resp.Content)
	if err != nil {
		return nil, err
	}

	questions, err := ValidateCandidate(candidate)
	if err != nil {
		return nil, err
	}

	q := s.builder.Build(title, questions)
	return &q, nil
}

// Fallback returns a quiz of generic comprehension questions under the
// given title.
func (s *Service) Fallback(title string) (*quiz.Quiz, error) {
	q := s.builder.Fallback(title)
	return &q, nil
}
