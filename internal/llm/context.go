package llm

import "context"

// Purpose labels recorded with each LLM event. Quiz generation is the
// only caller today; PurposeUnknown covers requests made without a
// label.
const (
	PurposeQuizGen = "quiz-gen"
	PurposeUnknown = "unknown"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose tags the context with what the upcoming request is for,
// so the event log can be filtered and priced per purpose.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, defaulting to PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return PurposeUnknown
}
