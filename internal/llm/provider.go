package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over text-generation backends. The quiz
// pipeline sends a prompt and receives raw text that it parses and
// validates itself.
type Provider interface {
	// Generate sends a prompt to the model and returns its output.
	// When the request carries a Schema the provider requests structured
	// output and validates the result against it; when Schema is nil the
	// Content is whatever text the model produced.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Quiz generation is single-turn, so
	// in practice this holds one user message.
	Messages []Message

	// Schema, when set, requests structured output conforming to the
	// given JSON Schema. The quiz pipeline leaves this nil and enforces
	// the response shape client-side.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema definition for structured output.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output plus accounting metadata.
type Response struct {
	// Content is the generated text. With a Schema it is the validated
	// JSON object; without one it is the raw response body.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
