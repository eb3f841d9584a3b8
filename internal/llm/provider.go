package llm

import (
	"context"
	"encoding/json"
)

// Provider generates short structured replies. The app uses it for one
// thing: drafting encouragement notes a parent can send to the child,
// so requests are single-turn and responses are small JSON objects.
type Provider interface {
	// Generate sends a prompt to the model. When the request carries a
	// Schema the provider asks for structured output and the returned
	// Content is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// defaultMaxTokens bounds a response when the caller sets no limit.
// Replies here are a couple of sentences, so the bound is small.
const defaultMaxTokens = 256

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Drafting an encouragement note is
	// single-turn, so this is normally one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil
	// the response Content is the raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length. Zero means defaultMaxTokens.
	MaxTokens int

	// Temperature controls randomness in [0,1]. Zero means the
	// provider default.
	Temperature float64
}

// maxTokens returns the effective response cap.
func (r Request) maxTokens() int {
	if r.MaxTokens > 0 {
		return r.MaxTokens
	}
	return defaultMaxTokens
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "encouragement".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
