// Package llm abstracts the language-model backends behind a single
// completion interface so the chat pipeline never depends on a vendor SDK.
package llm

import "context"

// Message roles as they appear on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation passed to the model.
type Message struct {
	Role    string
	Content string
}

// Request is a single-turn-extended completion request: a system prompt, an
// ordered message list, and fixed sampling parameters.
type Request struct {
	Model       string
	System      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Client defines the interface for language model interactions.
// Implementations must be safe for concurrent use.
type Client interface {
	// Complete runs one completion call and returns the model's text block.
	Complete(ctx context.Context, req Request) (string, error)
}
