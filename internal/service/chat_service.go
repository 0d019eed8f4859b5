package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/RamK777-stack/jira-bot-api/internal/llm"
	"github.com/RamK777-stack/jira-bot-api/internal/models"
	"github.com/RamK777-stack/jira-bot-api/internal/prompt"
)

// Sampling parameters for the two model calls. The summarization turn runs
// colder so repeated lookups produce stable answers.
const (
	maxTokens            = 1500
	firstTurnTemperature = 0.7
	summaryTemperature   = 0.1
)

// badFunctionCallReply is returned verbatim when the model emits a
// function_call that does not match name(args).
const badFunctionCallReply = "Function call format is incorrect."

// ErrEmptyMessage rejects blank input before any outbound call is made.
var ErrEmptyMessage = errors.New("message is required")

// functionCallPattern extracts "name(args)" from the model's function_call
// string: a bare identifier, then everything up to the final closing paren.
var functionCallPattern = regexp.MustCompile(`(\w+)\((.*)\)`)

// ChatService runs the two-phase model exchange for one user message.
type ChatService interface {
	// Chat returns either a parsed JSON value (one of the documented response
	// shapes) or a raw string when the model's output is not valid JSON.
	Chat(ctx context.Context, message string) (any, error)
}

type chatService struct {
	llm          llm.Client
	lookup       LookupService
	systemPrompt string
	chatModel    string
	summaryModel string
}

// NewChatService wires the model client and lookup adapter, rendering the
// system prompt once for the given project context.
func NewChatService(client llm.Client, lookup LookupService, pc models.PromptContext, chatModel, summaryModel string) ChatService {
	return &chatService{
		llm:          client,
		lookup:       lookup,
		systemPrompt: prompt.Build(pc),
		chatModel:    chatModel,
		summaryModel: summaryModel,
	}
}

// Chat drives the exchange:
//
//	first model call → parse directive → {direct answer | dispatch lookup}
//	→ [second model call] → coerce → done
//
// Each model call and each lookup happens at most once per request, and
// every failure below input validation degrades to a best-effort answer.
func (s *chatService) Chat(ctx context.Context, message string) (any, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	content, err := s.llm.Complete(ctx, llm.Request{
		Model:       s.chatModel,
		System:      s.systemPrompt,
		MaxTokens:   maxTokens,
		Temperature: firstTurnTemperature,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: message},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("first model call failed: %w", err)
	}

	d := parseDirective(content)
	switch d.kind {
	case directPassthrough:
		// Not JSON at all: the model answered in free text.
		return content, nil
	case directObject:
		// Structured answer with no function_call; return it as-is.
		return d.payload, nil
	case malformedCall:
		log.Printf("[Chat Service] Malformed function_call in first turn")
		return badFunctionCallReply, nil
	}

	result := s.dispatch(ctx, d.name, d.rawArgs)

	summary, err := s.summarize(ctx, message, content, result)
	if err != nil {
		return nil, fmt.Errorf("summarization call failed: %w", err)
	}

	return coerce(summary), nil
}

// ---- Function-call parser ---------------------------------------------------

type directiveKind int

const (
	directPassthrough directiveKind = iota // first turn is not valid JSON
	directObject                           // valid JSON, no function_call key
	functionCall                           // well-formed function_call
	malformedCall                          // function_call present but unparseable
)

// directive is the interpreted form of the model's first-turn output.
type directive struct {
	kind    directiveKind
	payload any    // directObject only
	name    string // functionCall only
	rawArgs string // functionCall only
}

// parseDirective extracts syntax only; whether name is a known function is
// the dispatcher's problem.
func parseDirective(text string) directive {
	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return directive{kind: directPassthrough}
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		// Valid JSON but not an object: it is the answer itself.
		return directive{kind: directObject, payload: payload}
	}

	raw, ok := obj["function_call"]
	if !ok {
		return directive{kind: directObject, payload: payload}
	}

	call, ok := raw.(string)
	if !ok {
		return directive{kind: malformedCall}
	}
	m := functionCallPattern.FindStringSubmatch(call)
	if m == nil {
		return directive{kind: malformedCall}
	}

	return directive{kind: functionCall, name: m[1], rawArgs: m[2]}
}

// ---- Dispatcher -------------------------------------------------------------

// dispatch maps the parsed function name onto the lookup adapter. At most one
// lookup happens per request; unknown names yield the sentinel so the
// exchange still reaches a user-visible answer.
func (s *chatService) dispatch(ctx context.Context, name, rawArgs string) any {
	switch name {
	case "get_work_status":
		// The model sometimes quotes the JQL; strip one surrounding pair.
		return s.lookup.SearchTickets(ctx, stripSurroundingQuotes(rawArgs))
	case "get_ticket_details":
		return s.lookup.FetchTicket(ctx, rawArgs)
	default:
		log.Printf("[Chat Service] Unknown function %q requested by model", name)
		return NoDataSentinel
	}
}

func stripSurroundingQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// ---- Summarization re-prompter ---------------------------------------------

// summarize issues the second model call, replaying the user's message and
// the model's own first turn, then folding in the lookup result.
func (s *chatService) summarize(ctx context.Context, message, firstTurn string, result any) (string, error) {
	encoded, err := json.Marshal(result)
	if err != nil {
		// The lookup types always marshal; guard anyway so a surprise can
		// never abort the exchange.
		log.Printf("[Chat Service] Failed to marshal lookup result: %v", err)
		encoded = []byte(`null`)
	}

	instruction := fmt.Sprintf(
		"Here is the function result: %s, if there is no data in function result, "+
			"please say that no data available. or else please summarize this information. "+
			"do not include JIRA field names or function_call in this response",
		encoded,
	)

	return s.llm.Complete(ctx, llm.Request{
		Model:       s.summaryModel,
		System:      s.systemPrompt,
		MaxTokens:   maxTokens,
		Temperature: summaryTemperature,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: message},
			{Role: llm.RoleAssistant, Content: firstTurn},
			{Role: llm.RoleUser, Content: instruction},
		},
	})
}

// ---- Response coercer -------------------------------------------------------

// coerce parses the candidate text into the structured contract. The parsed
// value is returned as-is; shape conformance is a contract with the model,
// not a validated invariant. Non-JSON text comes back unchanged.
func coerce(text string) any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return text
	}
	return v
}
