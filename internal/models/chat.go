package models

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	Message string `json:"message"` // user's natural-language question
}

// ChatResponse is the envelope returned to the client. Result is either a
// parsed JSON object (one of the documented response shapes) or, when the
// model's final text is not valid JSON, the raw text itself.
type ChatResponse struct {
	Result any `json:"result"`
}

// PromptContext carries the two project identifiers interpolated into the
// system prompt. Immutable once built; injected per request.
type PromptContext struct {
	ProjectKey  string `json:"JIRA_PROJECT_KEY"`
	ProjectName string `json:"JIRA_PROJECT_NAME"`
}

// The three response shapes the model is instructed to produce. The pipeline
// does not validate conformance — these exist to document the contract for
// API consumers (shape adherence is the model's job, not ours).

// BotSummaryResponse is the minimal shape: a conversational answer only.
type BotSummaryResponse struct {
	BotSummary string `json:"bot_summary"`
}

// TicketSummaryResponse is returned for single-ticket questions.
type TicketSummaryResponse struct {
	BotSummary    string        `json:"bot_summary"`
	TicketSummary TicketSummary `json:"ticket_summary"`
}

// TicketSummary condenses one ticket's fields and comment thread.
type TicketSummary struct {
	TicketNumber string `json:"ticket_number"`
	Summary      string `json:"summary"`
	Status       string `json:"status"`
	Assignee     string `json:"assignee"`
	Comments     string `json:"comments"`
}

// TeamWorkSummaryResponse is returned for team-status questions.
type TeamWorkSummaryResponse struct {
	BotSummary      string           `json:"bot_summary"`
	TeamWorkSummary []TeamMemberWork `json:"team_work_summary"`
}

// TeamMemberWork groups summarized tickets under one assignee.
type TeamMemberWork struct {
	TeamMember string       `json:"team_member"`
	Tickets    []TicketWork `json:"tickets"`
}

// TicketWork is one ticket's contribution inside a team summary.
type TicketWork struct {
	TicketNumber string `json:"ticket_number"`
	WorkSummary  string `json:"work_summary"`
}
