package models

// Issue is one tracker-native issue record as returned by Jira's REST API,
// trimmed to the fields the pipeline requests.
type Issue struct {
	ID     string       `json:"id"`
	Key    string       `json:"key"`
	Fields TicketFields `json:"fields"`
}

// TicketFields captures the field selection we ask Jira for
// (summary,status,assignee,comment and, on searches, sprint).
type TicketFields struct {
	Summary  string      `json:"summary"`
	Status   Status      `json:"status"`
	Assignee *Assignee   `json:"assignee"` // nil when unassigned
	Comment  CommentPage `json:"comment"`
	Sprint   []Sprint    `json:"sprint,omitempty"`
}

// Sprint is kept as a raw JSON-decoded value, like Comment.Body, so sprint
// metadata passes through undamaged regardless of the tracker's shape.
type Sprint = any

// Status is the issue's workflow state.
type Status struct {
	Name string `json:"name"`
}

// Assignee identifies the person the issue is assigned to.
type Assignee struct {
	DisplayName string `json:"displayName"`
}

// CommentPage is Jira's paged comment container.
type CommentPage struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}

// Comment is a single issue comment. Body is kept as raw JSON-decoded value
// because Jira v3 returns Atlassian Document Format objects, not plain text.
type Comment struct {
	Author Assignee `json:"author"`
	Body   any      `json:"body"`
}

// SearchResult is the envelope of Jira's search endpoint.
type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}
