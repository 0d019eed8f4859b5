package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RamK777-stack/jira-bot-api/internal/models"
)

const (
	// issueFields is the field selection for single-ticket reads.
	issueFields = "summary,status,assignee,comment"
	// searchFields additionally pulls sprint metadata for work-status queries.
	searchFields = "summary,status,assignee,comment,sprint"
)

// Client is a minimal wrapper around Jira's REST API v3.
// It is intentionally light—just the two read endpoints the bot requires.
// Safe for concurrent use; all state is immutable after construction.
type Client struct {
	http    *http.Client
	baseURL string
	user    string
	token   string
}

// NewClient returns a ready-to-use Jira API client. baseURL is the site root
// (e.g. "https://yourteam.atlassian.net"); user/token are the basic-auth pair.
func NewClient(baseURL, user, token string) *Client {
	return &Client{
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		user:    user,
		token:   token,
	}
}

// GetIssue retrieves a single issue by ticket ID (e.g. "ABC-123") with the
// chat pipeline's field selection.
func (c *Client) GetIssue(ctx context.Context, ticketID string) (models.Issue, error) {
	u := fmt.Sprintf("%s/rest/api/3/issue/%s", c.baseURL, url.PathEscape(ticketID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Issue{}, err
	}

	q := req.URL.Query()
	q.Set("fields", issueFields)
	req.URL.RawQuery = q.Encode()

	c.addHeaders(req)

	var issue models.Issue
	if err := c.do(req, &issue); err != nil {
		return models.Issue{}, err
	}
	return issue, nil
}

// SearchIssues runs a JQL query against the search endpoint and returns the
// matching issues in the API's default page size and ordering.
func (c *Client) SearchIssues(ctx context.Context, jql string) ([]models.Issue, error) {
	u := c.baseURL + "/rest/api/3/search"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("jql", jql)
	q.Set("fields", searchFields)
	req.URL.RawQuery = q.Encode()

	c.addHeaders(req)

	var result models.SearchResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result.Issues, nil
}

// addHeaders sets authentication and Accept headers.
func (c *Client) addHeaders(req *http.Request) {
	req.SetBasicAuth(c.user, c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jira-bot-api")
}

// do executes the HTTP request and decodes JSON into v.
func (c *Client) do(req *http.Request, v interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("jira: unexpected status %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
