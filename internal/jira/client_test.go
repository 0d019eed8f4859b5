package jira

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/issue/ABC-123", r.URL.Path)
		assert.Equal(t, "summary,status,assignee,comment", r.URL.Query().Get("fields"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "bot@example.com", user)
		assert.Equal(t, "secret", pass)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "10001",
			"key": "ABC-123",
			"fields": {
				"summary": "Fix login page",
				"status": {"name": "In Progress"},
				"assignee": {"displayName": "Ram"},
				"comment": {"comments": [{"author": {"displayName": "Ram"}, "body": "WIP"}], "total": 1}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bot@example.com", "secret")
	issue, err := c.GetIssue(context.Background(), "ABC-123")

	require.NoError(t, err)
	assert.Equal(t, "ABC-123", issue.Key)
	assert.Equal(t, "Fix login page", issue.Fields.Summary)
	assert.Equal(t, "In Progress", issue.Fields.Status.Name)
	require.NotNil(t, issue.Fields.Assignee)
	assert.Equal(t, "Ram", issue.Fields.Assignee.DisplayName)
	require.Len(t, issue.Fields.Comment.Comments, 1)
}

func TestGetIssueUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bot@example.com", "wrong")
	_, err := c.GetIssue(context.Background(), "ABC-123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}

func TestSearchIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/api/3/search", r.URL.Path)
		assert.Equal(t, "project = TEST AND sprint in openSprints()", r.URL.Query().Get("jql"))
		assert.Equal(t, "summary,status,assignee,comment,sprint", r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"startAt": 0, "maxResults": 50, "total": 2,
			"issues": [
				{"id": "1", "key": "TEST-1", "fields": {"summary": "a", "status": {"name": "Done"}}},
				{"id": "2", "key": "TEST-2", "fields": {"summary": "b", "status": {"name": "To Do"}, "assignee": null}}
			]
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bot@example.com", "secret")
	issues, err := c.SearchIssues(context.Background(), "project = TEST AND sprint in openSprints()")

	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "TEST-1", issues[0].Key)
	assert.Nil(t, issues[1].Fields.Assignee, "unassigned decodes to nil")
}

func TestSearchIssuesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, "bot@example.com", "secret")
	_, err := c.SearchIssues(context.Background(), "project = TEST")

	require.Error(t, err)
}
