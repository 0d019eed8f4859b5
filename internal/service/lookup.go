package service

import (
	"context"
	"log"

	"github.com/RamK777-stack/jira-bot-api/internal/models"
)

// NoDataSentinel is the placeholder returned when a lookup was attempted but
// produced nothing usable. It is a value, not an error: the pipeline keeps
// going toward a user-visible answer.
const NoDataSentinel = "No details found"

// ---- Tracker contract -------------------------------------------------------

// TicketReader is the consumer-side contract for the Jira REST client.
type TicketReader interface {
	GetIssue(ctx context.Context, ticketID string) (models.Issue, error)
	SearchIssues(ctx context.Context, jql string) ([]models.Issue, error)
}

// ---- Service interface + implementation ------------------------------------

// LookupService normalizes tracker reads into values that can always be fed
// back to the model: a failed fetch becomes the sentinel, a failed search an
// empty slice. Neither operation ever returns an error.
type LookupService interface {
	// FetchTicket returns the ticket's field set, or NoDataSentinel.
	FetchTicket(ctx context.Context, ticketID string) any
	// SearchTickets returns the issues matching jql, possibly empty.
	SearchTickets(ctx context.Context, jql string) []models.Issue
}

type lookupService struct {
	tracker TicketReader
}

// NewLookupService wraps the tracker client.
func NewLookupService(tracker TicketReader) LookupService {
	return &lookupService{tracker: tracker}
}

// FetchTicket issues one read against the issue endpoint. Transport or auth
// failures are absorbed here: logged, then replaced with the sentinel.
func (s *lookupService) FetchTicket(ctx context.Context, ticketID string) any {
	issue, err := s.tracker.GetIssue(ctx, ticketID)
	if err != nil {
		log.Printf("[Lookup Service] Error fetching ticket %s: %v", ticketID, err)
		return NoDataSentinel
	}
	log.Printf("[Lookup Service] Fetched ticket %s (status: %s)", ticketID, issue.Fields.Status.Name)
	return issue.Fields
}

// SearchTickets issues one read against the search endpoint. Failures are
// logged and collapse into an empty result set.
func (s *lookupService) SearchTickets(ctx context.Context, jql string) []models.Issue {
	issues, err := s.tracker.SearchIssues(ctx, jql)
	if err != nil {
		log.Printf("[Lookup Service] Error searching tickets with %q: %v", jql, err)
		return []models.Issue{}
	}
	log.Printf("[Lookup Service] Search %q returned %d issues", jql, len(issues))
	return issues
}
