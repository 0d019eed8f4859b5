package handler

import (
	"github.com/RamK777-stack/jira-bot-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// JiraHandler exposes the lookup adapter directly for diagnostic use.
type JiraHandler struct {
	lookup service.LookupService
}

// NewJiraHandler creates a JiraHandler instance.
func NewJiraHandler(lookup service.LookupService) *JiraHandler {
	return &JiraHandler{lookup: lookup}
}

// Register mounts the read-only Jira endpoints on the supplied router group.
func (h *JiraHandler) Register(r fiber.Router) {
	r.Get("/jira/ticket", h.getTicket)
	r.Get("/jira/updated-tickets", h.searchTickets)
}

// getTicket handles GET /jira/ticket?ticketId=ABC-123 and returns the
// adapter's raw normalized result (fields, or the no-data sentinel).
func (h *JiraHandler) getTicket(c *fiber.Ctx) error {
	ticketID := c.Query("ticketId")
	if ticketID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ticketId is required"})
	}

	return c.JSON(h.lookup.FetchTicket(c.UserContext(), ticketID))
}

// searchTickets handles GET /jira/updated-tickets?jql=...
func (h *JiraHandler) searchTickets(c *fiber.Ctx) error {
	jql := c.Query("jql")
	if jql == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "JQL query is required"})
	}

	return c.JSON(h.lookup.SearchTickets(c.UserContext(), jql))
}
