package handler

import (
	"errors"
	"log"

	"github.com/RamK777-stack/jira-bot-api/internal/models"
	"github.com/RamK777-stack/jira-bot-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// WaitlistHandler wires HTTP → WaitlistService.
type WaitlistHandler struct {
	svc service.WaitlistService
}

// NewWaitlistHandler creates a WaitlistHandler instance.
func NewWaitlistHandler(svc service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{svc: svc}
}

// Register mounts the /waitlist endpoint on the supplied router group.
func (h *WaitlistHandler) Register(r fiber.Router) {
	r.Post("/waitlist", h.join)
}

// join handles POST /waitlist  { "email": "..." }
func (h *WaitlistHandler) join(c *fiber.Ctx) error {
	var req models.WaitlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
	}

	if err := h.svc.Join(c.UserContext(), req.Email, c.IP()); err != nil {
		if errors.Is(err, service.ErrInvalidEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("[Waitlist Handler] Error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An error occurred while joining the waitlist",
		})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
