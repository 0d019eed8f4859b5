package handler

import (
	"github.com/RamK777-stack/jira-bot-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every endpoint. The original surface lives at the
// root (/chat, /jira/*) and is mirrored under /api/v1 for newer clients.
func RegisterRoutes(app *fiber.App,
	chatSvc service.ChatService,
	lookupSvc service.LookupService,
	waitlistSvc service.WaitlistService,
) {
	chat := NewChatHandler(chatSvc)
	jira := NewJiraHandler(lookupSvc)
	waitlist := NewWaitlistHandler(waitlistSvc)

	chat.Register(app)
	jira.Register(app)
	waitlist.Register(app)

	v1 := app.Group("/api/v1")
	chat.Register(v1)
	jira.Register(v1)
	waitlist.Register(v1)
}
