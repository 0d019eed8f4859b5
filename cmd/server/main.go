package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RamK777-stack/jira-bot-api/internal/config"
	"github.com/RamK777-stack/jira-bot-api/internal/database"
	"github.com/RamK777-stack/jira-bot-api/internal/geoip"
	"github.com/RamK777-stack/jira-bot-api/internal/handler"
	"github.com/RamK777-stack/jira-bot-api/internal/jira"
	"github.com/RamK777-stack/jira-bot-api/internal/llm"
	"github.com/RamK777-stack/jira-bot-api/internal/middleware"
	"github.com/RamK777-stack/jira-bot-api/internal/models"
	"github.com/RamK777-stack/jira-bot-api/internal/repository"
	"github.com/RamK777-stack/jira-bot-api/internal/service"
)

// main is the single entry-point for the REST API.
func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Configuration loaded:")
	log.Printf("  - Jira project: %s (%s)", cfg.JiraProjectName, cfg.JiraProjectKey)
	log.Printf("  - LLM provider: %s", cfg.LLMProvider)

	// Connect to MongoDB (waitlist persistence)
	mongoClient, mongoCtx, mongoCancel, err := database.Connect(cfg.MongoURI, 10*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoCancel()
	defer mongoClient.Disconnect(mongoCtx)
	log.Printf("Connected to MongoDB")

	// Initialize the language-model client
	var llmClient llm.Client
	switch cfg.LLMProvider {
	case "vertex":
		vertex, err := llm.NewVertexClient(context.Background(), cfg.GCPProjectID, cfg.GCPLocation)
		if err != nil {
			log.Fatalf("Failed to initialize Vertex AI client: %v", err)
		}
		defer vertex.Close()
		llmClient = vertex
	case "dummy":
		llmClient = llm.NewDummyClient("This is a placeholder answer. Set LLM_PROVIDER to use a real model.")
	default:
		llmClient = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	}

	// Initialize outbound clients and services
	jiraClient := jira.NewClient(cfg.JiraAPIURL, cfg.JiraAPIUser, cfg.JiraAPIToken)
	lookupSvc := service.NewLookupService(jiraClient)

	promptCtx := models.PromptContext{
		ProjectKey:  cfg.JiraProjectKey,
		ProjectName: cfg.JiraProjectName,
	}
	chatSvc := service.NewChatService(llmClient, lookupSvc, promptCtx, cfg.ChatModel, cfg.SummaryModel)

	waitlistRepo := repository.NewWaitlistRepository(mongoClient.Database(cfg.DBName))
	waitlistSvc := service.NewWaitlistService(waitlistRepo, geoip.NewClient(""))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Add middleware
	app.Use(middleware.Logging())

	// Register routes
	handler.RegisterRoutes(app, chatSvc, lookupSvc, waitlistSvc)

	// Add health check
	handler.NewHealthHandler(mongoClient).Register(app)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
