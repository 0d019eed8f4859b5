// Package config centralises all environment / flag configuration for the API.
// It should be imported only by `cmd/server` (and test code). Business-logic
// layers receive an already-built Config instance via dependency-injection.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// Jira
	JiraAPIURL      string
	JiraAPIUser     string
	JiraAPIToken    string
	JiraProjectKey  string
	JiraProjectName string

	// Language model
	LLMProvider     string // "anthropic" (default) or "vertex"
	AnthropicAPIKey string
	ChatModel       string // first-turn model
	SummaryModel    string // second-turn (summarization) model

	// Vertex backend (only read when LLMProvider == "vertex")
	GCPProjectID string
	GCPLocation  string

	// Data stores
	MongoURI string
	DBName   string

	// Server tuning
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses the environment (and an optional .env file) into Config.
// It panics on missing critical variables so mis-configurations fail fast.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "3000"),
		JiraAPIURL:      must("JIRA_API_URL"),
		JiraAPIUser:     must("JIRA_API_USER"),
		JiraAPIToken:    must("JIRA_API_TOKEN"),
		JiraProjectKey:  must("JIRA_PROJECT_KEY"),
		JiraProjectName: must("JIRA_PROJECT_NAME"),
		LLMProvider:     getEnv("LLM_PROVIDER", "anthropic"),
		ChatModel:       getEnv("CHAT_MODEL", "claude-3-sonnet-20240229"),
		SummaryModel:    getEnv("SUMMARY_MODEL", "claude-3-haiku-20240307"),
		MongoURI:        must("MONGODB_URI"),
		DBName:          getEnv("MONGODB_DB", "jira_bot"),
		ReadTimeout:     getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:    getDuration("WRITE_TIMEOUT_SEC", 60),
	}

	// Provider-specific credentials are only required for the active provider.
	switch cfg.LLMProvider {
	case "vertex":
		cfg.GCPProjectID = must("GCP_PROJECT_ID")
		cfg.GCPLocation = getEnv("GCP_LOCATION", "us-central1")
	case "dummy":
		// no credentials; canned answers for local development
	default:
		cfg.AnthropicAPIKey = must("ANTHROPIC_API_KEY")
	}

	return cfg
}

// must fetches a required env var or terminates the program.
func must(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("env var %s is required", key)
	}
	return val
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			return time.Duration(sec) * time.Second
		}
		log.Printf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
