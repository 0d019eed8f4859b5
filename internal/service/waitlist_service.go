package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/RamK777-stack/jira-bot-api/internal/geoip"
	"github.com/RamK777-stack/jira-bot-api/internal/models"
)

// ErrInvalidEmail rejects signups without a usable address.
var ErrInvalidEmail = errors.New("a valid email is required")

// ---- Persistence contract ---------------------------------------------------

// SignupStore handles persistence of waitlist signups.
type SignupStore interface {
	Upsert(ctx context.Context, s models.Signup) error
	// FindByEmail returns the zero Signup with a nil error when absent.
	FindByEmail(ctx context.Context, email string) (models.Signup, error)
}

// GeoResolver turns a caller IP into a location, best-effort.
type GeoResolver interface {
	Lookup(ctx context.Context, ip string) (geoip.Location, error)
}

// ---- Service ----------------------------------------------------------------

// WaitlistService records signups and enriches them with the caller's
// geolocation. Geo failures never fail the signup.
type WaitlistService interface {
	Join(ctx context.Context, email, ip string) error
}

type waitlistService struct {
	store SignupStore
	geo   GeoResolver
}

// NewWaitlistService wires the store and the geo resolver. geo may be nil to
// disable enrichment.
func NewWaitlistService(store SignupStore, geo GeoResolver) WaitlistService {
	return &waitlistService{store: store, geo: geo}
}

// Join validates the address, enriches with geolocation, and upserts so a
// repeated signup from the same email stays a single document.
func (s *waitlistService) Join(ctx context.Context, email, ip string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	signup := models.Signup{
		Email:     email,
		IP:        ip,
		CreatedAt: time.Now(),
	}

	// A repeated signup keeps its original timestamp.
	if existing, err := s.store.FindByEmail(ctx, email); err == nil && !existing.CreatedAt.IsZero() {
		signup.CreatedAt = existing.CreatedAt
	}

	if s.geo != nil && ip != "" {
		if loc, err := s.geo.Lookup(ctx, ip); err != nil {
			log.Printf("[Waitlist Service] Geo lookup failed for %s: %v", ip, err)
		} else {
			signup.Country = loc.Country
			signup.Region = loc.Region
			signup.City = loc.City
		}
	}

	return s.store.Upsert(ctx, signup)
}
