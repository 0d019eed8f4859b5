package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RamK777-stack/jira-bot-api/internal/geoip"
	"github.com/RamK777-stack/jira-bot-api/internal/models"
)

type fakeStore struct {
	saved    []models.Signup
	existing map[string]models.Signup
}

func (f *fakeStore) Upsert(_ context.Context, s models.Signup) error {
	f.saved = append(f.saved, s)
	return nil
}

func (f *fakeStore) FindByEmail(_ context.Context, email string) (models.Signup, error) {
	return f.existing[email], nil
}

type fakeGeo struct {
	loc geoip.Location
	err error
}

func (f fakeGeo) Lookup(context.Context, string) (geoip.Location, error) {
	return f.loc, f.err
}

func TestJoinRejectsInvalidEmail(t *testing.T) {
	store := &fakeStore{}
	svc := NewWaitlistService(store, nil)

	require.ErrorIs(t, svc.Join(context.Background(), "", "1.2.3.4"), ErrInvalidEmail)
	require.ErrorIs(t, svc.Join(context.Background(), "not-an-email", "1.2.3.4"), ErrInvalidEmail)
	assert.Empty(t, store.saved)
}

func TestJoinEnrichesWithGeo(t *testing.T) {
	store := &fakeStore{}
	geo := fakeGeo{loc: geoip.Location{Country: "Germany", Region: "Berlin", City: "Berlin"}}
	svc := NewWaitlistService(store, geo)

	require.NoError(t, svc.Join(context.Background(), "User@Example.com", "9.9.9.9"))

	require.Len(t, store.saved, 1)
	s := store.saved[0]
	assert.Equal(t, "user@example.com", s.Email, "email is normalized")
	assert.Equal(t, "9.9.9.9", s.IP)
	assert.Equal(t, "Germany", s.Country)
	assert.Equal(t, "Berlin", s.City)
}

func TestJoinSurvivesGeoFailure(t *testing.T) {
	store := &fakeStore{}
	svc := NewWaitlistService(store, fakeGeo{err: errors.New("timeout")})

	require.NoError(t, svc.Join(context.Background(), "user@example.com", "9.9.9.9"))

	require.Len(t, store.saved, 1)
	assert.Empty(t, store.saved[0].Country, "geo failure leaves fields empty")
}

func TestJoinKeepsOriginalSignupTime(t *testing.T) {
	orig := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{existing: map[string]models.Signup{
		"user@example.com": {Email: "user@example.com", CreatedAt: orig},
	}}
	svc := NewWaitlistService(store, nil)

	require.NoError(t, svc.Join(context.Background(), "user@example.com", ""))

	require.Len(t, store.saved, 1)
	assert.Equal(t, orig, store.saved[0].CreatedAt)
}
