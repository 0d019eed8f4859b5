package repository

import (
	"context"
	"log"

	"github.com/RamK777-stack/jira-bot-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WaitlistRepository provides Mongo-backed persistence for waitlist signups.
type WaitlistRepository struct {
	col *mongo.Collection
}

// NewWaitlistRepository returns a repository operating on the "waitlist"
// collection, keyed by email.
func NewWaitlistRepository(db *mongo.Database) *WaitlistRepository {
	return &WaitlistRepository{
		col: db.Collection("waitlist"),
	}
}

// Upsert inserts or replaces the signup with the same email.
func (r *WaitlistRepository) Upsert(ctx context.Context, s models.Signup) error {
	_, err := r.col.ReplaceOne(
		ctx,
		bson.M{"_id": s.Email},
		s,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		log.Printf("[Waitlist Repository] Error upserting signup %s: %v", s.Email, err)
		return err
	}
	log.Printf("[Waitlist Repository] Upserted signup for %s", s.Email)
	return nil
}

// FindByEmail returns a signup by address. When the document is not found it
// returns an empty Signup and a nil error so callers can treat absence as
// "not signed up yet".
func (r *WaitlistRepository) FindByEmail(ctx context.Context, email string) (models.Signup, error) {
	var s models.Signup
	err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return models.Signup{}, nil
	}
	if err != nil {
		log.Printf("[Waitlist Repository] Error finding signup %s: %v", email, err)
		return models.Signup{}, err
	}
	return s, nil
}
