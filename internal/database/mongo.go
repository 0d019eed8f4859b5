package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect establishes the MongoDB client used for waitlist persistence.
// The supplied timeout bounds both the initial dial and the verification ping.
//
// Typical usage:
//
//	client, ctx, cancel, err := database.Connect(cfg.MongoURI, 10*time.Second)
//	if err != nil { … }
//	defer cancel()
//	defer client.Disconnect(ctx)
func Connect(uri string, timeout time.Duration) (*mongo.Client, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	clientOpts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout / 2)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, ctx, cancel, err
	}

	// Verify the connection with a ping before handing the client out.
	if err := client.Ping(ctx, nil); err != nil {
		// Disconnect on ping failure to avoid leaking sockets.
		_ = client.Disconnect(ctx)
		return nil, ctx, cancel, err
	}

	return client, ctx, cancel, nil
}
