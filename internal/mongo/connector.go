package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/forn8njoell-cmd/promptstudio/internal/logger"
)

// ConnectOptions defines MongoDB connection behavior.
type ConnectOptions struct {
	URL         string        // connection string (ex: "mongodb://localhost:27017")
	PingTimeout time.Duration // timeout for the readiness ping after connect
}

// Connect establishes a MongoDB client and verifies the connection with a
// ping. Fails fast: there is no retry loop anywhere in this system.
func Connect(ctx context.Context, opts ConnectOptions, log logger.Logger) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URL))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	log.Info("connected to mongodb")
	return client, nil
}
