package database

import (
	"context"
	"fmt"
	"net"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"marvelapi/internal/config"
)

var mongoConnect = mongodriver.Connect

// BuildMongoURI returns the store connection string. URI takes precedence over
// Host and Port.
// Example: mongodb://localhost:27017
func BuildMongoURI(c config.StoreConfig) (string, error) {
	if c.URI != "" {
		return c.URI, nil
	}
	if c.Host == "" || c.Port == "" {
		return "", fmt.Errorf("invalid store config: host and port are required")
	}
	return "mongodb://" + net.JoinHostPort(c.Host, c.Port), nil
}

// NewMongo connects a pooled client and verifies the deployment is reachable.
func NewMongo(c config.StoreConfig) (*mongodriver.Client, error) {
	uri, err := BuildMongoURI(c)
	if err != nil {
		return nil, err
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout)
	if c.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(c.MaxPoolSize))
	}

	client, err := mongoConnect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	// Verify connectivity with a short timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}
