// Package schema checks that the store holds the collections the API reads.
// The API never writes, so nothing is created here.
package schema

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"goa.design/clue/log"
)

// Required lists the collections every deployment must provide.
var Required = []string{"characters", "comics"}

// ErrMissingCollection is returned when a required collection does not exist.
var ErrMissingCollection = errors.New("missing collection")

// CollectionLister lists the collection names of a database.
type CollectionLister interface {
	CollectionNames(ctx context.Context) ([]string, error)
}

type database struct {
	db *mongodriver.Database
}

// Database adapts a driver database to CollectionLister.
func Database(db *mongodriver.Database) CollectionLister {
	return database{db: db}
}

func (d database) CollectionNames(ctx context.Context) ([]string, error) {
	return d.db.ListCollectionNames(ctx, bson.D{})
}

// EnsureCollections fails when any of the required collections is absent.
// It defaults to Required when none are given.
func EnsureCollections(ctx context.Context, l CollectionLister, required ...string) error {
	if len(required) == 0 {
		required = Required
	}
	start := time.Now()
	log.Info(ctx, log.KV{K: "msg", V: "schema check"}, log.KV{K: "status", V: "starting"})

	names, err := l.CollectionNames(ctx)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "schema check failed"},
			log.KV{K: "duration_ms", V: time.Since(start).Milliseconds()})
		return fmt.Errorf("list collections: %w", err)
	}

	have := make(map[string]struct{}, len(names))
	for _, n := range names {
		have[n] = struct{}{}
	}
	var missing []string
	for _, r := range required {
		if _, ok := have[r]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		err := fmt.Errorf("%w: %v", ErrMissingCollection, missing)
		log.Error(ctx, err, log.KV{K: "msg", V: "schema check failed"},
			log.KV{K: "duration_ms", V: time.Since(start).Milliseconds()})
		return err
	}

	log.Info(ctx, log.KV{K: "msg", V: "schema check"}, log.KV{K: "status", V: "success"},
		log.KV{K: "collections", V: required},
		log.KV{K: "duration_ms", V: time.Since(start).Milliseconds()})
	return nil
}
