package storage

import (
	"context"
	"fmt"
	"time"
)

// Package storage contains the S3-compatible object store holding character and comic artwork.
// The store is read-only from this service: it only hands out time-limited download links.

// Storage is a read-only, S3-compatible object storage client interface.
// It also satisfies clue's health.Pinger.
type Storage interface {
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Name identifies the store in health reports.
	Name() string
	// Ping checks that the artwork bucket is reachable.
	Ping(ctx context.Context) error
}

// CharacterArtworkKey is the object key of a character portrait.
func CharacterArtworkKey(id int) string {
	return fmt.Sprintf("characters/%d.jpg", id)
}

// ComicArtworkKey is the object key of a comic cover.
func ComicArtworkKey(id int) string {
	return fmt.Sprintf("comics/%d.jpg", id)
}
