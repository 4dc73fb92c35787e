// Package repository contains data access abstractions for characters and comics.
// Implementations live in subpackages (e.g. mongo) inside this directory.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"marvelapi/internal/model"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("record not found")

// CharacterRepository reads the characters collection. No business logic here.
type CharacterRepository interface {
	// FindByID returns the character with the given id or ErrNotFound.
	FindByID(ctx context.Context, id int) (*model.Character, error)

	// Search returns characters matching filter sorted by name, skipping offset records.
	Search(ctx context.Context, filter bson.M, offset int) ([]model.Character, error)

	// FindByIDs returns every character whose id is in ids, sorted by name.
	FindByIDs(ctx context.Context, ids []int) ([]model.Character, error)
}

// ComicRepository reads the comics collection.
type ComicRepository interface {
	// FindByID returns the comic with the given id or ErrNotFound.
	FindByID(ctx context.Context, id int) (*model.Comic, error)

	// Search returns one window of the comics matching filter, sorted by title then issue number.
	Search(ctx context.Context, filter bson.M, pq PageQuery) ([]model.Comic, error)

	// FindByIDs returns one page of the comics whose id is in ids, sorted by id.
	FindByIDs(ctx context.Context, ids []int, pq PageQuery) ([]model.Comic, error)

	// CountByIDs returns how many stored comics have an id in ids.
	CountByIDs(ctx context.Context, ids []int) (int, error)
}

// PageQuery holds limit/offset pagination parameters. A zero Limit means no limit.
type PageQuery struct {
	Limit  int
	Offset int
}
