// Package query builds store filters for free-text character and comic searches.
package query

import (
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RealNameField is searched together with AliasField.
const (
	RealNameField = "wiki.real_name"
	AliasField    = "wiki.alias"
	GenderField   = "gender"
	UniverseField = "wiki.universe"
)

// ErrUnknownField is returned when a search is scoped to a field outside the field set.
var ErrUnknownField = errors.New("unknown search field")

// CharacterFields are the character fields searched by an unscoped query.
var CharacterFields = []string{
	"name",
	RealNameField,
	AliasField,
	"description",
	"wiki.occupation",
	"wiki.place_of_birth",
	"wiki.groups",
	"wiki.relatives",
	"wiki.hair",
	"wiki.powers",
	"wiki.abilities",
}

// ComicFields are the comic fields searched by an unscoped query.
var ComicFields = []string{
	"title",
	"description",
	"creators.items.name",
	"characters.items.name",
}

// Search describes a free-text search. Field scopes the match to one field of
// the field set; RealNameField also matches AliasField.
// Equals holds exact-match constraints that are ANDed in when non-empty.
type Search struct {
	Query  string
	Field  string
	Equals map[string]string
}

// BuildFilter returns a filter matching Query as a case-insensitive substring.
// The query is escaped, so regex metacharacters match literally. An empty query
// adds no text clause.
func BuildFilter(s Search, fields []string) (bson.M, error) {
	filter := bson.M{}

	if s.Field != "" && !contains(fields, s.Field) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, s.Field)
	}

	if s.Query != "" {
		match := bson.Regex{Pattern: regexp.QuoteMeta(s.Query), Options: "i"}
		switch s.Field {
		case "":
			filter["$or"] = anyOf(fields, match)
		case RealNameField:
			filter["$or"] = anyOf([]string{RealNameField, AliasField}, match)
		default:
			filter[s.Field] = match
		}
	}

	for k, v := range s.Equals {
		if v != "" {
			filter[k] = v
		}
	}

	return filter, nil
}

func anyOf(fields []string, match bson.Regex) bson.A {
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: match})
	}
	return or
}

func contains(fields []string, f string) bool {
	for _, v := range fields {
		if v == f {
			return true
		}
	}
	return false
}
