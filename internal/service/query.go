package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"goa.design/clue/log"

	"marvelapi/internal/model"
	"marvelapi/internal/repository"
	"marvelapi/internal/storage"
)

const (
	// PageSize is the number of comics shown per page of a character.
	PageSize = 20
	// DefaultComicLimit caps a comic search when no limit is given.
	DefaultComicLimit = 50

	maxPage = math.MaxInt / PageSize
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// CharacterSearch holds the parameters of a character search.
type CharacterSearch struct {
	Query   string
	Field   string
	Gender  string
	Reality string
	Offset  int
}

// ComicSearch holds the parameters of a comic search.
// A Limit that is not positive means DefaultComicLimit.
type ComicSearch struct {
	Query  string
	Field  string
	Offset int
	Limit  int
}

// QueryService defines the read use cases over characters and comics.
type QueryService interface {
	// GetCharacter returns a normalized character with one page of its comics.
	// Pages are 1-based; an unparsable page means page 1.
	GetCharacter(ctx context.Context, charID, page string) (*model.CharacterDetail, error)

	// GetCharacters searches characters, ordered by name. Results are not normalized.
	GetCharacters(ctx context.Context, opts CharacterSearch) ([]model.Character, error)

	// GetComics returns one window of matching comics, ordered by title then issue number.
	// Each title has its parenthetical split into the subtitle.
	GetComics(ctx context.Context, opts ComicSearch) ([]model.Comic, error)

	// GetComic returns a normalized comic with every character appearing in it.
	GetComic(ctx context.Context, id string) (*model.ComicDetail, error)
}

// queryService is a concrete implementation of QueryService.
type queryService struct {
	chars  repository.CharacterRepository
	comics repository.ComicRepository
	art    storage.Storage
	artTTL time.Duration
}

// NewQueryService constructs a new QueryService. art may be nil, in which case
// no artwork links are produced.
func NewQueryService(chars repository.CharacterRepository, comics repository.ComicRepository, art storage.Storage, artTTL time.Duration) QueryService {
	if artTTL <= 0 {
		artTTL = time.Hour
	}
	return &queryService{chars: chars, comics: comics, art: art, artTTL: artTTL}
}

func (s *queryService) artworkURL(ctx context.Context, key string) string {
	if s.art == nil {
		return ""
	}
	u, err := s.art.PresignGet(ctx, key, s.artTTL)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "presign artwork"}, log.KV{K: "key", V: key})
		return ""
	}
	return u
}

// lookupErr maps a primary lookup failure to the service error taxonomy.
func lookupErr(ctx context.Context, kind string, id int, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		log.Info(ctx, log.KV{K: "msg", V: kind + " not found"}, log.KV{K: "id", V: id})
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return storeErr(err)
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}

// parseID reads the leading integer of s. Anything that does not start with a
// positive integer is invalid.
func parseID(s string) (int, error) {
	n, ok := leadingInt(s)
	if !ok || n <= 0 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidInput, s)
	}
	return n, nil
}

// parsePage reads a 1-based page number, defaulting to 1. Pages past maxPage
// are clamped so the page offset cannot overflow.
func parsePage(s string) int {
	n, ok := leadingInt(s)
	if !ok || n < 1 {
		return 1
	}
	if n > maxPage {
		return maxPage
	}
	return n
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[i:j])
	if err != nil {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
