package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"top250-backend/lib/scrapers/wzranked"

	"github.com/antzucaro/matchr"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var ErrNotFound = errors.New("gamertag not in top 250")

// NotFoundError carries the nearest known gamertag so callers can
// nudge the user about spelling.
type NotFoundError struct {
	Gamertag   string
	Suggestion string
}

func (e NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%q not in top 250 (closest: %q)", e.Gamertag, e.Suggestion)
	}
	return fmt.Sprintf("%q not in top 250", e.Gamertag)
}

func (e NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Snapshot is one immutable capture of the full leaderboard, sorted
// ascending by dense rank. It is never mutated after creation.
type Snapshot struct {
	Records   []PlayerRecord
	CreatedAt time.Time
}

// Find performs a case-insensitive exact match on gamertag.
func (s Snapshot) Find(gamertag string) (PlayerRecord, error) {
	for _, record := range s.Records {
		if strings.EqualFold(record.Gamertag, gamertag) {
			return record, nil
		}
	}
	return PlayerRecord{}, NotFoundError{
		Gamertag:   gamertag,
		Suggestion: s.closestGamertag(gamertag),
	}
}

// suggestions below this similarity are more confusing than helpful
const suggestionThreshold = 0.85

func (s Snapshot) closestGamertag(gamertag string) string {
	var mostSimilarity float64
	var mostSimilar string

	target := strings.ToLower(gamertag)
	for _, record := range s.Records {
		similarity := matchr.JaroWinkler(target, strings.ToLower(record.Gamertag), false)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = record.Gamertag
		}
	}

	if mostSimilarity < suggestionThreshold {
		return ""
	}
	return mostSimilar
}

type Fetcher interface {
	FetchTop250(ctx context.Context) ([]wzranked.RawEntry, error)
}

type Options struct {
	// CacheTTL bounds snapshot staleness when positive. Zero keeps
	// the fetch-per-call behavior.
	CacheTTL time.Duration
}

type Service struct {
	fetcher Fetcher
	cache   *expirable.LRU[string, Snapshot]
}

func NewService(fetcher Fetcher, opts Options) *Service {
	s := &Service{fetcher: fetcher}
	if opts.CacheTTL > 0 {
		s.cache = expirable.NewLRU[string, Snapshot](1, nil, opts.CacheTTL)
	}
	return s
}

const snapshotCacheKey = "top250"

// GetSnapshot builds a fresh snapshot from upstream (or serves one no
// older than the configured TTL when caching is on).
func (s *Service) GetSnapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := tracer.Start(ctx, "GetSnapshot")
	defer span.End()

	if s.cache != nil {
		cached, hit := s.cache.Get(snapshotCacheKey)
		if hit {
			return cached, nil
		}
	}

	raw, err := s.fetcher.FetchTop250(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	records := Normalize(raw)
	slices.SortStableFunc(records, func(a, b PlayerRecord) int {
		if a.RankDense < b.RankDense {
			return -1
		}
		if a.RankDense > b.RankDense {
			return 1
		}
		return 0
	})

	snapshot := Snapshot{
		Records:   records,
		CreatedAt: time.Now(),
	}
	slog.DebugContext(ctx, "built leaderboard snapshot", "records", len(records))

	if s.cache != nil {
		s.cache.Add(snapshotCacheKey, snapshot)
	}
	return snapshot, nil
}

// FindPlayer resolves a gamertag against the current snapshot.
func (s *Service) FindPlayer(ctx context.Context, gamertag string) (PlayerRecord, error) {
	snapshot, err := s.GetSnapshot(ctx)
	if err != nil {
		return PlayerRecord{}, err
	}
	return snapshot.Find(gamertag)
}
