package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/lottolab/scratchoff-data/internal/config"
	"github.com/lottolab/scratchoff-data/internal/model"
)

// Neo4jStore fetches lottery data from a Neo4j graph over Bolt.
type Neo4jStore struct {
	driver  neo4j.DriverWithContext
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Neo4jStore.
type Option func(*Neo4jStore)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Neo4jStore) {
		s.logger = logger
	}
}

// WithTimeout sets the per-query deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *Neo4jStore) {
		s.timeout = d
	}
}

// NewNeo4jStore creates a store from config. The driver is lazy; use
// VerifyConnectivity to confirm the backend is actually reachable.
func NewNeo4jStore(cfg config.Neo4jConfig, opts ...Option) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	s := &Neo4jStore{
		driver:  driver,
		timeout: cfg.Timeout,
		logger:  slog.Default(),
	}
	if s.timeout == 0 {
		s.timeout = config.DefaultFetchTimeout
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// VerifyConnectivity checks the backend is reachable with valid credentials.
func (s *Neo4jStore) VerifyConnectivity(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	return nil
}

// Close releases the driver and its connection pool.
func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// FetchGames returns one row per game with game-level counts.
func (s *Neo4jStore) FetchGames(ctx context.Context) []model.RawRecord {
	return s.run(ctx, gamesQuery, nil)
}

// FetchPrizeTiers returns one row per (game, prize level).
func (s *Neo4jStore) FetchPrizeTiers(ctx context.Context) []model.RawRecord {
	return s.run(ctx, prizeTiersQuery, nil)
}

// FetchCombined returns the game x tier join with game-level counts
// replicated onto every tier row.
func (s *Neo4jStore) FetchCombined(ctx context.Context) []model.RawRecord {
	return s.run(ctx, combinedQuery, nil)
}

// FetchCombinedFiltered returns the join constrained by a filter spec.
func (s *Neo4jStore) FetchCombinedFiltered(ctx context.Context, f model.Filter) []model.RawRecord {
	query, params := BuildFilteredQuery(f)
	return s.run(ctx, query, params)
}

// FetchGamesToAvoid returns top-tier candidate rows for the classifier.
func (s *Neo4jStore) FetchGamesToAvoid(ctx context.Context) []model.RawRecord {
	return s.run(ctx, gamesToAvoidQuery, nil)
}

// FetchPrizeTiersForGame returns tier-scoped rows for a single game,
// rarest tier first.
func (s *Neo4jStore) FetchPrizeTiersForGame(ctx context.Context, gameID string) []model.RawRecord {
	return s.run(ctx, prizeTiersForGameQuery, map[string]any{"game_id": gameID})
}

// run executes a read query and collects the records as flat maps.
// Errors (including deadline expiry) degrade to an empty result; the
// pipeline treats empty input as a valid terminal state, never a crash.
func (s *Neo4jStore) run(ctx context.Context, query string, params map[string]any) []model.RawRecord {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		s.logger.Error("neo4j query failed", "error", err)
		return []model.RawRecord{}
	}

	records := []model.RawRecord{}
	for result.Next(ctx) {
		records = append(records, model.RawRecord(result.Record().AsMap()))
	}
	if err := result.Err(); err != nil {
		s.logger.Error("neo4j result iteration failed", "error", err, "rows", len(records))
		return []model.RawRecord{}
	}

	return records
}
