package store

import (
	"context"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// Fetcher is the fetch collaborator contract. Every backend implements
// the full set; there are no optional methods.
//
// Each call fails soft: on any transport or backend error it returns an
// empty sequence, so "empty input -> empty output" is the universal
// recovery path downstream.
type Fetcher interface {
	// FetchGames returns one row per game with game-level counts.
	FetchGames(ctx context.Context) []model.RawRecord

	// FetchPrizeTiers returns one row per (game, prize level) with
	// tier-scoped counts.
	FetchPrizeTiers(ctx context.Context) []model.RawRecord

	// FetchCombined returns the game x tier join. Counts on this path are
	// game-level totals replicated onto every tier row.
	FetchCombined(ctx context.Context) []model.RawRecord

	// FetchCombinedFiltered is FetchCombined constrained by a filter spec.
	FetchCombinedFiltered(ctx context.Context, f model.Filter) []model.RawRecord

	// FetchGamesToAvoid returns top-tier candidate rows: for each game,
	// the tier(s) at its minimum prize_level, with tier-scoped counts and
	// claim rate. Threshold classification happens downstream.
	FetchGamesToAvoid(ctx context.Context) []model.RawRecord

	// FetchPrizeTiersForGame returns tier-scoped rows for a single game.
	FetchPrizeTiersForGame(ctx context.Context, gameID string) []model.RawRecord
}

// Store is a Fetcher with a managed connection lifecycle. A session owns
// exactly one Store at a time and closes it before opening another.
type Store interface {
	Fetcher

	// VerifyConnectivity checks the backend is reachable and the
	// credentials are valid.
	VerifyConnectivity(ctx context.Context) error

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
