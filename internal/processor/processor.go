package processor

import (
	"context"
	"log/slog"

	"github.com/lottolab/scratchoff-data/internal/model"
	"github.com/lottolab/scratchoff-data/internal/stats"
	"github.com/lottolab/scratchoff-data/internal/store"
)

// Processor runs the fetch -> normalize -> derive -> aggregate pipeline
// over a fetch collaborator. All methods are pure over the fetched
// snapshot and safe to call concurrently.
type Processor struct {
	fetcher store.Fetcher
	logger  *slog.Logger
}

// New creates a Processor.
func New(fetcher store.Fetcher, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{fetcher: fetcher, logger: logger}
}

// AllGames returns the normalized game listing.
func (p *Processor) AllGames(ctx context.Context) []model.Game {
	return stats.NormalizeGames(p.fetcher.FetchGames(ctx))
}

// AllPrizeTiers returns all normalized prize-tier rows.
func (p *Processor) AllPrizeTiers(ctx context.Context) []model.PrizeTier {
	return stats.NormalizePrizeTiers(p.fetcher.FetchPrizeTiers(ctx))
}

// Combined returns the derived game table: the full game x tier join,
// normalized, with calculated fields, collapsed to one row per game when
// the join produced tier-duplicated rows.
func (p *Processor) Combined(ctx context.Context) []model.CombinedRow {
	return p.pipeline(p.fetcher.FetchCombined(ctx))
}

// Filtered is Combined constrained by a filter spec. No matching rows
// yields an empty table, not an error.
func (p *Processor) Filtered(ctx context.Context, f model.Filter) []model.CombinedRow {
	return p.pipeline(p.fetcher.FetchCombinedFiltered(ctx, f))
}

func (p *Processor) pipeline(records []model.RawRecord) []model.CombinedRow {
	rows := stats.Derive(stats.NormalizeCombined(records))
	if !stats.NeedsAggregation(rows) {
		return rows
	}
	// The combined fetch paths replicate game-level counts onto every
	// tier row, so the first-value reducer is the correct one here.
	aggregated := stats.AggregateByGame(rows, stats.GameCounts)
	p.logger.Debug("aggregated combined rows",
		"input_rows", len(rows),
		"games", len(aggregated),
	)
	return aggregated
}

// GamesToAvoid returns games whose top prize tier is at least 90%
// claimed, one row per game.
func (p *Processor) GamesToAvoid(ctx context.Context) []model.AvoidRow {
	candidates := stats.NormalizeAvoid(p.fetcher.FetchGamesToAvoid(ctx))
	return stats.ClassifyAvoid(candidates)
}

// PrizeBreakdown returns the per-tier table for one game, rarest tier
// first, plus the top-prize status classification.
func (p *Processor) PrizeBreakdown(ctx context.Context, gameID string) ([]model.TierBreakdown, model.TopPrizeStatus) {
	tiers := stats.NormalizePrizeTiers(p.fetcher.FetchPrizeTiersForGame(ctx, gameID))
	breakdown := stats.PrizeBreakdown(tiers)
	status, _ := stats.TopPrizeStatusOf(breakdown)
	return breakdown, status
}
