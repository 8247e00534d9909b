package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lottolab/scratchoff-data/internal/model"
	"github.com/lottolab/scratchoff-data/internal/processor"
	"github.com/lottolab/scratchoff-data/internal/stats"
	"github.com/lottolab/scratchoff-data/internal/store"
)

// Session owns one store handle and the last-fetched tables for the
// lifetime of a dashboard session. A result set lives until the next
// Refresh replaces it; nothing is written back to the store.
type Session struct {
	ID     uuid.UUID
	st     store.Store
	proc   *processor.Processor
	logger *slog.Logger

	mu        sync.RWMutex
	connected bool
	filter    model.Filter
	games     []model.Game
	prizes    []model.PrizeTier
	combined  []model.CombinedRow
	avoid     []model.AvoidRow
}

// Open creates a session over a store, verifies connectivity and loads
// the initial tables. On a connectivity failure the session is still
// returned alongside the error: it serves empty tables until Reconnect
// succeeds, so the dashboard always has a state to render.
func Open(ctx context.Context, st store.Store, initial model.Filter, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		ID:     uuid.New(),
		st:     st,
		proc:   processor.New(st, logger),
		logger: logger,
		filter: initial,
	}

	if err := st.VerifyConnectivity(ctx); err != nil {
		s.logger.Warn("session opened without backend connectivity",
			"session_id", s.ID,
			"error", err,
		)
		return s, fmt.Errorf("open session: %w", err)
	}

	s.connected = true
	s.Refresh(ctx, initial)
	s.logger.Info("session opened", "session_id", s.ID)
	return s, nil
}

// Reconnect retries connectivity and reloads the tables. It is the only
// way a degraded session recovers.
func (s *Session) Reconnect(ctx context.Context) error {
	if err := s.st.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("reconnect session: %w", err)
	}

	s.mu.Lock()
	s.connected = true
	s.mu.Unlock()

	s.Refresh(ctx, s.Filter())
	return nil
}

// Refresh runs a fresh fetch-and-transform pass with the given filter,
// replacing the cached tables. Each call supersedes the previous result;
// there is no incremental update path.
func (s *Session) Refresh(ctx context.Context, f model.Filter) {
	games := s.proc.AllGames(ctx)
	prizes := s.proc.AllPrizeTiers(ctx)
	combined := s.proc.Filtered(ctx, f)
	avoid := s.proc.GamesToAvoid(ctx)

	s.mu.Lock()
	s.filter = f
	s.games = games
	s.prizes = prizes
	s.combined = combined
	s.avoid = avoid
	s.mu.Unlock()

	s.logger.Debug("session refreshed",
		"session_id", s.ID,
		"games", len(games),
		"combined_rows", len(combined),
		"games_to_avoid", len(avoid),
	)
}

// Close releases the store handle. The session must not be used after.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	s.connected = false
	s.mu.Unlock()

	s.logger.Info("session closed", "session_id", s.ID)
	return s.st.Close(ctx)
}

// Connected reports whether the last connectivity check succeeded.
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

// Filter returns the filter spec behind the cached combined table.
func (s *Session) Filter() model.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Games returns the cached game listing.
func (s *Session) Games() []model.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games
}

// PrizeTiers returns the cached prize-tier rows.
func (s *Session) PrizeTiers() []model.PrizeTier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prizes
}

// Combined returns the cached derived game table.
func (s *Session) Combined() []model.CombinedRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.combined
}

// GamesToAvoid returns the cached games-to-avoid table.
func (s *Session) GamesToAvoid() []model.AvoidRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.avoid
}

// Summary computes the dashboard headline metrics from the cached tables.
func (s *Session) Summary() model.Summary {
	s.mu.RLock()
	games := s.games
	avoid := len(s.avoid)
	s.mu.RUnlock()

	summary := stats.Summarize(games)
	summary.GamesToAvoid = avoid
	return summary
}

// Breakdown fetches the per-tier table for one game. This is the one
// accessor that fetches fresh rather than serving the cached snapshot:
// drill-down targets a single game and is cheap upstream.
func (s *Session) Breakdown(ctx context.Context, gameID string) ([]model.TierBreakdown, model.TopPrizeStatus) {
	return s.proc.PrizeBreakdown(ctx, gameID)
}
