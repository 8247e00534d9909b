package stats

import "github.com/lottolab/scratchoff-data/internal/model"

// CountScope declares which semantic the upstream count columns carry.
// The reducer for total/claimed/remaining depends on it: summing counts
// that are game-level facts replicated across tier rows would overstate
// totals by a factor of the tier count, while taking the first of
// tier-scoped counts would silently drop prizes. Callers must state which
// shape they fetched.
type CountScope int

const (
	// TierCounts: counts are scoped to each prize tier; summing across a
	// game's tiers is the valid reduction.
	TierCounts CountScope = iota

	// GameCounts: counts are game-level totals duplicated onto every tier
	// row (the shape the default game-listing join returns); the first
	// value is the valid reduction.
	GameCounts
)

// NeedsAggregation reports whether rows still carry multiple prize-tier
// rows for at least one game. This is the sole trigger for aggregation: a
// dataset already at one row per game passes through untouched.
func NeedsAggregation(rows []model.CombinedRow) bool {
	return len(rows) > distinctGames(rows)
}

func distinctGames(rows []model.CombinedRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.GameID] = struct{}{}
	}
	return len(seen)
}

// AggregateByGame collapses N prize-tier rows per game into exactly one
// row per game, keyed on game_id and in first-seen order.
//
// Reducer policy:
//   - game_name, formatted_game_name, ticket_price, game_close_date:
//     first value (game-level facts duplicated across tier rows)
//   - last_updated: max
//   - total_count, claimed_count: per scope (sum or first)
//   - remaining_count, unclaimed_prizes: recomputed from the reduced
//     total and claimed counts, clamped at 0
//   - win_probability: recomputed as remaining/total over the reduced
//     counts, never averaged
//   - expected_value, prize_level, prize_amount: dropped; the tier-level
//     prize data they depend on no longer exists after the collapse
//
// Running the aggregator on its own output is a no-op.
func AggregateByGame(rows []model.CombinedRow, scope CountScope) []model.CombinedRow {
	if len(rows) == 0 {
		return []model.CombinedRow{}
	}

	order := make([]string, 0, len(rows))
	groups := make(map[string]*model.CombinedRow, len(rows))

	for _, row := range rows {
		agg, exists := groups[row.GameID]
		if !exists {
			first := model.CombinedRow{
				GameID:            row.GameID,
				GameName:          row.GameName,
				FormattedGameName: row.FormattedGameName,
				TicketPrice:       row.TicketPrice,
				TotalCount:        row.TotalCount,
				ClaimedCount:      row.ClaimedCount,
				LastUpdated:       row.LastUpdated,
				GameCloseDate:     row.GameCloseDate,
			}
			groups[row.GameID] = &first
			order = append(order, row.GameID)
			continue
		}

		// Representative reducers take the first non-missing value.
		if agg.GameName == "" {
			agg.GameName = row.GameName
		}
		if agg.FormattedGameName == "" {
			agg.FormattedGameName = row.FormattedGameName
		}
		if agg.TicketPrice == nil {
			agg.TicketPrice = row.TicketPrice
		}
		if agg.GameCloseDate == "" {
			agg.GameCloseDate = row.GameCloseDate
		}

		if scope == TierCounts {
			agg.TotalCount = sumCounts(agg.TotalCount, row.TotalCount)
			agg.ClaimedCount = sumCounts(agg.ClaimedCount, row.ClaimedCount)
		} else {
			if agg.TotalCount == nil {
				agg.TotalCount = row.TotalCount
			}
			if agg.ClaimedCount == nil {
				agg.ClaimedCount = row.ClaimedCount
			}
		}
		if row.LastUpdated != nil &&
			(agg.LastUpdated == nil || row.LastUpdated.After(*agg.LastUpdated)) {
			agg.LastUpdated = row.LastUpdated
		}
	}

	out := make([]model.CombinedRow, 0, len(order))
	for _, id := range order {
		agg := groups[id]

		if agg.TotalCount != nil && agg.ClaimedCount != nil {
			remaining := *agg.TotalCount - *agg.ClaimedCount
			if remaining < 0 {
				remaining = 0
			}
			agg.RemainingCount = &remaining
			agg.UnclaimedPrizes = &remaining
		}

		probability := winProbability(agg.RemainingCount, agg.TotalCount)
		agg.WinProbability = &probability

		out = append(out, *agg)
	}
	return out
}

// sumCounts adds optional counts, skipping absent values. The result is
// present when at least one operand was.
func sumCounts(a, b *int64) *int64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		sum := *a + *b
		return &sum
	}
}
