package stats

import "github.com/lottolab/scratchoff-data/internal/model"

// AvoidClaimThreshold is the claim-rate boundary (inclusive) above which
// a game's top prize pool is considered effectively gone.
const AvoidClaimThreshold = 0.9

// ClassifyAvoid reduces candidate top-tier rows to the games-to-avoid set.
//
// Input rows are one per (game, tier); only tiers at a game's minimum
// prize_level (the rarest, highest-value tier) are considered top tiers.
// A game qualifies when every tied top tier has a claim rate of at least
// AvoidClaimThreshold; a single tied tier still mostly unclaimed means
// the top prize is still in play. One row per qualifying game is emitted,
// carrying the tied tier with the highest claim rate, in first-seen game
// order.
//
// This is a distinct max-tier-per-game shape and is never routed through
// the general aggregator.
func ClassifyAvoid(rows []model.AvoidRow) []model.AvoidRow {
	order := make([]string, 0, len(rows))
	topLevel := make(map[string]int, len(rows))

	for _, row := range rows {
		if row.PrizeLevel == nil {
			continue
		}
		level, seen := topLevel[row.GameID]
		if !seen {
			order = append(order, row.GameID)
			topLevel[row.GameID] = *row.PrizeLevel
		} else if *row.PrizeLevel < level {
			topLevel[row.GameID] = *row.PrizeLevel
		}
	}

	out := make([]model.AvoidRow, 0, len(order))
	for _, id := range order {
		best, qualifies := evaluateTopTiers(rows, id, topLevel[id])
		if !qualifies {
			continue
		}
		if best.GameName != "" && best.GameID != "" {
			best.FormattedGameName = FormatGameName(best.GameName, best.GameID)
		}
		out = append(out, best)
	}
	return out
}

// evaluateTopTiers checks every tier of one game at its top prize level.
// All tied tiers must meet the threshold; the returned row is the tied
// tier with the highest claim rate.
func evaluateTopTiers(rows []model.AvoidRow, gameID string, level int) (model.AvoidRow, bool) {
	var best model.AvoidRow
	found := false

	for _, row := range rows {
		if row.GameID != gameID || row.PrizeLevel == nil || *row.PrizeLevel != level {
			continue
		}
		rate := claimRate(row.PrizesClaimed, row.TotalPrizes)
		if row.ClaimRate != nil {
			rate = *row.ClaimRate
		}
		if rate < AvoidClaimThreshold {
			return model.AvoidRow{}, false
		}
		if !found || rate > *best.ClaimRate {
			row.ClaimRate = &rate
			best = row
			found = true
		}
	}
	return best, found
}
