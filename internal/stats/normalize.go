package stats

import "github.com/lottolab/scratchoff-data/internal/model"

// estimatedTopPrize anchors the prize-amount heuristic: no real payout
// table exists upstream, so a tier's dollar value is approximated as
// estimatedTopPrize / prize_level. An ordinal-to-cardinal proxy, not
// real payout data.
const estimatedTopPrize = 10000

// EstimatePrizeAmount derives a prize amount from an ordinal prize level.
// Level 1 (rarest) maps to the full estimated top prize; level 0 or
// missing maps to 0.
func EstimatePrizeAmount(level *int) float64 {
	if level == nil || *level <= 0 {
		return 0
	}
	return estimatedTopPrize / float64(*level)
}

// NormalizeGames converts raw game-listing records to canonical rows.
// Empty input yields an empty table, never an error.
func NormalizeGames(records []model.RawRecord) []model.Game {
	games := make([]model.Game, 0, len(records))
	for _, r := range records {
		games = append(games, model.Game{
			GameID:         stringField(r, "game_id"),
			GameName:       stringField(r, "game_name"),
			TicketPrice:    floatField(r, "ticket_price"),
			TotalCount:     intField(r, "total_count"),
			ClaimedCount:   intField(r, "claimed_count"),
			RemainingCount: intField(r, "remaining_count"),
			LastUpdated:    timeField(r, "last_updated", gameDateLayouts...),
			GameCloseDate:  stringField(r, "game_close_date"),
		})
	}
	return games
}

// NormalizePrizeTiers converts raw prize-tier records to canonical rows,
// filling the prize-amount heuristic when the source carries none.
func NormalizePrizeTiers(records []model.RawRecord) []model.PrizeTier {
	tiers := make([]model.PrizeTier, 0, len(records))
	for _, r := range records {
		tier := model.PrizeTier{
			GameID:         stringField(r, "game_id"),
			PrizeLevel:     smallIntField(r, "prize_level"),
			PrizeAmount:    floatField(r, "prize_amount"),
			TotalCount:     intField(r, "total_count"),
			ClaimedCount:   intField(r, "claimed_count"),
			RemainingCount: intField(r, "remaining_count"),
		}
		if tier.PrizeAmount == nil {
			amount := EstimatePrizeAmount(tier.PrizeLevel)
			tier.PrizeAmount = &amount
		}
		tiers = append(tiers, tier)
	}
	return tiers
}

// NormalizeCombined converts raw joined game+tier records to canonical
// rows. last_updated on this path arrives in month/day/year form.
func NormalizeCombined(records []model.RawRecord) []model.CombinedRow {
	rows := make([]model.CombinedRow, 0, len(records))
	for _, r := range records {
		row := model.CombinedRow{
			GameID:         stringField(r, "game_id"),
			GameName:       stringField(r, "game_name"),
			TicketPrice:    floatField(r, "ticket_price"),
			PrizeLevel:     smallIntField(r, "prize_level"),
			PrizeAmount:    floatField(r, "prize_amount"),
			TotalCount:     intField(r, "total_count"),
			ClaimedCount:   intField(r, "claimed_count"),
			RemainingCount: intField(r, "remaining_count"),
			LastUpdated:    timeField(r, "last_updated", CombinedDateLayout),
			GameCloseDate:  stringField(r, "game_close_date"),
		}
		if row.PrizeAmount == nil {
			amount := EstimatePrizeAmount(row.PrizeLevel)
			row.PrizeAmount = &amount
		}
		rows = append(rows, row)
	}
	return rows
}

// NormalizeAvoid converts raw games-to-avoid records to canonical rows.
// The claim rate is recomputed when absent or unparseable.
func NormalizeAvoid(records []model.RawRecord) []model.AvoidRow {
	rows := make([]model.AvoidRow, 0, len(records))
	for _, r := range records {
		row := model.AvoidRow{
			GameID:        stringField(r, "game_id"),
			GameName:      stringField(r, "game_name"),
			PrizeLevel:    smallIntField(r, "prize_level"),
			TicketPrice:   floatField(r, "ticket_price"),
			TotalPrizes:   intField(r, "total_prizes"),
			PrizesClaimed: intField(r, "prizes_claimed"),
			ClaimRate:     floatField(r, "claim_rate"),
		}
		if row.ClaimRate == nil {
			rate := claimRate(row.PrizesClaimed, row.TotalPrizes)
			row.ClaimRate = &rate
		}
		rows = append(rows, row)
	}
	return rows
}

// claimRate is claimed/total, defined as 0 on a missing or non-positive
// denominator so callers always see a finite number.
func claimRate(claimed, total *int64) float64 {
	if claimed == nil || total == nil || *total <= 0 {
		return 0
	}
	return float64(*claimed) / float64(*total)
}
