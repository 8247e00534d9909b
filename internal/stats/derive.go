package stats

import (
	"fmt"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// FormatGameName disambiguates a display name with the game id:
// "Cash Blast (1234)". Games reuse display names across print runs, so
// the id is the only reliable handle.
func FormatGameName(name, id string) string {
	return fmt.Sprintf("%s (%s)", name, id)
}

// Derive computes the calculated fields over normalized combined rows,
// in place, and returns the slice. It runs after normalization and before
// aggregation, while rows may still be tier-duplicated.
//
// Rules:
//   - formatted_game_name is set only when both game_name and game_id are
//     present; consumers fall back to the plain name otherwise
//   - remaining_count is recomputed as total - claimed whenever both
//     inputs exist, clamped at 0, overwriting any fetched value
//   - unclaimed_prizes mirrors remaining_count (display alias)
//   - win_probability is always present and finite: 0 when total is
//     absent or <= 0 or remaining <= 0, else remaining/total
//   - expected_value requires win_probability, prize_amount and
//     ticket_price; when any dependency is missing the field stays absent
func Derive(rows []model.CombinedRow) []model.CombinedRow {
	for i := range rows {
		row := &rows[i]

		if row.GameName != "" && row.GameID != "" {
			row.FormattedGameName = FormatGameName(row.GameName, row.GameID)
		}

		if row.TotalCount != nil && row.ClaimedCount != nil {
			remaining := *row.TotalCount - *row.ClaimedCount
			if remaining < 0 {
				remaining = 0
			}
			row.RemainingCount = &remaining
			row.UnclaimedPrizes = &remaining
		}

		probability := winProbability(row.RemainingCount, row.TotalCount)
		row.WinProbability = &probability

		if row.PrizeAmount != nil && row.TicketPrice != nil {
			ev := probability**row.PrizeAmount - *row.TicketPrice
			row.ExpectedValue = &ev
		} else {
			row.ExpectedValue = nil
		}
	}
	return rows
}

// winProbability is remaining/total with degenerate inputs defined as 0,
// keeping the result inside [0, 1] whenever the inputs are consistent.
func winProbability(remaining, total *int64) float64 {
	if remaining == nil || total == nil || *total <= 0 || *remaining <= 0 {
		return 0
	}
	return float64(*remaining) / float64(*total)
}
