package stats

import (
	"sort"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// Thresholds for classifying how much of the top prize pool is claimed.
const (
	topPrizeGoodMax     = 25.0
	topPrizeModerateMax = 75.0
)

// PrizeBreakdown builds the per-game prize table from tier-scoped rows:
// one row per tier sorted rarest first, with the remaining count and
// percent claimed per tier. Tiers without a prize level are skipped; a
// missing claimed count reads as 0 so remaining stays computable.
func PrizeBreakdown(tiers []model.PrizeTier) []model.TierBreakdown {
	rows := make([]model.TierBreakdown, 0, len(tiers))
	for _, tier := range tiers {
		if tier.PrizeLevel == nil || tier.TotalCount == nil {
			continue
		}

		var claimed int64
		if tier.ClaimedCount != nil {
			claimed = *tier.ClaimedCount
		}
		remaining := *tier.TotalCount - claimed
		if remaining < 0 {
			remaining = 0
		}

		percent := 0.0
		if *tier.TotalCount > 0 {
			percent = float64(claimed) / float64(*tier.TotalCount) * 100
		}

		amount := EstimatePrizeAmount(tier.PrizeLevel)
		if tier.PrizeAmount != nil {
			amount = *tier.PrizeAmount
		}

		rows = append(rows, model.TierBreakdown{
			PrizeLevel:      *tier.PrizeLevel,
			PrizeAmount:     amount,
			TotalPrizes:     *tier.TotalCount,
			PrizesClaimed:   claimed,
			PrizesRemaining: remaining,
			PercentClaimed:  percent,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PrizeLevel < rows[j].PrizeLevel
	})
	return rows
}

// TopPrizeStatusOf classifies a game by its rarest tier's claim
// percentage: good up to 25%, moderate up to 75%, limited beyond.
// Rows must already be sorted rarest first (as PrizeBreakdown returns).
func TopPrizeStatusOf(rows []model.TierBreakdown) (model.TopPrizeStatus, bool) {
	if len(rows) == 0 {
		return "", false
	}
	percent := rows[0].PercentClaimed
	switch {
	case percent <= topPrizeGoodMax:
		return model.TopPrizeGood, true
	case percent <= topPrizeModerateMax:
		return model.TopPrizeModerate, true
	default:
		return model.TopPrizeLimited, true
	}
}
