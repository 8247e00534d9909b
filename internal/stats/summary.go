package stats

import (
	"sort"
	"time"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// Summarize computes the dashboard headline metrics from the game
// listing: distinct game count, games with a close date scheduled, the
// most recent update timestamp, and games-per-ticket-price bins. The
// games-to-avoid count comes from an independent derivation and is left
// for the caller to fill in.
func Summarize(games []model.Game) model.Summary {
	summary := model.Summary{PriceBins: []model.PriceBin{}}

	seen := make(map[string]struct{}, len(games))
	var latest *time.Time

	for _, g := range games {
		seen[g.GameID] = struct{}{}
		if CloseDatePresent(g.GameCloseDate) {
			summary.GamesEndingSoon++
		}
		if g.LastUpdated != nil && (latest == nil || g.LastUpdated.After(*latest)) {
			latest = g.LastUpdated
		}
	}

	summary.TotalGames = len(seen)
	summary.LastUpdated = latest
	summary.PriceBins = PriceBins(games)
	return summary
}

// PriceBins counts games per distinct ticket price, sorted ascending by
// price. Games without a price are left out of the histogram.
func PriceBins(games []model.Game) []model.PriceBin {
	counts := make(map[float64]int)
	for _, g := range games {
		if g.TicketPrice != nil {
			counts[*g.TicketPrice]++
		}
	}

	bins := make([]model.PriceBin, 0, len(counts))
	for price, count := range counts {
		bins = append(bins, model.PriceBin{TicketPrice: price, Count: count})
	}
	sort.Slice(bins, func(i, j int) bool {
		return bins[i].TicketPrice < bins[j].TicketPrice
	})
	return bins
}
