package stats

import "github.com/lottolab/scratchoff-data/internal/model"

// CloseDatePresent reports whether a raw close-date value actually marks
// a game as ending soon. Upstream represents "no close date" three ways:
// an empty string, the literal "None", and the literal "null" (plus true
// null, which normalization already folds to "").
func CloseDatePresent(closeDate string) bool {
	switch closeDate {
	case "", "None", "null":
		return false
	default:
		return true
	}
}

// MatchesFilter applies a filter spec to a normalized game row in memory.
// It mirrors the constraints the fetch layer pushes down, for backends
// (and tests) that return unfiltered rows.
func MatchesFilter(g model.Game, f model.Filter) bool {
	if f.GameID != "" && g.GameID != f.GameID {
		return false
	}
	if g.TicketPrice != nil {
		if *g.TicketPrice < f.MinTicketPrice || *g.TicketPrice > f.MaxTicketPrice {
			return false
		}
	}
	switch f.Ending {
	case model.EndingOnly:
		return CloseDatePresent(g.GameCloseDate)
	case model.EndingExclude:
		return !CloseDatePresent(g.GameCloseDate)
	default:
		return true
	}
}
