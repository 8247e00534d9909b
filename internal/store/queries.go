package store

import (
	"strings"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// Cypher queries against the Game/Detail graph. Game nodes carry
// game-level facts (price, totals, close date); Detail nodes carry one
// prize tier each and relate to their game via BELONGS_TO.

const gamesQuery = `
MATCH (g:Game)
RETURN g.game_number AS game_id, g.game_name AS game_name, g.ticket_price AS ticket_price,
       g.date_updated AS last_updated, g.game_close_date AS game_close_date,
       g.total_prizes AS total_count, g.prizes_claimed AS claimed_count
`

const prizeTiersQuery = `
MATCH (d:Detail)
RETURN d.game_number AS game_id, d.prize_level AS prize_level,
       d.total_prizes AS total_count, d.prizes_claimed AS claimed_count
`

const prizeTiersForGameQuery = `
MATCH (g:Game)<-[:BELONGS_TO]-(d:Detail)
WHERE g.game_number = $game_id
RETURN d.game_number AS game_id, d.prize_level AS prize_level,
       d.total_prizes AS total_count, d.prizes_claimed AS claimed_count
ORDER BY toInteger(d.prize_level)
`

// gamesToAvoidQuery returns top-tier candidate rows: every Detail at its
// game's minimum prize_level. The claim-rate threshold is applied by the
// classifier, not pushed into the query, so tie-break policy lives in one
// place.
const gamesToAvoidQuery = `
MATCH (g:Game)<-[:BELONGS_TO]-(d:Detail)
WITH g, min(toInteger(d.prize_level)) AS top_level
MATCH (g)<-[:BELONGS_TO]-(d:Detail)
WHERE toInteger(d.prize_level) = top_level
RETURN g.game_name AS game_name, g.game_number AS game_id,
       d.prize_level AS prize_level, g.ticket_price AS ticket_price,
       d.total_prizes AS total_prizes, d.prizes_claimed AS prizes_claimed,
       CASE WHEN d.total_prizes > 0
            THEN toFloat(d.prizes_claimed) / d.total_prizes
            ELSE 0.0 END AS claim_rate
`

const combinedReturn = `
RETURN g.game_number AS game_id, g.game_name AS game_name, g.ticket_price AS ticket_price,
       d.prize_level AS prize_level,
       g.total_prizes AS total_count, g.prizes_claimed AS claimed_count,
       g.date_updated AS last_updated, g.game_close_date AS game_close_date
`

const combinedQuery = `
MATCH (g:Game)<-[:BELONGS_TO]-(d:Detail)
` + combinedReturn

// BuildFilteredQuery translates a filter spec into the constrained
// combined query. Ticket price becomes an inclusive range predicate; the
// ending filter constrains game_close_date presence ("", "None" and
// "null" all read as absent); a game id restricts to an exact match.
func BuildFilteredQuery(f model.Filter) (string, map[string]any) {
	parts := []string{"MATCH (g:Game)<-[:BELONGS_TO]-(d:Detail)"}
	where := []string{
		"toFloat(g.ticket_price) >= $min_ticket_price",
		"toFloat(g.ticket_price) <= $max_ticket_price",
	}
	params := map[string]any{
		"min_ticket_price": f.MinTicketPrice,
		"max_ticket_price": f.MaxTicketPrice,
	}

	if f.GameID != "" {
		where = append(where, "g.game_number = $game_id")
		params["game_id"] = f.GameID
	}

	switch f.Ending {
	case model.EndingOnly:
		where = append(where,
			"g.game_close_date IS NOT NULL AND g.game_close_date <> '' AND g.game_close_date <> 'None' AND g.game_close_date <> 'null'")
	case model.EndingExclude:
		where = append(where,
			"(g.game_close_date IS NULL OR g.game_close_date = '' OR g.game_close_date = 'None' OR g.game_close_date = 'null')")
	}

	parts = append(parts, "WHERE "+strings.Join(where, " AND "), combinedReturn)
	return strings.Join(parts, "\n"), params
}
