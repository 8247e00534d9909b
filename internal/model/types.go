package model

import "time"

// RawRecord is a single flat record as returned by a fetch operation:
// field name -> raw value. Values may be absent entirely, or carry the
// wrong type (numeric fields delivered as strings are common upstream).
type RawRecord map[string]any

// -----------------------------------------------------------------------------
// Canonical Row Types
// -----------------------------------------------------------------------------

// Game is one row per distinct scratch-off game.
//
// Pointer fields are optional: nil means the value was absent upstream or
// failed coercion. GameCloseDate keeps the raw upstream string; the markers
// "", "None" and "null" all mean "no close date scheduled".
type Game struct {
	GameID         string     `json:"game_id"`
	GameName       string     `json:"game_name"`
	TicketPrice    *float64   `json:"ticket_price,omitempty"`
	TotalCount     *int64     `json:"total_count,omitempty"`
	ClaimedCount   *int64     `json:"claimed_count,omitempty"`
	RemainingCount *int64     `json:"remaining_count,omitempty"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
	GameCloseDate  string     `json:"game_close_date,omitempty"`
}

// PrizeTier is one row per (game, prize level). Counts are tier-scoped,
// independent of the game-level counts on Game.
type PrizeTier struct {
	GameID         string   `json:"game_id"`
	PrizeLevel     *int     `json:"prize_level,omitempty"`
	PrizeAmount    *float64 `json:"prize_amount,omitempty"`
	TotalCount     *int64   `json:"total_count,omitempty"`
	ClaimedCount   *int64   `json:"claimed_count,omitempty"`
	RemainingCount *int64   `json:"remaining_count,omitempty"`
}

// CombinedRow is the join of Game x PrizeTier on game_id: N rows per game,
// one per prize tier. This is the shape most fetch paths return and the
// shape the aggregator consumes.
type CombinedRow struct {
	GameID            string     `json:"game_id"`
	GameName          string     `json:"game_name"`
	FormattedGameName string     `json:"formatted_game_name,omitempty"`
	TicketPrice       *float64   `json:"ticket_price,omitempty"`
	PrizeLevel        *int       `json:"prize_level,omitempty"`
	PrizeAmount       *float64   `json:"prize_amount,omitempty"`
	TotalCount        *int64     `json:"total_count,omitempty"`
	ClaimedCount      *int64     `json:"claimed_count,omitempty"`
	RemainingCount    *int64     `json:"remaining_count,omitempty"`
	UnclaimedPrizes   *int64     `json:"unclaimed_prizes,omitempty"`
	WinProbability    *float64   `json:"win_probability,omitempty"`
	ExpectedValue     *float64   `json:"expected_value,omitempty"`
	LastUpdated       *time.Time `json:"last_updated,omitempty"`
	GameCloseDate     string     `json:"game_close_date,omitempty"`
}

// AvoidRow describes a game whose top (rarest) prize tier is mostly claimed.
type AvoidRow struct {
	GameID            string   `json:"game_id"`
	GameName          string   `json:"game_name"`
	FormattedGameName string   `json:"formatted_game_name,omitempty"`
	PrizeLevel        *int     `json:"prize_level,omitempty"`
	TicketPrice       *float64 `json:"ticket_price,omitempty"`
	TotalPrizes       *int64   `json:"total_prizes,omitempty"`
	PrizesClaimed     *int64   `json:"prizes_claimed,omitempty"`
	ClaimRate         *float64 `json:"claim_rate,omitempty"`
}

// -----------------------------------------------------------------------------
// Display Types
// -----------------------------------------------------------------------------

// TierBreakdown is one row of the per-game prize breakdown table.
type TierBreakdown struct {
	PrizeLevel      int     `json:"prize_level"`
	PrizeAmount     float64 `json:"prize_amount"`
	TotalPrizes     int64   `json:"total_prizes"`
	PrizesClaimed   int64   `json:"prizes_claimed"`
	PrizesRemaining int64   `json:"prizes_remaining"`
	PercentClaimed  float64 `json:"percent_claimed"`
}

// TopPrizeStatus classifies how much of a game's top prize pool is gone.
type TopPrizeStatus string

const (
	TopPrizeGood     TopPrizeStatus = "good"     // <= 25% claimed
	TopPrizeModerate TopPrizeStatus = "moderate" // <= 75% claimed
	TopPrizeLimited  TopPrizeStatus = "limited"  // > 75% claimed
)

// PriceBin counts the games sold at one ticket price point.
type PriceBin struct {
	TicketPrice float64 `json:"ticket_price"`
	Count       int     `json:"count"`
}

// Summary holds the dashboard headline metrics.
type Summary struct {
	TotalGames      int        `json:"total_games"`
	GamesEndingSoon int        `json:"games_ending_soon"`
	GamesToAvoid    int        `json:"games_to_avoid"`
	LastUpdated     *time.Time `json:"last_updated,omitempty"`
	PriceBins       []PriceBin `json:"price_bins"`
}
