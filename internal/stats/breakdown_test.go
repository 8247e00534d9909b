package stats

import (
	"testing"

	"github.com/lottolab/scratchoff-data/internal/model"
)

func tier(gameID string, level int, total, claimed int64) model.PrizeTier {
	return model.PrizeTier{
		GameID:       gameID,
		PrizeLevel:   &level,
		TotalCount:   &total,
		ClaimedCount: &claimed,
	}
}

func TestPrizeBreakdown(t *testing.T) {
	rows := PrizeBreakdown([]model.PrizeTier{
		tier("G1", 3, 1000, 250),
		tier("G1", 1, 10, 9),
		tier("G1", 2, 100, 0),
	})

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Sorted rarest first.
	for i, wantLevel := range []int{1, 2, 3} {
		if rows[i].PrizeLevel != wantLevel {
			t.Errorf("rows[%d].PrizeLevel = %d, want %d", i, rows[i].PrizeLevel, wantLevel)
		}
	}

	top := rows[0]
	if top.PrizesRemaining != 1 {
		t.Errorf("PrizesRemaining = %d, want 1", top.PrizesRemaining)
	}
	if top.PercentClaimed != 90 {
		t.Errorf("PercentClaimed = %v, want 90", top.PercentClaimed)
	}
	if top.PrizeAmount != 10000 {
		t.Errorf("PrizeAmount = %v, want heuristic 10000 for level 1", top.PrizeAmount)
	}
}

func TestPrizeBreakdownZeroDenominator(t *testing.T) {
	rows := PrizeBreakdown([]model.PrizeTier{tier("G1", 1, 0, 0)})
	if rows[0].PercentClaimed != 0 {
		t.Errorf("PercentClaimed = %v, want 0 on zero total", rows[0].PercentClaimed)
	}
}

func TestPrizeBreakdownMissingClaimed(t *testing.T) {
	level := 2
	total := int64(500)
	rows := PrizeBreakdown([]model.PrizeTier{{GameID: "G1", PrizeLevel: &level, TotalCount: &total}})

	if rows[0].PrizesClaimed != 0 {
		t.Errorf("PrizesClaimed = %d, want 0 when missing", rows[0].PrizesClaimed)
	}
	if rows[0].PrizesRemaining != 500 {
		t.Errorf("PrizesRemaining = %d, want 500", rows[0].PrizesRemaining)
	}
}

func TestPrizeBreakdownSkipsUnusableRows(t *testing.T) {
	level := 1
	rows := PrizeBreakdown([]model.PrizeTier{
		{GameID: "G1", PrizeLevel: &level}, // no total
		{GameID: "G1", TotalCount: iptr(100)}, // no level
	})
	if len(rows) != 0 {
		t.Errorf("got %d rows from unusable tiers, want 0", len(rows))
	}
}

func TestTopPrizeStatusOf(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    model.TopPrizeStatus
	}{
		{"good", 10, model.TopPrizeGood},
		{"good boundary", 25, model.TopPrizeGood},
		{"moderate", 50, model.TopPrizeModerate},
		{"moderate boundary", 75, model.TopPrizeModerate},
		{"limited", 90, model.TopPrizeLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []model.TierBreakdown{{PrizeLevel: 1, PercentClaimed: tt.percent}}
			got, ok := TopPrizeStatusOf(rows)
			if !ok {
				t.Fatal("TopPrizeStatusOf reported no status")
			}
			if got != tt.want {
				t.Errorf("TopPrizeStatusOf(%v%%) = %q, want %q", tt.percent, got, tt.want)
			}
		})
	}

	if _, ok := TopPrizeStatusOf(nil); ok {
		t.Error("TopPrizeStatusOf(nil) reported a status, want none")
	}
}
