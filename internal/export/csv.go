package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/lottolab/scratchoff-data/internal/model"
)

// csvHeader maps the canonical columns to human-friendly names, in
// download order.
var csvHeader = []string{
	"Game Number",
	"Game Name",
	"Ticket Price",
	"Total Prizes",
	"Prizes Claimed",
	"Percent Claimed",
	"Expected Value",
}

// WriteCSV serializes the derived game table as comma-separated values
// with a header row, sorted by ticket price. Numeric fields are formatted
// for display; a missing expected value exports as a blank cell rather
// than a fabricated zero.
func WriteCSV(w io.Writer, rows []model.CombinedRow) error {
	sorted := make([]model.CombinedRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return price(sorted[i]) < price(sorted[j])
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range sorted {
		if err := cw.Write(csvRow(row)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(row model.CombinedRow) []string {
	name := row.FormattedGameName
	if name == "" {
		name = row.GameName
	}

	ticketPrice := ""
	if row.TicketPrice != nil {
		ticketPrice = Currency(*row.TicketPrice, 2)
	}

	total := ""
	if row.TotalCount != nil {
		total = Count(*row.TotalCount)
	}

	claimed := ""
	if row.ClaimedCount != nil {
		claimed = Count(*row.ClaimedCount)
	}

	percent := Percent(percentClaimed(row))

	ev := ""
	if row.ExpectedValue != nil {
		ev = Currency(*row.ExpectedValue, 2)
	}

	return []string{row.GameID, name, ticketPrice, total, claimed, percent, ev}
}

// percentClaimed is claimed/total x 100, with degenerate inputs defined
// as 0 so the exported column is always a finite percentage.
func percentClaimed(row model.CombinedRow) float64 {
	if row.ClaimedCount == nil || row.TotalCount == nil || *row.TotalCount <= 0 {
		return 0
	}
	return float64(*row.ClaimedCount) / float64(*row.TotalCount) * 100
}

// price orders rows for export; games without a price sort last.
func price(row model.CombinedRow) float64 {
	if row.TicketPrice == nil {
		return float64(1 << 30)
	}
	return *row.TicketPrice
}
