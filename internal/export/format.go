package export

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders numbers with en-US grouping ("$12,345").
var printer = message.NewPrinter(language.English)

// Currency formats a dollar value with a leading "$" and thousands
// separators. decimals is 0 for whole-dollar fields and 2 for prices.
func Currency(value float64, decimals int) string {
	if decimals == 2 {
		return printer.Sprintf("$%.2f", value)
	}
	return printer.Sprintf("$%.0f", value)
}

// Percent formats a ratio already scaled to 0-100 as a fixed-point
// percentage string.
func Percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// Count formats a whole count with thousands separators.
func Count(value int64) string {
	return printer.Sprintf("%d", value)
}
