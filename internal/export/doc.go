// Package export serializes the derived game table for download, with
// display formatting applied (currency, thousands separators, fixed-point
// percentages).
package export
