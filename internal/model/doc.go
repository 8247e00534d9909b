// Package model defines the canonical row types shared across the
// scratch-off analytics pipeline.
//
// Conventions:
//   - Optional fields are pointers; nil means absent or failed coercion
//   - Counts: int64; prices, probabilities and dollar values: float64
//   - prize_level is an ordinal rank (1 = rarest/highest-value tier), not
//     a dollar amount
package model
