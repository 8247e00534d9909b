// Package processor orchestrates the analytics pipeline: it pairs each
// fetch path with the normalization, derivation and aggregation steps
// that path requires.
package processor
