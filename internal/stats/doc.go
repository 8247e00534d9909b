// Package stats implements the aggregation and derived-metrics engine.
//
// Pipeline stages, in order:
//   - Normalize*: raw flat records -> canonical typed rows (fail-soft
//     coercion; bad values become missing, never errors)
//   - Derive: remaining counts, win probability, expected value,
//     formatted names over tier-duplicated rows
//   - AggregateByGame: N tier rows per game -> 1 row per game, with an
//     explicit per-column reducer policy
//   - ClassifyAvoid: games whose top prize tier is >= 90% claimed (an
//     independent derivation path)
//
// All transformations are pure over an in-memory snapshot; nothing here
// touches the backing store.
package stats
