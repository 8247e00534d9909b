// Package store implements the fetch collaborator over the Neo4j graph
// that holds the scratch-off inventory (Game and Detail nodes).
//
// Fetches fail soft: any backend error, including a per-query timeout,
// yields an empty record set rather than an error, so a stalled or
// unreachable backend renders as "no data" instead of taking the
// dashboard down.
package store
