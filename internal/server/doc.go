// Package server exposes the dashboard data API: summary metrics, the
// derived game table, per-game prize breakdowns, the games-to-avoid
// table, and a CSV download.
package server
