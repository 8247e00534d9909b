// Package session models the dashboard session: a single owned store
// handle plus the last-fetched tables, with an explicit open/refresh/
// close lifecycle instead of ambient globals.
package session
