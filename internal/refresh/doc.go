// Package refresh keeps a session's cached tables current by re-running
// its fetch-and-transform pass on a fixed interval.
package refresh
