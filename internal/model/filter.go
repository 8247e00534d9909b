package model

import "fmt"

// EndingFilter controls how games with a scheduled close date are treated.
type EndingFilter string

const (
	// EndingInclude applies no close-date constraint.
	EndingInclude EndingFilter = "include"
	// EndingExclude drops games that have a close date scheduled.
	EndingExclude EndingFilter = "exclude"
	// EndingOnly keeps only games that have a close date scheduled.
	EndingOnly EndingFilter = "only"
)

// ParseEndingFilter validates a UI-level ending filter value. An empty
// string defaults to EndingInclude.
func ParseEndingFilter(s string) (EndingFilter, error) {
	switch EndingFilter(s) {
	case "":
		return EndingInclude, nil
	case EndingInclude, EndingExclude, EndingOnly:
		return EndingFilter(s), nil
	default:
		return "", fmt.Errorf("invalid ending filter %q (want include, exclude or only)", s)
	}
}

// Filter is the UI-level filter spec translated into fetch constraints.
// Ticket prices form an inclusive range; GameID, when set, restricts the
// fetch to a single game by exact match.
type Filter struct {
	GameID         string
	MinTicketPrice float64
	MaxTicketPrice float64
	Ending         EndingFilter
}
