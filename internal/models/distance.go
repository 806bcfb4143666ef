package models

import (
	"math"
	"strconv"
)

// DistanceQuery is a single user request to compute the distance between two places.
type DistanceQuery struct {
	Seq  uint64 // Seq orders queries issued through a resolver; zero for direct calls.
	From string
	To   string
}

// DistanceResult is the outcome of a DistanceQuery. Err is set when a place is unknown,
// otherwise Kilometers holds the unrounded great-circle distance.
type DistanceResult struct {
	Query      DistanceQuery
	From       string // From is the matched table name of the origin.
	To         string // To is the matched table name of the destination.
	Kilometers float64
	Err        error
}

// OK reports whether the result carries a distance.
func (r DistanceResult) OK() bool {
	return r.Err == nil
}

// RoundedKm returns the distance rounded to the nearest whole kilometer.
func (r DistanceResult) RoundedKm() int {
	return int(math.Round(r.Kilometers))
}

// String renders the result for display, e.g. "350 km".
func (r DistanceResult) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}

	return strconv.Itoa(r.RoundedKm()) + " km"
}
