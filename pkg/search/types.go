package search

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

var (
	// ErrUnknownStart is returned when the start code is not in the network.
	ErrUnknownStart = errors.New("unknown start airport")

	// ErrUnknownGoal is returned when the goal code is not in the network.
	ErrUnknownGoal = errors.New("unknown goal airport")

	// ErrInvalidDepth is returned by [AlternateRoute] for a negative depth
	// bound.
	ErrInvalidDepth = errors.New("max depth must not be negative")
)

// Options are the per-query switches shared by the traversal strategies.
// They are immutable for the duration of one call.
type Options struct {
	// AvoidCongestion skips routes currently in the congested set (and,
	// for the breadth-first search, weather-disrupted ones too).
	AvoidCongestion bool

	// PrioritizeFuel offers a node's candidate routes in ascending
	// fuel-cost order instead of insertion order. For the breadth-first
	// search this is a local reordering before enqueue; level order is
	// preserved, so the result stays hop-count-shortest.
	PrioritizeFuel bool
}

// TraceEntry records one examined candidate during an emergency-landing
// search, with the verdict and the first check that failed.
type TraceEntry struct {
	Code       string  `json:"code"`
	DistanceKm float64 `json:"distance_km"`
	Passed     bool    `json:"passed"`
	Reason     string  `json:"reason"`
}

// Result is the outcome of one query. A not-found outcome is a valid
// result, not an error: Found is false and the path is empty.
type Result struct {
	QueryID    uuid.UUID    `json:"query_id"`
	Path       []string     `json:"path,omitempty"`
	DistanceKm float64      `json:"distance_km"`
	Fuel       float64      `json:"fuel"`
	Found      bool         `json:"found"`
	Trace      []TraceEntry `json:"trace,omitempty"`
}

// newResult stamps a fresh query ID so log lines, exports and traces from
// the same query are correlatable.
func newResult() Result {
	return Result{QueryID: uuid.New()}
}

// Hops returns the number of route segments in the path.
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// DistanceOrInf returns the cumulative distance, or +Inf when no route was
// found. The infinity never leaks into stored results; it exists only for
// callers that want the classic numeric sentinel.
func (r Result) DistanceOrInf() float64 {
	if !r.Found {
		return math.Inf(1)
	}
	return r.DistanceKm
}

// FuelOrInf returns the cumulative fuel, or +Inf when no route was found.
func (r Result) FuelOrInf() float64 {
	if !r.Found {
		return math.Inf(1)
	}
	return r.Fuel
}
