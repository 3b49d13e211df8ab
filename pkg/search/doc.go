// Package search implements the route-finding strategies over an airport
// network: breadth-first shortest-path search, depth-first emergency-landing
// search, and depth-limited alternate-route search.
//
// # Strategies
//
// All three strategies consume edges exclusively through
// [airnet.Network.Neighbors], so route insertion order fixes their
// tie-breaks. They differ in exploration order and success criterion:
//
//   - [ShortestPath] explores in non-decreasing hop count and returns the
//     first constraint-satisfying path to the goal, which is therefore the
//     hop-count-shortest one. It is not cost-optimal in the Dijkstra sense.
//   - [EmergencyLanding] examines airports in ascending great-circle
//     distance from the aircraft and accepts the first one passing every
//     suitability check, recording a pass/fail trace for each candidate.
//   - [AlternateRoute] explores depth-first under a hop bound and returns
//     the first feasible path within it; callers may retry with a larger
//     bound.
//
// # Results
//
// A failed search is not an error. "No path exists" and "no viable airport"
// are well-formed negative outcomes: the [Result] carries Found=false and an
// empty path, and [Result.DistanceOrInf] / [Result.FuelOrInf] expose +Inf
// sentinels for callers that prefer numeric form. Errors are reserved for
// malformed queries, such as unknown airport codes.
//
// Each query runs synchronously to completion on the calling goroutine; the
// supplied context is checked between expansions so long searches can be
// cancelled.
package search
