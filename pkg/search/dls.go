package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/skyroute/skyroute/pkg/airnet"
	"github.com/skyroute/skyroute/pkg/geo"
)

// AlternateRoute finds a feasible path from start to goal with depth-first
// exploration bounded to maxDepth hops. A branch is pruned once the bound is
// reached, whether or not more neighbors exist, so no returned path exceeds
// maxDepth segments.
//
// Feasibility is folded in before each descent: weather-disrupted segments
// are always skipped, congested ones when opts.AvoidCongestion is set, and
// an intermediate airport whose own weather disqualifies landing is not
// entered. The first feasible path found wins; a "no path within depth
// limit" outcome is a valid result, and retrying with a larger bound is the
// caller's policy, not the engine's.
func AlternateRoute(ctx context.Context, net *airnet.Network, start, goal string, maxDepth int, opts Options) (Result, error) {
	res := newResult()
	if maxDepth < 0 {
		return res, fmt.Errorf("%w: %d", ErrInvalidDepth, maxDepth)
	}
	if _, ok := net.Airport(start); !ok {
		return res, fmt.Errorf("%w: %s", ErrUnknownStart, start)
	}
	if _, ok := net.Airport(goal); !ok {
		return res, fmt.Errorf("%w: %s", ErrUnknownGoal, goal)
	}

	w := &dlsWalker{
		ctx:      ctx,
		net:      net,
		goal:     goal,
		maxDepth: maxDepth,
		opts:     opts,
		visited:  map[string]bool{start: true},
	}
	found, err := w.descend(start, []string{start}, 0, 0, 0)
	if err != nil {
		return res, err
	}
	if found {
		res.Found = true
		res.Path = w.path
		res.DistanceKm = w.distance
		res.Fuel = w.fuel
	}
	return res, nil
}

// dlsWalker holds the mutable state of one depth-limited search.
type dlsWalker struct {
	ctx      context.Context
	net      *airnet.Network
	goal     string
	maxDepth int
	opts     Options
	visited  map[string]bool

	// set when the goal is reached
	path     []string
	distance float64
	fuel     float64
}

// descend explores from code at the given depth. It returns true as soon as
// a feasible path to the goal is committed to the walker.
func (w *dlsWalker) descend(code string, path []string, depth int, distance, fuel float64) (bool, error) {
	select {
	case <-w.ctx.Done():
		return false, w.ctx.Err()
	default:
	}

	if code == w.goal {
		w.path = slices.Clone(path)
		w.distance = distance
		w.fuel = fuel
		return true, nil
	}
	if depth >= w.maxDepth {
		return false, nil // depth bound reached, backtrack
	}

	cands, err := w.candidates(code)
	if err != nil {
		return false, err
	}
	for _, c := range cands {
		if w.visited[c.route.To] {
			continue
		}
		if !w.enterable(c.route.To) {
			continue
		}
		w.visited[c.route.To] = true
		found, err := w.descend(c.route.To, append(path, c.route.To), depth+1,
			distance+c.route.DistanceKm, fuel+c.fuel)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
		delete(w.visited, c.route.To) // backtrack: other branches may reuse it
	}
	return false, nil
}

// candidates lists the feasible outgoing routes of code in exploration
// order: insertion order, or ascending fuel cost under PrioritizeFuel.
func (w *dlsWalker) candidates(code string) ([]candidate, error) {
	filter := airnet.NeighborFilter{
		AvoidCongestion: w.opts.AvoidCongestion,
		AvoidWeather:    true, // disrupted segments are never viable
	}
	var cands []candidate
	for r := range w.net.Neighbors(code, filter) {
		f, err := geo.EstimateFuel(r.DistanceKm, r.FuelEfficiency)
		if err != nil {
			return nil, fmt.Errorf("route %s-%s: %w", r.From, r.To, err)
		}
		cands = append(cands, candidate{route: r, fuel: f})
	}
	if w.opts.PrioritizeFuel {
		slices.SortStableFunc(cands, compareFuel)
	}
	return cands, nil
}

// enterable reports whether an airport can be flown into as a path node.
// The goal itself is also subject to its weather: landing there is the
// point of the route.
func (w *dlsWalker) enterable(code string) bool {
	a, ok := w.net.Airport(code)
	if !ok {
		return false
	}
	return airnet.WeatherPermits(a)
}
