package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/skyroute/skyroute/pkg/airnet"
	"github.com/skyroute/skyroute/pkg/geo"
)

// queueItem is one frontier entry: an airport plus the accumulated path and
// costs that led to it.
type queueItem struct {
	code     string
	path     []string
	distance float64
	fuel     float64
}

// candidate pairs a route with its incremental fuel cost, for the optional
// fuel-priority reordering.
type candidate struct {
	route airnet.Route
	fuel  float64
}

// compareFuel orders candidates by ascending fuel cost. Used with a stable
// sort so equal costs keep route insertion order.
func compareFuel(a, b candidate) int {
	switch {
	case a.fuel < b.fuel:
		return -1
	case a.fuel > b.fuel:
		return 1
	default:
		return 0
	}
}

// ShortestPath finds the hop-count-shortest path from start to goal with
// breadth-first search. With opts.AvoidCongestion set, congested and
// weather-disrupted routes are excluded; if every remaining path is blocked
// the result is a well-formed not-found, never an error.
//
// Airports are marked visited when enqueued, so each is expanded at most
// once and the first dequeued goal is reached via a minimal number of hops.
// Ties between equal-hop paths follow route insertion order, or ascending
// fuel cost per node when opts.PrioritizeFuel is set.
func ShortestPath(ctx context.Context, net *airnet.Network, start, goal string, opts Options) (Result, error) {
	res := newResult()
	if _, ok := net.Airport(start); !ok {
		return res, fmt.Errorf("%w: %s", ErrUnknownStart, start)
	}
	if _, ok := net.Airport(goal); !ok {
		return res, fmt.Errorf("%w: %s", ErrUnknownGoal, goal)
	}

	filter := airnet.NeighborFilter{
		AvoidCongestion: opts.AvoidCongestion,
		AvoidWeather:    opts.AvoidCongestion,
	}

	queue := []queueItem{{code: start, path: []string{start}}}
	visited := map[string]bool{start: true}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		if item.code == goal {
			res.Found = true
			res.Path = item.path
			res.DistanceKm = item.distance
			res.Fuel = item.fuel
			return res, nil
		}

		cands, err := collectCandidates(net, item.code, filter, visited)
		if err != nil {
			return res, err
		}
		if opts.PrioritizeFuel {
			slices.SortStableFunc(cands, compareFuel)
		}

		for _, c := range cands {
			visited[c.route.To] = true
			next := make([]string, len(item.path), len(item.path)+1)
			copy(next, item.path)
			queue = append(queue, queueItem{
				code:     c.route.To,
				path:     append(next, c.route.To),
				distance: item.distance + c.route.DistanceKm,
				fuel:     item.fuel + c.fuel,
			})
		}
	}

	// Queue exhausted: no constraint-satisfying path exists.
	return res, nil
}

// collectCandidates gathers the unvisited neighbors of code with their
// incremental fuel costs, preserving route insertion order.
func collectCandidates(net *airnet.Network, code string, f airnet.NeighborFilter, visited map[string]bool) ([]candidate, error) {
	var cands []candidate
	for r := range net.Neighbors(code, f) {
		if visited[r.To] {
			continue
		}
		fuel, err := geo.EstimateFuel(r.DistanceKm, r.FuelEfficiency)
		if err != nil {
			return nil, fmt.Errorf("route %s-%s: %w", r.From, r.To, err)
		}
		cands = append(cands, candidate{route: r, fuel: fuel})
	}
	return cands, nil
}
