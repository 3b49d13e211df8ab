package search

import (
	"context"
	"fmt"
	"math/rand"
	"slices"

	"github.com/skyroute/skyroute/pkg/airnet"
	"github.com/skyroute/skyroute/pkg/geo"
)

// DirectFuelEfficiency is the km-per-fuel-unit rate assumed for an off-route
// diversion straight to an airport. Direct legs fly outside the network's
// route structure, so no per-route efficiency applies; one unit per
// kilometre is the conservative planning rate.
const DirectFuelEfficiency = 1.0

// rankedAirport pairs an airport with its great-circle distance from the
// aircraft.
type rankedAirport struct {
	airport    *airnet.Airport
	distanceKm float64
}

// EmergencyLanding finds the nearest airport suitable for the aircraft's
// emergency. Candidates are examined in ascending great-circle distance from
// the aircraft; the first one passing every check wins:
//
//  1. weather at the airport permits landing
//  2. runway length meets the aircraft class minimum
//  3. the emergency's required facility is reported
//  4. remaining fuel covers the direct leg
//  5. decoy airports pass selection-time verification (stochastic, via rng)
//
// Every examined candidate is recorded in the result trace with its verdict
// and the first failed check. Exhausting all candidates is a valid
// "no viable airport" outcome, not an error. The rng drives only decoy
// verification; pass a seeded source for reproducible outcomes.
func EmergencyLanding(ctx context.Context, net *airnet.Network, ac *airnet.Aircraft, e airnet.Emergency, rng *rand.Rand) (Result, error) {
	res := newResult()
	if err := ac.Position.Validate(); err != nil {
		return res, fmt.Errorf("aircraft position: %w", err)
	}

	ranked, err := rankByDistance(net, ac.Position)
	if err != nil {
		return res, err
	}

	minRunway := ac.Class.MinRunway()
	visited := make(map[string]bool, len(ranked))

	for _, cand := range ranked {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		if visited[cand.airport.Code] {
			continue
		}
		visited[cand.airport.Code] = true

		reason, ok := checkCandidate(cand, ac, e, minRunway, rng)
		res.Trace = append(res.Trace, TraceEntry{
			Code:       cand.airport.Code,
			DistanceKm: cand.distanceKm,
			Passed:     ok,
			Reason:     reason,
		})
		if !ok {
			continue
		}

		fuel, err := geo.EstimateFuel(cand.distanceKm, DirectFuelEfficiency)
		if err != nil {
			return res, fmt.Errorf("direct leg to %s: %w", cand.airport.Code, err)
		}
		res.Found = true
		res.Path = []string{cand.airport.Code}
		res.DistanceKm = cand.distanceKm
		res.Fuel = fuel
		return res, nil
	}

	// All candidates exhausted: a valid terminal state the caller handles.
	return res, nil
}

// checkCandidate runs the suitability checks in order and returns the first
// failure reason, or ("all checks passed", true).
func checkCandidate(cand rankedAirport, ac *airnet.Aircraft, e airnet.Emergency, minRunway float64, rng *rand.Rand) (string, bool) {
	a := cand.airport
	if !airnet.WeatherPermits(a) {
		return fmt.Sprintf("weather: %s", a.Weather), false
	}
	if !airnet.RunwaySuitable(a, minRunway) {
		return fmt.Sprintf("runway %.0fm below %.0fm minimum", a.RunwayLength, minRunway), false
	}
	if !airnet.HasRequiredFacility(a, e) {
		return fmt.Sprintf("missing facility: %s", e.Requires), false
	}
	if !airnet.FuelFeasible(ac, cand.distanceKm, DirectFuelEfficiency) {
		need := cand.distanceKm / DirectFuelEfficiency
		return fmt.Sprintf("insufficient fuel: need %.0f, have %.0f", need, ac.FuelRemaining), false
	}
	if !airnet.VerifyDecoy(a, rng) {
		return "decoy verification failed", false
	}
	return "all checks passed", true
}

// rankByDistance computes the great-circle distance from pos to every
// airport and returns them sorted ascending. Airports are seeded in code
// order, so equal distances tie-break alphabetically.
func rankByDistance(net *airnet.Network, pos geo.Coordinate) ([]rankedAirport, error) {
	airports := net.Airports()
	ranked := make([]rankedAirport, 0, len(airports))
	for _, a := range airports {
		d, err := geo.Distance(pos, a.Position)
		if err != nil {
			return nil, fmt.Errorf("airport %s: %w", a.Code, err)
		}
		ranked = append(ranked, rankedAirport{airport: a, distanceKm: d})
	}
	slices.SortStableFunc(ranked, func(a, b rankedAirport) int {
		switch {
		case a.distanceKm < b.distanceKm:
			return -1
		case a.distanceKm > b.distanceKm:
			return 1
		default:
			return 0
		}
	})
	return ranked, nil
}
