package airnet

import "math/rand"

// HasRequiredFacility reports whether the airport offers the facility the
// emergency demands: medical emergencies need a medical facility, fire
// emergencies need fire response, mechanical failures need maintenance.
// Emergencies with no required facility (including unrecognised types,
// see [EmergencyByName]) are satisfied by any airport.
//
// For decoy airports this checks the *reported* facility list; the report
// must be re-verified with [VerifyDecoy] before selection.
func HasRequiredFacility(a *Airport, e Emergency) bool {
	if e.Requires == "" {
		return true
	}
	return a.HasFacility(e.Requires)
}

// FuelFeasible reports whether the aircraft's remaining fuel covers
// distanceKm at the given efficiency (km per fuel unit). A non-positive
// efficiency makes the leg infeasible.
func FuelFeasible(ac *Aircraft, distanceKm, fuelEfficiency float64) bool {
	if fuelEfficiency <= 0 {
		return false
	}
	return ac.FuelRemaining >= distanceKm/fuelEfficiency
}

// RunwaySuitable reports whether the airport's runway meets the minimum
// length in metres.
func RunwaySuitable(a *Airport, minRunway float64) bool {
	return a.RunwayLength >= minRunway
}

// WeatherPermits reports whether the airport's current weather tag allows a
// landing. Storm, dense fog and cyclone disqualify; everything else is
// flyable.
func WeatherPermits(a *Airport) bool {
	switch a.Weather {
	case WeatherStorm, WeatherDenseFog, WeatherCyclone:
		return false
	default:
		return true
	}
}

// VerifyDecoy re-verifies an airport's reported capabilities at selection
// time. Non-decoy airports always resolve as reported. A decoy resolves
// unsuitable with probability 0.5, drawn from rng so that a fixed seed
// reproduces the same outcome. The draw happens only for decoys, keeping
// the random stream stable for traversals that never touch one.
func VerifyDecoy(a *Airport, rng *rand.Rand) bool {
	if !a.Decoy {
		return true
	}
	return rng.Float64() >= 0.5
}
