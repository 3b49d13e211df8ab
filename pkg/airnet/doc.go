// Package airnet models a network of airports and flight routes.
//
// # Overview
//
// The network is a directed graph: airports are nodes keyed by IATA-style
// code, and routes are directed edges carrying distance, fuel efficiency,
// congestion grade and a weather-disruption flag. Bidirectional service is
// modelled as two independent directed entries so that per-direction state
// never aliases; [Network.AddRoute] inserts both directions atomically and
// [Network.UpdateCongestion] / [Network.UpdateWeather] keep them consistent.
//
// # Basic Usage
//
// Create a network with [New], add airports with [Network.AddAirport], and
// connect them with [Network.AddRoute]. Both endpoints must already exist:
//
//	net := airnet.New()
//	net.AddAirport(&airnet.Airport{Code: "DEL", Name: "Indira Gandhi Intl", ...})
//	net.AddAirport(&airnet.Airport{Code: "BOM", Name: "Chhatrapati Shivaji Intl", ...})
//	net.AddRoute("DEL", "BOM", 1400, 7, 2)
//
// Traversal engines consume edges through [Network.Neighbors], which yields
// outgoing routes in insertion order, optionally skipping congested or
// weather-disrupted segments. Insertion order is observable: it determines
// tie-breaks in every search strategy built on top of this package.
//
// # Constraint Predicates
//
// The suitability predicates ([HasRequiredFacility], [FuelFeasible],
// [RunwaySuitable], [WeatherPermits], [VerifyDecoy]) are pure functions over
// airports and aircraft. VerifyDecoy is the one stochastic element: a decoy
// airport resolves unsuitable with probability 0.5, drawn from an injected
// random source so outcomes are reproducible under a fixed seed.
//
// # Concurrency
//
// Network is not safe for concurrent use. Mutations (congestion and weather
// updates) are expected to happen between queries, not during them.
package airnet
