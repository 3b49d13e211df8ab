package airnet

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	// ErrInvalidAirportCode is returned by [Network.AddAirport] when the
	// airport code is empty. All airports must have non-empty codes.
	ErrInvalidAirportCode = errors.New("airport code must not be empty")

	// ErrDuplicateAirport is returned by [Network.AddAirport] when an
	// airport with the same code already exists. Silent overwrite is
	// disallowed: rebuilding an airport mid-run would orphan route state.
	ErrDuplicateAirport = errors.New("duplicate airport code")

	// ErrUnknownAirport is returned when an operation references an
	// airport code that does not exist in the network.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrDuplicateRoute is returned by [Network.AddRoute] when a route
	// already exists in the same direction between the two codes.
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrInvalidDistance is returned by [Network.AddRoute] when the
	// distance is zero or negative.
	ErrInvalidDistance = errors.New("route distance must be positive")

	// ErrRouteNotFound is returned by [Network.UpdateCongestion] and
	// [Network.UpdateWeather] when the unordered pair has no route.
	ErrRouteNotFound = errors.New("no route between airports")
)

// pair identifies a directed route entry.
type pair struct{ from, to string }

// Network owns the airports and the directed route adjacency, plus derived
// sets of congested and weather-disrupted directed pairs. The derived sets
// are kept consistent with per-route state by the update methods: a pair is
// a member iff the corresponding route flag is set.
//
// The zero value is not usable - use [New].
type Network struct {
	airports  map[string]*Airport
	routes    map[string][]Route // insertion-ordered outgoing edges
	congested map[pair]bool
	weather   map[pair]bool
}

// New creates an empty network.
func New() *Network {
	return &Network{
		airports:  make(map[string]*Airport),
		routes:    make(map[string][]Route),
		congested: make(map[pair]bool),
		weather:   make(map[pair]bool),
	}
}

// AddAirport inserts an airport, keyed by its code. Returns
// ErrInvalidAirportCode for an empty code or ErrDuplicateAirport when the
// code is already taken. An airport with no weather tag defaults to clear.
func (n *Network) AddAirport(a *Airport) error {
	if a == nil || a.Code == "" {
		return ErrInvalidAirportCode
	}
	if _, exists := n.airports[a.Code]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAirport, a.Code)
	}
	if a.Weather == "" {
		a.Weather = WeatherClear
	}
	n.airports[a.Code] = a
	return nil
}

// Airport returns the airport with the given code and true, or nil and
// false if not found.
func (n *Network) Airport(code string) (*Airport, bool) {
	a, ok := n.airports[code]
	return a, ok
}

// Airports returns all airports sorted by code.
func (n *Network) Airports() []*Airport {
	out := make([]*Airport, 0, len(n.airports))
	for _, a := range n.airports {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *Airport) int {
		return strings.Compare(a.Code, b.Code)
	})
	return out
}

// AirportCount returns the number of airports in the network.
func (n *Network) AirportCount() int { return len(n.airports) }

// RouteCount returns the number of directed route entries. A bidirectional
// connection counts twice.
func (n *Network) RouteCount() int {
	total := 0
	for _, rs := range n.routes {
		total += len(rs)
	}
	return total
}

// AddRoute connects two existing airports with a bidirectional route:
// a forward and a reverse directed entry with identical attributes, inserted
// both-or-neither. Returns ErrUnknownAirport if either code is missing,
// ErrInvalidDistance for a non-positive distance, or ErrDuplicateRoute when
// either direction already has an entry.
func (n *Network) AddRoute(from, to string, distanceKm, fuelEfficiency float64, congestionLevel int) error {
	if _, ok := n.airports[from]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirport, from)
	}
	if _, ok := n.airports[to]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirport, to)
	}
	if distanceKm <= 0 {
		return fmt.Errorf("%w: %s-%s (%.1f km)", ErrInvalidDistance, from, to, distanceKm)
	}
	if n.hasRoute(from, to) || n.hasRoute(to, from) {
		return fmt.Errorf("%w: %s-%s", ErrDuplicateRoute, from, to)
	}

	fwd := Route{From: from, To: to, DistanceKm: distanceKm, FuelEfficiency: fuelEfficiency, CongestionLevel: congestionLevel}
	rev := fwd
	rev.From, rev.To = to, from

	n.routes[from] = append(n.routes[from], fwd)
	n.routes[to] = append(n.routes[to], rev)
	n.syncDerived(fwd)
	n.syncDerived(rev)
	return nil
}

// Route returns the directed route from→to and true, or a zero Route and
// false when no such entry exists.
func (n *Network) Route(from, to string) (Route, bool) {
	for _, r := range n.routes[from] {
		if r.To == to {
			return r, true
		}
	}
	return Route{}, false
}

// UpdateCongestion sets the congestion grade on both directional entries of
// the unordered pair and refreshes the derived congested set. Returns
// ErrRouteNotFound if the pair has no route.
func (n *Network) UpdateCongestion(a, b string, level int) error {
	return n.updatePair(a, b, func(r *Route) { r.CongestionLevel = level })
}

// UpdateWeather sets the weather-disruption flag on both directional entries
// of the unordered pair and refreshes the derived weather set. Returns
// ErrRouteNotFound if the pair has no route.
func (n *Network) UpdateWeather(a, b string, disrupted bool) error {
	return n.updatePair(a, b, func(r *Route) { r.WeatherDisrupted = disrupted })
}

// SetWeatherAt updates the weather tag at an airport.
func (n *Network) SetWeatherAt(code string, w Weather) error {
	a, ok := n.airports[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	a.Weather = w
	return nil
}

// MarkDecoy flags an airport as a decoy whose reported facilities must be
// re-verified at selection time.
func (n *Network) MarkDecoy(code string) error {
	a, ok := n.airports[code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirport, code)
	}
	a.Decoy = true
	return nil
}

// IsCongested reports whether the directed pair is in the congested set.
func (n *Network) IsCongested(from, to string) bool { return n.congested[pair{from, to}] }

// IsWeatherDisrupted reports whether the directed pair is in the
// weather-disrupted set.
func (n *Network) IsWeatherDisrupted(from, to string) bool { return n.weather[pair{from, to}] }

// NeighborFilter selects which outgoing routes [Network.Neighbors] yields.
type NeighborFilter struct {
	AvoidCongestion bool // skip routes in the congested set
	AvoidWeather    bool // skip routes in the weather-disrupted set
}

// Neighbors returns a restartable sequence of outgoing routes from code,
// in route insertion order, filtered per f. The ordering is observable:
// it fixes tie-breaks in every traversal engine. Iterating an unknown code
// yields nothing.
func (n *Network) Neighbors(code string, f NeighborFilter) iter.Seq[Route] {
	return func(yield func(Route) bool) {
		for _, r := range n.routes[code] {
			if f.AvoidCongestion && n.congested[pair{r.From, r.To}] {
				continue
			}
			if f.AvoidWeather && n.weather[pair{r.From, r.To}] {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

func (n *Network) hasRoute(from, to string) bool {
	_, ok := n.Route(from, to)
	return ok
}

// updatePair applies fn to both directional entries of the unordered pair
// {a,b} and resyncs the derived sets for them.
func (n *Network) updatePair(a, b string, fn func(*Route)) error {
	found := false
	for _, p := range []pair{{a, b}, {b, a}} {
		for i := range n.routes[p.from] {
			r := &n.routes[p.from][i]
			if r.To != p.to {
				continue
			}
			fn(r)
			n.syncDerived(*r)
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s-%s", ErrRouteNotFound, a, b)
	}
	return nil
}

// syncDerived updates set membership so that a pair appears in a derived
// set iff the route's corresponding state is set.
func (n *Network) syncDerived(r Route) {
	p := pair{r.From, r.To}
	if r.Congested() {
		n.congested[p] = true
	} else {
		delete(n.congested, p)
	}
	if r.WeatherDisrupted {
		n.weather[p] = true
	} else {
		delete(n.weather, p)
	}
}
