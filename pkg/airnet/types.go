package airnet

import (
	"slices"
	"strings"

	"github.com/skyroute/skyroute/pkg/geo"
)

// Facility identifies a ground capability an airport may offer.
type Facility string

// Facilities relevant to emergency handling and turnaround.
const (
	FacilityMedical      Facility = "medical"
	FacilityFireResponse Facility = "fire_response"
	FacilityMaintenance  Facility = "maintenance"
	FacilityRefueling    Facility = "refueling"
)

// Weather is the current weather tag at an airport.
type Weather string

// Weather tags. Storm, dense fog and cyclone disqualify an airport for
// landing; the rest are flyable.
const (
	WeatherClear    Weather = "clear"
	WeatherRain     Weather = "rain"
	WeatherFog      Weather = "fog"
	WeatherStorm    Weather = "storm"
	WeatherDenseFog Weather = "dense_fog"
	WeatherCyclone  Weather = "cyclone"
)

// Airport is a node in the network. Airports are created at build time and
// never removed during a run; weather and decoy state may be mutated between
// queries via [Network.SetWeatherAt] and [Network.MarkDecoy].
type Airport struct {
	Code         string         // unique identifier, e.g. "DEL"
	Name         string         // display name
	Position     geo.Coordinate // geographic position in decimal degrees
	Hub          bool           // major interchange point (informational)
	RunwayLength float64        // longest runway, metres
	ControlTower bool
	Facilities   []Facility // reported ground capabilities
	Weather      Weather    // current weather tag (defaults to clear)
	Decoy        bool       // reported facilities may be unreliable
}

// HasFacility reports whether the airport lists the given facility.
// For decoy airports this reflects the *reported* state; re-verify with
// [VerifyDecoy] before committing to a selection.
func (a *Airport) HasFacility(f Facility) bool {
	return slices.Contains(a.Facilities, f)
}

// AircraftClass groups aircraft by their minimum runway requirement.
type AircraftClass string

// Aircraft classes, smallest to largest.
const (
	ClassSmall  AircraftClass = "small"
	ClassMedium AircraftClass = "medium"
	ClassLarge  AircraftClass = "large"
	ClassJumbo  AircraftClass = "jumbo"
)

// MinRunway returns the minimum runway length in metres for the class.
// Unrecognised classes fall back to the medium requirement.
func (c AircraftClass) MinRunway() float64 {
	switch AircraftClass(strings.ToLower(string(c))) {
	case ClassSmall:
		return 1000
	case ClassMedium:
		return 2000
	case ClassLarge:
		return 3000
	case ClassJumbo:
		return 3500
	default:
		return 2000
	}
}

// Aircraft is the in-flight state used by the emergency and alternate-route
// searches. Its lifetime is a single query.
type Aircraft struct {
	ID            string
	Position      geo.Coordinate
	FuelRemaining float64 // fuel units; one unit covers FuelEfficiency km
	Class         AircraftClass
}

// Emergency classifies an in-flight emergency and names the ground facility
// it requires. An Emergency with an empty Requires field needs no special
// facility; that is also the interpretation for unrecognised emergency names
// (see [EmergencyByName]).
type Emergency struct {
	Name     string
	Severity int // 0-10, informational
	Requires Facility
}

// Predefined emergency classifications.
var (
	EmergencyMedical    = Emergency{Name: "medical", Severity: 8, Requires: FacilityMedical}
	EmergencyFire       = Emergency{Name: "fire", Severity: 9, Requires: FacilityFireResponse}
	EmergencyMechanical = Emergency{Name: "mechanical", Severity: 6, Requires: FacilityMaintenance}
)

// EmergencyByName resolves a name to a known emergency classification.
// Unknown names yield a classification with no required facility rather
// than an error, so callers can still run a generic nearest-suitable search.
func EmergencyByName(name string) Emergency {
	switch strings.ToLower(name) {
	case EmergencyMedical.Name:
		return EmergencyMedical
	case EmergencyFire.Name:
		return EmergencyFire
	case EmergencyMechanical.Name:
		return EmergencyMechanical
	default:
		return Emergency{Name: strings.ToLower(name)}
	}
}

// Route is a directed edge between two airport codes. Bidirectional service
// is stored as two Route values with mirrored endpoints.
type Route struct {
	From             string
	To               string
	DistanceKm       float64
	FuelEfficiency   float64 // km per fuel unit
	CongestionLevel  int     // 0-10 traffic grade
	WeatherDisrupted bool
}

// CongestedLevel is the congestion grade at or above which a route counts
// as congested and is filtered by congestion-avoiding traversals.
const CongestedLevel = 7

// Congested reports whether the route's traffic grade makes it congested.
func (r Route) Congested() bool { return r.CongestionLevel >= CongestedLevel }
