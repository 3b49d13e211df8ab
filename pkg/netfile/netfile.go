// Package netfile loads airport networks and query scenarios from TOML
// files and exports query results as JSON.
//
// A network file declares airports and routes, plus optionally the aircraft
// used by emergency scenarios:
//
//	[[airports]]
//	code = "DEL"
//	name = "Indira Gandhi International"
//	lat = 28.5561
//	lon = 77.0994
//	hub = true
//	runway_m = 4430
//	control_tower = true
//	facilities = ["medical", "fire_response", "maintenance", "refueling"]
//
//	[[routes]]
//	from = "DEL"
//	to = "BOM"
//	distance_km = 1400
//	fuel_efficiency = 7
//	congestion = 2
//
//	[aircraft]
//	id = "AI302"
//	lat = 21.15
//	lon = 79.05
//	fuel = 200
//	class = "large"
//
// Routes are bidirectional: each entry produces both directed edges, the
// same way [airnet.Network.AddRoute] does.
package netfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/skyroute/skyroute/pkg/airnet"
	"github.com/skyroute/skyroute/pkg/geo"
)

// File is the decoded form of a network definition file.
type File struct {
	Airports []AirportDef `toml:"airports"`
	Routes   []RouteDef   `toml:"routes"`
	Craft    *AircraftDef `toml:"aircraft"`
}

// AirportDef declares one airport.
type AirportDef struct {
	Code         string   `toml:"code"`
	Name         string   `toml:"name"`
	Lat          float64  `toml:"lat"`
	Lon          float64  `toml:"lon"`
	Hub          bool     `toml:"hub"`
	RunwayM      float64  `toml:"runway_m"`
	ControlTower bool     `toml:"control_tower"`
	Facilities   []string `toml:"facilities"`
	Weather      string   `toml:"weather"`
	Decoy        bool     `toml:"decoy"`
}

// RouteDef declares one bidirectional route.
type RouteDef struct {
	From             string  `toml:"from"`
	To               string  `toml:"to"`
	DistanceKm       float64 `toml:"distance_km"`
	FuelEfficiency   float64 `toml:"fuel_efficiency"`
	Congestion       int     `toml:"congestion"`
	WeatherDisrupted bool    `toml:"weather_disrupted"`
}

// AircraftDef declares the aircraft for emergency scenarios.
type AircraftDef struct {
	ID    string  `toml:"id"`
	Lat   float64 `toml:"lat"`
	Lon   float64 `toml:"lon"`
	Fuel  float64 `toml:"fuel"`
	Class string  `toml:"class"`
}

// Load reads and decodes a network definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &f, nil
}

// Network builds an [airnet.Network] from the file, validating coordinates
// and route references as it goes. Airport declaration order is preserved
// as route insertion order, so traversal tie-breaks match the file.
func (f *File) Network() (*airnet.Network, error) {
	n := airnet.New()
	for _, d := range f.Airports {
		pos := geo.Coordinate{Lat: d.Lat, Lon: d.Lon}
		if err := pos.Validate(); err != nil {
			return nil, fmt.Errorf("airport %s: %w", d.Code, err)
		}
		facilities := make([]airnet.Facility, 0, len(d.Facilities))
		for _, fac := range d.Facilities {
			facilities = append(facilities, airnet.Facility(fac))
		}
		a := &airnet.Airport{
			Code:         d.Code,
			Name:         d.Name,
			Position:     pos,
			Hub:          d.Hub,
			RunwayLength: d.RunwayM,
			ControlTower: d.ControlTower,
			Facilities:   facilities,
			Weather:      airnet.Weather(d.Weather),
			Decoy:        d.Decoy,
		}
		if err := n.AddAirport(a); err != nil {
			return nil, err
		}
	}
	for _, d := range f.Routes {
		if err := n.AddRoute(d.From, d.To, d.DistanceKm, d.FuelEfficiency, d.Congestion); err != nil {
			return nil, err
		}
		if d.WeatherDisrupted {
			if err := n.UpdateWeather(d.From, d.To, true); err != nil {
				return nil, err
			}
		}
	}
	return n, nil
}

// Aircraft returns the scenario aircraft, or false when the file declares
// none.
func (f *File) Aircraft() (*airnet.Aircraft, bool) {
	if f.Craft == nil {
		return nil, false
	}
	return &airnet.Aircraft{
		ID:            f.Craft.ID,
		Position:      geo.Coordinate{Lat: f.Craft.Lat, Lon: f.Craft.Lon},
		FuelRemaining: f.Craft.Fuel,
		Class:         airnet.AircraftClass(f.Craft.Class),
	}, true
}

// LoadNetwork is a convenience wrapper: Load followed by [File.Network].
func LoadNetwork(path string) (*airnet.Network, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	return f.Network()
}
