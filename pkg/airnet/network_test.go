package airnet

import (
	"errors"
	"testing"

	"github.com/skyroute/skyroute/pkg/geo"
)

func testAirport(code string) *Airport {
	return &Airport{Code: code, Name: code + " Test", Position: geo.Coordinate{}, RunwayLength: 3000}
}

// triangle builds DEL, BLR, BOM with routes DEL-BOM, DEL-BLR, BLR-BOM.
func triangle(t *testing.T) *Network {
	t.Helper()
	n := New()
	for _, code := range []string{"DEL", "BLR", "BOM"} {
		if err := n.AddAirport(testAirport(code)); err != nil {
			t.Fatalf("AddAirport(%s) error = %v", code, err)
		}
	}
	routes := []struct {
		from, to string
		dist     float64
	}{
		{"DEL", "BOM", 1150},
		{"DEL", "BLR", 1700},
		{"BLR", "BOM", 840},
	}
	for _, r := range routes {
		if err := n.AddRoute(r.from, r.to, r.dist, 7, 0); err != nil {
			t.Fatalf("AddRoute(%s, %s) error = %v", r.from, r.to, err)
		}
	}
	return n
}

func TestAddAirport_Duplicate(t *testing.T) {
	n := New()
	if err := n.AddAirport(testAirport("DEL")); err != nil {
		t.Fatalf("AddAirport() error = %v", err)
	}
	if err := n.AddAirport(testAirport("DEL")); !errors.Is(err, ErrDuplicateAirport) {
		t.Errorf("AddAirport(dup) error = %v, want ErrDuplicateAirport", err)
	}
	if n.AirportCount() != 1 {
		t.Errorf("AirportCount() = %d after rejected duplicate, want 1", n.AirportCount())
	}
}

func TestAddAirport_InvalidCode(t *testing.T) {
	n := New()
	if err := n.AddAirport(&Airport{}); !errors.Is(err, ErrInvalidAirportCode) {
		t.Errorf("AddAirport(empty code) error = %v, want ErrInvalidAirportCode", err)
	}
	if err := n.AddAirport(nil); !errors.Is(err, ErrInvalidAirportCode) {
		t.Errorf("AddAirport(nil) error = %v, want ErrInvalidAirportCode", err)
	}
}

func TestAddAirport_DefaultsToClearWeather(t *testing.T) {
	n := New()
	if err := n.AddAirport(testAirport("DEL")); err != nil {
		t.Fatalf("AddAirport() error = %v", err)
	}
	a, _ := n.Airport("DEL")
	if a.Weather != WeatherClear {
		t.Errorf("Weather = %q, want %q", a.Weather, WeatherClear)
	}
}

func TestAddRoute_BothDirections(t *testing.T) {
	n := triangle(t)

	fwd, ok := n.Route("DEL", "BOM")
	if !ok {
		t.Fatal("Route(DEL, BOM) not found")
	}
	rev, ok := n.Route("BOM", "DEL")
	if !ok {
		t.Fatal("Route(BOM, DEL) not found")
	}
	if fwd.DistanceKm != rev.DistanceKm || fwd.FuelEfficiency != rev.FuelEfficiency {
		t.Errorf("directions differ: %+v vs %+v", fwd, rev)
	}
	if n.RouteCount() != 6 {
		t.Errorf("RouteCount() = %d, want 6", n.RouteCount())
	}
}

func TestAddRoute_Errors(t *testing.T) {
	n := triangle(t)

	tests := []struct {
		name     string
		from, to string
		dist     float64
		want     error
	}{
		{"unknown from", "XXX", "BOM", 100, ErrUnknownAirport},
		{"unknown to", "DEL", "XXX", 100, ErrUnknownAirport},
		{"zero distance", "DEL", "DEL", 0, ErrInvalidDistance},
		{"duplicate forward", "DEL", "BOM", 100, ErrDuplicateRoute},
		{"duplicate reverse", "BOM", "DEL", 100, ErrDuplicateRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := n.AddRoute(tt.from, tt.to, tt.dist, 7, 0); !errors.Is(err, tt.want) {
				t.Errorf("AddRoute() error = %v, want %v", err, tt.want)
			}
		})
	}

	// Rejected inserts must not leave partial state behind.
	if n.RouteCount() != 6 {
		t.Errorf("RouteCount() = %d after rejected inserts, want 6", n.RouteCount())
	}
}

func TestUpdateCongestion_SyncsBothDirections(t *testing.T) {
	n := triangle(t)

	if err := n.UpdateCongestion("DEL", "BOM", 8); err != nil {
		t.Fatalf("UpdateCongestion() error = %v", err)
	}
	if !n.IsCongested("DEL", "BOM") || !n.IsCongested("BOM", "DEL") {
		t.Error("congested set not updated in both directions")
	}
	r, _ := n.Route("BOM", "DEL")
	if r.CongestionLevel != 8 {
		t.Errorf("reverse CongestionLevel = %d, want 8", r.CongestionLevel)
	}

	// Dropping below the threshold clears membership.
	if err := n.UpdateCongestion("BOM", "DEL", 3); err != nil {
		t.Fatalf("UpdateCongestion() error = %v", err)
	}
	if n.IsCongested("DEL", "BOM") || n.IsCongested("BOM", "DEL") {
		t.Error("congested set not cleared after level drop")
	}
}

func TestUpdateWeather_SyncsBothDirections(t *testing.T) {
	n := triangle(t)

	if err := n.UpdateWeather("DEL", "BLR", true); err != nil {
		t.Fatalf("UpdateWeather() error = %v", err)
	}
	if !n.IsWeatherDisrupted("DEL", "BLR") || !n.IsWeatherDisrupted("BLR", "DEL") {
		t.Error("weather set not updated in both directions")
	}

	if err := n.UpdateWeather("BLR", "DEL", false); err != nil {
		t.Fatalf("UpdateWeather() error = %v", err)
	}
	if n.IsWeatherDisrupted("DEL", "BLR") {
		t.Error("weather set not cleared")
	}
}

func TestUpdatePair_RouteNotFound(t *testing.T) {
	n := triangle(t)
	if err := n.UpdateCongestion("BLR", "XXX", 8); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("UpdateCongestion() error = %v, want ErrRouteNotFound", err)
	}
	if err := n.UpdateWeather("XXX", "BLR", true); !errors.Is(err, ErrRouteNotFound) {
		t.Errorf("UpdateWeather() error = %v, want ErrRouteNotFound", err)
	}
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	n := triangle(t)

	var got []string
	for r := range n.Neighbors("DEL", NeighborFilter{}) {
		got = append(got, r.To)
	}
	want := []string{"BOM", "BLR"}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(DEL) yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(DEL)[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNeighbors_Filters(t *testing.T) {
	n := triangle(t)
	if err := n.UpdateCongestion("DEL", "BOM", 9); err != nil {
		t.Fatal(err)
	}
	if err := n.UpdateWeather("DEL", "BLR", true); err != nil {
		t.Fatal(err)
	}

	count := func(f NeighborFilter) int {
		c := 0
		for range n.Neighbors("DEL", f) {
			c++
		}
		return c
	}

	if got := count(NeighborFilter{}); got != 2 {
		t.Errorf("unfiltered neighbors = %d, want 2", got)
	}
	if got := count(NeighborFilter{AvoidCongestion: true}); got != 1 {
		t.Errorf("congestion-filtered neighbors = %d, want 1", got)
	}
	if got := count(NeighborFilter{AvoidWeather: true}); got != 1 {
		t.Errorf("weather-filtered neighbors = %d, want 1", got)
	}
	if got := count(NeighborFilter{AvoidCongestion: true, AvoidWeather: true}); got != 0 {
		t.Errorf("fully filtered neighbors = %d, want 0", got)
	}
}

func TestNeighbors_Restartable(t *testing.T) {
	n := triangle(t)
	seq := n.Neighbors("DEL", NeighborFilter{})

	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != second || first != 2 {
		t.Errorf("sequence not restartable: first pass %d, second pass %d", first, second)
	}
}

func TestNeighbors_UnknownCode(t *testing.T) {
	n := triangle(t)
	for r := range n.Neighbors("XXX", NeighborFilter{}) {
		t.Errorf("Neighbors(XXX) yielded %v, want nothing", r)
	}
}

func TestAirports_SortedByCode(t *testing.T) {
	n := triangle(t)
	got := n.Airports()
	want := []string{"BLR", "BOM", "DEL"}
	for i, a := range got {
		if a.Code != want[i] {
			t.Errorf("Airports()[%d] = %s, want %s", i, a.Code, want[i])
		}
	}
}

func TestSetWeatherAt(t *testing.T) {
	n := triangle(t)
	if err := n.SetWeatherAt("BLR", WeatherStorm); err != nil {
		t.Fatalf("SetWeatherAt() error = %v", err)
	}
	a, _ := n.Airport("BLR")
	if a.Weather != WeatherStorm {
		t.Errorf("Weather = %q, want %q", a.Weather, WeatherStorm)
	}
	if err := n.SetWeatherAt("XXX", WeatherClear); !errors.Is(err, ErrUnknownAirport) {
		t.Errorf("SetWeatherAt(XXX) error = %v, want ErrUnknownAirport", err)
	}
}

func TestMarkDecoy(t *testing.T) {
	n := triangle(t)
	if err := n.MarkDecoy("BLR"); err != nil {
		t.Fatalf("MarkDecoy() error = %v", err)
	}
	a, _ := n.Airport("BLR")
	if !a.Decoy {
		t.Error("Decoy flag not set")
	}
	if err := n.MarkDecoy("XXX"); !errors.Is(err, ErrUnknownAirport) {
		t.Errorf("MarkDecoy(XXX) error = %v, want ErrUnknownAirport", err)
	}
}

func TestRoute_Congested(t *testing.T) {
	tests := []struct {
		level int
		want  bool
	}{
		{0, false},
		{6, false},
		{7, true},
		{10, true},
	}
	for _, tt := range tests {
		r := Route{CongestionLevel: tt.level}
		if got := r.Congested(); got != tt.want {
			t.Errorf("Congested() with level %d = %t, want %t", tt.level, got, tt.want)
		}
	}
}
