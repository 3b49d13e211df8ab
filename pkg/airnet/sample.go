package airnet

import "github.com/skyroute/skyroute/pkg/geo"

// SampleNetwork builds the fixed 20-airport demonstration network of major
// Indian airports. The data is deterministic: the same airports, routes,
// congestion grades and disruptions on every call, so CLI examples and
// tests behave reproducibly.
//
// PAT is marked as a decoy: it reports a medical facility that selection-time
// verification may reveal as unavailable.
func SampleNetwork() *Network {
	n := New()

	airports := []*Airport{
		{Code: "DEL", Name: "Indira Gandhi International", Position: geo.Coordinate{Lat: 28.5561, Lon: 77.0994}, Hub: true, RunwayLength: 4430, ControlTower: true, Facilities: []Facility{FacilityMedical, FacilityFireResponse, FacilityMaintenance, FacilityRefueling}},
		{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International", Position: geo.Coordinate{Lat: 19.0896, Lon: 72.8656}, Hub: true, RunwayLength: 3660, ControlTower: true, Facilities: []Facility{FacilityMedical, FacilityFireResponse, FacilityMaintenance, FacilityRefueling}, Weather: WeatherRain},
		{Code: "BLR", Name: "Kempegowda International", Position: geo.Coordinate{Lat: 13.1986, Lon: 77.7066}, Hub: true, RunwayLength: 4000, ControlTower: true, Facilities: []Facility{FacilityMedical, FacilityFireResponse, FacilityMaintenance, FacilityRefueling}, Weather: WeatherFog},
		{Code: "MAA", Name: "Chennai International", Position: geo.Coordinate{Lat: 12.9941, Lon: 80.1709}, Hub: true, RunwayLength: 3658, ControlTower: true, Facilities: []Facility{FacilityMedical, FacilityFireResponse, FacilityMaintenance, FacilityRefueling}},
		{Code: "HYD", Name: "Rajiv Gandhi International", Position: geo.Coordinate{Lat: 17.2403, Lon: 78.4294}, Hub: true, RunwayLength: 4260, ControlTower: true, Facilities: []Facility{FacilityMedical, FacilityFireResponse, FacilityMaintenance, FacilityRefueling}},
		{Code: "CCU", Name: "Netaji Subhas Chandra Bose International", Position: geo.Coordinate{Lat: 22.6520, Lon: 88.4467}, RunwayLength: 3627, ControlTower: true, Facilities: []Facility{FacilityRefueling, FacilityMedical}},
		{Code: "AMD", Name: "Sardar Vallabhbhai Patel International", Position: geo.Coordinate{Lat: 23.0747, Lon: 72.6342}, RunwayLength: 3505, ControlTower: true, Facilities: []Facility{FacilityMaintenance, FacilityRefueling}},
		{Code: "PNQ", Name: "Pune International", Position: geo.Coordinate{Lat: 18.5793, Lon: 73.9089}, RunwayLength: 2530, ControlTower: true, Facilities: []Facility{FacilityRefueling}},
		{Code: "COK", Name: "Cochin International", Position: geo.Coordinate{Lat: 10.1520, Lon: 76.3920}, RunwayLength: 3400, ControlTower: true, Facilities: []Facility{FacilityMaintenance}},
		{Code: "GOI", Name: "Goa International", Position: geo.Coordinate{Lat: 15.3808, Lon: 73.8314}, RunwayLength: 3400, ControlTower: true, Facilities: []Facility{FacilityRefueling, FacilityFireResponse}},
		{Code: "JAI", Name: "Jaipur International", Position: geo.Coordinate{Lat: 26.8242, Lon: 75.8122}, RunwayLength: 2796, ControlTower: true, Facilities: []Facility{FacilityRefueling}},
		{Code: "LUH", Name: "Ludhiana Airport", Position: geo.Coordinate{Lat: 30.8547, Lon: 75.9526}, RunwayLength: 1463, Facilities: nil},
		{Code: "IXC", Name: "Chandigarh International", Position: geo.Coordinate{Lat: 30.6735, Lon: 76.7885}, RunwayLength: 3200, ControlTower: true, Facilities: []Facility{FacilityRefueling}},
		{Code: "VNS", Name: "Lal Bahadur Shastri International", Position: geo.Coordinate{Lat: 25.4524, Lon: 82.8593}, RunwayLength: 2745, ControlTower: true, Facilities: nil},
		{Code: "PAT", Name: "Jay Prakash Narayan International", Position: geo.Coordinate{Lat: 25.5913, Lon: 85.0880}, RunwayLength: 2072, ControlTower: true, Facilities: []Facility{FacilityMaintenance, FacilityMedical}},
		{Code: "LKO", Name: "Chaudhary Charan Singh International", Position: geo.Coordinate{Lat: 26.7606, Lon: 80.8893}, RunwayLength: 2744, ControlTower: true, Facilities: []Facility{FacilityRefueling}},
		{Code: "BBI", Name: "Biju Patnaik International", Position: geo.Coordinate{Lat: 20.2444, Lon: 85.8178}, RunwayLength: 2743, ControlTower: true, Facilities: nil},
		{Code: "IXB", Name: "Bagdogra Airport", Position: geo.Coordinate{Lat: 26.6812, Lon: 88.3286}, RunwayLength: 2743, ControlTower: true, Facilities: []Facility{FacilityMaintenance}, Weather: WeatherDenseFog},
		{Code: "TRV", Name: "Trivandrum International", Position: geo.Coordinate{Lat: 8.4784, Lon: 76.9200}, RunwayLength: 3397, ControlTower: true, Facilities: nil},
		{Code: "IXM", Name: "Madurai International", Position: geo.Coordinate{Lat: 9.8322, Lon: 78.0934}, RunwayLength: 2286, ControlTower: true, Facilities: nil},
	}
	for _, a := range airports {
		if err := n.AddAirport(a); err != nil {
			panic(err) // fixed data, cannot fail
		}
	}

	routes := []struct {
		from, to   string
		distanceKm float64
		efficiency float64
		congestion int
	}{
		{"DEL", "JAI", 260, 8, 2},
		{"DEL", "BLR", 1700, 7, 8}, // congested
		{"DEL", "MAA", 2200, 8, 3},
		{"DEL", "BOM", 1400, 7, 4},
		{"DEL", "LKO", 500, 9, 1},
		{"DEL", "IXC", 250, 9, 2},
		{"BOM", "GOI", 450, 8, 3},
		{"BOM", "PNQ", 150, 9, 5},
		{"BOM", "AMD", 530, 8, 2},
		{"BOM", "HYD", 710, 7, 8}, // congested
		{"BLR", "HYD", 570, 8, 3},
		{"BLR", "CCU", 1900, 7, 1},
		{"BLR", "MAA", 350, 9, 4},
		{"MAA", "COK", 600, 8, 9}, // congested
		{"MAA", "TRV", 620, 8, 2},
		{"HYD", "VNS", 1200, 6, 1},
		{"HYD", "PNQ", 850, 7, 3},
		{"HYD", "CCU", 1500, 7, 2},
		{"CCU", "IXB", 500, 9, 1},
		{"CCU", "BBI", 450, 8, 2},
		{"CCU", "PAT", 600, 8, 1},
		{"AMD", "PNQ", 550, 7, 8}, // congested
		{"PNQ", "GOI", 450, 8, 2},
		{"COK", "TRV", 220, 9, 1},
		{"LKO", "BBI", 950, 7, 0},
		{"IXC", "LUH", 150, 9, 1},
		{"VNS", "PAT", 250, 9, 0},
		{"TRV", "IXM", 320, 8, 1},
	}
	for _, r := range routes {
		if err := n.AddRoute(r.from, r.to, r.distanceKm, r.efficiency, r.congestion); err != nil {
			panic(err)
		}
	}

	for _, p := range [][2]string{{"CCU", "BBI"}, {"HYD", "VNS"}, {"BLR", "CCU"}} {
		if err := n.UpdateWeather(p[0], p[1], true); err != nil {
			panic(err)
		}
	}

	if err := n.MarkDecoy("PAT"); err != nil {
		panic(err)
	}

	return n
}
