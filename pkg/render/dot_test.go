package render

import (
	"strings"
	"testing"

	"github.com/skyroute/skyroute/pkg/airnet"
	"github.com/skyroute/skyroute/pkg/geo"
)

func testNetwork(t *testing.T) *airnet.Network {
	t.Helper()
	n := airnet.New()
	airports := []*airnet.Airport{
		{Code: "DEL", Name: "Delhi", Position: geo.Coordinate{Lat: 28.6, Lon: 77.1}, Hub: true, RunwayLength: 4430},
		{Code: "BOM", Name: "Mumbai", Position: geo.Coordinate{Lat: 19.1, Lon: 72.9}, RunwayLength: 3660},
		{Code: "PAT", Name: "Patna", Position: geo.Coordinate{Lat: 25.6, Lon: 85.1}, RunwayLength: 2072},
	}
	for _, a := range airports {
		if err := n.AddAirport(a); err != nil {
			t.Fatalf("AddAirport(%s) error = %v", a.Code, err)
		}
	}
	if err := n.AddRoute("DEL", "BOM", 1400, 7, 8); err != nil {
		t.Fatal(err)
	}
	if err := n.AddRoute("DEL", "PAT", 850, 8, 0); err != nil {
		t.Fatal(err)
	}
	if err := n.UpdateWeather("DEL", "PAT", true); err != nil {
		t.Fatal(err)
	}
	if err := n.MarkDecoy("PAT"); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestToDOT_Structure(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{})

	if !strings.HasPrefix(dot, "graph airnet {") {
		t.Errorf("DOT does not open an undirected graph:\n%s", dot)
	}
	for _, code := range []string{`"DEL"`, `"BOM"`, `"PAT"`} {
		if !strings.Contains(dot, code) {
			t.Errorf("DOT missing node %s", code)
		}
	}
}

func TestToDOT_DrawsEachConnectionOnce(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{})

	if got := strings.Count(dot, `"BOM" -- "DEL"`); got != 1 {
		t.Errorf("edge BOM--DEL drawn %d times, want 1", got)
	}
	if strings.Contains(dot, `"DEL" -- "BOM"`) {
		t.Error("edge drawn in non-canonical orientation")
	}
}

func TestToDOT_StatusStyles(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{})

	if !strings.Contains(dot, "color=red") {
		t.Error("congested edge not styled red")
	}
	if !strings.Contains(dot, "color=steelblue") {
		t.Error("weather-disrupted edge not styled steelblue")
	}
	if !strings.Contains(dot, "fillcolor=lightyellow") {
		t.Error("hub node not filled lightyellow")
	}
	if !strings.Contains(dot, "fillcolor=mistyrose") {
		t.Error("decoy node not filled mistyrose")
	}
}

func TestToDOT_HighlightOverridesStatus(t *testing.T) {
	dot := ToDOT(testNetwork(t), Options{Highlight: []string{"DEL", "BOM"}})

	if !strings.Contains(dot, "color=forestgreen") {
		t.Error("highlighted edge not styled forestgreen")
	}
	// The highlighted DEL-BOM edge must no longer carry congestion styling.
	if strings.Contains(dot, "color=red") {
		t.Error("highlighted edge still styled as congested")
	}
	if !strings.Contains(dot, "fillcolor=palegreen") {
		t.Error("highlighted nodes not filled palegreen")
	}
}

func TestToDOT_DetailedLabels(t *testing.T) {
	plain := ToDOT(testNetwork(t), Options{})
	detailed := ToDOT(testNetwork(t), Options{Detailed: true})

	if strings.Contains(plain, "runway:") {
		t.Error("plain labels include runway detail")
	}
	if !strings.Contains(detailed, "runway: 4430m") {
		t.Error("detailed labels missing runway length")
	}
	if !strings.Contains(detailed, "weather: clear") {
		t.Error("detailed labels missing weather")
	}
}
