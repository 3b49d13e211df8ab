package geo

import (
	"errors"
	"math"
	"testing"
	"time"
)

var (
	delhi  = Coordinate{Lat: 28.5561, Lon: 77.0994}
	mumbai = Coordinate{Lat: 19.0896, Lon: 72.8656}
)

func TestDistance_KnownPair(t *testing.T) {
	d, err := Distance(delhi, mumbai)
	if err != nil {
		t.Fatalf("Distance() error = %v", err)
	}
	// Great-circle Delhi-Mumbai is about 1138 km.
	if d < 1120 || d > 1155 {
		t.Errorf("Distance(DEL, BOM) = %.1f km, want ~1138", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	ab, err := Distance(delhi, mumbai)
	if err != nil {
		t.Fatalf("Distance() error = %v", err)
	}
	ba, err := Distance(mumbai, delhi)
	if err != nil {
		t.Fatalf("Distance() error = %v", err)
	}
	if ab != ba {
		t.Errorf("Distance not symmetric: %.6f vs %.6f", ab, ba)
	}
}

func TestDistance_ZeroIffEqual(t *testing.T) {
	d, err := Distance(delhi, delhi)
	if err != nil {
		t.Fatalf("Distance() error = %v", err)
	}
	if d != 0 {
		t.Errorf("Distance(p, p) = %.6f, want 0", d)
	}

	near := Coordinate{Lat: delhi.Lat + 0.001, Lon: delhi.Lon}
	d, err = Distance(delhi, near)
	if err != nil {
		t.Fatalf("Distance() error = %v", err)
	}
	if d <= 0 {
		t.Errorf("Distance(p, q) = %.6f for distinct points, want > 0", d)
	}
}

func TestDistance_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		a, b Coordinate
	}{
		{"lat too high", Coordinate{Lat: 91}, mumbai},
		{"lat too low", Coordinate{Lat: -91}, mumbai},
		{"lon too high", delhi, Coordinate{Lon: 181}},
		{"lon too low", delhi, Coordinate{Lon: -181}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Distance(tt.a, tt.b); !errors.Is(err, ErrInvalidCoordinate) {
				t.Errorf("Distance() error = %v, want ErrInvalidCoordinate", err)
			}
		})
	}
}

func TestCoordinate_ValidateBoundary(t *testing.T) {
	edge := Coordinate{Lat: 90, Lon: -180}
	if err := edge.Validate(); err != nil {
		t.Errorf("Validate() = %v for boundary coordinate, want nil", err)
	}
}

func TestEstimateFuel(t *testing.T) {
	got, err := EstimateFuel(1400, 7)
	if err != nil {
		t.Fatalf("EstimateFuel() error = %v", err)
	}
	if got != 200 {
		t.Errorf("EstimateFuel(1400, 7) = %.1f, want 200", got)
	}
}

func TestEstimateFuel_InvalidEfficiency(t *testing.T) {
	for _, eff := range []float64{0, -1} {
		if _, err := EstimateFuel(100, eff); !errors.Is(err, ErrInvalidEfficiency) {
			t.Errorf("EstimateFuel(100, %.0f) error = %v, want ErrInvalidEfficiency", eff, err)
		}
	}
}

func TestDelayFactor(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{-3, 1.0}, // clamped
		{0, 1.0},
		{5, 1.5},
		{10, 2.0},
		{15, 2.0}, // clamped
	}
	for _, tt := range tests {
		if got := DelayFactor(tt.level); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DelayFactor(%d) = %.2f, want %.2f", tt.level, got, tt.want)
		}
	}
}

func TestEstimateTravelTime(t *testing.T) {
	got, err := EstimateTravelTime(850, 850, 0)
	if err != nil {
		t.Fatalf("EstimateTravelTime() error = %v", err)
	}
	if got != time.Hour {
		t.Errorf("EstimateTravelTime(850, 850, 0) = %v, want 1h", got)
	}

	got, err = EstimateTravelTime(850, 850, 10)
	if err != nil {
		t.Fatalf("EstimateTravelTime() error = %v", err)
	}
	if got != 2*time.Hour {
		t.Errorf("EstimateTravelTime(850, 850, 10) = %v, want 2h", got)
	}
}

func TestEstimateTravelTime_InvalidSpeed(t *testing.T) {
	if _, err := EstimateTravelTime(100, 0, 0); !errors.Is(err, ErrInvalidSpeed) {
		t.Errorf("EstimateTravelTime() error = %v, want ErrInvalidSpeed", err)
	}
}
