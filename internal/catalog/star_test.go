package catalog

import (
	"math"
	"testing"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/spectrum"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecNear(a, b astro.Vec3, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

func TestNewStar_Units(t *testing.T) {
	s := NewStar(6, 45, 10, 1.5, "K3III")

	if !near(s.RA, math.Pi/2, 1e-12) {
		t.Errorf("RA = %v, want π/2", s.RA)
	}
	if !near(s.Dec, math.Pi/4, 1e-12) {
		t.Errorf("Dec = %v, want π/4", s.Dec)
	}
	if s.Dist != 10 || s.AbsMag != 1.5 {
		t.Errorf("Dist, AbsMag = %v, %v", s.Dist, s.AbsMag)
	}
	if s.Class != spectrum.K {
		t.Errorf("Class = %v, want K", s.Class)
	}
}

func TestStarPosition(t *testing.T) {
	const d = 25.0

	tests := []struct {
		name    string
		raHours float64
		decDeg  float64
		want    astro.Vec3
	}{
		{"ra 0 dec 0", 0, 0, astro.Vec3{X: d}},
		{"ra 6h dec 0", 6, 0, astro.Vec3{Y: d}},
		{"north pole", 0, 90, astro.Vec3{Z: d}},
		{"north pole other ra", 17.3, 90, astro.Vec3{Z: d}},
		{"ra 12h", 12, 0, astro.Vec3{X: -d}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStar(tt.raHours, tt.decDeg, d, 0, "G").Position()
			if !vecNear(got, tt.want, 1e-9) {
				t.Errorf("Position() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStarColor(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		absMag float64
		want   spectrum.Color
	}{
		{"unknown is black", "X", -10, spectrum.Black},
		{"empty code is black", "", 0, spectrum.Black},
		{"G at -3", "G2V", -3, spectrum.Color{R: 98, G: 79, B: 19}},
		{"G at 4.2", "G5", 4.2, spectrum.Color{R: 48, G: 38, B: 9}},
		{"O at 0", "O9", 0, spectrum.Color{R: 0, G: 35, B: 88}},
		{"bright M wraps", "M0", -20, spectrum.Color{R: 188}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStar(0, 0, 1, tt.absMag, tt.code).Color()
			if got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}
