package catalog

import (
	"math"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/spectrum"
)

// Star is a single catalog entry. RA and Dec are in radians, Dist in catalog
// distance units.
type Star struct {
	RA     float64
	Dec    float64
	Dist   float64
	AbsMag float64
	Class  spectrum.Class
}

// NewStar builds a Star from catalog units: right ascension in decimal hours
// and declination in degrees.
func NewStar(raHours, decDeg, dist, absMag float64, code string) Star {
	return Star{
		RA:     astro.HoursToRad(raHours),
		Dec:    astro.DegToRad(decDeg),
		Dist:   dist,
		AbsMag: absMag,
		Class:  spectrum.Classify(code),
	}
}

// Position returns the Cartesian position in the observer-centred equatorial
// frame.
func (s Star) Position() astro.Vec3 {
	return astro.SphericalToCartesian(s.RA, s.Dec, s.Dist)
}

// Color returns the display color: the class color dimmed or brightened by
// absolute magnitude. Stars of unknown class are black.
func (s Star) Color() spectrum.Color {
	mag, err := s.Class.Magnitude()
	if err != nil {
		return spectrum.Black
	}
	return s.Class.Color().Scale(brightness(s.AbsMag) / mag)
}

// brightness is the target color magnitude for a star of the given absolute
// magnitude; a star of magnitude -3 gets 128.
func brightness(absMag float64) float64 {
	return 128 * math.Exp((-3-absMag)/10)
}
