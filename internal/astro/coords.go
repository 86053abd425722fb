// Package astro provides the vector math and coordinate transformations used to
// place catalog stars in a galactic frame.
package astro

import (
	"math"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/unit"
)

// HoursToReal converts sexagesimal hours/minutes/seconds to decimal hours.
// Components are not range checked; minutes and seconds beyond 59 simply carry.
func HoursToReal(hours, minutes int, seconds float64) float64 {
	return unit.FromSexa(' ', hours, minutes, seconds)
}

// HoursToRad converts decimal hours of right ascension to radians.
func HoursToRad(hours float64) float64 {
	return hours * math.Pi / 12
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// SphericalToCartesian converts observer-centred equatorial coordinates
// (ra, dec in radians) at the given distance to Cartesian coordinates.
// +X points to ra=0 on the equator, +Z to the north celestial pole.
func SphericalToCartesian(ra, dec, dist float64) Vec3 {
	return Vec3{
		X: dist * math.Cos(ra) * math.Cos(dec),
		Y: dist * math.Sin(ra) * math.Cos(dec),
		Z: dist * math.Sin(dec),
	}
}

// GalacticLonLat returns the IAU galactic longitude and latitude in degrees for
// the given equatorial direction (radians). The IAU pole is defined for the
// B1950 equinox; catalog epochs are not corrected, so results for J2000 input
// are off by up to a fraction of a degree. It is used as a sanity reference for
// the frame built from the catalog's own reference points.
func GalacticLonLat(ra, dec float64) (lonDeg, latDeg float64) {
	l, b := coord.EqToGal(unit.RA(ra), unit.Angle(dec))
	lon := math.Mod(l.Deg(), 360)
	if lon < 0 {
		lon += 360
	}
	return lon, b.Deg()
}
