package astro

// ReferencePoint is a fixed sky position given the way catalogs quote it:
// right ascension in sexagesimal hours, declination in degrees.
type ReferencePoint struct {
	Name    string  `yaml:"name" mapstructure:"name"`
	RAHours int     `yaml:"ra_hours" mapstructure:"ra_hours"`
	RAMin   int     `yaml:"ra_min" mapstructure:"ra_min"`
	RASec   float64 `yaml:"ra_sec" mapstructure:"ra_sec"`
	DecDeg  float64 `yaml:"dec_deg" mapstructure:"dec_deg"`
	Dist    float64 `yaml:"dist" mapstructure:"dist"` // catalog distance units
}

// RA returns the right ascension in radians.
func (p ReferencePoint) RA() float64 {
	return HoursToRad(HoursToReal(p.RAHours, p.RAMin, p.RASec))
}

// Dec returns the declination in radians.
func (p ReferencePoint) Dec() float64 {
	return DegToRad(p.DecDeg)
}

// Position returns the Cartesian position in the observer-centred equatorial frame.
func (p ReferencePoint) Position() Vec3 {
	return SphericalToCartesian(p.RA(), p.Dec(), p.Dist)
}

// Default reference points.
var (
	// Sun is the observer at the origin.
	Sun = ReferencePoint{Name: "Sun"}

	// GalacticCenter is Sgr A* (J2000), 8.2 kpc.
	GalacticCenter = ReferencePoint{
		Name:    "Galactic Center",
		RAHours: 17, RAMin: 45, RASec: 6,
		DecDeg: -28.94,
		Dist:   8.2e3,
	}

	// GalacticNorthPole is placed far enough that its direction from the
	// galactic center is effectively the pole direction.
	GalacticNorthPole = ReferencePoint{
		Name:    "Galactic North Pole",
		RAHours: 12, RAMin: 51, RASec: 4,
		DecDeg: 27.13,
		Dist:   1e7,
	}
)

// Frame is a galactic Cartesian basis anchored at the galactic center.
//
// U points from the center toward the observer, W toward the north pole and
// V = W × U. W is not re-orthogonalized against U and V is not renormalized, so
// the basis is only as orthogonal as the reference geometry; see Skew.
type Frame struct {
	Origin Vec3
	U      Vec3
	V      Vec3
	W      Vec3
}

// NewFrame builds the frame from the observer, galactic center and north pole
// positions, all in the same Cartesian space as star positions.
func NewFrame(observer, center, pole Vec3) Frame {
	u := observer.Sub(center).Normalize()
	w := pole.Sub(center).Normalize()
	return Frame{
		Origin: center,
		U:      u,
		V:      w.Cross(u),
		W:      w,
	}
}

// NewFrameFromReferences builds a frame from catalog-style reference points.
func NewFrameFromReferences(observer, center, pole ReferencePoint) Frame {
	return NewFrame(observer.Position(), center.Position(), pole.Position())
}

// DefaultFrame returns the frame for the Sun, Sgr A* and the galactic north pole.
func DefaultFrame() Frame {
	return NewFrameFromReferences(Sun, GalacticCenter, GalacticNorthPole)
}

// Skew returns U · W. It is zero only when the reference geometry is exactly
// orthogonal.
func (f Frame) Skew() float64 {
	return f.U.Dot(f.W)
}

// Offset returns p relative to the frame origin, still in the source axes.
func (f Frame) Offset(p Vec3) Vec3 {
	return p.Sub(f.Origin)
}

// Project expresses p in frame coordinates.
func (f Frame) Project(p Vec3) Vec3 {
	sp := f.Offset(p)
	return Vec3{X: sp.Dot(f.U), Y: sp.Dot(f.V), Z: sp.Dot(f.W)}
}
