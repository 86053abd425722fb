// Package projection maps catalog stars into a galactic frame.
package projection

import (
	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/catalog"
	"github.com/ulysse71/milky-way/internal/spectrum"
)

// DefaultCutoff is the distance from the galactic center, in catalog units,
// beyond which stars are dropped.
const DefaultCutoff = 50000

// Point is a projected star.
type Point struct {
	X, Y, Z float64
	Color   spectrum.Color
	Index   int // position in the source catalog
}

// Vec returns the point's coordinates.
func (p Point) Vec() astro.Vec3 {
	return astro.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Project returns the frame coordinates of every star closer than cutoff to
// the frame origin, in catalog order.
func Project(cat *catalog.Catalog, f astro.Frame, cutoff float64) []Point {
	if cat == nil {
		return nil
	}
	return projectRange(cat.Stars, 0, f, cutoff, nil)
}

// projectRange appends the projections of stars to dst. base is the catalog
// index of stars[0].
func projectRange(stars []catalog.Star, base int, f astro.Frame, cutoff float64, dst []Point) []Point {
	for i, s := range stars {
		p, ok := projectStar(s, f, cutoff)
		if !ok {
			continue
		}
		p.Index = base + i
		dst = append(dst, p)
	}
	return dst
}

func projectStar(s catalog.Star, f astro.Frame, cutoff float64) (Point, bool) {
	pos := s.Position()
	if f.Offset(pos).Norm() >= cutoff {
		return Point{}, false
	}
	v := f.Project(pos)
	return Point{X: v.X, Y: v.Y, Z: v.Z, Color: s.Color()}, true
}

// Scale returns a copy of points with coordinates multiplied by factor.
func Scale(points []Point, factor float64) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		p.X *= factor
		p.Y *= factor
		p.Z *= factor
		out[i] = p
	}
	return out
}
