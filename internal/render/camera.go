// Package render draws projected star clouds from a movable camera.
package render

import (
	"fmt"
	"math"

	"github.com/ulysse71/milky-way/internal/astro"
)

// Viewer defaults.
const (
	AngleDelta = 0.02  // orbit and zoom step
	PanFactor  = 0.5   // fraction of the eye-center vector moved per pan
	FovY       = 45.0  // vertical field of view, degrees
	ZNear      = 0.1   // near clip distance
	ZFar       = 100.0 // far clip distance
)

// Action is a camera move.
type Action int

const (
	NoAction Action = iota
	PanIn
	PanOut
	OrbitLeft
	OrbitRight
	OrbitUp
	OrbitDown
	ZoomIn
	ZoomOut
)

var actionNames = map[Action]string{
	NoAction:   "none",
	PanIn:      "pan in",
	PanOut:     "pan out",
	OrbitLeft:  "orbit left",
	OrbitRight: "orbit right",
	OrbitUp:    "orbit up",
	OrbitDown:  "orbit down",
	ZoomIn:     "zoom in",
	ZoomOut:    "zoom out",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Camera looks from Eye at Center with +Y up.
type Camera struct {
	Eye    astro.Vec3
	Center astro.Vec3
}

// DefaultCamera sits 40 units down -Z looking at the origin.
func DefaultCamera() Camera {
	return Camera{Eye: astro.Vec3{Z: -40}}
}

// Basis returns the eye distance and an orthonormal basis: u points from the
// center to the eye, v is the screen right axis and w the screen up axis.
// The basis degenerates when the view direction is parallel to +Y.
func (c Camera) Basis() (dist float64, u, v, w astro.Vec3) {
	vec := c.Eye.Sub(c.Center)
	dist = vec.Norm()
	u = vec.Div(dist)
	v = astro.UnitY.Cross(u).Normalize()
	w = u.Cross(v)
	return dist, u, v, w
}

// Apply returns the camera after action a. Pans move the center along the
// view axis, orbits move the eye sideways by a fixed fraction of its
// distance, and zooms move the eye along the view axis.
func (c Camera) Apply(a Action) Camera {
	vec := c.Eye.Sub(c.Center)
	dist, _, v, w := c.Basis()

	switch a {
	case PanIn:
		c.Center = c.Center.Add(vec.Scale(PanFactor))
	case PanOut:
		c.Center = c.Center.Sub(vec.Scale(PanFactor))
	case OrbitRight:
		c.Eye = c.Eye.Sub(v.Scale(AngleDelta * dist))
	case OrbitLeft:
		c.Eye = c.Eye.Add(v.Scale(AngleDelta * dist))
	case OrbitDown:
		c.Eye = c.Eye.Add(w.Scale(AngleDelta * dist))
	case OrbitUp:
		c.Eye = c.Eye.Sub(w.Scale(AngleDelta * dist))
	case ZoomIn:
		c.Eye = c.Eye.Sub(vec.Scale(AngleDelta))
	case ZoomOut:
		c.Eye = c.Eye.Add(vec.Scale(AngleDelta))
	}
	return c
}

// Distance returns the eye to center distance.
func (c Camera) Distance() float64 {
	return c.Eye.Sub(c.Center).Norm()
}

func (c Camera) String() string {
	return fmt.Sprintf("dist %g cen [%g, %g, %g] eye [%g, %g, %g]",
		c.Distance(),
		c.Center.X, c.Center.Y, c.Center.Z,
		c.Eye.X, c.Eye.Y, c.Eye.Z)
}

// Screen is a projected position. X and Y are in pixels from the top-left
// corner; Depth is the distance along the view axis.
type Screen struct {
	X, Y    float64
	Depth   float64
	Visible bool
}

// ProjectToScreen applies a perspective projection with the given vertical
// field of view. Points outside the near/far range or the viewport are not
// visible.
func (c Camera) ProjectToScreen(p astro.Vec3, width, height int, fovDeg float64) Screen {
	if width <= 0 || height <= 0 {
		return Screen{}
	}
	_, u, v, w := c.Basis()
	rel := p.Sub(c.Eye)

	depth := -rel.Dot(u)
	if depth <= ZNear || depth >= ZFar {
		return Screen{Depth: depth}
	}

	aspect := float64(width) / float64(height)
	f := 1 / math.Tan(astro.DegToRad(fovDeg)/2)
	ndcX := f / aspect * rel.Dot(v) / depth
	ndcY := f * rel.Dot(w) / depth

	s := Screen{
		X:     (ndcX + 1) / 2 * float64(width),
		Y:     (1 - ndcY) / 2 * float64(height),
		Depth: depth,
	}
	s.Visible = ndcX >= -1 && ndcX < 1 && ndcY > -1 && ndcY <= 1
	return s
}
