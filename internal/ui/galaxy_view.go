package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ulysse71/milky-way/internal/projection"
	"github.com/ulysse71/milky-way/internal/render"
	"github.com/ulysse71/milky-way/internal/spectrum"
)

const (
	// Star glyphs by lightness
	glyphStarBright = '✦'
	glyphStarMedium = '*'
	glyphStarDim    = '·'

	// Marker for the camera center when it is on screen
	glyphCenter = '+'
	colorCenter = "60" // muted purple

	colorBackground = "236" // very dark background

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2
)

// GalaxyViewModel renders the projected star cloud from the session camera.
type GalaxyViewModel struct {
	width  int
	height int
	fovY   float64

	camera render.Camera
	points []projection.Point

	// canvas caches the last render; the scene only changes on input.
	canvas  string
	visible int
}

// NewGalaxyViewModel creates a galaxy view with the given vertical field of view.
func NewGalaxyViewModel(fovY float64) GalaxyViewModel {
	if fovY <= 0 {
		fovY = render.FovY
	}
	return GalaxyViewModel{fovY: fovY, camera: render.DefaultCamera()}
}

// SetSize updates the viewport size.
func (m GalaxyViewModel) SetSize(width, height int) GalaxyViewModel {
	if width != m.width || height != m.height {
		m.width = width
		m.height = height
		m.canvas = ""
	}
	return m
}

// SetScene updates the camera and points to draw.
func (m GalaxyViewModel) SetScene(cam render.Camera, points []projection.Point) GalaxyViewModel {
	if cam != m.camera || !samePoints(points, m.points) {
		m.camera = cam
		m.points = points
		m.canvas = ""
	}
	return m
}

func samePoints(a, b []projection.Point) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// Visible returns the number of stars drawn in the last render.
func (m GalaxyViewModel) Visible() int {
	return m.visible
}

// Render draws the canvas if the scene changed since the last call.
func (m GalaxyViewModel) Render() GalaxyViewModel {
	if m.canvas == "" && m.width > 0 && m.height > 0 {
		m.canvas, m.visible = m.renderCanvas(m.width, m.height)
	}
	return m
}

// View returns the last rendered canvas.
func (m GalaxyViewModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.canvas == "" {
		m = m.Render()
	}
	return m.canvas
}

func (m GalaxyViewModel) renderCanvas(width, height int) (string, int) {
	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	depth := make([][]float64, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		depth[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = colorBackground
			depth[y][x] = math.Inf(1)
		}
	}

	// Mark the point the camera orbits around
	if s := m.camera.ProjectToScreen(m.camera.Center, width, height*cellAspect, m.fovY); s.Visible {
		if x, y := int(s.X), int(s.Y)/cellAspect; inBounds(x, y, width, height) {
			canvas[y][x] = glyphCenter
			colors[y][x] = colorCenter
		}
	}

	visible := 0
	for _, p := range m.points {
		if p.Color == spectrum.Black {
			continue
		}
		s := m.camera.ProjectToScreen(p.Vec(), width, height*cellAspect, m.fovY)
		if !s.Visible {
			continue
		}
		x, y := int(s.X), int(s.Y)/cellAspect
		if !inBounds(x, y, width, height) || s.Depth >= depth[y][x] {
			continue
		}
		if math.IsInf(depth[y][x], 1) {
			visible++
		}
		depth[y][x] = s.Depth
		canvas[y][x] = starGlyph(p.Color)
		colors[y][x] = lipgloss.Color(p.Color.Hex())
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		writeRow(&b, canvas[y], colors[y])
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String(), visible
}

func inBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// writeRow renders one canvas row, styling runs of equal color together.
func writeRow(b *strings.Builder, row []rune, colors []lipgloss.Color) {
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && colors[x] == colors[start] {
			continue
		}
		style := lipgloss.NewStyle().Foreground(colors[start])
		b.WriteString(style.Render(string(row[start:x])))
		start = x
	}
}

// starGlyph picks a glyph by the lightness of the star color.
func starGlyph(c spectrum.Color) rune {
	_, _, l := c.Colorful().Hsl()
	switch {
	case l > 0.5:
		return glyphStarBright
	case l > 0.2:
		return glyphStarMedium
	default:
		return glyphStarDim
	}
}

// describeScene summarizes the view for the status line.
func describeScene(visible, total int) string {
	return fmt.Sprintf("%d/%d stars on screen", visible, total)
}
