// Package spectrum maps Harvard spectral classes to display colors and
// magnitudes.
package spectrum

import (
	"errors"
	"fmt"
	"math"
)

// Class is a Harvard spectral class.
type Class int

const (
	Unknown Class = iota
	O
	B
	A
	F
	G
	K
	M
)

// ErrNoMagnitude is returned when a class has no defined color magnitude.
var ErrNoMagnitude = errors.New("spectrum: no magnitude for class")

var classNames = [...]string{
	Unknown: "?",
	O:       "O",
	B:       "B",
	A:       "A",
	F:       "F",
	G:       "G",
	K:       "K",
	M:       "M",
}

var classColors = [...]Color{
	Unknown: Black,
	O:       {0x00, 0x66, 0xff},
	B:       {0x33, 0x99, 0xff},
	A:       {0xcc, 0xff, 0xff},
	F:       {0xff, 0xff, 0xff},
	G:       {0xff, 0xcc, 0x33},
	K:       {0xff, 0x66, 0x00},
	M:       {0xff, 0x00, 0x00},
}

// Classes lists the known classes from hottest to coolest.
var Classes = []Class{O, B, A, F, G, K, M}

// Classify returns the class named by the first character of a spectral code
// such as "G2V" or "K5III". Anything unrecognized, including an empty code, is
// Unknown.
func Classify(code string) Class {
	if code == "" {
		return Unknown
	}
	switch code[0] {
	case 'O':
		return O
	case 'B':
		return B
	case 'A':
		return A
	case 'F':
		return F
	case 'G':
		return G
	case 'K':
		return K
	case 'M':
		return M
	}
	return Unknown
}

func (c Class) valid() bool {
	return c >= Unknown && int(c) < len(classNames)
}

func (c Class) String() string {
	if !c.valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Color returns the canonical display color of the class. Unknown and out of
// range classes are black.
func (c Class) Color() Color {
	if !c.valid() {
		return Black
	}
	return classColors[c]
}

// Magnitude returns the Euclidean norm of the class color in 0-255 units.
func (c Class) Magnitude() (float64, error) {
	if c == Unknown || !c.valid() {
		return 0, fmt.Errorf("%w %v", ErrNoMagnitude, c)
	}
	col := classColors[c]
	r, g, b := float64(col.R), float64(col.G), float64(col.B)
	return math.Sqrt(r*r + g*g + b*b), nil
}

// MustMagnitude is like Magnitude but panics on error.
func (c Class) MustMagnitude() float64 {
	m, err := c.Magnitude()
	if err != nil {
		panic(err)
	}
	return m
}
