// Package catalog loads HYG-style star catalogs.
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Stats describes a catalog load.
type Stats struct {
	Rows    int // data lines turned into stars
	Skipped int // empty and comment lines
}

// Catalog is an ordered, read-only star list.
type Catalog struct {
	Stars []Star
	Stats Stats
}

// Len returns the number of stars.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Stars)
}

// WriteDump writes "ra dec dist" for every star, angles in radians.
func WriteDump(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	for _, s := range c.Stars {
		if _, err := fmt.Fprintf(bw, "ra %12.10g dec %12.10g dist %12.10g\n", s.RA, s.Dec, s.Dist); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
	}
	return bw.Flush()
}

// WriteXY writes a flat side view of the catalog: the equatorial X coordinate
// against height above the celestial equator.
func WriteXY(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	for _, s := range c.Stars {
		x := s.Dist * math.Cos(s.RA) * math.Cos(s.Dec)
		y := s.Dist * math.Sin(s.Dec)
		if _, err := fmt.Fprintf(bw, "%g %g\n", x, y); err != nil {
			return fmt.Errorf("dump xy: %w", err)
		}
	}
	return bw.Flush()
}
