package projection

import (
	"bufio"
	"fmt"
	"io"
)

// WriteXYZ writes one "x  y  z" line per point.
func WriteXYZ(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g  %g  %g\n", p.X, p.Y, p.Z); err != nil {
			return fmt.Errorf("write points: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write points: %w", err)
	}
	return nil
}
