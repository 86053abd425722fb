package projection

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the spread of a projected cloud.
type Summary struct {
	Count     int
	Mean      [3]float64
	StdDev    [3]float64
	MinRadius float64
	MaxRadius float64
	// MeanRadius is the mean distance from the frame origin.
	MeanRadius float64
}

// Summarize computes per-axis statistics of points. Standard deviations are
// zero for fewer than two points.
func Summarize(points []Point) Summary {
	s := Summary{Count: len(points)}
	if len(points) == 0 {
		return s
	}

	axes := [3][]float64{
		make([]float64, len(points)),
		make([]float64, len(points)),
		make([]float64, len(points)),
	}
	radii := make([]float64, len(points))
	for i, p := range points {
		axes[0][i], axes[1][i], axes[2][i] = p.X, p.Y, p.Z
		radii[i] = p.Vec().Norm()
	}

	for k, xs := range axes {
		s.Mean[k] = stat.Mean(xs, nil)
		if len(xs) > 1 {
			s.StdDev[k] = stat.StdDev(xs, nil)
		}
	}
	s.MinRadius = floats.Min(radii)
	s.MaxRadius = floats.Max(radii)
	s.MeanRadius = stat.Mean(radii, nil)
	return s
}

// WriteSummary writes s as an aligned table.
func WriteSummary(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "points\t%d\n", s.Count)
	fmt.Fprintf(tw, "axis\tmean\tstddev\n")
	for k, name := range []string{"x", "y", "z"} {
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\n", name, s.Mean[k], s.StdDev[k])
	}
	fmt.Fprintf(tw, "radius\tmin %.4g\tmax %.4g\tmean %.4g\n", s.MinRadius, s.MaxRadius, s.MeanRadius)
	return tw.Flush()
}
