package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/projection"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the projected star cloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, f, points, err := a.project(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog\t%d stars, %d lines skipped\n", cat.Len(), cat.Stats.Skipped)
			fmt.Fprintf(out, "frame\tu.w %.3g\n", f.Skew())

			// Cross-check the frame axes against the IAU galactic system.
			center := a.cfg.Frame.Center
			pole := a.cfg.Frame.Pole
			cl, cb := astro.GalacticLonLat(center.RA(), center.Dec())
			_, pb := astro.GalacticLonLat(pole.RA(), pole.Dec())
			fmt.Fprintf(out, "iau\tcenter l=%.2f b=%.2f, pole b=%.2f\n\n", cl, cb, pb)

			return projection.WriteSummary(out, projection.Summarize(points))
		},
	}
}
