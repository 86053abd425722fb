package main

import (
	"github.com/spf13/cobra"

	"github.com/ulysse71/milky-way/internal/projection"
)

func newProjectCmd(a *app) *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print galactic x y z for every star within the cutoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, points, err := a.project(cmd.Context())
			if err != nil {
				return err
			}
			if scale != 1 {
				points = projection.Scale(points, scale)
			}
			return projection.WriteXYZ(cmd.OutOrStdout(), points)
		},
	}
	cmd.Flags().Float64Var(&scale, "scale", 1, "multiply output coordinates by this factor")
	return cmd
}
