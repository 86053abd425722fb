package main

import (
	"github.com/spf13/cobra"

	"github.com/ulysse71/milky-way/internal/catalog"
)

func newDumpCmd(a *app) *cobra.Command {
	var xy bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the catalog as loaded",
		Long: `Print ra, dec (radians) and distance for every catalog star. With --xy,
print a flat side view instead: the equatorial x coordinate against height
above the celestial equator.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			if xy {
				return catalog.WriteXY(cmd.OutOrStdout(), cat)
			}
			return catalog.WriteDump(cmd.OutOrStdout(), cat)
		},
	}
	cmd.Flags().BoolVar(&xy, "xy", false, "print x and height pairs")
	return cmd
}
