package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ulysse71/milky-way/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "milkyway v%s\n", version.Version)
		},
	}
}
