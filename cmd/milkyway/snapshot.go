package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/projection"
	"github.com/ulysse71/milky-way/internal/render"
)

func newSnapshotCmd(a *app) *cobra.Command {
	var (
		out           string
		width, height int
		eye, center   []float64
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the star cloud to a PNG, JPEG or TIFF image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := render.FormatFromPath(out); err != nil {
				return err
			}
			cam := render.DefaultCamera()
			var err error
			if cam.Eye, err = vecFlag("eye", eye, cam.Eye); err != nil {
				return err
			}
			if cam.Center, err = vecFlag("center", center, cam.Center); err != nil {
				return err
			}
			if width <= 0 {
				width = a.cfg.Snapshot.Width
			}
			if height <= 0 {
				height = a.cfg.Snapshot.Height
			}

			_, _, points, err := a.project(cmd.Context())
			if err != nil {
				return err
			}
			img := render.RenderImage(projection.Scale(points, a.cfg.Scale), cam, width, height)
			if err := render.WriteImage(out, img); err != nil {
				return err
			}
			a.log.Info("wrote %dx%d snapshot to %s (%s)", width, height, out, cam)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "milkyway.png", "output image (.png, .jpg, .tiff)")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels (default from config)")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels (default from config)")
	cmd.Flags().Float64SliceVar(&eye, "eye", nil, "camera position x,y,z in display units")
	cmd.Flags().Float64SliceVar(&center, "center", nil, "camera target x,y,z in display units")
	return cmd
}

func vecFlag(name string, xs []float64, def astro.Vec3) (astro.Vec3, error) {
	switch len(xs) {
	case 0:
		return def, nil
	case 3:
		return astro.Vec3{X: xs[0], Y: xs[1], Z: xs[2]}, nil
	default:
		return def, fmt.Errorf("--%s needs 3 values, got %d", name, len(xs))
	}
}
