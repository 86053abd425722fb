package projection

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/catalog"
)

// minChunk keeps tiny catalogs from being split into many goroutines.
const minChunk = 4096

// ProjectParallel is Project split across workers goroutines. The result is
// identical to Project, including order. workers <= 0 uses GOMAXPROCS.
func ProjectParallel(ctx context.Context, cat *catalog.Catalog, f astro.Frame, cutoff float64, workers int) ([]Point, error) {
	if cat == nil || len(cat.Stars) == 0 {
		return nil, ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	stars := cat.Stars
	chunk := (len(stars) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	nChunks := (len(stars) + chunk - 1) / chunk
	parts := make([][]Point, nChunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < nChunks; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(stars))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = projectRange(stars[lo:hi], lo, f, cutoff, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Point, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
