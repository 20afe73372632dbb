package octree

import (
	"context"
	"runtime"

	"github.com/golang/geo/r3"
	"golang.org/x/sync/errgroup"
)

// TestBatch runs Test for every position, splitting the work across at most workers goroutines
// (GOMAXPROCS when workers <= 0). The result is in the same order as positions.
func (o *ProbeOctree) TestBatch(ctx context.Context, positions []r3.Vector, workers int) ([]*Node, error) {
	if o.state != built {
		return nil, ErrNotBuilt
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	leaves := make([]*Node, len(positions))
	if len(positions) == 0 {
		return leaves, nil
	}

	chunk := (len(positions) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(positions); start += chunk {
		end := start + chunk
		if end > len(positions) {
			end = len(positions)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				leaf, err := o.Test(positions[i])
				if err != nil {
					return err
				}
				leaves[i] = leaf
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return leaves, nil
}
