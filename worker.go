package gridastar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SearchAll searches every grid independently, at most NumberOfWorkers at a
// time. Results are index-aligned with grids. The first error cancels the
// remaining searches.
func SearchAll(ctx context.Context, grids []*Grid, options ...Option) ([]Result, error) {
	searchOptions := applyOptions(options)
	results := make([]Result, len(grids))

	group, groupContext := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, grid := range grids {
		group.Go(func() error {
			result, err := Search(groupContext, grid, options...)
			if err != nil {
				return fmt.Errorf("grid %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
