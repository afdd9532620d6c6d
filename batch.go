package imgdim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of sizing one path in a batch. Err is set per path;
// one unreadable file never poisons the rest of the batch.
type Result struct {
	Path   string
	Size   Size
	Format Format
	Err    error
}

// DetectAll sizes every path concurrently, at most limit files at a time
// (limit <= 0 means no cap). Results are returned in input order. The only
// error DetectAll itself returns is the context's, when it is canceled
// before the batch drains; per-file failures live in each Result.
func DetectAll(ctx context.Context, paths []string, limit int) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		i, path := i, path
		results[i].Path = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i].Size, results[i].Format, results[i].Err = Detect(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
