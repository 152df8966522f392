package mobrank

import (
	"context"

	"github.com/Ehmachado/rel6500-go/pkg/mobrank/models"
	"golang.org/x/sync/errgroup"
)

// FileResult pairs an input path with its analysis.
type FileResult struct {
	Path   string                 `json:"path" yaml:"path"`
	Result *models.AnalysisResult `json:"result" yaml:"result"`
}

// AnalyzeFiles analyses independent spreadsheets in parallel, at most workers
// at a time (workers <= 0 means unbounded). Results keep the order of paths.
// Cancelling ctx stops scheduling; paths not yet started keep a nil Result and
// the context error is returned.
func AnalyzeFiles(ctx context.Context, paths []string, opts Options, workers int) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	for i, p := range paths {
		results[i].Path = p
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].Result = Analyze(p, opts)
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
