package batch

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/Kamar-Folarin/github-activity/internal/errors"
)

// Progress summarizes one fan-out run
type Progress struct {
	Total     int
	Succeeded int
	Failed    int
	Errors    []error
	StartTime time.Time
	Duration  time.Duration
}

// Processor runs a job for every item of a batch concurrently. A failed item
// is logged as a partial fetch and dropped; it never fails the batch.
type Processor struct {
	workers int
	logger  *logrus.Logger
}

// NewProcessor creates a new batch processor. A non-positive workers count
// runs every item at once.
func NewProcessor(workers int, logger *logrus.Logger) *Processor {
	return &Processor{
		workers: workers,
		logger:  logger,
	}
}

// Collect runs fn for every item and returns the successful results in input
// order. name labels an item in logs and partial fetch errors.
func Collect[T, R any](ctx context.Context, p *Processor, items []T, name func(T) string, fn func(ctx context.Context, item T) (R, error)) ([]R, Progress) {
	progress := Progress{
		Total:     len(items),
		StartTime: time.Now(),
	}
	if len(items) == 0 {
		return []R{}, progress
	}

	results := make([]R, len(items))
	ok := make([]bool, len(items))

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	if p.workers > 0 {
		g.SetLimit(p.workers)
	}

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			result, err := fn(ctx, item)
			if err != nil {
				partialErr := err
				if !apperrors.IsPartialFetch(err) {
					partialErr = apperrors.NewPartialFetchError(name(item), err)
				}
				p.logger.WithError(partialErr).WithField("item", name(item)).Warn("Dropping failed batch item")

				mu.Lock()
				progress.Failed++
				progress.Errors = append(progress.Errors, partialErr)
				mu.Unlock()
				return nil
			}

			results[i] = result
			ok[i] = true

			mu.Lock()
			progress.Succeeded++
			mu.Unlock()
			return nil
		})
	}
	// Jobs never return an error
	_ = g.Wait()

	collected := make([]R, 0, len(items))
	for i, result := range results {
		if ok[i] {
			collected = append(collected, result)
		}
	}

	progress.Duration = time.Since(progress.StartTime)
	return collected, progress
}
