// SPDX-License-Identifier: MIT

package calibration

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/coordkit/transform"
)

// Job is one independent calibration profile to fit.
type Job struct {
	// ID labels the job in results and errors. Empty IDs are replaced with
	// a random UUID.
	ID      string
	Kind    transform.Kind
	Samples []Sample
}

// BatchResult pairs a job ID with its fit.
type BatchResult struct {
	ID string
	Result
}

// FitBatch fits every job concurrently, at most limit at a time
// (limit <= 0 means no bound). Results keep the order of jobs.
//
// Fits share no state; the options, including eps, apply to every job.
//
// Errors:
//   - ErrEmptyJobs when jobs is empty.
//   - The first Fit error, prefixed with the job ID. Jobs not yet started
//     when it occurs are skipped.
//   - ctx.Err() when ctx is cancelled before all jobs have started.
func FitBatch(ctx context.Context, jobs []Job, limit int, opts ...Option) ([]BatchResult, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("FitBatch: %w", ErrEmptyJobs)
	}
	log := gatherOptions(opts...).logger

	out := make([]BatchResult, len(jobs))
	for i, j := range jobs {
		out[i].ID = j.ID
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			id := out[i].ID
			res, err := Fit(jobs[i].Samples, jobs[i].Kind, opts...)
			if err != nil {
				return fmt.Errorf("FitBatch: job %s: %w", id, err)
			}
			log.V(1).Info("batch job done", "id", id, "kind", jobs[i].Kind.String())
			out[i].Result = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
