package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"waterline.io/waterline/internal/pkg/logger"
)

// RiverDispatcher hands queued pipeline runs to River. It satisfies the
// runtime's dispatcher contract so the runner stays queue-agnostic.
type RiverDispatcher struct {
	client *river.Client[pgx.Tx]
}

// NewRiverDispatcher creates a RiverDispatcher.
func NewRiverDispatcher(client *river.Client[pgx.Tx]) *RiverDispatcher {
	return &RiverDispatcher{client: client}
}

// DispatchRun inserts the execution job for a run. A duplicate insert while
// the run's job is still pending is skipped by the unique constraint.
func (d *RiverDispatcher) DispatchRun(ctx context.Context, runID string) error {
	res, err := d.client.Insert(ctx, PipelineRunArgs{RunID: runID}, nil)
	if err != nil {
		return fmt.Errorf("insert pipeline run job for %s: %w", runID, err)
	}
	if res.UniqueSkippedAsDuplicate {
		logger.Info("Pipeline run job already queued, skipped duplicate insert",
			zap.String("run_id", runID),
		)
	}
	return nil
}
