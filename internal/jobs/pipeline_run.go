// Package jobs defines River job types for async pipeline execution.
//
// Job args carry only the run id (claim-check pattern); everything else is
// read back from the database inside the worker, so a redelivered job always
// sees current state.
package jobs

import (
	"context"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/runtime"
)

// PipelineRunArgs carries only the pipeline run id.
type PipelineRunArgs struct {
	RunID string `json:"run_id"`
}

// Kind returns the job kind identifier for pipeline run execution.
func (PipelineRunArgs) Kind() string { return "pipeline_run_execute" }

// InsertOpts returns default insert options for pipeline run jobs. Unique by
// args and queue: while a run's job is pending, inserting it again is a
// no-op, which keeps fan-out dispatch idempotent.
func (PipelineRunArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// PipelineRunWorker drives one pipeline run to a terminal status.
//
// The worker is a thin shell over the runtime: it owns nothing but the
// transport. Business failures terminate the run inside ExecuteRun and
// return nil; only infrastructure errors propagate so River retries them.
type PipelineRunWorker struct {
	river.WorkerDefaults[PipelineRunArgs]
	runner *runtime.Runner
}

// NewPipelineRunWorker creates a PipelineRunWorker.
func NewPipelineRunWorker(runner *runtime.Runner) *PipelineRunWorker {
	return &PipelineRunWorker{runner: runner}
}

// Work executes the pipeline run.
func (w *PipelineRunWorker) Work(ctx context.Context, job *river.Job[PipelineRunArgs]) error {
	logger.Info("Processing pipeline run job",
		zap.String("run_id", job.Args.RunID),
		zap.Int64("attempt", int64(job.Attempt)),
	)
	return w.runner.ExecuteRun(ctx, job.Args.RunID)
}
