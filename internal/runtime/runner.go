// Package runtime drives pipeline runs: the step loop, freshness
// short-circuit, context accumulation, entity writes, fan-out, and the
// submission status rollup. The runtime branches on envelope shape only,
// never on operation identity.
package runtime

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/pkg/worker"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/store"
)

// Dispatcher hands a queued run to the task backend. The runtime never talks
// to the queue directly; dispatch is an injected collaborator so tests can
// run pipelines inline.
type Dispatcher interface {
	DispatchRun(ctx context.Context, runID string) error
}

// Runner executes pipeline runs to a terminal status.
type Runner struct {
	client     *ent.Client
	registry   *registry.Registry
	entities   *store.EntityStore
	dispatcher Dispatcher
	pools      *worker.Pools
	metrics    *metrics.Metrics
	cfg        config.PipelineConfig
}

// NewRunner creates a Runner. Fan-out child dispatch runs detached on the
// general pool.
func NewRunner(
	client *ent.Client,
	reg *registry.Registry,
	entities *store.EntityStore,
	dispatcher Dispatcher,
	pools *worker.Pools,
	m *metrics.Metrics,
	cfg config.PipelineConfig,
) *Runner {
	return &Runner{
		client:     client,
		registry:   reg,
		entities:   entities,
		dispatcher: dispatcher,
		pools:      pools,
		metrics:    m,
		cfg:        cfg,
	}
}

// ExecuteRun drives one pipeline run from its current position to a terminal
// status.
//
// Dispatch is at-least-once, so the run is reloaded first and a terminal
// status short-circuits to a no-op. Transient infrastructure errors are
// returned (the dispatcher retries); business failures land as run status
// FAILED with a nil return so the job is not retried.
func (r *Runner) ExecuteRun(ctx context.Context, runID string) error {
	run, err := r.client.PipelineRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			logger.Warn("Pipeline run vanished before execution", zap.String("run_id", runID))
			return nil
		}
		return fmt.Errorf("load pipeline run %s: %w", runID, err)
	}

	if domain.RunStatus(run.Status).Terminal() {
		logger.Info("Pipeline run already terminal, skipping duplicate execution",
			zap.String("run_id", runID),
			zap.String("status", string(run.Status)),
		)
		return nil
	}

	sub, err := run.QuerySubmission().Only(ctx)
	if err != nil {
		return fmt.Errorf("load submission for run %s: %w", runID, err)
	}

	if sub.CancelRequested {
		return r.finishRun(ctx, run, sub.ID, domain.RunSkipped, "submission cancelled")
	}

	steps, err := domain.StepsFromMaps(run.BlueprintSnapshot)
	if err != nil {
		return r.finishRun(ctx, run, sub.ID, domain.RunFailed, fmt.Sprintf("corrupt blueprint snapshot: %v", err))
	}

	run, err = r.markRunning(ctx, run)
	if err != nil {
		return fmt.Errorf("mark run %s running: %w", runID, err)
	}
	syncSubmissionProcessing(ctx, r.client, sub.ID)

	cumulative := domain.CumulativeContext(run.CumulativeContext).Clone()

	for _, step := range steps {
		if step.Position < run.CurrentPosition {
			continue
		}

		// Re-check cancellation between steps; a long analysis step must not
		// drag the whole submission past a cancel.
		cancelled, err := r.cancelRequested(ctx, sub.ID)
		if err != nil {
			return fmt.Errorf("check cancellation for run %s: %w", runID, err)
		}
		if cancelled {
			return r.finishRun(ctx, run, sub.ID, domain.RunSkipped, "submission cancelled")
		}

		outcome, err := r.executeStep(ctx, run, sub, step, cumulative)
		if err != nil {
			return err
		}
		if outcome.fatal {
			return r.finishRun(ctx, run, sub.ID, domain.RunFailed, outcome.errorMessage)
		}
		if outcome.fannedOut {
			// The continuation past the fan-out position belongs to the
			// children; the parent stops here.
			return r.finishRun(ctx, run, sub.ID, domain.RunSucceeded, "")
		}

		if err := r.advance(ctx, run, step.Position+1, cumulative); err != nil {
			return fmt.Errorf("advance run %s past position %d: %w", runID, step.Position, err)
		}
	}

	return r.finishRun(ctx, run, sub.ID, domain.RunSucceeded, "")
}

// stepOutcome is the runner-internal verdict of one step.
type stepOutcome struct {
	fatal        bool
	fannedOut    bool
	errorMessage string
}

func (r *Runner) executeStep(
	ctx context.Context,
	run *ent.PipelineRun,
	sub *ent.Submission,
	step domain.BlueprintStepSnapshot,
	cumulative domain.CumulativeContext,
) (stepOutcome, error) {
	if !step.IsEnabled {
		if err := r.recordSkip(ctx, run, step, "disabled", nil); err != nil {
			return stepOutcome{}, err
		}
		return stepOutcome{}, nil
	}

	op, ok := r.registry.Lookup(step.OperationID)
	if !ok {
		msg := fmt.Sprintf("operation %q is not registered", step.OperationID)
		if err := r.recordFailure(ctx, run, step, "unknown_operation", msg, nil); err != nil {
			return stepOutcome{}, err
		}
		return stepOutcome{fatal: true, errorMessage: msg}, nil
	}

	if step.SkipIfFresh != nil && op.Metadata.EntityType != domain.EntityNone {
		fresh, rec, err := r.checkFreshness(ctx, run, step, op.Metadata.EntityType, cumulative)
		if err != nil {
			return stepOutcome{}, fmt.Errorf("freshness check for run %s step %d: %w", run.ID, step.Position, err)
		}
		if fresh {
			// The stored payload stands in for the skipped output so later
			// steps still see the fields this one would have produced.
			cumulative.DeepMerge(rec.CanonicalPayload)
			if err := r.recordSkip(ctx, run, step, "entity_state_fresh", rec); err != nil {
				return stepOutcome{}, err
			}
			return stepOutcome{}, nil
		}
	}

	input := r.buildInput(run, step, cumulative)

	started := time.Now()
	result := op.Execute(ctx, input)
	if r.metrics != nil {
		r.metrics.StepDuration.
			WithLabelValues(registry.Family(step.OperationID)).
			Observe(time.Since(started).Seconds())
	}

	// Merge before fan-out so children inherit the step's output with the
	// rest of the context.
	if result.Status == domain.StatusFound {
		cumulative.DeepMerge(result.Output)
	}

	fan, ferr := r.maybeFanOut(ctx, run, sub, step, op, result, cumulative)
	if ferr != nil {
		return stepOutcome{}, ferr
	}

	if err := r.recordResult(ctx, run, step, input, result, fan); err != nil {
		return stepOutcome{}, err
	}

	switch result.Status {
	case domain.StatusFailed:
		msg := "step failed"
		if result.Error != nil {
			msg = fmt.Sprintf("%s: %s", result.Error.Code, result.Error.Message)
		}
		return stepOutcome{fatal: true, errorMessage: fmt.Sprintf("step %d (%s): %s", step.Position, step.OperationID, msg)}, nil
	case domain.StatusFound:
		if err := r.persistEntity(ctx, run, op, result); err != nil {
			return stepOutcome{}, fmt.Errorf("persist entity for run %s step %d: %w", run.ID, step.Position, err)
		}
	}
	// not_found and skipped contribute nothing and the run continues.
	return stepOutcome{fannedOut: fan.expanded}, nil
}

// buildInput assembles the operation input with the resolution precedence
// direct seed fields, then cumulative context, then step config.
func (r *Runner) buildInput(run *ent.PipelineRun, step domain.BlueprintStepSnapshot, cumulative domain.CumulativeContext) map[string]interface{} {
	input := make(map[string]interface{}, len(run.EntityInput)+4)
	for k, v := range run.EntityInput {
		input[k] = v
	}
	if _, ok := input["org_id"]; !ok {
		input["org_id"] = run.OrgID
	}
	if _, ok := input["entity_id"]; !ok {
		input["entity_id"] = identity.ResolveEntityID(
			domain.EntityType(run.EntityType),
			r.identityFields(run, cumulative, nil),
		)
	}
	input["cumulative_context"] = map[string]interface{}(cumulative.Clone())
	if len(step.StepConfig) > 0 {
		input["step_config"] = step.StepConfig
	}
	return input
}

// identityFields merges seed fields over context so identity resolution sees
// the widest field set with the seed winning on conflict. When only is
// non-empty the view is restricted to those fields.
func (r *Runner) identityFields(run *ent.PipelineRun, cumulative domain.CumulativeContext, only []string) map[string]interface{} {
	merged := store.AdditiveMerge(cumulative, run.EntityInput)
	if len(only) == 0 {
		return merged
	}
	restricted := make(map[string]interface{}, len(only))
	for _, field := range only {
		if v, ok := merged[field]; ok {
			restricted[field] = v
		}
	}
	return restricted
}

func (r *Runner) checkFreshness(
	ctx context.Context,
	run *ent.PipelineRun,
	step domain.BlueprintStepSnapshot,
	entityType domain.EntityType,
	cumulative domain.CumulativeContext,
) (bool, *store.Record, error) {
	maxAge := time.Duration(step.SkipIfFresh.MaxAgeHours * float64(time.Hour))
	if maxAge <= 0 {
		maxAge = time.Duration(r.cfg.DefaultFreshnessHours) * time.Hour
	}
	fields := r.identityFields(run, cumulative, step.SkipIfFresh.IdentityFields)
	return r.entities.CheckFreshness(ctx, run.OrgID, entityType, fields, maxAge)
}

// persistEntity merges a found step's canonical fields into the entity
// store. Only canonical fields of the operation's entity type travel; free
// form output keys stay in the cumulative context.
func (r *Runner) persistEntity(ctx context.Context, run *ent.PipelineRun, op registry.Operation, result *domain.Result) error {
	t := op.Metadata.EntityType
	if t == domain.EntityNone || len(result.Output) == 0 {
		return nil
	}

	fields := canonicalSubset(t, result.Output)
	if len(fields) == 0 {
		return nil
	}

	_, err := r.entities.Upsert(ctx, store.UpsertRequest{
		OrgID:       run.OrgID,
		EntityType:  t,
		Fields:      fields,
		RunID:       run.ID,
		OperationID: result.OperationID,
		Providers:   attemptProviders(result),
	})
	return err
}

// canonicalSubset keeps the canonical fields (plus domain aliases) of the
// entity type from an output map.
func canonicalSubset(t domain.EntityType, output map[string]interface{}) map[string]interface{} {
	allowed := make(map[string]struct{})
	for _, f := range domain.CanonicalFields(t) {
		allowed[f] = struct{}{}
	}
	for _, f := range domain.DomainAliases {
		allowed[f] = struct{}{}
	}

	fields := make(map[string]interface{})
	for k, v := range output {
		if _, ok := allowed[k]; ok {
			fields[k] = v
		}
	}
	return fields
}

func attemptProviders(result *domain.Result) []string {
	providers := make([]string, 0, len(result.ProviderAttempts))
	for _, a := range result.ProviderAttempts {
		if a.Status == domain.StatusFound && a.Provider != "" && a.Provider != "internal" && a.Provider != "none" {
			providers = append(providers, a.Provider)
		}
	}
	return providers
}

func (r *Runner) markRunning(ctx context.Context, run *ent.PipelineRun) (*ent.PipelineRun, error) {
	update := r.client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusRUNNING)
	if run.StartedAt == nil {
		update.SetStartedAt(time.Now().UTC())
	}
	return update.Save(ctx)
}

func (r *Runner) advance(ctx context.Context, run *ent.PipelineRun, nextPosition int, cumulative domain.CumulativeContext) error {
	_, err := r.client.PipelineRun.UpdateOneID(run.ID).
		SetCurrentPosition(nextPosition).
		SetCumulativeContext(cumulative).
		Save(ctx)
	if err == nil {
		run.CurrentPosition = nextPosition
	}
	return err
}

// finishRun moves a run to a terminal status and rolls the submission up.
func (r *Runner) finishRun(ctx context.Context, run *ent.PipelineRun, submissionID string, status domain.RunStatus, errorMessage string) error {
	update := r.client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.Status(status)).
		SetFinishedAt(time.Now().UTC())
	if errorMessage != "" {
		update.SetErrorMessage(errorMessage)
	}
	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("finish run %s as %s: %w", run.ID, status, err)
	}

	if r.metrics != nil {
		r.metrics.RunsCompleted.WithLabelValues(string(status)).Inc()
	}
	logger.Info("Pipeline run finished",
		zap.String("run_id", run.ID),
		zap.String("status", string(status)),
		zap.String("error", errorMessage),
	)

	SyncSubmissionStatus(ctx, r.client, submissionID)
	return nil
}

func (r *Runner) cancelRequested(ctx context.Context, submissionID string) (bool, error) {
	sub, err := r.client.Submission.Get(ctx, submissionID)
	if err != nil {
		return false, err
	}
	return sub.CancelRequested, nil
}

// nextAttemptNumber counts prior result rows for (run, position). Under
// at-least-once dispatch a redelivered job records a fresh attempt instead
// of clobbering history.
func (r *Runner) nextAttemptNumber(ctx context.Context, run *ent.PipelineRun, position int) (int, error) {
	n, err := r.client.StepResult.Query().
		Where(
			stepresult.HasRunWith(pipelinerun.ID(run.ID)),
			stepresult.Position(position),
		).
		Count(ctx)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}
