package runtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/store"
)

// stepResultStatus maps an envelope status onto the persisted row enum.
func stepResultStatus(s domain.ResultStatus) stepresult.Status {
	switch s {
	case domain.StatusFound:
		return stepresult.StatusSUCCEEDED
	case domain.StatusNotFound:
		return stepresult.StatusNOT_FOUND
	case domain.StatusSkipped:
		return stepresult.StatusSKIPPED
	default:
		return stepresult.StatusFAILED
	}
}

// recordResult appends the step result row for an executed operation,
// folding in what its fan-out did: children spawned, duplicates collapsed,
// and the depth-bound skip reason when expansion was suppressed.
func (r *Runner) recordResult(
	ctx context.Context,
	run *ent.PipelineRun,
	step domain.BlueprintStepSnapshot,
	input map[string]interface{},
	result *domain.Result,
	fan fanOutOutcome,
) error {
	attempt, err := r.nextAttemptNumber(ctx, run, step.Position)
	if err != nil {
		return fmt.Errorf("count attempts for run %s step %d: %w", run.ID, step.Position, err)
	}

	create := r.client.StepResult.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(run.OrgID).
		SetRun(run).
		SetPosition(step.Position).
		SetOperationID(step.OperationID).
		SetAttemptNumber(attempt).
		SetStatus(stepResultStatus(result.Status)).
		SetInputPayload(trimInputPayload(input))
	if len(result.Output) > 0 {
		create.SetOutputPayload(result.Output)
	}
	if attempts := result.AttemptMaps(); attempts != nil {
		create.SetProviderAttempts(attempts)
	}
	if result.Error != nil {
		create.SetErrorMessage(fmt.Sprintf("%s: %s", result.Error.Code, result.Error.Message))
	}
	if result.Status == domain.StatusSkipped && len(result.ProviderAttempts) > 0 {
		create.SetSkipReason(result.ProviderAttempts[0].SkipReason)
	}
	if fan.expanded {
		create.SetChildrenSpawned(fan.spawned)
		if len(fan.duplicates) > 0 {
			create.SetSkippedDuplicates(fan.duplicates)
		}
		if fan.skipReason != "" {
			create.SetSkipReason(fan.skipReason)
		}
	}

	_, err = create.Save(ctx)
	if err != nil {
		return fmt.Errorf("record step result for run %s step %d: %w", run.ID, step.Position, err)
	}
	return nil
}

// recordSkip appends a SKIPPED row for a step the runtime never executed.
// When a freshness skip carries the stored record, the record's payload is
// saved as the step output so the run history shows what the step yielded.
func (r *Runner) recordSkip(
	ctx context.Context,
	run *ent.PipelineRun,
	step domain.BlueprintStepSnapshot,
	reason string,
	rec *store.Record,
) error {
	attempt, err := r.nextAttemptNumber(ctx, run, step.Position)
	if err != nil {
		return fmt.Errorf("count attempts for run %s step %d: %w", run.ID, step.Position, err)
	}

	create := r.client.StepResult.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(run.OrgID).
		SetRun(run).
		SetPosition(step.Position).
		SetOperationID(step.OperationID).
		SetAttemptNumber(attempt).
		SetStatus(stepresult.StatusSKIPPED).
		SetSkipReason(reason)
	if rec != nil && len(rec.CanonicalPayload) > 0 {
		create.SetOutputPayload(rec.CanonicalPayload)
	}

	_, err = create.Save(ctx)
	if err != nil {
		return fmt.Errorf("record skip for run %s step %d: %w", run.ID, step.Position, err)
	}
	return nil
}

// recordFailure appends a FAILED row for a step that could not start.
func (r *Runner) recordFailure(
	ctx context.Context,
	run *ent.PipelineRun,
	step domain.BlueprintStepSnapshot,
	code, message string,
	input map[string]interface{},
) error {
	attempt, err := r.nextAttemptNumber(ctx, run, step.Position)
	if err != nil {
		return fmt.Errorf("count attempts for run %s step %d: %w", run.ID, step.Position, err)
	}

	create := r.client.StepResult.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(run.OrgID).
		SetRun(run).
		SetPosition(step.Position).
		SetOperationID(step.OperationID).
		SetAttemptNumber(attempt).
		SetStatus(stepresult.StatusFAILED).
		SetErrorMessage(fmt.Sprintf("%s: %s", code, message))
	if len(input) > 0 {
		create.SetInputPayload(trimInputPayload(input))
	}

	_, err = create.Save(ctx)
	if err != nil {
		return fmt.Errorf("record failure for run %s step %d: %w", run.ID, step.Position, err)
	}
	return nil
}

// trimInputPayload drops the cumulative context from the persisted input.
// The context is reconstructible from prior step outputs; duplicating it on
// every row multiplies storage for no read value.
func trimInputPayload(input map[string]interface{}) map[string]interface{} {
	trimmed := make(map[string]interface{}, len(input))
	for k, v := range input {
		if k == "cumulative_context" {
			continue
		}
		trimmed[k] = v
	}
	return trimmed
}
