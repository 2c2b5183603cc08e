package runtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/registry"
)

// SkipReasonDepthExhausted marks a fan-out suppressed by the submission's
// depth bound.
const SkipReasonDepthExhausted = "depth_exhausted"

// fanOutOutcome reports what a fan-out step did. expanded is true whenever
// the step yielded its collection, including when the depth bound or dedup
// left zero children; the parent finishes at the fan-out position either
// way, since the continuation belongs to the children.
type fanOutOutcome struct {
	expanded   bool
	spawned    int
	duplicates []string
	skipReason string
}

// maybeFanOut expands a found fan-out step's collection into queued child
// runs. Children inherit the parent's blueprint snapshot and cumulative
// context and resume at the position after the fan-out step, with the
// expanded item as their seed. Duplicates collapse by dedup key within the
// expansion only; an entity already covered elsewhere in the submission
// still gets a child run and collapses at the entity store instead. Depth is
// bounded by the submission's max_depth. Child dispatch is detached so a
// slow queue never delays the parent's terminal write.
func (r *Runner) maybeFanOut(
	ctx context.Context,
	run *ent.PipelineRun,
	sub *ent.Submission,
	step domain.BlueprintStepSnapshot,
	op registry.Operation,
	result *domain.Result,
	cumulative domain.CumulativeContext,
) (fanOutOutcome, error) {
	var out fanOutOutcome
	if !step.FanOut || op.Metadata.FanOutKey == "" || result.Status != domain.StatusFound {
		return out, nil
	}

	raw, ok := result.Output[op.Metadata.FanOutKey]
	if !ok {
		return out, nil
	}
	items, ok := raw.([]interface{})
	if !ok || len(items) == 0 {
		return out, nil
	}
	out.expanded = true

	if run.Depth >= sub.MaxDepth {
		out.skipReason = SkipReasonDepthExhausted
		logger.Warn("Fan-out suppressed at max depth",
			zap.String("run_id", run.ID),
			zap.String("operation_id", step.OperationID),
			zap.Int("depth", run.Depth),
			zap.Int("max_depth", sub.MaxDepth),
			zap.Int("items", len(items)),
		)
		return out, nil
	}

	childType := op.Metadata.FanOutEntityType
	triggerID := run.TriggerRunID
	if triggerID == "" {
		triggerID = run.ID
	}

	seen := make(map[string]struct{}, len(items))
	var childIDs []string
	for _, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok || len(fields) == 0 {
			continue
		}
		seed := canonicalSubset(childType, fields)
		if len(seed) == 0 {
			continue
		}

		key := identity.DedupKey(childType, seed)
		if _, dup := seen[key]; dup {
			out.duplicates = append(out.duplicates, key)
			continue
		}
		seen[key] = struct{}{}

		childContext := cumulative.Clone()
		childContext.DeepMerge(seed)

		child, err := r.client.PipelineRun.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetOrgID(run.OrgID).
			SetSubmission(sub).
			SetParentRunID(run.ID).
			SetTriggerRunID(triggerID).
			SetEntityType(pipelinerun.EntityType(childType)).
			SetEntityIndex(run.EntityIndex).
			SetBlueprintSnapshot(run.BlueprintSnapshot).
			SetEntityInput(seed).
			SetCurrentPosition(step.Position + 1).
			SetCumulativeContext(childContext).
			SetDepth(run.Depth + 1).
			SetStatus(pipelinerun.StatusQUEUED).
			Save(ctx)
		if err != nil {
			return out, fmt.Errorf("create child run for %s: %w", run.ID, err)
		}
		childIDs = append(childIDs, child.ID)
		out.spawned++
	}

	for _, childID := range childIDs {
		if err := r.dispatchChildDetached(childID); err != nil {
			return out, fmt.Errorf("queue dispatch for child run %s: %w", childID, err)
		}
	}

	if r.metrics != nil {
		r.metrics.FanOutChildren.Observe(float64(out.spawned))
	}
	logger.Info("Fan-out expanded",
		zap.String("run_id", run.ID),
		zap.String("operation_id", step.OperationID),
		zap.Int("position", step.Position),
		zap.Int("children", out.spawned),
		zap.Int("duplicates", len(out.duplicates)),
	)
	return out, nil
}

// dispatchChildDetached hands a queued child to the dispatcher on the
// general pool. A failed dispatch is logged, not fatal: the row stays
// queued and redispatch is idempotent by job uniqueness.
func (r *Runner) dispatchChildDetached(childID string) error {
	return r.pools.SubmitDetached("general", func(ctx context.Context) {
		if err := r.dispatcher.DispatchRun(ctx, childID); err != nil {
			logger.Error("failed to dispatch child run, row stays queued",
				zap.String("run_id", childID),
				zap.Error(err),
			)
		}
	})
}
