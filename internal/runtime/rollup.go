package runtime

import (
	"context"

	"go.uber.org/zap"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/submission"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/pkg/logger"
)

// SyncSubmissionStatus recomputes the submission status from its runs. This
// is a best-effort operation: failures are logged but not propagated, since
// the rollup is derivable and the next terminal run recomputes it.
//
// Rollup rules over all runs of the submission:
//   - any non-terminal run keeps the submission PROCESSING
//   - cancel_requested with all runs terminal lands on CANCELLED
//   - any FAILED run lands on FAILED
//   - otherwise COMPLETED (skipped-only batches complete too)
func SyncSubmissionStatus(ctx context.Context, client *ent.Client, submissionID string) {
	sub, err := client.Submission.Get(ctx, submissionID)
	if err != nil {
		logger.Warn("failed to load submission for status rollup",
			zap.String("submission_id", submissionID),
			zap.Error(err),
		)
		return
	}

	runs, err := sub.QueryRuns().All(ctx)
	if err != nil {
		logger.Warn("failed to query runs for status rollup",
			zap.String("submission_id", submissionID),
			zap.Error(err),
		)
		return
	}
	if len(runs) == 0 {
		return
	}

	var failed, active int
	for _, run := range runs {
		switch {
		case !domain.RunStatus(run.Status).Terminal():
			active++
		case run.Status == pipelinerun.StatusFAILED:
			failed++
		}
	}

	status := submission.StatusPROCESSING
	switch {
	case active > 0:
		status = submission.StatusPROCESSING
	case sub.CancelRequested:
		status = submission.StatusCANCELLED
	case failed > 0:
		status = submission.StatusFAILED
	default:
		status = submission.StatusCOMPLETED
	}

	if sub.Status == status {
		return
	}
	if _, err := client.Submission.UpdateOneID(submissionID).
		SetStatus(status).
		Save(ctx); err != nil {
		logger.Warn("failed to update submission status",
			zap.String("submission_id", submissionID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return
	}
	logger.Info("Submission status rolled up",
		zap.String("submission_id", submissionID),
		zap.String("status", string(status)),
		zap.Int("runs", len(runs)),
		zap.Int("failed", failed),
	)
}

// syncSubmissionProcessing flips a PENDING submission to PROCESSING when its
// first run starts. Best-effort, same as the terminal rollup.
func syncSubmissionProcessing(ctx context.Context, client *ent.Client, submissionID string) {
	n, err := client.Submission.Update().
		Where(
			submission.ID(submissionID),
			submission.StatusEQ(submission.StatusPENDING),
		).
		SetStatus(submission.StatusPROCESSING).
		Save(ctx)
	if err != nil {
		logger.Warn("failed to flip submission to PROCESSING",
			zap.String("submission_id", submissionID),
			zap.Error(err),
		)
		return
	}
	if n > 0 {
		logger.Info("Submission processing started", zap.String("submission_id", submissionID))
	}
}
