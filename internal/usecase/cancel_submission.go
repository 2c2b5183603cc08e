package usecase

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/submission"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/runtime"
)

// CancelSubmissionUseCase requests cancellation of an in-flight batch.
// Cancellation is cooperative: queued runs skip before starting, running
// runs stop at the next step boundary. Completed work is never rolled back.
type CancelSubmissionUseCase struct {
	entClient *ent.Client
}

// NewCancelSubmissionUseCase creates a CancelSubmissionUseCase.
func NewCancelSubmissionUseCase(entClient *ent.Client) *CancelSubmissionUseCase {
	return &CancelSubmissionUseCase{entClient: entClient}
}

// Execute flags the submission for cancellation.
func (uc *CancelSubmissionUseCase) Execute(ctx context.Context, orgID, submissionID string) (*BatchStatusOutput, error) {
	sub, err := uc.entClient.Submission.Query().
		Where(submission.ID(submissionID), submission.OrgID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSubmissionNotFoundf(submissionID)
		}
		return nil, fmt.Errorf("get submission %s: %w", submissionID, err)
	}

	switch sub.Status {
	case submission.StatusCOMPLETED, submission.StatusFAILED, submission.StatusCANCELLED:
		return nil, &apperrors.AppError{
			Code:       apperrors.CodeSubmissionInvalid,
			Message:    "submission is already terminal",
			HTTPStatus: http.StatusConflict,
			Params: map[string]interface{}{
				"submission_id": submissionID,
				"status":        string(sub.Status),
			},
		}
	}

	if !sub.CancelRequested {
		if _, err := uc.entClient.Submission.UpdateOneID(sub.ID).
			SetCancelRequested(true).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("flag submission %s for cancellation: %w", submissionID, err)
		}
		logger.Info("Submission cancellation requested",
			zap.String("submission_id", submissionID),
			zap.String("org_id", orgID),
		)
	}

	// Runs may all be terminal already; recompute so the caller sees
	// CANCELLED instead of a stuck PROCESSING.
	runtime.SyncSubmissionStatus(ctx, uc.entClient, submissionID)

	return NewBatchStatusUseCase(uc.entClient).Execute(ctx, orgID, submissionID, false)
}
