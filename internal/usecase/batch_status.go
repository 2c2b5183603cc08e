package usecase

import (
	"context"
	"fmt"
	"sort"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/stepresult"
	"waterline.io/waterline/ent/submission"
	apperrors "waterline.io/waterline/internal/pkg/errors"
)

// StepResultView is one persisted step outcome in a status response.
type StepResultView struct {
	Position         int                      `json:"position"`
	OperationID      string                   `json:"operation_id"`
	AttemptNumber    int                      `json:"attempt_number"`
	Status           string                   `json:"status"`
	Output           map[string]interface{}   `json:"output,omitempty"`
	ProviderAttempts []map[string]interface{} `json:"provider_attempts,omitempty"`
	ErrorMessage     string                   `json:"error_message,omitempty"`
	SkipReason       string                   `json:"skip_reason,omitempty"`
	ChildrenSpawned  int                      `json:"children_spawned,omitempty"`
}

// RunView is one pipeline run in a status response.
type RunView struct {
	RunID           string           `json:"run_id"`
	ParentRunID     string           `json:"parent_run_id,omitempty"`
	EntityType      string           `json:"entity_type"`
	EntityIndex     int              `json:"entity_index"`
	Depth           int              `json:"depth"`
	Status          string           `json:"status"`
	CurrentPosition int              `json:"current_position"`
	ErrorMessage    string           `json:"error_message,omitempty"`
	StepResults     []StepResultView `json:"step_results,omitempty"`
}

// BatchStatusOutput is the full submission status.
type BatchStatusOutput struct {
	SubmissionID    string         `json:"submission_id"`
	BlueprintID     string         `json:"blueprint_id"`
	Status          string         `json:"status"`
	CancelRequested bool           `json:"cancel_requested"`
	RunCounts       map[string]int `json:"run_counts"`
	Runs            []RunView      `json:"runs"`
}

// BatchStatusUseCase reads a submission with its runs and their step
// history.
type BatchStatusUseCase struct {
	entClient *ent.Client
}

// NewBatchStatusUseCase creates a BatchStatusUseCase.
func NewBatchStatusUseCase(entClient *ent.Client) *BatchStatusUseCase {
	return &BatchStatusUseCase{entClient: entClient}
}

// Execute loads the submission status. includeSteps pulls the per-run step
// result rows; without it the response carries runs and counts only.
func (uc *BatchStatusUseCase) Execute(ctx context.Context, orgID, submissionID string, includeSteps bool) (*BatchStatusOutput, error) {
	sub, err := uc.entClient.Submission.Query().
		Where(submission.ID(submissionID), submission.OrgID(orgID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrSubmissionNotFoundf(submissionID)
		}
		return nil, fmt.Errorf("get submission %s: %w", submissionID, err)
	}

	query := sub.QueryRuns().Order(ent.Asc(pipelinerun.FieldCreatedAt))
	if includeSteps {
		query.WithStepResults(func(q *ent.StepResultQuery) {
			q.Order(ent.Asc(stepresult.FieldPosition), ent.Asc(stepresult.FieldAttemptNumber))
		})
	}
	runs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list runs of submission %s: %w", submissionID, err)
	}

	out := &BatchStatusOutput{
		SubmissionID:    sub.ID,
		BlueprintID:     sub.BlueprintID,
		Status:          string(sub.Status),
		CancelRequested: sub.CancelRequested,
		RunCounts:       map[string]int{},
		Runs:            make([]RunView, 0, len(runs)),
	}
	for _, run := range runs {
		out.RunCounts[string(run.Status)]++
		view := RunView{
			RunID:           run.ID,
			ParentRunID:     run.ParentRunID,
			EntityType:      string(run.EntityType),
			EntityIndex:     run.EntityIndex,
			Depth:           run.Depth,
			Status:          string(run.Status),
			CurrentPosition: run.CurrentPosition,
			ErrorMessage:    run.ErrorMessage,
		}
		if includeSteps {
			for _, row := range run.Edges.StepResults {
				view.StepResults = append(view.StepResults, StepResultView{
					Position:         row.Position,
					OperationID:      row.OperationID,
					AttemptNumber:    row.AttemptNumber,
					Status:           string(row.Status),
					Output:           row.OutputPayload,
					ProviderAttempts: row.ProviderAttempts,
					ErrorMessage:     row.ErrorMessage,
					SkipReason:       row.SkipReason,
					ChildrenSpawned:  row.ChildrenSpawned,
				})
			}
			sort.Slice(view.StepResults, func(i, j int) bool {
				if view.StepResults[i].Position != view.StepResults[j].Position {
					return view.StepResults[i].Position < view.StepResults[j].Position
				}
				return view.StepResults[i].AttemptNumber < view.StepResults[j].AttemptNumber
			})
		}
		out.Runs = append(out.Runs, view)
	}
	return out, nil
}
