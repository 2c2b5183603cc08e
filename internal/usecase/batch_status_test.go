package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/stepresult"
	apperrors "waterline.io/waterline/internal/pkg/errors"
)

func seedStatusFixture(t *testing.T, env *submitEnv) (submissionID string, runIDs []string) {
	t.Helper()
	bp := env.createBlueprint(t)
	out, err := env.submit.Execute(context.Background(), SubmitBatchInput{
		OrgID:       "org-1",
		BlueprintID: bp.ID,
		EntityType:  "company",
		Entities: []map[string]interface{}{
			{"company_domain": "acme.com"},
			{"company_domain": "beta.com"},
		},
	})
	require.NoError(t, err)
	return out.SubmissionID, out.RunIDs
}

func TestBatchStatus(t *testing.T) {
	env := newSubmitEnv(t, "batch_status")
	ctx := context.Background()
	submissionID, runIDs := seedStatusFixture(t, env)

	// Move one run to a terminal state with a recorded step.
	_, err := env.client.PipelineRun.UpdateOneID(runIDs[0]).
		SetStatus(pipelinerun.StatusSUCCEEDED).
		SetCurrentPosition(2).
		Save(ctx)
	require.NoError(t, err)
	run, err := env.client.PipelineRun.Get(ctx, runIDs[0])
	require.NoError(t, err)
	_, err = env.client.StepResult.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID("org-1").
		SetRun(run).
		SetPosition(1).
		SetOperationID("company.enrich.firmographics").
		SetStatus(stepresult.StatusSUCCEEDED).
		SetOutputPayload(map[string]interface{}{"name": "Acme"}).
		Save(ctx)
	require.NoError(t, err)

	status := NewBatchStatusUseCase(env.client)

	out, err := status.Execute(ctx, "org-1", submissionID, false)
	require.NoError(t, err)
	require.Equal(t, submissionID, out.SubmissionID)
	require.Len(t, out.Runs, 2)
	require.Equal(t, 1, out.RunCounts["SUCCEEDED"])
	require.Equal(t, 1, out.RunCounts["QUEUED"])
	require.Empty(t, out.Runs[0].StepResults, "steps only load on request")

	out, err = status.Execute(ctx, "org-1", submissionID, true)
	require.NoError(t, err)
	var succeeded *RunView
	for i := range out.Runs {
		if out.Runs[i].Status == "SUCCEEDED" {
			succeeded = &out.Runs[i]
		}
	}
	require.NotNil(t, succeeded)
	require.Len(t, succeeded.StepResults, 1)
	require.Equal(t, "company.enrich.firmographics", succeeded.StepResults[0].OperationID)
	require.Equal(t, "Acme", succeeded.StepResults[0].Output["name"])
}

func TestBatchStatus_NotFoundAndOrgScope(t *testing.T) {
	env := newSubmitEnv(t, "batch_status_scope")
	ctx := context.Background()
	submissionID, _ := seedStatusFixture(t, env)

	status := NewBatchStatusUseCase(env.client)

	_, err := status.Execute(ctx, "org-1", "no-such-submission", false)
	requireAppCode(t, err, apperrors.CodeSubmissionNotFound)

	_, err = status.Execute(ctx, "org-other", submissionID, false)
	requireAppCode(t, err, apperrors.CodeSubmissionNotFound)
}

func TestCancelSubmission(t *testing.T) {
	env := newSubmitEnv(t, "cancel_submission")
	ctx := context.Background()
	submissionID, runIDs := seedStatusFixture(t, env)

	cancel := NewCancelSubmissionUseCase(env.client)

	out, err := cancel.Execute(ctx, "org-1", submissionID)
	require.NoError(t, err)
	require.True(t, out.CancelRequested)
	// Queued runs are still in flight; the rollup waits for them.
	require.Equal(t, "PROCESSING", out.Status)

	// Cancelling twice is idempotent while non-terminal.
	out, err = cancel.Execute(ctx, "org-1", submissionID)
	require.NoError(t, err)
	require.True(t, out.CancelRequested)

	// Once every run is terminal the rollup lands on CANCELLED.
	for _, runID := range runIDs {
		_, err := env.client.PipelineRun.UpdateOneID(runID).
			SetStatus(pipelinerun.StatusSKIPPED).
			Save(ctx)
		require.NoError(t, err)
	}
	out, err = cancel.Execute(ctx, "org-1", submissionID)
	require.NoError(t, err)
	require.Equal(t, "CANCELLED", out.Status)

	// A terminal submission rejects further cancels.
	_, err = cancel.Execute(ctx, "org-1", submissionID)
	requireAppCode(t, err, apperrors.CodeSubmissionInvalid)
}

func TestCancelSubmission_OrgScope(t *testing.T) {
	env := newSubmitEnv(t, "cancel_scope")
	submissionID, _ := seedStatusFixture(t, env)

	_, err := NewCancelSubmissionUseCase(env.client).Execute(context.Background(), "org-other", submissionID)
	requireAppCode(t, err, apperrors.CodeSubmissionNotFound)
}
