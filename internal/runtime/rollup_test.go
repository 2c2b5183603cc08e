package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	entsubmission "waterline.io/waterline/ent/submission"
	"waterline.io/waterline/internal/testutil"
)

func seedRollupRuns(t *testing.T, client *ent.Client, sub *ent.Submission, statuses ...pipelinerun.Status) {
	t.Helper()
	for _, status := range statuses {
		_, err := client.PipelineRun.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetOrgID(sub.OrgID).
			SetSubmission(sub).
			SetEntityType(pipelinerun.EntityTypeCompany).
			SetBlueprintSnapshot([]map[string]interface{}{}).
			SetEntityInput(map[string]interface{}{}).
			SetStatus(status).
			Save(context.Background())
		require.NoError(t, err)
	}
}

func newRollupSubmission(t *testing.T, client *ent.Client, cancelRequested bool) *ent.Submission {
	t.Helper()
	ctx := context.Background()
	orgID := uuid.NewString()
	_, err := client.Org.Create().SetID(orgID).SetName("org").Save(ctx)
	require.NoError(t, err)
	sub, err := client.Submission.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(orgID).
		SetBlueprintID(uuid.NewString()).
		SetEntities([]map[string]interface{}{}).
		SetCancelRequested(cancelRequested).
		Save(ctx)
	require.NoError(t, err)
	return sub
}

func TestSyncSubmissionStatus(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "rollup")
	ctx := context.Background()

	cases := []struct {
		name            string
		cancelRequested bool
		runs            []pipelinerun.Status
		want            entsubmission.Status
	}{
		{
			name: "active run keeps processing",
			runs: []pipelinerun.Status{pipelinerun.StatusSUCCEEDED, pipelinerun.StatusRUNNING},
			want: entsubmission.StatusPROCESSING,
		},
		{
			name: "any failed run fails the batch",
			runs: []pipelinerun.Status{pipelinerun.StatusSUCCEEDED, pipelinerun.StatusFAILED},
			want: entsubmission.StatusFAILED,
		},
		{
			name: "all succeeded completes",
			runs: []pipelinerun.Status{pipelinerun.StatusSUCCEEDED, pipelinerun.StatusSUCCEEDED},
			want: entsubmission.StatusCOMPLETED,
		},
		{
			name: "skipped-only batch still completes",
			runs: []pipelinerun.Status{pipelinerun.StatusSKIPPED, pipelinerun.StatusSKIPPED},
			want: entsubmission.StatusCOMPLETED,
		},
		{
			name:            "cancel wins over failure once terminal",
			cancelRequested: true,
			runs:            []pipelinerun.Status{pipelinerun.StatusFAILED, pipelinerun.StatusSKIPPED},
			want:            entsubmission.StatusCANCELLED,
		},
		{
			name:            "cancel waits for in-flight runs",
			cancelRequested: true,
			runs:            []pipelinerun.Status{pipelinerun.StatusRUNNING, pipelinerun.StatusSKIPPED},
			want:            entsubmission.StatusPROCESSING,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub := newRollupSubmission(t, client, tc.cancelRequested)
			seedRollupRuns(t, client, sub, tc.runs...)

			SyncSubmissionStatus(ctx, client, sub.ID)

			reloaded, err := client.Submission.Get(ctx, sub.ID)
			require.NoError(t, err)
			require.Equal(t, tc.want, reloaded.Status)
		})
	}
}

func TestSyncSubmissionStatus_NoRunsIsNoop(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "rollup_empty")
	sub := newRollupSubmission(t, client, false)

	SyncSubmissionStatus(context.Background(), client, sub.ID)

	reloaded, err := client.Submission.Get(context.Background(), sub.ID)
	require.NoError(t, err)
	require.Equal(t, entsubmission.StatusPENDING, reloaded.Status)
}
