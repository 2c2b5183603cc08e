package usecase

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/domain"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/service"
	"waterline.io/waterline/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

type recordingDispatcher struct {
	runIDs []string
}

func (d *recordingDispatcher) DispatchRun(ctx context.Context, runID string) error {
	d.runIDs = append(d.runIDs, runID)
	return nil
}

type submitEnv struct {
	client     *ent.Client
	blueprints *service.BlueprintService
	dispatcher *recordingDispatcher
	submit     *SubmitBatchUseCase
}

func newSubmitEnv(t *testing.T, prefix string) *submitEnv {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	_, err := client.Org.Create().SetID("org-1").SetName("Org One").Save(context.Background())
	require.NoError(t, err)

	reg := registry.New()
	noop := func(ctx context.Context, input map[string]interface{}) *domain.Result {
		return domain.NewResult("noop").NotFound()
	}
	reg.MustRegister("company.enrich.firmographics", noop, registry.Metadata{EntityType: domain.EntityCompany})

	blueprints := service.NewBlueprintService(client, reg)
	dispatcher := &recordingDispatcher{}
	submit := NewSubmitBatchUseCase(client, blueprints, reg, dispatcher, config.PipelineConfig{
		MaxFanOutDepth:        3,
		MaxBatchEntities:      5,
		DefaultFreshnessHours: 24,
	})
	return &submitEnv{client: client, blueprints: blueprints, dispatcher: dispatcher, submit: submit}
}

func (e *submitEnv) createBlueprint(t *testing.T) *ent.Blueprint {
	t.Helper()
	bp, err := e.blueprints.Create(context.Background(), "org-1", "Waterfall", "", []service.StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics"},
	})
	require.NoError(t, err)
	return bp
}

func TestSubmitBatch(t *testing.T) {
	env := newSubmitEnv(t, "submit_batch")
	bp := env.createBlueprint(t)
	ctx := context.Background()

	out, err := env.submit.Execute(ctx, SubmitBatchInput{
		OrgID:       "org-1",
		BlueprintID: bp.ID,
		EntityType:  "company",
		Entities: []map[string]interface{}{
			{"company_domain": "acme.com"},
			{"company_domain": "beta.com"},
			// Duplicate of the first seed after normalization.
			{"company_domain": "https://www.acme.com/"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.SubmissionID)
	require.Len(t, out.RunIDs, 2)
	require.Len(t, out.SkippedSeeds, 1)
	require.Equal(t, "PENDING", out.Status)
	require.ElementsMatch(t, out.RunIDs, env.dispatcher.runIDs)

	sub, err := env.client.Submission.Get(ctx, out.SubmissionID)
	require.NoError(t, err)
	require.Equal(t, 3, sub.MaxDepth, "default fan-out depth from config")
	require.Len(t, sub.Entities, 3, "the raw batch is kept as submitted")

	runs, err := sub.QueryRuns().Order(ent.Asc(pipelinerun.FieldEntityIndex)).All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, 0, runs[0].EntityIndex)
	require.Equal(t, 1, runs[1].EntityIndex)
	for _, run := range runs {
		require.Equal(t, pipelinerun.StatusQUEUED, run.Status)
		require.Equal(t, 1, run.CurrentPosition)
		require.Equal(t, 0, run.Depth)
		require.Len(t, run.BlueprintSnapshot, 1, "steps are copied by value at submit time")
	}
}

func TestSubmitBatch_PerEntityTypesAndCompanyID(t *testing.T) {
	env := newSubmitEnv(t, "submit_mixed")
	bp := env.createBlueprint(t)
	ctx := context.Background()

	out, err := env.submit.Execute(ctx, SubmitBatchInput{
		OrgID:       "org-1",
		BlueprintID: bp.ID,
		CompanyID:   "cust-42",
		Entities: []map[string]interface{}{
			{"entity_type": "company", "company_domain": "acme.com"},
			{"entity_type": "person", "linkedin_url": "https://linkedin.com/in/jdoe"},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.RunIDs, 2)

	sub, err := env.client.Submission.Get(ctx, out.SubmissionID)
	require.NoError(t, err)
	require.Equal(t, "cust-42", sub.CompanyID)

	runs, err := sub.QueryRuns().Order(ent.Asc(pipelinerun.FieldEntityIndex)).All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, pipelinerun.EntityTypeCompany, runs[0].EntityType)
	require.Equal(t, pipelinerun.EntityTypePerson, runs[1].EntityType)
	for _, run := range runs {
		require.NotContains(t, run.EntityInput, "entity_type",
			"the type marker is not an identifying field")
	}
	require.Equal(t, "acme.com", runs[0].EntityInput["company_domain"])

	// A seed with no type and no batch default is rejected.
	_, err = env.submit.Execute(ctx, SubmitBatchInput{
		OrgID:       "org-1",
		BlueprintID: bp.ID,
		Entities:    []map[string]interface{}{{"company_domain": "beta.com"}},
	})
	requireAppCode(t, err, apperrors.CodeSubmissionInvalid)
}

func TestSubmitBatch_MaxDepthClamped(t *testing.T) {
	env := newSubmitEnv(t, "submit_depth")
	bp := env.createBlueprint(t)
	ctx := context.Background()

	zero := 0
	out, err := env.submit.Execute(ctx, SubmitBatchInput{
		OrgID:       "org-1",
		BlueprintID: bp.ID,
		EntityType:  "company",
		Entities:    []map[string]interface{}{{"company_domain": "acme.com"}},
		MaxDepth:    &zero,
	})
	require.NoError(t, err)
	sub, err := env.client.Submission.Get(ctx, out.SubmissionID)
	require.NoError(t, err)
	require.Equal(t, 0, sub.MaxDepth)

	// A requested depth above the configured bound falls back to the bound.
	over := 50
	out, err = env.submit.Execute(ctx, SubmitBatchInput{
		OrgID:       "org-1",
		BlueprintID: bp.ID,
		EntityType:  "company",
		Entities:    []map[string]interface{}{{"company_domain": "beta.com"}},
		MaxDepth:    &over,
	})
	require.NoError(t, err)
	sub, err = env.client.Submission.Get(ctx, out.SubmissionID)
	require.NoError(t, err)
	require.Equal(t, 3, sub.MaxDepth)
}

func TestSubmitBatch_Rejections(t *testing.T) {
	env := newSubmitEnv(t, "submit_rejects")
	bp := env.createBlueprint(t)
	ctx := context.Background()

	_, err := env.submit.Execute(ctx, SubmitBatchInput{
		OrgID: "org-1", BlueprintID: bp.ID, EntityType: "spaceship",
		Entities: []map[string]interface{}{{"name": "x"}},
	})
	requireAppCode(t, err, apperrors.CodeSubmissionInvalid)

	_, err = env.submit.Execute(ctx, SubmitBatchInput{
		OrgID: "org-1", BlueprintID: bp.ID, EntityType: "company",
	})
	requireAppCode(t, err, apperrors.CodeEmptyBatch)

	oversized := make([]map[string]interface{}, 6)
	for i := range oversized {
		oversized[i] = map[string]interface{}{"company_domain": "acme.com"}
	}
	_, err = env.submit.Execute(ctx, SubmitBatchInput{
		OrgID: "org-1", BlueprintID: bp.ID, EntityType: "company", Entities: oversized,
	})
	requireAppCode(t, err, apperrors.CodeSubmissionInvalid)

	_, err = env.submit.Execute(ctx, SubmitBatchInput{
		OrgID: "org-1", BlueprintID: "no-such-blueprint", EntityType: "company",
		Entities: []map[string]interface{}{{"company_domain": "acme.com"}},
	})
	requireAppCode(t, err, apperrors.CodeBlueprintNotFound)

	// Other org's blueprint is invisible.
	_, err = env.submit.Execute(ctx, SubmitBatchInput{
		OrgID: "org-2", BlueprintID: bp.ID, EntityType: "company",
		Entities: []map[string]interface{}{{"company_domain": "acme.com"}},
	})
	requireAppCode(t, err, apperrors.CodeBlueprintNotFound)

	_, err = env.blueprints.SetActive(ctx, "org-1", bp.ID, false)
	require.NoError(t, err)
	_, err = env.submit.Execute(ctx, SubmitBatchInput{
		OrgID: "org-1", BlueprintID: bp.ID, EntityType: "company",
		Entities: []map[string]interface{}{{"company_domain": "acme.com"}},
	})
	requireAppCode(t, err, apperrors.CodeBlueprintInactive)
	require.Empty(t, env.dispatcher.runIDs, "nothing dispatched on rejection")
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}
