package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/internal/domain"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	noop := func(ctx context.Context, input map[string]interface{}) *domain.Result {
		return domain.NewResult("noop").NotFound()
	}
	reg.MustRegister("company.enrich.firmographics", noop, registry.Metadata{EntityType: domain.EntityCompany})
	reg.MustRegister("company.enrich.tech_stack", noop, registry.Metadata{EntityType: domain.EntityCompany})
	reg.MustRegister("company.search.customers", noop, registry.Metadata{
		EntityType:       domain.EntityNone,
		FanOutKey:        "customers",
		FanOutEntityType: domain.EntityCompany,
	})
	return reg
}

func newBlueprintService(t *testing.T, prefix string) *BlueprintService {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	_, err := client.Org.Create().SetID("org-1").SetName("Org One").Save(context.Background())
	require.NoError(t, err)
	return NewBlueprintService(client, testRegistry(t))
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func TestValidateSteps(t *testing.T) {
	svc := newBlueprintService(t, "bp_validate")

	valid := []StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics"},
		{Position: 2, OperationID: "company.search.customers", FanOut: true},
	}
	require.NoError(t, svc.ValidateSteps(valid))

	requireAppCode(t, svc.ValidateSteps(nil), apperrors.CodeBlueprintInvalid)

	requireAppCode(t, svc.ValidateSteps([]StepInput{
		{Position: 0, OperationID: "company.enrich.firmographics"},
	}), apperrors.CodeBlueprintInvalid)

	requireAppCode(t, svc.ValidateSteps([]StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics"},
		{Position: 1, OperationID: "company.enrich.tech_stack"},
	}), apperrors.CodeBlueprintInvalid)

	requireAppCode(t, svc.ValidateSteps([]StepInput{
		{Position: 1, OperationID: "company.enrich.abandoned"},
	}), apperrors.CodeUnknownOperation)

	// fan_out on an operation without a collection key.
	requireAppCode(t, svc.ValidateSteps([]StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics", FanOut: true},
	}), apperrors.CodeBlueprintInvalid)

	requireAppCode(t, svc.ValidateSteps([]StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics",
			SkipIfFresh: map[string]interface{}{"max_age_hours": float64(-1)}},
	}), apperrors.CodeBlueprintInvalid)
}

func TestBlueprintCreateAndGet(t *testing.T) {
	svc := newBlueprintService(t, "bp_create")
	ctx := context.Background()

	disabled := false
	bp, err := svc.Create(ctx, "org-1", "Company Waterfall", "standard enrichment", []StepInput{
		{Position: 2, OperationID: "company.enrich.tech_stack", IsEnabled: &disabled},
		{Position: 1, OperationID: "company.enrich.firmographics",
			SkipIfFresh: map[string]interface{}{"max_age_hours": float64(24)}},
	})
	require.NoError(t, err)
	require.Equal(t, "Company Waterfall", bp.Name)
	require.True(t, bp.IsActive)
	require.Len(t, bp.Edges.Steps, 2)

	// Duplicate name within the org conflicts.
	_, err = svc.Create(ctx, "org-1", "Company Waterfall", "", []StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics"},
	})
	requireAppCode(t, err, apperrors.CodeBlueprintExists)

	// Blank name rejected.
	_, err = svc.Create(ctx, "org-1", "   ", "", []StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics"},
	})
	requireAppCode(t, err, apperrors.CodeBlueprintInvalid)

	got, err := svc.Get(ctx, "org-1", bp.ID)
	require.NoError(t, err)
	require.Equal(t, bp.ID, got.ID)

	// Other tenants never see it.
	_, err = svc.Get(ctx, "org-2", bp.ID)
	requireAppCode(t, err, apperrors.CodeBlueprintNotFound)
}

func TestBlueprintReplaceSteps(t *testing.T) {
	svc := newBlueprintService(t, "bp_replace")
	ctx := context.Background()

	bp, err := svc.Create(ctx, "org-1", "Waterfall", "", []StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics"},
	})
	require.NoError(t, err)

	replaced, err := svc.ReplaceSteps(ctx, "org-1", bp.ID, []StepInput{
		{Position: 1, OperationID: "company.search.customers", FanOut: true},
		{Position: 2, OperationID: "company.enrich.tech_stack"},
	})
	require.NoError(t, err)
	require.Len(t, replaced.Edges.Steps, 2)

	snapshot, err := svc.Snapshot(ctx, replaced)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	require.Equal(t, "company.search.customers", snapshot[0].OperationID)
	require.True(t, snapshot[0].FanOut)
	require.Equal(t, "company.enrich.tech_stack", snapshot[1].OperationID)

	// A bad replacement leaves an error, not a half-replaced list.
	_, err = svc.ReplaceSteps(ctx, "org-1", bp.ID, []StepInput{
		{Position: 1, OperationID: "company.enrich.abandoned"},
	})
	requireAppCode(t, err, apperrors.CodeUnknownOperation)
}

func TestBlueprintSetActiveAndList(t *testing.T) {
	svc := newBlueprintService(t, "bp_active")
	ctx := context.Background()

	bp, err := svc.Create(ctx, "org-1", "Waterfall", "", []StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics"},
	})
	require.NoError(t, err)

	deactivated, err := svc.SetActive(ctx, "org-1", bp.ID, false)
	require.NoError(t, err)
	require.False(t, deactivated.IsActive)

	reactivated, err := svc.SetActive(ctx, "org-1", bp.ID, true)
	require.NoError(t, err)
	require.True(t, reactivated.IsActive)

	list, err := svc.List(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	empty, err := svc.List(ctx, "org-2")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestBlueprintSnapshot_ParsesSkipIfFresh(t *testing.T) {
	svc := newBlueprintService(t, "bp_snapshot")
	ctx := context.Background()

	bp, err := svc.Create(ctx, "org-1", "Waterfall", "", []StepInput{
		{Position: 1, OperationID: "company.enrich.firmographics",
			SkipIfFresh: map[string]interface{}{
				"max_age_hours":   float64(48),
				"identity_fields": []interface{}{"company_domain"},
			}},
	})
	require.NoError(t, err)

	snapshot, err := svc.Snapshot(ctx, bp)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	require.NotNil(t, snapshot[0].SkipIfFresh)
	require.Equal(t, float64(48), snapshot[0].SkipIfFresh.MaxAgeHours)
	require.Equal(t, []string{"company_domain"}, snapshot[0].SkipIfFresh.IdentityFields)
}
