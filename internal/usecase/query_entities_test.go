package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/metrics"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/store"
	"waterline.io/waterline/internal/testutil"
)

func newEntityQueryEnv(t *testing.T, prefix string) (*QueryEntitiesUseCase, *QuerySnapshotsUseCase, *store.EntityStore) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	entities := store.NewEntityStore(client, metrics.New())
	detector := store.NewChangeDetector(client)
	return NewQueryEntitiesUseCase(entities, detector), NewQuerySnapshotsUseCase(entities), entities
}

func TestQueryEntities(t *testing.T) {
	queries, snapshots, entities := newEntityQueryEnv(t, "query_entities")
	ctx := context.Background()

	first, err := entities.Upsert(ctx, store.UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com", "industry": "SaaS", "employee_count": float64(50),
		},
		RunID:       "run-1",
		OperationID: "company.enrich.firmographics",
		Providers:   []string{"harmonic"},
	})
	require.NoError(t, err)
	_, err = entities.Upsert(ctx, store.UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com", "industry": "Fintech", "employee_count": float64(80),
		},
		RunID: "run-2",
	})
	require.NoError(t, err)

	list, err := queries.List(ctx, "org-1", "company", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2, list[0].RecordVersion)

	view, err := queries.Get(ctx, "org-1", "company", first.Record.ID)
	require.NoError(t, err)
	require.Equal(t, "Fintech", view.Payload["industry"])
	require.Equal(t, []string{"harmonic"}, view.SourceProviders)

	// One snapshot is not enough history to diff.
	report, err := queries.Changes(ctx, "org-1", "company", first.Record.ID, nil)
	require.NoError(t, err)
	require.False(t, report.HasChanges)
	require.Equal(t, store.ReasonInsufficientHistory, report.Reason)

	snaps, err := snapshots.List(ctx, "org-1", "company", first.Record.ID, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	require.Equal(t, 1, snaps[0].RecordVersion)
	require.Equal(t, "SaaS", snaps[0].Payload["industry"])
	require.Equal(t, "run-2", snaps[0].SourceRunID)

	_, err = entities.Upsert(ctx, store.UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com", "industry": "Fintech", "employee_count": float64(120),
		},
		RunID: "run-3",
	})
	require.NoError(t, err)

	report, err = queries.Changes(ctx, "org-1", "company", first.Record.ID, nil)
	require.NoError(t, err)
	require.True(t, report.HasChanges)
	require.NotEmpty(t, report.Changes)
}

func TestQueryEntities_Errors(t *testing.T) {
	queries, snapshots, _ := newEntityQueryEnv(t, "query_entities_err")
	ctx := context.Background()

	_, err := queries.List(ctx, "org-1", "spaceship", 10, 0)
	requireAppCode(t, err, apperrors.CodeInvalidEntity)

	_, err = queries.Get(ctx, "org-1", "company", "00000000-0000-0000-0000-000000000000")
	requireAppCode(t, err, apperrors.CodeEntityNotFound)

	_, err = queries.Changes(ctx, "org-1", "company", "00000000-0000-0000-0000-000000000000", nil)
	requireAppCode(t, err, apperrors.CodeEntityNotFound)

	_, err = snapshots.List(ctx, "org-1", "rocket", "id", 10)
	requireAppCode(t, err, apperrors.CodeInvalidEntity)
}
