package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/hook"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	"waterline.io/waterline/internal/metrics"
	apperrors "waterline.io/waterline/internal/pkg/errors"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func newTestStore(t *testing.T, prefix string) *EntityStore {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	return NewEntityStore(client, metrics.New())
}

func TestUpsert_CreateThenMerge(t *testing.T) {
	store := newTestStore(t, "upsert_create_merge")
	ctx := context.Background()

	first, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com",
			"name":             "Acme",
			"industry":         "SaaS",
			"employee_count":   float64(50),
		},
		RunID:       "run-1",
		OperationID: "company.enrich.firmographics",
		Providers:   []string{"harmonic"},
	})
	require.NoError(t, err)
	require.True(t, first.Created)
	require.Equal(t, 1, first.Record.RecordVersion)
	require.Equal(t, "run-1", first.Record.LastRunID)
	require.NotNil(t, first.Record.LastEnrichedAt)

	// No snapshot exists until the row is mutated.
	snaps, err := store.Snapshots(ctx, "org-1", domain.EntityCompany, first.Record.ID, 10)
	require.NoError(t, err)
	require.Empty(t, snaps)

	second, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com",
			"industry":         "Fintech",
			"tech_stack":       []interface{}{"go"},
			"name":             nil, // null never erases
		},
		RunID:       "run-2",
		OperationID: "company.enrich.tech_stack",
		Providers:   []string{"builtwith", "harmonic"},
	})
	require.NoError(t, err)
	require.False(t, second.Created)
	require.Equal(t, first.Record.ID, second.Record.ID, "same identity lands on the same row")
	require.Equal(t, 2, second.Record.RecordVersion)

	payload := second.Record.CanonicalPayload
	require.Equal(t, "Acme", payload["name"])
	require.Equal(t, "Fintech", payload["industry"])
	require.Equal(t, float64(50), payload["employee_count"])
	require.Equal(t, []interface{}{"go"}, payload["tech_stack"])

	require.Equal(t, []string{"harmonic", "builtwith"}, second.Record.SourceProviders)
	require.Equal(t, "run-2", second.Record.LastRunID)
	require.Equal(t, "company.enrich.tech_stack", second.Record.LastOperationID)

	// The pre-image at version 1 was snapshotted before the update landed.
	snaps, err = store.Snapshots(ctx, "org-1", domain.EntityCompany, first.Record.ID, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	require.Equal(t, 1, snaps[0].RecordVersion)
	require.Equal(t, "SaaS", snaps[0].CanonicalPayload["industry"])
	require.Equal(t, "run-2", snaps[0].SourceRunID)
}

func TestUpsert_IdentityCollapsesAcrossSpelling(t *testing.T) {
	store := newTestStore(t, "upsert_identity")
	ctx := context.Background()

	a, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"company_domain": "https://www.Acme.com/"},
		RunID:      "run-1",
	})
	require.NoError(t, err)

	b, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"domain": "acme.com"},
		RunID:      "run-2",
	})
	require.NoError(t, err)
	require.Equal(t, a.Record.ID, b.Record.ID)
	require.False(t, b.Created)
}

func TestUpsert_OrgIsolation(t *testing.T) {
	store := newTestStore(t, "upsert_org_isolation")
	ctx := context.Background()

	fields := map[string]interface{}{"canonical_domain": "acme.com", "name": "Acme"}
	a, err := store.Upsert(ctx, UpsertRequest{OrgID: "org-a", EntityType: domain.EntityCompany, Fields: fields, RunID: "r1"})
	require.NoError(t, err)

	// Same identity, different org: the other tenant never sees it.
	rec, err := store.Get(ctx, "org-b", domain.EntityCompany, a.Record.ID)
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestCheckFreshness(t *testing.T) {
	store := newTestStore(t, "freshness")
	ctx := context.Background()

	fields := map[string]interface{}{"linkedin_url": "https://linkedin.com/in/jane"}

	// Missing row is stale.
	fresh, rec, err := store.CheckFreshness(ctx, "org-1", domain.EntityPerson, fields, 24*time.Hour)
	require.NoError(t, err)
	require.False(t, fresh)
	require.Nil(t, rec)

	_, err = store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityPerson,
		Fields:     map[string]interface{}{"linkedin_url": "https://linkedin.com/in/Jane/", "full_name": "Jane"},
		RunID:      "run-1",
	})
	require.NoError(t, err)

	fresh, rec, err = store.CheckFreshness(ctx, "org-1", domain.EntityPerson, fields, 24*time.Hour)
	require.NoError(t, err)
	require.True(t, fresh)
	require.NotNil(t, rec)
	require.Equal(t, "Jane", rec.CanonicalPayload["full_name"])

	// A zero window means everything is stale.
	fresh, _, err = store.CheckFreshness(ctx, "org-1", domain.EntityPerson, fields, 0)
	require.NoError(t, err)
	require.False(t, fresh)
}

func TestList_PagesMostRecentFirst(t *testing.T) {
	store := newTestStore(t, "list")
	ctx := context.Background()

	for _, d := range []string{"a.com", "b.com", "c.com"} {
		_, err := store.Upsert(ctx, UpsertRequest{
			OrgID:      "org-1",
			EntityType: domain.EntityCompany,
			Fields:     map[string]interface{}{"canonical_domain": d},
			RunID:      "run-1",
		})
		require.NoError(t, err)
	}

	page, err := store.List(ctx, "org-1", domain.EntityCompany, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)

	rest, err := store.List(ctx, "org-1", domain.EntityCompany, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)

	empty, err := store.List(ctx, "org-other", domain.EntityCompany, 10, 0)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestSnapshots_NewestVersionFirst(t *testing.T) {
	store := newTestStore(t, "snapshots")
	ctx := context.Background()

	fields := map[string]interface{}{"canonical_domain": "acme.com"}
	for i, industry := range []string{"SaaS", "Fintech", "Hardware"} {
		_, err := store.Upsert(ctx, UpsertRequest{
			OrgID:      "org-1",
			EntityType: domain.EntityCompany,
			Fields:     map[string]interface{}{"canonical_domain": "acme.com", "industry": industry},
			RunID:      "run-x",
		})
		require.NoError(t, err, "upsert %d", i)
	}

	id := identity.ResolveEntityID(domain.EntityCompany, fields)
	snaps, err := store.Snapshots(ctx, "org-1", domain.EntityCompany, id, 10)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	require.Equal(t, 2, snaps[0].RecordVersion)
	require.Equal(t, 1, snaps[1].RecordVersion)
	require.Equal(t, "Fintech", snaps[0].CanonicalPayload["industry"])
	require.Equal(t, "SaaS", snaps[1].CanonicalPayload["industry"])
}

func TestUpsert_InvalidEntityType(t *testing.T) {
	store := newTestStore(t, "upsert_invalid_type")
	_, err := store.Upsert(context.Background(), UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityNone,
		Fields:     map[string]interface{}{"name": "x"},
	})
	require.Error(t, err)
}

func TestUpsert_AdoptsRowByNaturalKey(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "upsert_natural_key")
	store := NewEntityStore(client, metrics.New())
	ctx := context.Background()

	// The first write keys the row on its domain.
	first, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"company_domain": "acme.com",
			"linkedin_url":   "https://linkedin.com/company/Acme/",
		},
		RunID: "run-1",
	})
	require.NoError(t, err)

	// A later write sees only the LinkedIn URL and would derive a different
	// id; the projected column brings it back to the same row.
	second, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"linkedin_url": "https://linkedin.com/company/acme",
			"industry":     "SaaS",
		},
		RunID: "run-2",
	})
	require.NoError(t, err)
	require.False(t, second.Created)
	require.Equal(t, first.Record.ID, second.Record.ID)
	require.Equal(t, 2, second.Record.RecordVersion)
	require.Equal(t, "acme.com", second.Record.CanonicalPayload["company_domain"])

	count, err := client.CompanyEntity.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count, "one real-world entity never splits across rows")

	// Freshness resolves through the same fallback.
	fresh, rec, err := store.CheckFreshness(ctx, "org-1", domain.EntityCompany,
		map[string]interface{}{"linkedin_url": "https://linkedin.com/company/acme"}, 24*time.Hour)
	require.NoError(t, err)
	require.True(t, fresh)
	require.Equal(t, first.Record.ID, rec.ID)
}

func TestLookupByNaturalKey_Person(t *testing.T) {
	store := newTestStore(t, "natural_key_person")
	ctx := context.Background()

	created, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityPerson,
		Fields: map[string]interface{}{
			"linkedin_url": "https://linkedin.com/in/jane",
			"work_email":   "Jane@Acme.com",
		},
		RunID: "run-1",
	})
	require.NoError(t, err)

	rec, err := store.LookupByNaturalKey(ctx, "org-1", domain.EntityPerson,
		map[string]interface{}{"work_email": "jane@acme.com"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, created.Record.ID, rec.ID)

	rec, err = store.LookupByNaturalKey(ctx, "org-1", domain.EntityPerson,
		map[string]interface{}{"work_email": "nobody@acme.com"})
	require.NoError(t, err)
	require.Nil(t, rec)

	// Tenant isolation holds on projected columns too.
	rec, err = store.LookupByNaturalKey(ctx, "org-2", domain.EntityPerson,
		map[string]interface{}{"work_email": "jane@acme.com"})
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestFreshWindowBoundary(t *testing.T) {
	now := time.Now()
	require.True(t, fresh(now.Add(-72*time.Hour), now, 72*time.Hour),
		"age equal to the window is still fresh")
	require.False(t, fresh(now.Add(-72*time.Hour-time.Second), now, 72*time.Hour))
}

func TestUpsert_RetriesAfterLostCAS(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "upsert_cas_retry")
	store := NewEntityStore(client, metrics.New())
	ctx := context.Background()

	first, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"canonical_domain": "acme.com", "name": "Acme"},
		RunID:      "run-1",
	})
	require.NoError(t, err)
	id := first.Record.ID

	// A concurrent writer lands between the read and the guarded update,
	// exactly once.
	var raced bool
	client.CompanyEntity.Use(func(next ent.Mutator) ent.Mutator {
		return hook.CompanyEntityFunc(func(ctx context.Context, m *ent.CompanyEntityMutation) (ent.Value, error) {
			if m.Op().Is(ent.OpUpdate) && !raced {
				raced = true
				if err := client.CompanyEntity.UpdateOneID(id).AddRecordVersion(1).Exec(ctx); err != nil {
					return nil, err
				}
			}
			return next.Mutate(ctx, m)
		})
	})

	second, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"canonical_domain": "acme.com", "industry": "SaaS"},
		RunID:      "run-2",
	})
	require.NoError(t, err)
	require.Equal(t, 1, second.Conflicts)
	require.Equal(t, 3, second.Record.RecordVersion, "winner's bump plus the retried write")
	require.Equal(t, "SaaS", second.Record.CanonicalPayload["industry"])
}

func TestUpsert_SurfacesVersionConflictAfterRepeatedLosses(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "upsert_cas_conflict")
	store := NewEntityStore(client, metrics.New())
	ctx := context.Background()

	first, err := store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"canonical_domain": "acme.com"},
		RunID:      "run-1",
	})
	require.NoError(t, err)
	id := first.Record.ID

	// Every guarded update loses to a writer that touched the row after the
	// reload.
	client.CompanyEntity.Use(func(next ent.Mutator) ent.Mutator {
		return hook.CompanyEntityFunc(func(ctx context.Context, m *ent.CompanyEntityMutation) (ent.Value, error) {
			if m.Op().Is(ent.OpUpdate) {
				if err := client.CompanyEntity.UpdateOneID(id).AddRecordVersion(1).Exec(ctx); err != nil {
					return nil, err
				}
			}
			return next.Mutate(ctx, m)
		})
	})

	_, err = store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"canonical_domain": "acme.com", "industry": "SaaS"},
		RunID:      "run-2",
	})
	require.Error(t, err)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeVersionConflict, appErr.Code)
}

func TestChangeDetector_Detect(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "changedetect")
	store := NewEntityStore(client, metrics.New())
	detector := NewChangeDetector(client)
	ctx := context.Background()

	fields := map[string]interface{}{"canonical_domain": "acme.com"}
	id := identity.ResolveEntityID(domain.EntityCompany, fields)

	// Unknown entity yields an empty report, not an error.
	report, err := detector.Detect(ctx, "org-1", domain.EntityCompany, id, nil)
	require.NoError(t, err)
	require.False(t, report.HasChanges)
	require.Equal(t, ReasonInsufficientHistory, report.Reason)
	require.Empty(t, report.Changes)

	_, err = store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com", "industry": "SaaS", "employee_count": float64(50),
		},
		RunID: "run-1",
	})
	require.NoError(t, err)
	_, err = store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"canonical_domain": "acme.com", "employee_count": float64(65)},
		RunID:      "run-2",
	})
	require.NoError(t, err)

	// Two versions leave one snapshot: still nothing to diff.
	report, err = detector.Detect(ctx, "org-1", domain.EntityCompany, id, nil)
	require.NoError(t, err)
	require.False(t, report.HasChanges)
	require.Equal(t, ReasonInsufficientHistory, report.Reason)

	_, err = store.Upsert(ctx, UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields:     map[string]interface{}{"canonical_domain": "acme.com", "industry": "Fintech"},
		RunID:      "run-3",
	})
	require.NoError(t, err)

	// The diff covers the two newest snapshots (v1 vs v2), not the live row.
	report, err = detector.Detect(ctx, "org-1", domain.EntityCompany, id, nil)
	require.NoError(t, err)
	require.True(t, report.HasChanges)
	require.Empty(t, report.Reason)
	require.Equal(t, 1, report.FromVersion)
	require.Equal(t, 2, report.ToVersion)
	require.NotNil(t, report.PreviousSnapshotAt)
	require.NotNil(t, report.CurrentSnapshotAt)
	require.False(t, report.CurrentSnapshotAt.Before(*report.PreviousSnapshotAt))

	byField := map[string]FieldChange{}
	for _, c := range report.Changes {
		byField[c.Field] = c
	}
	require.Len(t, report.Changes, 1)
	require.Equal(t, ChangeIncreased, byField["employee_count"].Kind)
	require.Equal(t, 15.0, *byField["employee_count"].AbsoluteChange)
	require.InDelta(t, 30.0, *byField["employee_count"].PercentChange, 1e-9)
	require.Contains(t, report.UnchangedFields, "industry")
	require.Contains(t, report.UnchangedFields, "canonical_domain")

	// Watched-field filter narrows the report.
	report, err = detector.Detect(ctx, "org-1", domain.EntityCompany, id, []string{"employee_count"})
	require.NoError(t, err)
	require.Len(t, report.Changes, 1)
	require.Equal(t, "employee_count", report.Changes[0].Field)
	require.Empty(t, report.UnchangedFields)
}
