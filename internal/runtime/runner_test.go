package runtime

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/ent/pipelinerun"
	"waterline.io/waterline/ent/stepresult"
	entsubmission "waterline.io/waterline/ent/submission"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/pkg/worker"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/store"
	"waterline.io/waterline/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

// recordingDispatcher collects dispatched run ids without executing them.
// Fan-out dispatch is detached, so access is synchronized.
type recordingDispatcher struct {
	mu     sync.Mutex
	runIDs []string
}

func (d *recordingDispatcher) DispatchRun(ctx context.Context, runID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.runIDs = append(d.runIDs, runID)
	return nil
}

func (d *recordingDispatcher) snapshot() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.runIDs...)
}

type runnerEnv struct {
	client     *ent.Client
	store      *store.EntityStore
	registry   *registry.Registry
	dispatcher *recordingDispatcher
	runner     *Runner
}

func newRunnerEnv(t *testing.T, prefix string) *runnerEnv {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	m := metrics.New()
	entities := store.NewEntityStore(client, m)
	reg := registry.New()
	dispatcher := &recordingDispatcher{}
	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	runner := NewRunner(client, reg, entities, dispatcher, pools, m, config.PipelineConfig{
		MaxFanOutDepth:        3,
		MaxBatchEntities:      100,
		DefaultFreshnessHours: 24,
	})
	return &runnerEnv{client: client, store: entities, registry: reg, dispatcher: dispatcher, runner: runner}
}

func (e *runnerEnv) createOrg(t *testing.T, id string) {
	t.Helper()
	_, err := e.client.Org.Create().SetID(id).SetName(id).Save(context.Background())
	require.NoError(t, err)
}

func (e *runnerEnv) createSubmission(t *testing.T, orgID string, maxDepth int) *ent.Submission {
	t.Helper()
	sub, err := e.client.Submission.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(orgID).
		SetBlueprintID(uuid.Must(uuid.NewV7()).String()).
		SetEntities([]map[string]interface{}{}).
		SetMaxDepth(maxDepth).
		Save(context.Background())
	require.NoError(t, err)
	return sub
}

func (e *runnerEnv) createRun(
	t *testing.T,
	sub *ent.Submission,
	entityType domain.EntityType,
	steps []domain.BlueprintStepSnapshot,
	seed map[string]interface{},
) *ent.PipelineRun {
	t.Helper()
	snapshot, err := domain.StepsToMaps(steps)
	require.NoError(t, err)
	run, err := e.client.PipelineRun.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID(sub.OrgID).
		SetSubmission(sub).
		SetEntityType(pipelinerun.EntityType(entityType)).
		SetBlueprintSnapshot(snapshot).
		SetEntityInput(seed).
		Save(context.Background())
	require.NoError(t, err)
	return run
}

func (e *runnerEnv) stepResults(t *testing.T, runID string) []*ent.StepResult {
	t.Helper()
	rows, err := e.client.StepResult.Query().
		Where(stepresult.HasRunWith(pipelinerun.ID(runID))).
		Order(ent.Asc(stepresult.FieldPosition), ent.Asc(stepresult.FieldAttemptNumber)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func (e *runnerEnv) reloadRun(t *testing.T, runID string) *ent.PipelineRun {
	t.Helper()
	run, err := e.client.PipelineRun.Get(context.Background(), runID)
	require.NoError(t, err)
	return run
}

func (e *runnerEnv) reloadSubmission(t *testing.T, id string) *ent.Submission {
	t.Helper()
	sub, err := e.client.Submission.Get(context.Background(), id)
	require.NoError(t, err)
	return sub
}

func enabledStep(position int, operationID string) domain.BlueprintStepSnapshot {
	return domain.BlueprintStepSnapshot{Position: position, OperationID: operationID, IsEnabled: true}
}

func TestExecuteRun_WaterfallContext(t *testing.T) {
	env := newRunnerEnv(t, "runner_waterfall")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			return domain.NewResult("company.enrich.firmographics").Found(map[string]interface{}{
				"name":     "Acme",
				"industry": "SaaS",
			}, domain.Attempt{Provider: "harmonic", Action: "enrich", Status: domain.StatusFound})
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	var secondInput map[string]interface{}
	env.registry.MustRegister("company.enrich.tech_stack",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			secondInput = input
			return domain.NewResult("company.enrich.tech_stack").Found(map[string]interface{}{
				"tech_stack": []interface{}{"go"},
			}, domain.Attempt{Provider: "builtwith", Action: "enrich", Status: domain.StatusFound})
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{
			enabledStep(1, "company.enrich.firmographics"),
			{Position: 2, OperationID: "company.enrich.tech_stack", IsEnabled: true,
				StepConfig: map[string]interface{}{"max_results": float64(10)}},
		},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))

	// The second step saw the seed, the injected tenancy keys, the first
	// step's output via cumulative context, and its own step config.
	require.Equal(t, "acme.com", secondInput["company_domain"])
	require.Equal(t, "org-1", secondInput["org_id"])
	require.NotEmpty(t, secondInput["entity_id"])
	cumulative := secondInput["cumulative_context"].(map[string]interface{})
	require.Equal(t, "SaaS", cumulative["industry"])
	stepConfig := secondInput["step_config"].(map[string]interface{})
	require.Equal(t, float64(10), stepConfig["max_results"])

	reloaded := env.reloadRun(t, run.ID)
	require.Equal(t, pipelinerun.StatusSUCCEEDED, reloaded.Status)
	require.NotNil(t, reloaded.StartedAt)
	require.NotNil(t, reloaded.FinishedAt)
	require.Equal(t, 3, reloaded.CurrentPosition)
	require.Equal(t, "SaaS", reloaded.CumulativeContext["industry"])

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 2)
	require.Equal(t, stepresult.StatusSUCCEEDED, rows[0].Status)
	require.Equal(t, stepresult.StatusSUCCEEDED, rows[1].Status)
	require.NotContains(t, rows[1].InputPayload, "cumulative_context",
		"the context is reconstructible and is not duplicated per row")

	// Found canonical fields were merged into the entity store.
	_, rec, err := env.store.Resolve(ctx, "org-1", domain.EntityCompany,
		map[string]interface{}{"company_domain": "acme.com"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "Acme", rec.CanonicalPayload["name"])
	require.Equal(t, []interface{}{"go"}, rec.CanonicalPayload["tech_stack"])
	require.Equal(t, []string{"harmonic", "builtwith"}, rec.SourceProviders)

	require.Equal(t, entsubmission.StatusCOMPLETED, env.reloadSubmission(t, sub.ID).Status)
}

func TestExecuteRun_FailureIsFatal(t *testing.T) {
	env := newRunnerEnv(t, "runner_failure")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			return domain.NewResult("company.enrich.firmographics").Failed("upstream_error", "provider exploded")
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)
	var secondCalls int32
	env.registry.MustRegister("company.enrich.tech_stack",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			atomic.AddInt32(&secondCalls, 1)
			return domain.NewResult("company.enrich.tech_stack").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{
			enabledStep(1, "company.enrich.firmographics"),
			enabledStep(2, "company.enrich.tech_stack"),
		},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	// Business failure: the run lands FAILED and the job is not retried.
	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))

	reloaded := env.reloadRun(t, run.ID)
	require.Equal(t, pipelinerun.StatusFAILED, reloaded.Status)
	require.Contains(t, reloaded.ErrorMessage, "upstream_error")
	require.Contains(t, reloaded.ErrorMessage, "step 1")
	require.Zero(t, atomic.LoadInt32(&secondCalls), "later steps never run after a failure")

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 1)
	require.Equal(t, stepresult.StatusFAILED, rows[0].Status)
	require.Contains(t, rows[0].ErrorMessage, "provider exploded")

	require.Equal(t, entsubmission.StatusFAILED, env.reloadSubmission(t, sub.ID).Status)
}

func TestExecuteRun_NotFoundAndSkippedContinue(t *testing.T) {
	env := newRunnerEnv(t, "runner_notfound")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	env.registry.MustRegister("person.search.contact",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			return domain.NewResult("person.search.contact").NotFound(
				domain.Attempt{Provider: "hunter", Action: "search", Status: domain.StatusNotFound, HTTPStatus: 404},
			)
		},
		registry.Metadata{EntityType: domain.EntityPerson},
	)
	env.registry.MustRegister("person.enrich.profile",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			return domain.NewResult("person.enrich.profile").Skipped("missing_api_key")
		},
		registry.Metadata{EntityType: domain.EntityPerson},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityPerson,
		[]domain.BlueprintStepSnapshot{
			enabledStep(1, "person.search.contact"),
			enabledStep(2, "person.enrich.profile"),
		},
		map[string]interface{}{"full_name": "Jane Doe"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))

	reloaded := env.reloadRun(t, run.ID)
	require.Equal(t, pipelinerun.StatusSUCCEEDED, reloaded.Status)

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 2)
	require.Equal(t, stepresult.StatusNOT_FOUND, rows[0].Status)
	require.Equal(t, stepresult.StatusSKIPPED, rows[1].Status)
	require.Equal(t, "missing_api_key", rows[1].SkipReason)
}

func TestExecuteRun_DisabledStep(t *testing.T) {
	env := newRunnerEnv(t, "runner_disabled")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	var called int32
	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			atomic.AddInt32(&called, 1)
			return domain.NewResult("company.enrich.firmographics").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{
			{Position: 1, OperationID: "company.enrich.firmographics", IsEnabled: false},
		},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))
	require.Zero(t, atomic.LoadInt32(&called))

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 1)
	require.Equal(t, stepresult.StatusSKIPPED, rows[0].Status)
	require.Equal(t, "disabled", rows[0].SkipReason)
	require.Equal(t, pipelinerun.StatusSUCCEEDED, env.reloadRun(t, run.ID).Status)
}

func TestExecuteRun_UnknownOperationFailsRun(t *testing.T) {
	env := newRunnerEnv(t, "runner_unknown_op")
	env.createOrg(t, "org-1")

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{enabledStep(1, "company.enrich.retired_topic")},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(context.Background(), run.ID))

	reloaded := env.reloadRun(t, run.ID)
	require.Equal(t, pipelinerun.StatusFAILED, reloaded.Status)
	require.Contains(t, reloaded.ErrorMessage, "not registered")

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 1)
	require.Contains(t, rows[0].ErrorMessage, "unknown_operation")
}

func TestExecuteRun_FreshnessSkip(t *testing.T) {
	env := newRunnerEnv(t, "runner_freshness")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	// The entity was enriched moments ago.
	_, err := env.store.Upsert(ctx, store.UpsertRequest{
		OrgID:      "org-1",
		EntityType: domain.EntityCompany,
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com",
			"industry":         "SaaS",
			"name":             "Acme",
		},
		RunID: "earlier-run",
	})
	require.NoError(t, err)

	var enrichCalls int32
	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			atomic.AddInt32(&enrichCalls, 1)
			return domain.NewResult("company.enrich.firmographics").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)
	var downstreamContext map[string]interface{}
	env.registry.MustRegister("company.derive.summary",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			downstreamContext, _ = input["cumulative_context"].(map[string]interface{})
			return domain.NewResult("company.derive.summary").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityNone},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{
			{Position: 1, OperationID: "company.enrich.firmographics", IsEnabled: true,
				SkipIfFresh: &domain.SkipIfFresh{MaxAgeHours: 24}},
			enabledStep(2, "company.derive.summary"),
		},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))
	require.Zero(t, atomic.LoadInt32(&enrichCalls), "fresh entity short-circuits the provider call")

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 2)
	require.Equal(t, stepresult.StatusSKIPPED, rows[0].Status)
	require.Equal(t, "entity_state_fresh", rows[0].SkipReason)
	require.Equal(t, "SaaS", rows[0].OutputPayload["industry"],
		"the stored payload stands in for the skipped output")

	// Downstream steps still see the fields the skipped step would produce.
	require.NotNil(t, downstreamContext)
	require.Equal(t, "SaaS", downstreamContext["industry"])
	require.Equal(t, "Acme", downstreamContext["name"])
}

func TestExecuteRun_StaleEntityRunsStep(t *testing.T) {
	env := newRunnerEnv(t, "runner_stale")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	var enrichCalls int32
	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			atomic.AddInt32(&enrichCalls, 1)
			return domain.NewResult("company.enrich.firmographics").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{
			// No row exists for this entity, so the skip never fires.
			{Position: 1, OperationID: "company.enrich.firmographics", IsEnabled: true,
				SkipIfFresh: &domain.SkipIfFresh{MaxAgeHours: 24}},
		},
		map[string]interface{}{"company_domain": "never-seen.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))
	require.Equal(t, int32(1), atomic.LoadInt32(&enrichCalls))
}

func TestExecuteRun_FanOut(t *testing.T) {
	env := newRunnerEnv(t, "runner_fanout")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	env.registry.MustRegister("company.search.customers",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			return domain.NewResult("company.search.customers").Found(map[string]interface{}{
				"customers": []interface{}{
					map[string]interface{}{"company_domain": "alpha.com", "name": "Alpha"},
					map[string]interface{}{"company_domain": "beta.com", "name": "Beta"},
					// Duplicate of the first item after normalization.
					map[string]interface{}{"company_domain": "https://www.alpha.com/"},
				},
			}, domain.Attempt{Provider: "exa", Action: "search", Status: domain.StatusFound})
		},
		registry.Metadata{
			EntityType:       domain.EntityNone,
			FanOutKey:        "customers",
			FanOutEntityType: domain.EntityCompany,
		},
	)
	var enrichCalls int32
	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			atomic.AddInt32(&enrichCalls, 1)
			return domain.NewResult("company.enrich.firmographics").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	// A sibling run already covers alpha.com; fan-out still spawns a child
	// for it and collapsing is left to the entity store at upsert time.
	env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{enabledStep(1, "company.enrich.firmographics")},
		map[string]interface{}{"company_domain": "alpha.com"},
	)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{
			{Position: 1, OperationID: "company.search.customers", IsEnabled: true, FanOut: true},
			enabledStep(2, "company.enrich.firmographics"),
		},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))

	children, err := env.client.PipelineRun.Query().
		Where(pipelinerun.ParentRunID(run.ID)).
		Order(ent.Asc(pipelinerun.FieldID)). // UUIDv7 ids sort by creation
		All(ctx)
	require.NoError(t, err)
	require.Len(t, children, 2, "the in-expansion duplicate collapses by dedup key")

	for _, child := range children {
		require.Equal(t, pipelinerun.StatusQUEUED, child.Status)
		require.Equal(t, 1, child.Depth)
		require.Equal(t, run.ID, child.TriggerRunID, "a root parent is its own trigger")
		require.Equal(t, run.BlueprintSnapshot, child.BlueprintSnapshot)
		require.Equal(t, 2, child.CurrentPosition, "children resume after the fan-out position")
		require.NotNil(t, child.CumulativeContext["customers"],
			"children inherit the parent's context at the fan-out position")
	}
	require.Equal(t, "alpha.com", children[0].EntityInput["company_domain"])
	require.Equal(t, "alpha.com", children[0].CumulativeContext["company_domain"])
	require.Equal(t, "Alpha", children[0].CumulativeContext["name"])
	require.Equal(t, "beta.com", children[1].EntityInput["company_domain"])

	require.Eventually(t, func() bool {
		return len(env.dispatcher.snapshot()) == 2
	}, 2*time.Second, 10*time.Millisecond, "detached dispatch reaches both children")
	require.ElementsMatch(t, []string{children[0].ID, children[1].ID}, env.dispatcher.snapshot())

	// The parent finished at the fan-out position without executing step 2.
	reloaded := env.reloadRun(t, run.ID)
	require.Equal(t, pipelinerun.StatusSUCCEEDED, reloaded.Status)
	require.Zero(t, atomic.LoadInt32(&enrichCalls),
		"the continuation past the fan-out belongs to the children")

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 1)
	require.Equal(t, 2, rows[0].ChildrenSpawned)
	require.Len(t, rows[0].SkippedDuplicates, 1)
}

func TestExecuteRun_FanOutSuppressedAtMaxDepth(t *testing.T) {
	env := newRunnerEnv(t, "runner_fanout_depth")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	env.registry.MustRegister("company.search.customers",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			return domain.NewResult("company.search.customers").Found(map[string]interface{}{
				"customers": []interface{}{
					map[string]interface{}{"company_domain": "alpha.com"},
				},
			})
		},
		registry.Metadata{
			EntityType:       domain.EntityNone,
			FanOutKey:        "customers",
			FanOutEntityType: domain.EntityCompany,
		},
	)

	sub := env.createSubmission(t, "org-1", 1)
	snapshot, err := domain.StepsToMaps([]domain.BlueprintStepSnapshot{
		{Position: 1, OperationID: "company.search.customers", IsEnabled: true, FanOut: true},
	})
	require.NoError(t, err)
	run, err := env.client.PipelineRun.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetOrgID("org-1").
		SetSubmission(sub).
		SetEntityType(pipelinerun.EntityTypeCompany).
		SetBlueprintSnapshot(snapshot).
		SetEntityInput(map[string]interface{}{"company_domain": "acme.com"}).
		SetDepth(1). // already at the bound
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))

	count, err := env.client.PipelineRun.Query().
		Where(pipelinerun.ParentRunID(run.ID)).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, env.dispatcher.snapshot())
	require.Equal(t, pipelinerun.StatusSUCCEEDED, env.reloadRun(t, run.ID).Status)

	// The suppression is on the record, not just in the logs.
	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 1)
	require.Equal(t, 0, rows[0].ChildrenSpawned)
	require.Equal(t, SkipReasonDepthExhausted, rows[0].SkipReason)
}

func TestExecuteRun_CancelledSubmissionSkipsRun(t *testing.T) {
	env := newRunnerEnv(t, "runner_cancel")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	var called int32
	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			atomic.AddInt32(&called, 1)
			return domain.NewResult("company.enrich.firmographics").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	_, err := env.client.Submission.UpdateOneID(sub.ID).SetCancelRequested(true).Save(ctx)
	require.NoError(t, err)
	sub = env.reloadSubmission(t, sub.ID)

	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{enabledStep(1, "company.enrich.firmographics")},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))
	require.Zero(t, atomic.LoadInt32(&called))

	reloaded := env.reloadRun(t, run.ID)
	require.Equal(t, pipelinerun.StatusSKIPPED, reloaded.Status)
	require.Equal(t, "submission cancelled", reloaded.ErrorMessage)
	require.Equal(t, entsubmission.StatusCANCELLED, env.reloadSubmission(t, sub.ID).Status)
}

func TestExecuteRun_TerminalRunIsNoop(t *testing.T) {
	env := newRunnerEnv(t, "runner_terminal")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	var called int32
	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			atomic.AddInt32(&called, 1)
			return domain.NewResult("company.enrich.firmographics").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{enabledStep(1, "company.enrich.firmographics")},
		map[string]interface{}{"company_domain": "acme.com"},
	)
	_, err := env.client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusSUCCEEDED).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	require.NoError(t, err)

	// At-least-once dispatch can redeliver a finished run.
	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))
	require.Zero(t, atomic.LoadInt32(&called))
}

func TestExecuteRun_RedeliveryRecordsFreshAttempt(t *testing.T) {
	env := newRunnerEnv(t, "runner_attempts")
	env.createOrg(t, "org-1")
	ctx := context.Background()

	env.registry.MustRegister("company.enrich.firmographics",
		func(ctx context.Context, input map[string]interface{}) *domain.Result {
			return domain.NewResult("company.enrich.firmographics").NotFound()
		},
		registry.Metadata{EntityType: domain.EntityCompany},
	)

	sub := env.createSubmission(t, "org-1", 3)
	run := env.createRun(t, sub, domain.EntityCompany,
		[]domain.BlueprintStepSnapshot{enabledStep(1, "company.enrich.firmographics")},
		map[string]interface{}{"company_domain": "acme.com"},
	)

	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))

	// Simulate a redelivery of a run that lost its terminal write.
	_, err := env.client.PipelineRun.UpdateOneID(run.ID).
		SetStatus(pipelinerun.StatusQUEUED).
		SetCurrentPosition(1).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, env.runner.ExecuteRun(ctx, run.ID))

	rows := env.stepResults(t, run.ID)
	require.Len(t, rows, 2, "history is append-only across redeliveries")
	require.Equal(t, 1, rows[0].AttemptNumber)
	require.Equal(t, 2, rows[1].AttemptNumber)
}

func TestExecuteRun_MissingRunIsNoop(t *testing.T) {
	env := newRunnerEnv(t, "runner_missing")
	require.NoError(t, env.runner.ExecuteRun(context.Background(), uuid.NewString()))
}
