package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"waterline.io/waterline/ent"
	"waterline.io/waterline/internal/api/middleware"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/operations"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/service"
	"waterline.io/waterline/internal/store"
	"waterline.io/waterline/internal/testutil"
	"waterline.io/waterline/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

type nopDispatcher struct{}

func (nopDispatcher) DispatchRun(ctx context.Context, runID string) error { return nil }

// newBehaviorTestServer wires the full HTTP surface over an isolated schema:
// real router, real middleware, real use cases, no-op dispatch.
func newBehaviorTestServer(t *testing.T, prefix string) (*gin.Engine, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)

	if _, err := client.Org.Create().
		SetID("org-1").
		SetName("Acme").
		Save(context.Background()); err != nil {
		t.Fatalf("create org: %v", err)
	}

	reg := registry.New()
	operations.RegisterAll(reg, operations.Deps{})

	m := metrics.New()
	entities := store.NewEntityStore(client, m)
	detector := store.NewChangeDetector(client)
	blueprints := service.NewBlueprintService(client, reg)
	pipelineCfg := config.PipelineConfig{
		MaxFanOutDepth:        3,
		MaxBatchEntities:      100,
		DefaultFreshnessHours: 72,
	}

	srv := NewServer(ServerDeps{
		EntClient:    client,
		Registry:     reg,
		BlueprintSvc: blueprints,
		SubmitUC:     usecase.NewSubmitBatchUseCase(client, blueprints, reg, nopDispatcher{}, pipelineCfg),
		StatusUC:     usecase.NewBatchStatusUseCase(client),
		CancelUC:     usecase.NewCancelSubmissionUseCase(client),
		EntitiesUC:   usecase.NewQueryEntitiesUseCase(entities, detector),
		SnapshotsUC:  usecase.NewQuerySnapshotsUseCase(entities),
	})

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.ErrorHandler())
	srv.RegisterRoutes(router)
	return router, client
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.OrgIDHeader, "org-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	body := decodeBody(t, w)
	if body["code"] != want {
		t.Errorf("error code = %v, want %s (body %s)", body["code"], want, w.Body.String())
	}
}

func createTestBlueprint(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/blueprints", CreateBlueprintRequest{
		Name: "company-basics",
		Steps: []service.StepInput{
			{Position: 1, OperationID: "company.enrich.firmographics"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create blueprint status = %d body=%s", w.Code, w.Body.String())
	}
	id, _ := decodeBody(t, w)["blueprint_id"].(string)
	if id == "" {
		t.Fatal("blueprint id missing from response")
	}
	return id
}

func TestAPI_RequiresOrgHeader(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "api_org_header")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/blueprints", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	assertErrorCode(t, w, "ORG_HEADER_MISSING")
}

func TestAPI_ListOperations(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "api_operations")

	w := doJSON(t, router, http.MethodGet, "/api/v1/operations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	ops, _ := decodeBody(t, w)["operations"].([]interface{})
	if len(ops) != 10 {
		t.Fatalf("operations = %d, want 10", len(ops))
	}
	first, _ := ops[0].(map[string]interface{})
	if first["operation_id"] == "" {
		t.Error("operation_id missing from catalog entry")
	}
}

func TestAPI_BlueprintLifecycle(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "api_blueprint")
	id := createTestBlueprint(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/blueprints/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["name"] != "company-basics" {
		t.Errorf("name = %v, want company-basics", body["name"])
	}
	if body["is_active"] != true {
		t.Errorf("is_active = %v, want true", body["is_active"])
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/blueprints/"+id+"/deactivate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d body=%s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["is_active"] != false {
		t.Error("blueprint still active after deactivate")
	}

	// Inactive blueprints reject new submissions.
	w = doJSON(t, router, http.MethodPost, "/api/v1/submissions", SubmitBatchRequest{
		BlueprintID: id,
		EntityType:  "company",
		Entities:    []map[string]interface{}{{"company_domain": "acme.com"}},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("submit status = %d, want %d body=%s", w.Code, http.StatusConflict, w.Body.String())
	}
	assertErrorCode(t, w, "BLUEPRINT_INACTIVE")
}

func TestAPI_BlueprintValidationFailure(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "api_blueprint_invalid")

	w := doJSON(t, router, http.MethodPost, "/api/v1/blueprints", CreateBlueprintRequest{
		Name: "broken",
		Steps: []service.StepInput{
			{Position: 1, OperationID: "company.enrich.firmographics", FanOut: true},
		},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
	assertErrorCode(t, w, "BLUEPRINT_INVALID")
}

func TestAPI_SubmissionLifecycle(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "api_submission")
	id := createTestBlueprint(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/submissions", SubmitBatchRequest{
		BlueprintID: id,
		EntityType:  "company",
		Entities: []map[string]interface{}{
			{"company_domain": "acme.com"},
			{"company_domain": "beta.com"},
		},
	})
	if w.Code != http.StatusAccepted {
		t.Fatalf("submit status = %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	submissionID, _ := body["submission_id"].(string)
	if submissionID == "" {
		t.Fatal("submission_id missing")
	}
	runIDs, _ := body["run_ids"].([]interface{})
	if len(runIDs) != 2 {
		t.Fatalf("run_ids = %d, want 2", len(runIDs))
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/submissions/"+submissionID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d body=%s", w.Code, w.Body.String())
	}
	status := decodeBody(t, w)
	runs, _ := status["runs"].([]interface{})
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/submissions/"+submissionID+"/cancel", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel status = %d body=%s", w.Code, w.Body.String())
	}
	if decodeBody(t, w)["cancel_requested"] != true {
		t.Error("cancel_requested not set")
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/submissions/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing submission status = %d, want %d", w.Code, http.StatusNotFound)
	}
	assertErrorCode(t, w, "SUBMISSION_NOT_FOUND")
}

func TestAPI_SubmissionBindingError(t *testing.T) {
	router, _ := newBehaviorTestServer(t, "api_submission_bind")

	w := doJSON(t, router, http.MethodPost, "/api/v1/submissions", map[string]interface{}{
		"entity_type": "company",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	assertErrorCode(t, w, "VALIDATION_FAILED")
}

func TestAPI_EntityRoutes(t *testing.T) {
	router, client := newBehaviorTestServer(t, "api_entities")

	entities := store.NewEntityStore(client, metrics.New())
	up, err := entities.Upsert(context.Background(), store.UpsertRequest{
		OrgID:      "org-1",
		EntityType: "company",
		Fields: map[string]interface{}{
			"canonical_domain": "acme.com",
			"industry":         "SaaS",
		},
		RunID: "run-1",
	})
	if err != nil {
		t.Fatalf("seed entity: %v", err)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/entities/company", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d body=%s", w.Code, w.Body.String())
	}
	list, _ := decodeBody(t, w)["entities"].([]interface{})
	if len(list) != 1 {
		t.Fatalf("entities = %d, want 1", len(list))
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/entities/company/"+up.Record.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/entities/spaceship", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad type status = %d, want %d body=%s", w.Code, http.StatusUnprocessableEntity, w.Body.String())
	}
	assertErrorCode(t, w, "INVALID_ENTITY_TYPE")
}
