package operations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/pkg/logger"
	"waterline.io/waterline/internal/registry"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

// fakeProviders routes every provider at one httptest server, keyed by path.
func fakeProviders(t *testing.T, routes map[string]interface{}) Deps {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(srv.Close)

	endpoints := map[string]config.ProviderEndpoint{}
	for _, name := range []string{"revenueinfra", "blitzapi", "deepresearch", "mailsleuth", "theirstack"} {
		endpoints[name] = config.ProviderEndpoint{BaseURL: srv.URL, APIKey: "test-key"}
	}
	client := adapter.NewClient(config.ProvidersConfig{
		DefaultTimeout:  5 * time.Second,
		ResolveTimeout:  5 * time.Second,
		AnalysisTimeout: 5 * time.Second,
		Endpoints:       endpoints,
	}, metrics.New())

	schemas := adapter.NewSchemaSet()
	RegisterSchemas(schemas)
	return Deps{Client: client, Schemas: schemas}
}

func TestRegisterAll_CatalogShape(t *testing.T) {
	reg := registry.New()
	RegisterAll(reg, Deps{})

	ids := reg.IDs()
	require.Len(t, ids, 10)
	for _, id := range ids {
		_, _, _, err := registry.ParseOperationID(id)
		require.NoError(t, err, "id %q", id)
	}

	// Fan-out sources carry a collection key and an entity type.
	for _, id := range []string{
		"company.search.similar",
		"company.research.customers",
		"person.search.champions",
		"job.search.postings",
	} {
		op, ok := reg.Lookup(id)
		require.True(t, ok, "id %q", id)
		require.NotEmpty(t, op.Metadata.FanOutKey, "id %q", id)
		require.NotEqual(t, domain.EntityNone, op.Metadata.FanOutEntityType, "id %q", id)
	}
}

func TestCompanyEnrichFirmographics(t *testing.T) {
	deps := fakeProviders(t, map[string]interface{}{
		"/v1/companies/enrich": map[string]interface{}{
			"name":           "Acme",
			"industry":       "SaaS",
			"employee_count": 50,
			"description":    "Widgets",
		},
	})

	exec := companyEnrichFirmographics(deps)
	r := exec(context.Background(), map[string]interface{}{"company_domain": "https://www.Acme.com/"})

	require.Equal(t, domain.StatusFound, r.Status)
	require.Equal(t, "acme.com", r.Output[domain.FieldCanonicalDomain])
	require.Equal(t, "Acme", r.Output[domain.FieldName])
	require.Equal(t, "SaaS", r.Output[domain.FieldIndustry])
	require.Equal(t, float64(50), r.Output[domain.FieldEmployeeCount])
	require.Len(t, r.ProviderAttempts, 1)
	require.Equal(t, "revenueinfra", r.ProviderAttempts[0].Provider)
}

func TestCompanyEnrichFirmographics_MissingInputs(t *testing.T) {
	deps := fakeProviders(t, nil)

	exec := companyEnrichFirmographics(deps)
	r := exec(context.Background(), map[string]interface{}{"unrelated": "value"})

	require.Equal(t, domain.StatusFailed, r.Status)
	require.Equal(t, []string{domain.FieldCompanyDomain}, r.MissingInputs)
	require.Equal(t, "missing_inputs", r.Error.Code)
}

func TestCompanyEnrichFirmographics_ResolvesDomainFromContext(t *testing.T) {
	deps := fakeProviders(t, map[string]interface{}{
		"/v1/companies/enrich": map[string]interface{}{"name": "Acme"},
	})

	exec := companyEnrichFirmographics(deps)
	r := exec(context.Background(), map[string]interface{}{
		"cumulative_context": map[string]interface{}{"canonical_domain": "acme.com"},
	})
	require.Equal(t, domain.StatusFound, r.Status)
}

func TestCompanyResolveDomain_FallbackProvider(t *testing.T) {
	// The primary resolver path is absent (404), the fallback answers.
	deps := fakeProviders(t, map[string]interface{}{
		"/v2/resolve": map[string]interface{}{"domain": "Acme.com"},
	})

	exec := companyResolveDomain(deps)
	r := exec(context.Background(), map[string]interface{}{"company_name": "Acme Inc"})

	require.Equal(t, domain.StatusFound, r.Status)
	require.Equal(t, "acme.com", r.Output[domain.FieldCanonicalDomain])
	require.Len(t, r.ProviderAttempts, 2, "the failed primary attempt stays in the envelope")
}

func TestCompanySearchSimilar_YieldsFanOutCollection(t *testing.T) {
	deps := fakeProviders(t, map[string]interface{}{
		"/v2/companies/similar": map[string]interface{}{
			"results": []interface{}{
				map[string]interface{}{"company_domain": "alpha.com"},
				map[string]interface{}{"company_domain": "beta.com"},
			},
		},
	})

	exec := companySearchSimilar(deps)
	r := exec(context.Background(), map[string]interface{}{"company_domain": "acme.com"})

	require.Equal(t, domain.StatusFound, r.Status)
	items, ok := r.Output["similar_companies"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)
}

func TestOperations_SkipWithoutCredentials(t *testing.T) {
	// No endpoints configured at all: every call skips, nothing fails.
	client := adapter.NewClient(config.ProvidersConfig{DefaultTimeout: time.Second}, metrics.New())
	deps := Deps{Client: client, Schemas: adapter.NewSchemaSet()}

	exec := companyEnrichTechStack(deps)
	r := exec(context.Background(), map[string]interface{}{"company_domain": "acme.com"})

	require.Equal(t, domain.StatusSkipped, r.Status)
	require.False(t, r.Fatal())
	require.Equal(t, "missing_api_key", r.ProviderAttempts[0].SkipReason)
}

func TestPersonResolveWorkEmail_SchemaRejectsBadOutput(t *testing.T) {
	deps := fakeProviders(t, map[string]interface{}{
		"/v1/email/find": map[string]interface{}{"email": "not-an-email"},
	})

	exec := personResolveWorkEmail(deps)
	r := exec(context.Background(), map[string]interface{}{
		"full_name":      "Jane Doe",
		"company_domain": "acme.com",
	})

	// Either the schema rejects the malformed address or the mapping never
	// produced one; both are non-found terminal shapes.
	require.NotEqual(t, domain.StatusFound, r.Status)
}
