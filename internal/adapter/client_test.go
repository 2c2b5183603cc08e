package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/internal/config"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/metrics"
	"waterline.io/waterline/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	os.Exit(m.Run())
}

func newTestClient(baseURL string) *Client {
	return NewClient(config.ProvidersConfig{
		DefaultTimeout:     5 * time.Second,
		ResolveTimeout:     5 * time.Second,
		AnalysisTimeout:    5 * time.Second,
		BreakerMaxFailures: 3,
		BreakerOpenFor:     time.Minute,
		Endpoints: map[string]config.ProviderEndpoint{
			"harmonic": {BaseURL: baseURL, APIKey: "test-key"},
		},
	}, metrics.New())
}

func TestClientCall_MissingAPIKeySkipsWithoutNetwork(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	res, err := client.Call(context.Background(), CallRequest{
		Provider: "unconfigured",
		Action:   "enrich",
		Path:     "/v1/enrich",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusSkipped, res.Attempt.Status)
	require.Equal(t, "missing_api_key", res.Attempt.SkipReason)
	require.Zero(t, hits)
}

func TestClientCall_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, "acme.com", r.URL.Query().Get("domain"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"Acme","employee_count":50}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	res, err := client.Call(context.Background(), CallRequest{
		Provider: "harmonic",
		Action:   "enrich",
		Path:     "/v1/companies",
		Query:    map[string]string{"domain": "acme.com"},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusFound, res.Attempt.Status)
	require.Equal(t, http.StatusOK, res.Attempt.HTTPStatus)
	require.Equal(t, "Acme", res.Decoded["name"])
}

func TestClientCall_EmptyCollectionIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	res, err := client.Call(context.Background(), CallRequest{
		Provider: "harmonic",
		Action:   "search",
		Path:     "/v1/search",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusNotFound, res.Attempt.Status)
}

func TestClientCall_HTTPErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	res, err := client.Call(context.Background(), CallRequest{
		Provider: "harmonic",
		Action:   "enrich",
		Path:     "/v1/companies",
	})
	require.Error(t, err)
	require.Equal(t, domain.StatusFailed, res.Attempt.Status)
	require.Equal(t, http.StatusTooManyRequests, res.Attempt.HTTPStatus)
	require.Contains(t, res.Attempt.Error, "429")
}

func TestClientCall_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	req := CallRequest{Provider: "harmonic", Action: "enrich", Path: "/v1/companies"}

	for i := 0; i < 3; i++ {
		_, err := client.Call(context.Background(), req)
		require.Error(t, err, "call %d", i)
	}

	// The breaker is open now; the next call skips without network I/O.
	res, err := client.Call(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, domain.StatusSkipped, res.Attempt.Status)
	require.Equal(t, "circuit_open", res.Attempt.SkipReason)
}

func TestSchemaSetValidate(t *testing.T) {
	schemas := NewSchemaSet()
	schemas.MustRegister("company.enrich.firmographics", `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"employee_count": {"type": "number", "minimum": 0}
		},
		"required": ["name"]
	}`)

	require.NoError(t, schemas.Validate("company.enrich.firmographics", map[string]interface{}{
		"name":           "Acme",
		"employee_count": float64(50),
	}))

	err := schemas.Validate("company.enrich.firmographics", map[string]interface{}{
		"employee_count": float64(-1),
	})
	require.Error(t, err)

	// Operations without a registered schema pass through.
	require.NoError(t, schemas.Validate("person.search.contact", map[string]interface{}{"anything": true}))
}
