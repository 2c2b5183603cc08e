package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_FoundAndFatal(t *testing.T) {
	r := NewResult("company.enrich.firmographics").Found(
		map[string]interface{}{"name": "Acme"},
		Attempt{Provider: "harmonic", Action: "enrich", Status: StatusFound, HTTPStatus: 200},
	)
	require.Equal(t, StatusFound, r.Status)
	require.False(t, r.Fatal())
	require.NotEmpty(t, r.RunID)
	require.Len(t, r.ProviderAttempts, 1)
}

func TestResult_NotFoundKeepsOutputShape(t *testing.T) {
	r := NewResult("person.search.contact").NotFound()
	require.Equal(t, StatusNotFound, r.Status)
	require.NotNil(t, r.Output)
	require.False(t, r.Fatal())
}

func TestResult_FailedMissingInputs(t *testing.T) {
	r := NewResult("company.enrich.tech_stack").FailedMissingInputs([]string{"company_domain"})
	require.Equal(t, StatusFailed, r.Status)
	require.True(t, r.Fatal())
	require.Equal(t, []string{"company_domain"}, r.MissingInputs)
	require.Equal(t, "missing_inputs", r.Error.Code)
}

func TestResult_SkippedSynthesizesAttempt(t *testing.T) {
	r := NewResult("company.enrich.tech_stack").Skipped("missing_api_key")
	require.Equal(t, StatusSkipped, r.Status)
	require.False(t, r.Fatal())
	require.Len(t, r.ProviderAttempts, 1)
	require.Equal(t, "none", r.ProviderAttempts[0].Provider)
	require.Equal(t, "missing_api_key", r.ProviderAttempts[0].SkipReason)
}

func TestResult_AttemptMapsOmitsZeroValues(t *testing.T) {
	r := NewResult("company.search.customers").Failed("upstream_error", "boom",
		Attempt{Provider: "exa", Action: "search", Status: StatusFailed, HTTPStatus: 502, Error: "bad gateway"},
	)
	maps := r.AttemptMaps()
	require.Len(t, maps, 1)
	require.Equal(t, "exa", maps[0]["provider"])
	require.Equal(t, 502, maps[0]["http_status"])
	require.Equal(t, "bad gateway", maps[0]["error"])
	require.NotContains(t, maps[0], "duration_ms")
	require.NotContains(t, maps[0], "skip_reason")
}

func TestRunStatus_Terminal(t *testing.T) {
	require.False(t, RunQueued.Terminal())
	require.False(t, RunRunning.Terminal())
	require.True(t, RunSucceeded.Terminal())
	require.True(t, RunFailed.Terminal())
	require.True(t, RunSkipped.Terminal())
}

func TestParseEntityType(t *testing.T) {
	got, err := ParseEntityType("  Company ")
	require.NoError(t, err)
	require.Equal(t, EntityCompany, got)

	_, err = ParseEntityType("spaceship")
	require.Error(t, err)
}
