package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepsRoundTripAndOrdering(t *testing.T) {
	steps := []BlueprintStepSnapshot{
		{
			Position:    2,
			OperationID: "company.enrich.tech_stack",
			FanOut:      false,
			IsEnabled:   true,
			SkipIfFresh: &SkipIfFresh{MaxAgeHours: 24, IdentityFields: []string{"company_domain"}},
		},
		{
			Position:    1,
			OperationID: "company.enrich.firmographics",
			StepConfig:  map[string]interface{}{"depth": float64(2)},
			IsEnabled:   true,
		},
	}

	rows, err := StepsToMaps(steps)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	parsed, err := StepsFromMaps(rows)
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	// Parsing sorts by position regardless of stored order.
	require.Equal(t, 1, parsed[0].Position)
	require.Equal(t, "company.enrich.firmographics", parsed[0].OperationID)
	require.Equal(t, map[string]interface{}{"depth": float64(2)}, parsed[0].StepConfig)

	require.Equal(t, 2, parsed[1].Position)
	require.NotNil(t, parsed[1].SkipIfFresh)
	require.Equal(t, float64(24), parsed[1].SkipIfFresh.MaxAgeHours)
	require.Equal(t, []string{"company_domain"}, parsed[1].SkipIfFresh.IdentityFields)
}

func TestStepsFromMaps_TolerantOfUnknownKeys(t *testing.T) {
	parsed, err := StepsFromMaps([]map[string]interface{}{
		{"position": float64(1), "operation_id": "person.search.contact", "is_enabled": true, "legacy_field": "x"},
	})
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	require.Equal(t, "person.search.contact", parsed[0].OperationID)
}
