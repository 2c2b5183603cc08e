package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdditiveMerge(t *testing.T) {
	existing := map[string]interface{}{
		"name":           "Acme",
		"industry":       "SaaS",
		"employee_count": float64(50),
		"tech_stack":     []interface{}{"go", "postgres"},
	}
	incoming := map[string]interface{}{
		"name":           "Acme Inc",           // non-null wins
		"industry":       nil,                  // null never erases
		"description":    "",                   // empty string counts as null
		"employee_count": float64(75),          // numeric overwrite
		"tech_stack":     []interface{}{},      // empty list is data
		"linkedin_url":   "https://li.com/acme", // new field lands
	}

	merged := AdditiveMerge(existing, incoming)

	require.Equal(t, "Acme Inc", merged["name"])
	require.Equal(t, "SaaS", merged["industry"])
	require.NotContains(t, merged, "description")
	require.Equal(t, float64(75), merged["employee_count"])
	require.Equal(t, []interface{}{}, merged["tech_stack"])
	require.Equal(t, "https://li.com/acme", merged["linkedin_url"])

	// Inputs are never mutated.
	require.Equal(t, "Acme", existing["name"])
}

func TestAdditiveMerge_EmptyInputs(t *testing.T) {
	require.Empty(t, AdditiveMerge(nil, nil))
	got := AdditiveMerge(nil, map[string]interface{}{"a": "x"})
	require.Equal(t, map[string]interface{}{"a": "x"}, got)
}

func TestMergeProviders(t *testing.T) {
	got := MergeProviders([]string{"harmonic", "exa"}, "exa", "hunter", "", "harmonic")
	require.Equal(t, []string{"harmonic", "exa", "hunter"}, got)

	require.Empty(t, MergeProviders(nil))
}

func TestDiffPayloads(t *testing.T) {
	before := map[string]interface{}{
		"name":           "Acme",
		"industry":       "SaaS",
		"employee_count": float64(50),
		"old_field":      "gone",
	}
	after := map[string]interface{}{
		"name":           "Acme",
		"industry":       "Fintech",
		"employee_count": float64(75),
		"linkedin_url":   "https://li.com/acme",
	}

	changes, unchanged := DiffPayloads(before, after, nil)
	byField := map[string]FieldChange{}
	for _, c := range changes {
		byField[c.Field] = c
	}

	require.NotContains(t, byField, "name", "unchanged fields are not reported as changes")
	require.Equal(t, []string{"name"}, unchanged)
	require.Equal(t, ChangeChanged, byField["industry"].Kind)
	require.Equal(t, ChangeIncreased, byField["employee_count"].Kind)
	require.Equal(t, ChangeAdded, byField["linkedin_url"].Kind)
	require.Equal(t, ChangeRemoved, byField["old_field"].Kind)
}

func TestDiffPayloads_NumericMagnitudes(t *testing.T) {
	changes, _ := DiffPayloads(
		map[string]interface{}{"employee_count": float64(50)},
		map[string]interface{}{"employee_count": float64(65)},
		nil,
	)
	require.Len(t, changes, 1)
	require.Equal(t, ChangeIncreased, changes[0].Kind)
	require.Equal(t, float64(50), changes[0].Before)
	require.Equal(t, float64(65), changes[0].After)
	require.NotNil(t, changes[0].AbsoluteChange)
	require.Equal(t, 15.0, *changes[0].AbsoluteChange)
	require.NotNil(t, changes[0].PercentChange)
	require.InDelta(t, 30.0, *changes[0].PercentChange, 1e-9)
}

func TestDiffPayloads_NumericDirection(t *testing.T) {
	changes, _ := DiffPayloads(
		map[string]interface{}{"employee_count": float64(100)},
		map[string]interface{}{"employee_count": float64(80)},
		nil,
	)
	require.Len(t, changes, 1)
	require.Equal(t, ChangeDecreased, changes[0].Kind)
	require.Equal(t, float64(100), changes[0].Before)
	require.Equal(t, float64(80), changes[0].After)
	require.Equal(t, 20.0, *changes[0].AbsoluteChange)
	require.Equal(t, 20.0, *changes[0].PercentChange)
}

func TestDiffPayloads_PercentOmittedWhenOldIsZero(t *testing.T) {
	changes, _ := DiffPayloads(
		map[string]interface{}{"employee_count": float64(0)},
		map[string]interface{}{"employee_count": float64(40)},
		nil,
	)
	require.Len(t, changes, 1)
	require.Equal(t, ChangeIncreased, changes[0].Kind)
	require.Equal(t, 40.0, *changes[0].AbsoluteChange)
	require.Nil(t, changes[0].PercentChange)
}

func TestDiffPayloads_WatchedFieldsFilter(t *testing.T) {
	before := map[string]interface{}{"industry": "SaaS", "name": "Acme"}
	after := map[string]interface{}{"industry": "Fintech", "name": "Other"}

	changes, unchanged := DiffPayloads(before, after, []string{"industry"})
	require.Len(t, changes, 1)
	require.Equal(t, "industry", changes[0].Field)
	require.Empty(t, unchanged)
}

func TestDiffPayloads_DeterministicOrder(t *testing.T) {
	before := map[string]interface{}{"z": "1", "a": "1", "m": "1"}
	after := map[string]interface{}{"z": "2", "a": "2", "m": "2"}

	first, _ := DiffPayloads(before, after, nil)
	for i := 0; i < 20; i++ {
		again, _ := DiffPayloads(before, after, nil)
		require.Equal(t, first, again)
	}
	require.Equal(t, "a", first[0].Field)
	require.Equal(t, "m", first[1].Field)
	require.Equal(t, "z", first[2].Field)
}
