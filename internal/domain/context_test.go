package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCumulativeContext_CloneIsDeep(t *testing.T) {
	src := CumulativeContext{
		"company": map[string]interface{}{"name": "Acme"},
		"tags":    []interface{}{"a", "b"},
	}
	clone := src.Clone()
	clone["company"].(map[string]interface{})["name"] = "Other"
	clone["tags"].([]interface{})[0] = "z"

	require.Equal(t, "Acme", src["company"].(map[string]interface{})["name"])
	require.Equal(t, "a", src["tags"].([]interface{})[0])
}

func TestCumulativeContext_CloneNil(t *testing.T) {
	var c CumulativeContext
	clone := c.Clone()
	require.NotNil(t, clone)
	clone["k"] = "v"
	require.Empty(t, c)
}

func TestCumulativeContext_DeepMerge(t *testing.T) {
	c := CumulativeContext{
		"company": map[string]interface{}{"name": "Acme", "industry": "SaaS"},
		"count":   float64(1),
	}
	c.DeepMerge(map[string]interface{}{
		"company": map[string]interface{}{"name": "Acme Inc"},
		"count":   float64(2),
		"extra":   true,
	})

	company := c["company"].(map[string]interface{})
	require.Equal(t, "Acme Inc", company["name"], "last writer wins")
	require.Equal(t, "SaaS", company["industry"], "untouched nested keys survive")
	require.Equal(t, float64(2), c["count"])
	require.Equal(t, true, c["extra"])
}

func TestCumulativeContext_DeepMergeCopiesSource(t *testing.T) {
	src := map[string]interface{}{"nested": map[string]interface{}{"k": "v"}}
	c := CumulativeContext{}
	c.DeepMerge(src)
	c["nested"].(map[string]interface{})["k"] = "changed"
	require.Equal(t, "v", src["nested"].(map[string]interface{})["k"])
}

func TestCumulativeContext_StringAliases(t *testing.T) {
	c := CumulativeContext{"domain": "  acme.com ", "company_domain": ""}
	got, ok := c.String("company_domain", "domain")
	require.True(t, ok)
	require.Equal(t, "acme.com", got, "empty string counts as absent, aliases fall through")

	_, ok = c.String("missing")
	require.False(t, ok)
}

func TestCumulativeContext_Float(t *testing.T) {
	c := CumulativeContext{"count": float64(42), "as_string": "3.5"}
	got, ok := c.Float("count")
	require.True(t, ok)
	require.Equal(t, float64(42), got)

	got, ok = c.Float("as_string")
	require.True(t, ok)
	require.Equal(t, 3.5, got)
}

func TestCumulativeContext_ListEmptyIsPresent(t *testing.T) {
	c := CumulativeContext{"tech_stack": []interface{}{}}
	items, ok := c.List("tech_stack")
	require.True(t, ok)
	require.Empty(t, items)

	_, ok = c.List("absent")
	require.False(t, ok)
}

func TestCumulativeContext_Lookup(t *testing.T) {
	c := CumulativeContext{
		"company": map[string]interface{}{
			"location": map[string]interface{}{"city": "Berlin"},
		},
		"flat.key": "direct",
	}

	got, ok := c.Lookup("company.location.city")
	require.True(t, ok)
	require.Equal(t, "Berlin", got)

	// An exact key with dots wins over path traversal.
	got, ok = c.Lookup("flat.key")
	require.True(t, ok)
	require.Equal(t, "direct", got)

	_, ok = c.Lookup("company.missing.city")
	require.False(t, ok)
}
