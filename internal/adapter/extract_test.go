package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractor_SourcePrecedence(t *testing.T) {
	e := NewExtractor(map[string]interface{}{
		"company_domain": "direct.com",
		"cumulative_context": map[string]interface{}{
			"company_domain": "context.com",
			"industry":       "SaaS",
		},
		"step_config": map[string]interface{}{
			"company_domain": "config.com",
			"industry":       "Hardware",
			"max_results":    float64(5),
		},
	})

	got, ok := e.String("company_domain")
	require.True(t, ok)
	require.Equal(t, "direct.com", got, "direct input outranks context and config")

	got, ok = e.String("industry")
	require.True(t, ok)
	require.Equal(t, "SaaS", got, "context outranks step config")

	f, ok := e.Float("max_results")
	require.True(t, ok)
	require.Equal(t, float64(5), f, "config is the last resort")
}

func TestExtractor_AliasesWithinSource(t *testing.T) {
	e := NewExtractor(map[string]interface{}{
		"domain": "acme.com",
	})
	got, ok := e.String("company_domain", "domain")
	require.True(t, ok)
	require.Equal(t, "acme.com", got)
}

func TestExtractor_EmptyStringIsAbsent(t *testing.T) {
	e := NewExtractor(map[string]interface{}{
		"company_domain": "   ",
		"cumulative_context": map[string]interface{}{
			"company_domain": "context.com",
		},
	})
	got, ok := e.String("company_domain")
	require.True(t, ok)
	require.Equal(t, "context.com", got)
}

func TestExtractor_RequireStringAccumulatesMissing(t *testing.T) {
	e := NewExtractor(map[string]interface{}{"present": "x"})

	require.Equal(t, "x", e.RequireString("present"))
	require.Equal(t, "", e.RequireString("company_domain", "domain"))
	require.Equal(t, "", e.RequireString("linkedin_url"))

	require.True(t, e.HasMissing())
	require.Equal(t, []string{"company_domain", "linkedin_url"}, e.Missing(),
		"the canonical alias is reported, in request order")
}

func TestExtractor_ListEmptyIsPresent(t *testing.T) {
	e := NewExtractor(map[string]interface{}{
		"cumulative_context": map[string]interface{}{
			"tech_stack": []interface{}{},
		},
	})
	items, ok := e.List("tech_stack")
	require.True(t, ok)
	require.Empty(t, items)

	_, ok = e.List("absent")
	require.False(t, ok)
}

func TestExtractor_NilInput(t *testing.T) {
	e := NewExtractor(nil)
	_, ok := e.String("anything")
	require.False(t, ok)
}
