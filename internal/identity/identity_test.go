package identity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/internal/domain"
)

func TestNormalizeDomain(t *testing.T) {
	cases := map[string]string{
		"Acme.COM":                "acme.com",
		"https://www.acme.com/":   "acme.com",
		"http://acme.com":         "acme.com",
		"  www.acme.com  ":        "acme.com",
		"https://sub.acme.co.uk/": "sub.acme.co.uk",
	}
	for raw, want := range cases {
		require.Equal(t, want, NormalizeDomain(raw), "raw=%q", raw)
	}
}

func TestNormalizeEmailAndLinkedIn(t *testing.T) {
	require.Equal(t, "jane@acme.com", NormalizeEmail("  Jane@Acme.COM "))
	require.Equal(t, "https://linkedin.com/in/jane", NormalizeLinkedInURL(" https://linkedin.com/in/Jane/ "))
}

func TestResolveEntityID_Deterministic(t *testing.T) {
	a := ResolveEntityID(domain.EntityCompany, map[string]interface{}{"company_domain": "Acme.com"})
	b := ResolveEntityID(domain.EntityCompany, map[string]interface{}{"domain": "https://www.acme.com/"})
	require.Equal(t, a, b, "domain aliases and normalization must land on one identity")

	c := ResolveEntityID(domain.EntityCompany, map[string]interface{}{"company_domain": "other.com"})
	require.NotEqual(t, a, c)

	// Same inputs across types never collide.
	d := ResolveEntityID(domain.EntityPerson, map[string]interface{}{"name": "acme.com"})
	require.NotEqual(t, a, d)
}

func TestResolveEntityID_Precedence(t *testing.T) {
	// A company with a domain keys on the domain, not the name.
	withDomain := ResolveEntityID(domain.EntityCompany, map[string]interface{}{
		"company_domain": "acme.com",
		"name":           "Acme Inc",
	})
	domainOnly := ResolveEntityID(domain.EntityCompany, map[string]interface{}{
		"company_domain": "acme.com",
	})
	require.Equal(t, domainOnly, withDomain)

	// A person keys on LinkedIn before email.
	withBoth := ResolveEntityID(domain.EntityPerson, map[string]interface{}{
		"linkedin_url": "https://linkedin.com/in/jane",
		"work_email":   "jane@acme.com",
	})
	linkedinOnly := ResolveEntityID(domain.EntityPerson, map[string]interface{}{
		"linkedin_url": "https://linkedin.com/in/jane/",
	})
	require.Equal(t, linkedinOnly, withBoth)
}

func TestResolveEntityID_HashFallback(t *testing.T) {
	fields := map[string]interface{}{"custom_a": "x", "custom_b": float64(2)}
	a := ResolveEntityID(domain.EntityCompany, fields)
	b := ResolveEntityID(domain.EntityCompany, map[string]interface{}{"custom_b": float64(2), "custom_a": "x"})
	require.Equal(t, a, b, "hash fallback must be key-order independent")
}

func TestStableHash_SkipsNilAndSorts(t *testing.T) {
	got := StableHash(map[string]interface{}{"b": 1, "a": "x", "c": nil})
	require.Equal(t, `{"a":"x","b":1}`, got)
}

func TestDedupKey(t *testing.T) {
	require.Equal(t,
		"person:linkedin:https://linkedin.com/in/jane",
		DedupKey(domain.EntityPerson, map[string]interface{}{
			"linkedin_url": "https://linkedin.com/in/Jane/",
			"work_email":   "jane@acme.com",
		}),
	)
	require.Equal(t,
		"person:email:jane@acme.com",
		DedupKey(domain.EntityPerson, map[string]interface{}{"work_email": " Jane@Acme.com "}),
	)
	require.Equal(t,
		"company:domain:acme.com",
		DedupKey(domain.EntityCompany, map[string]interface{}{"domain": "www.acme.com"}),
	)
	require.Equal(t,
		"job:theirstack:12345",
		DedupKey(domain.EntityJob, map[string]interface{}{"theirstack_job_id": "12345", "job_url": "https://x"}),
	)
	require.Equal(t,
		"job:title_domain:platform engineer:acme.com",
		DedupKey(domain.EntityJob, map[string]interface{}{"title": "Platform Engineer", "company_domain": "acme.com"}),
	)
}

func TestDedupKey_FallbackMatchesAcrossSpelling(t *testing.T) {
	a := DedupKey(domain.EntityCompany, map[string]interface{}{"name": "Acme Inc"})
	b := DedupKey(domain.EntityCompany, map[string]interface{}{"name": "  acme inc "})
	require.Equal(t, a, b)
}
