package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"waterline.io/waterline/internal/domain"
)

func noopExec(ctx context.Context, input map[string]interface{}) *domain.Result {
	return domain.NewResult("test").NotFound()
}

func TestParseOperationID(t *testing.T) {
	family, verb, topic, err := ParseOperationID("company.enrich.tech_stack")
	require.NoError(t, err)
	require.Equal(t, "company", family)
	require.Equal(t, "enrich", verb)
	require.Equal(t, "tech_stack", topic)

	// Topic may itself contain dots.
	_, _, topic, err = ParseOperationID("person.search.contact.email")
	require.NoError(t, err)
	require.Equal(t, "contact.email", topic)

	for _, bad := range []string{
		"",
		"company.enrich",
		"spaceship.enrich.engines",
		"company.explode.things",
		"..",
	} {
		_, _, _, err := ParseOperationID(bad)
		require.Error(t, err, "id %q", bad)
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("company.enrich.firmographics", noopExec, Metadata{
		EntityType: domain.EntityCompany,
	}))

	op, ok := r.Lookup("company.enrich.firmographics")
	require.True(t, ok)
	require.Equal(t, domain.EntityCompany, op.Metadata.EntityType)
	require.True(t, r.Has("company.enrich.firmographics"))
	require.False(t, r.Has("company.enrich.other"))
	require.Equal(t, []string{"company.enrich.firmographics"}, r.IDs())
}

func TestRegistry_RejectsDuplicatesAndBadIDs(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("job.search.postings", noopExec, Metadata{}))
	require.Error(t, r.Register("job.search.postings", noopExec, Metadata{}), "duplicate id")
	require.Error(t, r.Register("job.search.postings", nil, Metadata{}), "nil executor")
	require.Error(t, r.Register("not-a-dotted-id", noopExec, Metadata{}))
}

func TestFamily(t *testing.T) {
	require.Equal(t, "company", Family("company.search.customers"))
	require.Equal(t, "", Family("garbage"))
}
