package operations

import (
	"context"
	"net/http"

	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	"waterline.io/waterline/internal/registry"
)

// jobSearchPostings searches open job postings at a company for fan-out
// under the results collection key.
func jobSearchPostings(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("job.search.postings")

		ex := adapter.NewExtractor(input)
		companyDomain := ex.RequireString(domain.DomainAliases...)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}
		keyword, _ := ex.String("keyword")

		body := map[string]interface{}{
			"company_domain": identity.NormalizeDomain(companyDomain),
			"limit":          50,
		}
		if keyword != "" {
			body["keyword"] = keyword
		}

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "theirstack",
			Action:   "search_postings",
			Method:   http.MethodPost,
			Path:     "/v1/jobs/search",
			Body:     body,
			Tier:     adapter.TierDefault,
		})
		if !finishCall(r, res, err) {
			return r
		}

		output := map[string]interface{}{}
		if items := pickList(res.Decoded, "results", "data"); items != nil {
			output["results"] = items
		}
		return r.Found(output, res.Attempt)
	}
}
