package operations

import (
	"context"
	"net/http"

	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	"waterline.io/waterline/internal/registry"
)

// companyEnrichFirmographics fills name, industry, headcount, and
// description for a company identified by its domain.
func companyEnrichFirmographics(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("company.enrich.firmographics")

		ex := adapter.NewExtractor(input)
		companyDomain := ex.RequireString(domain.DomainAliases...)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "revenueinfra",
			Action:   "enrich_firmographics",
			Method:   http.MethodGet,
			Path:     "/v1/companies/enrich",
			Query:    map[string]string{"domain": identity.NormalizeDomain(companyDomain)},
			Tier:     adapter.TierDefault,
		})
		if !finishCall(r, res, err) {
			return r
		}

		output := map[string]interface{}{
			domain.FieldCanonicalDomain: identity.NormalizeDomain(companyDomain),
		}
		setIfPresent(output, domain.FieldName, pickString(res.Decoded, "name", "company_name"))
		setIfPresent(output, domain.FieldIndustry, pickString(res.Decoded, "industry"))
		setIfPresent(output, domain.FieldDescription, pickString(res.Decoded, "description"))
		if count, ok := pickNumber(res.Decoded, "employee_count", "headcount"); ok {
			output[domain.FieldEmployeeCount] = count
		}
		setIfPresent(output, domain.FieldLinkedInURL, pickString(res.Decoded, "linkedin_url"))

		if !validateOutput(deps, r, output) {
			return r
		}
		return r.Found(output, res.Attempt)
	}
}

// companyEnrichTechStack resolves the technology stack behind a domain.
func companyEnrichTechStack(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("company.enrich.tech_stack")

		ex := adapter.NewExtractor(input)
		companyDomain := ex.RequireString(domain.DomainAliases...)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "blitzapi",
			Action:   "tech_stack",
			Method:   http.MethodGet,
			Path:     "/v2/tech-stack",
			Query:    map[string]string{"domain": identity.NormalizeDomain(companyDomain)},
			Tier:     adapter.TierDefault,
		})
		if !finishCall(r, res, err) {
			return r
		}

		output := map[string]interface{}{
			domain.FieldCanonicalDomain: identity.NormalizeDomain(companyDomain),
		}
		if stack := pickList(res.Decoded, "technologies", "tech_stack"); stack != nil {
			output[domain.FieldTechStack] = stack
		}
		return r.Found(output, res.Attempt)
	}
}

// companyResolveDomain finds the canonical domain for a company name,
// trying the primary resolver and falling back to a search provider.
func companyResolveDomain(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("company.resolve.domain")

		ex := adapter.NewExtractor(input)
		name := ex.RequireString(domain.FieldCompanyName, domain.FieldName)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		primary, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "revenueinfra",
			Action:   "resolve_domain",
			Method:   http.MethodGet,
			Path:     "/v1/companies/resolve",
			Query:    map[string]string{"name": name},
			Tier:     adapter.TierResolve,
		})
		if err == nil && primary.Attempt.Status == domain.StatusFound {
			if d := pickString(primary.Decoded, "domain", "canonical_domain"); d != "" {
				return r.Found(map[string]interface{}{
					domain.FieldCanonicalDomain: identity.NormalizeDomain(d),
					domain.FieldName:            name,
				}, primary.Attempt)
			}
		}

		// Fallback resolver; the primary attempt stays in the envelope.
		fallback, ferr := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "blitzapi",
			Action:   "resolve_domain",
			Method:   http.MethodGet,
			Path:     "/v2/resolve",
			Query:    map[string]string{"q": name},
			Tier:     adapter.TierResolve,
		})
		attempts := []domain.Attempt{primary.Attempt, fallback.Attempt}
		if ferr != nil {
			return r.Failed("provider_error", fallback.Attempt.Error, attempts...)
		}
		if fallback.Attempt.Status == domain.StatusFound {
			if d := pickString(fallback.Decoded, "domain"); d != "" {
				return r.Found(map[string]interface{}{
					domain.FieldCanonicalDomain: identity.NormalizeDomain(d),
					domain.FieldName:            name,
				}, attempts...)
			}
		}
		if primary.Attempt.Status == domain.StatusSkipped && fallback.Attempt.Status == domain.StatusSkipped {
			return r.Skipped("missing_api_key", attempts...)
		}
		return r.NotFound(attempts...)
	}
}

// companySearchSimilar yields look-alike companies for fan-out under the
// similar_companies collection key.
func companySearchSimilar(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("company.search.similar")

		ex := adapter.NewExtractor(input)
		companyDomain := ex.RequireString(domain.DomainAliases...)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "blitzapi",
			Action:   "search_similar",
			Method:   http.MethodPost,
			Path:     "/v2/companies/similar",
			Body: map[string]interface{}{
				"domain": identity.NormalizeDomain(companyDomain),
				"limit":  25,
			},
			Tier: adapter.TierDefault,
		})
		if !finishCall(r, res, err) {
			return r
		}

		output := map[string]interface{}{}
		if items := pickList(res.Decoded, "results", "similar_companies"); items != nil {
			output["similar_companies"] = items
		}
		return r.Found(output, res.Attempt)
	}
}

// companyResearchCustomers extracts the customer logos of a company for
// fan-out under the customers collection key. Backed by a long-running
// analysis provider, hence the analysis timeout tier.
func companyResearchCustomers(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("company.research.customers")

		ex := adapter.NewExtractor(input)
		companyDomain := ex.RequireString(domain.DomainAliases...)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "deepresearch",
			Action:   "extract_customers",
			Method:   http.MethodPost,
			Path:     "/v1/research/customers",
			Body:     map[string]interface{}{"domain": identity.NormalizeDomain(companyDomain)},
			Tier:     adapter.TierAnalysis,
		})
		if !finishCall(r, res, err) {
			return r
		}

		output := map[string]interface{}{}
		if items := pickList(res.Decoded, "customers", "results"); items != nil {
			output["customers"] = items
		}
		return r.Found(output, res.Attempt)
	}
}

// companySignalChangeDetect diffs the two most recent snapshots of the
// company in context. No provider call: the signal comes from our own
// snapshot history.
func companySignalChangeDetect(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("company.signal.change_detect")

		ex := adapter.NewExtractor(input)
		orgID := ex.RequireString("org_id")
		entityID := ex.RequireString("entity_id", "company_entity_id")
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		var watched []string
		if items, ok := ex.List("watched_fields"); ok {
			for _, item := range items {
				if s, ok := item.(string); ok {
					watched = append(watched, s)
				}
			}
		}

		report, err := deps.Detector.Detect(ctx, orgID, domain.EntityCompany, entityID, watched)
		if err != nil {
			return r.Failed("change_detection_failed", err.Error())
		}
		return r.Found(report.ToMap(), domain.Attempt{
			Provider: "internal",
			Action:   "change_detect",
			Status:   domain.StatusFound,
		})
	}
}
