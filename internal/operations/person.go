package operations

import (
	"context"
	"net/http"

	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/identity"
	"waterline.io/waterline/internal/registry"
)

// personEnrichProfile fills title, company, and profile fields for a person
// identified by LinkedIn URL.
func personEnrichProfile(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("person.enrich.profile")

		ex := adapter.NewExtractor(input)
		linkedinURL := ex.RequireString(domain.FieldLinkedInURL)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "blitzapi",
			Action:   "person_profile",
			Method:   http.MethodGet,
			Path:     "/v2/persons/profile",
			Query:    map[string]string{"linkedin_url": identity.NormalizeLinkedInURL(linkedinURL)},
			Tier:     adapter.TierDefault,
		})
		if !finishCall(r, res, err) {
			return r
		}

		output := map[string]interface{}{
			domain.FieldLinkedInURL: identity.NormalizeLinkedInURL(linkedinURL),
		}
		setIfPresent(output, domain.FieldFullName, pickString(res.Decoded, "full_name", "name"))
		setIfPresent(output, domain.FieldJobTitle, pickString(res.Decoded, "job_title", "title"))
		setIfPresent(output, domain.FieldCompanyDomain, pickString(res.Decoded, "company_domain"))
		return r.Found(output, res.Attempt)
	}
}

// personResolveWorkEmail finds a verified work email for a person given
// their name and company domain.
func personResolveWorkEmail(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("person.resolve.work_email")

		ex := adapter.NewExtractor(input)
		fullName := ex.RequireString(domain.FieldFullName, domain.FieldName)
		companyDomain := ex.RequireString(domain.DomainAliases...)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "mailsleuth",
			Action:   "resolve_email",
			Method:   http.MethodGet,
			Path:     "/v1/email/find",
			Query: map[string]string{
				"name":   fullName,
				"domain": identity.NormalizeDomain(companyDomain),
			},
			Tier: adapter.TierResolve,
		})
		if !finishCall(r, res, err) {
			return r
		}

		email := identity.NormalizeEmail(pickString(res.Decoded, "work_email", "email"))
		if email == "" {
			return r.NotFound(res.Attempt)
		}
		output := map[string]interface{}{
			domain.FieldWorkEmail: email,
			domain.FieldFullName:  fullName,
		}
		if !validateOutput(deps, r, output) {
			return r
		}
		return r.Found(output, res.Attempt)
	}
}

// personSearchChampions yields buying-champion candidates at a company for
// fan-out under the champions collection key.
func personSearchChampions(deps Deps) registry.Executor {
	return func(ctx context.Context, input map[string]interface{}) *domain.Result {
		r := domain.NewResult("person.search.champions")

		ex := adapter.NewExtractor(input)
		companyDomain := ex.RequireString(domain.DomainAliases...)
		if ex.HasMissing() {
			return r.FailedMissingInputs(ex.Missing())
		}
		titles, _ := ex.List("target_titles")

		res, err := deps.Client.Call(ctx, adapter.CallRequest{
			Provider: "blitzapi",
			Action:   "search_champions",
			Method:   http.MethodPost,
			Path:     "/v2/persons/search",
			Body: map[string]interface{}{
				"company_domain": identity.NormalizeDomain(companyDomain),
				"titles":         titles,
			},
			Tier: adapter.TierDefault,
		})
		if !finishCall(r, res, err) {
			return r
		}

		output := map[string]interface{}{}
		if items := pickList(res.Decoded, "results", "champions"); items != nil {
			output["champions"] = items
		}
		return r.Found(output, res.Attempt)
	}
}
