// Package operations contains the built-in enrichment operation set. Each
// operation obeys the adapter contract: typed input extraction with the
// direct → context → step config precedence, provider calls through the
// shared client, and a normalized result envelope. The real production
// catalog spans dozens of providers; the set here covers every operation
// family and both fan-out shapes so the runtime is fully exercised.
package operations

import (
	"waterline.io/waterline/internal/adapter"
	"waterline.io/waterline/internal/domain"
	"waterline.io/waterline/internal/registry"
	"waterline.io/waterline/internal/store"
)

// Deps bundles what operations need; built once at process start.
type Deps struct {
	Client   *adapter.Client
	Schemas  *adapter.SchemaSet
	Detector *store.ChangeDetector
}

// RegisterAll wires the built-in operations into the registry.
func RegisterAll(reg *registry.Registry, deps Deps) {
	reg.MustRegister("company.enrich.firmographics",
		companyEnrichFirmographics(deps), registry.Metadata{
			EntityType: domain.EntityCompany,
		})
	reg.MustRegister("company.enrich.tech_stack",
		companyEnrichTechStack(deps), registry.Metadata{
			EntityType: domain.EntityCompany,
		})
	reg.MustRegister("company.resolve.domain",
		companyResolveDomain(deps), registry.Metadata{
			EntityType: domain.EntityCompany,
		})
	reg.MustRegister("company.search.similar",
		companySearchSimilar(deps), registry.Metadata{
			EntityType:       domain.EntityCompany,
			FanOutKey:        "similar_companies",
			FanOutEntityType: domain.EntityCompany,
		})
	reg.MustRegister("company.research.customers",
		companyResearchCustomers(deps), registry.Metadata{
			EntityType:       domain.EntityCompany,
			FanOutKey:        "customers",
			FanOutEntityType: domain.EntityCompany,
		})
	reg.MustRegister("company.signal.change_detect",
		companySignalChangeDetect(deps), registry.Metadata{
			EntityType: domain.EntityNone,
		})
	reg.MustRegister("person.enrich.profile",
		personEnrichProfile(deps), registry.Metadata{
			EntityType: domain.EntityPerson,
		})
	reg.MustRegister("person.resolve.work_email",
		personResolveWorkEmail(deps), registry.Metadata{
			EntityType: domain.EntityPerson,
		})
	reg.MustRegister("person.search.champions",
		personSearchChampions(deps), registry.Metadata{
			EntityType:       domain.EntityPerson,
			FanOutKey:        "champions",
			FanOutEntityType: domain.EntityPerson,
		})
	reg.MustRegister("job.search.postings",
		jobSearchPostings(deps), registry.Metadata{
			EntityType:       domain.EntityJob,
			FanOutKey:        "results",
			FanOutEntityType: domain.EntityJob,
		})
}

// RegisterSchemas wires output contracts for operations that declare one.
func RegisterSchemas(schemas *adapter.SchemaSet) {
	schemas.MustRegister("company.enrich.firmographics", `{
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"industry": {"type": "string"},
			"employee_count": {"type": "number"},
			"description": {"type": "string"}
		}
	}`)
	schemas.MustRegister("person.resolve.work_email", `{
		"type": "object",
		"required": ["work_email"],
		"properties": {
			"work_email": {"type": "string", "format": "email"}
		}
	}`)
}
