package identity

import (
	"strings"

	"waterline.io/waterline/internal/domain"
)

// DedupKey derives the fan-out dedup key for one expanded entity. Keys are
// evaluated in order and the first non-empty wins; two fan-out entities with
// the same key collapse into one child run.
func DedupKey(entityType domain.EntityType, fields map[string]interface{}) string {
	switch entityType {
	case domain.EntityPerson:
		if u := NormalizeLinkedInURL(stringField(fields, domain.FieldLinkedInURL)); u != "" {
			return "person:linkedin:" + u
		}
		if e := NormalizeEmail(stringField(fields, domain.FieldWorkEmail)); e != "" {
			return "person:email:" + e
		}
		if n := KeyName(stringField(fields, domain.FieldFullName, domain.FieldName)); n != "" {
			return "person:name:" + n
		}
	case domain.EntityCompany:
		if d := NormalizeDomain(stringField(fields, domain.DomainAliases...)); d != "" {
			return "company:domain:" + d
		}
		if u := NormalizeLinkedInURL(stringField(fields, domain.FieldLinkedInURL)); u != "" {
			return "company:linkedin:" + u
		}
		if n := KeyName(stringField(fields, domain.FieldCompanyName, domain.FieldName)); n != "" {
			return "company:name:" + n
		}
	case domain.EntityJob:
		if id := strings.TrimSpace(stringField(fields, domain.FieldTheirstackJobID)); id != "" {
			return "job:theirstack:" + id
		}
		if u := strings.TrimSpace(stringField(fields, domain.FieldJobURL)); u != "" {
			return "job:url:" + u
		}
		title := KeyName(stringField(fields, domain.FieldTitle))
		dom := NormalizeDomain(stringField(fields, domain.DomainAliases...))
		if title != "" && dom != "" {
			return "job:title_domain:" + title + ":" + dom
		}
	}
	return "hash:" + StableHash(fields)
}
