package identity

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"waterline.io/waterline/internal/domain"
)

// entityNamespace is the fixed UUIDv5 namespace for all entity identity
// derivation. Changing it would re-key every entity row; never do that.
var entityNamespace = uuid.MustParse("7b6ec1fa-1c4f-4f9d-9a3a-52d3a2b1f0e4")

// ResolveEntityID derives the deterministic entity id for the given
// canonical fields. The identity string is the first available natural key
// for the entity type, falling back to a stable hash of all fields, then
// hashed into the fixed namespace with UUIDv5.
func ResolveEntityID(entityType domain.EntityType, fields map[string]interface{}) string {
	identity := identityString(entityType, fields)
	return uuid.NewSHA1(entityNamespace, []byte(string(entityType)+":"+identity)).String()
}

func identityString(entityType domain.EntityType, fields map[string]interface{}) string {
	switch entityType {
	case domain.EntityCompany:
		if d := NormalizeDomain(stringField(fields, domain.DomainAliases...)); d != "" {
			return "domain:" + d
		}
		if u := NormalizeLinkedInURL(stringField(fields, domain.FieldLinkedInURL)); u != "" {
			return "linkedin:" + u
		}
		if n := KeyName(stringField(fields, domain.FieldCompanyName, domain.FieldName)); n != "" {
			return "name:" + n
		}
	case domain.EntityPerson:
		if u := NormalizeLinkedInURL(stringField(fields, domain.FieldLinkedInURL)); u != "" {
			return "linkedin:" + u
		}
		if e := NormalizeEmail(stringField(fields, domain.FieldWorkEmail)); e != "" {
			return "email:" + e
		}
		if n := KeyName(stringField(fields, domain.FieldFullName, domain.FieldName)); n != "" {
			return "name:" + n
		}
	case domain.EntityJob:
		if id := strings.TrimSpace(stringField(fields, domain.FieldTheirstackJobID)); id != "" {
			return "theirstack:" + id
		}
		if u := strings.TrimSpace(stringField(fields, domain.FieldJobURL)); u != "" {
			return "url:" + u
		}
		title := KeyName(stringField(fields, domain.FieldTitle))
		dom := NormalizeDomain(stringField(fields, domain.DomainAliases...))
		if title != "" && dom != "" {
			return "title_domain:" + title + ":" + dom
		}
	}
	return "hash:" + StableHash(fields)
}

// StableHash produces a canonical JSON dump of sorted (key, value) pairs so
// a later write with the same inputs lands on the same identity.
func StableHash(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if fields[k] == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kj, _ := json.Marshal(k)
		vj, err := json.Marshal(fields[k])
		if err != nil {
			vj = []byte(fmt.Sprintf("%q", fmt.Sprint(fields[k])))
		}
		b.Write(kj)
		b.WriteByte(':')
		b.Write(vj)
	}
	b.WriteByte('}')
	return b.String()
}

func stringField(fields map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || raw == nil {
			continue
		}
		if s, ok := raw.(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
