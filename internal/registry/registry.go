// Package registry maps dotted operation ids (e.g.
// "company.enrich.tech_stack") to executor functions and their metadata.
// The registry is populated at process start and read-only afterwards; it is
// passed into each pipeline-run task as an explicit dependency.
package registry

import (
	"context"
	"fmt"
	"strings"

	"waterline.io/waterline/internal/domain"
)

// Executor runs one enrichment operation against its input payload and
// returns the normalized result envelope. Executors never return Go errors
// for expected failure modes; those normalize into the envelope.
type Executor func(ctx context.Context, input map[string]interface{}) *domain.Result

// Metadata describes an operation beyond its executor.
type Metadata struct {
	// EntityType is the canonical record family the operation primarily
	// produces; EntityNone for operations with no entity side effect.
	EntityType domain.EntityType

	// FanOutKey names the collection key under which this operation yields
	// a list suitable for fan-out (e.g. "results", "customers"). Empty
	// means the operation is not a fan-out source.
	FanOutKey string

	// FanOutEntityType is the entity type of the expanded items.
	FanOutEntityType domain.EntityType
}

// Operation is one registered entry.
type Operation struct {
	ID       string
	Execute  Executor
	Metadata Metadata
}

// Verbs allowed in an operation id (<entity>.<verb>.<topic>).
var verbs = map[string]struct{}{
	"search": {}, "enrich": {}, "research": {}, "resolve": {},
	"derive": {}, "signal": {}, "validate": {},
}

// Registry is the process-wide operation lookup. Register during init only;
// Lookup is safe for concurrent use once registration is done.
type Registry struct {
	ops map[string]Operation
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds an operation. Duplicate or malformed ids are rejected so a
// bad wiring fails at startup, not at run time.
func (r *Registry) Register(id string, exec Executor, meta Metadata) error {
	if exec == nil {
		return fmt.Errorf("operation %q: nil executor", id)
	}
	if _, _, _, err := ParseOperationID(id); err != nil {
		return err
	}
	if _, exists := r.ops[id]; exists {
		return fmt.Errorf("operation %q already registered", id)
	}
	r.ops[id] = Operation{ID: id, Execute: exec, Metadata: meta}
	return nil
}

// MustRegister is Register that panics; used from process-start wiring.
func (r *Registry) MustRegister(id string, exec Executor, meta Metadata) {
	if err := r.Register(id, exec, meta); err != nil {
		panic(err)
	}
}

// Lookup returns the operation for an id.
func (r *Registry) Lookup(id string) (Operation, bool) {
	op, ok := r.ops[id]
	return op, ok
}

// Has reports whether the id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.ops[id]
	return ok
}

// IDs returns all registered operation ids.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.ops))
	for id := range r.ops {
		out = append(out, id)
	}
	return out
}

// ParseOperationID splits a dotted id into entity family, verb, and topic,
// validating each part.
func ParseOperationID(id string) (family, verb, topic string, err error) {
	parts := strings.SplitN(strings.TrimSpace(id), ".", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", "", "", fmt.Errorf("operation id %q is not <entity>.<verb>.<topic>", id)
	}
	switch parts[0] {
	case "company", "person", "job":
	default:
		return "", "", "", fmt.Errorf("operation id %q has unknown entity family %q", id, parts[0])
	}
	if _, ok := verbs[parts[1]]; !ok {
		return "", "", "", fmt.Errorf("operation id %q has unknown verb %q", id, parts[1])
	}
	return parts[0], parts[1], parts[2], nil
}

// Family returns the entity family prefix of an id ("company" of
// "company.enrich.tech_stack"); empty when malformed.
func Family(id string) string {
	family, _, _, err := ParseOperationID(id)
	if err != nil {
		return ""
	}
	return family
}
