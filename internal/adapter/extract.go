// Package adapter implements the provider contract shared by every
// enrichment operation: input extraction with the direct → cumulative
// context → step config precedence, the HTTP call helper that produces
// attempt telemetry, and output validation against registered schemas.
package adapter

import (
	"strings"
)

// Extractor resolves named parameters from an operation's input payload.
// For each parameter it searches, in priority order: the direct key on the
// input, then input["cumulative_context"][key], then
// input["step_config"][key]. Missing required parameters accumulate and are
// reported once via Missing().
type Extractor struct {
	direct  map[string]interface{}
	context map[string]interface{}
	config  map[string]interface{}
	missing []string
}

// NewExtractor builds an extractor over an operation input payload.
func NewExtractor(input map[string]interface{}) *Extractor {
	e := &Extractor{direct: input}
	if input != nil {
		if m, ok := input["cumulative_context"].(map[string]interface{}); ok {
			e.context = m
		}
		if m, ok := input["step_config"].(map[string]interface{}); ok {
			e.config = m
		}
	}
	return e
}

// String resolves the first non-empty string among the alias keys, applying
// the source precedence per key. Strings are trimmed; empty collapses to
// absent.
func (e *Extractor) String(aliases ...string) (string, bool) {
	for _, source := range []map[string]interface{}{e.direct, e.context, e.config} {
		if source == nil {
			continue
		}
		for _, key := range aliases {
			raw, ok := source[key]
			if !ok || raw == nil {
				continue
			}
			if s, ok := raw.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					return trimmed, true
				}
			}
		}
	}
	return "", false
}

// RequireString is String that records the canonical alias as missing when
// no source yields a value.
func (e *Extractor) RequireString(aliases ...string) string {
	v, ok := e.String(aliases...)
	if !ok {
		e.missing = append(e.missing, aliases[0])
	}
	return v
}

// List resolves a list parameter. Empty lists are preserved as present:
// empty vs absent is a meaningful distinction for callers.
func (e *Extractor) List(key string) ([]interface{}, bool) {
	for _, source := range []map[string]interface{}{e.direct, e.context, e.config} {
		if source == nil {
			continue
		}
		raw, ok := source[key]
		if !ok || raw == nil {
			continue
		}
		if items, ok := raw.([]interface{}); ok {
			return items, true
		}
	}
	return nil, false
}

// Float resolves a numeric parameter across the source precedence.
func (e *Extractor) Float(key string) (float64, bool) {
	for _, source := range []map[string]interface{}{e.direct, e.context, e.config} {
		if source == nil {
			continue
		}
		raw, ok := source[key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		}
	}
	return 0, false
}

// Missing returns the required parameters that could not be resolved, in
// request order.
func (e *Extractor) Missing() []string {
	return e.missing
}

// HasMissing reports whether any required parameter was unresolved.
func (e *Extractor) HasMissing() bool {
	return len(e.missing) > 0
}
