// Package domain contains the core types of the enrichment pipeline:
// cumulative context, the adapter result envelope, and entity type
// definitions with their canonical field sets.
package domain

import (
	"strconv"
	"strings"
)

// CumulativeContext is the growing map of merged step outputs carried
// through a pipeline run. Values are JSON-shaped (string, float64, bool,
// []interface{}, map[string]interface{}); the typed accessors below are the
// only sanctioned way to read from it so key drift stays visible in one
// place.
type CumulativeContext map[string]interface{}

// Clone returns a deep copy. Mutating the clone never affects the source.
func (c CumulativeContext) Clone() CumulativeContext {
	if c == nil {
		return CumulativeContext{}
	}
	return CumulativeContext(deepCopyMap(c))
}

// DeepMerge merges src into c with last-writer-wins on duplicate keys.
// Nested maps merge recursively; everything else overwrites.
func (c CumulativeContext) DeepMerge(src map[string]interface{}) {
	deepMergeInto(c, src)
}

// String resolves the first non-empty string among the given keys.
// Strings are trimmed; an empty string counts as absent.
func (c CumulativeContext) String(keys ...string) (string, bool) {
	for _, key := range keys {
		raw, ok := c[key]
		if !ok {
			continue
		}
		if s := strings.TrimSpace(toString(raw)); s != "" {
			return s, true
		}
	}
	return "", false
}

// Float resolves the first numeric value among the given keys.
func (c CumulativeContext) Float(keys ...string) (float64, bool) {
	for _, key := range keys {
		raw, ok := c[key]
		if !ok {
			continue
		}
		if f, ok := toFloat(raw); ok {
			return f, true
		}
	}
	return 0, false
}

// List returns the list under key. Presence is reported even for an empty
// list: empty and absent are distinct states.
func (c CumulativeContext) List(key string) ([]interface{}, bool) {
	raw, ok := c[key]
	if !ok {
		return nil, false
	}
	items, ok := raw.([]interface{})
	return items, ok
}

// Map returns the nested map under key.
func (c CumulativeContext) Map(key string) (map[string]interface{}, bool) {
	raw, ok := c[key]
	if !ok {
		return nil, false
	}
	m, ok := raw.(map[string]interface{})
	return m, ok
}

// Lookup resolves a dotted path ("company.location.city") into the context.
func (c CumulativeContext) Lookup(path string) (interface{}, bool) {
	return lookupPath(c, path)
}

func lookupPath(values map[string]interface{}, path string) (interface{}, bool) {
	if len(values) == 0 || path == "" {
		return nil, false
	}
	if v, ok := values[path]; ok {
		return v, true
	}
	current := interface{}(values)
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		next, ok := m[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func deepMergeInto(dst map[string]interface{}, src map[string]interface{}) {
	for k, v := range src {
		if srcMap, ok := v.(map[string]interface{}); ok {
			if dstMap, ok := dst[k].(map[string]interface{}); ok {
				deepMergeInto(dstMap, srcMap)
				continue
			}
		}
		dst[k] = deepCopyValue(v)
	}
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = deepCopyValue(v)
	}
	return dst
}

func deepCopyValue(v interface{}) interface{} {
	switch typed := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(typed)
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, item := range typed {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}

func toString(raw interface{}) string {
	if raw == nil {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	if f, ok := toFloat(raw); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}
