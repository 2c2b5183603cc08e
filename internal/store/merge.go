package store

// AdditiveMerge folds incoming canonical fields into an existing payload.
// Non-null incoming values win; nulls never erase existing data. Empty
// strings count as null, empty lists count as data (a provider can learn
// "no tech stack" and that is information).
func AdditiveMerge(existing, incoming map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		merged[k] = v
	}
	return merged
}

// MergeProviders unions the provider attribution list, preserving first
// appearance order.
func MergeProviders(existing []string, incoming ...string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, p := range existing {
		if _, dup := seen[p]; dup || p == "" {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, p := range incoming {
		if _, dup := seen[p]; dup || p == "" {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
