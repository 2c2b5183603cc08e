// Package identity provides entity normalization, deterministic identity
// resolution, and fan-out dedup key derivation. Everything here is a pure
// function: same inputs, same outputs, across processes and time.
package identity

import "strings"

// NormalizeDomain canonicalizes a web domain: lowercase, scheme stripped,
// leading "www." stripped, trailing slash stripped.
func NormalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))
	for _, scheme := range []string{"https://", "http://"} {
		d = strings.TrimPrefix(d, scheme)
	}
	d = strings.TrimPrefix(d, "www.")
	d = strings.TrimSuffix(d, "/")
	return d
}

// NormalizeEmail canonicalizes an email address: lowercase, trimmed.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeLinkedInURL canonicalizes a LinkedIn URL: trimmed, trailing
// slash stripped, lowercase.
func NormalizeLinkedInURL(raw string) string {
	u := strings.TrimSpace(raw)
	u = strings.TrimSuffix(u, "/")
	return strings.ToLower(u)
}

// NormalizeName trims a display name, preserving case for storage.
func NormalizeName(raw string) string {
	return strings.TrimSpace(raw)
}

// KeyName lowercases a name for use as a keying fallback only.
func KeyName(raw string) string {
	return strings.ToLower(NormalizeName(raw))
}
