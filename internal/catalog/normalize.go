package catalog

import "strings"

// NormalizeKey canonicalizes a category identifier: case-folded, trimmed,
// inner whitespace collapsed to single dashes. Catalog rows store keys
// already normalized, so every lookup after load is an exact match; the
// fuzziness lives here, once, not in request paths.
func NormalizeKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	fields := strings.Fields(lowered)
	return strings.Join(fields, "-")
}
