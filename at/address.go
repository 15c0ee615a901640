package at

import "strings"

// NormalizeAddress converts a colon-delimited module address as reported
// on info lines (e.g. "98D3:31:FC190E") to the comma-delimited form the
// link and bind commands expect ("98D3,31,FC190E"). Surrounding whitespace
// is trimmed. The conversion is idempotent: an already comma-delimited
// address passes through unchanged.
func NormalizeAddress(addr string) string {
	return strings.ReplaceAll(strings.TrimSpace(addr), ":", ",")
}
