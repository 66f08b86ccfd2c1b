// internal/app/system/normalize/normalize.go

// Package normalize canonicalizes user-supplied identity fields before
// they touch the store, so lookups and the unique email index behave
// case-insensitively.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name collapses surrounding whitespace on a display name.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
