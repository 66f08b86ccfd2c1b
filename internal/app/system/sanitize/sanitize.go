// internal/app/system/sanitize/sanitize.go

// Package sanitize strips unsafe markup from user-authored blog bodies
// and comments before they are stored.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// policy allows the formatting tags user-generated content needs and
// nothing executable. Built once; bluemonday policies are safe for
// concurrent use.
var policy = bluemonday.UGCPolicy()

// HTML returns s with scripts, event handlers, and javascript: URLs
// removed.
func HTML(s string) string {
	return policy.Sanitize(s)
}
