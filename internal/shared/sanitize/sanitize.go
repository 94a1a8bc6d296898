// Package sanitize strips markup from user-authored free text before it
// is stored. Descriptions, remedies, responses and messages are plain
// text; any HTML submitted by a client is removed, not escaped.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
