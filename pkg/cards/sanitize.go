package cards

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans a single text value before it is written into markup.
type Sanitizer interface {
	Sanitize(string) string
}

// SanitizerFunc adapts a function to the Sanitizer interface.
type SanitizerFunc func(string) string

// Sanitize calls fn(value).
func (fn SanitizerFunc) Sanitize(value string) string {
	return fn(value)
}

// NoSanitize writes values verbatim.
var NoSanitize Sanitizer = SanitizerFunc(func(value string) string { return value })

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// TextSanitizer strips all markup from values and escapes the rest, so record
// data fetched from third parties cannot inject elements into the page.
func TextSanitizer() Sanitizer {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
