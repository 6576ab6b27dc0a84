// Package redact scrubs personal contact details from posting text before it
// is sent to a text-generation provider.
package redact

import "regexp"

const (
	EmailPlaceholder = "[EMAIL]"
	PhonePlaceholder = "[PHONE]"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// Japanese landline and mobile numbers, e.g. 03-1234-5678, 09012345678,
	// +81-90-1234-5678. The trunk 0 is optional after the country code.
	phonePattern = regexp.MustCompile(`(?:\+81[-\s]?0?|0)[0-9]{1,4}[-\s_]?[0-9]{1,4}[-\s_]?[0-9]{3,4}`)
)

// Redact replaces e-mail addresses and phone numbers in text with fixed
// placeholders. Text without matches is returned unchanged.
func Redact(text string) string {
	text = emailPattern.ReplaceAllLiteralString(text, EmailPlaceholder)
	return phonePattern.ReplaceAllLiteralString(text, PhonePlaceholder)
}
