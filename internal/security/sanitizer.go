package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

const maxNameLength = 64

// SanitizeName cleans a Telegram-supplied display name before it is stored
// or echoed back inside HTML-mode messages.
func SanitizeName(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	input = htmlPolicy.Sanitize(input)

	if len(input) > maxNameLength {
		input = input[:maxNameLength]
	}

	return input
}
