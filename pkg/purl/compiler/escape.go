package compiler

import (
	"regexp"
	"strings"
)

// escapeSource turns a literal URL string into a regular expression that
// matches exactly that string. The value is trimmed first, and every regex
// metacharacter is escaped. Forward slashes are left alone (QuoteMeta does
// not touch them), so the emitted pattern reads like the URL it matches:
// "/obo/go.owl" becomes "/obo/go\.owl", not "\/obo\/go\.owl".
func escapeSource(s string) string {
	return regexp.QuoteMeta(strings.TrimSpace(s))
}
