package helper

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	slugInvalid   = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRun = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a title into a URL-safe slug: lowercase, spaces to
// hyphens, everything outside [a-z0-9-] dropped, hyphen runs collapsed.
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugHyphenRun.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

// Underscore converts a CamelCase struct field name to snake_case.
func Underscore(s string) string {
	var out []rune
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
