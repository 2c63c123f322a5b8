package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a product name: lowercase ASCII
// letters and digits, runs of anything else collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen

	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// NumberedSlug appends a numeric suffix used when the base slug is taken.
func NumberedSlug(slug string, n int) string {
	return fmt.Sprintf("%s-%d", slug, n)
}
