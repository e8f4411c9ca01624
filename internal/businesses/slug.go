package businesses

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives the URL identifier from a business name: lowercase, strip
// punctuation, collapse whitespace/underscore/hyphen runs to single hyphens.
// Slugs are not unique; lookups key on the row ID.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
