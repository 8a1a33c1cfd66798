package articles

import (
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL identifier from a title: lower-case, every run
// of non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Derivation is deterministic; colliding slugs
// fail the write rather than being suffixed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlnumRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
