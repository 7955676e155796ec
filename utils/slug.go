package utils

import (
	"regexp"
	"strings"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
	slugEdgeRe     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives the URL identifier for a title: lowercase, trim, drop
// non-word characters, collapse whitespace/underscores/hyphens into a single
// hyphen, trim leading/trailing hyphens. The exact chain is part of the
// public contract — published URLs must survive a reimport.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return slugEdgeRe.ReplaceAllString(s, "")
}
