package cp

import (
	"regexp"
	"strings"
)

var hyphenRuns = regexp.MustCompile(`-{2,}`)

// Slugify turns a station display name into the path segment used by the
// timetable pages: spaces become hyphens and any run of hyphens collapses to
// one. Everything else, diacritics included, passes through untouched.
func Slugify(name string) string {
	return hyphenRuns.ReplaceAllString(strings.ReplaceAll(name, " ", "-"), "-")
}
