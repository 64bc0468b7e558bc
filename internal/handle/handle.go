package handle

import (
	"regexp"
	"strings"
)

var profileURLRe = regexp.MustCompile(`^(?:https?://)?(?:www\.)?instagram\.com/([A-Za-z0-9_.]+)/?`)

// Parse normalizes a free-form profile reference (bare handle, @handle or a
// profile URL) into the bare handle. Anything that is not a profile URL is
// returned with surrounding whitespace and one leading @ stripped, even when
// it is not a valid handle: the profile lookup rejects those on its own.
func Parse(value string) string {
	trimmed := strings.TrimSpace(value)
	if m := profileURLRe.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return strings.TrimPrefix(trimmed, "@")
}
