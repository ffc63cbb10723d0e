// Package slug generates URL-safe identifiers from display names and keeps
// them unique within the artist and event namespaces.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// whitespaceRun matches any run of whitespace characters.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// disallowed matches anything that is not a word character or hyphen.
	disallowed = regexp.MustCompile(`[^a-z0-9_-]`)
	// hyphenRun collapses consecutive hyphens into one.
	hyphenRun = regexp.MustCompile(`-{2,}`)
)

// Make converts an arbitrary Unicode string into a lowercase ASCII slug.
//
// Accented characters are decomposed (NFD) and their combining marks removed,
// so "Berlín" becomes "berlin". Whitespace runs turn into single hyphens and
// everything else that is not a word character is dropped. The result may be
// empty if the input holds no retainable characters; callers that need a
// non-empty slug should use Ensure, which falls back to a generated token.
func Make(text string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), text)
	if err == nil {
		text = stripped
	}

	s := strings.ToLower(text)
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
