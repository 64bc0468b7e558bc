// Package caption extracts hashtag and mention tokens from post captions.
package caption

import (
	"regexp"
	"slices"

	"github.com/samber/lo"
)

var (
	hashtagRe = regexp.MustCompile(`#(\w+)`)
	mentionRe = regexp.MustCompile(`@([A-Za-z0-9_.]+)`)
)

// Hashtags returns the hashtag tokens of text without the leading #,
// deduplicated and sorted. Dedup is case-sensitive: #Foo and #foo stay
// distinct.
func Hashtags(text string) []string {
	return extract(hashtagRe, text)
}

// Mentions returns the @-mention tokens of text, same dedup and ordering
// contract as Hashtags.
func Mentions(text string) []string {
	return extract(mentionRe, text)
}

// extract returns the first capture group of every match, deduplicated and
// sorted by codepoint so that output is deterministic across runs: source
// order is not stable through caching layers.
func extract(re *regexp.Regexp, text string) []string {
	if text == "" {
		return []string{}
	}

	matches := re.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}

	tokens = lo.Uniq(tokens)
	slices.Sort(tokens)
	return tokens
}
