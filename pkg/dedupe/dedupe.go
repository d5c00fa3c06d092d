// Package dedupe cleans delimiter-joined host-plant lists: splits,
// trims, removes duplicates while preserving first-seen order and
// spelling, and rejoins with the canonical "; " separator.
// This is a pure package.
package dedupe

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hpdb/hpdb/pkg/record"
)

// Separator joins surviving segments in the output.
const Separator = "; "

// Source lists separate entries with ASCII and full-width commas and
// semicolons, and the ideographic comma.
var splitRe = regexp.MustCompile(`[;；、，,]`)

// Split cuts a host-plant list into trimmed, non-empty segments.
func Split(s string) []string {
	parts := splitRe.Split(s, -1)
	res := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}

// List deduplicates a host-plant list. The empty string and the
// "unknown" sentinel pass through unchanged. Equality ignores
// whitespace and case, but the first-encountered original spelling
// wins in the output. List is idempotent and never emits more
// segments than it received.
func List(s string) string {
	if s == "" || s == record.Unknown {
		return s
	}

	seen := make(map[string]struct{})
	var uniq []string
	for _, part := range Split(s) {
		key := foldKey(part)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, part)
	}
	return strings.Join(uniq, Separator)
}

// foldKey is the comparison form of one segment: all whitespace
// (including ideographic space) removed, lower-cased.
func foldKey(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}
