// Package plantname strips annotations from free-text plant names:
// family tags like アカマツ（マツ科）, unterminated parentheses left by
// truncated rows, orphaned closing markers. Each rule is named so the
// ordering sensitivity of the chain is explicit and testable.
// This is a pure package.
package plantname

import (
	"regexp"
	"strings"
)

// rule is one normalization step. Rules run in declaration order;
// every rule uses minimal matched spans so a marker token inside a
// longer descriptive phrase does not trigger deletion across segment
// boundaries.
type rule struct {
	name string
	re   *regexp.Regexp
}

var rules = []rule{
	// アカマツ（マツ科） -> アカマツ
	{"family-annotation-fullwidth", regexp.MustCompile(`（[^）]*科[^）]*）`)},
	{"family-annotation-halfwidth", regexp.MustCompile(`\([^)]*科[^)]*\)`)},
	// オオカメノキ（ -> オオカメノキ: an unterminated opening marker
	// removes everything to end-of-string.
	{"unterminated-fullwidth", regexp.MustCompile(`（[^）]*$`)},
	{"unterminated-halfwidth", regexp.MustCompile(`\([^)]*$`)},
	// A leading orphan closing marker left by a split annotation.
	{"orphan-close-fullwidth", regexp.MustCompile(`^）`)},
	{"orphan-close-halfwidth", regexp.MustCompile(`^\)`)},
	// Remaining fully-balanced parenthetical segments.
	{"parenthetical-fullwidth", regexp.MustCompile(`（[^）]*）`)},
	{"parenthetical-halfwidth", regexp.MustCompile(`\([^)]*\)`)},
}

// Normalize maps a plant name to its annotation-free form. It is
// idempotent and returns non-parenthetical input unchanged apart from
// trimming.
func Normalize(name string) string {
	s := name
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// RuleNames returns the names of the normalization rules in the order
// they are applied.
func RuleNames() []string {
	res := make([]string, len(rules))
	for i, r := range rules {
		res[i] = r.name
	}
	return res
}
