// Package sciname canonicalizes scientific names into normalized keys
// used for matching records across sources. The key is derived, never
// persisted - the displayed scientific name keeps its original form.
// This is a pure package - parsing is computation, not I/O.
package sciname

import (
	"regexp"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Normalizer derives normalized keys from free-text scientific names.
// It prefers gnparser's canonical form; strings gnparser cannot parse
// fall back to a fixed rule chain.
type Normalizer struct {
	parser gnparser.GNparser
}

// New creates a Normalizer using the zoological nomenclatural code,
// which matches the moth names this table deals in.
func New() *Normalizer {
	cfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))
	return &Normalizer{parser: gnparser.New(cfg)}
}

// Key returns the normalized lookup key for a scientific name. It is
// idempotent: Key(Key(x)) == Key(x). An empty input yields an empty
// key, which callers must treat as unusable for matching.
func (n *Normalizer) Key(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	parsed := n.parser.ParseName(name)
	if parsed.Parsed {
		return strings.ToLower(parsed.Canonical.Simple)
	}
	return Fold(name)
}

var (
	parenthetical = regexp.MustCompile(`\([^)]*\)`)
	wsRun         = regexp.MustCompile(`\s+`)
)

// Fold applies the rule chain for names gnparser rejects, in this
// fixed order:
//  1. remove all parenthesized segments (author/year citations)
//  2. remove commas and periods
//  3. collapse whitespace runs to a single space
//  4. trim and lower-case
func Fold(name string) string {
	s := parenthetical.ReplaceAllString(name, "")
	s = strings.NewReplacer(",", "", ".", "").Replace(s)
	s = wsRun.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}
