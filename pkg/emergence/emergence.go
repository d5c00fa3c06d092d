// Package emergence pulls adult-emergence periods out of free-text
// host-plant notes, so the period lands in its own column instead of
// being buried in remarks.
// This is a pure package.
package emergence

import (
	"regexp"
	"strings"
)

// patterns are tried in order; the first match wins. Labeled forms
// come before the looser month-range forms.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`成虫発生時期[:：]\s*([^;。\n]+)`),
	regexp.MustCompile(`成虫出現時期[:：]\s*([^;。\n]+)`),
	regexp.MustCompile(`羽化時期[:：]\s*([^;。\n]+)`),
	regexp.MustCompile(`発生時期[:：]\s*([^;。\n]+)`),
	regexp.MustCompile(`出現時期[:：]\s*([^;。\n]+)`),
	regexp.MustCompile(`成虫は\s*([0-9～〜~-]+月[^;。\n]*)`),
	regexp.MustCompile(`([0-9～〜~-]+月[^;。\n]*(?:発生|出現|羽化))`),
}

var leadingPunct = regexp.MustCompile(`^[;。、\s]+`)

// Extract splits notes into an emergence-time phrase and the
// remaining note text. When no pattern matches, the phrase is empty
// and the notes come back unchanged.
func Extract(notes string) (string, string) {
	for _, re := range patterns {
		m := re.FindStringSubmatch(notes)
		if m == nil {
			continue
		}
		phrase := strings.TrimSpace(m[1])
		rest := strings.TrimSpace(strings.Replace(notes, m[0], "", 1))
		rest = strings.TrimSpace(leadingPunct.ReplaceAllString(rest, ""))
		return phrase, rest
	}
	return "", notes
}

var trimEdges = regexp.MustCompile(`^[、。;:：\s]+|[、。;:：\s]+$`)

// Normalize cleans an extracted phrase: edge punctuation and filler
// verbs go, 頃発生/頃出現/頃羽化 collapse to 頃.
func Normalize(phrase string) string {
	if phrase == "" {
		return ""
	}
	s := trimEdges.ReplaceAllString(phrase, "")
	s = strings.ReplaceAll(s, "成虫は", "")
	s = strings.ReplaceAll(s, "に発生", "")
	s = strings.ReplaceAll(s, "頃発生", "頃")
	s = strings.ReplaceAll(s, "頃出現", "頃")
	s = strings.ReplaceAll(s, "頃羽化", "頃")
	return strings.TrimSpace(s)
}
