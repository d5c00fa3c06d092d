package plantname_test

import (
	"testing"

	"github.com/hpdb/hpdb/pkg/plantname"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   string
	}{
		{
			msg:   "family annotation fullwidth",
			input: "アカマツ（マツ科）",
			res:   "アカマツ",
		},
		{
			msg:   "family annotation halfwidth",
			input: "クヌギ(ブナ科)",
			res:   "クヌギ",
		},
		{
			msg:   "unterminated opening marker",
			input: "オオカメノキ（",
			res:   "オオカメノキ",
		},
		{
			msg:   "unterminated marker with text",
			input: "オオカメノキ（スイカズラ",
			res:   "オオカメノキ",
		},
		{
			msg:   "leading orphan closing marker",
			input: "）ガマズミ",
			res:   "ガマズミ",
		},
		{
			msg:   "balanced non-family parenthetical",
			input: "クリ（栽培種）",
			res:   "クリ",
		},
		{
			msg:   "plain name unchanged",
			input: "コナラ",
			res:   "コナラ",
		},
		{
			msg:   "family token without markers unchanged",
			input: "イネ科",
			res:   "イネ科",
		},
		{
			msg:   "descriptive phrase with family token unchanged",
			input: "イネ科; その他の単子葉植物",
			res:   "イネ科; その他の単子葉植物",
		},
		{
			msg:   "whitespace trimmed",
			input: " アカマツ（マツ科） ",
			res:   "アカマツ",
		},
		{
			msg:   "empty input",
			input: "",
			res:   "",
		},
	}

	for _, v := range tests {
		res := plantname.Normalize(v.input)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"アカマツ（マツ科）",
		"オオカメノキ（",
		"）ガマズミ",
		"コナラ",
	}
	for _, input := range inputs {
		once := plantname.Normalize(input)
		assert.Equal(t, once, plantname.Normalize(once), input)
	}
}

func TestNormalizeMinimalSpans(t *testing.T) {
	// Two annotated names in one segment lose only their own
	// annotations; the deletion never spans from one marker pair into
	// the next name.
	res := plantname.Normalize("アカマツ（マツ科）・クヌギ（ブナ科）")
	assert.Equal(t, "アカマツ・クヌギ", res)
}

func TestRuleNames(t *testing.T) {
	names := plantname.RuleNames()
	assert.Equal(t, []string{
		"family-annotation-fullwidth",
		"family-annotation-halfwidth",
		"unterminated-fullwidth",
		"unterminated-halfwidth",
		"orphan-close-fullwidth",
		"orphan-close-halfwidth",
		"parenthetical-fullwidth",
		"parenthetical-halfwidth",
	}, names)
}
