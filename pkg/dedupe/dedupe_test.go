package dedupe_test

import (
	"strings"
	"testing"

	"github.com/hpdb/hpdb/pkg/dedupe"
	"github.com/hpdb/hpdb/pkg/record"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   []string
	}{
		{
			msg:   "ideographic comma",
			input: "クリ、コナラ",
			res:   []string{"クリ", "コナラ"},
		},
		{
			msg:   "mixed separators",
			input: "クリ; コナラ，ミズナラ,クヌギ；アベマキ",
			res:   []string{"クリ", "コナラ", "ミズナラ", "クヌギ", "アベマキ"},
		},
		{
			msg:   "empty segments dropped",
			input: "クリ、、コナラ、",
			res:   []string{"クリ", "コナラ"},
		},
		{
			msg:   "single name",
			input: "サクラ",
			res:   []string{"サクラ"},
		},
		{
			msg:   "empty input",
			input: "",
			res:   []string{},
		},
	}

	for _, v := range tests {
		res := dedupe.Split(v.input)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   string
	}{
		{
			msg:   "duplicates removed first-seen wins",
			input: "クリ、コナラ、クリ",
			res:   "クリ; コナラ",
		},
		{
			msg:   "whitespace-insensitive equality",
			input: "クリ 、 クリ",
			res:   "クリ",
		},
		{
			msg:   "case-insensitive equality keeps first spelling",
			input: "Quercus、quercus",
			res:   "Quercus",
		},
		{
			msg:   "canonical separator in output",
			input: "クリ、コナラ",
			res:   "クリ; コナラ",
		},
		{
			msg:   "unknown sentinel passes through",
			input: record.Unknown,
			res:   record.Unknown,
		},
		{
			msg:   "empty passes through",
			input: "",
			res:   "",
		},
	}

	for _, v := range tests {
		res := dedupe.List(v.input)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestListIdempotent(t *testing.T) {
	inputs := []string{
		"クリ、コナラ、クリ",
		"アカマツ; クロマツ",
		record.Unknown,
		"",
	}
	for _, input := range inputs {
		once := dedupe.List(input)
		assert.Equal(t, once, dedupe.List(once), input)
	}
}

func TestListNeverGrows(t *testing.T) {
	inputs := []string{
		"クリ、コナラ、ミズナラ",
		"クリ、クリ、クリ",
		"サクラ",
	}
	for _, input := range inputs {
		in := len(dedupe.Split(input))
		out := len(strings.Split(dedupe.List(input), dedupe.Separator))
		assert.LessOrEqual(t, out, in, input)
	}
}
