package emergence_test

import (
	"testing"

	"github.com/hpdb/hpdb/pkg/emergence"
	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		msg    string
		notes  string
		phrase string
		rest   string
	}{
		{
			msg:    "labeled phrase with colon",
			notes:  "成虫発生時期: 11月〜12月",
			phrase: "11月〜12月",
			rest:   "",
		},
		{
			msg:    "labeled phrase fullwidth colon",
			notes:  "成虫出現時期：12月上旬",
			phrase: "12月上旬",
			rest:   "",
		},
		{
			msg:    "phrase embedded in notes",
			notes:  "若齢幼虫は葉を食べる。成虫発生時期: 3〜4月",
			phrase: "3〜4月",
			rest:   "若齢幼虫は葉を食べる。",
		},
		{
			msg:    "seijuu-wa month form",
			notes:  "成虫は11〜12月に発生",
			phrase: "11〜12月に発生",
			rest:   "",
		},
		{
			msg:    "month range with hassei verb",
			notes:  "平地では12月に出現",
			phrase: "12月に出現",
			rest:   "平地では",
		},
		{
			msg:    "no emergence info",
			notes:  "葉の裏に静止する",
			phrase: "",
			rest:   "葉の裏に静止する",
		},
		{
			msg:    "empty notes",
			notes:  "",
			phrase: "",
			rest:   "",
		},
	}

	for _, v := range tests {
		phrase, rest := emergence.Extract(v.notes)
		assert.Equal(t, v.phrase, phrase, v.msg)
		assert.Equal(t, v.rest, rest, v.msg)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   string
	}{
		{
			msg:   "filler verb removed",
			input: "11〜12月に発生",
			res:   "11〜12月",
		},
		{
			msg:   "seijuu-wa prefix removed",
			input: "成虫は12月頃発生",
			res:   "12月頃",
		},
		{
			msg:   "koro verbs collapse",
			input: "3月頃出現",
			res:   "3月頃",
		},
		{
			msg:   "edge punctuation trimmed",
			input: "、11月〜12月。",
			res:   "11月〜12月",
		},
		{
			msg:   "empty input",
			input: "",
			res:   "",
		},
	}

	for _, v := range tests {
		res := emergence.Normalize(v.input)
		assert.Equal(t, v.res, res, v.msg)
	}
}
