package resolver_test

import (
	"testing"

	"github.com/hpdb/hpdb/pkg/record"
	"github.com/hpdb/hpdb/pkg/resolver"
	"github.com/hpdb/hpdb/pkg/sciname"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foldKeyer keys names with the fallback rule chain only, keeping the
// tests independent of name-parsing internals.
type foldKeyer struct{}

func (foldKeyer) Key(name string) string {
	return sciname.Fold(name)
}

func testTable() *record.Table {
	return &record.Table{
		Records: []record.SpeciesRecord{
			{
				JapaneseName:   "アカエグリバ",
				ScientificName: "Oraesia excavata",
			},
			{
				JapaneseName:   "クロスジフユエダシャク",
				ScientificName: "Pachyerannis obliquaria (Motschulsky, 1861)",
			},
			{
				JapaneseName: "和名のみの種",
			},
		},
	}
}

func TestUsableKey(t *testing.T) {
	tests := []struct {
		msg string
		key string
		res bool
	}{
		{"normal key", "oraesia excavata", true},
		{"empty key", "", false},
		{"unknown filler", "unknown", false},
		{"various filler", "various", false},
		{"sp filler", "sp", false},
		{"spp filler", "spp", false},
		{"japanese unknown filler", "不明", false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, resolver.UsableKey(v.key), v.msg)
	}
}

func TestMatchScientific(t *testing.T) {
	res := resolver.New(testTable(), foldKeyer{})

	// Citation differences do not defeat the match.
	pos, kind := res.Match("Pachyerannis obliquaria", "別の和名")
	assert.Equal(t, resolver.MatchScientific, kind)
	assert.Equal(t, 1, pos)
}

func TestMatchJapaneseFallback(t *testing.T) {
	res := resolver.New(testTable(), foldKeyer{})

	tests := []struct {
		msg      string
		sciName  string
		japanese string
		pos      int
		kind     resolver.MatchKind
	}{
		{
			msg:      "empty scientific name falls back",
			sciName:  "",
			japanese: "和名のみの種",
			pos:      2,
			kind:     resolver.MatchJapanese,
		},
		{
			msg:      "filler scientific name falls back",
			sciName:  "不明",
			japanese: "アカエグリバ",
			pos:      0,
			kind:     resolver.MatchJapanese,
		},
		{
			msg:      "usable scientific name never falls back",
			sciName:  "Nyssiodes lefuarius",
			japanese: "アカエグリバ",
			pos:      0,
			kind:     resolver.MatchNone,
		},
	}

	for _, v := range tests {
		pos, kind := res.Match(v.sciName, v.japanese)
		assert.Equal(t, v.kind, kind, v.msg)
		if kind != resolver.MatchNone {
			assert.Equal(t, v.pos, pos, v.msg)
		}
	}
}

func TestMatchAmbiguous(t *testing.T) {
	tbl := testTable()
	tbl.Records = append(tbl.Records, record.SpeciesRecord{
		JapaneseName:   "同名の別種",
		ScientificName: "Oraesia excavata",
	})
	res := resolver.New(tbl, foldKeyer{})

	_, kind := res.Match("Oraesia excavata", "アカエグリバ")
	assert.Equal(t, resolver.MatchAmbiguous, kind)

	// Other keys keep working.
	pos, kind := res.Match("Pachyerannis obliquaria", "")
	assert.Equal(t, resolver.MatchScientific, kind)
	assert.Equal(t, 1, pos)
}

func TestRegisterMidRun(t *testing.T) {
	tbl := testTable()
	res := resolver.New(tbl, foldKeyer{})

	_, kind := res.Match("Inurois fletcheri", "クロバネフユシャク")
	require.Equal(t, resolver.MatchNone, kind)

	pos := tbl.Add(record.SpeciesRecord{
		JapaneseName:   "クロバネフユシャク",
		ScientificName: "Inurois fletcheri",
	})
	res.Register(pos, "Inurois fletcheri", "クロバネフユシャク")

	got, kind := res.Match("Inurois fletcheri", "")
	assert.Equal(t, resolver.MatchScientific, kind)
	assert.Equal(t, pos, got)
}

func TestRegisterSamePositionIsNoOp(t *testing.T) {
	tbl := testTable()
	res := resolver.New(tbl, foldKeyer{})

	// Re-registering a record under keys it already holds, as the
	// consolidation loop does after a merge fills an identity field,
	// must not turn the key ambiguous.
	res.Register(0, "Oraesia excavata", "アカエグリバ")
	res.Register(0, "Oraesia excavata", "アカエグリバ")

	pos, kind := res.Match("Oraesia excavata", "")
	assert.Equal(t, resolver.MatchScientific, kind)
	assert.Equal(t, 0, pos)
}

func TestMatchDeterministic(t *testing.T) {
	res := resolver.New(testTable(), foldKeyer{})

	pos1, kind1 := res.Match("Oraesia excavata", "")
	for range 10 {
		pos, kind := res.Match("Oraesia excavata", "")
		assert.Equal(t, pos1, pos)
		assert.Equal(t, kind1, kind)
	}
}
