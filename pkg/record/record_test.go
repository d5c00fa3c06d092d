package record_test

import (
	"testing"

	"github.com/hpdb/hpdb/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderRowRoundTrip(t *testing.T) {
	rec := record.SpeciesRecord{
		JapaneseName:   "アカエグリバ",
		ScientificName: "Oraesia excavata",
		HostPlants:     "アオツヅラフジ",
		HostPlantNotes: "幼虫は蔓を好む",
		EmergenceTime:  "6〜10月",
		Source:         "図鑑A",
		Remarks:        "要確認",
	}

	header := record.Header()
	row := rec.Row()
	require.Equal(t, len(header), len(row))

	colIdx := record.NewColumnIndex(header)
	assert.Equal(t, rec, colIdx.FromFields(row))
}

func TestNewColumnIndex(t *testing.T) {
	colIdx := record.NewColumnIndex([]string{
		" 和名 ", "学名", "未知の列", "食草", "学名",
	})

	assert.True(t, colIdx.Has(record.ColJapaneseName))
	assert.True(t, colIdx.Has(record.ColScientificName))
	assert.True(t, colIdx.Has(record.ColHostPlants))
	assert.False(t, colIdx.Has(record.ColRemarks))

	// First occurrence wins for duplicated headers.
	assert.Equal(t, 1, colIdx[record.ColScientificName])
}

func TestFromFieldsShortRow(t *testing.T) {
	colIdx := record.NewColumnIndex(record.Header())

	rec := colIdx.FromFields([]string{"フユシャク", "Inurois fletcheri"})
	assert.Equal(t, "フユシャク", rec.JapaneseName)
	assert.Equal(t, "Inurois fletcheri", rec.ScientificName)
	assert.Equal(t, "", rec.HostPlants)
	assert.Equal(t, "", rec.Remarks)
}

func TestFromFieldsPartialLayout(t *testing.T) {
	colIdx := record.NewColumnIndex([]string{"学名", "食草"})

	rec := colIdx.FromFields([]string{"Oraesia excavata", "アオツヅラフジ"})
	assert.Equal(t, "", rec.JapaneseName)
	assert.Equal(t, "Oraesia excavata", rec.ScientificName)
	assert.Equal(t, "アオツヅラフジ", rec.HostPlants)
}

func TestTableAdd(t *testing.T) {
	var tbl record.Table

	assert.Equal(t, 0, tbl.Len())
	pos := tbl.Add(record.SpeciesRecord{JapaneseName: "a"})
	assert.Equal(t, 0, pos)
	pos = tbl.Add(record.SpeciesRecord{JapaneseName: "b"})
	assert.Equal(t, 1, pos)
	assert.Equal(t, 2, tbl.Len())
}
