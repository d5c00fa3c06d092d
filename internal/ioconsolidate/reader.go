package ioconsolidate

import (
	"os"

	"github.com/hpdb/hpdb/pkg/record"
	"github.com/hpdb/hpdb/pkg/sources"
	"github.com/hpdb/hpdb/pkg/tolerantcsv"
)

// readBase loads the primary table. Failure here is fatal to the run:
// it happens before any output is produced.
func (c *consolidator) readBase() (*record.Table, error) {
	path := c.cfg.Consolidate.BaseFile
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, BaseReadError(path, err)
	}

	rows, colIdx, err := parseFile(string(data), 0)
	if err != nil {
		return nil, BaseHeaderError(path, err)
	}

	tbl := &record.Table{}
	for _, row := range rows {
		tbl.Add(colIdx.FromFields(row.Fields))
	}
	return tbl, nil
}

// readSource loads one auxiliary source into SourceRows. A missing
// file surfaces as an os.IsNotExist error for the caller to downgrade
// to a skip.
func readSource(source sources.SourceConfig) ([]record.SourceRow, error) {
	data, err := os.ReadFile(source.Path)
	if err != nil {
		return nil, err
	}

	rows, colIdx, err := parseFile(string(data), source.FieldCount)
	if err != nil {
		return nil, err
	}

	res := make([]record.SourceRow, 0, len(rows))
	for _, row := range rows {
		res = append(res, record.SourceRow{
			SpeciesRecord: colIdx.FromFields(row.Fields),
			Raw:           row.Fields,
			Line:          row.Line,
			Repaired:      row.Repaired,
			NeedsReview:   row.NeedsReview,
		})
	}
	return res, nil
}

// parseFile runs the tolerant parser over a whole file. The first row
// is the header; it determines the column layout and, unless
// overridden, the expected field count.
func parseFile(
	text string,
	fieldCount int,
) ([]tolerantcsv.Row, record.ColumnIndex, error) {
	headerRows := tolerantcsv.New().Parse(text)
	if len(headerRows) == 0 {
		return nil, nil, ErrEmptyFile
	}
	header := headerRows[0].Fields
	colIdx := record.NewColumnIndex(header)
	if !colIdx.Has(record.ColScientificName) && !colIdx.Has(record.ColJapaneseName) {
		return nil, nil, ErrNoIdentityColumns
	}

	if fieldCount == 0 {
		fieldCount = len(header)
	}
	sciCol := -1
	if i, ok := colIdx[record.ColScientificName]; ok {
		sciCol = i
	}

	parser := tolerantcsv.New(
		tolerantcsv.OptFieldCount(fieldCount),
		tolerantcsv.OptSciNameCol(sciCol),
	)
	rows := parser.Parse(text)
	return rows[1:], colIdx, nil
}
