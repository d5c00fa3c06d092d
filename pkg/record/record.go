// Package record defines the species record of the consolidated
// host-plant master table and the in-memory table a consolidation
// run operates on.
// This is a pure package - no I/O.
package record

import (
	"strings"
)

// Unknown is the placeholder for "no host-plant data". It is distinct
// from the empty string: an empty field means the source said nothing,
// Unknown means the source explicitly reported no data.
const Unknown = "不明"

// Canonical column headers of the master table. Source files name at
// least a subset of these in their header row.
const (
	ColJapaneseName   = "和名"
	ColScientificName = "学名"
	ColHostPlants     = "食草"
	ColHostPlantNotes = "食草に関する備考"
	ColEmergenceTime  = "成虫の発生時期"
	ColSource         = "出典"
	ColRemarks        = "備考"
)

// Header returns the full canonical column set in output order.
func Header() []string {
	return []string{
		ColJapaneseName,
		ColScientificName,
		ColHostPlants,
		ColHostPlantNotes,
		ColEmergenceTime,
		ColSource,
		ColRemarks,
	}
}

// SpeciesRecord is one row of the consolidated table. Every field has
// a defined default (empty string); merge logic never has to branch on
// field presence versus field emptiness.
type SpeciesRecord struct {
	JapaneseName   string
	ScientificName string
	HostPlants     string
	HostPlantNotes string
	EmergenceTime  string
	Source         string
	Remarks        string
}

// Row returns the record as a field slice in Header() order.
func (r *SpeciesRecord) Row() []string {
	return []string{
		r.JapaneseName,
		r.ScientificName,
		r.HostPlants,
		r.HostPlantNotes,
		r.EmergenceTime,
		r.Source,
		r.Remarks,
	}
}

// ColumnIndex maps canonical column names to their positions in a
// particular source file, derived from its header row. Columns the
// source does not carry are absent from the map.
type ColumnIndex map[string]int

// NewColumnIndex builds a ColumnIndex from a header row. Header cells
// are trimmed; unknown columns are ignored.
func NewColumnIndex(header []string) ColumnIndex {
	known := make(map[string]struct{})
	for _, col := range Header() {
		known[col] = struct{}{}
	}

	res := make(ColumnIndex)
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if _, ok := known[cell]; !ok {
			continue
		}
		if _, dup := res[cell]; dup {
			continue
		}
		res[cell] = i
	}
	return res
}

// Has reports whether the source carries the given column.
func (ci ColumnIndex) Has(col string) bool {
	_, ok := ci[col]
	return ok
}

// field returns the trimmed value of a named column in fields, or an
// empty string when the column is absent or the row is too short.
func (ci ColumnIndex) field(fields []string, col string) string {
	i, ok := ci[col]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// FromFields builds a SpeciesRecord from a parsed field slice using
// the source's column layout. Missing columns default to empty strings.
func (ci ColumnIndex) FromFields(fields []string) SpeciesRecord {
	return SpeciesRecord{
		JapaneseName:   ci.field(fields, ColJapaneseName),
		ScientificName: ci.field(fields, ColScientificName),
		HostPlants:     ci.field(fields, ColHostPlants),
		HostPlantNotes: ci.field(fields, ColHostPlantNotes),
		EmergenceTime:  ci.field(fields, ColEmergenceTime),
		Source:         ci.field(fields, ColSource),
		Remarks:        ci.field(fields, ColRemarks),
	}
}

// SourceRow is a parsed, not-yet-merged row from an auxiliary source.
type SourceRow struct {
	SpeciesRecord

	// Raw keeps the original parsed fields for manual-review remarks.
	Raw []string

	// Line is the 1-based line number in the source file.
	Line int

	// Repaired is true when the tolerant parser re-joined a split
	// citation in this row.
	Repaired bool

	// NeedsReview is true when the row's fields could not be aligned
	// with the expected layout. Such rows must never overwrite
	// trusted data.
	NeedsReview bool
}

// Table is the in-memory consolidated table owned by a single run.
// Records are only added or updated during a run, never deleted.
type Table struct {
	Records []SpeciesRecord
}

// Add appends a record and returns its position.
func (t *Table) Add(rec SpeciesRecord) int {
	t.Records = append(t.Records, rec)
	return len(t.Records) - 1
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.Records)
}
