// Package merge folds an incoming source row into an existing base
// record, field by field. Conflicting information is never silently
// discarded: values that may not overwrite are appended to remarks
// with a provenance tag naming the contributing source.
// This is a pure package - the engine returns records, it does not
// decide where they are written.
package merge

import (
	"fmt"
	"strings"

	"github.com/hpdb/hpdb/pkg/dedupe"
	"github.com/hpdb/hpdb/pkg/emergence"
	"github.com/hpdb/hpdb/pkg/record"
)

// Authority values for the scientific-name merge policy.
const (
	// AuthorityIncoming treats later-processed sources as more
	// authoritative: a non-empty incoming scientific name overwrites.
	AuthorityIncoming = "incoming"

	// AuthorityExisting keeps the base table's scientific name; a
	// differing incoming name is preserved in remarks.
	AuthorityExisting = "existing"
)

// Policy holds the per-run merge configuration. Authority order is
// explicit configuration, never inferred from source sequencing.
type Policy struct {
	// ScientificName is AuthorityIncoming or AuthorityExisting.
	ScientificName string
}

// Engine applies the per-field merge policy.
type Engine struct {
	policy Policy
}

// NewEngine creates an Engine. An unset scientific-name authority
// defaults to AuthorityIncoming.
func NewEngine(p Policy) *Engine {
	if p.ScientificName == "" {
		p.ScientificName = AuthorityIncoming
	}
	return &Engine{policy: p}
}

// Merge returns the existing record updated with the incoming row.
// Rows flagged for review only ever touch remarks.
func (e *Engine) Merge(
	existing record.SpeciesRecord,
	incoming record.SourceRow,
	sourceLabel string,
) record.SpeciesRecord {
	res := existing

	if incoming.NeedsReview {
		res.Remarks = appendRemark(res.Remarks, reviewRemark(incoming, sourceLabel))
		return res
	}

	if res.JapaneseName == "" {
		res.JapaneseName = incoming.JapaneseName
	}

	e.mergeScientificName(&res, incoming, sourceLabel)
	mergeHostPlants(&res, incoming, sourceLabel)
	mergeNotes(&res, incoming, sourceLabel)

	res.Source = sourceLabel
	return res
}

func (e *Engine) mergeScientificName(
	res *record.SpeciesRecord,
	incoming record.SourceRow,
	sourceLabel string,
) {
	name := incoming.ScientificName
	if name == "" {
		return
	}
	switch e.policy.ScientificName {
	case AuthorityExisting:
		if res.ScientificName == "" {
			res.ScientificName = name
		} else if res.ScientificName != name {
			res.Remarks = appendRemark(res.Remarks,
				fmt.Sprintf("%s: %s=%s", sourceLabel, record.ColScientificName, name))
		}
	default:
		res.ScientificName = name
	}
}

// mergeHostPlants overwrites only when the existing value carries no
// information (empty or the "unknown" sentinel). Otherwise the
// incoming list is logged to remarks for traceability.
func mergeHostPlants(
	res *record.SpeciesRecord,
	incoming record.SourceRow,
	sourceLabel string,
) {
	plants := incoming.HostPlants
	if plants == "" || plants == record.Unknown {
		return
	}
	if res.HostPlants == "" || res.HostPlants == record.Unknown {
		res.HostPlants = dedupe.List(plants)
		return
	}
	if dedupe.List(res.HostPlants) == dedupe.List(plants) {
		return
	}
	res.Remarks = appendRemark(res.Remarks,
		fmt.Sprintf("%s: %s=%s", sourceLabel, record.ColHostPlants, plants))
}

// mergeNotes folds host-plant notes and emergence time in. An
// emergence phrase hiding inside the notes is extracted into its own
// field first.
func mergeNotes(
	res *record.SpeciesRecord,
	incoming record.SourceRow,
	sourceLabel string,
) {
	notes := incoming.HostPlantNotes
	phrase, rest := emergence.Extract(notes)
	phrase = emergence.Normalize(phrase)

	et := incoming.EmergenceTime
	if et == "" {
		et = phrase
	}
	if et != "" {
		if res.EmergenceTime == "" {
			res.EmergenceTime = et
		} else if res.EmergenceTime != et {
			res.Remarks = appendRemark(res.Remarks,
				fmt.Sprintf("%s: %s=%s", sourceLabel, record.ColEmergenceTime, et))
		}
	}

	if rest != "" {
		if res.HostPlantNotes == "" {
			res.HostPlantNotes = rest
		} else if res.HostPlantNotes != rest {
			res.Remarks = appendRemark(res.Remarks,
				fmt.Sprintf("%s: %s=%s", sourceLabel, record.ColHostPlantNotes, rest))
		}
	}
}

// NewRecord creates a base record for an incoming row that matched
// nothing. Optional fields keep their defaults; an emergence phrase
// in the notes moves to its own field.
func (e *Engine) NewRecord(
	incoming record.SourceRow,
	sourceLabel string,
) record.SpeciesRecord {
	res := record.SpeciesRecord{
		JapaneseName:   incoming.JapaneseName,
		ScientificName: incoming.ScientificName,
		HostPlants:     dedupe.List(incoming.HostPlants),
		EmergenceTime:  incoming.EmergenceTime,
		Source:         sourceLabel,
	}

	phrase, rest := emergence.Extract(incoming.HostPlantNotes)
	res.HostPlantNotes = rest
	if res.EmergenceTime == "" {
		res.EmergenceTime = emergence.Normalize(phrase)
	}

	if incoming.NeedsReview {
		res.Remarks = reviewRemark(incoming, sourceLabel)
	}
	return res
}

// reviewRemark preserves a misaligned row's raw fields for manual
// resolution.
func reviewRemark(incoming record.SourceRow, sourceLabel string) string {
	return fmt.Sprintf("%s: 要確認 (%s)",
		sourceLabel, strings.Join(incoming.Raw, " / "))
}

// appendRemark accumulates remark entries as a " | "-joined log.
// Remarks are never overwritten.
func appendRemark(remarks, entry string) string {
	if entry == "" {
		return remarks
	}
	if remarks == "" {
		return entry
	}
	return remarks + " | " + entry
}
