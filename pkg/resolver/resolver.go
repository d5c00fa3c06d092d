// Package resolver locates the base-table record an incoming source
// row belongs to. It builds two indexes over the base table: one on
// the normalized scientific name, one on the trimmed Japanese name.
// Lookup is O(1) amortized after O(n) construction.
// This is a pure package.
package resolver

import (
	"strings"

	"github.com/hpdb/hpdb/pkg/record"
)

// Keyer derives normalized lookup keys from scientific names.
// pkg/sciname provides the canonical implementation; callers may wrap
// it, e.g. with a cache.
type Keyer interface {
	Key(name string) string
}

// MatchKind classifies the outcome of a lookup.
type MatchKind int

const (
	// MatchNone means no base record matches; the row becomes a new
	// record if its key is usable.
	MatchNone MatchKind = iota

	// MatchScientific means the normalized scientific name matched.
	MatchScientific

	// MatchJapanese means the Japanese name matched after the
	// scientific name proved empty or unusable.
	MatchJapanese

	// MatchAmbiguous means the normalized key points at more than one
	// base record. The merge must be skipped and logged, never
	// applied to an arbitrary candidate.
	MatchAmbiguous
)

// fillers are generic placeholder tokens that must never act as
// matching keys - collisions on them would merge unrelated species.
var fillers = map[string]struct{}{
	"unknown": {},
	"various": {},
	"sp":      {},
	"spp":     {},
	"不明":      {},
}

// UsableKey reports whether a normalized key may participate in
// matching.
func UsableKey(key string) bool {
	if key == "" {
		return false
	}
	_, filler := fillers[key]
	return !filler
}

// Resolver holds the lookup indexes for one base table.
type Resolver struct {
	norm      Keyer
	byKey     map[string]int
	byName    map[string]int
	ambiguous map[string]struct{}
}

// New builds a Resolver over the base table. Records whose normalized
// scientific name collides are recorded as ambiguous and excluded
// from the index. For Japanese names the first record wins; they are
// only a fallback identity.
func New(tbl *record.Table, norm Keyer) *Resolver {
	res := &Resolver{
		norm:      norm,
		byKey:     make(map[string]int, tbl.Len()),
		byName:    make(map[string]int, tbl.Len()),
		ambiguous: make(map[string]struct{}),
	}
	for i := range tbl.Records {
		rec := &tbl.Records[i]
		res.Register(i, rec.ScientificName, rec.JapaneseName)
	}
	return res
}

// Register adds one record's keys to the indexes. The consolidation
// loop calls it for records created mid-run and for records whose
// identity fields changed in a merge, so a source that repeats a
// species does not create duplicate rows. Re-registering a record
// under a key it already holds is a no-op, not a collision.
func (r *Resolver) Register(pos int, sciName, japaneseName string) {
	key := r.norm.Key(sciName)
	if UsableKey(key) {
		if seenPos, seen := r.byKey[key]; seen {
			if seenPos != pos {
				delete(r.byKey, key)
				r.ambiguous[key] = struct{}{}
			}
		} else if _, amb := r.ambiguous[key]; !amb {
			r.byKey[key] = pos
		}
	}

	name := strings.TrimSpace(japaneseName)
	if name != "" {
		if _, seen := r.byName[name]; !seen {
			r.byName[name] = pos
		}
	}
}

// Match finds the base record for an incoming row. The scientific
// name is preferred; the Japanese name is consulted only when the
// scientific name yields no usable key.
func (r *Resolver) Match(sciName, japaneseName string) (int, MatchKind) {
	key := r.norm.Key(sciName)
	if UsableKey(key) {
		if _, amb := r.ambiguous[key]; amb {
			return 0, MatchAmbiguous
		}
		if pos, ok := r.byKey[key]; ok {
			return pos, MatchScientific
		}
		return 0, MatchNone
	}

	name := strings.TrimSpace(japaneseName)
	if name != "" {
		if pos, ok := r.byName[name]; ok {
			return pos, MatchJapanese
		}
	}
	return 0, MatchNone
}

// Key exposes the normalized key of a scientific name, so callers can
// decide whether an unmatched row is eligible to become a new record.
func (r *Resolver) Key(sciName string) string {
	return r.norm.Key(sciName)
}
