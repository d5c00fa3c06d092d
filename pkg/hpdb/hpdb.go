// Package hpdb defines the interfaces of the consolidation pipeline.
// Implementations live in internal/io* packages; pure logic lives in
// the other pkg packages.
package hpdb

import (
	"context"
)

// RunSummary is the observable outcome of every consolidation run,
// success or partial failure.
type RunSummary struct {
	// RowsRead counts source rows parsed across all auxiliary sources.
	RowsRead int

	// Updated counts base records changed by a merge.
	Updated int

	// Added counts new records created for unmatched rows.
	Added int

	// Skipped counts rows without a usable identity, and rows whose
	// key matched more than one base record.
	Skipped int

	// NeedsReview counts rows retained with a manual-review
	// annotation instead of a trusted merge.
	NeedsReview int

	// SourcesMissing counts configured sources whose file could not
	// be read.
	SourcesMissing int
}

// Consolidator runs the whole pipeline: load base table, fold in
// auxiliary sources, dedupe host-plant lists, write one output
// artifact. A run is atomic from the caller's perspective: on failure
// the previous artifact is left untouched.
type Consolidator interface {
	Consolidate(ctx context.Context) (*RunSummary, error)

	// Dedupe runs only the host-plant list cleanup over the base
	// table, without folding in any sources.
	Dedupe(ctx context.Context) (*RunSummary, error)
}

// SitemapWriter emits sitemap XML with per-record and per-plant
// identifiers from the master artifact. It never mutates source data.
type SitemapWriter interface {
	Write(ctx context.Context, masterPath, outPath, baseURL string) error
}

// Exporter converts the master artifact for downstream collaborators:
// an SQLite database for the browsing front-end, a Japanese-name to
// scientific-name mapping CSV for the file-rename utility.
type Exporter interface {
	ToSQLite(ctx context.Context, masterPath, dbPath string) error
	ToMapping(ctx context.Context, masterPath, outPath string) error
}
