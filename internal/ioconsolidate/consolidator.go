// Package ioconsolidate implements the Consolidator interface: it
// reads the base table and auxiliary sources, folds the sources in,
// and writes one consolidated artifact.
// This is an impure I/O package; the per-field decisions live in the
// pure pkg/merge, pkg/resolver and pkg/dedupe packages.
package ioconsolidate

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/hpdb/hpdb/internal/iosources"
	"github.com/hpdb/hpdb/pkg/config"
	"github.com/hpdb/hpdb/pkg/dedupe"
	"github.com/hpdb/hpdb/pkg/hpdb"
	"github.com/hpdb/hpdb/pkg/merge"
	"github.com/hpdb/hpdb/pkg/plantname"
	"github.com/hpdb/hpdb/pkg/record"
	"github.com/hpdb/hpdb/pkg/resolver"
	"github.com/hpdb/hpdb/pkg/sciname"
	"github.com/hpdb/hpdb/pkg/sources"
)

type consolidator struct {
	cfg    *config.Config
	norm   resolver.Keyer
	cache  *keyCache
	engine *merge.Engine
}

// New creates a Consolidator for one run. No state is shared between
// runs apart from the optional normalized-key cache file.
func New(cfg *config.Config) hpdb.Consolidator {
	res := &consolidator{cfg: cfg}

	base := sciname.New()
	if cfg.Consolidate.WithCache {
		res.cache = newKeyCache(cachePath(cfg), base)
		res.norm = res.cache
	} else {
		res.norm = base
	}

	res.engine = merge.NewEngine(merge.Policy{
		ScientificName: cfg.Consolidate.SciNameAuthority,
	})
	return res
}

// Consolidate runs the whole pipeline. The base table must be
// readable or the run aborts before any output is written; a missing
// auxiliary source is skipped with a warning.
func (c *consolidator) Consolidate(ctx context.Context) (*hpdb.RunSummary, error) {
	startTime := time.Now()
	summary := &hpdb.RunSummary{}

	if c.cache != nil {
		c.cache.Load()
	}

	tbl, err := c.readBase()
	if err != nil {
		return nil, err
	}
	baseLen := tbl.Len()
	slog.Info("Loaded base table",
		"file", c.cfg.Consolidate.BaseFile,
		"records", baseLen,
	)

	res := resolver.New(tbl, c.norm)

	src := iosources.New(c.cfg)
	sourcesConfig, err := src.Load()
	if err != nil {
		return nil, err
	}
	sourcesToProcess := sourcesConfig.Filter(c.cfg.Consolidate.SourceIDs)
	if len(c.cfg.Consolidate.SourceIDs) > 0 && len(sourcesToProcess) == 0 {
		return nil, NoSourcesError(c.cfg.Consolidate.SourceIDs)
	}

	for i, source := range sourcesToProcess {
		select {
		case <-ctx.Done():
			return nil, CancelledError(ctx.Err())
		default:
		}

		slog.Info("Processing source",
			"index", i+1,
			"total", len(sourcesToProcess),
			"source_id", source.ID,
			"title", source.Title,
		)
		if err := c.processSource(tbl, res, source, summary); err != nil {
			return nil, err
		}
	}

	c.dedupeTable(tbl)

	if err := c.write(tbl); err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Save()
	}

	reportSummary(summary, baseLen, tbl.Len(), time.Since(startTime))
	return summary, nil
}

// Dedupe runs only the host-plant cleanup over the base table.
func (c *consolidator) Dedupe(ctx context.Context) (*hpdb.RunSummary, error) {
	startTime := time.Now()
	summary := &hpdb.RunSummary{}

	tbl, err := c.readBase()
	if err != nil {
		return nil, err
	}
	summary.RowsRead = tbl.Len()

	select {
	case <-ctx.Done():
		return nil, CancelledError(ctx.Err())
	default:
	}

	for i := range tbl.Records {
		before := tbl.Records[i].HostPlants
		after := cleanHostPlants(before)
		if after != before {
			tbl.Records[i].HostPlants = after
			summary.Updated++
		}
	}

	if err := c.write(tbl); err != nil {
		return nil, err
	}

	reportSummary(summary, tbl.Len(), tbl.Len(), time.Since(startTime))
	return summary, nil
}

// processSource folds one auxiliary source into the table. Every row
// either updates an existing record, becomes a new record, or is
// counted as skipped with a log line - rows are never silently
// dropped from accounting.
func (c *consolidator) processSource(
	tbl *record.Table,
	res *resolver.Resolver,
	source sources.SourceConfig,
	summary *hpdb.RunSummary,
) error {
	rows, err := readSource(source)
	if err != nil {
		// Only the base table is fatal; a broken auxiliary source is
		// skipped and the base table passes through unaffected.
		if os.IsNotExist(err) {
			slog.Warn("Source file missing, skipping",
				"source_id", source.ID,
				"path", source.Path,
			)
			gn.Warn("Source <em>%s</em> not found, skipping", source.Path)
		} else {
			slog.Error("Cannot read source, skipping",
				"source_id", source.ID,
				"path", source.Path,
				"error", err,
			)
			gn.Warn("Cannot read source <em>%s</em>, skipping", source.Path)
		}
		summary.SourcesMissing++
		return nil
	}

	bar := newProgressBar(len(rows), source.Title)
	defer bar.Finish()

	var updated, added int
	for _, row := range rows {
		bar.Increment()
		summary.RowsRead++

		row.HostPlants = cleanHostPlants(row.HostPlants)

		if row.NeedsReview {
			summary.NeedsReview++
			slog.Warn("Row needs manual review",
				"source_id", source.ID,
				"line", row.Line,
				"fields", len(row.Raw),
			)
		}

		pos, kind := res.Match(row.ScientificName, row.JapaneseName)
		switch kind {
		case resolver.MatchAmbiguous:
			summary.Skipped++
			slog.Warn("Ambiguous merge key, skipping row",
				"source_id", source.ID,
				"line", row.Line,
				"scientific_name", row.ScientificName,
			)
		case resolver.MatchScientific, resolver.MatchJapanese:
			merged := c.engine.Merge(tbl.Records[pos], row, source.Title)
			// A merge may fill or replace an identity field; index the
			// record under its new keys so later rows carrying them
			// find this record instead of minting a duplicate.
			if merged.ScientificName != tbl.Records[pos].ScientificName ||
				merged.JapaneseName != tbl.Records[pos].JapaneseName {
				res.Register(pos, merged.ScientificName, merged.JapaneseName)
			}
			tbl.Records[pos] = merged
			updated++
			summary.Updated++
		default:
			key := res.Key(row.ScientificName)
			if !resolver.UsableKey(key) && row.JapaneseName == "" {
				summary.Skipped++
				slog.Warn("Row has no usable identity, skipping",
					"source_id", source.ID,
					"line", row.Line,
				)
				continue
			}
			rec := c.engine.NewRecord(row, source.Title)
			pos := tbl.Add(rec)
			res.Register(pos, rec.ScientificName, rec.JapaneseName)
			added++
			summary.Added++
		}
	}

	slog.Info("Source processed",
		"source_id", source.ID,
		"title", source.Title,
		"rows", len(rows),
		"updated", updated,
		"added", added,
	)
	return nil
}

// cleanHostPlants normalizes each entry of an incoming host-plant
// list (family annotations stripped) and deduplicates the result. The
// sentinel and empty values pass through.
func cleanHostPlants(s string) string {
	if s == "" || s == record.Unknown {
		return s
	}
	parts := dedupe.Split(s)
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		part = plantname.Normalize(part)
		if part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return dedupe.List(strings.Join(cleaned, dedupe.Separator))
}

// dedupeTable runs the host-plant deduplicator over every record.
func (c *consolidator) dedupeTable(tbl *record.Table) {
	for i := range tbl.Records {
		tbl.Records[i].HostPlants = dedupe.List(tbl.Records[i].HostPlants)
	}
}

func reportSummary(
	summary *hpdb.RunSummary,
	baseLen, finalLen int,
	elapsed time.Duration,
) {
	slog.Info("Consolidation complete",
		"rows_read", summary.RowsRead,
		"updated", summary.Updated,
		"added", summary.Added,
		"skipped", summary.Skipped,
		"needs_review", summary.NeedsReview,
		"sources_missing", summary.SourcesMissing,
		"records_before", baseLen,
		"records_after", finalLen,
		"duration", gnfmt.TimeString(elapsed.Seconds()),
	)
	gn.Info(`Consolidation complete
Rows read: <em>%s</em>, updated: <em>%s</em>, added: <em>%s</em>
Skipped: %s, needs review: %s
Records: %s -> %s
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(summary.RowsRead)),
		humanize.Comma(int64(summary.Updated)),
		humanize.Comma(int64(summary.Added)),
		humanize.Comma(int64(summary.Skipped)),
		humanize.Comma(int64(summary.NeedsReview)),
		humanize.Comma(int64(baseLen)),
		humanize.Comma(int64(finalLen)),
		gnfmt.TimeString(elapsed.Seconds()),
	)
}

func cachePath(cfg *config.Config) string {
	if cfg.HomeDir == "" {
		return ""
	}
	return filepath.Join(config.CacheDir(cfg.HomeDir), "scinames.gob")
}
