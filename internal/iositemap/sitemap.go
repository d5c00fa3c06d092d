// Package iositemap emits sitemap XML for the browsing front-end from
// the consolidated master table. It reads the artifact read-only and
// never mutates source data.
package iositemap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gnames/gnuuid"
	"github.com/hpdb/hpdb/pkg/dedupe"
	"github.com/hpdb/hpdb/pkg/hpdb"
	"github.com/hpdb/hpdb/pkg/plantname"
	"github.com/hpdb/hpdb/pkg/record"
	"github.com/hpdb/hpdb/pkg/tolerantcsv"
)

type sitemap struct{}

// New creates a SitemapWriter.
func New() hpdb.SitemapWriter {
	return &sitemap{}
}

// Write reads the master table and writes sitemap XML with one URL
// per species record and one per distinct host plant. Identifiers are
// UUIDs derived from the display name, so they stay stable across
// runs as long as the name does.
func (s *sitemap) Write(
	ctx context.Context,
	masterPath, outPath, baseURL string,
) error {
	data, err := os.ReadFile(masterPath)
	if err != nil {
		return MasterReadError(masterPath, err)
	}

	rows := tolerantcsv.New().Parse(string(data))
	if len(rows) == 0 {
		return MasterReadError(masterPath, fmt.Errorf("file contains no rows"))
	}
	colIdx := record.NewColumnIndex(rows[0].Fields)

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	lastMod := time.Now().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeURL(&b, baseURL+"/", lastMod, "weekly", "1.0")

	plantSeen := make(map[string]struct{})
	var plants []string

	speciesCount := 0
	for _, row := range rows[1:] {
		rec := colIdx.FromFields(row.Fields)

		name := rec.JapaneseName
		if name == "" {
			name = rec.ScientificName
		}
		if name == "" {
			continue
		}
		speciesCount++
		loc := fmt.Sprintf("%s/#/species/%s", baseURL, gnuuid.New(name).String())
		writeURL(&b, loc, lastMod, "monthly", "0.8")

		if rec.HostPlants == "" || rec.HostPlants == record.Unknown {
			continue
		}
		for _, plant := range dedupe.Split(rec.HostPlants) {
			plant = plantname.Normalize(plant)
			if plant == "" {
				continue
			}
			if _, ok := plantSeen[plant]; ok {
				continue
			}
			plantSeen[plant] = struct{}{}
			plants = append(plants, plant)
		}
	}

	for _, plant := range plants {
		loc := fmt.Sprintf("%s/#/plant/%s", baseURL, gnuuid.New(plant).String())
		writeURL(&b, loc, lastMod, "monthly", "0.6")
	}

	b.WriteString("</urlset>\n")

	if err = os.WriteFile(outPath, []byte(b.String()), 0644); err != nil {
		return WriteError(outPath, err)
	}
	slog.Info("Sitemap written",
		"file", outPath,
		"species", speciesCount,
		"plants", len(plants),
	)
	return nil
}

func writeURL(b *strings.Builder, loc, lastMod, changeFreq, priority string) {
	fmt.Fprintf(b, `  <url>
    <loc>%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%s</priority>
  </url>
`, xmlEscape(loc), lastMod, changeFreq, priority)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
