// Package ioexport converts the consolidated master table into
// downstream formats: an SQLite database for applications and a flat
// Japanese-to-scientific name mapping CSV.
package ioexport

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"sort"

	_ "modernc.org/sqlite"

	"github.com/hpdb/hpdb/pkg/dedupe"
	"github.com/hpdb/hpdb/pkg/hpdb"
	"github.com/hpdb/hpdb/pkg/record"
	"github.com/hpdb/hpdb/pkg/tolerantcsv"
)

type exporter struct{}

// New creates an Exporter.
func New() hpdb.Exporter {
	return &exporter{}
}

const schema = `
CREATE TABLE IF NOT EXISTS species (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	japanese_name TEXT NOT NULL,
	scientific_name TEXT NOT NULL,
	host_plant_notes TEXT NOT NULL DEFAULT '',
	emergence_time TEXT NOT NULL DEFAULT '',
	source TEXT NOT NULL DEFAULT '',
	remarks TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS host_plants (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	species_id INTEGER NOT NULL REFERENCES species(id),
	name TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_species_japanese_name
	ON species(japanese_name);
CREATE INDEX IF NOT EXISTS idx_species_scientific_name
	ON species(scientific_name);
CREATE INDEX IF NOT EXISTS idx_host_plants_name
	ON host_plants(name);
`

// ToSQLite writes the master table into an SQLite database with a
// species table and a normalized host_plants table. An existing
// database file is replaced.
func (e *exporter) ToSQLite(
	ctx context.Context,
	masterPath, dbPath string,
) error {
	recs, err := readMaster(masterPath)
	if err != nil {
		return err
	}

	if err = os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return DBError(dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return DBError(dbPath, err)
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return DBError(dbPath, err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		return DBError(dbPath, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return DBError(dbPath, err)
	}
	defer tx.Rollback()

	speciesStmt, err := tx.PrepareContext(ctx, `
INSERT INTO species
	(japanese_name, scientific_name, host_plant_notes,
	 emergence_time, source, remarks)
VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return DBError(dbPath, err)
	}
	defer speciesStmt.Close()

	plantStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO host_plants (species_id, name) VALUES (?, ?)")
	if err != nil {
		return DBError(dbPath, err)
	}
	defer plantStmt.Close()

	var plantCount int
	for _, rec := range recs {
		res, err := speciesStmt.ExecContext(ctx,
			rec.JapaneseName, rec.ScientificName, rec.HostPlantNotes,
			rec.EmergenceTime, rec.Source, rec.Remarks,
		)
		if err != nil {
			return DBError(dbPath, err)
		}
		speciesID, err := res.LastInsertId()
		if err != nil {
			return DBError(dbPath, err)
		}
		if rec.HostPlants == "" || rec.HostPlants == record.Unknown {
			continue
		}
		for _, plant := range dedupe.Split(rec.HostPlants) {
			if _, err = plantStmt.ExecContext(ctx, speciesID, plant); err != nil {
				return DBError(dbPath, err)
			}
			plantCount++
		}
	}

	if err = tx.Commit(); err != nil {
		return DBError(dbPath, err)
	}
	slog.Info("SQLite export finished",
		"file", dbPath,
		"species", len(recs),
		"hostPlants", plantCount,
	)
	return nil
}

// ToMapping writes a two-column CSV mapping Japanese names to
// scientific names. Records missing either name are skipped, and
// duplicate Japanese names keep their first scientific name.
func (e *exporter) ToMapping(
	ctx context.Context,
	masterPath, outPath string,
) error {
	recs, err := readMaster(masterPath)
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	mapping := make(map[string]string)
	var names []string
	for _, rec := range recs {
		if rec.JapaneseName == "" || rec.ScientificName == "" {
			continue
		}
		if _, ok := mapping[rec.JapaneseName]; ok {
			continue
		}
		mapping[rec.JapaneseName] = rec.ScientificName
		names = append(names, rec.JapaneseName)
	}
	sort.Strings(names)

	f, err := os.Create(outPath)
	if err != nil {
		return MappingError(outPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write([]string{record.ColJapaneseName, record.ColScientificName}); err != nil {
		return MappingError(outPath, err)
	}
	for _, name := range names {
		if err = w.Write([]string{name, mapping[name]}); err != nil {
			return MappingError(outPath, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return MappingError(outPath, err)
	}

	slog.Info("Name mapping written", "file", outPath, "names", len(names))
	return nil
}

func readMaster(path string) ([]record.SpeciesRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, MasterReadError(path, err)
	}
	rows := tolerantcsv.New().Parse(string(data))
	if len(rows) == 0 {
		return nil, MasterReadError(path, fmt.Errorf("file contains no rows"))
	}
	colIdx := record.NewColumnIndex(rows[0].Fields)
	res := make([]record.SpeciesRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		res = append(res, colIdx.FromFields(row.Fields))
	}
	return res, nil
}
