package ioconsolidate

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hpdb/hpdb/internal/iofs"
	"github.com/hpdb/hpdb/pkg/record"
)

// write serializes the table. The artifact is written to a temporary
// file in the target directory and renamed into place only on full
// success, so a crash mid-run leaves the previous artifact untouched.
// Before the rename, the previous version is preserved as a .bak copy.
func (c *consolidator) write(tbl *record.Table) error {
	outPath := c.cfg.Consolidate.OutputFile
	if outPath == "" {
		outPath = c.cfg.Consolidate.BaseFile
	}

	tmp, err := os.CreateTemp(filepath.Dir(outPath), ".hpdb-*.csv")
	if err != nil {
		return OutputError(outPath, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	if err = w.Write(record.Header()); err != nil {
		tmp.Close()
		return OutputError(outPath, err)
	}
	for i := range tbl.Records {
		if err = w.Write(tbl.Records[i].Row()); err != nil {
			tmp.Close()
			return OutputError(outPath, err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		tmp.Close()
		return OutputError(outPath, err)
	}
	if err = tmp.Close(); err != nil {
		return OutputError(outPath, err)
	}
	// CreateTemp makes the file 0600; the artifact is world-readable
	// like its inputs.
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return OutputError(outPath, err)
	}

	// Keep the previous artifact recoverable.
	if _, err = os.Stat(outPath); err == nil {
		bakPath := outPath + ".bak"
		if err = iofs.CopyFile(outPath, bakPath); err != nil {
			return BackupError(outPath, err)
		}
		slog.Info("Previous artifact preserved", "backup", bakPath)
	}

	if err = os.Rename(tmpPath, outPath); err != nil {
		return OutputError(outPath, err)
	}
	slog.Info("Consolidated table written",
		"file", outPath,
		"records", tbl.Len(),
	)
	return nil
}
