package ioconsolidate

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/pkg/errcode"
)

var (
	// ErrEmptyFile means a source file contained no rows at all.
	ErrEmptyFile = errors.New("file contains no rows")

	// ErrNoIdentityColumns means the header row names neither the
	// scientific-name nor the Japanese-name column.
	ErrNoIdentityColumns = errors.New(
		"header has neither 学名 nor 和名 column")
)

// BaseReadError creates an error for when the primary table cannot be
// read. This aborts the run before any output is written.
func BaseReadError(path string, err error) error {
	msg := `Cannot read the base table

<em>File path:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Permission denied

<em>How to fix:</em>
  1. Check the path: <em>ls -l %s</em>
  2. Set <em>consolidate.base_file</em> in config.yaml or use --base`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.ConsolidateBaseReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read base table: %w", err),
	}
}

// BaseHeaderError creates an error for when the primary table's
// header row cannot be interpreted.
func BaseHeaderError(path string, err error) error {
	msg := `Cannot interpret the base table header

<em>File path:</em> %s

<em>How to fix:</em>
  1. The first line must name the columns, including 学名 or 和名
  2. Check the file encoding is UTF-8`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ConsolidateBaseHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read base header: %w", err),
	}
}

// NoSourcesError creates an error for when no matching sources are
// found.
func NoSourcesError(requestedIDs []int) error {
	msg := `No sources found matching requested IDs

<em>Requested IDs:</em> %v

<em>How to fix:</em>
  1. Check available sources: review sources.yaml
  2. Verify source IDs are correct`

	vars := []any{requestedIDs}

	return &gn.Error{
		Code: errcode.SourcesConfigError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"no sources found matching IDs: %v",
			requestedIDs),
	}
}

// BackupError creates an error for when the previous artifact cannot
// be preserved. The run aborts rather than risk the only good copy.
func BackupError(path string, err error) error {
	msg := `Cannot preserve the previous artifact

<em>File path:</em> %s

The run was aborted so the existing consolidated table stays intact.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ConsolidateBackupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot back up previous artifact: %w", err),
	}
}

// OutputError creates an error for when the final artifact cannot be
// written. The previous artifact is never clobbered on failure.
func OutputError(path string, err error) error {
	msg := `Cannot write the consolidated table

<em>File path:</em> %s

<em>Possible causes:</em>
  - Permission denied
  - Disk full

The previous artifact, if any, was left untouched.`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ConsolidateOutputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write output: %w", err),
	}
}

// CancelledError creates an error for when the run is cancelled.
// Partial output is never committed.
func CancelledError(err error) error {
	msg := "Consolidation run was cancelled"

	return &gn.Error{
		Code: errcode.UnknownError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("consolidation cancelled: %w", err),
	}
}
