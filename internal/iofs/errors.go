package iofs

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/pkg/errcode"
)

// CreateDirError creates an error for when a required directory
// cannot be created.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

<em>Possible causes:</em>
  - Permission denied
  - Read-only file system

<em>How to fix:</em>
  1. Check permissions of the parent directory
  2. Verify the file system is writable`

	vars := []any{dir}

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create dir: %w", err),
	}
}

// CopyFileError creates an error for when a file cannot be copied or
// written.
func CopyFileError(path string, err error) error {
	msg := `Cannot write file <em>%s</em>

<em>Possible causes:</em>
  - Permission denied
  - Disk full

<em>How to fix:</em>
  1. Check permissions: <em>ls -l %s</em>
  2. Check available disk space`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write file: %w", err),
	}
}

// ReadFileError creates an error for when a file cannot be read.
func ReadFileError(path string, err error) error {
	msg := `Cannot read file <em>%s</em>

<em>Possible causes:</em>
  - File does not exist
  - Permission denied
  - Invalid format

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Check file permissions`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.ReadFileError,
		Vars: vars,
		Msg:  msg,
		Err:  fmt.Errorf("cannot read file: %w", err),
	}
}
