package ioexport

import (
	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/pkg/errcode"
)

func MasterReadError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ExportMasterReadError,
		Msg:  "Cannot read master table <em>%s</em>",
		Vars: []any{path},
		Err:  err,
	}
}

func DBError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ExportDBError,
		Msg:  "Cannot write SQLite database <em>%s</em>",
		Vars: []any{path},
		Err:  err,
	}
}

func MappingError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ExportMappingError,
		Msg:  "Cannot write name mapping <em>%s</em>",
		Vars: []any{path},
		Err:  err,
	}
}
