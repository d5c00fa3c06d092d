package iositemap

import (
	"github.com/gnames/gn"
	"github.com/hpdb/hpdb/pkg/errcode"
)

func MasterReadError(path string, err error) error {
	return &gn.Error{
		Code: errcode.SitemapMasterReadError,
		Msg:  "Cannot read master table <em>%s</em>",
		Vars: []any{path},
		Err:  err,
	}
}

func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.SitemapWriteError,
		Msg:  "Cannot write sitemap <em>%s</em>",
		Vars: []any{path},
		Err:  err,
	}
}
