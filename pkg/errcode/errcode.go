package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Sources errors
	SourcesConfigError

	// Consolidate errors
	ConsolidateBaseReadError
	ConsolidateBaseHeaderError
	ConsolidateBackupError
	ConsolidateOutputError

	// Sitemap errors
	SitemapMasterReadError
	SitemapWriteError

	// Export errors
	ExportMasterReadError
	ExportDBError
	ExportMappingError
)
