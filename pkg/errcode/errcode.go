package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError

	// Logging errors
	CreateLogFileError

	// Store errors
	StoreOpenError
	StoreNotConnectedError
	StoreQueryError

	// Migration errors
	MigrationGapError
	MigrationDuplicateError
	MigrationFailedError
	MigrationVersionError

	// Import errors
	ImportFileError
	ImportHeaderError
	ImportKindError
	ImportWriteError
	ImportCancelledError

	// Status errors
	StatusQueryError

	// Build errors
	BuildQueryError
	BuildTemplateError
	BuildOutputError
)
