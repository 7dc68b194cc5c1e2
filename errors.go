package lrc

import (
	"github.com/simonhull/lrc/internal/types"
)

// ParseError is an alias to types.ParseError.
// Re-exporting from internal/types to maintain public API.
type ParseError = types.ParseError

// ErrorKind is an alias to types.ErrorKind.
// Re-exporting from internal/types to maintain public API.
type ErrorKind = types.ErrorKind

// Re-export all error kinds.
const (
	KindInvalidTag          = types.KindInvalidTag
	KindInvalidMetadata     = types.KindInvalidMetadata
	KindInvalidTimestamp    = types.KindInvalidTimestamp
	KindMissingBrackets     = types.KindMissingBrackets
	KindMetadataAfterLyrics = types.KindMetadataAfterLyrics
	KindInvalidText         = types.KindInvalidText
)
