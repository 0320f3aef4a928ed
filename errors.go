// Package pngmeta reads and writes the chunk structure of PNG files without
// touching the image data. It parses a file into an ordered chunk list,
// provides codecs for the textual metadata chunks (tEXt, zTXt, iTXt) and the
// physical resolution chunk (pHYs), and offers list operations that insert,
// replace, and remove chunks while preserving the ordering rules the format
// requires. Every other chunk — IDAT included — passes through byte-for-byte.
//
// The whole file is held in memory; Parse and List.Encode are pure
// transforms over byte slices, so file and network I/O stay with the caller.
package pngmeta

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// distinguish structural damage (ErrInvalidHeader, ErrTruncated, ErrChecksum,
// ErrMissingTerminator) from payload-level problems (ErrInvalidKeyword,
// ErrMalformedStream) and misuse (ErrInvalidOperation).
var (
	ErrInvalidHeader     = errors.New("invalid png signature")
	ErrTruncated         = errors.New("truncated chunk data")
	ErrChecksum          = errors.New("chunk checksum mismatch")
	ErrMissingTerminator = errors.New("missing IEND chunk")
	ErrInvalidKeyword    = errors.New("invalid keyword")
	ErrInvalidCharset    = errors.New("text contains invalid characters")
	ErrMissingSeparator  = errors.New("missing null separator")
	ErrUnsupportedMethod = errors.New("unsupported compression method")
	ErrMalformedStream   = errors.New("malformed deflate stream")
	ErrInvalidLength     = errors.New("invalid payload length")
	ErrInvalidOperation  = errors.New("operation not valid for chunk type")
)
