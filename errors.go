package binarc

import "errors"

// Sentinel errors reported by archive codecs. Codecs wrap these with
// per-call context; match with errors.Is.
var (
	// ErrTooSmall is returned when a buffer cannot hold the format header
	// or its declared directory table.
	ErrTooSmall = errors.New("binarc: buffer too small")

	// ErrBadMagic is returned when a buffer does not start with the
	// format's magic bytes.
	ErrBadMagic = errors.New("binarc: bad magic")

	// ErrEntryOutOfBounds is returned when a directory record declares data
	// past the end of the archive. The whole open fails; no partial
	// directory is retained.
	ErrEntryOutOfBounds = errors.New("binarc: entry data out of bounds")

	// ErrTooManyEntries is returned when a write would exceed the format's
	// entry-count limit. No output is produced.
	ErrTooManyEntries = errors.New("binarc: too many entries")

	// ErrSourceUnavailable is returned when a lazy load cannot open or read
	// the backing file. The entry stays unloaded; the call may be retried.
	ErrSourceUnavailable = errors.New("binarc: backing source unavailable")

	// ErrUnknownFormat is returned when no registered format matches the
	// given data or file.
	ErrUnknownFormat = errors.New("binarc: unknown archive format")
)
