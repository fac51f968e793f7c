package binarc

import "sync"

// Format is an archive container codec. Implementations parse a byte blob
// into an archive's directory, serialize the directory back to a valid
// container, fetch single entry payloads from the backing file, and answer
// cheap structural probes used for format dispatch.
type Format interface {
	// Name returns a short format identifier, e.g. "chasm_bin".
	Name() string

	// Open parses data into the archive's directory. On failure the
	// archive's directory is left untouched.
	Open(a *Archive, data []byte) error

	// Write serializes the archive. With updateOffsets, entries are marked
	// unmodified and their source offsets reassigned to match the output
	// layout; without it, stored offsets are written as-is and are the
	// caller's responsibility.
	Write(a *Archive, updateOffsets bool) ([]byte, error)

	// LoadEntryData reads one entry's payload from the archive's backing
	// file.
	LoadEntryData(a *Archive, e *Entry) error

	// Matches reports whether data is plausibly this format.
	Matches(data []byte) bool

	// MatchesFile reports whether the file at path is plausibly this
	// format without reading it fully.
	MatchesFile(path string) bool
}

var (
	formatsMu sync.RWMutex
	formats   []Format
)

// RegisterFormat adds a codec to the dispatch table used by DetectFormat.
// Formats are probed in registration order.
func RegisterFormat(f Format) {
	formatsMu.Lock()
	defer formatsMu.Unlock()
	formats = append(formats, f)
}

// DetectFormat returns the first registered format whose structural probe
// accepts data.
func DetectFormat(data []byte) (Format, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	for _, f := range formats {
		if f.Matches(data) {
			return f, true
		}
	}
	return nil, false
}

// DetectFile returns the first registered format whose structural probe
// accepts the file at path.
func DetectFile(path string) (Format, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	for _, f := range formats {
		if f.MatchesFile(path) {
			return f, true
		}
	}
	return nil, false
}
