package binarc

// ProgressEvent represents a progress update during open and write
// operations.
type ProgressEvent struct {
	// Stage identifies the current phase of the operation.
	Stage ProgressStage

	// Name is the entry currently being processed, if applicable.
	Name string

	// Done is the number of entries completed in the current stage.
	Done int

	// Total is the total number of entries for the current stage.
	// Zero indicates the total is unknown.
	Total int
}

// ProgressStage identifies the current phase of an operation.
type ProgressStage uint8

// Progress stages for open and write operations.
const (
	// StageReadingDirectory indicates the directory table is being parsed.
	StageReadingDirectory ProgressStage = iota

	// StageLoadingEntries indicates entry payloads are being read.
	StageLoadingEntries

	// StageDetectingTypes indicates entry content types are being detected.
	StageDetectingTypes

	// StageWriting indicates the archive is being serialized.
	StageWriting
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageReadingDirectory:
		return "reading directory"
	case StageLoadingEntries:
		return "loading entries"
	case StageDetectingTypes:
		return "detecting types"
	case StageWriting:
		return "writing"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during operations.
type ProgressFunc func(ProgressEvent)
