package binarc

// State tracks an entry's modification status within an editing session.
type State uint8

const (
	// StateUnmodified means the entry matches the archive it was read from.
	StateUnmodified State = iota

	// StateModified means the entry's name or data changed since open.
	StateModified

	// StateNew means the entry was added during this session.
	StateNew

	// StateDeleted means the entry was removed from its directory but is
	// still referenced, e.g. by an undo history.
	StateDeleted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnmodified:
		return "unmodified"
	case StateModified:
		return "modified"
	case StateNew:
		return "new"
	case StateDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Entry is one named unit of data within an archive.
//
// Size is authoritative even while the payload is unloaded; an entry read
// from a file keeps only name, size, and source offset resident until
// Archive.LoadEntryData fetches its bytes.
type Entry struct {
	name   string
	size   uint32
	data   []byte
	loaded bool
	state  State
	typeID string

	// sourceOffset is the entry's byte offset in the backing archive file.
	// Reassigned on every offset-updating write.
	sourceOffset uint32
}

// NewEntry returns a loaded entry in StateNew holding data. The entry takes
// ownership of data.
func NewEntry(name string, data []byte) *Entry {
	return &Entry{
		name:   name,
		size:   uint32(len(data)),
		data:   data,
		loaded: true,
		state:  StateNew,
	}
}

// Name returns the entry name.
func (e *Entry) Name() string { return e.name }

// Size returns the entry's byte count, valid whether or not the payload is
// loaded.
func (e *Entry) Size() uint32 { return e.size }

// Loaded reports whether the payload is resident.
func (e *Entry) Loaded() bool { return e.loaded }

// Data returns the payload, or nil when unloaded. The slice aliases entry
// state; callers that mutate it must call SetData or mark the entry
// modified themselves.
func (e *Entry) Data() []byte { return e.data }

// State returns the entry's modification state.
func (e *Entry) State() State { return e.state }

// SetState sets the modification state.
func (e *Entry) SetState(s State) { e.state = s }

// Type returns the detected content type ID, or "" before detection.
func (e *Entry) Type() string { return e.typeID }

// SetType records the detected content type ID.
func (e *Entry) SetType(t string) { e.typeID = t }

// SourceOffset returns the entry's byte offset in the backing archive.
func (e *Entry) SourceOffset() uint32 { return e.sourceOffset }

// SetName renames the entry and marks it modified.
func (e *Entry) SetName(name string) {
	if name == e.name {
		return
	}
	e.name = name
	e.markModified()
}

// SetData replaces the payload, updates the size, and marks the entry
// modified. The entry takes ownership of data.
func (e *Entry) SetData(data []byte) {
	e.data = data
	e.size = uint32(len(data))
	e.loaded = true
	e.markModified()
}

// Unload drops the payload, keeping size and source offset so the data can
// be fetched again through the owning archive.
func (e *Entry) Unload() {
	e.data = nil
	e.loaded = false
}

// setLoaded installs a lazily fetched payload without changing the entry's
// modification state.
func (e *Entry) setLoaded(data []byte) {
	e.data = data
	e.loaded = true
}

func (e *Entry) markModified() {
	if e.state == StateUnmodified {
		e.state = StateModified
	}
}
