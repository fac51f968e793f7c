package binarc

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/singleflight"
)

// Archive is a container of named entries backed by a single serialized
// blob or file.
//
// An archive assumes exclusive ownership by one logical editing session;
// concurrent mutation requires external synchronization. LoadEntryData is
// the exception: concurrent loads of the same entry are deduplicated.
type Archive struct {
	format Format
	dir    Directory

	// path is the backing file for lazy payload loads. Empty for archives
	// opened from memory or from a compressed wrapper, in which case
	// payloads stay resident after open.
	path string

	modified   bool
	muteCount  int
	keepLoaded bool

	detector TypeDetector
	progress ProgressFunc
	logger   *slog.Logger
	onChange func(event string)

	loadGroup singleflight.Group // zero value is valid
}

// New returns an empty archive using the given format codec.
func New(f Format, opts ...Option) *Archive {
	a := &Archive{format: f, detector: DefaultDetector}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Format returns the archive's codec.
func (a *Archive) Format() Format { return a.format }

// Dir returns the archive's directory.
func (a *Archive) Dir() *Directory { return &a.dir }

// Path returns the backing file path, or "" when the archive has no
// lazily loadable source.
func (a *Archive) Path() string { return a.path }

// Modified reports whether the archive has unsaved changes.
func (a *Archive) Modified() bool { return a.modified }

// SetModified sets the unsaved-changes flag.
func (a *Archive) SetModified(modified bool) { a.modified = modified }

// Open parses data into the archive's directory using its codec. On
// failure the directory is left untouched.
func (a *Archive) Open(data []byte) error {
	return a.format.Open(a, data)
}

// Write serializes the archive to a new byte blob. With updateOffsets,
// entries are marked unmodified and their source offsets reassigned to the
// output layout.
func (a *Archive) Write(updateOffsets bool) ([]byte, error) {
	return a.format.Write(a, updateOffsets)
}

// LoadEntryData ensures e's payload is resident.
//
// Zero-size and already-loaded entries succeed immediately without touching
// the backing file. Otherwise the payload is read from the backing file at
// the entry's source offset; on failure the entry stays unloaded and the
// call may be retried. Concurrent loads of the same entry are deduplicated.
func (a *Archive) LoadEntryData(e *Entry) error {
	if e.Size() == 0 || e.Loaded() {
		e.loaded = true
		return nil
	}
	// Key on entry identity: duplicate names are legal and must not alias.
	key := fmt.Sprintf("%p", e)
	_, err, _ := a.loadGroup.Do(key, func() (any, error) {
		return nil, a.format.LoadEntryData(a, e)
	})
	return err
}

// AddEntry appends a new entry to the directory, marking it new and the
// archive modified.
func (a *Archive) AddEntry(e *Entry) {
	e.SetState(StateNew)
	a.dir.Add(e)
	a.markChanged("entry_added")
}

// RemoveEntry removes e from the directory and reports whether it was
// present. The entry is marked deleted; callers holding a reference may
// still re-add it.
func (a *Archive) RemoveEntry(e *Entry) bool {
	if !a.dir.Remove(e) {
		return false
	}
	e.SetState(StateDeleted)
	a.markChanged("entry_removed")
	return true
}

// RenameEntry renames e in place, marking it and the archive modified.
func (a *Archive) RenameEntry(e *Entry, name string) {
	e.SetName(name)
	a.markChanged("entry_renamed")
}

func (a *Archive) markChanged(event string) {
	a.modified = true
	a.notify(event)
}

// mute suppresses change notifications until the matching unmute. Calls
// nest.
func (a *Archive) mute()   { a.muteCount++ }
func (a *Archive) unmute() { a.muteCount-- }

func (a *Archive) notify(event string) {
	if a.muteCount > 0 || a.onChange == nil {
		return
	}
	a.onChange(event)
}

// log returns the logger, falling back to a discard logger if nil.
func (a *Archive) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.logger
}

// report sends a progress event if a callback is configured.
func (a *Archive) report(stage ProgressStage, name string, done, total int) {
	if a.progress == nil {
		return
	}
	a.progress(ProgressEvent{Stage: stage, Name: name, Done: done, Total: total})
}

// detect runs the archive's type detector on e's loaded payload.
func (a *Archive) detect(e *Entry) {
	if a.detector == nil {
		return
	}
	e.SetType(a.detector.Detect(e.Name(), e.Data()))
}
