package binarc

// Directory is an ordered container of entries. Insertion order is the
// serialization order. Duplicate names are legal; name lookups return the
// first match.
//
// Directory is a plain container: mutation through it does not flip entry
// states or archive dirty flags. Editing sessions should go through the
// Archive mutators instead.
type Directory struct {
	entries []*Entry
}

// Len returns the number of entries.
func (d *Directory) Len() int { return len(d.entries) }

// Add appends an entry.
func (d *Directory) Add(e *Entry) {
	d.entries = append(d.entries, e)
}

// InsertAt inserts an entry at index i, shifting later entries. Indices
// outside [0, Len()] clamp to the nearest end.
func (d *Directory) InsertAt(i int, e *Entry) {
	if i < 0 {
		i = 0
	}
	if i > len(d.entries) {
		i = len(d.entries)
	}
	d.entries = append(d.entries, nil)
	copy(d.entries[i+1:], d.entries[i:])
	d.entries[i] = e
}

// Remove removes the first occurrence of e and reports whether it was
// present.
func (d *Directory) Remove(e *Entry) bool {
	for i, cur := range d.entries {
		if cur == e {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return true
		}
	}
	return false
}

// EntryAt returns the entry at index i, or nil when out of range.
func (d *Directory) EntryAt(i int) *Entry {
	if i < 0 || i >= len(d.entries) {
		return nil
	}
	return d.entries[i]
}

// Entry returns the first entry with the given name, or nil.
func (d *Directory) Entry(name string) *Entry {
	for _, e := range d.entries {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Entries returns the entries in order. The returned slice is a copy; the
// entries themselves are shared.
func (d *Directory) Entries() []*Entry {
	out := make([]*Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// reset replaces the directory contents wholesale. Used by codecs to commit
// a fully validated directory in one step.
func (d *Directory) reset(entries []*Entry) {
	d.entries = entries
}
