package binarc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryOrderAndLookup(t *testing.T) {
	t.Parallel()

	var d Directory
	a := NewEntry("A", nil)
	b := NewEntry("B", []byte{1})
	d.Add(a)
	d.Add(b)

	require.Equal(t, 2, d.Len())
	assert.Same(t, a, d.EntryAt(0))
	assert.Same(t, b, d.EntryAt(1))
	assert.Nil(t, d.EntryAt(2))
	assert.Nil(t, d.EntryAt(-1))
	assert.Same(t, b, d.Entry("B"))
	assert.Nil(t, d.Entry("C"))
}

func TestDirectoryInsertAt(t *testing.T) {
	t.Parallel()

	var d Directory
	d.Add(NewEntry("A", nil))
	d.Add(NewEntry("C", nil))
	d.InsertAt(1, NewEntry("B", nil))

	names := make([]string, 0, d.Len())
	for _, e := range d.Entries() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)

	// Out-of-range indices clamp to the ends.
	d.InsertAt(-5, NewEntry("FIRST", nil))
	d.InsertAt(99, NewEntry("LAST", nil))
	assert.Equal(t, "FIRST", d.EntryAt(0).Name())
	assert.Equal(t, "LAST", d.EntryAt(d.Len()-1).Name())
}

func TestDirectoryRemove(t *testing.T) {
	t.Parallel()

	var d Directory
	e := NewEntry("GONE", nil)
	d.Add(e)
	d.Add(NewEntry("KEPT", nil))

	assert.True(t, d.Remove(e))
	assert.False(t, d.Remove(e))
	require.Equal(t, 1, d.Len())
	assert.Equal(t, "KEPT", d.EntryAt(0).Name())
}

func TestDirectoryDuplicateNames(t *testing.T) {
	t.Parallel()

	var d Directory
	first := NewEntry("DUP", []byte{1})
	second := NewEntry("DUP", []byte{2})
	d.Add(first)
	d.Add(second)

	assert.Same(t, first, d.Entry("DUP"), "lookup returns the first match")
	assert.Equal(t, 2, d.Len())
}

func TestDirectoryEntriesIsACopy(t *testing.T) {
	t.Parallel()

	var d Directory
	d.Add(NewEntry("A", nil))

	entries := d.Entries()
	entries[0] = nil
	assert.NotNil(t, d.EntryAt(0), "mutating the returned slice must not affect the directory")
}

func TestEntryStateTransitions(t *testing.T) {
	t.Parallel()

	e := NewEntry("E", []byte{1, 2})
	assert.Equal(t, StateNew, e.State())
	assert.Equal(t, uint32(2), e.Size())

	e.SetState(StateUnmodified)
	e.SetName("E2")
	assert.Equal(t, StateModified, e.State())

	e.SetState(StateUnmodified)
	e.SetData([]byte{1, 2, 3})
	assert.Equal(t, StateModified, e.State())
	assert.Equal(t, uint32(3), e.Size())

	e.Unload()
	assert.False(t, e.Loaded())
	assert.Nil(t, e.Data())
	assert.Equal(t, uint32(3), e.Size(), "size survives unload")
}
