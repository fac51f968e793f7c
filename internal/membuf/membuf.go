// Package membuf provides an in-memory resizable byte store for building
// and parsing binary container formats.
//
// Buffer exposes a pure offset-addressed read/write API; Cursor wraps a
// Buffer with a seek position for sequential producers and consumers.
// All multi-byte integers are little-endian on the wire.
package membuf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an offset-addressed access falls outside
// the buffer bounds.
var ErrOutOfRange = errors.New("membuf: access out of range")

// Buffer owns a contiguous byte sequence. The zero value is an empty buffer
// ready for use.
type Buffer struct {
	data []byte
}

// New returns a zero-filled buffer of length n.
func New(n int) *Buffer {
	return &Buffer{data: make([]byte, n)}
}

// From returns a buffer backed by data. The buffer takes ownership; callers
// must not modify data afterwards.
func From(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Len returns the current buffer length.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the backing slice. The slice aliases the buffer and is
// invalidated by Resize.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Resize sets the buffer length to n. When preserve is true existing bytes
// up to min(n, Len()) are kept; otherwise the buffer contents are undefined
// beyond being zeroed.
func (b *Buffer) Resize(n int, preserve bool) {
	next := make([]byte, n)
	if preserve {
		copy(next, b.data)
	}
	b.data = next
}

// Fill sets every byte of the buffer to v.
func (b *Buffer) Fill(v byte) {
	for i := range b.data {
		b.data[i] = v
	}
}

// ReadAt copies len(p) bytes starting at off into p without touching any
// cursor state.
func (b *Buffer) ReadAt(p []byte, off int) error {
	if err := b.check(off, len(p)); err != nil {
		return err
	}
	copy(p, b.data[off:])
	return nil
}

// WriteAt copies p into the buffer at off. Unlike Cursor.Write it never
// grows the buffer.
func (b *Buffer) WriteAt(p []byte, off int) error {
	if err := b.check(off, len(p)); err != nil {
		return err
	}
	copy(b.data[off:], p)
	return nil
}

// Slice returns a copy of n bytes starting at off, independent of any
// cursor state.
func (b *Buffer) Slice(off, n int) ([]byte, error) {
	if err := b.check(off, n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b.data[off:])
	return out, nil
}

// Uint16 reads a little-endian uint16 at off.
func (b *Buffer) Uint16(off int) (uint16, error) {
	if err := b.check(off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.data[off:]), nil
}

// Uint32 reads a little-endian uint32 at off.
func (b *Buffer) Uint32(off int) (uint32, error) {
	if err := b.check(off, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.data[off:]), nil
}

// PutUint16 writes a little-endian uint16 at off.
func (b *Buffer) PutUint16(off int, v uint16) error {
	if err := b.check(off, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.data[off:], v)
	return nil
}

// PutUint32 writes a little-endian uint32 at off.
func (b *Buffer) PutUint32(off int, v uint32) error {
	if err := b.check(off, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.data[off:], v)
	return nil
}

func (b *Buffer) check(off, n int) error {
	if off < 0 || n < 0 || off+n > len(b.data) {
		return fmt.Errorf("%w: [%d,%d) of %d", ErrOutOfRange, off, off+n, len(b.data))
	}
	return nil
}

// grow extends the buffer to at least n bytes, preserving contents.
func (b *Buffer) grow(n int) {
	if n <= len(b.data) {
		return
	}
	if n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}
	next := make([]byte, n, max(n, 2*cap(b.data)))
	copy(next, b.data)
	b.data = next
}
