package membuf

import (
	"encoding/binary"
	"io"
)

// Cursor is a sequential view over a Buffer. Reads advance the position and
// stop at the buffer end; writes advance the position and grow the buffer
// as needed.
//
// Multiple cursors over one buffer are independent, but a write through any
// of them may reallocate the backing storage.
type Cursor struct {
	buf *Buffer
	pos int
}

// Cursor returns a new cursor positioned at the start of the buffer.
func (b *Buffer) Cursor() *Cursor {
	return &Cursor{buf: b}
}

// Pos returns the current position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek sets the position. Seeking past the current buffer end is allowed;
// a subsequent write grows the buffer, a subsequent read returns io.EOF.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	c.pos = pos
}

// Read implements io.Reader over the remaining buffer bytes.
func (c *Cursor) Read(p []byte) (int, error) {
	if c.pos >= c.buf.Len() {
		return 0, io.EOF
	}
	n := copy(p, c.buf.data[c.pos:])
	c.pos += n
	return n, nil
}

// Write implements io.Writer, growing the buffer when writing past its end.
func (c *Cursor) Write(p []byte) (int, error) {
	c.buf.grow(c.pos + len(p))
	copy(c.buf.data[c.pos:], p)
	c.pos += len(p)
	return len(p), nil
}

// Uint16 reads a little-endian uint16 and advances the position.
func (c *Cursor) Uint16() (uint16, error) {
	var raw [2]byte
	if _, err := io.ReadFull(c, raw[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(raw[:]), nil
}

// Uint32 reads a little-endian uint32 and advances the position.
func (c *Cursor) Uint32() (uint32, error) {
	var raw [4]byte
	if _, err := io.ReadFull(c, raw[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw[:]), nil
}

// PutUint16 writes a little-endian uint16 and advances the position.
func (c *Cursor) PutUint16(v uint16) {
	var raw [2]byte
	binary.LittleEndian.PutUint16(raw[:], v)
	c.Write(raw[:]) //nolint:errcheck // cursor writes cannot fail
}

// PutUint32 writes a little-endian uint32 and advances the position.
func (c *Cursor) PutUint32(v uint32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], v)
	c.Write(raw[:]) //nolint:errcheck // cursor writes cannot fail
}
