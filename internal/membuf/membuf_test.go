package membuf

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferOffsetAccess(t *testing.T) {
	t.Parallel()

	b := New(8)
	require.NoError(t, b.WriteAt([]byte{1, 2, 3}, 2))

	got := make([]byte, 3)
	require.NoError(t, b.ReadAt(got, 2))
	assert.Equal(t, []byte{1, 2, 3}, got)

	require.ErrorIs(t, b.ReadAt(got, 6), ErrOutOfRange)
	require.ErrorIs(t, b.WriteAt(got, 7), ErrOutOfRange)
	require.ErrorIs(t, b.ReadAt(got, -1), ErrOutOfRange)
}

func TestBufferIntegers(t *testing.T) {
	t.Parallel()

	b := New(6)
	require.NoError(t, b.PutUint16(0, 0x1234))
	require.NoError(t, b.PutUint32(2, 0xDEADBEEF))

	// Little-endian on the wire.
	assert.Equal(t, []byte{0x34, 0x12, 0xEF, 0xBE, 0xAD, 0xDE}, b.Bytes())

	v16, err := b.Uint16(0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), v16)

	v32, err := b.Uint32(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v32)

	_, err = b.Uint32(3)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestBufferResizeAndFill(t *testing.T) {
	t.Parallel()

	b := From([]byte{1, 2, 3})
	b.Resize(5, true)
	assert.Equal(t, []byte{1, 2, 3, 0, 0}, b.Bytes())

	b.Resize(2, true)
	assert.Equal(t, []byte{1, 2}, b.Bytes())

	b.Resize(4, false)
	assert.Equal(t, []byte{0, 0, 0, 0}, b.Bytes())

	b.Fill(0xAA)
	assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA}, b.Bytes())
}

func TestBufferSlice(t *testing.T) {
	t.Parallel()

	b := From([]byte{1, 2, 3, 4})
	got, err := b.Slice(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, got)

	// The slice is a copy, independent of the buffer.
	got[0] = 99
	fresh, err := b.Slice(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, fresh)

	_, err = b.Slice(3, 2)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestCursorReadWrite(t *testing.T) {
	t.Parallel()

	b := New(0)
	c := b.Cursor()

	n, err := c.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, b.Len(), "writes grow the buffer")
	assert.Equal(t, 3, c.Pos())

	c.Seek(1)
	got := make([]byte, 2)
	_, err = io.ReadFull(c, got)
	require.NoError(t, err)
	assert.Equal(t, []byte("bc"), got)

	_, err = c.Read(got)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCursorWritePastEnd(t *testing.T) {
	t.Parallel()

	b := New(2)
	c := b.Cursor()
	c.Seek(4)
	_, err := c.Write([]byte{7})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 7}, b.Bytes())
}

func TestCursorIntegers(t *testing.T) {
	t.Parallel()

	b := New(0)
	w := b.Cursor()
	w.PutUint16(0x0102)
	w.PutUint32(0x03040506)

	r := b.Cursor()
	v16, err := r.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)

	v32, err := r.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x03040506), v32)

	_, err = r.Uint16()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCursorShortRead(t *testing.T) {
	t.Parallel()

	b := From([]byte{1, 2, 3})
	c := b.Cursor()
	c.Seek(2)
	_, err := c.Uint32()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
