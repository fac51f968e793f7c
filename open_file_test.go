package binarc

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDetectsFormat(t *testing.T) {
	t.Parallel()

	data, err := buildArchive(t, map[string][]byte{"X": {1, 2}}, []string{"X"}).Write(true)
	require.NoError(t, err)

	a, err := Open(data)
	require.NoError(t, err)
	assert.Equal(t, "chasm_bin", a.Format().Name())

	e := a.Dir().Entry("X")
	require.NotNil(t, e)
	assert.True(t, e.Loaded(), "memory-backed archives keep payloads resident")
	assert.Equal(t, []byte{1, 2}, e.Data())
}

func TestOpenUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Open([]byte("definitely not an archive"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOpenFileGzipWrapped(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{0x42}, 50)
	data, err := buildArchive(t, map[string][]byte{"GZ": payload}, []string{"GZ"}).Write(true)
	require.NoError(t, err)

	var wrapped bytes.Buffer
	zw := gzip.NewWriter(&wrapped)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "test.bin.gz")
	require.NoError(t, os.WriteFile(path, wrapped.Bytes(), 0o644))

	a, err := OpenFile(path)
	require.NoError(t, err)
	assert.Empty(t, a.Path(), "compressed sources cannot serve lazy loads")

	e := a.Dir().Entry("GZ")
	require.NotNil(t, e)
	assert.True(t, e.Loaded())
	assert.Equal(t, payload, e.Data())
}

func TestOpenFileZstdWrapped(t *testing.T) {
	t.Parallel()

	payload := []byte("zstd wrapped entry data")
	data, err := buildArchive(t, map[string][]byte{"ZS": payload}, []string{"ZS"}).Write(true)
	require.NoError(t, err)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	wrapped := enc.EncodeAll(data, nil)
	require.NoError(t, enc.Close())

	path := filepath.Join(t.TempDir(), "test.bin.zst")
	require.NoError(t, os.WriteFile(path, wrapped, 0o644))

	a, err := OpenFile(path)
	require.NoError(t, err)
	assert.Empty(t, a.Path())

	e := a.Dir().Entry("ZS")
	require.NotNil(t, e)
	assert.Equal(t, payload, e.Data())
}

func TestOpenFileMissing(t *testing.T) {
	t.Parallel()

	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.bin"))
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestDetectFile(t *testing.T) {
	t.Parallel()

	path := writeTestFile(t, map[string][]byte{"A": {1}}, []string{"A"})

	f, ok := DetectFile(path)
	require.True(t, ok)
	assert.Equal(t, "chasm_bin", f.Name())

	garbage := filepath.Join(t.TempDir(), "garbage.bin")
	require.NoError(t, os.WriteFile(garbage, []byte("nope"), 0o644))
	_, ok = DetectFile(garbage)
	assert.False(t, ok)
}
