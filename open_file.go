package binarc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Open detects the format of an in-memory blob and parses it into a new
// archive. Archives opened from memory have no backing file, so payloads
// stay resident after open.
func Open(data []byte, opts ...Option) (*Archive, error) {
	format, ok := DetectFormat(data)
	if !ok {
		return nil, fmt.Errorf("%w: no registered format matches", ErrUnknownFormat)
	}
	a := New(format, opts...)
	if err := a.Open(data); err != nil {
		return nil, err
	}
	return a, nil
}

// OpenFile opens the archive file at path.
//
// gzip- and zstd-wrapped archives are unwrapped transparently before format
// dispatch. Unwrapped archives cannot serve byte-range lazy loads, so their
// payloads stay resident; plain files record the path and keep only entry
// metadata in memory until LoadEntryData.
func OpenFile(path string, opts ...Option) (*Archive, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	data, compressed, err := unwrap(raw)
	if err != nil {
		return nil, err
	}

	format, ok := DetectFormat(data)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	a := New(format, opts...)
	if !compressed {
		a.path = path
	}
	if err := a.Open(data); err != nil {
		return nil, err
	}
	return a, nil
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// unwrap decompresses a gzip- or zstd-wrapped blob, passing everything else
// through untouched.
func unwrap(raw []byte) (data []byte, compressed bool, err error) {
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, false, fmt.Errorf("binarc: gzip wrapper: %w", err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, false, fmt.Errorf("binarc: gzip wrapper: %w", err)
		}
		return data, true, nil

	case bytes.HasPrefix(raw, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, false, fmt.Errorf("binarc: zstd wrapper: %w", err)
		}
		defer dec.Close()
		data, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, false, fmt.Errorf("binarc: zstd wrapper: %w", err)
		}
		return data, true, nil
	}
	return raw, false, nil
}
