package binarc

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gameres/binarc/internal/membuf"
)

// Chasm: The Rift bin container layout. The directory table always
// reserves space for chasmMaxEntryCount records, so payload data starts at
// the fixed offset chasmDataStart regardless of entry count.
const (
	chasmHeaderSize    = 4 + 2 // magic + uint16 entry count
	chasmNameSize      = 12    // length byte + up to 11 name bytes
	chasmRecordSize    = chasmNameSize + 4 + 4
	chasmMaxEntryCount = 2048
	chasmDataStart     = chasmHeaderSize + chasmRecordSize*chasmMaxEntryCount
)

var chasmMagic = [4]byte{'C', 'S', 'i', 'd'}

// ChasmBin is the codec for the Chasm: The Rift "bin" container format.
type ChasmBin struct{}

func init() {
	RegisterFormat(ChasmBin{})
}

// Name implements Format.
func (ChasmBin) Name() string { return "chasm_bin" }

// Open parses a Chasm bin blob into the archive's directory.
//
// The whole open fails on the first invalid directory record; a partially
// parsed directory is never committed. Payloads are read and type-detected
// in a second pass, then dropped again for lazy reloading unless the
// archive keeps payloads loaded or has no backing file.
func (f ChasmBin) Open(a *Archive, data []byte) error {
	if len(data) < chasmHeaderSize {
		return fmt.Errorf("%w: %d bytes, need %d for chasm bin header", ErrTooSmall, len(data), chasmHeaderSize)
	}

	buf := membuf.From(data)
	cur := buf.Cursor()

	var magic [4]byte
	io.ReadFull(cur, magic[:]) //nolint:errcheck // length checked above
	if magic != chasmMagic {
		a.log().Error("chasm bin open failed, invalid header", "magic", fmt.Sprintf("%x", magic))
		return fmt.Errorf("%w: not a chasm bin archive", ErrBadMagic)
	}

	count, _ := cur.Uint16() //nolint:errcheck // length checked above

	// Suppress change notifications while entries pour in.
	a.mute()
	err := f.readDirectory(a, cur, buf, data, count)
	a.unmute()
	if err != nil {
		return err
	}

	a.SetModified(false)
	a.notify("opened")
	return nil
}

// readDirectory parses and validates all directory records, commits them,
// and runs the payload/type-detection pass. Called with notifications
// muted.
func (f ChasmBin) readDirectory(a *Archive, cur *membuf.Cursor, buf *membuf.Buffer, data []byte, count uint16) error {
	a.report(StageReadingDirectory, "", 0, int(count))

	entries := make([]*Entry, 0, count)
	for i := 0; i < int(count); i++ {
		var name [chasmNameSize]byte
		if _, err := io.ReadFull(cur, name[:]); err != nil {
			return fmt.Errorf("%w: truncated directory record %d", ErrTooSmall, i)
		}
		size, err := cur.Uint32()
		if err != nil {
			return fmt.Errorf("%w: truncated directory record %d", ErrTooSmall, i)
		}
		offset, err := cur.Uint32()
		if err != nil {
			return fmt.Errorf("%w: truncated directory record %d", ErrTooSmall, i)
		}

		if int64(offset)+int64(size) > int64(len(data)) {
			a.log().Error("chasm bin archive is invalid or corrupt",
				"entry", i, "offset", offset, "size", size, "archive_size", len(data))
			return fmt.Errorf("%w: entry %d spans [%d,%d) of %d", ErrEntryOutOfBounds,
				i, offset, int64(offset)+int64(size), len(data))
		}

		e := &Entry{
			name:         chasmName(name),
			size:         size,
			state:        StateUnmodified,
			sourceOffset: offset,
		}
		entries = append(entries, e)
		a.report(StageReadingDirectory, e.name, i+1, int(count))
	}

	// Every record validated; commit the directory in one step.
	a.dir.reset(entries)

	for i, e := range entries {
		a.report(StageDetectingTypes, e.name, i, len(entries))

		if e.size > 0 {
			payload, err := buf.Slice(int(e.sourceOffset), int(e.size))
			if err != nil {
				// Unreachable after the bounds check above.
				return fmt.Errorf("%w: entry %q", ErrEntryOutOfBounds, e.name)
			}
			e.setLoaded(payload)
		}

		a.detect(e)
		fixBrokenWave(e)

		if !a.keepLoaded && a.path != "" {
			e.Unload()
		}
		e.state = StateUnmodified
	}

	return nil
}

// Write serializes the archive to a new Chasm bin blob.
//
// The output reserves the full directory-table capacity so payload data
// starts at the fixed offset chasmDataStart. Offset assignment order and
// physical payload layout match exactly. Overlong names are truncated with
// a warning; that is a leniency, not an error.
func (f ChasmBin) Write(a *Archive, updateOffsets bool) ([]byte, error) {
	entries := a.dir.Entries()

	if len(entries) > chasmMaxEntryCount {
		a.log().Error("chasm bin archive entry limit exceeded",
			"entries", len(entries), "max", chasmMaxEntryCount)
		return nil, fmt.Errorf("%w: %d entries, chasm bin holds at most %d",
			ErrTooManyEntries, len(entries), chasmMaxEntryCount)
	}

	// Fetch unloaded payloads before any offset is reassigned; lazy loads
	// read from the old layout.
	for _, e := range entries {
		if !e.loaded && e.size > 0 {
			if err := a.LoadEntryData(e); err != nil {
				return nil, fmt.Errorf("load %q for write: %w", e.name, err)
			}
		}
	}

	buf := membuf.New(chasmDataStart)
	cur := buf.Cursor()
	cur.Write(chasmMagic[:]) //nolint:errcheck // cursor writes cannot fail
	cur.PutUint16(uint16(len(entries)))

	offset := uint32(chasmDataStart)
	for i, e := range entries {
		a.report(StageWriting, e.name, i, len(entries))

		if updateOffsets {
			e.state = StateUnmodified
			e.sourceOffset = offset
		}

		name := e.name
		if len(name) > chasmNameSize-1 {
			a.log().Warn("entry name too long, truncating", "name", name, "max", chasmNameSize-1)
			name = name[:chasmNameSize-1]
		}
		var field [chasmNameSize]byte
		field[0] = byte(len(name))
		copy(field[1:], name)
		cur.Write(field[:]) //nolint:errcheck // cursor writes cannot fail

		cur.PutUint32(e.size)
		if updateOffsets {
			cur.PutUint32(offset)
		} else {
			cur.PutUint32(e.sourceOffset)
		}
		offset += e.size
	}

	// Payloads go back-to-back after the reserved table, in the same order
	// the offsets were assigned.
	buf.Resize(int(offset), true)
	cur.Seek(chasmDataStart)
	for _, e := range entries {
		cur.Write(e.data) //nolint:errcheck // cursor writes cannot fail
	}

	return buf.Bytes(), nil
}

// LoadEntryData reads one entry's payload from the backing file.
//
// The file handle is scoped to this call. On failure the entry stays
// unloaded and the call may be retried.
func (f ChasmBin) LoadEntryData(a *Archive, e *Entry) error {
	if e.size == 0 || e.loaded {
		e.loaded = true
		return nil
	}

	if a.path == "" {
		return fmt.Errorf("%w: archive has no backing file", ErrSourceUnavailable)
	}

	file, err := os.Open(a.path)
	if err != nil {
		a.log().Error("unable to open archive file for lazy load", "path", a.path, "error", err)
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	payload := make([]byte, e.size)
	if _, err := file.ReadAt(payload, int64(e.sourceOffset)); err != nil {
		a.log().Error("unable to read entry data", "path", a.path, "entry", e.name, "error", err)
		return fmt.Errorf("%w: read %q: %w", ErrSourceUnavailable, e.name, err)
	}

	e.setLoaded(payload)
	return nil
}

// Matches reports whether data is plausibly a Chasm bin archive: magic
// match, declared entry count within the format limit, and enough bytes to
// hold the full reserved directory table.
func (f ChasmBin) Matches(data []byte) bool {
	if len(data) < chasmHeaderSize {
		return false
	}
	if [4]byte(data[:4]) != chasmMagic {
		return false
	}
	count := binary.LittleEndian.Uint16(data[4:6])
	return count <= chasmMaxEntryCount && len(data) >= chasmDataStart
}

// MatchesFile reports whether the file at path is plausibly a Chasm bin
// archive, reading only the header.
func (f ChasmBin) MatchesFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return false
	}

	var header [chasmHeaderSize]byte
	if _, err := io.ReadFull(file, header[:]); err != nil {
		return false
	}
	if [4]byte(header[:4]) != chasmMagic {
		return false
	}
	count := binary.LittleEndian.Uint16(header[4:6])
	return count <= chasmMaxEntryCount && info.Size() >= chasmDataStart
}

// chasmName converts an on-disk name field to a string. The first byte is
// the Pascal length prefix; the remaining bytes are treated as a
// zero-terminated string capped at the field width.
func chasmName(field [chasmNameSize]byte) string {
	raw := field[1:]
	for i, b := range raw {
		if b == 0 {
			return string(raw[:i])
		}
	}
	return string(raw)
}

// Minimum byte count for a wav payload to carry a format chunk.
const chasmMinWaveSize = 44

// fixBrokenWave corrects the format-chunk size field of wav payloads
// shipped broken in retail Chasm archives: a value of 0x12 at payload
// offset 0x10 where 0x10 is correct. Patched only when the sentinel value
// is present.
func fixBrokenWave(e *Entry) {
	if e.Type() != TypeWav || e.Size() < chasmMinWaveSize {
		return
	}
	data := e.Data()
	if binary.LittleEndian.Uint32(data[0x10:]) == 0x12 {
		binary.LittleEndian.PutUint32(data[0x10:], 0x10)
	}
}
