package binarc

import "bytes"

// TypeDetector assigns a content type ID to entry data. Codecs run the
// archive's detector once per entry after its payload first loads.
type TypeDetector interface {
	Detect(name string, data []byte) string
}

// DetectorFunc adapts a function to the TypeDetector interface.
type DetectorFunc func(name string, data []byte) string

// Detect implements TypeDetector.
func (f DetectorFunc) Detect(name string, data []byte) string {
	return f(name, data)
}

// Content type IDs assigned by the default detector.
const (
	TypeUnknown = "unknown"
	TypeMarker  = "marker" // zero-size entry
	TypeWav     = "snd_wav"
	TypeVoc     = "snd_voc"
	TypeMidi    = "snd_midi"
	TypePNG     = "img_png"
	TypeText    = "text"
)

type magicRule struct {
	offset int
	magic  []byte
	typeID string
}

// Detection covers the payload types found in the DOS-era containers this
// package targets. Richer detection tables plug in via WithTypeDetector.
var magicRules = []magicRule{
	{0, []byte("RIFF"), TypeWav}, // refined to require WAVE at 8 below
	{0, []byte("Creative Voice File"), TypeVoc},
	{0, []byte("MThd"), TypeMidi},
	{0, []byte{0x89, 'P', 'N', 'G'}, TypePNG},
}

// DefaultDetector is the magic-table detector used when no TypeDetector
// option is given.
var DefaultDetector TypeDetector = DetectorFunc(detectByMagic)

func detectByMagic(_ string, data []byte) string {
	if len(data) == 0 {
		return TypeMarker
	}
	for _, r := range magicRules {
		if len(data) < r.offset+len(r.magic) {
			continue
		}
		if !bytes.Equal(data[r.offset:r.offset+len(r.magic)], r.magic) {
			continue
		}
		if r.typeID == TypeWav && !(len(data) >= 12 && bytes.Equal(data[8:12], []byte("WAVE"))) {
			continue
		}
		return r.typeID
	}
	if looksLikeText(data) {
		return TypeText
	}
	return TypeUnknown
}

// looksLikeText reports whether data is plausibly plain text: no NUL bytes
// and mostly printable ASCII or common whitespace.
func looksLikeText(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}
	printable := 0
	for _, b := range sample {
		switch {
		case b == 0:
			return false
		case b >= 0x20 && b < 0x7f, b == '\n', b == '\r', b == '\t':
			printable++
		}
	}
	return printable*10 >= len(sample)*9
}
