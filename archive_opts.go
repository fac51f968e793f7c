package binarc

import "log/slog"

// Option configures an Archive.
type Option func(*Archive)

// WithKeepLoaded keeps entry payloads resident after open instead of
// dropping them for lazy reloading. Archives without a backing file keep
// payloads loaded regardless.
func WithKeepLoaded(keep bool) Option {
	return func(a *Archive) {
		a.keepLoaded = keep
	}
}

// WithTypeDetector sets the content type detector run on each entry after
// its payload first loads. Pass nil to disable detection.
// The default is DefaultDetector.
func WithTypeDetector(d TypeDetector) Option {
	return func(a *Archive) {
		a.detector = d
	}
}

// WithProgress sets a callback receiving progress updates during open and
// write.
func WithProgress(fn ProgressFunc) Option {
	return func(a *Archive) {
		a.progress = fn
	}
}

// WithLogger sets the logger used for diagnostics. The default discards
// all output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}

// WithOnChange sets a callback fired on directory mutations and after a
// successful open. Notifications are suppressed during bulk loads.
func WithOnChange(fn func(event string)) Option {
	return func(a *Archive) {
		a.onChange = fn
	}
}
