package bytepipe

import "errors"

var (
	// ErrBrokenPipe is returned by Write and WriteAll when no live read
	// endpoint remains, so the written bytes could never be consumed.
	ErrBrokenPipe = errors.New("bytepipe: no readers")

	// ErrInvalidData is returned by the text read operations when the
	// drained bytes are not valid UTF-8.
	ErrInvalidData = errors.New("bytepipe: invalid UTF-8")

	// ErrCorrupted is returned by every operation after a goroutine
	// panicked while holding the pipe lock, leaving the shared state
	// unreliable.
	ErrCorrupted = errors.New("bytepipe: corrupted pipe")
)
