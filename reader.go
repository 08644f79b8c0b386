package bytepipe

import (
	"bytes"
	"io"
	"sync"
	"unicode/utf8"
)

// PipeReader is the read half of a pipe.
type PipeReader struct {
	p *pipe

	mu     sync.Mutex // serializes Close and Dup on this handle
	closed bool
}

func (r *PipeReader) failedLocked() error {
	if r.p.corrupted {
		return ErrCorrupted
	}
	if r.closed {
		return io.ErrClosedPipe
	}
	return nil
}

// drainLocked removes n bytes, waking writers blocked on the ceiling.
func (r *PipeReader) drainLocked(n int) []byte {
	p := r.p
	wasFull := p.atCeilingLocked()
	out := p.queue.take(n)
	if wasFull {
		p.writerWait.Broadcast()
	}
	return out
}

// Read implements io.Reader. It blocks while the pipe is empty and a
// write endpoint remains, and returns io.EOF once the pipe is empty
// with no writers left. Apart from len(b) == 0 it never returns zero
// bytes with a nil error, so a caller cannot mistake a transient empty
// queue for end of stream.
func (r *PipeReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	p := r.p
	p.mu.Lock()
	defer p.release()

	for {
		if err := r.failedLocked(); err != nil {
			return 0, err
		}
		if p.queue.size() > 0 {
			break
		}
		if p.writers.Load() == 0 {
			return 0, io.EOF
		}
		p.readerWait.Wait()
	}

	wasFull := p.atCeilingLocked()
	n := p.queue.copyOut(b)
	if wasFull {
		p.writerWait.Broadcast()
	}
	return n, nil
}

// ReadFull blocks until len(b) bytes are queued, drains exactly that
// many into b, and returns len(b). If the remaining write endpoints can
// never supply len(b) bytes, it fails with io.ErrUnexpectedEOF without
// consuming anything. This differs from io.ReadFull in two ways: a
// short stream leaves the queued bytes in place for later reads, and
// the error is io.ErrUnexpectedEOF even when nothing was queued at all.
func (r *PipeReader) ReadFull(b []byte) (int, error) {
	p := r.p
	p.mu.Lock()
	defer p.release()

	for {
		if err := r.failedLocked(); err != nil {
			return 0, err
		}
		if p.queue.size() >= len(b) {
			break
		}
		if p.writers.Load() == 0 {
			return 0, io.ErrUnexpectedEOF
		}
		p.readerWait.Wait()
	}

	wasFull := p.atCeilingLocked()
	n := p.queue.copyOut(b)
	if wasFull {
		p.writerWait.Broadcast()
	}
	return n, nil
}

// ReadBytes blocks until the queued bytes contain delim, then drains
// and returns everything through and including it. If every write
// endpoint closes before delim appears, the remaining bytes are drained
// and returned with io.EOF. The error is nil if and only if the
// returned bytes end in delim.
func (r *PipeReader) ReadBytes(delim byte) ([]byte, error) {
	p := r.p
	p.mu.Lock()
	defer p.release()

	// Bytes of the stream before scanned are known to carry no delim.
	// Anchoring the position to the queue's lifetime drain offset keeps
	// it valid when a duplicated reader drains concurrently.
	scanned := p.queue.offset()
	for {
		if err := r.failedLocked(); err != nil {
			return nil, err
		}
		// The clamped difference is bounded by the queue size, so it
		// fits int; the raw difference is not.
		start := int(max(scanned-p.queue.offset(), 0))
		if i := bytes.IndexByte(p.queue.view()[start:], delim); i >= 0 {
			return r.drainLocked(start + i + 1), nil
		}
		scanned = p.queue.offset() + int64(p.queue.size())
		if p.writers.Load() == 0 {
			return r.drainLocked(p.queue.size()), io.EOF
		}
		p.readerWait.Wait()
	}
}

// ReadString is ReadBytes with the result decoded as UTF-8 text. Bytes
// that do not form valid UTF-8 are discarded and reported as
// ErrInvalidData.
func (r *PipeReader) ReadString(delim byte) (string, error) {
	b, err := r.ReadBytes(delim)
	if err != nil && err != io.EOF {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidData
	}
	return string(b), err
}

// ReadLine reads through the next newline, which stays in the returned
// string. The final line of a closed pipe comes back with no trailing
// newline and io.EOF, as with ReadString.
func (r *PipeReader) ReadLine() (string, error) {
	return r.ReadString('\n')
}

// ReadAll blocks until every write endpoint has closed, then drains and
// returns whatever remains, which is nothing on calls after the first.
// It fails only on a closed endpoint or a corrupted pipe.
func (r *PipeReader) ReadAll() ([]byte, error) {
	p := r.p
	p.mu.Lock()
	defer p.release()

	for {
		if err := r.failedLocked(); err != nil {
			return nil, err
		}
		if p.writers.Load() == 0 {
			return r.drainLocked(p.queue.size()), nil
		}
		p.readerWait.Wait()
	}
}

// ReadAllString is ReadAll with the result decoded as UTF-8 text. Bytes
// that do not form valid UTF-8 are reported as ErrInvalidData and stay
// queued, so a caller can still retrieve them with ReadAll.
func (r *PipeReader) ReadAllString() (string, error) {
	p := r.p
	p.mu.Lock()
	defer p.release()

	for {
		if err := r.failedLocked(); err != nil {
			return "", err
		}
		if p.writers.Load() == 0 {
			if !utf8.Valid(p.queue.view()) {
				return "", ErrInvalidData
			}
			return string(r.drainLocked(p.queue.size())), nil
		}
		p.readerWait.Wait()
	}
}

// WriteTo implements io.WriterTo by draining the pipe into w until the
// write side closes or either side fails.
func (r *PipeReader) WriteTo(w io.Writer) (int64, error) {
	return copyBuffered(r.Read, w.Write)
}

// Close releases this handle's contribution to the reader liveness
// count and wakes every blocked goroutine on the pipe so it can observe
// the transition. Close is idempotent; operations on a closed endpoint
// fail with io.ErrClosedPipe.
func (r *PipeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}

	p := r.p
	p.mu.Lock()
	defer p.release()
	r.closed = true
	p.readers.Add(-1)
	p.readerWait.Broadcast()
	p.writerWait.Broadcast()
	return nil
}

// Dup returns a new independent read endpoint on the same pipe,
// incrementing the reader liveness count. Duplicating a closed endpoint
// fails with io.ErrClosedPipe, so a stale handle can never resurrect
// the count from zero.
func (r *PipeReader) Dup() (*PipeReader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, io.ErrClosedPipe
	}
	r.p.readers.Add(1)
	return &PipeReader{p: r.p}, nil
}
