package bytepipe

import (
	"io"
	"sync"
)

// PipeWriter is the write half of a pipe.
type PipeWriter struct {
	p *pipe

	mu     sync.Mutex // serializes Close and Dup on this handle
	closed bool
}

func (w *PipeWriter) failedLocked() error {
	if w.p.corrupted {
		return ErrCorrupted
	}
	if w.closed {
		return io.ErrClosedPipe
	}
	return nil
}

// Write implements io.Writer. It fails with ErrBrokenPipe as soon as no
// live read endpoint remains; that check never blocks. When the queue
// sits at its capacity ceiling, Write blocks until readers drain space,
// then appends as much of b as fits. A truncated append is reported
// with io.ErrShortWrite. Under the default ceiling truncation is
// unreachable in practice.
func (w *PipeWriter) Write(b []byte) (int, error) {
	p := w.p
	p.mu.Lock()
	defer p.release()

	for {
		if err := w.failedLocked(); err != nil {
			return 0, err
		}
		if p.readers.Load() == 0 {
			return 0, ErrBrokenPipe
		}
		if p.spaceLocked() > 0 || len(b) == 0 {
			break
		}
		p.writerWait.Wait()
	}

	n := min(p.spaceLocked(), len(b))
	p.queue.push(b[:n])
	if n > 0 {
		p.readerWait.Broadcast()
	}
	if n < len(b) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteAll appends all of b, blocking at the capacity ceiling until
// readers drain space. It returns the appended count, which is len(b)
// unless every read endpoint closes mid-wait; the count then covers the
// prefix appended before ErrBrokenPipe. Interleaving with other write
// endpoints is possible at every chunk boundary.
func (w *PipeWriter) WriteAll(b []byte) (int, error) {
	p := w.p
	p.mu.Lock()
	defer p.release()

	total := 0
	for {
		if err := w.failedLocked(); err != nil {
			return total, err
		}
		if p.readers.Load() == 0 {
			return total, ErrBrokenPipe
		}
		if n := min(p.spaceLocked(), len(b)); n > 0 {
			p.queue.push(b[:n])
			b = b[n:]
			total += n
			p.readerWait.Broadcast()
		}
		if len(b) == 0 {
			return total, nil
		}
		p.writerWait.Wait()
	}
}

// Flush exists to satisfy buffered-sink call sites. The pipe keeps no
// state outside the shared queue, so there is nothing to flush.
func (w *PipeWriter) Flush() error {
	return nil
}

// ReadFrom implements io.ReaderFrom by feeding the pipe from r until
// EOF or either side fails.
func (w *PipeWriter) ReadFrom(r io.Reader) (int64, error) {
	return copyBuffered(r.Read, w.WriteAll)
}

// Close releases this handle's contribution to the writer liveness
// count and wakes every blocked goroutine on the pipe so it can observe
// the transition; once the count reaches zero, readers see end of
// stream after draining. Close is idempotent; operations on a closed
// endpoint fail with io.ErrClosedPipe.
func (w *PipeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}

	p := w.p
	p.mu.Lock()
	defer p.release()
	w.closed = true
	p.writers.Add(-1)
	p.readerWait.Broadcast()
	p.writerWait.Broadcast()
	return nil
}

// Dup returns a new independent write endpoint on the same pipe,
// incrementing the writer liveness count. Duplicating a closed endpoint
// fails with io.ErrClosedPipe, so a stale handle can never resurrect
// the count from zero.
func (w *PipeWriter) Dup() (*PipeWriter, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil, io.ErrClosedPipe
	}
	w.p.writers.Add(1)
	return &PipeWriter{p: w.p}, nil
}
