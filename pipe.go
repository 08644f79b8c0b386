package bytepipe

import (
	"io"
	"math"
	"sync"
	"sync/atomic"
)

var (
	_ io.Reader     = (*PipeReader)(nil)
	_ io.WriterTo   = (*PipeReader)(nil)
	_ io.Closer     = (*PipeReader)(nil)
	_ io.Writer     = (*PipeWriter)(nil)
	_ io.ReaderFrom = (*PipeWriter)(nil)
	_ io.Closer     = (*PipeWriter)(nil)
)

// pipe is the state shared by every endpoint of one pipe. The liveness
// counters are updated atomically so endpoints can be duplicated
// without taking the queue lock; decrements additionally happen under
// mu, followed by a broadcast, so no blocked goroutine misses the
// transition to zero.
type pipe struct {
	writerWait sync.Cond
	readerWait sync.Cond

	readers atomic.Int32
	writers atomic.Int32

	mu        sync.Mutex
	queue     byteQueue // guarded by mu
	ceiling   int       // max queue size, immutable
	corrupted bool      // guarded by mu
}

func newPipe(ceiling int) *pipe {
	p := &pipe{ceiling: ceiling}
	p.writerWait.L = &p.mu
	p.readerWait.L = &p.mu
	return p
}

func newPair(ceiling int) (*PipeReader, *PipeWriter) {
	p := newPipe(ceiling)
	p.readers.Store(1)
	p.writers.Store(1)
	return &PipeReader{p: p}, &PipeWriter{p: p}
}

// Pipe creates an in-process pipe and returns its two endpoints. The
// queue between them grows as needed, so writes block only at the
// representable-size ceiling.
func Pipe() (*PipeReader, *PipeWriter) {
	return newPair(math.MaxInt)
}

// release unlocks mu. When the critical section is unwinding from a
// panic the shared state can no longer be trusted: the pipe is marked
// corrupted and every waiter is woken before the panic resumes, so
// nothing stays blocked on a dead pipe.
func (p *pipe) release() {
	if r := recover(); r != nil {
		p.corrupted = true
		p.readerWait.Broadcast()
		p.writerWait.Broadcast()
		p.mu.Unlock()
		panic(r)
	}
	p.mu.Unlock()
}

func (p *pipe) spaceLocked() int {
	return p.ceiling - p.queue.size()
}

func (p *pipe) atCeilingLocked() bool {
	return p.queue.size() >= p.ceiling
}

func copyBuffered(read func([]byte) (int, error), write func([]byte) (int, error)) (int64, error) {
	buf := make([]byte, 32*1024)
	var total int64
	for {
		n, rErr := read(buf)
		if n > 0 {
			wn, wErr := write(buf[:n])
			if wn < 0 || wn > n {
				wn = 0
				if wErr == nil {
					wErr = io.ErrShortWrite
				}
			}
			total += int64(wn)
			if wErr != nil {
				return total, wErr
			}
			if wn != n {
				return total, io.ErrShortWrite
			}
		}
		if rErr != nil {
			if rErr != io.EOF {
				return total, rErr
			}
			return total, nil
		}
	}
}
