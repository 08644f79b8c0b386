package bytepipe

import (
	"io"
	"sync"
	"testing"
	"time"
)

func TestWriteTruncatesAtCeiling(t *testing.T) {
	r, w := newPair(4)
	defer r.Close()
	defer w.Close()

	n, err := w.Write([]byte("abcdef"))
	if err != io.ErrShortWrite {
		t.Fatalf("expected io.ErrShortWrite, got %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 bytes appended, got %d", n)
	}

	buf := make([]byte, 4)
	if _, err := r.ReadFull(buf); err != nil {
		t.Fatalf("ReadFull failed: %v", err)
	}
	if string(buf) != "abcd" {
		t.Fatalf("expected %q, got %q", "abcd", buf)
	}
}

func TestWriteBlocksAtCeilingUntilDrain(t *testing.T) {
	r, w := newPair(2)
	defer r.Close()
	defer w.Close()

	if _, err := w.Write([]byte("ab")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var (
		wg       sync.WaitGroup
		n        int
		writeErr error
	)

	wg.Go(func() {
		n, writeErr = w.Write([]byte("cd"))
	})

	time.Sleep(10 * time.Millisecond)

	buf := make([]byte, 1)
	if _, err := r.Read(buf); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if buf[0] != 'a' {
		t.Fatalf("expected 'a', got %q", buf)
	}

	wg.Wait()

	if writeErr != io.ErrShortWrite {
		t.Fatalf("expected io.ErrShortWrite, got %v", writeErr)
	}
	if n != 1 {
		t.Fatalf("expected 1 byte appended, got %d", n)
	}
}

func TestWriteAllBlocksUntilSpaceFrees(t *testing.T) {
	r, w := newPair(2)
	defer r.Close()
	defer w.Close()

	var (
		wg       sync.WaitGroup
		total    int
		writeErr error
	)

	wg.Go(func() {
		total, writeErr = w.WriteAll([]byte("abcdef"))
	})

	buf := make([]byte, 6)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("ReadFull failed: %v", err)
	}

	wg.Wait()

	if writeErr != nil {
		t.Fatalf("WriteAll failed: %v", writeErr)
	}
	if total != 6 {
		t.Fatalf("expected 6 bytes appended, got %d", total)
	}
	if string(buf) != "abcdef" {
		t.Fatalf("expected %q, got %q", "abcdef", buf)
	}
}

func TestWriteAllBrokenPipeMidWait(t *testing.T) {
	r, w := newPair(2)
	defer w.Close()

	var (
		wg       sync.WaitGroup
		total    int
		writeErr error
	)

	wg.Go(func() {
		total, writeErr = w.WriteAll([]byte("abcd"))
	})

	time.Sleep(10 * time.Millisecond)
	r.Close()

	wg.Wait()

	if writeErr != ErrBrokenPipe {
		t.Fatalf("expected ErrBrokenPipe, got %v", writeErr)
	}
	if total != 2 {
		t.Fatalf("expected 2 bytes appended before failure, got %d", total)
	}
}

func TestWriteBrokenPipeMidWait(t *testing.T) {
	r, w := newPair(1)
	defer w.Close()

	if _, err := w.Write([]byte("a")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var (
		wg       sync.WaitGroup
		n        int
		writeErr error
	)

	wg.Go(func() {
		n, writeErr = w.Write([]byte("b"))
	})

	time.Sleep(10 * time.Millisecond)
	r.Close()

	wg.Wait()

	if writeErr != ErrBrokenPipe {
		t.Fatalf("expected ErrBrokenPipe, got %v", writeErr)
	}
	if n != 0 {
		t.Fatalf("expected 0 bytes appended, got %d", n)
	}
}

// corruptPipe panics while holding the pipe lock, simulating a lock
// holder dying mid-mutation.
func corruptPipe(p *pipe) {
	defer func() { _ = recover() }()
	p.mu.Lock()
	defer p.release()
	panic("lock holder died")
}

func TestCorruptedPipeFailsOperations(t *testing.T) {
	r, w := newPair(8)
	defer r.Close()
	defer w.Close()

	corruptPipe(r.p)

	if _, err := w.Write([]byte("x")); err != ErrCorrupted {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
	if _, err := w.WriteAll([]byte("y")); err != ErrCorrupted {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
	if _, err := r.Read(make([]byte, 1)); err != ErrCorrupted {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
	if _, err := r.ReadAll(); err != ErrCorrupted {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
}

func TestCorruptionWakesBlockedReader(t *testing.T) {
	r, _ := newPair(8)
	defer r.Close()

	var (
		wg      sync.WaitGroup
		readErr error
	)

	wg.Go(func() {
		_, readErr = r.Read(make([]byte, 1))
	})

	time.Sleep(10 * time.Millisecond)
	corruptPipe(r.p)

	wg.Wait()

	if readErr != ErrCorrupted {
		t.Fatalf("expected ErrCorrupted, got %v", readErr)
	}
}

func TestByteQueueCompaction(t *testing.T) {
	var q byteQueue

	q.push([]byte("abcdef"))
	buf := make([]byte, 4)
	if n := q.copyOut(buf); n != 4 || string(buf) != "abcd" {
		t.Fatalf("expected to drain %q, got %d %q", "abcd", n, buf[:n])
	}

	// the dead prefix outweighs the live bytes, so this push compacts
	q.push([]byte("gh"))
	if got := string(q.view()); got != "efgh" {
		t.Fatalf("expected %q queued, got %q", "efgh", got)
	}
	if q.offset() != 4 {
		t.Fatalf("expected offset 4, got %d", q.offset())
	}

	out := q.take(4)
	if string(out) != "efgh" {
		t.Fatalf("expected %q, got %q", "efgh", out)
	}
	if q.size() != 0 || q.offset() != 8 {
		t.Fatalf("expected empty queue at offset 8, got size %d offset %d", q.size(), q.offset())
	}
}
