package bytepipe

// byteQueue is an unbounded FIFO byte queue backed by a single slice.
// Draining leaves a dead prefix that is reclaimed on a later push once
// it outgrows the live data or the slice would have to grow anyway.
type byteQueue struct {
	data    []byte
	head    int
	drained int64
}

// size returns the number of queued bytes.
func (q *byteQueue) size() int {
	return len(q.data) - q.head
}

// view returns the queued bytes without draining them. The result
// aliases the queue's storage and is invalidated by the next push or
// drain.
func (q *byteQueue) view() []byte {
	return q.data[q.head:]
}

// offset returns the total number of bytes drained over the queue's
// lifetime. It never decreases, which lets callers keep positions into
// the byte stream that survive compaction and concurrent draining.
func (q *byteQueue) offset() int64 {
	return q.drained
}

// push appends p to the queue.
func (q *byteQueue) push(p []byte) {
	if q.head > 0 && (q.head >= q.size() || len(q.data)+len(p) > cap(q.data)) {
		n := copy(q.data, q.data[q.head:])
		q.data = q.data[:n]
		q.head = 0
	}
	q.data = append(q.data, p...)
}

// copyOut drains up to len(dst) bytes into dst and returns the count.
func (q *byteQueue) copyOut(dst []byte) int {
	n := copy(dst, q.data[q.head:])
	q.advance(n)
	return n
}

// take drains exactly n queued bytes into a freshly allocated slice.
func (q *byteQueue) take(n int) []byte {
	out := make([]byte, n)
	copy(out, q.data[q.head:q.head+n])
	q.advance(n)
	return out
}

// advance discards n queued bytes.
func (q *byteQueue) advance(n int) {
	q.head += n
	q.drained += int64(n)
	if q.head == len(q.data) {
		q.data = q.data[:0]
		q.head = 0
	}
}
