// Package bytepipe provides an in-process pipe that hands bytes from
// writer goroutines to reader goroutines through a shared FIFO queue.
// Endpoints can be duplicated for fan-in and fan-out; each side's
// liveness is counted so readers observe end of stream once the last
// writer closes, and writers fail fast once the last reader closes.
package bytepipe
