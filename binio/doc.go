// Package binio provides stateless helpers for moving fixed-width
// binary values and line-oriented text across io.Reader and io.Writer
// streams. Byte order is part of each helper's name: BE is big-endian,
// LE little-endian, and NE the platform's native order.
package binio
