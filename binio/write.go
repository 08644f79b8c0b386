package binio

import (
	"encoding/binary"
	"io"
	"math"
)

// WriteUint8 writes a single byte to w. Byte order describes byte, not
// bit, order, so one byte needs no order-suffixed variants.
func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// WriteInt8 writes a single signed byte to w.
func WriteInt8(w io.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

// WriteUint16BE writes v to w in big-endian order.
func WriteUint16BE(w io.Writer, v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint16LE writes v to w in little-endian order.
func WriteUint16LE(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint16NE writes v to w in native-endian order.
func WriteUint16NE(w io.Writer, v uint16) error {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteInt16BE writes v to w in big-endian order.
func WriteInt16BE(w io.Writer, v int16) error {
	return WriteUint16BE(w, uint16(v))
}

// WriteInt16LE writes v to w in little-endian order.
func WriteInt16LE(w io.Writer, v int16) error {
	return WriteUint16LE(w, uint16(v))
}

// WriteInt16NE writes v to w in native-endian order.
func WriteInt16NE(w io.Writer, v int16) error {
	return WriteUint16NE(w, uint16(v))
}

// WriteUint32BE writes v to w in big-endian order.
func WriteUint32BE(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint32LE writes v to w in little-endian order.
func WriteUint32LE(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint32NE writes v to w in native-endian order.
func WriteUint32NE(w io.Writer, v uint32) error {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteInt32BE writes v to w in big-endian order.
func WriteInt32BE(w io.Writer, v int32) error {
	return WriteUint32BE(w, uint32(v))
}

// WriteInt32LE writes v to w in little-endian order.
func WriteInt32LE(w io.Writer, v int32) error {
	return WriteUint32LE(w, uint32(v))
}

// WriteInt32NE writes v to w in native-endian order.
func WriteInt32NE(w io.Writer, v int32) error {
	return WriteUint32NE(w, uint32(v))
}

// WriteUint64BE writes v to w in big-endian order.
func WriteUint64BE(w io.Writer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint64LE writes v to w in little-endian order.
func WriteUint64LE(w io.Writer, v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint64NE writes v to w in native-endian order.
func WriteUint64NE(w io.Writer, v uint64) error {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteInt64BE writes v to w in big-endian order.
func WriteInt64BE(w io.Writer, v int64) error {
	return WriteUint64BE(w, uint64(v))
}

// WriteInt64LE writes v to w in little-endian order.
func WriteInt64LE(w io.Writer, v int64) error {
	return WriteUint64LE(w, uint64(v))
}

// WriteInt64NE writes v to w in native-endian order.
func WriteInt64NE(w io.Writer, v int64) error {
	return WriteUint64NE(w, uint64(v))
}

// WriteFloat32BE writes the IEEE 754 bits of v to w in big-endian
// order.
func WriteFloat32BE(w io.Writer, v float32) error {
	return WriteUint32BE(w, math.Float32bits(v))
}

// WriteFloat32LE writes the IEEE 754 bits of v to w in little-endian
// order.
func WriteFloat32LE(w io.Writer, v float32) error {
	return WriteUint32LE(w, math.Float32bits(v))
}

// WriteFloat32NE writes the IEEE 754 bits of v to w in native-endian
// order.
func WriteFloat32NE(w io.Writer, v float32) error {
	return WriteUint32NE(w, math.Float32bits(v))
}

// WriteFloat64BE writes the IEEE 754 bits of v to w in big-endian
// order.
func WriteFloat64BE(w io.Writer, v float64) error {
	return WriteUint64BE(w, math.Float64bits(v))
}

// WriteFloat64LE writes the IEEE 754 bits of v to w in little-endian
// order.
func WriteFloat64LE(w io.Writer, v float64) error {
	return WriteUint64LE(w, math.Float64bits(v))
}

// WriteFloat64NE writes the IEEE 754 bits of v to w in native-endian
// order.
func WriteFloat64NE(w io.Writer, v float64) error {
	return WriteUint64NE(w, math.Float64bits(v))
}

// WriteBytes writes all of p to w.
func WriteBytes(w io.Writer, p []byte) error {
	_, err := w.Write(p)
	return err
}
