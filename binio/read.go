package binio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint8 reads a single byte from r. Byte order describes byte, not
// bit, order, so one byte needs no order-suffixed variants.
func ReadUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 reads a single signed byte from r.
func ReadInt8(r io.Reader) (int8, error) {
	v, err := ReadUint8(r)
	return int8(v), err
}

// ReadUint16BE reads a big-endian uint16 from r.
func ReadUint16BE(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// ReadUint16LE reads a little-endian uint16 from r.
func ReadUint16LE(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// ReadUint16NE reads a native-endian uint16 from r.
func ReadUint16NE(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint16(b[:]), nil
}

// ReadInt16BE reads a big-endian int16 from r.
func ReadInt16BE(r io.Reader) (int16, error) {
	v, err := ReadUint16BE(r)
	return int16(v), err
}

// ReadInt16LE reads a little-endian int16 from r.
func ReadInt16LE(r io.Reader) (int16, error) {
	v, err := ReadUint16LE(r)
	return int16(v), err
}

// ReadInt16NE reads a native-endian int16 from r.
func ReadInt16NE(r io.Reader) (int16, error) {
	v, err := ReadUint16NE(r)
	return int16(v), err
}

// ReadUint32BE reads a big-endian uint32 from r.
func ReadUint32BE(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// ReadUint32LE reads a little-endian uint32 from r.
func ReadUint32LE(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// ReadUint32NE reads a native-endian uint32 from r.
func ReadUint32NE(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(b[:]), nil
}

// ReadInt32BE reads a big-endian int32 from r.
func ReadInt32BE(r io.Reader) (int32, error) {
	v, err := ReadUint32BE(r)
	return int32(v), err
}

// ReadInt32LE reads a little-endian int32 from r.
func ReadInt32LE(r io.Reader) (int32, error) {
	v, err := ReadUint32LE(r)
	return int32(v), err
}

// ReadInt32NE reads a native-endian int32 from r.
func ReadInt32NE(r io.Reader) (int32, error) {
	v, err := ReadUint32NE(r)
	return int32(v), err
}

// ReadUint64BE reads a big-endian uint64 from r.
func ReadUint64BE(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// ReadUint64LE reads a little-endian uint64 from r.
func ReadUint64LE(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// ReadUint64NE reads a native-endian uint64 from r.
func ReadUint64NE(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint64(b[:]), nil
}

// ReadInt64BE reads a big-endian int64 from r.
func ReadInt64BE(r io.Reader) (int64, error) {
	v, err := ReadUint64BE(r)
	return int64(v), err
}

// ReadInt64LE reads a little-endian int64 from r.
func ReadInt64LE(r io.Reader) (int64, error) {
	v, err := ReadUint64LE(r)
	return int64(v), err
}

// ReadInt64NE reads a native-endian int64 from r.
func ReadInt64NE(r io.Reader) (int64, error) {
	v, err := ReadUint64NE(r)
	return int64(v), err
}

// ReadFloat32BE reads a big-endian IEEE 754 float32 from r.
func ReadFloat32BE(r io.Reader) (float32, error) {
	v, err := ReadUint32BE(r)
	return math.Float32frombits(v), err
}

// ReadFloat32LE reads a little-endian IEEE 754 float32 from r.
func ReadFloat32LE(r io.Reader) (float32, error) {
	v, err := ReadUint32LE(r)
	return math.Float32frombits(v), err
}

// ReadFloat32NE reads a native-endian IEEE 754 float32 from r.
func ReadFloat32NE(r io.Reader) (float32, error) {
	v, err := ReadUint32NE(r)
	return math.Float32frombits(v), err
}

// ReadFloat64BE reads a big-endian IEEE 754 float64 from r.
func ReadFloat64BE(r io.Reader) (float64, error) {
	v, err := ReadUint64BE(r)
	return math.Float64frombits(v), err
}

// ReadFloat64LE reads a little-endian IEEE 754 float64 from r.
func ReadFloat64LE(r io.Reader) (float64, error) {
	v, err := ReadUint64LE(r)
	return math.Float64frombits(v), err
}

// ReadFloat64NE reads a native-endian IEEE 754 float64 from r.
func ReadFloat64NE(r io.Reader) (float64, error) {
	v, err := ReadUint64NE(r)
	return math.Float64frombits(v), err
}

// ReadBytes reads exactly n raw bytes from r. A negative length is an
// error; a short or failed read is reported with the requested length
// wrapped around the cause.
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("binio: invalid length %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("binio: read %d bytes: %w", n, err)
	}
	return buf, nil
}
