package structify

import (
	"encoding/binary"
	"math"
)

// byteOrder is the wire endianness for every primitive.
var byteOrder = binary.LittleEndian

// Buffer is a positionable byte sink and source.
//
// Writes past the end grow the buffer. Reads past the end yield zero bytes
// and still advance the position, so fixed-width decoders keep their
// alignment; callers check Remaining before decoding when truncation matters.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	pos  int
}

// NewBuffer returns a zeroed buffer of size bytes positioned at 0.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// WrapBuffer returns a buffer over data positioned at 0.
func WrapBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the full contents of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes held by the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Position returns the cursor.
func (b *Buffer) Position() int {
	return b.pos
}

// SetPosition moves the cursor. Negative positions are clamped to 0.
func (b *Buffer) SetPosition(pos int) {
	if pos < 0 {
		pos = 0
	}
	b.pos = pos
}

// Rewind moves the cursor to 0.
func (b *Buffer) Rewind() {
	b.pos = 0
}

// Remaining returns the number of readable bytes after the cursor.
func (b *Buffer) Remaining() int {
	if b.pos >= len(b.data) {
		return 0
	}
	return len(b.data) - b.pos
}

// Skip advances the cursor by n bytes without reading them.
func (b *Buffer) Skip(n int) {
	b.pos += n
}

// Zero writes n zero bytes at the cursor.
func (b *Buffer) Zero(n int) {
	clear(b.next(n))
}

// Put writes p at the cursor.
func (b *Buffer) Put(p []byte) {
	copy(b.next(len(p)), p)
}

// Get fills p from the cursor.
func (b *Buffer) Get(p []byte) {
	n := copy(p, b.peek(len(p)))
	clear(p[n:])
	b.pos += len(p)
}

// next returns the n-byte window at the cursor, growing the buffer as needed,
// and advances the cursor past it.
func (b *Buffer) next(n int) []byte {
	end := b.pos + n
	if end > len(b.data) {
		if end > cap(b.data) {
			grown := make([]byte, end, max(end, 2*cap(b.data)))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}
	w := b.data[b.pos:end]
	b.pos = end
	return w
}

// peek returns up to n readable bytes at the cursor without advancing.
func (b *Buffer) peek(n int) []byte {
	if b.pos >= len(b.data) {
		return nil
	}
	end := min(b.pos+n, len(b.data))
	return b.data[b.pos:end]
}

// read returns exactly n bytes at the cursor, zero padded past the end.
func (b *Buffer) read(n int) []byte {
	p := b.peek(n)
	if len(p) < n {
		padded := make([]byte, n)
		copy(padded, p)
		p = padded
	}
	b.pos += n
	return p
}

// PutUint8 writes v as one byte.
func (b *Buffer) PutUint8(v uint8) {
	b.next(1)[0] = v
}

// PutInt8 writes v as one two's-complement byte.
func (b *Buffer) PutInt8(v int8) {
	b.PutUint8(uint8(v))
}

// PutUint16 writes v as 2 little-endian bytes.
func (b *Buffer) PutUint16(v uint16) {
	byteOrder.PutUint16(b.next(2), v)
}

// PutInt16 writes v as 2 little-endian bytes.
func (b *Buffer) PutInt16(v int16) {
	b.PutUint16(uint16(v))
}

// PutUint32 writes v as 4 little-endian bytes.
func (b *Buffer) PutUint32(v uint32) {
	byteOrder.PutUint32(b.next(4), v)
}

// PutInt32 writes v as 4 little-endian bytes.
func (b *Buffer) PutInt32(v int32) {
	b.PutUint32(uint32(v))
}

// PutUint64 writes v as 8 little-endian bytes.
func (b *Buffer) PutUint64(v uint64) {
	byteOrder.PutUint64(b.next(8), v)
}

// PutInt64 writes v as 8 little-endian bytes.
func (b *Buffer) PutInt64(v int64) {
	b.PutUint64(uint64(v))
}

// PutFloat32 writes the IEEE 754 bits of v as 4 little-endian bytes.
func (b *Buffer) PutFloat32(v float32) {
	b.PutUint32(math.Float32bits(v))
}

// PutFloat64 writes the IEEE 754 bits of v as 8 little-endian bytes.
func (b *Buffer) PutFloat64(v float64) {
	b.PutUint64(math.Float64bits(v))
}

// PutBool writes 1 for true and 0 for false.
func (b *Buffer) PutBool(v bool) {
	if v {
		b.PutUint8(1)
		return
	}
	b.PutUint8(0)
}

// GetUint8 reads one byte.
func (b *Buffer) GetUint8() uint8 {
	return b.read(1)[0]
}

// GetInt8 reads one two's-complement byte.
func (b *Buffer) GetInt8() int8 {
	return int8(b.GetUint8())
}

// GetUint16 reads 2 little-endian bytes.
func (b *Buffer) GetUint16() uint16 {
	return byteOrder.Uint16(b.read(2))
}

// GetInt16 reads 2 little-endian bytes.
func (b *Buffer) GetInt16() int16 {
	return int16(b.GetUint16())
}

// GetUint32 reads 4 little-endian bytes.
func (b *Buffer) GetUint32() uint32 {
	return byteOrder.Uint32(b.read(4))
}

// GetInt32 reads 4 little-endian bytes.
func (b *Buffer) GetInt32() int32 {
	return int32(b.GetUint32())
}

// GetUint64 reads 8 little-endian bytes.
func (b *Buffer) GetUint64() uint64 {
	return byteOrder.Uint64(b.read(8))
}

// GetInt64 reads 8 little-endian bytes.
func (b *Buffer) GetInt64() int64 {
	return int64(b.GetUint64())
}

// GetFloat32 reads 4 little-endian bytes as IEEE 754 bits.
func (b *Buffer) GetFloat32() float32 {
	return math.Float32frombits(b.GetUint32())
}

// GetFloat64 reads 8 little-endian bytes as IEEE 754 bits.
func (b *Buffer) GetFloat64() float64 {
	return math.Float64frombits(b.GetUint64())
}

// GetBool reads one byte; any non-zero value is true.
func (b *Buffer) GetBool() bool {
	return b.GetUint8() != 0
}
