package bits

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"
)

// Writer is a growing little/big-endian binary encode buffer.
type Writer struct {
	pos   int
	data  []byte
	order binary.ByteOrder
}

func NewWriter(sizeHint int, order binary.ByteOrder) *Writer {
	if sizeHint < 16 {
		sizeHint = 16
	}
	return &Writer{
		data:  make([]byte, sizeHint),
		order: order,
	}
}

func (w *Writer) Reset() {
	w.pos = 0
}

func (w *Writer) Position() int {
	return w.pos
}

func (w *Writer) Bytes() []byte {
	return w.data[:w.pos]
}

func (w *Writer) grow(atLeast int) {
	newSize := len(w.data) * 2
	if w.pos+atLeast > newSize {
		newSize = w.pos + atLeast
	}

	newBuf := make([]byte, newSize)
	copy(newBuf, w.data[:w.pos])
	w.data = newBuf
}

func (w *Writer) reserve(n int) {
	if w.pos+n > len(w.data) {
		w.grow(n)
	}
}

func (w *Writer) PutU8(v uint8) {
	w.reserve(1)
	w.data[w.pos] = v
	w.pos++
}

func (w *Writer) PutU16(v uint16) {
	w.reserve(2)
	w.order.PutUint16(w.data[w.pos:], v)
	w.pos += 2
}

func (w *Writer) PutU32(v uint32) {
	w.reserve(4)
	w.order.PutUint32(w.data[w.pos:], v)
	w.pos += 4
}

func (w *Writer) PutU64(v uint64) {
	w.reserve(8)
	w.order.PutUint64(w.data[w.pos:], v)
	w.pos += 8
}

func (w *Writer) PutI64(v int64) {
	w.PutU64(uint64(v))
}

func (w *Writer) PutF64(v float64) {
	w.PutU64(math.Float64bits(v))
}

func (w *Writer) PutBool(v bool) {
	if v {
		w.PutU8(1)
	} else {
		w.PutU8(0)
	}
}

func (w *Writer) PutBytes(p []byte) {
	w.reserve(len(p))
	copy(w.data[w.pos:], p)
	w.pos += len(p)
}

// PutString frames a string as u32 length + raw bytes.
func (w *Writer) PutString(s string) {
	w.PutU32(uint32(len(s)))
	w.PutBytes([]byte(s))
}

func (w *Writer) PutUUID(u uuid.UUID) {
	w.PutBytes(u[:])
}
