package bits

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/google/uuid"
)

var (
	ErrEOF          = errors.New("end of file")
	ErrReadMismatch = errors.New("read size mismatch")
)

const readBufferSize = 16

// Reader decodes values written by Writer from an io.Reader.
type Reader struct {
	readBuffer [readBufferSize]byte

	buf   io.Reader
	order binary.ByteOrder
}

func NewReader(buf io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{buf: buf, order: order}
}

func (r *Reader) fill(size int) error {
	n, err := io.ReadFull(r.buf, r.readBuffer[:size])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrEOF
		}
		return err
	}
	if n != size {
		return ErrReadMismatch
	}
	return nil
}

func (r *Reader) ReadU8() (uint8, error) {
	if err := r.fill(1); err != nil {
		return 0, err
	}
	return r.readBuffer[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	if err := r.fill(2); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.readBuffer[:2]), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if err := r.fill(4); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.readBuffer[:4]), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if err := r.fill(8); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.readBuffer[:8]), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	return v != 0, err
}

func (r *Reader) ReadBytes(n int, out []byte) error {
	read, err := io.ReadFull(r.buf, out[:n])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrEOF
		}
		return err
	}
	if read != n {
		return ErrReadMismatch
	}
	return nil
}

// ReadString decodes a u32 length + raw bytes frame.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	out := make([]byte, n)
	if err := r.ReadBytes(int(n), out); err != nil {
		return "", err
	}
	return string(out), nil
}

func (r *Reader) ReadUUID() (result uuid.UUID, err error) {
	err = r.ReadBytes(16, result[:])
	return result, err
}
