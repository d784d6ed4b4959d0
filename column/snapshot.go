package column

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"

	"github.com/dot5enko/column-engine/bits"
	"github.com/dot5enko/column-engine/compression"
	"github.com/dot5enko/column-engine/schema"
)

// Snapshot layout: a fixed header followed by the lz4-compressed
// variant payload. The target file is path + column name verbatim; the
// caller supplies a trailing separator if one is wanted.

var byteOrder = binary.LittleEndian

const (
	snapshotMagic   uint32 = 0x434f4c31 // "COL1"
	snapshotVersion uint8  = 1

	// magic + version + variant + attribute + uuid + raw payload size
	snapshotHeaderSize = 4 + 1 + 1 + 1 + 16 + 4
)

type variantTag uint8

const (
	variantMaterialized variantTag = iota + 1
	variantDictionary
	variantRLE
)

type snapshotHeader struct {
	Magic   uint32
	Version uint8
	Variant variantTag
	Attr    schema.AttributeType
	Uid     uuid.UUID
	RawSize uint32
}

func corruptPayload(name string, err error) error {
	if err == ErrCorruptSnapshot {
		return fmt.Errorf("%w: column `%s`", ErrCorruptSnapshot, name)
	}
	return fmt.Errorf("%w: column `%s`: %s", ErrCorruptSnapshot, name, err.Error())
}

func writeSnapshot(path, name string, uid uuid.UUID, variant variantTag, attr schema.AttributeType, payload []byte) error {
	var compressed bytes.Buffer
	if err := compression.CompressLz4(payload, &compressed); err != nil {
		return fmt.Errorf("unable to compress snapshot of column `%s`: %w", name, err)
	}

	w := bits.NewWriter(snapshotHeaderSize+compressed.Len(), byteOrder)
	w.PutU32(snapshotMagic)
	w.PutU8(snapshotVersion)
	w.PutU8(uint8(variant))
	w.PutU8(uint8(attr))
	w.PutUUID(uid)
	w.PutU32(uint32(len(payload)))
	w.PutBytes(compressed.Bytes())

	target := path + name
	if err := os.WriteFile(target, w.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to store column `%s` @ %s: %w", name, target, err)
	}

	tracef("stored column `%s`: %d raw bytes, %d on disk @ %s", name, len(payload), w.Position(), target)

	return nil
}

// readSnapshot opens, validates and inflates a snapshot, returning a
// reader positioned at the variant payload.
func readSnapshot(path, name string, wantVariant variantTag, wantAttr schema.AttributeType) (*bits.Reader, uuid.UUID, error) {
	target := path + name

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("unable to load column `%s` @ %s: %w", name, target, err)
	}
	if len(data) < snapshotHeaderSize {
		return nil, uuid.Nil, corruptPayload(name, ErrCorruptSnapshot)
	}

	r := bits.NewReader(bytes.NewReader(data), byteOrder)

	var header snapshotHeader
	header.Magic, _ = r.ReadU32()
	version, _ := r.ReadU8()
	variant, _ := r.ReadU8()
	attr, _ := r.ReadU8()
	header.Version = version
	header.Variant = variantTag(variant)
	header.Attr = schema.AttributeType(attr)
	header.Uid, _ = r.ReadUUID()
	header.RawSize, err = r.ReadU32()
	if err != nil {
		return nil, uuid.Nil, corruptPayload(name, err)
	}

	if Verbose {
		tracef("snapshot header @ %s: %s", target, spew.Sdump(header))
	}

	if header.Magic != snapshotMagic {
		return nil, uuid.Nil, fmt.Errorf("%w: column `%s`: bad magic %#x", ErrCorruptSnapshot, name, header.Magic)
	}
	if header.Version != snapshotVersion {
		return nil, uuid.Nil, fmt.Errorf("%w: column `%s`: unsupported version %d, supported: %d",
			ErrCorruptSnapshot, name, header.Version, snapshotVersion)
	}
	if header.Variant != wantVariant {
		return nil, uuid.Nil, fmt.Errorf("%w: column `%s`: snapshot holds variant %d, want %d",
			ErrCorruptSnapshot, name, header.Variant, wantVariant)
	}
	if header.Attr != wantAttr {
		return nil, uuid.Nil, fmt.Errorf("%w: snapshot of column `%s` holds %s values, want %s",
			schema.ErrTypeMismatch, name, header.Attr, wantAttr)
	}

	payload, err := compression.DecompressLz4(data[snapshotHeaderSize:], int(header.RawSize))
	if err != nil {
		return nil, uuid.Nil, corruptPayload(name, err)
	}
	if len(payload) != int(header.RawSize) {
		return nil, uuid.Nil, corruptPayload(name, ErrCorruptSnapshot)
	}

	return bits.NewReader(bytes.NewReader(payload), byteOrder), header.Uid, nil
}

func writeElem[T element](w *bits.Writer, v T) {
	switch value := any(v).(type) {
	case int64:
		w.PutI64(value)
	case float64:
		w.PutF64(value)
	case string:
		w.PutString(value)
	case bool:
		w.PutBool(value)
	}
}

func readElem[T element](r *bits.Reader) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int64:
		v, err := r.ReadI64()
		return any(v).(T), err
	case float64:
		v, err := r.ReadF64()
		return any(v).(T), err
	case string:
		v, err := r.ReadString()
		return any(v).(T), err
	case bool:
		v, err := r.ReadBool()
		return any(v).(T), err
	}
	panic("element type without attribute mapping")
}
