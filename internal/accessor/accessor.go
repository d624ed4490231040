// Package accessor implements the low-level, typed read/write of one
// primitive into a byte buffer at a given offset. It is an injected
// capability: the codecs hold an Accessor interface, and Default is the
// implementation they use unless a caller supplies their own.
//
// Each primitive name carries its own declared endianness (the LE/BE
// suffix), so Default dispatches on the name rather than hard-coding one
// byte order.
package accessor

import (
	"encoding/binary"
	"math"

	"github.com/remotex-labs/xStruct-sub000/internal/types"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// Accessor is the injected capability every codec reads and writes
// through. The Default value is stateless and safe for concurrent use.
type Accessor interface {
	ReadUint(buf []byte, name string, offset int) uint64
	ReadInt(buf []byte, name string, offset int) int64
	ReadFloat32(buf []byte, name string, offset int) float32
	ReadFloat64(buf []byte, name string, offset int) float64

	WriteUint(buf []byte, name string, offset int, v uint64) error
	WriteInt(buf []byte, name string, offset int, v int64) error
	WriteFloat32(buf []byte, name string, offset int, v float32) error
	WriteFloat64(buf []byte, name string, offset int, v float64) error
}

// Default is the stock Accessor backed by encoding/binary.
var Default Accessor = defaultAccessor{}

type defaultAccessor struct{}

func byteOrder(name string) binary.ByteOrder {
	if types.IsBigEndian(name) {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (defaultAccessor) ReadUint(buf []byte, name string, offset int) uint64 {
	bo := byteOrder(name)
	switch types.WidthBits(name) {
	case 8:
		return uint64(buf[offset])
	case 16:
		return uint64(bo.Uint16(buf[offset:]))
	case 32:
		return uint64(bo.Uint32(buf[offset:]))
	case 64:
		return bo.Uint64(buf[offset:])
	default:
		panic("accessor: unsupported width for " + name)
	}
}

func (a defaultAccessor) ReadInt(buf []byte, name string, offset int) int64 {
	u := a.ReadUint(buf, name, offset)
	switch types.WidthBits(name) {
	case 8:
		return int64(int8(u))
	case 16:
		return int64(int16(u))
	case 32:
		return int64(int32(u))
	default:
		return int64(u)
	}
}

func (defaultAccessor) ReadFloat32(buf []byte, name string, offset int) float32 {
	bits := byteOrder(name).Uint32(buf[offset:])
	return math.Float32frombits(bits)
}

func (defaultAccessor) ReadFloat64(buf []byte, name string, offset int) float64 {
	bits := byteOrder(name).Uint64(buf[offset:])
	return math.Float64frombits(bits)
}

// putRaw stores the low WidthBits(name) bits of v at offset in the declared
// byte order, with no range check: WriteUint and WriteInt validate first.
func putRaw(buf []byte, name string, offset int, v uint64) {
	bo := byteOrder(name)
	switch types.WidthBits(name) {
	case 8:
		buf[offset] = byte(v)
	case 16:
		bo.PutUint16(buf[offset:], uint16(v))
	case 32:
		bo.PutUint32(buf[offset:], uint32(v))
	case 64:
		bo.PutUint64(buf[offset:], v)
	default:
		panic("accessor: unsupported width for " + name)
	}
}

func (defaultAccessor) WriteUint(buf []byte, name string, offset int, v uint64) error {
	bits := types.WidthBits(name)
	if bits < 64 {
		max := (uint64(1) << uint(bits)) - 1
		if v > max {
			return xerrors.Rangef("value %d out of range [0, %d] for %s", v, max, name)
		}
	}
	putRaw(buf, name, offset, v)
	return nil
}

func (a defaultAccessor) WriteInt(buf []byte, name string, offset int, v int64) error {
	bits := types.WidthBits(name)
	if bits < 64 {
		half := int64(1) << uint(bits-1)
		if v < -half || v > half-1 {
			return xerrors.Rangef("value %d out of range [%d, %d] for %s", v, -half, half-1, name)
		}
	}
	// Negative values are stored as their width-truncated two's-complement
	// bit pattern, so a uint64 view of them must not trip the unsigned
	// range check above.
	putRaw(buf, name, offset, uint64(v))
	return nil
}

func (defaultAccessor) WriteFloat32(buf []byte, name string, offset int, v float32) error {
	byteOrder(name).PutUint32(buf[offset:], math.Float32bits(v))
	return nil
}

func (defaultAccessor) WriteFloat64(buf []byte, name string, offset int, v float64) error {
	byteOrder(name).PutUint64(buf[offset:], math.Float64bits(v))
	return nil
}
