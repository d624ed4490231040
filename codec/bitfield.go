package codec

import (
	"github.com/remotex-labs/xStruct-sub000/internal/accessor"
	"github.com/remotex-labs/xStruct-sub000/internal/bitops"
	"github.com/remotex-labs/xStruct-sub000/internal/schema"
	"github.com/remotex-labs/xStruct-sub000/internal/types"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// validateBitfield re-checks the bit-range bounds at read/write time, even
// though the schema compiler already enforces the same bounds at
// construction: a Descriptor built any other way than through
// schema.Compile would otherwise slip past the one-time check.
func validateBitfield(d schema.Descriptor, forWrite bool) error {
	hostBits := types.WidthBits(d.Type)
	if hostBits > 32 {
		op := "for read operation"
		if forWrite {
			op = "for write operation"
		}
		return xerrors.Schemaf("%s is not supported yet (%s)", d.Type, op)
	}
	if d.BitPosition < 0 || d.BitSize < 1 || d.BitPosition+d.BitSize > hostBits {
		op := "for read operation"
		if forWrite {
			op = "for write operation"
		}
		return xerrors.Schemaf("field %q: invalid bit range [%d, %d) in %d-bit host %s", d.Name, d.BitPosition, d.BitPosition+d.BitSize, hostBits, op)
	}
	return nil
}

// DecodeBitfield reads the host word unsigned, slices out the field's
// bits, and sign extends if the declared host type is signed.
func DecodeBitfield(buf []byte, d schema.Descriptor, pos int, acc accessor.Accessor) (any, error) {
	if err := validateBitfield(d, false); err != nil {
		return nil, err
	}
	if pos+d.Size > len(buf) {
		return nil, xerrors.Rangef("field %q: buffer too short to decode bitfield host", d.Name)
	}
	host := acc.ReadUint(buf, d.Type, pos)
	raw := bitops.Extract(host, d.BitPosition, d.BitSize)
	if types.IsSigned(d.Type) {
		return bitops.SignExtend(raw, d.BitSize), nil
	}
	return raw, nil
}

// EncodeBitfield range-checks the supplied value against the field's
// signed/unsigned bit width, then read-modify-writes the host word.
func EncodeBitfield(buf []byte, d schema.Descriptor, pos int, value any, acc accessor.Accessor) error {
	if err := validateBitfield(d, true); err != nil {
		return err
	}

	signed := types.IsSigned(d.Type)
	iv, err := bitfieldValue(value)
	if err != nil {
		return xerrors.TypeMismatchf("field %q: %v", d.Name, err)
	}

	var min, max int64
	if signed {
		min, max = bitops.SignedRange(d.BitSize)
	} else {
		min, max = bitops.UnsignedRange(d.BitSize)
	}
	if iv < min || iv > max {
		return xerrors.Rangef("field %q: value %d out of range [%d, %d]", d.Name, iv, min, max)
	}

	host := acc.ReadUint(buf, d.Type, pos)
	host = bitops.Insert(host, iv, d.BitPosition, d.BitSize)
	return acc.WriteUint(buf, d.Type, pos, host)
}

func bitfieldValue(value any) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	default:
		return 0, xerrors.TypeMismatchf("expected an integer value, got %T", value)
	}
}
