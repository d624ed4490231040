package codec

import (
	"reflect"

	"github.com/remotex-labs/xStruct-sub000/internal/accessor"
	"github.com/remotex-labs/xStruct-sub000/internal/schema"
	"github.com/remotex-labs/xStruct-sub000/internal/types"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// EncodePrimitive writes a single value or an array of values of a
// registry-known primitive type, zero-filling missing array entries and
// truncating extras.
func EncodePrimitive(buf []byte, d schema.Descriptor, pos int, value any, acc accessor.Accessor) error {
	count := d.Count()
	for i := 0; i < count; i++ {
		elem := elementAt(value, i)
		if err := encodePrimitiveElement(buf, pos+i*d.Size, d.Type, elem, acc); err != nil {
			// Keep the codec's error kind (TypeMismatch vs RangeError)
			// intact; only add the field context.
			return xerrors.Wrapf(err, "field %q[%d]", d.Name, i)
		}
	}
	return nil
}

// DecodePrimitive reads a single value or an array of values. A scalar
// field (ArraySize==0) returns a single typed value; an array field always
// returns a []any of count typed values.
func DecodePrimitive(buf []byte, d schema.Descriptor, pos int, acc accessor.Accessor) (any, error) {
	if pos+d.Size*d.Count() > len(buf) {
		return nil, xerrors.Rangef("field %q: buffer too short to decode", d.Name)
	}
	if d.ArraySize <= 0 {
		return decodePrimitiveElement(buf, pos, d.Type, acc), nil
	}
	out := make([]any, d.Count())
	for i := range out {
		out[i] = decodePrimitiveElement(buf, pos+i*d.Size, d.Type, acc)
	}
	return out, nil
}

func encodePrimitiveElement(buf []byte, pos int, typeName string, value any, acc accessor.Accessor) error {
	if types.IsFloat(typeName) {
		f, ok := toFloat64(value)
		if !ok {
			if value == nil {
				f = 0
			} else {
				return xerrors.TypeMismatchf("expected a float value for %s, got %T", typeName, value)
			}
		}
		if types.WidthBits(typeName) == 32 {
			return acc.WriteFloat32(buf, typeName, pos, float32(f))
		}
		return acc.WriteFloat64(buf, typeName, pos, f)
	}

	bigInt := types.IsBigIntTyped(typeName)
	if types.IsSigned(typeName) {
		iv, err := toInt64(value, bigInt)
		if err != nil {
			return err
		}
		return acc.WriteInt(buf, typeName, pos, iv)
	}
	uv, err := toUint64(value, bigInt)
	if err != nil {
		return err
	}
	return acc.WriteUint(buf, typeName, pos, uv)
}

func decodePrimitiveElement(buf []byte, pos int, typeName string, acc accessor.Accessor) any {
	if types.IsFloat(typeName) {
		if types.WidthBits(typeName) == 32 {
			return acc.ReadFloat32(buf, typeName, pos)
		}
		return acc.ReadFloat64(buf, typeName, pos)
	}
	signed := types.IsSigned(typeName)
	bits := types.WidthBits(typeName)
	if signed {
		v := acc.ReadInt(buf, typeName, pos)
		switch bits {
		case 8:
			return int8(v)
		case 16:
			return int16(v)
		case 32:
			return int32(v)
		default:
			return v // int64
		}
	}
	v := acc.ReadUint(buf, typeName, pos)
	switch bits {
	case 8:
		return uint8(v)
	case 16:
		return uint16(v)
	case 32:
		return uint32(v)
	default:
		return v // uint64
	}
}

// toFloat64 accepts any Go numeric type as the value for a Float/Double
// field; unlike the int discipline below, floating point fields carry no
// big-integer distinction, so no width-based rejection applies here.
func toFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

// toInt64 enforces the big-integer boundary: a 64-bit field (bigInt==true)
// must receive a Go int64/uint64, and any other integer field must not
// receive one. int64/uint64 are the designated big-integer carrier types,
// so the distinction survives round trips through map[string]any.
func toInt64(value any, bigInt bool) (int64, error) {
	if value == nil {
		return 0, nil
	}
	switch v := value.(type) {
	case int64:
		if !bigInt {
			return 0, xerrors.TypeMismatchf("non-64-bit field given a big-integer (int64) value")
		}
		return v, nil
	case uint64:
		if !bigInt {
			return 0, xerrors.TypeMismatchf("non-64-bit field given a big-integer (uint64) value")
		}
		return int64(v), nil
	}
	if bigInt {
		return 0, xerrors.TypeMismatchf("64-bit field requires a big-integer (int64/uint64) value, got %T", value)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(rv.Float()), nil
	default:
		return 0, xerrors.TypeMismatchf("expected an integer value, got %T", value)
	}
}

func toUint64(value any, bigInt bool) (uint64, error) {
	if value == nil {
		return 0, nil
	}
	switch v := value.(type) {
	case uint64:
		if !bigInt {
			return 0, xerrors.TypeMismatchf("non-64-bit field given a big-integer (uint64) value")
		}
		return v, nil
	case int64:
		if !bigInt {
			return 0, xerrors.TypeMismatchf("non-64-bit field given a big-integer (int64) value")
		}
		return uint64(v), nil
	}
	if bigInt {
		return 0, xerrors.TypeMismatchf("64-bit field requires a big-integer (int64/uint64) value, got %T", value)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return rv.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return uint64(rv.Int()), nil
	case reflect.Float32, reflect.Float64:
		return uint64(rv.Float()), nil
	default:
		return 0, xerrors.TypeMismatchf("expected an integer value, got %T", value)
	}
}
