package codec

import (
	"github.com/remotex-labs/xStruct-sub000/internal/accessor"
	"github.com/remotex-labs/xStruct-sub000/internal/schema"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// EncodeStruct delegates to the inner schema's encoder, copies its buffer
// at pos, and folds any dynamic growth the inner encode produced into the
// outer growth counter. Arrays iterate at a stride of the nominal (static)
// nested size, same as EncodeString.
func EncodeStruct(buf []byte, d schema.Descriptor, pos int, value any, acc accessor.Accessor) ([]byte, int, error) {
	count := d.Count()
	grown := 0
	for i := 0; i < count; i++ {
		elem := elementAt(value, i)
		m, err := structValue(d.Name, elem)
		if err != nil {
			return nil, 0, err
		}
		elemPos := pos + i*d.Size + grown

		nestedBuf, nestedGrowth, err := EncodeFields(d.Nested, m, acc)
		if err != nil {
			return nil, 0, err
		}
		copy(buf[elemPos:elemPos+d.Size], nestedBuf[:d.Size])
		if nestedGrowth > 0 {
			buf = splice(buf, elemPos+d.Size, nestedBuf[d.Size:])
			grown += nestedGrowth
		}
	}
	return buf, grown, nil
}

// DecodeStruct implements the Nested Struct Codec's read side: invoke the
// inner decoder on the subslice starting at pos, and fold the bytes it
// reports consuming beyond its static size into the outer growth counter.
func DecodeStruct(buf []byte, d schema.Descriptor, pos int, acc accessor.Accessor) (any, int, error) {
	count := d.Count()
	grown := 0
	results := make([]any, count)
	for i := 0; i < count; i++ {
		elemPos := pos + i*d.Size + grown
		if elemPos > len(buf) {
			return nil, 0, xerrors.Rangef("field %q: buffer too short for nested struct", d.Name)
		}
		values, g, err := DecodeFields(d.Nested, buf[elemPos:], acc)
		if err != nil {
			return nil, 0, err
		}
		results[i] = values
		grown += g
	}
	if d.ArraySize <= 0 {
		return results[0], grown, nil
	}
	out := make([]any, count)
	copy(out, results)
	return out, grown, nil
}

func structValue(name string, v any) (map[string]any, error) {
	switch m := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	default:
		return nil, xerrors.TypeMismatchf("field %q: expected a mapping, got %T", name, v)
	}
}
