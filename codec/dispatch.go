package codec

import (
	"github.com/remotex-labs/xStruct-sub000/internal/accessor"
	"github.com/remotex-labs/xStruct-sub000/internal/schema"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

type encodeFunc func(buf []byte, d schema.Descriptor, pos int, value any, acc accessor.Accessor) ([]byte, int, error)
type decodeFunc func(buf []byte, d schema.Descriptor, pos int, acc accessor.Accessor) (any, int, error)

// wrapStaticEncode adapts a static-size codec (primitive, bitfield -- never
// dynamic, always grown==0) to the growth-reporting encodeFunc shape every
// Kind dispatches through.
func wrapStaticEncode(f func([]byte, schema.Descriptor, int, any, accessor.Accessor) error) encodeFunc {
	return func(buf []byte, d schema.Descriptor, pos int, value any, acc accessor.Accessor) ([]byte, int, error) {
		if err := f(buf, d, pos, value, acc); err != nil {
			return nil, 0, err
		}
		return buf, 0, nil
	}
}

func wrapStaticDecode(f func([]byte, schema.Descriptor, int, accessor.Accessor) (any, error)) decodeFunc {
	return func(buf []byte, d schema.Descriptor, pos int, acc accessor.Accessor) (any, int, error) {
		v, err := f(buf, d, pos, acc)
		if err != nil {
			return nil, 0, err
		}
		return v, 0, nil
	}
}

// encodeTable and decodeTable are built once and indexed directly by
// schema.Kind, keeping per-field dispatch to a single array load.
var encodeTable [schema.KindStruct + 1]encodeFunc

var decodeTable [schema.KindStruct + 1]decodeFunc

func init() {
	encodeTable = [...]encodeFunc{
		schema.KindPrimitive: wrapStaticEncode(EncodePrimitive),
		schema.KindBitfield:  wrapStaticEncode(EncodeBitfield),
		schema.KindString:    EncodeString,
		schema.KindStruct:    EncodeStruct,
	}

	decodeTable = [...]decodeFunc{
		schema.KindPrimitive: wrapStaticDecode(DecodePrimitive),
		schema.KindBitfield:  wrapStaticDecode(DecodeBitfield),
		schema.KindString:    DecodeString,
		schema.KindStruct:    DecodeStruct,
	}
}

// EncodeField dispatches d to its codec by Kind and returns the (possibly
// grown) buffer plus the number of dynamic bytes the field consumed beyond
// its static footprint.
func EncodeField(buf []byte, d schema.Descriptor, pos int, value any, acc accessor.Accessor) ([]byte, int, error) {
	return encodeTable[d.Kind](buf, d, pos, value, acc)
}

// DecodeField dispatches d to its codec by Kind and returns the decoded
// value plus dynamic growth, mirroring EncodeField.
func DecodeField(buf []byte, d schema.Descriptor, pos int, acc accessor.Accessor) (any, int, error) {
	return decodeTable[d.Kind](buf, d, pos, acc)
}

// EncodeFields runs the whole-schema encode loop: allocate a zero buffer
// of the static size, then dispatch each descriptor in declaration order,
// threading the cumulative dynamic-offset counter through as each field's
// actual position. It is shared by the top-level Struct facade and by
// EncodeStruct's nested-field recursion, so a nested schema's dynamic
// strings are handled identically to a top-level one's.
func EncodeFields(compiled *schema.Compiled, values map[string]any, acc accessor.Accessor) ([]byte, int, error) {
	buf := make([]byte, compiled.Size)
	cursor := 0
	for _, d := range compiled.Fields {
		pos := d.Position + cursor
		newBuf, grown, err := EncodeField(buf, d, pos, values[d.Name], acc)
		if err != nil {
			return nil, 0, err
		}
		buf = newBuf
		cursor += grown
	}
	return buf, cursor, nil
}

// DecodeFields runs the whole-schema decode loop, mirroring EncodeFields'
// position bookkeeping.
func DecodeFields(compiled *schema.Compiled, buf []byte, acc accessor.Accessor) (map[string]any, int, error) {
	if len(buf) < compiled.Size {
		return nil, 0, xerrors.Rangef("buffer of %d bytes is shorter than schema size %d", len(buf), compiled.Size)
	}
	values := make(map[string]any, len(compiled.Fields))
	cursor := 0
	for _, d := range compiled.Fields {
		pos := d.Position + cursor
		v, grown, err := DecodeField(buf, d, pos, acc)
		if err != nil {
			return nil, 0, err
		}
		values[d.Name] = v
		cursor += grown
	}
	return values, cursor, nil
}
