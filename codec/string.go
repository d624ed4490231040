package codec

import (
	"github.com/remotex-labs/xStruct-sub000/internal/accessor"
	"github.com/remotex-labs/xStruct-sub000/internal/schema"
	"github.com/remotex-labs/xStruct-sub000/internal/transcode"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// EncodeString writes all three string wire shapes, looping K times for an
// array field at strides of d.Size bytes from pos. Each iteration may
// splice extra bytes into buf for the dynamic variants; growth accumulates
// across elements the same way it accumulates across fields, since a later
// array element's true position also shifts by earlier elements' growth.
func EncodeString(buf []byte, d schema.Descriptor, pos int, value any, acc accessor.Accessor) ([]byte, int, error) {
	enc, ok := transcode.Resolve(d.Encoding)
	if !ok {
		return nil, 0, xerrors.Schemaf("field %q: unknown string encoding %q", d.Name, d.Encoding)
	}

	count := d.Count()
	grown := 0
	for i := 0; i < count; i++ {
		elem := elementAt(value, i)
		s, err := stringValue(d.Name, elem)
		if err != nil {
			return nil, 0, err
		}
		elemPos := pos + i*d.Size + grown
		newBuf, g, err := encodeStringElement(buf, enc, d, elemPos, s, acc)
		if err != nil {
			return nil, 0, err
		}
		buf = newBuf
		grown += g
	}
	return buf, grown, nil
}

// DecodeString implements the String Codec's read side, mirroring
// EncodeString's stride/growth bookkeeping.
func DecodeString(buf []byte, d schema.Descriptor, pos int, acc accessor.Accessor) (any, int, error) {
	enc, ok := transcode.Resolve(d.Encoding)
	if !ok {
		return nil, 0, xerrors.Schemaf("field %q: unknown string encoding %q", d.Name, d.Encoding)
	}

	count := d.Count()
	grown := 0
	out := make([]string, count)
	for i := 0; i < count; i++ {
		elemPos := pos + i*d.Size + grown
		s, g, err := decodeStringElement(buf, enc, d, elemPos, acc)
		if err != nil {
			return nil, 0, err
		}
		out[i] = s
		grown += g
	}
	if d.ArraySize <= 0 {
		return out[0], grown, nil
	}
	result := make([]any, count)
	for i, s := range out {
		result[i] = s
	}
	return result, grown, nil
}

func stringValue(name string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	default:
		return "", xerrors.TypeMismatchf("field %q: expected a string value, got %T", name, v)
	}
}

func encodeStringElement(buf []byte, enc transcode.Encoding, d schema.Descriptor, pos int, s string, acc accessor.Accessor) ([]byte, int, error) {
	payload, err := transcode.Encode(enc, s)
	if err != nil {
		return nil, 0, err
	}

	switch d.Mode {
	case schema.StringFixed:
		n := copy(buf[pos:pos+d.Size], payload)
		for i := pos + n; i < pos+d.Size; i++ {
			buf[i] = 0
		}
		return buf, 0, nil

	case schema.StringLengthPrefixed:
		l := len(payload)
		if err := acc.WriteUint(buf, d.PrefixType, pos, uint64(l)); err != nil {
			return nil, 0, err
		}
		out := splice(buf, pos+d.Size, payload)
		return out, l, nil

	case schema.StringNullTerminated:
		wire := payload
		if len(wire) == 0 || wire[len(wire)-1] != 0x00 {
			wire = append(append([]byte{}, payload...), 0x00)
		}
		out := splice(buf, pos, wire)
		return out, len(wire), nil

	default:
		return nil, 0, xerrors.Schemaf("field %q: unknown string mode", d.Name)
	}
}

func decodeStringElement(buf []byte, enc transcode.Encoding, d schema.Descriptor, pos int, acc accessor.Accessor) (string, int, error) {
	switch d.Mode {
	case schema.StringFixed:
		if pos+d.Size > len(buf) {
			return "", 0, xerrors.Rangef("field %q: buffer too short for fixed string", d.Name)
		}
		s, err := transcode.Decode(enc, buf[pos:pos+d.Size])
		return s, 0, err

	case schema.StringLengthPrefixed:
		if pos+d.Size > len(buf) {
			return "", 0, xerrors.Rangef("field %q: buffer too short for string length prefix", d.Name)
		}
		l := acc.ReadUint(buf, d.PrefixType, pos)
		start := pos + d.Size
		end := start + int(l)
		if end > len(buf) {
			return "", 0, xerrors.Rangef("field %q: length-prefixed string of %d bytes exceeds buffer", d.Name, l)
		}
		s, err := transcode.Decode(enc, buf[start:end])
		return s, int(l), err

	case schema.StringNullTerminated:
		bounded := d.MaxLength > 0
		limit := len(buf)
		if bounded && pos+d.MaxLength < limit {
			limit = pos + d.MaxLength
		}
		i := pos
		for i < limit && buf[i] != 0x00 {
			i++
		}
		if i >= limit {
			// Reaching the end of an unbounded scan without a terminator is
			// not itself an error: the remaining bytes are the string. Only
			// an explicit maxLength exceeded without finding the terminator
			// fails.
			if bounded {
				return "", 0, xerrors.Rangef("field %q: null-terminated string missing terminator within maxLength %d", d.Name, d.MaxLength)
			}
			s, err := transcode.Decode(enc, buf[pos:i])
			return s, i - pos, err
		}
		s, err := transcode.Decode(enc, buf[pos:i])
		return s, i + 1 - pos, err

	default:
		return "", 0, xerrors.Schemaf("field %q: unknown string mode", d.Name)
	}
}

// splice inserts payload into buf starting at "at", shifting everything
// from "at" onward forward by len(payload), and returns the grown buffer.
// One allocation and one copy per dynamic field; a doubling scratch writer
// would amortize better if dynamic-heavy schemas ever show up in profiles.
func splice(buf []byte, at int, payload []byte) []byte {
	out := make([]byte, len(buf)+len(payload))
	copy(out, buf[:at])
	copy(out[at:], payload)
	copy(out[at+len(payload):], buf[at:])
	return out
}
