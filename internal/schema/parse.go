package schema

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/remotex-labs/xStruct-sub000/internal/types"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// Entry is one named field declaration as handed to Compile, in
// declaration order. Decl holds exactly one of: a shorthand string
// (primitive, bitfield, or string notation), a StringDecl or BitfieldDecl
// object, or a NestedDecl (a compiled inner schema, optionally arrayed).
type Entry struct {
	Name string
	Decl any
}

// StringDecl is the object form of a string field declaration. Build one
// with FixedString, PrefixedString, or NullTerminatedString rather than
// the zero value, so Mode is never ambiguous with an unset field.
type StringDecl struct {
	Enc        string
	Mode       StringMode
	Size       int    // fixed-size byte width; meaningful when Mode==StringFixed
	LengthType string // prefix integer type name; meaningful when Mode==StringLengthPrefixed
	MaxLength  int    // optional scan cap; meaningful when Mode==StringNullTerminated
	ArraySize  int
}

// FixedString declares a fixed-size string field occupying exactly size
// bytes.
func FixedString(enc string, size int) StringDecl {
	return StringDecl{Enc: enc, Mode: StringFixed, Size: size}
}

// PrefixedString declares a length-prefixed string field whose prefix is
// an unsigned integer of the named type. lengthType == "" selects the
// default of UInt16LE.
func PrefixedString(enc, lengthType string) StringDecl {
	return StringDecl{Enc: enc, Mode: StringLengthPrefixed, LengthType: lengthType}
}

// NullTerminatedString declares a null-terminated string field.
// maxLength == 0 means the terminator scan is unbounded.
func NullTerminatedString(enc string, maxLength int) StringDecl {
	return StringDecl{Enc: enc, Mode: StringNullTerminated, MaxLength: maxLength}
}

// Array returns a copy of d declared as an array of n elements.
func (d StringDecl) Array(n int) StringDecl {
	d.ArraySize = n
	return d
}

// BitfieldDecl is the object form of a bitfield declaration: a host integer
// type name plus the bit width the field occupies inside it. Equivalent to
// the "<Type>:<bits>" shorthand.
type BitfieldDecl struct {
	Type string
	Bits int
}

// Bitfield declares a bitfield of bits wide inside the named host integer.
func Bitfield(hostType string, bits int) BitfieldDecl {
	return BitfieldDecl{Type: hostType, Bits: bits}
}

// NestedDecl wraps a compiled inner schema as a field declaration,
// optionally as an array of n elements.
type NestedDecl struct {
	Schema    *Compiled
	ArraySize int
}

// Nested declares a single nested-struct field.
func Nested(inner *Compiled) NestedDecl {
	return NestedDecl{Schema: inner}
}

// NestedArray declares an array of n nested-struct elements.
func NestedArray(inner *Compiled, n int) NestedDecl {
	return NestedDecl{Schema: inner, ArraySize: n}
}

var (
	primitiveShorthand = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)(?:\[(\d+)\])?$`)
	stringShorthand    = regexp.MustCompile(`(?i)^(utf8|ascii|string)(?:\((\d+)\))?(?:\[(\d+)\])?$`)
)

// parsed is the pre-layout result of parsing one Entry: everything about the
// field except its Position/BitPosition, which the layout walk in compile.go
// assigns.
type parsed struct {
	name      string
	kind      Kind
	typeName  string // primitive/host type name
	arraySize int

	bitSize int

	mode       StringMode
	prefixType string
	maxLength  int
	encoding   string
	fixedSize  int

	nested *Compiled
}

// parseEntry dispatches an Entry to the primitive, bitfield, string, or
// nested-struct parser.
func parseEntry(e Entry) (parsed, error) {
	switch decl := e.Decl.(type) {
	case string:
		return parseStringLike(e.Name, decl)
	case StringDecl:
		return parseStringDecl(e.Name, decl)
	case BitfieldDecl:
		return parseBitfieldDecl(e.Name, decl)
	case NestedDecl:
		return parseNested(e.Name, decl)
	case *Compiled:
		return parseNested(e.Name, NestedDecl{Schema: decl})
	default:
		return parsed{}, xerrors.Schemaf("field %q: unrecognized declaration type %T", e.Name, e.Decl)
	}
}

// parseStringLike handles the three shorthand notations: bitfield
// ("<type>:<bits>"), string shorthand, and primitive shorthand, in that
// precedence order.
func parseStringLike(name, decl string) (parsed, error) {
	if strings.Contains(decl, ":") {
		return parseBitfieldShorthand(name, decl)
	}
	if m := stringShorthand.FindStringSubmatch(decl); m != nil {
		enc := strings.ToLower(m[1])
		if enc == "string" {
			enc = "utf8"
		}
		p := parsed{name: name, kind: KindString, encoding: enc, mode: StringLengthPrefixed, prefixType: "UInt16LE"}
		if m[2] != "" {
			size, _ := strconv.Atoi(m[2])
			p.mode = StringFixed
			p.fixedSize = size
			p.prefixType = ""
		}
		if m[3] != "" {
			n, _ := strconv.Atoi(m[3])
			p.arraySize = n
		}
		return p, nil
	}
	return parsePrimitiveShorthand(name, decl)
}

func parseBitfieldShorthand(name, decl string) (parsed, error) {
	idx := strings.LastIndex(decl, ":")
	hostType := decl[:idx]
	bitsStr := decl[idx+1:]
	bits, err := strconv.Atoi(bitsStr)
	if err != nil {
		return parsed{}, xerrors.Schemaf("field %q: malformed bitfield shorthand %q", name, decl)
	}
	if !types.IsKnown(hostType) {
		return parsed{}, xerrors.Schemaf("field %q: unknown host type %q", name, hostType)
	}
	if !types.IsInteger(hostType) {
		return parsed{}, xerrors.Schemaf("field %q: bitfield host %q must be an integer primitive", name, hostType)
	}
	return parsed{name: name, kind: KindBitfield, typeName: hostType, bitSize: bits}, nil
}

func parseBitfieldDecl(name string, d BitfieldDecl) (parsed, error) {
	if !types.IsKnown(d.Type) {
		return parsed{}, xerrors.Schemaf("field %q: unknown host type %q", name, d.Type)
	}
	if !types.IsInteger(d.Type) {
		return parsed{}, xerrors.Schemaf("field %q: bitfield host %q must be an integer primitive", name, d.Type)
	}
	return parsed{name: name, kind: KindBitfield, typeName: d.Type, bitSize: d.Bits}, nil
}

func parsePrimitiveShorthand(name, decl string) (parsed, error) {
	m := primitiveShorthand.FindStringSubmatch(decl)
	if m == nil {
		return parsed{}, xerrors.Schemaf("field %q: malformed primitive shorthand %q", name, decl)
	}
	typeName := m[1]
	if !types.IsKnown(typeName) {
		return parsed{}, xerrors.Schemaf("field %q: unknown primitive type %q", name, typeName)
	}
	p := parsed{name: name, kind: KindPrimitive, typeName: typeName}
	if m[2] != "" {
		n, _ := strconv.Atoi(m[2])
		p.arraySize = n
	}
	return p, nil
}

// parseStringDecl handles the object form of a string declaration. Since
// StringDecl is constructed through FixedString/PrefixedString/
// NullTerminatedString, Mode is always explicit -- there is no "none of
// the three set" ambiguity to default here (the default-to-length-prefixed
// rule only applies to the bare shorthand token, handled in
// parseStringLike).
func parseStringDecl(name string, d StringDecl) (parsed, error) {
	enc, ok := normalizeEncoding(d.Enc)
	if !ok {
		return parsed{}, xerrors.Schemaf("field %q: unknown string encoding %q", name, d.Enc)
	}
	p := parsed{name: name, kind: KindString, encoding: enc, mode: d.Mode, arraySize: d.ArraySize}
	switch d.Mode {
	case StringFixed:
		if d.Size < 0 {
			return parsed{}, xerrors.Schemaf("field %q: fixed string size must be >= 0", name)
		}
		p.fixedSize = d.Size
	case StringLengthPrefixed:
		lt := d.LengthType
		if lt == "" {
			lt = "UInt16LE"
		}
		if !types.IsKnown(lt) || !types.IsInteger(lt) {
			return parsed{}, xerrors.Schemaf("field %q: lengthType %q is not an unsigned integer primitive", name, lt)
		}
		if types.IsSigned(lt) {
			return parsed{}, xerrors.Schemaf("field %q: lengthType %q must be unsigned", name, lt)
		}
		p.prefixType = lt
	case StringNullTerminated:
		p.maxLength = d.MaxLength
	default:
		return parsed{}, xerrors.Schemaf("field %q: invalid string mode", name)
	}
	return p, nil
}

func normalizeEncoding(enc string) (string, bool) {
	switch strings.ToLower(enc) {
	case "utf8", "string":
		return "utf8", true
	case "ascii":
		return "ascii", true
	default:
		return "", false
	}
}

func parseNested(name string, d NestedDecl) (parsed, error) {
	if d.Schema == nil {
		return parsed{}, xerrors.Schemaf("field %q: nested schema is nil", name)
	}
	return parsed{name: name, kind: KindStruct, nested: d.Schema, arraySize: d.ArraySize}, nil
}

// arraySizeLimit caps declared array sizes at 2^53-1; Go's int is 64-bit
// on all supported platforms, so this is checked explicitly rather than
// relying on overflow.
const arraySizeLimit = int64(1) << 53

func validateArraySize(name string, n int) error {
	if int64(n) >= arraySizeLimit {
		return xerrors.Schemaf("field %q: arraySize %d exceeds the maximum", name, n)
	}
	if n < 0 {
		return xerrors.Schemaf("field %q: arraySize must be >= 0", name)
	}
	return nil
}
