// Package xstruct implements a declarative binary-struct codec: a schema is
// compiled once from an ordered list of field declarations, and the
// resulting Struct/Union value then encodes and decodes buffers against
// that fixed layout with no further parsing.
//
// The division of responsibility: this package is the public facade,
// internal/schema compiles declarations into positioned descriptors, and
// codec performs the per-kind reads and writes.
package xstruct

import (
	"github.com/remotex-labs/xStruct-sub000/codec"
	"github.com/remotex-labs/xStruct-sub000/internal/accessor"
	"github.com/remotex-labs/xStruct-sub000/internal/schema"
)

// Entry re-exports internal/schema.Entry, the unit of a field declaration
// passed to New in declaration order.
type Entry = schema.Entry

// StringDecl re-exports internal/schema.StringDecl, along with its
// constructors FixedString, PrefixedString, and NullTerminatedString.
type StringDecl = schema.StringDecl

// BitfieldDecl re-exports internal/schema.BitfieldDecl, the object form of
// the "<Type>:<bits>" bitfield shorthand.
type BitfieldDecl = schema.BitfieldDecl

var (
	FixedString          = schema.FixedString
	PrefixedString       = schema.PrefixedString
	NullTerminatedString = schema.NullTerminatedString
	Bitfield             = schema.Bitfield
)

// Nested declares a single nested-struct field whose layout is an
// already-compiled Struct. Nesting a *Struct rather than a raw compiled
// schema avoids exposing internal/schema outside this package.
func Nested(inner *Struct) schema.NestedDecl {
	return schema.Nested(inner.compiled)
}

// NestedArray declares an array of n nested-struct elements, each sharing
// inner's layout.
func NestedArray(inner *Struct, n int) schema.NestedDecl {
	return schema.NestedArray(inner.compiled, n)
}

// FieldInfo is the read-only introspection view Describe returns for one
// compiled field.
type FieldInfo struct {
	Name     string
	Kind     string
	Position int
	Size     int
}

func describeFields(fields []schema.Descriptor) []FieldInfo {
	out := make([]FieldInfo, len(fields))
	for i, d := range fields {
		out[i] = FieldInfo{Name: d.Name, Kind: d.Kind.String(), Position: d.Position, Size: d.Size}
	}
	return out
}

// Struct is a compiled, immutable binary layout: declare once, compile
// once, then encode/decode any number of times. The zero value is not
// usable; build one with New or MustNewStruct.
type Struct struct {
	compiled *schema.Compiled
	acc      accessor.Accessor
}

// New compiles entries into a Struct, or returns the SchemaError the
// compiler raised.
func New(entries ...Entry) (*Struct, error) {
	compiled, err := schema.Compile(entries)
	if err != nil {
		return nil, err
	}
	return &Struct{compiled: compiled, acc: accessor.Default}, nil
}

// MustNewStruct is New, panicking instead of returning an error. Intended
// for package-level variable initialization.
func MustNewStruct(entries ...Entry) *Struct {
	s, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// Size returns the schema's static byte footprint, not counting any
// dynamic growth a particular value's length-prefixed or null-terminated
// strings may add.
func (s *Struct) Size() int {
	return s.compiled.Size
}

// Describe returns the compiled field list for introspection. The returned
// slice is a fresh copy; mutating it has no effect on s.
func (s *Struct) Describe() []FieldInfo {
	return describeFields(s.compiled.Fields)
}

// Encode writes value's fields into a freshly allocated buffer following
// the compiled layout. value may omit any field name, in which case that
// field encodes its zero value.
func (s *Struct) Encode(value map[string]any) ([]byte, error) {
	buf, _, err := codec.EncodeFields(s.compiled, value, s.acc)
	return buf, err
}

// Decode reads buf according to the compiled layout, returning a map keyed
// by field name. buf must be at least Size() bytes;
// it may be longer, since dynamic fields are resolved from their own
// length/terminator rather than buf's length. If sink is given, it is
// invoked with the total consumed byte count (static size + dynamic
// growth) after every field decodes successfully; it is not called if
// decoding fails.
func (s *Struct) Decode(buf []byte, sink ...func(int)) (map[string]any, error) {
	values, grown, err := codec.DecodeFields(s.compiled, buf, s.acc)
	if err != nil {
		return nil, err
	}
	for _, f := range sink {
		f(s.compiled.Size + grown)
	}
	return values, nil
}
