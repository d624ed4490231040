package xstruct

import (
	"github.com/remotex-labs/xStruct-sub000/codec"
	"github.com/remotex-labs/xStruct-sub000/internal/accessor"
	"github.com/remotex-labs/xStruct-sub000/internal/schema"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// Union is a compiled, immutable overlay of fields sharing byte offset 0:
// size is the widest member's footprint, Encode writes whichever member is
// present first in declaration order, and Decode populates every member's
// view of the same bytes.
type Union struct {
	members []schema.Descriptor
	size    int
	acc     accessor.Accessor
}

// NewUnion compiles entries as Union members. Each member must have a
// static byte footprint: a length-prefixed or null-terminated string
// member, or a nested struct containing one, fails with a SchemaError.
func NewUnion(entries ...Entry) (*Union, error) {
	members := make([]schema.Descriptor, 0, len(entries))
	size := 0
	for _, e := range entries {
		compiled, err := schema.Compile([]Entry{e})
		if err != nil {
			return nil, err
		}
		d := compiled.Fields[0]
		if !schema.IsStatic(d) {
			return nil, xerrors.Schemaf("union member %q: dynamic (non-static) fields are not allowed", d.Name)
		}
		if footprint := d.Size * d.Count(); footprint > size {
			size = footprint
		}
		members = append(members, d)
	}
	return &Union{members: members, size: size, acc: accessor.Default}, nil
}

// MustNewUnion is NewUnion, panicking instead of returning an error.
func MustNewUnion(entries ...Entry) *Union {
	u, err := NewUnion(entries...)
	if err != nil {
		panic(err)
	}
	return u
}

// Size returns the widest member's byte footprint, 0 for a Union with no
// members.
func (u *Union) Size() int {
	return u.size
}

// Describe returns the compiled member list for introspection, each member
// positioned at offset 0.
func (u *Union) Describe() []FieldInfo {
	return describeFields(u.members)
}

// Encode writes whichever member of value is present first in declaration
// order into a freshly allocated buffer, and additionally returns that
// member's name so callers can tell which branch was taken -- "" if every
// member was absent or nil.
func (u *Union) Encode(value map[string]any) ([]byte, string, error) {
	buf := make([]byte, u.size)
	for _, d := range u.members {
		v, present := value[d.Name]
		if !present || v == nil {
			continue
		}
		newBuf, _, err := codec.EncodeField(buf, d, 0, v, u.acc)
		if err != nil {
			return nil, "", err
		}
		return newBuf, d.Name, nil
	}
	return buf, "", nil
}

// Decode reads buf once per member, returning every member's view of the
// same underlying bytes keyed by name. If sink is given, it is invoked
// with size -- a Union's members are always static, so there is never any
// dynamic growth to add.
func (u *Union) Decode(buf []byte, sink ...func(int)) (map[string]any, error) {
	if len(buf) < u.size {
		return nil, xerrors.Rangef("buffer of %d bytes is shorter than union size %d", len(buf), u.size)
	}
	result := make(map[string]any, len(u.members))
	for _, d := range u.members {
		v, _, err := codec.DecodeField(buf, d, 0, u.acc)
		if err != nil {
			return nil, err
		}
		result[d.Name] = v
	}
	for _, f := range sink {
		f(u.size)
	}
	return result, nil
}
