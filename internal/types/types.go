// Package types holds the static, immutable mapping from primitive type
// names to their wire properties: bit width, signedness, endianness, and
// whether the Go value that travels through the codec is a plain number or
// a 64-bit big-integer type. It is keyed by the wire-format name strings
// the schema compiler parses (UInt16LE, DoubleBE, ...), since those names
// are part of the schema notation itself.
package types

import "strings"

// Class classifies the three families of primitive a name can resolve to.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassInt
	ClassFloat
)

// Info describes one primitive type name.
type Info struct {
	Name        string
	Bits        int
	Class       Class
	Signed      bool
	BigEndian   bool
	BigIntTyped bool // true for Int64/UInt64: the wire value is a 64-bit integer
}

func (i Info) Bytes() int { return i.Bits / 8 }

// registry is built once at init and never mutated afterward, so lookups
// need no locking.
var registry = buildRegistry()

func buildRegistry() map[string]Info {
	m := make(map[string]Info, 24)
	add := func(name string, bits int, class Class, signed, be bool) {
		m[name] = Info{
			Name:        name,
			Bits:        bits,
			Class:       class,
			Signed:      signed,
			BigEndian:   be,
			BigIntTyped: bits == 64 && class == ClassInt,
		}
	}

	add("Int8", 8, ClassInt, true, false)
	add("UInt8", 8, ClassInt, false, false)

	for _, be := range []bool{false, true} {
		suffix := "LE"
		if be {
			suffix = "BE"
		}
		add("Int16"+suffix, 16, ClassInt, true, be)
		add("UInt16"+suffix, 16, ClassInt, false, be)
		add("Int32"+suffix, 32, ClassInt, true, be)
		add("UInt32"+suffix, 32, ClassInt, false, be)
		add("Int64"+suffix, 64, ClassInt, true, be)
		add("UInt64"+suffix, 64, ClassInt, false, be)
		// Floats are not "signed" in the registry sense: signedness only
		// ever drives integer/bitfield handling, and the name rule is
		// "signed iff the name begins with Int".
		add("Float"+suffix, 32, ClassFloat, false, be)
		add("Double"+suffix, 64, ClassFloat, false, be)
	}

	return m
}

// Lookup returns the Info for a primitive name and whether it is known.
func Lookup(name string) (Info, bool) {
	i, ok := registry[name]
	return i, ok
}

// IsKnown reports whether name is a registered primitive.
func IsKnown(name string) bool {
	_, ok := registry[name]
	return ok
}

// WidthBits returns the bit width of name, or 0 if unknown.
func WidthBits(name string) int {
	return registry[name].Bits
}

// WidthBytes returns the byte width of name, or 0 if unknown.
func WidthBytes(name string) int {
	return registry[name].Bits / 8
}

// IsSigned reports whether name is a signed integer primitive: true iff
// the name begins with "Int" (not "UInt", not "Float"/"Double").
func IsSigned(name string) bool {
	return registry[name].Signed
}

// IsBigEndian reports whether name declares big-endian byte order.
func IsBigEndian(name string) bool {
	return strings.HasSuffix(name, "BE")
}

// IsBigIntTyped reports whether name is a 64-bit integer primitive, whose
// values travel through the codec as int64/uint64 rather than a plain
// number.
func IsBigIntTyped(name string) bool {
	return registry[name].BigIntTyped
}

// IsFloat reports whether name is one of the Float/Double primitives.
func IsFloat(name string) bool {
	return registry[name].Class == ClassFloat
}

// IsInteger reports whether name is one of the Int/UInt primitives.
func IsInteger(name string) bool {
	return registry[name].Class == ClassInt
}
