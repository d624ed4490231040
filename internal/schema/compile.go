package schema

import "github.com/remotex-labs/xStruct-sub000/internal/types"

// accumulator tracks the partial bitfield run while walking entries in
// declaration order.
type accumulator struct {
	bytes    int
	bits     int
	hostBits int
	hostType string
}

// flush closes out any open bitfield run, advancing bytes by the host
// word's width.
func (a *accumulator) flush() {
	if a.bits > 0 {
		a.bytes += a.hostBits / 8
		a.bits = 0
		a.hostType = ""
		a.hostBits = 0
	}
}

// Compile walks entries in declaration order, producing an ordered,
// immutable list of positioned descriptors and the schema's total static
// size.
func Compile(entries []Entry) (*Compiled, error) {
	var acc accumulator
	fields := make([]Descriptor, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if _, dup := seen[e.Name]; dup {
			return nil, duplicateField(e.Name)
		}
		seen[e.Name] = struct{}{}

		p, err := parseEntry(e)
		if err != nil {
			return nil, err
		}
		if err := validateArraySize(p.name, p.arraySize); err != nil {
			return nil, err
		}

		var d Descriptor
		switch p.kind {
		case KindBitfield:
			d, err = placeBitfield(&acc, p)
		default:
			acc.flush()
			switch p.kind {
			case KindPrimitive:
				d, err = placePrimitive(&acc, p)
			case KindString:
				d, err = placeString(&acc, p)
			case KindStruct:
				d, err = placeStruct(&acc, p)
			}
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, d)
	}
	acc.flush()

	return &Compiled{Fields: fields, Size: acc.bytes}, nil
}

func placePrimitive(acc *accumulator, p parsed) (Descriptor, error) {
	size := types.WidthBytes(p.typeName)
	d := Descriptor{
		Name:      p.name,
		Kind:      KindPrimitive,
		Position:  acc.bytes,
		Type:      p.typeName,
		Size:      size,
		ArraySize: p.arraySize,
	}
	acc.bytes += size * d.Count()
	return d, nil
}

func placeBitfield(acc *accumulator, p parsed) (Descriptor, error) {
	hostBits := types.WidthBits(p.typeName)
	if hostBits > 32 {
		return Descriptor{}, unsupportedHostWidth(p.typeName)
	}
	if p.bitSize <= 0 {
		return Descriptor{}, schemaBitSize(p.name, p.bitSize)
	}

	overflow := acc.bits+p.bitSize > hostBits
	hostChanged := acc.hostType != "" && acc.hostType != p.typeName
	hostSizeChanged := acc.hostBits != 0 && acc.hostBits != hostBits
	if acc.bits > 0 && (overflow || hostChanged || hostSizeChanged) {
		acc.flush()
	}

	if p.bitSize > hostBits {
		return Descriptor{}, schemaBitRange(p.name, p.bitSize, hostBits)
	}

	d := Descriptor{
		Name:        p.name,
		Kind:        KindBitfield,
		Position:    acc.bytes,
		Type:        p.typeName,
		Size:        hostBits / 8,
		BitSize:     p.bitSize,
		BitPosition: acc.bits,
		HostBigEnd:  types.IsBigEndian(p.typeName),
	}

	acc.bits += p.bitSize
	acc.hostType = p.typeName
	acc.hostBits = hostBits

	return d, nil
}

func placeString(acc *accumulator, p parsed) (Descriptor, error) {
	d := Descriptor{
		Name:      p.name,
		Kind:      KindString,
		Position:  acc.bytes,
		Type:      p.encoding,
		Encoding:  p.encoding,
		ArraySize: p.arraySize,
		Mode:      p.mode,
	}

	switch p.mode {
	case StringFixed:
		d.Size = p.fixedSize
	case StringLengthPrefixed:
		if types.IsBigIntTyped(p.prefixType) {
			return Descriptor{}, unsupportedPrefixType(p.name, p.prefixType)
		}
		d.Size = types.WidthBytes(p.prefixType)
		d.PrefixType = p.prefixType
	case StringNullTerminated:
		d.Size = 0
		d.MaxLength = p.maxLength
	}

	acc.bytes += d.Size * d.Count()
	return d, nil
}

func placeStruct(acc *accumulator, p parsed) (Descriptor, error) {
	d := Descriptor{
		Name:      p.name,
		Kind:      KindStruct,
		Position:  acc.bytes,
		Size:      p.nested.StaticSize(),
		ArraySize: p.arraySize,
		Nested:    p.nested,
	}
	acc.bytes += d.Size * d.Count()
	return d, nil
}

// IsStatic reports whether d has a byte span fully determined at compile
// time: no length-prefix, no null-terminator, and (recursively, for a
// nested struct) no dynamic string anywhere inside. Union enforces this on
// every member.
func IsStatic(d Descriptor) bool {
	switch d.Kind {
	case KindString:
		return d.Mode == StringFixed
	case KindStruct:
		for _, f := range d.Nested.Fields {
			if !IsStatic(f) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
