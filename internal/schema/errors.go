package schema

import "github.com/remotex-labs/xStruct-sub000/xerrors"

func unsupportedHostWidth(typeName string) error {
	return xerrors.Schemaf("%s is not supported yet", typeName)
}

func duplicateField(name string) error {
	return xerrors.Schemaf("field %q is declared more than once", name)
}

func schemaBitSize(name string, bitSize int) error {
	return xerrors.Schemaf("field %q: bitSize must be >= 1, got %d", name, bitSize)
}

func schemaBitRange(name string, bitSize, hostBits int) error {
	return xerrors.Schemaf("field %q: bitSize %d exceeds host width %d", name, bitSize, hostBits)
}

func unsupportedPrefixType(name, prefixType string) error {
	return xerrors.Unsupportedf("field %q: lengthType %q is a 64-bit big-integer type, which is not supported for length prefixes", name, prefixType)
}
