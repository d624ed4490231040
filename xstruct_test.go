package xstruct

import (
	"bytes"
	"testing"
)

func TestStructEncodeDecodeDNSLikeHeader(t *testing.T) {
	s, err := New(
		Entry{Name: "QR", Decl: "UInt16LE:1"},
		Entry{Name: "Opcode", Decl: "UInt16LE:4"},
		Entry{Name: "AA", Decl: "UInt16LE:1"},
		Entry{Name: "TC", Decl: "UInt16LE:1"},
		Entry{Name: "RD", Decl: "UInt16LE:1"},
		Entry{Name: "RA", Decl: "UInt16LE:1"},
		Entry{Name: "Z", Decl: "UInt16LE:3"},
		Entry{Name: "RCODE", Decl: "UInt16LE:4"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}

	buf, err := s.Encode(map[string]any{
		"QR": 1, "Opcode": 0, "AA": 1, "TC": 0, "RD": 1, "RA": 1, "Z": 0, "RCODE": 0,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(buf, []byte{0x8D, 0x01}) {
		t.Fatalf("buf = % x, want 8d 01", buf)
	}

	if _, err := s.Decode(buf); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestStructDescribe(t *testing.T) {
	s := MustNewStruct(
		Entry{Name: "a", Decl: "UInt8"},
		Entry{Name: "b", Decl: "UInt32BE"},
	)
	fields := s.Describe()
	if len(fields) != 2 {
		t.Fatalf("Describe() has %d fields, want 2", len(fields))
	}
	if fields[0].Name != "a" || fields[1].Name != "b" {
		t.Fatalf("Describe() order = %+v, want [a b]", fields)
	}
	if fields[1].Position != 1 {
		t.Fatalf("b.Position = %d, want 1", fields[1].Position)
	}
}

func TestMustNewStructPanicsOnSchemaError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNewStruct did not panic on an invalid declaration")
		}
	}()
	MustNewStruct(Entry{Name: "f", Decl: "UInt64LE:4"})
}

func TestDecodeSinkReportsConsumedBytes(t *testing.T) {
	s := MustNewStruct(Entry{Name: "name", Decl: PrefixedString("utf8", "UInt16LE")})
	buf, err := s.Encode(map[string]any{"name": "Alice"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var consumed int
	if _, err := s.Decode(buf, func(n int) { consumed = n }); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if consumed != 7 {
		t.Fatalf("sink reported %d, want 7", consumed)
	}
}

func TestDecodeSinkNotInvokedOnFailure(t *testing.T) {
	s := MustNewStruct(Entry{Name: "a", Decl: "UInt32LE"})
	called := false
	if _, err := s.Decode([]byte{0x01}, func(int) { called = true }); err == nil {
		t.Fatalf("Decode on a too-short buffer should fail")
	}
	if called {
		t.Fatalf("sink was invoked despite decode failure")
	}
}

func TestNestedStructFacade(t *testing.T) {
	inner := MustNewStruct(
		Entry{Name: "x", Decl: "UInt8"},
		Entry{Name: "y", Decl: "UInt16LE"},
	)
	outer := MustNewStruct(
		Entry{Name: "a", Decl: "UInt8"},
		Entry{Name: "inner", Decl: Nested(inner)},
		Entry{Name: "b", Decl: "UInt32BE"},
	)
	buf, err := outer.Encode(map[string]any{
		"a":     42,
		"inner": map[string]any{"x": 7, "y": 258},
		"b":     16909060,
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(buf, []byte{42, 7, 0x02, 0x01, 0x01, 0x02, 0x03, 0x04}) {
		t.Fatalf("buf = % x", buf)
	}
}
