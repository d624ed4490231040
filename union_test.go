package xstruct

import (
	"bytes"
	"testing"
)

func TestUnionFloatIntOverlay(t *testing.T) {
	u, err := NewUnion(
		Entry{Name: "int", Decl: "UInt32LE"},
		Entry{Name: "float", Decl: "FloatLE"},
	)
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}
	buf, tag, err := u.Encode(map[string]any{"float": float32(5.0)})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if tag != "float" {
		t.Fatalf("tag = %q, want float", tag)
	}
	decoded, err := u.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := decoded["float"].(float32); got != 5.0 {
		t.Fatalf("decoded float = %v, want 5.0", got)
	}
}

func TestUnionFirstDeclaredWins(t *testing.T) {
	u, err := NewUnion(
		Entry{Name: "a", Decl: "UInt32LE"},
		Entry{Name: "b", Decl: "UInt32LE"},
	)
	if err != nil {
		t.Fatalf("NewUnion: %v", err)
	}

	buf, tag, err := u.Encode(map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if tag != "a" || !bytes.Equal(buf, []byte{0x01, 0x00, 0x00, 0x00}) {
		t.Fatalf("buf = % x tag = %q, want [01 00 00 00]/a", buf, tag)
	}

	buf, tag, err = u.Encode(map[string]any{"b": 99})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if tag != "b" || !bytes.Equal(buf, []byte{0x63, 0x00, 0x00, 0x00}) {
		t.Fatalf("buf = % x tag = %q, want [63 00 00 00]/b", buf, tag)
	}

	buf, tag, err = u.Encode(map[string]any{})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if tag != "" || !bytes.Equal(buf, []byte{0x00, 0x00, 0x00, 0x00}) {
		t.Fatalf("buf = % x tag = %q, want [00 00 00 00]/\"\"", buf, tag)
	}
}

func TestUnionRejectsDynamicStringMember(t *testing.T) {
	if _, err := NewUnion(Entry{Name: "s", Decl: "string"}); err == nil {
		t.Fatalf("NewUnion({s:'string'}) expected a SchemaError")
	}
	if _, err := NewUnion(Entry{Name: "s", Decl: "string(8)"}); err != nil {
		t.Fatalf("NewUnion({s:'string(8)'}) unexpected error: %v", err)
	}
}

func TestUnionDecodePopulatesEveryMember(t *testing.T) {
	u := MustNewUnion(
		Entry{Name: "a", Decl: "UInt16LE"},
		Entry{Name: "b", Decl: "UInt8"},
	)
	decoded, err := u.Decode([]byte{0x34, 0x12})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, ok := decoded["a"]; !ok {
		t.Errorf("decoded missing member a")
	}
	if _, ok := decoded["b"]; !ok {
		t.Errorf("decoded missing member b")
	}
}
