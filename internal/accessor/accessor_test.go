package accessor

import "testing"

func TestReadWriteUintRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
	}{
		{"UInt8", 0xAB},
		{"UInt16LE", 0x1234},
		{"UInt16BE", 0x1234},
		{"UInt32LE", 0xDEADBEEF},
		{"UInt32BE", 0xDEADBEEF},
		{"UInt64LE", 0x0102030405060708},
		{"UInt64BE", 0x0102030405060708},
	}
	for _, tt := range tests {
		buf := make([]byte, 8)
		if err := Default.WriteUint(buf, tt.name, 0, tt.v); err != nil {
			t.Fatalf("WriteUint(%s): %v", tt.name, err)
		}
		if got := Default.ReadUint(buf, tt.name, 0); got != tt.v {
			t.Errorf("ReadUint(%s) = %#x, want %#x", tt.name, got, tt.v)
		}
	}
}

func TestEndiannessDiffers(t *testing.T) {
	le := make([]byte, 2)
	be := make([]byte, 2)
	_ = Default.WriteUint(le, "UInt16LE", 0, 0x1234)
	_ = Default.WriteUint(be, "UInt16BE", 0, 0x1234)
	if le[0] != 0x34 || le[1] != 0x12 {
		t.Errorf("UInt16LE bytes = %x, want [34 12]", le)
	}
	if be[0] != 0x12 || be[1] != 0x34 {
		t.Errorf("UInt16BE bytes = %x, want [12 34]", be)
	}
}

func TestWriteUintRangeCheck(t *testing.T) {
	buf := make([]byte, 1)
	if err := Default.WriteUint(buf, "UInt8", 0, 256); err == nil {
		t.Fatalf("WriteUint(UInt8, 256) expected a range error, got nil")
	}
}

func TestWriteIntRangeCheck(t *testing.T) {
	buf := make([]byte, 1)
	if err := Default.WriteInt(buf, "Int8", 0, 128); err == nil {
		t.Fatalf("WriteInt(Int8, 128) expected a range error, got nil")
	}
	if err := Default.WriteInt(buf, "Int8", 0, -129); err == nil {
		t.Fatalf("WriteInt(Int8, -129) expected a range error, got nil")
	}
	if err := Default.WriteInt(buf, "Int8", 0, -1); err != nil {
		t.Fatalf("WriteInt(Int8, -1): %v", err)
	}
	if got := Default.ReadInt(buf, "Int8", 0); got != -1 {
		t.Errorf("ReadInt(Int8) = %d, want -1", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	if err := Default.WriteFloat32(buf, "FloatLE", 0, 3.5); err != nil {
		t.Fatalf("WriteFloat32: %v", err)
	}
	if got := Default.ReadFloat32(buf, "FloatLE", 0); got != 3.5 {
		t.Errorf("ReadFloat32 = %v, want 3.5", got)
	}
	if err := Default.WriteFloat64(buf, "DoubleBE", 0, 2.25); err != nil {
		t.Fatalf("WriteFloat64: %v", err)
	}
	if got := Default.ReadFloat64(buf, "DoubleBE", 0); got != 2.25 {
		t.Errorf("ReadFloat64 = %v, want 2.25", got)
	}
}
