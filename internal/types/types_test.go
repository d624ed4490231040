package types

import "testing"

func TestLookupKnownNames(t *testing.T) {
	tests := []struct {
		name      string
		bits      int
		signed    bool
		bigEndian bool
		bigInt    bool
		float     bool
	}{
		{"Int8", 8, true, false, false, false},
		{"UInt8", 8, false, false, false, false},
		{"Int16LE", 16, true, false, false, false},
		{"UInt16BE", 16, false, true, false, false},
		{"Int64LE", 64, true, false, true, false},
		{"UInt64BE", 64, false, true, true, false},
		{"FloatLE", 32, false, false, false, true},
		{"DoubleBE", 64, false, true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !IsKnown(tt.name) {
				t.Fatalf("IsKnown(%q) = false, want true", tt.name)
			}
			if got := WidthBits(tt.name); got != tt.bits {
				t.Errorf("WidthBits(%q) = %d, want %d", tt.name, got, tt.bits)
			}
			if got := WidthBytes(tt.name); got != tt.bits/8 {
				t.Errorf("WidthBytes(%q) = %d, want %d", tt.name, got, tt.bits/8)
			}
			if got := IsSigned(tt.name); got != tt.signed {
				t.Errorf("IsSigned(%q) = %v, want %v", tt.name, got, tt.signed)
			}
			if got := IsBigEndian(tt.name); got != tt.bigEndian {
				t.Errorf("IsBigEndian(%q) = %v, want %v", tt.name, got, tt.bigEndian)
			}
			if got := IsBigIntTyped(tt.name); got != tt.bigInt {
				t.Errorf("IsBigIntTyped(%q) = %v, want %v", tt.name, got, tt.bigInt)
			}
			if got := IsFloat(tt.name); got != tt.float {
				t.Errorf("IsFloat(%q) = %v, want %v", tt.name, got, tt.float)
			}
			if tt.float == IsInteger(tt.name) {
				t.Errorf("IsInteger(%q) = %v, IsFloat = %v: expected exactly one", tt.name, IsInteger(tt.name), tt.float)
			}
		})
	}
}

func TestUnknownName(t *testing.T) {
	if IsKnown("NotAType") {
		t.Fatalf("IsKnown(%q) = true, want false", "NotAType")
	}
	if WidthBits("NotAType") != 0 {
		t.Fatalf("WidthBits of unknown type should be 0")
	}
}
