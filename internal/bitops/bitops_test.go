package bitops

import "testing"

func TestExtractInsertRoundTrip(t *testing.T) {
	var host uint16 = 0
	host = Insert(host, 5, 0, 3)
	host = Insert(host, 1, 3, 1)
	host = Insert(host, 240, 4, 12)

	if got := Extract(host, 0, 3); got != 5 {
		t.Errorf("Extract(0,3) = %d, want 5", got)
	}
	if got := Extract(host, 3, 1); got != 1 {
		t.Errorf("Extract(3,1) = %d, want 1", got)
	}
	if got := Extract(host, 4, 12); got != 240 {
		t.Errorf("Extract(4,12) = %d, want 240", got)
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		raw     uint64
		bitSize int
		want    int64
	}{
		{0x0F, 4, -1},
		{0x07, 4, 7},
		{0x08, 4, -8},
		{0x00, 8, 0},
		{0xFF, 8, -1},
	}
	for _, tt := range tests {
		if got := SignExtend(tt.raw, tt.bitSize); got != tt.want {
			t.Errorf("SignExtend(%#x, %d) = %d, want %d", tt.raw, tt.bitSize, got, tt.want)
		}
	}
}

func TestInsertClearsPriorBits(t *testing.T) {
	var host uint8 = 0xFF
	host = Insert(host, 0, 0, 4)
	if got := Extract(host, 0, 4); got != 0 {
		t.Errorf("Extract after clearing insert = %d, want 0", got)
	}
	if got := Extract(host, 4, 4); got != 0x0F {
		t.Errorf("Extract of untouched high nibble = %#x, want 0xf", got)
	}
}

func TestSignedUnsignedRange(t *testing.T) {
	if min, max := SignedRange(4); min != -8 || max != 7 {
		t.Errorf("SignedRange(4) = [%d, %d], want [-8, 7]", min, max)
	}
	if min, max := UnsignedRange(4); min != 0 || max != 15 {
		t.Errorf("UnsignedRange(4) = [%d, %d], want [0, 15]", min, max)
	}
}

func TestMaskBounds(t *testing.T) {
	if Mask(0) != 0 {
		t.Errorf("Mask(0) = %d, want 0", Mask(0))
	}
	if Mask(32) != 0xFFFFFFFF {
		t.Errorf("Mask(32) = %#x, want 0xffffffff", Mask(32))
	}
}
