// Package bitops implements the bit-slice extraction and insertion that
// backs the bitfield codec: pulling a run of bits out of a host integer,
// inserting a value back into that run, and sign-extending a signed slice
// to the full working width. Host words are at most 32 bits wide.
package bitops

import "golang.org/x/exp/constraints"

// maskTable precomputes Mask(n) for n in [0, 32], eliminating the need for
// any runtime memoization cache.
var maskTable = func() [33]uint64 {
	var t [33]uint64
	for n := 0; n <= 32; n++ {
		if n == 0 {
			t[n] = 0
			continue
		}
		t[n] = (uint64(1) << uint(n)) - 1
	}
	return t
}()

// Mask returns (1<<bits)-1 for bits in [0, 32]. Panics outside that range;
// callers must have already validated bitSize via the schema compiler.
func Mask(bits int) uint64 {
	if bits < 0 || bits > 32 {
		panic("bitops: Mask requires 0 <= bits <= 32")
	}
	return maskTable[bits]
}

// Extract pulls the bitSize-wide slice starting at bitPosition out of host,
// an unsigned integer of width hostBits read in the field's declared
// endianness. The result is an unsigned value in [0, 2^bitSize).
func Extract[U constraints.Unsigned](host U, bitPosition, bitSize int) uint64 {
	m := Mask(bitSize)
	return (uint64(host) >> uint(bitPosition)) & m
}

// SignExtend reinterprets the low bitSize bits of raw as a two's-complement
// signed integer and sign-extends it to a full int64.
func SignExtend(raw uint64, bitSize int) int64 {
	signBit := uint64(1) << uint(bitSize-1)
	if raw&signBit != 0 {
		return int64(raw) - int64(uint64(1)<<uint(bitSize))
	}
	return int64(raw)
}

// Insert writes value (already range-checked by the caller) into the
// bitSize-wide slice of host starting at bitPosition, returning the updated
// host word. value is reduced to its low bitSize bits (two's-complement for
// negative values) before insertion.
func Insert[U constraints.Unsigned](host U, value int64, bitPosition, bitSize int) U {
	m := Mask(bitSize)
	reduced := uint64(value) & m
	cleared := uint64(host) &^ (m << uint(bitPosition))
	return U(cleared | (reduced << uint(bitPosition)))
}

// SignedRange returns the inclusive [min, max] range for a bitSize-wide
// signed field.
func SignedRange(bitSize int) (min, max int64) {
	half := int64(1) << uint(bitSize-1)
	return -half, half - 1
}

// UnsignedRange returns the inclusive [0, max] range for a bitSize-wide
// unsigned field.
func UnsignedRange(bitSize int) (min, max int64) {
	return 0, int64(Mask(bitSize))
}
