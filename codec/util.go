// Package codec implements the four per-kind field codecs (primitive,
// bitfield, string, nested struct) plus the dispatch table that routes a
// positioned descriptor to its codec.
//
// Dispatch is a function-pointer table indexed by schema.Kind, built once,
// instead of a type switch re-evaluated on every encode/decode call. Each
// codec function takes an explicit buffer+position argument pair rather
// than a bound receiver, so the same functions serve top-level structs,
// nested structs, and unions.
package codec

import "reflect"

// asSequence views v as an ordered sequence of elements, accepting any Go
// slice or array (not just []any), so callers that hand in a concretely
// typed slice (e.g. []int16) don't have to box every element themselves.
func asSequence(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if seq, ok := v.([]any); ok {
		return seq, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// elementAt returns the i-th element of a scalar-or-sequence value. A
// scalar contributes itself at index 0 and nil beyond that; a sequence
// shorter than requested contributes nil for missing entries; a sequence
// longer than requested is truncated by the caller never asking past the
// field's array size. Partial callers therefore never crash the encoder.
func elementAt(v any, i int) any {
	if seq, ok := asSequence(v); ok {
		if i < len(seq) {
			return seq[i]
		}
		return nil
	}
	if i == 0 {
		return v
	}
	return nil
}
