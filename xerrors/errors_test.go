package xerrors

import (
	"errors"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
	}{
		{Schemaf("bad schema"), KindSchemaError},
		{TypeMismatchf("bad type"), KindTypeMismatch},
		{Rangef("out of range"), KindRangeError},
		{Unsupportedf("not supported"), KindUnsupported},
	}
	for _, tt := range tests {
		if !Is(tt.err, tt.kind) {
			t.Errorf("Is(%v, %v) = false, want true", tt.err, tt.kind)
		}
		for _, other := range []Kind{KindSchemaError, KindTypeMismatch, KindRangeError, KindUnsupported} {
			if other != tt.kind && Is(tt.err, other) {
				t.Errorf("Is(%v, %v) = true, want false", tt.err, other)
			}
		}
	}
}

func TestWrapfPreservesKind(t *testing.T) {
	base := Rangef("value 300 out of range [0, 255] for UInt8")
	wrapped := Wrapf(base, "field %q[%d]", "v", 0)
	if !IsRangeError(wrapped) {
		t.Fatalf("wrapped error lost its RangeError kind: %v", wrapped)
	}
	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatalf("errors.As could not recover *Error from %v", wrapped)
	}
	if e.Kind() != KindRangeError {
		t.Fatalf("Kind() = %v, want RangeError", e.Kind())
	}
}

func TestWrapfNil(t *testing.T) {
	if Wrapf(nil, "context") != nil {
		t.Fatalf("Wrapf(nil) should return nil")
	}
}

func TestIsOnForeignError(t *testing.T) {
	if Is(errors.New("plain"), KindRangeError) {
		t.Fatalf("a plain error should not match any kind")
	}
}
