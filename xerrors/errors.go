// Package xerrors provides xStruct's error taxonomy: SchemaError,
// TypeMismatch, RangeError, and Unsupported, each wrapped with
// github.com/pkg/errors so a stack trace and Cause() chain survive from
// the point of failure up through the Struct/Union facade.
package xerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind names one of the four error categories.
type Kind uint8

const (
	// KindUnknown is never constructed by this package; it exists so the
	// zero value of Kind is distinguishable from a real error kind.
	KindUnknown Kind = iota
	KindSchemaError
	KindTypeMismatch
	KindRangeError
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindSchemaError:
		return "SchemaError"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindRangeError:
		return "RangeError"
	case KindUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Error is xStruct's concrete error type. It carries a Kind so callers can
// branch with errors.Is/As or the Is* helpers below, and wraps the
// underlying message with github.com/pkg/errors for stack context.
type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string { return e.err.Error() }

// Unwrap allows errors.Is/errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Kind returns the error's taxonomy kind.
func (e *Error) Kind() Kind { return e.kind }

func newf(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, err: errors.New(fmt.Sprintf(format, args...))}
}

// Schemaf builds a SchemaError: raised by the schema compiler and the
// Union member validator for malformed or unsupported declarations.
func Schemaf(format string, args ...any) *Error {
	return newf(KindSchemaError, format, args...)
}

// TypeMismatchf builds a TypeMismatch: raised by facades and codecs when a
// value's Go type doesn't match what the field requires.
func TypeMismatchf(format string, args ...any) *Error {
	return newf(KindTypeMismatch, format, args...)
}

// Rangef builds a RangeError: raised by the primitive, bitfield, and string
// codecs for out-of-range values or undersized buffers.
func Rangef(format string, args ...any) *Error {
	return newf(KindRangeError, format, args...)
}

// Unsupportedf builds an Unsupported error: raised for declarations the
// wire format has no representation for, such as a 64-bit length-prefix
// type.
func Unsupportedf(format string, args ...any) *Error {
	return newf(KindUnsupported, format, args...)
}

// Wrapf annotates err with additional context (typically the field name an
// operation was working on) without changing its Kind: Is/As still see the
// original *Error through the github.com/pkg/errors chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// Is reports whether err is an *Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}

// IsSchemaError reports whether err is a SchemaError.
func IsSchemaError(err error) bool { return Is(err, KindSchemaError) }

// IsTypeMismatch reports whether err is a TypeMismatch.
func IsTypeMismatch(err error) bool { return Is(err, KindTypeMismatch) }

// IsRangeError reports whether err is a RangeError.
func IsRangeError(err error) bool { return Is(err, KindRangeError) }

// IsUnsupported reports whether err is an Unsupported error.
func IsUnsupported(err error) bool { return Is(err, KindUnsupported) }
