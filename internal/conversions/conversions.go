// Package conversions holds the unsafe, zero-copy conversions between
// string and []byte that the string codec's utf8 encode path uses to avoid
// an extra allocation per field.
package conversions

import "unsafe"

// BytesToString views b as a string without copying. The caller must not
// mutate b after this call.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes views s as a []byte without copying. The returned slice
// must not be mutated.
func StringToBytes(s string) []byte {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
