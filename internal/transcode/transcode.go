// Package transcode resolves a string field's declared encoding token and
// converts between that wire encoding and a Go string.
//
// utf8/string transcoding is the identity conversion string<->[]byte (Go
// strings are UTF-8 already). The encode direction uses the zero-copy view
// in internal/conversions; the decode direction copies, since decoded
// strings outlive the borrowed input buffer.
//
// ascii is carried through golang.org/x/text/encoding/charmap.ISO8859_1,
// the closest stock x/text codec to 7-bit ASCII (it maps bytes 0-255
// directly to code points U+0000-U+00FF, so round-tripping anything in the
// ASCII range 0-0x7F through it is lossless); the package additionally
// range-checks for bytes >=0x80 since x/text does not ship an
// encoding.Encoding that rejects the upper half, and "ascii" here is a
// 7-bit encoding, not ISO-8859-1's 8-bit one.
package transcode

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/remotex-labs/xStruct-sub000/internal/conversions"
	"github.com/remotex-labs/xStruct-sub000/xerrors"
)

// Encoding names one of the two recognized string encodings. The token
// "string" is an alias for UTF8.
type Encoding uint8

const (
	UTF8 Encoding = iota
	ASCII
)

// Resolve maps a declared encoding token (case-insensitive) to an Encoding.
func Resolve(token string) (Encoding, bool) {
	switch lower(token) {
	case "utf8", "string":
		return UTF8, true
	case "ascii":
		return ASCII, true
	default:
		return 0, false
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Encode transcodes s into its wire bytes for enc.
func Encode(enc Encoding, s string) ([]byte, error) {
	switch enc {
	case UTF8:
		return conversions.StringToBytes(s), nil
	case ASCII:
		for i := 0; i < len(s); i++ {
			if s[i] >= 0x80 {
				return nil, xerrors.TypeMismatchf("ascii string contains non-ASCII byte 0x%02x at index %d", s[i], i)
			}
		}
		out, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), conversions.StringToBytes(s))
		if err != nil {
			return nil, xerrors.TypeMismatchf("ascii encode: %v", err)
		}
		return out, nil
	default:
		panic("transcode: unknown encoding")
	}
}

// Decode transcodes wire bytes b back into a string for enc. The result is
// always a copy: the decode path must not retain a view of the caller's
// buffer past the call.
func Decode(enc Encoding, b []byte) (string, error) {
	switch enc {
	case UTF8:
		return string(b), nil
	case ASCII:
		for i, c := range b {
			if c >= 0x80 {
				return "", xerrors.TypeMismatchf("ascii string contains non-ASCII byte 0x%02x at index %d", c, i)
			}
		}
		out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
		if err != nil {
			return "", xerrors.TypeMismatchf("ascii decode: %v", err)
		}
		return string(out), nil
	default:
		panic("transcode: unknown encoding")
	}
}
