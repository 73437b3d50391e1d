package sealbox

import (
	"encoding/base64"
	"unicode/utf8"
)

// UTF8ToBytes encodes text as UTF-8 bytes. Go strings are already UTF-8
// encoded, so this is a copy; it exists as the inverse of BytesToUTF8.
func UTF8ToBytes(text string) []byte {
	return []byte(text)
}

// BytesToUTF8 decodes UTF-8 bytes to text. Input that is not well-formed
// UTF-8 is rejected with ErrInvalidInput before any text is produced;
// malformed sequences are never silently replaced.
func BytesToUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidInput
	}
	return string(data), nil
}

// ConcatBytes returns a new buffer holding a followed by b. The result is
// independently owned: mutating it, a, or b afterwards does not affect the
// others. Either operand may be empty or nil.
func ConcatBytes(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// ToBase64 encodes bytes to standard base64 with padding (RFC 4648 §4).
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard padded base64 to bytes. Characters outside
// the alphabet or invalid padding fail with ErrInvalidEncoding.
func FromBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &EncodingError{Encoding: "base64", Err: err}
	}
	return data, nil
}

// ToBase64URL encodes bytes to URL-safe base64 without padding (RFC 4648 §5).
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes unpadded URL-safe base64 to bytes. The padding
// length is implied by the input length mod 4; characters outside the
// alphabet fail with ErrInvalidEncoding.
func FromBase64URL(s string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, &EncodingError{Encoding: "base64url", Err: err}
	}
	return data, nil
}
