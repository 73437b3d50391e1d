package sealbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrInvalidKeyLength is returned when imported key material is not
	// exactly KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidIVLength is returned when an initialization vector is not
	// exactly IVSize bytes.
	ErrInvalidIVLength = errors.New("invalid IV length")

	// ErrInvalidTagLength is returned when a tag length is not one of
	// TagLengths.
	ErrInvalidTagLength = errors.New("invalid tag length")

	// ErrAuthenticationFailed is returned when decryption fails. A wrong
	// key, wrong IV, wrong associated data, mismatched tag length, and
	// tampered ciphertext all produce this single error; the cause is
	// deliberately indistinguishable. Never retry Decrypt with the same
	// inputs after this error.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidEncoding is returned when Base64, Base64URL, or token text
	// cannot be decoded.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidInput is returned when BytesToUTF8 is given a byte sequence
	// that is not well-formed UTF-8.
	ErrInvalidInput = errors.New("invalid input")
)

// KeyLengthError reports the length of rejected key material.
type KeyLengthError struct {
	Got int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("invalid key length: got %d bytes, want %d", e.Got, KeySize)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// IVLengthError reports the length of a rejected initialization vector.
type IVLengthError struct {
	Got int
}

func (e *IVLengthError) Error() string {
	return fmt.Sprintf("invalid IV length: got %d bytes, want %d", e.Got, IVSize)
}

// Is implements errors.Is for sentinel error matching.
func (e *IVLengthError) Is(target error) bool {
	return target == ErrInvalidIVLength
}

// TagLengthError reports a rejected authentication tag length.
type TagLengthError struct {
	Got int
}

func (e *TagLengthError) Error() string {
	return fmt.Sprintf("invalid tag length: got %d bits, want one of %v", e.Got, TagLengths)
}

// Is implements errors.Is for sentinel error matching.
func (e *TagLengthError) Is(target error) bool {
	return target == ErrInvalidTagLength
}

// EncodingError reports a failure to decode text input.
type EncodingError struct {
	Encoding string // "base64", "base64url", or "token"
	Err      error
}

func (e *EncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s encoding: %v", e.Encoding, e.Err)
	}
	return fmt.Sprintf("invalid %s encoding", e.Encoding)
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}
