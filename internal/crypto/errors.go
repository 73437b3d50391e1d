package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidTagSize is returned when the authentication tag size is
	// outside the range supported by AES-GCM.
	ErrInvalidTagSize = errors.New("invalid tag size")

	// ErrDecryptionFailed is returned when decryption fails. The cause is
	// deliberately not reported: a wrong key, wrong nonce, wrong associated
	// data, mismatched tag size, and tampered ciphertext all produce this
	// same error.
	ErrDecryptionFailed = errors.New("decryption failed")
)
