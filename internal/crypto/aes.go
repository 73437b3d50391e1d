package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// NewAESGCM constructs an AES-256-GCM instance keyed with key and producing
// authentication tags of tagSize bytes.
func NewAESGCM(key []byte, tagSize int) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if tagSize < MinTagSize || tagSize > MaxTagSize {
		return nil, fmt.Errorf("%w: got %d, want %d-%d", ErrInvalidTagSize, tagSize, MinTagSize, MaxTagSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithTagSize(block, tagSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}

// SealAESGCM encrypts plaintext using AES-256-GCM, binding aad into the
// authentication tag. The tag (tagSize bytes) is appended to the returned
// ciphertext. The result is freshly allocated and does not alias plaintext.
func SealAESGCM(key, nonce, plaintext, aad []byte, tagSize int) ([]byte, error) {
	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	gcm, err := NewAESGCM(key, tagSize)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, aad), nil
}

// OpenAESGCM decrypts and authenticates ciphertext produced by SealAESGCM.
// Any authentication failure is reported as ErrDecryptionFailed with no
// further detail.
func OpenAESGCM(key, nonce, ciphertext, aad []byte, tagSize int) ([]byte, error) {
	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	gcm, err := NewAESGCM(key, tagSize)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
