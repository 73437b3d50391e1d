package sealbox

import (
	"errors"
	"fmt"

	icrypto "github.com/sealbox/sealbox-go/internal/crypto"
)

// Cipher performs key admission and authenticated encryption backed by an
// injected Provider. It holds no per-call state: every operation is an
// independent transform, and a Cipher is safe for concurrent use.
type Cipher struct {
	provider Provider
}

// New creates a Cipher backed by the given Provider. A nil provider
// selects StdProvider.
func New(provider Provider) *Cipher {
	if provider == nil {
		provider = StdProvider()
	}
	return &Cipher{provider: provider}
}

// EncryptionResult carries the outcome of Encrypt. Both fields are freshly
// allocated and do not alias any caller buffer.
type EncryptionResult struct {
	// IV is the initialization vector used, whether caller-supplied or
	// generated. It is not secret and travels with the ciphertext.
	IV []byte
	// Ciphertext is the encrypted payload with the authentication tag
	// appended; its length is the plaintext length plus tagLength/8 bytes.
	Ciphertext []byte
}

// Encrypt encrypts plaintext under key using AES-256-GCM.
//
// Without WithIV, a fresh cryptographically random IVSize-byte nonce is
// generated per call. A caller-supplied IV MUST be unique for this key
// across the key's lifetime; the library validates length only and cannot
// detect reuse. Associated data given via WithAAD is authenticated but not
// encrypted and is not part of the result.
func (c *Cipher) Encrypt(key *Key, plaintext []byte, opts ...Option) (*EncryptionResult, error) {
	if key == nil {
		return nil, &KeyLengthError{Got: 0}
	}

	cfg := newCipherConfig(opts)
	if !validTagLength(cfg.tagLength) {
		return nil, &TagLengthError{Got: cfg.tagLength}
	}

	iv := make([]byte, IVSize)
	if cfg.iv != nil {
		if len(cfg.iv) != IVSize {
			return nil, &IVLengthError{Got: len(cfg.iv)}
		}
		copy(iv, cfg.iv)
	} else {
		if err := c.provider.ReadRandom(iv); err != nil {
			return nil, fmt.Errorf("generate iv: %w", err)
		}
	}

	aead, err := c.provider.NewAEAD(key.material, cfg.tagLength)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	ciphertext, err := aead.Seal(iv, plaintext, cfg.aad)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return &EncryptionResult{IV: iv, Ciphertext: ciphertext}, nil
}

// Decrypt authenticates and decrypts ciphertext produced by Encrypt. The
// associated data and tag length must exactly match the values used at
// encryption time.
//
// Decryption fails closed: a wrong key, wrong IV, wrong associated data,
// mismatched tag length, and any bit flip in the ciphertext all yield the
// same opaque ErrAuthenticationFailed, and no partial plaintext is ever
// returned. Do not retry with the same inputs after that error.
func (c *Cipher) Decrypt(key *Key, iv, ciphertext []byte, opts ...Option) ([]byte, error) {
	if key == nil {
		return nil, &KeyLengthError{Got: 0}
	}

	cfg := newCipherConfig(opts)
	if !validTagLength(cfg.tagLength) {
		return nil, &TagLengthError{Got: cfg.tagLength}
	}

	if len(iv) != IVSize {
		return nil, &IVLengthError{Got: len(iv)}
	}

	aead, err := c.provider.NewAEAD(key.material, cfg.tagLength)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	plaintext, err := aead.Open(iv, ciphertext, cfg.aad)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}

// wrapCryptoError converts internal crypto errors to public errors so that
// errors.Is() checks work against the package sentinels.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, icrypto.ErrInvalidKeySize):
		return fmt.Errorf("%w: %v", ErrInvalidKeyLength, err)
	case errors.Is(err, icrypto.ErrInvalidNonceSize):
		return fmt.Errorf("%w: %v", ErrInvalidIVLength, err)
	case errors.Is(err, icrypto.ErrInvalidTagSize):
		return fmt.Errorf("%w: %v", ErrInvalidTagLength, err)
	case errors.Is(err, icrypto.ErrDecryptionFailed):
		return ErrAuthenticationFailed
	}

	return err
}
