package sealbox

import (
	icrypto "github.com/sealbox/sealbox-go/internal/crypto"
)

// Key is an opaque handle around admitted AES-256 key material. It is
// created by ImportKey, used only for Encrypt and Decrypt, and is never
// serialized or logged by this library. The caller owns the Key for its
// entire lifetime.
type Key struct {
	material []byte
}

// String implements fmt.Stringer without exposing key material.
func (k *Key) String() string {
	return "sealbox.Key(redacted)"
}

// GoString implements fmt.GoStringer without exposing key material.
func (k *Key) GoString() string {
	return k.String()
}

// ImportKey admits raw key material. The input must be exactly KeySize
// bytes or ImportKey fails with ErrInvalidKeyLength. The bytes are copied
// before admission, so mutating raw afterwards cannot alter the Key.
func (c *Cipher) ImportKey(raw []byte) (*Key, error) {
	if len(raw) != KeySize {
		return nil, &KeyLengthError{Got: len(raw)}
	}

	material := make([]byte, KeySize)
	copy(material, raw)

	// Probe the provider so unusable material is rejected here, not on
	// first encrypt.
	if _, err := c.provider.NewAEAD(material, DefaultTagLength); err != nil {
		return nil, wrapCryptoError(err)
	}

	return &Key{material: material}, nil
}

// DeriveKeyFromPassword stretches a password into KeySize bytes of key
// material using PBKDF2-HMAC-SHA-256. A non-positive iteration count
// selects DefaultIterations; otherwise salt and iterations are forwarded
// verbatim — salt uniqueness and iteration strength are the caller's
// responsibility.
//
// The output is deterministic for identical (password, salt, iterations)
// and is raw bytes, not a Key: pass it to ImportKey to encrypt with it.
func (c *Cipher) DeriveKeyFromPassword(password, salt []byte, iterations int) ([]byte, error) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	derived, err := c.provider.DerivePBKDF2(password, salt, iterations, KeySize)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	return derived, nil
}

// DeriveSubkey expands a master secret into length bytes of purpose-bound
// key material using HKDF-SHA-256. Distinct info values yield independent
// subkeys from the same secret. An empty salt is replaced with a
// zero-filled one.
func DeriveSubkey(secret, salt, info []byte, length int) ([]byte, error) {
	return icrypto.ExpandKey(secret, salt, info, length)
}
