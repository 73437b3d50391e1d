package sealbox

import (
	"crypto/rand"
	"io"

	icrypto "github.com/sealbox/sealbox-go/internal/crypto"
)

// Provider is the platform cryptographic capability set the library
// delegates to. It is constructed once at process start and injected into
// New; the library never resolves crypto capabilities from global state.
//
// Implementations must be safe for concurrent use.
type Provider interface {
	// ReadRandom fills b with cryptographically secure random bytes.
	ReadRandom(b []byte) error

	// NewAEAD imports raw key material into an AES-256-GCM instance that
	// appends authentication tags of tagLength bits. The key must be
	// KeySize bytes and tagLength one of TagLengths; both are validated by
	// the engine before this is called, but implementations should reject
	// out-of-range values anyway.
	NewAEAD(key []byte, tagLength int) (AEAD, error)

	// DerivePBKDF2 derives keyLen bytes from password using
	// PBKDF2-HMAC-SHA-256 with the given salt and iteration count.
	DerivePBKDF2(password, salt []byte, iterations, keyLen int) ([]byte, error)
}

// AEAD is an imported-key handle performing authenticated encryption.
// Nonces must be IVSize bytes.
type AEAD interface {
	// Seal encrypts plaintext, binding aad into the authentication tag,
	// and returns ciphertext with the tag appended.
	Seal(nonce, plaintext, aad []byte) ([]byte, error)

	// Open authenticates and decrypts ciphertext produced by Seal with the
	// same nonce and aad.
	Open(nonce, ciphertext, aad []byte) ([]byte, error)
}

// StdProvider returns the default Provider backed by the Go platform
// crypto libraries.
func StdProvider() Provider {
	return stdProvider{}
}

type stdProvider struct{}

func (stdProvider) ReadRandom(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}

func (stdProvider) NewAEAD(key []byte, tagLength int) (AEAD, error) {
	// Construct once up front so bad key material or tag sizes are
	// rejected at import time rather than on first use.
	if _, err := icrypto.NewAESGCM(key, tagLength/8); err != nil {
		return nil, wrapCryptoError(err)
	}

	k := make([]byte, len(key))
	copy(k, key)

	return stdAEAD{key: k, tagSize: tagLength / 8}, nil
}

func (stdProvider) DerivePBKDF2(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	return icrypto.PBKDF2Key(password, salt, iterations, keyLen), nil
}

type stdAEAD struct {
	key     []byte
	tagSize int
}

func (a stdAEAD) Seal(nonce, plaintext, aad []byte) ([]byte, error) {
	ciphertext, err := icrypto.SealAESGCM(a.key, nonce, plaintext, aad, a.tagSize)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return ciphertext, nil
}

func (a stdAEAD) Open(nonce, ciphertext, aad []byte) ([]byte, error) {
	plaintext, err := icrypto.OpenAESGCM(a.key, nonce, ciphertext, aad, a.tagSize)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return plaintext, nil
}
