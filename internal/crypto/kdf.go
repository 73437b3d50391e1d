package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Key derives keyLen bytes from password using PBKDF2-HMAC-SHA-256.
// The derivation is deterministic: identical (password, salt, iterations)
// inputs always yield identical output. Salt and iteration count are used
// verbatim; salt uniqueness and iteration strength are the caller's
// responsibility.
func PBKDF2Key(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

// ExpandKey derives length bytes from secret using HKDF-SHA-256. An empty
// salt is replaced by a zero-filled salt of the hash size, per RFC 5869.
// Use info for domain separation between subkeys of the same secret.
func ExpandKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha256.Size)
	}

	reader := hkdf.New(sha256.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}
