package sealbox

import (
	"fmt"
	"strings"
)

// tokenSeparator joins the IV and ciphertext fields of a transport token.
const tokenSeparator = "."

// EncodeToken packs an IV and ciphertext into the transport form
// "<base64url(iv)>.<base64url(ciphertext)>". The result is safe for URLs,
// headers, and JSON string values.
func EncodeToken(iv, ciphertext []byte) string {
	return ToBase64URL(iv) + tokenSeparator + ToBase64URL(ciphertext)
}

// DecodeToken unpacks a transport token into its IV and ciphertext.
// Anything other than two dot-separated base64url fields fails with
// ErrInvalidEncoding. Field lengths are not validated here; Decrypt
// rejects an undersized IV.
func DecodeToken(token string) (iv, ciphertext []byte, err error) {
	parts := strings.Split(token, tokenSeparator)
	if len(parts) != 2 {
		return nil, nil, &EncodingError{
			Encoding: "token",
			Err:      fmt.Errorf("got %d fields, want 2", len(parts)),
		}
	}

	iv, err = FromBase64URL(parts[0])
	if err != nil {
		return nil, nil, &EncodingError{Encoding: "token", Err: err}
	}

	ciphertext, err = FromBase64URL(parts[1])
	if err != nil {
		return nil, nil, &EncodingError{Encoding: "token", Err: err}
	}

	return iv, ciphertext, nil
}

// SealToken encrypts plaintext and packs the result into a transport
// token. It accepts the same options as Encrypt.
func (c *Cipher) SealToken(key *Key, plaintext []byte, opts ...Option) (string, error) {
	result, err := c.Encrypt(key, plaintext, opts...)
	if err != nil {
		return "", err
	}
	return EncodeToken(result.IV, result.Ciphertext), nil
}

// OpenToken unpacks a transport token and decrypts its payload. It accepts
// the same options as Decrypt; associated data and tag length must match
// the sealing side.
func (c *Cipher) OpenToken(key *Key, token string, opts ...Option) ([]byte, error) {
	iv, ciphertext, err := DecodeToken(token)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(key, iv, ciphertext, opts...)
}
