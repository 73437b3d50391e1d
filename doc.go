// Package sealbox provides symmetric authenticated encryption (AES-256-GCM)
// and text-safe binary encoding for payloads that travel through text-only
// channels such as URLs, headers, and JSON.
//
// Basic usage:
//
//	box := sealbox.New(nil) // nil selects the standard platform provider
//
//	key, err := box.ImportKey(rawKeyBytes) // exactly 32 bytes
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := box.SealToken(key, []byte("payload"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := box.OpenToken(key, token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Keys can also be stretched from passwords with
// [Cipher.DeriveKeyFromPassword] (PBKDF2-HMAC-SHA-256, 150,000 iterations
// by default) and then admitted through [Cipher.ImportKey].
//
// # Security Notes
//
// IVs MUST be unique per key. Encrypt generates a fresh random IV when
// none is supplied; callers passing WithIV take on that responsibility
// themselves, and the library cannot detect reuse.
//
// Decryption fails closed with a single opaque [ErrAuthenticationFailed]
// for every cause — wrong key, wrong IV, wrong associated data, mismatched
// tag length, or tampering. Never retry a failed decryption with the same
// inputs; retry is only sensible for externally-sourced malformed text,
// such as re-requesting a corrupted token.
//
// Keys are never logged or serialized by this package. There is no key
// persistence, rotation, or wrapping: key management is the caller's
// problem.
//
// All operations are safe for concurrent use; the package holds no shared
// mutable state beyond the injected [Provider], which must be thread-safe.
package sealbox
