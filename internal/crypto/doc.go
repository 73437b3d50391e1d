// Package crypto implements the low-level primitives behind the sealbox
// public API: AES-256-GCM authenticated encryption with configurable tag
// sizes, PBKDF2-HMAC-SHA-256 password stretching, and HKDF-SHA-256 subkey
// expansion.
//
// # Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key.
// Nonce reuse completely breaks the security of AES-GCM, allowing attackers
// to recover the authentication key and forge messages. This package
// validates nonce length only; uniqueness cannot be tracked without
// persistent state and is the caller's responsibility.
//
// Decryption failures are reported as a single opaque error regardless of
// cause. Distinguishing a wrong key from tampered ciphertext would hand an
// attacker a decryption oracle.
package crypto
