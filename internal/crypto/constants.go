package crypto

const (
	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12

	// MinTagSize is the smallest supported AES-GCM authentication tag in
	// bytes (96 bits).
	MinTagSize = 12
	// MaxTagSize is the largest supported AES-GCM authentication tag in
	// bytes (128 bits).
	MaxTagSize = 16
	// DefaultTagSize is the AES-GCM authentication tag size used when the
	// caller does not choose one (128 bits).
	DefaultTagSize = 16

	// DefaultPBKDF2Iterations is the PBKDF2 iteration count used when the
	// caller does not choose one.
	DefaultPBKDF2Iterations = 150_000
)
