package sealbox

// cipherConfig holds the recognized per-call parameters and their defaults:
// IV generated if absent, no associated data, 128-bit tag.
type cipherConfig struct {
	iv        []byte
	aad       []byte
	tagLength int
}

func newCipherConfig(opts []Option) cipherConfig {
	cfg := cipherConfig{tagLength: DefaultTagLength}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a single Encrypt or Decrypt call.
type Option func(*cipherConfig)

// WithIV supplies the initialization vector for Encrypt instead of having
// one generated. It must be IVSize bytes and MUST be unique for the key it
// is used with. Decrypt takes its IV as an argument and ignores this option.
func WithIV(iv []byte) Option {
	return func(c *cipherConfig) {
		c.iv = iv
	}
}

// WithAAD binds associated data into the authentication tag. The data is
// authenticated but neither encrypted nor carried in the result; the
// decrypting side must supply the identical value out-of-band.
func WithAAD(aad []byte) Option {
	return func(c *cipherConfig) {
		c.aad = aad
	}
}

// WithTagLength sets the authentication tag length in bits. It must be one
// of TagLengths (default 128) and must match between Encrypt and Decrypt.
func WithTagLength(bits int) Option {
	return func(c *cipherConfig) {
		c.tagLength = bits
	}
}
