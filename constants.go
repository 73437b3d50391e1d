package sealbox

import "github.com/sealbox/sealbox-go/internal/crypto"

const (
	// KeySize is the required AES-256 key size in bytes.
	KeySize = crypto.AESKeySize

	// IVSize is the required AES-GCM initialization vector size in bytes.
	IVSize = crypto.AESNonceSize

	// DefaultTagLength is the authentication tag length in bits used when
	// no WithTagLength option is given.
	DefaultTagLength = 128

	// DefaultIterations is the PBKDF2 iteration count used when
	// DeriveKeyFromPassword is called with a non-positive count.
	DefaultIterations = crypto.DefaultPBKDF2Iterations
)

// TagLengths lists the supported authentication tag lengths in bits.
var TagLengths = []int{96, 104, 112, 120, 128}

func validTagLength(bits int) bool {
	for _, n := range TagLengths {
		if bits == n {
			return true
		}
	}
	return false
}
