package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const DigestSize = 32

// Blake is BLAKE2b with a 256-bit output.
func Blake(data []byte) []byte {
	sum := blake2b.Sum256(data)
	return sum[:]
}

// Keccak is the original Keccak-256, not NIST SHA3-256.
func Keccak(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

func Sha256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SecureHash is Keccak(Blake(data)).
func SecureHash(data []byte) []byte {
	return Keccak(Blake(data))
}
