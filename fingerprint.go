package structify

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Hasher derives a stable identifier from schema text.
type Hasher interface {
	// Hash returns the hex-encoded digest of schema.
	Hash(schema []byte) string
}

// blake2bHasher implements BLAKE2b-256 hashing.
type blake2bHasher struct{}

// Blake2b returns a BLAKE2b-256 hasher.
// The result is a hex-encoded 64-character string.
func Blake2b() Hasher {
	return blake2bHasher{}
}

func (blake2bHasher) Hash(schema []byte) string {
	sum := blake2b.Sum256(schema)
	return hex.EncodeToString(sum[:])
}

// sha256Hasher implements SHA-256 hashing.
type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA256Hasher() Hasher {
	return sha256Hasher{}
}

func (sha256Hasher) Hash(schema []byte) string {
	sum := sha256.Sum256(schema)
	return hex.EncodeToString(sum[:])
}

// Fingerprint identifies c's layout by hashing its type name, size, and
// schema with BLAKE2b-256. Codecs with the same fingerprint are wire
// compatible.
func Fingerprint(c Codec) string {
	return FingerprintWith(Blake2b(), c)
}

// FingerprintWith is Fingerprint using h.
func FingerprintWith(h Hasher, c Codec) string {
	return h.Hash(fingerprintInput(c))
}

func fingerprintInput(c Codec) []byte {
	b := make([]byte, 0, len(c.TypeName())+len(c.Schema())+8)
	b = append(b, c.TypeName()...)
	b = append(b, 0)
	b = append(b, c.Schema()...)
	b = append(b, 0)
	size := uint32(c.Size())
	b = append(b, byte(size), byte(size>>8), byte(size>>16), byte(size>>24))
	return b
}
