package csidh

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/sha3"
)

// RandomSource is the capability used throughout this package to obtain
// uniformly random bytes.  crypto/rand.Reader satisfies it, as does
// Shake256RandomSource below for reproducible testing.
type RandomSource = io.Reader

// Shake256RandomSource is a deterministic RandomSource backed by a
// SHAKE256 extendable-output function, seeded once at construction.
// Reads drain the XOF; the same seed always produces the same stream.
// It exists for reproducible tests and demos, never for production key
// generation.
type Shake256RandomSource struct {
	xof sha3.ShakeHash
}

// NewShake256RandomSource returns a Shake256RandomSource seeded with
// `seed`.
func NewShake256RandomSource(seed []byte) *Shake256RandomSource {
	xof := sha3.NewShake256()
	_, _ = xof.Write(seed)
	return &Shake256RandomSource{xof: xof}
}

// Read implements io.Reader by squeezing bytes out of the underlying
// SHAKE256 state.
func (s *Shake256RandomSource) Read(p []byte) (int, error) {
	return s.xof.Read(p)
}

// DefaultRandomSource returns crypto/rand.Reader, the RandomSource
// appropriate for generating real private keys.
func DefaultRandomSource() RandomSource {
	return rand.Reader
}
