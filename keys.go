package csidh

import "io"

// PrivateKey is a CSIDH-512 private key: a signed exponent vector of
// length NumPrimes, each entry drawn uniformly from
// `[-PrivateKeyBound, PrivateKeyBound]`.
type PrivateKey struct {
	exps [NumPrimes]int8
}

// PublicKey is a CSIDH-512 public key: the Montgomery coefficient of a
// supersingular curve isogenous to the base curve `E_0: y² = x³ + x`.
type PublicKey struct {
	a FieldElement
}

// baseCurveA is the coefficient of the base curve E_0: y² = x³ + x.
var baseCurveA FieldElement

// GenerateKey samples a new PrivateKey, drawing each of the NumPrimes
// exponents uniformly and independently from
// `[-PrivateKeyBound, PrivateKeyBound]` using `rng`.
func GenerateKey(rng RandomSource) (*PrivateKey, error) {
	priv := &PrivateKey{}
	for i := range priv.exps {
		v, err := sampleExponent(rng)
		if err != nil {
			return nil, err
		}
		priv.exps[i] = v
	}
	return priv, nil
}

// sampleExponent draws a uniform value in [-PrivateKeyBound,
// PrivateKeyBound] from rng, rejection-sampling a single byte to avoid
// modulo bias.
func sampleExponent(rng io.Reader) (int8, error) {
	const span = 2*PrivateKeyBound + 1
	limit := byte(256 - 256%span)
	var b [1]byte
	for {
		if _, err := io.ReadFull(rng, b[:]); err != nil {
			return 0, err
		}
		if b[0] >= limit {
			continue
		}
		return int8(int(b[0]%span) - PrivateKeyBound), nil
	}
}

// NewPrivateKeyFromExponents constructs a PrivateKey from an explicit
// signed exponent vector, rejecting it with ErrInvalidPrivateKey if any
// entry falls outside `[-PrivateKeyBound, PrivateKeyBound]`.  Most callers
// want GenerateKey; this exists for loading a fixed test vector or a
// key escrowed in an application-defined format.
func NewPrivateKeyFromExponents(exps [NumPrimes]int8) (*PrivateKey, error) {
	for _, e := range exps {
		if e < -PrivateKeyBound || e > PrivateKeyBound {
			return nil, ErrInvalidPrivateKey
		}
	}
	return &PrivateKey{exps: exps}, nil
}

// PublicKey derives the PrivateKey's corresponding public key by
// applying the class-group action to the base curve.
func (priv *PrivateKey) PublicKey() *PublicKey {
	a := Action(&baseCurveA, &priv.exps, DefaultRandomSource())
	return &PublicKey{a: *a}
}

// SharedSecret computes the shared secret between `priv` and `peer` by
// applying priv's class-group action to peer's curve.  Both directions
// of a key exchange converge to the same 64-byte encoding.
func (priv *PrivateKey) SharedSecret(peer *PublicKey) []byte {
	a := Action(&peer.a, &priv.exps, DefaultRandomSource())
	return a.Bytes()
}

// Zeroize overwrites priv's exponent vector with zeros.  CSIDH-512
// private keys are small enough (74 one-byte exponents, about 256 bits
// of entropy) that this is not
// a strong defense against a determined local attacker, but it does
// prevent the key from lingering in memory after the caller is done
// with it; callers handling long-lived keys should call it explicitly
// once the key is no longer needed.
func (priv *PrivateKey) Zeroize() {
	for i := range priv.exps {
		priv.exps[i] = 0
	}
}

// Bytes returns the public key's canonical 64-byte little-endian
// encoding of its curve coefficient.
func (pub *PublicKey) Bytes() []byte {
	return pub.a.Bytes()
}

// NewPublicKeyFromBytes decodes a PublicKey from its 64-byte
// little-endian encoding.  It returns ErrInvalidPublicKey if `b` is not
// exactly FieldElementSize bytes long or does not encode a canonically
// reduced field element.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != FieldElementSize {
		return nil, ErrInvalidPublicKey
	}
	var a FieldElement
	if _, err := a.SetBytes(b); err != nil {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{a: a}, nil
}
