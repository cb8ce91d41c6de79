package csidh

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"math/bits"

	"gitlab.com/csidh/csidh512/internal/disalloweq"
)

// FieldElementSize is the size of a FieldElement's canonical encoding, in
// bytes.
const FieldElementSize = LargeUintSize

// FieldElement is an element of the prime field F_p, stored in Montgomery
// form: the limbs hold `x*R mod p` for `R = 2^512`, always reduced into
// `[0, p)`.  All arguments and receivers are allowed to alias.  The zero
// value is the field element 0.
type FieldElement struct {
	_ disalloweq.DisallowEqual

	limbs [limbs]uint64
}

// Zero sets `fe = 0` and returns `fe`.
func (fe *FieldElement) Zero() *FieldElement {
	for i := range fe.limbs {
		fe.limbs[i] = 0
	}
	return fe
}

// One sets `fe = 1` and returns `fe`.
func (fe *FieldElement) One() *FieldElement {
	fe.limbs = gal1.limbs
	return fe
}

// Set sets `fe = a` and returns `fe`.
func (fe *FieldElement) Set(a *FieldElement) *FieldElement {
	fe.limbs = a.limbs
	return fe
}

// Add sets `fe = a + b` and returns `fe`.
func (fe *FieldElement) Add(a, b *FieldElement) *FieldElement {
	var carry uint64
	for i := 0; i < limbs; i++ {
		r, c := bits.Add64(a.limbs[i], b.limbs[i], carry)
		fe.limbs[i] = r
		carry = c
	}
	fe.reduceOnce()
	return fe
}

// Subtract sets `fe = a - b` and returns `fe`.
func (fe *FieldElement) Subtract(a, b *FieldElement) *FieldElement {
	var borrow uint64
	for i := 0; i < limbs; i++ {
		r, bw := bits.Sub64(a.limbs[i], b.limbs[i], borrow)
		fe.limbs[i] = r
		borrow = bw
	}
	if borrow != 0 {
		var carry uint64
		for i := 0; i < limbs; i++ {
			r, c := bits.Add64(fe.limbs[i], p.limbs[i], carry)
			fe.limbs[i] = r
			carry = c
		}
	}
	return fe
}

// Negate sets `fe = -a` and returns `fe`.
func (fe *FieldElement) Negate(a *FieldElement) *FieldElement {
	var zero FieldElement
	return fe.Subtract(&zero, a)
}

// Multiply sets `fe = a * b`, using interleaved Montgomery (CIOS)
// reduction, and returns `fe`.
func (fe *FieldElement) Multiply(a, b *FieldElement) *FieldElement {
	var temp [limbs + 1]uint64

	for k := 0; k < limbs; k++ {
		r := func(i int) int { return (k + i) % (limbs + 1) }

		m := invMinPModR * (a.limbs[k]*b.limbs[0] + temp[r(0)])

		var carry, otherCarry uint64
		for i := 0; i < limbs; i++ {
			hi, lo := bits.Mul64(m, p.limbs[i])

			res, c := bits.Add64(temp[r(i)], otherCarry, 0)
			otherCarry = c
			temp[r(i)] = res

			res, c = bits.Add64(temp[r(i)], lo, 0)
			otherCarry |= c
			temp[r(i)] = res

			res, c = bits.Add64(temp[r(i+1)], carry, 0)
			carry = c
			temp[r(i+1)] = res

			res, c = bits.Add64(temp[r(i+1)], hi, 0)
			carry |= c
			temp[r(i+1)] = res
		}
		temp[r(limbs)] += otherCarry

		carry, otherCarry = 0, 0
		for i := 0; i < limbs; i++ {
			hi, lo := bits.Mul64(a.limbs[k], b.limbs[i])

			res, c := bits.Add64(temp[r(i)], otherCarry, 0)
			otherCarry = c
			temp[r(i)] = res

			res, c = bits.Add64(temp[r(i)], lo, 0)
			otherCarry |= c
			temp[r(i)] = res

			res, c = bits.Add64(temp[r(i+1)], carry, 0)
			carry = c
			temp[r(i+1)] = res

			res, c = bits.Add64(temp[r(i+1)], hi, 0)
			carry |= c
			temp[r(i+1)] = res
		}
		temp[r(limbs)] += otherCarry
	}

	for i := 0; i < limbs; i++ {
		fe.limbs[i] = temp[(limbs+i)%(limbs+1)]
	}

	fe.reduceOnce()
	return fe
}

// Square sets `fe = a * a` and returns `fe`.
func (fe *FieldElement) Square(a *FieldElement) *FieldElement {
	return fe.Multiply(a, a)
}

// reduceOnce conditionally subtracts p once, restoring the invariant
// that the stored limbs lie in [0, p) after an Add or Multiply.
func (fe *FieldElement) reduceOnce() {
	var tmp [limbs]uint64
	var borrow uint64
	for i := 0; i < limbs; i++ {
		r, b := bits.Sub64(fe.limbs[i], p.limbs[i], borrow)
		tmp[i] = r
		borrow = b
	}
	if borrow == 0 {
		fe.limbs = tmp
	}
}

// Pow sets `fe = a^exp`, using left-to-right binary exponentiation over
// all 512 bits of `exp`, and returns `fe`.
func (fe *FieldElement) Pow(a *FieldElement, exp *LargeUint) *FieldElement {
	base := *a
	*fe = gal1
	for i := limbs*64 - 1; i >= 0; i-- {
		fe.Square(fe)
		if exp.Bit(uint(i)) {
			fe.Multiply(fe, &base)
		}
	}
	return fe
}

// Inverse sets `fe = a^-1` via Fermat's little theorem, and returns `fe`.
// The caller MUST ensure `a != 0`; inverting zero is a precondition
// violation.
func (fe *FieldElement) Inverse(a *FieldElement) *FieldElement {
	if a.IsZero() {
		panic("csidh: FieldElement.Inverse of zero")
	}
	return fe.Pow(a, &pMinus2)
}

// IsSquare returns true iff `fe` is a nonzero quadratic residue mod p,
// via Euler's criterion.  It returns false for the zero element.
func (fe *FieldElement) IsSquare() bool {
	var t FieldElement
	t.Pow(fe, &pMinus1Halves)
	return t.limbs == gal1.limbs
}

// IsZero returns true iff `fe == 0`.
func (fe *FieldElement) IsZero() bool {
	return fe.limbs == [limbs]uint64{}
}

// Equal returns true iff `fe == a`.
func (fe *FieldElement) Equal(a *FieldElement) bool {
	return fe.limbs == a.limbs
}

// FromLargeUint sets `fe` to the Montgomery-domain representation of `x
// mod p`, where `x` is taken as a raw (non-modular) LargeUint, and
// returns `fe`.  The caller is responsible for ensuring `x < p`.
func (fe *FieldElement) FromLargeUint(x *LargeUint) *FieldElement {
	fe.limbs = x.limbs
	fe.Multiply(fe, &rSquaredModP)
	return fe
}

// IntoLargeUint returns the canonical (non-Montgomery) representation
// of `fe`, as a LargeUint in `[0, p)`.
func (fe *FieldElement) IntoLargeUint() *LargeUint {
	var one, out FieldElement
	one.limbs[0] = 1
	out.Multiply(fe, &one)
	return &LargeUint{limbs: out.limbs}
}

// Bytes returns the canonical little-endian encoding of `fe`.
func (fe *FieldElement) Bytes() []byte {
	return fe.IntoLargeUint().AsBytes()
}

// SetBytes sets `fe` from `src`, a FieldElementSize-byte little-endian
// encoding of a value strictly less than p, and returns `fe`.  It
// panics if `src` has the wrong length; it returns an error, leaving
// `fe` unchanged, if the decoded value is not canonical (`>= p`).
func (fe *FieldElement) SetBytes(src []byte) (*FieldElement, error) {
	if len(src) != FieldElementSize {
		panic("csidh: FieldElement.SetBytes: invalid length")
	}
	var lu LargeUint
	lu.SetBytes(src)
	if !lu.Less(&p) {
		return nil, errFieldElementOutOfRange
	}
	fe.FromLargeUint(&lu)
	return fe, nil
}

// String returns the little-endian hex representation of the canonical
// encoding of `fe`.
func (fe *FieldElement) String() string {
	return hex.EncodeToString(fe.Bytes())
}

// Random sets `fe` to a uniformly random element of F_p, read from `rng`,
// and returns `fe`.  It rejection-samples: on average a little more than
// one draw is needed.
func (fe *FieldElement) Random(rng io.Reader) *FieldElement {
	var buf [FieldElementSize]byte
	mask := byte(0xff)
	if rem := PBits % 8; rem != 0 {
		mask = byte(1<<rem) - 1
	}
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			panic("csidh: entropy source failure: " + err.Error())
		}
		buf[FieldElementSize-1] &= mask

		var lu LargeUint
		lu.SetBytes(buf[:])
		if lu.Less(&p) {
			return fe.FromLargeUint(&lu)
		}
	}
}

// NewFieldElement returns a new zero FieldElement.
func NewFieldElement() *FieldElement {
	return &FieldElement{}
}

// NewFieldElementFromU64 returns a new FieldElement set to `u`.
func NewFieldElementFromU64(u uint64) *FieldElement {
	return NewFieldElement().FromLargeUint(NewLargeUintFromU64(u))
}

// MustRandomFieldElement returns a new FieldElement sampled uniformly
// using crypto/rand, panicking on entropy-source failure.
func MustRandomFieldElement() *FieldElement {
	return NewFieldElement().Random(rand.Reader)
}
