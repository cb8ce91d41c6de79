package csidh

import (
	"encoding/binary"
	"math/bits"

	"gitlab.com/csidh/csidh512/internal/disalloweq"
)

// limbs is the number of 64-bit words in a LargeUint.
const limbs = 8

// LargeUintSize is the size of a LargeUint in bytes.
const LargeUintSize = limbs * 8

// LargeUint is a fixed-width 512-bit unsigned integer, stored as 8
// little-endian 64-bit limbs.  It carries no modular invariant: it is a
// raw bag of bits with wrapping arithmetic, and callers are responsible
// for any modular reduction they need.  All arguments and receivers are
// allowed to alias.  The zero value is a valid zero.
type LargeUint struct {
	_ disalloweq.DisallowEqual

	limbs [limbs]uint64
}

// Zero sets `x = 0` and returns `x`.
func (x *LargeUint) Zero() *LargeUint {
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	return x
}

// Set sets `x = a` and returns `x`.
func (x *LargeUint) Set(a *LargeUint) *LargeUint {
	x.limbs = a.limbs
	return x
}

// SetU64 sets `x = u` and returns `x`.
func (x *LargeUint) SetU64(u uint64) *LargeUint {
	x.Zero()
	x.limbs[0] = u
	return x
}

// AddFrom sets `x = x + other` (wrapping, mod 2^512) and returns the
// final carry out of the top limb.
func (x *LargeUint) AddFrom(other *LargeUint) bool {
	var carry uint64
	for i := 0; i < limbs; i++ {
		r, c := bits.Add64(x.limbs[i], other.limbs[i], carry)
		x.limbs[i] = r
		carry = c
	}
	return carry != 0
}

// SubFrom sets `x = x - other` (wrapping, mod 2^512) and returns the
// final borrow out of the top limb.
func (x *LargeUint) SubFrom(other *LargeUint) bool {
	var borrow uint64
	for i := 0; i < limbs; i++ {
		r, b := bits.Sub64(x.limbs[i], other.limbs[i], borrow)
		x.limbs[i] = r
		borrow = b
	}
	return borrow != 0
}

// MulWithU64 sets `x = x * u`, truncated to 512 bits.  Callers are
// expected to ensure that the true product fits in 512 bits; this is a
// schoolbook multiply-by-scalar with no overflow check.
func (x *LargeUint) MulWithU64(u uint64) *LargeUint {
	var carry uint64
	for i := 0; i < limbs; i++ {
		hi, lo := bits.Mul64(x.limbs[i], u)
		lo2, c := bits.Add64(lo, carry, 0)
		x.limbs[i] = lo2
		carry = hi + c
	}
	return x
}

// Bits returns the one-based index of the highest set bit, or 0 if `x`
// is zero.
func (x *LargeUint) Bits() uint {
	for i := limbs - 1; i >= 0; i-- {
		if x.limbs[i] == 0 {
			continue
		}
		return uint(i)*64 + uint(64-bits.LeadingZeros64(x.limbs[i]))
	}
	return 0
}

// Bit returns the value of bit `i`, which MUST be less than 512.
func (x *LargeUint) Bit(i uint) bool {
	if i >= 512 {
		panic("csidh: LargeUint.Bit index out of bounds")
	}
	return (x.limbs[i/64]>>(i%64))&1 == 1
}

// IsZero returns true iff `x == 0`.
func (x *LargeUint) IsZero() bool {
	for _, l := range x.limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// Equal returns true iff `x == a`.
func (x *LargeUint) Equal(a *LargeUint) bool {
	return x.limbs == a.limbs
}

// Less returns true iff `x < a`, treating both as unsigned 512-bit
// integers.
func (x *LargeUint) Less(a *LargeUint) bool {
	for i := limbs - 1; i >= 0; i-- {
		if x.limbs[i] != a.limbs[i] {
			return x.limbs[i] < a.limbs[i]
		}
	}
	return false
}

// AsBytes returns the little-endian 64-byte encoding of `x`.
func (x *LargeUint) AsBytes() []byte {
	dst := make([]byte, LargeUintSize)
	for i := 0; i < limbs; i++ {
		binary.LittleEndian.PutUint64(dst[i*8:], x.limbs[i])
	}
	return dst
}

// SetBytes sets `x` from `src`, a little-endian 64-byte encoding, and
// returns `x`.  `src` MUST be exactly LargeUintSize bytes.
func (x *LargeUint) SetBytes(src []byte) *LargeUint {
	if len(src) != LargeUintSize {
		panic("csidh: LargeUint.SetBytes: invalid length")
	}
	for i := 0; i < limbs; i++ {
		x.limbs[i] = binary.LittleEndian.Uint64(src[i*8:])
	}
	return x
}

// ParseDecimal sets `x` to the value of the decimal ASCII string `s`,
// using Horner's rule, and returns `x`.  `s` MUST consist only of the
// ASCII digits '0'-'9'; any other byte panics.
func (x *LargeUint) ParseDecimal(s []byte) *LargeUint {
	x.Zero()
	var digit LargeUint
	for _, c := range s {
		if c < '0' || c > '9' {
			panic("csidh: LargeUint.ParseDecimal: invalid digit")
		}
		x.MulWithU64(10)
		digit.SetU64(uint64(c - '0'))
		x.AddFrom(&digit)
	}
	return x
}

// NewLargeUint returns a new zero LargeUint.
func NewLargeUint() *LargeUint {
	return &LargeUint{}
}

// NewLargeUintFromU64 returns a new LargeUint set to `u`.
func NewLargeUintFromU64(u uint64) *LargeUint {
	return NewLargeUint().SetU64(u)
}

// NewLargeUintFromDecimal returns a new LargeUint parsed from the
// decimal ASCII string `s`.
func NewLargeUintFromDecimal(s string) *LargeUint {
	return NewLargeUint().ParseDecimal([]byte(s))
}
