package csidh

// NumPrimes is the number of small odd primes ℓ_i used by the class-group
// action, and the length of a PrivateKey's exponent vector.
const NumPrimes = 74

// PBits is the bit length of the field modulus p.
const PBits = 511

// PrivateKeyBound is the default magnitude bound m for private-key
// exponents, each sampled uniformly from [-m, m].
const PrivateKeyBound = 5

// primes holds the NumPrimes small odd primes ℓ_0 < ℓ_1 < ... < ℓ_73,
// ascending, such that p = 4*∏ℓ_i - 1.  The first 73 are the odd primes
// 3..373; the 74th is 587.
var primes = [NumPrimes]uint64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31,
	37, 41, 43, 47, 53, 59, 61, 67, 71, 73,
	79, 83, 89, 97, 101, 103, 107, 109, 113, 127,
	131, 137, 139, 149, 151, 157, 163, 167, 173, 179,
	181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251, 257, 263, 269, 271, 277, 281, 283,
	293, 307, 311, 313, 317, 331, 337, 347, 349, 353,
	359, 367, 373, 587,
}

// Primes returns a copy of the ascending small-prime table used by the
// class-group action.
func Primes() [NumPrimes]uint64 {
	return primes
}

// p is the field modulus, a 511-bit prime of the form 4*∏ℓ_i - 1.
//
//	0x65b48e8f740f89bffc8ab0d15e3e4c4ab42d083aedc88c425afbfcc69322c9c
//	  da7aac6c567f35507516730cc1f0b4f25c2721bf457aca8351b81b90533c6c87b
var p = LargeUint{limbs: [limbs]uint64{
	0x1b81b90533c6c87b, 0xc2721bf457aca835, 0x516730cc1f0b4f25, 0xa7aac6c567f35507,
	0x5afbfcc69322c9cd, 0xb42d083aedc88c42, 0xfc8ab0d15e3e4c4a, 0x65b48e8f740f89bf,
}}

// pPlus1 is p + 1 = 4*∏ℓ_i, the order of every supersingular curve in the
// CSIDH-512 isogeny class.
var pPlus1 = LargeUint{limbs: [limbs]uint64{
	0x1b81b90533c6c87c, 0xc2721bf457aca835, 0x516730cc1f0b4f25, 0xa7aac6c567f35507,
	0x5afbfcc69322c9cd, 0xb42d083aedc88c42, 0xfc8ab0d15e3e4c4a, 0x65b48e8f740f89bf,
}}

// rSquaredModP is R^2 mod p, where R = 2^512; multiplying a raw LargeUint
// by this value under Montgomery multiplication converts it into
// Montgomery form.
var rSquaredModP = FieldElement{limbs: [limbs]uint64{
	0x36905b572ffc1724, 0x67086f4525f1f27d, 0x4faf3fbfd22370ca, 0x192ea214bcc584b1,
	0x5dae03ee2f5de3d0, 0x1e9248731776b371, 0xad5f166e20e4f52d, 0x4ed759aea6f3917e,
}}

// invMinPModR is -p^-1 mod 2^64, the Montgomery reduction constant.
const invMinPModR uint64 = 0x66c1301f632e294d

// gal1 is R mod p, the Montgomery-domain representation of the field
// element 1.
var gal1 = FieldElement{limbs: [limbs]uint64{
	0xc8fc8df598726f0a, 0x7b1bc81750a6af95, 0x5d319e67c1e961b4, 0xb0aa7275301955f1,
	0x4a080672d9ba6c64, 0x97a5ef8a246ee77b, 0x06ea9e5d4383676a, 0x3496e2e117e0ec80,
}}

// pMinus2 is p - 2, the Fermat's-little-theorem inversion exponent.
var pMinus2 = LargeUint{limbs: [limbs]uint64{
	0x1b81b90533c6c879, 0xc2721bf457aca835, 0x516730cc1f0b4f25, 0xa7aac6c567f35507,
	0x5afbfcc69322c9cd, 0xb42d083aedc88c42, 0xfc8ab0d15e3e4c4a, 0x65b48e8f740f89bf,
}}

// pMinus1Halves is (p - 1) / 2, the Euler's-criterion exponent.
var pMinus1Halves = LargeUint{limbs: [limbs]uint64{
	0x8dc0dc8299e3643d, 0xe1390dfa2bd6541a, 0xa8b398660f85a792, 0xd3d56362b3f9aa83,
	0x2d7dfe63499164e6, 0x5a16841d76e44621, 0xfe455868af1f2625, 0x32da4747ba07c4df,
}}
