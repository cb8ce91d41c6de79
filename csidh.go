// Package csidh implements CSIDH-512, a post-quantum non-interactive
// key-agreement scheme built from the class-group action on a family
// of supersingular elliptic curves.
//
//	alicePriv, _ := csidh.GenerateKey(csidh.DefaultRandomSource())
//	bobPriv, _ := csidh.GenerateKey(csidh.DefaultRandomSource())
//
//	alicePub := alicePriv.PublicKey()
//	bobPub := bobPriv.PublicKey()
//
//	aliceSecret := alicePriv.SharedSecret(bobPub)
//	bobSecret := bobPriv.SharedSecret(alicePub)
//	// aliceSecret and bobSecret are equal 64-byte buffers.
//
// This implementation runs in variable time: field and curve
// operations branch on secret data, so it is not appropriate for any
// setting where an attacker can observe timing, cache behavior, or
// other microarchitectural side channels. Treat it as a reference
// implementation of the algorithm, not a hardened one.
package csidh
