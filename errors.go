package csidh

import "errors"

// errFieldElementOutOfRange is returned by FieldElement.SetBytes when the
// decoded integer is not canonically reduced (>= p).
var errFieldElementOutOfRange = errors.New("csidh: encoded field element is out of range")

// ErrInvalidPublicKey is returned when decoding a PublicKey from bytes
// that either have the wrong length or do not encode a canonical field
// element.
var ErrInvalidPublicKey = errors.New("csidh: invalid public key encoding")

// ErrInvalidPrivateKey is returned when decoding a PrivateKey whose
// encoded exponent vector contains an out-of-bound entry.
var ErrInvalidPrivateKey = errors.New("csidh: invalid private key encoding")
