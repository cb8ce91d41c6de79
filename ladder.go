package csidh

// xDBL computes the x-only doubling of `pt` on the curve given in
// projective-A24 form `(a24num:a24den)`, where `a24num/a24den = (A+2)/4`.
func xDBL(pt *ProjectivePoint, a24num, a24den *FieldElement) *ProjectivePoint {
	var t0, t1, x2, z2 FieldElement

	t0.Subtract(&pt.X, &pt.Z)
	t1.Add(&pt.X, &pt.Z)
	t0.Square(&t0)
	t1.Square(&t1)

	z2.Multiply(a24den, &t0)
	x2.Multiply(&z2, &t1)

	t1.Subtract(&t1, &t0)
	t0.Multiply(a24num, &t1)
	z2.Add(&z2, &t0)
	z2.Multiply(&z2, &t1)

	return &ProjectivePoint{X: x2, Z: z2}
}

// xADD computes `P+Q` given `P`, `Q`, and the already-known difference
// `diff = P-Q`, all in `(X:Z)` form.
func xADD(P, Q, diff *ProjectivePoint) *ProjectivePoint {
	var t0, t1, t2, t3, t4, t5, x, z FieldElement

	t0.Subtract(&P.X, &P.Z)
	t1.Add(&P.X, &P.Z)
	t2.Subtract(&Q.X, &Q.Z)
	t3.Add(&Q.X, &Q.Z)

	t0.Multiply(&t0, &t3)
	t1.Multiply(&t1, &t2)

	t4.Add(&t0, &t1)
	t4.Square(&t4)
	t5.Subtract(&t0, &t1)
	t5.Square(&t5)

	x.Multiply(&diff.Z, &t4)
	z.Multiply(&diff.X, &t5)

	return &ProjectivePoint{X: x, Z: z}
}

// Ladder computes `[k]P` using the canonical Montgomery ladder, scanning
// `k` from its top set bit downward and maintaining the invariant
// `R1 - R0 = P`.  `k = 0` yields the point at infinity.
func Ladder(P *ProjectivePoint, k *LargeUint, a24num, a24den *FieldElement) *ProjectivePoint {
	if k.IsZero() {
		return NewInfinityPoint()
	}

	nbits := k.Bits()
	R0 := *P
	R1 := *xDBL(P, a24num, a24den)

	for i := int(nbits) - 2; i >= 0; i-- {
		if k.Bit(uint(i)) {
			newR0 := xADD(&R1, &R0, P)
			newR1 := xDBL(&R1, a24num, a24den)
			R0, R1 = *newR0, *newR1
		} else {
			newR1 := xADD(&R0, &R1, P)
			newR0 := xDBL(&R0, a24num, a24den)
			R0, R1 = *newR0, *newR1
		}
	}

	return &R0
}

// LadderU64 is a convenience wrapper around Ladder for small scalars.
func LadderU64(P *ProjectivePoint, k uint64, a24num, a24den *FieldElement) *ProjectivePoint {
	return Ladder(P, NewLargeUintFromU64(k), a24num, a24den)
}
