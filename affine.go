package csidh

// AffinePoint is a point (x, y) on a Montgomery curve.  It exists only
// as a reference oracle for the x-only arithmetic in ladder.go: an
// independently-grounded way to compute scalar multiples that recovers
// the y-coordinate, so tests can cross-check the production x-only
// ladder against it.  Production code never needs y-coordinates.
type AffinePoint struct {
	X, Y FieldElement
}

// ladderBoth runs the same ladder as Ladder, but returns both R0
// (`[k]P`) and R1 (`[k+1]P`), as needed by y-recovery.
func ladderBoth(P *ProjectivePoint, k *LargeUint, a24num, a24den *FieldElement) (*ProjectivePoint, *ProjectivePoint) {
	if k.IsZero() {
		return NewInfinityPoint(), P
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
	return &R0, &R1
}

// recover reconstructs the y-coordinate of [k]P given the original
// affine point `p`, and `q = [k]P`, `o = [k+1]P` in x-only projective
// form.
func recover(curveA *FieldElement, p *AffinePoint, q, o *ProjectivePoint) *AffinePoint {
	var v1, v2, v3, v4, two FieldElement
	two.FromLargeUint(NewLargeUintFromU64(2))

	v1.Multiply(&p.X, &q.Z)
	v2.Add(&q.X, &v1)

	v3.Subtract(&q.X, &v1)
	v3.Square(&v3)
	v3.Multiply(&v3, &o.X)

	v1.Multiply(&q.Z, &two)
	v1.Multiply(&v1, curveA)
	v2.Add(&v2, &v1)

	v4.Multiply(&p.X, &q.X)
	v4.Add(&v4, &q.Z)
	v2.Multiply(&v2, &v4)

	v1.Multiply(&v1, &q.Z)
	v2.Subtract(&v2, &v1)
	v2.Multiply(&v2, &o.Z)

	var y FieldElement
	y.Subtract(&v2, &v3)

	v1.Multiply(&p.Y, &two)
	v1.Multiply(&v1, &q.Z)
	v1.Multiply(&v1, &o.Z)

	var x, z FieldElement
	x.Multiply(&v1, &q.X)
	z.Multiply(&v1, &q.Z)

	var zInv FieldElement
	zInv.Inverse(&z)
	x.Multiply(&x, &zInv)
	y.Multiply(&y, &zInv)

	return &AffinePoint{X: x, Y: y}
}

// Multiply computes `[k]P` using the y-recovering ladder, independent
// of the production x-only Ladder, for use as a test oracle.  `k` MUST
// be nonzero; the point at infinity has no affine representation.
func (c *Curve) Multiply(P *AffinePoint, k *LargeUint) *AffinePoint {
	if k.IsZero() {
		panic("csidh: Curve.Multiply by zero has no affine representation")
	}
	pc := newProjectiveCurve(c)
	a24num, a24den := pc.a24()
	start := NewProjectivePoint(&P.X)
	q, o := ladderBoth(start, k, &a24num, &a24den)
	return recover(&c.A, P, q, o)
}
