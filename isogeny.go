package csidh

// isogeny replaces the projective curve `pc` with the codomain of the
// degree-ℓ isogeny with kernel `<K>`, and replaces `P` with its image
// under that isogeny.  `K` MUST be a point of exact order `ell` on `pc`.
// A kernel of another order is not detected and yields a meaningless
// curve, except that the function panics when one of the multiples
// [1]K, ..., [d]K is the point at infinity or has x-coordinate 0.
//
// The new curve coefficient is the Vélu sum formula A' = (6ρ̃ − 6ρ + A)·π²,
// where ρ, ρ̃, π range over the affine x-coordinates x_1, ..., x_d of the
// kernel's nontrivial multiples [1]K, ..., [d]K (d = (ℓ-1)/2): ρ = Σx_i,
// ρ̃ = Σ(1/x_i), π = Πx_i.  Evaluating this needs one field inversion per
// kernel multiple to recover its affine x-coordinate; that's acceptable
// here since the isogeny layer makes no constant-time claims.
//
// The image of P is pushed through with the standard x-only evaluation,
// which is homogeneous in each M_i and so works directly on the
// unnormalized (X:Z) pairs: X' = P_x·Π(P_x·M_i.x − P_z·M_i.z)²,
// Z' = P_z·Π(P_x·M_i.z − P_z·M_i.x)².
func isogeny(pc *projectiveCurve, ell uint64, K *ProjectivePoint, P *ProjectivePoint) {
	a24num, a24den := pc.a24()
	d := (ell - 1) / 2

	var M [3]ProjectivePoint
	M[1] = *K
	if d >= 2 {
		M[2] = *xDBL(K, &a24num, &a24den)
	}

	var rho, rhoTilde, pi FieldElement
	pi.One()

	var prodX, prodZ FieldElement
	prodX.One()
	prodZ.One()

	for n := uint64(1); n <= d; n++ {
		idx := n % 3
		if n >= 3 {
			prev, prev2 := (n-1)%3, (n-2)%3
			M[idx] = *xADD(&M[prev], K, &M[prev2])
		}
		m := &M[idx]

		xi := m.Normalize()

		rho.Add(&rho, xi)
		var xiInv FieldElement
		xiInv.Inverse(xi)
		rhoTilde.Add(&rhoTilde, &xiInv)
		pi.Multiply(&pi, xi)

		var crossX, crossZ, t1, t2 FieldElement
		t1.Multiply(&P.X, &m.X)
		t2.Multiply(&P.Z, &m.Z)
		crossX.Subtract(&t1, &t2)
		t1.Multiply(&P.X, &m.Z)
		t2.Multiply(&P.Z, &m.X)
		crossZ.Subtract(&t1, &t2)

		prodX.Multiply(&prodX, &crossX)
		prodZ.Multiply(&prodZ, &crossZ)
	}

	curve := pc.normalize()

	var six, newA FieldElement
	six.FromLargeUint(NewLargeUintFromU64(6))
	var sixRho, sixRhoTilde FieldElement
	sixRho.Multiply(&six, &rho)
	sixRhoTilde.Multiply(&six, &rhoTilde)
	newA.Subtract(&sixRhoTilde, &sixRho)
	newA.Add(&newA, &curve.A)
	var piSq FieldElement
	piSq.Square(&pi)
	newA.Multiply(&newA, &piSq)

	pc.Ax = newA
	pc.Az.One()

	var pX2, pZ2 FieldElement
	pX2.Square(&prodX)
	pZ2.Square(&prodZ)
	P.X.Multiply(&P.X, &pX2)
	P.Z.Multiply(&P.Z, &pZ2)
}
