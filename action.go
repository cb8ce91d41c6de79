package csidh

// Action computes the CSIDH class-group action: starting from the curve
// with coefficient `a`, it applies `exps[i]` signed ℓᵢ-isogenies for
// every prime in the table, in the direction given by the sign of
// `exps[i]`, and returns the resulting curve coefficient.  Every entry
// of `exps` MUST satisfy `|exps[i]| <= PrivateKeyBound`; this is not
// re-checked here, callers at the PrivateKey boundary are responsible
// for it.
func Action(a *FieldElement, exps *[NumPrimes]int8, rng RandomSource) *FieldElement {
	var eNeg, ePos [NumPrimes]uint8
	for i, e := range exps {
		switch {
		case e < 0:
			eNeg[i] = uint8(-e)
		case e > 0:
			ePos[i] = uint8(e)
		}
	}
	e := [2]*[NumPrimes]uint8{&eNeg, &ePos}

	k := [2]*LargeUint{NewLargeUintFromU64(4), NewLargeUintFromU64(4)}
	for s := 0; s < 2; s++ {
		for i := 0; i < NumPrimes; i++ {
			if e[s][i] == 0 {
				k[s].MulWithU64(primes[i])
			}
		}
	}

	pc := newProjectiveCurve(&Curve{A: *a})

	sideDone := func(s int) bool {
		for i := 0; i < NumPrimes; i++ {
			if e[s][i] != 0 {
				return false
			}
		}
		return true
	}

	var x FieldElement
	for !sideDone(0) || !sideDone(1) {
		x.Random(rng)

		s := 1
		if rightSide(&pc.Ax, &x).IsSquare() {
			s = 0
		}
		if sideDone(s) {
			continue
		}

		a24num, a24den := pc.a24()
		P := Ladder(NewProjectivePoint(&x), k[s], &a24num, &a24den)

		for i := NumPrimes - 1; i >= 0; i-- {
			if e[s][i] == 0 {
				continue
			}

			cof := NewLargeUintFromU64(1)
			for j := 0; j < i; j++ {
				if e[s][j] > 0 {
					cof.MulWithU64(primes[j])
				}
			}

			a24num, a24den = pc.a24()
			kernel := Ladder(P, cof, &a24num, &a24den)
			if kernel.IsInfinity() {
				continue
			}

			isogeny(pc, primes[i], kernel, P)
			e[s][i]--
			if e[s][i] == 0 {
				k[s].MulWithU64(primes[i])
			}
		}

		pc.normalize()
	}

	return &pc.Ax
}
