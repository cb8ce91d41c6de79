package csidh

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

// divideByThree sets x = x/3, assuming x is exactly divisible by 3, via
// schoolbook long division from the most to least significant limb.
func divideByThree(x *LargeUint) {
	var rem uint64
	for i := limbs - 1; i >= 0; i-- {
		q, r := bits.Div64(rem, x.limbs[i], 3)
		x.limbs[i] = q
		rem = r
	}
}

// TestIsogeny exercises §8 scenario 3: find a point of exact order 3 on
// the base curve, push a second point through the resulting 3-isogeny,
// and check that the pushed point lands on the same side (curve or
// twist) of the codomain as the original point was on the base curve —
// the property a rational isogeny is required to preserve.
func TestIsogeny(t *testing.T) {
	curve := testCurveZero()
	pc := newProjectiveCurve(curve)

	third := pPlus1
	divideByThree(&third)

	seed := NewShake256RandomSource([]byte("csidh isogeny test seed"))
	var kernel *ProjectivePoint
	var x FieldElement
	for i := 0; i < 64; i++ {
		x.Random(seed)
		a24num, a24den := pc.a24()
		cand := Ladder(NewProjectivePoint(&x), &third, &a24num, &a24den)
		if !cand.IsInfinity() {
			kernel = cand
			break
		}
	}
	require.NotNil(t, kernel, "failed to find an order-3 kernel point")

	P := testPointP()
	beforeSquare := rightSide(&curve.A, &P.X).IsSquare()

	pushed := NewProjectivePoint(&P.X)
	isogeny(pc, 3, kernel, pushed)
	newCurve := pc.normalize()

	require.False(t, pushed.IsInfinity())
	pushedX := pushed.Normalize()
	afterSquare := rightSide(&newCurve.A, pushedX).IsSquare()

	require.Equal(t, beforeSquare, afterSquare, "isogeny must preserve curve-vs-twist side")
}

// TestIsogenyKnownVector checks isogeny against a fixed, independently
// computed numeric vector, rather than only the side-preservation
// property: a 3-isogeny from the base curve has a unique kernel (the
// curve's 3-torsion has order exactly 3 in this parameter set), so its
// codomain coefficient and the image of a fixed point are pinned down
// exactly, regardless of which generator of that kernel is used to seed
// it.
func TestIsogenyKnownVector(t *testing.T) {
	curve := testCurveZero()
	pc := newProjectiveCurve(curve)

	var x FieldElement
	x.FromLargeUint(NewLargeUintFromU64(3))
	third := pPlus1
	divideByThree(&third)
	a24num, a24den := pc.a24()
	kernel := Ladder(NewProjectivePoint(&x), &third, &a24num, &a24den)
	require.False(t, kernel.IsInfinity())

	P := testPointP()
	pushed := NewProjectivePoint(&P.X)
	isogeny(pc, 3, kernel, pushed)
	newCurve := pc.normalize()

	wantA := NewLargeUintFromDecimal("941491583855721546256320463368690221836122272603366476768250082499843411698313244368639427263814519184160660963573449134098688885250037612603092235900219")
	var wantAFE FieldElement
	wantAFE.FromLargeUint(wantA)
	require.True(t, newCurve.A.Equal(&wantAFE), "codomain coefficient must match the independently computed reference value")

	wantPushedX := NewLargeUintFromDecimal("710519800286654323997996146523586109155937180896412677407904988726910428646346475053922624700987262704070725690301679182002234982916495954287589716232115")
	var wantPushedFE FieldElement
	wantPushedFE.FromLargeUint(wantPushedX)
	require.True(t, pushed.Normalize().Equal(&wantPushedFE), "pushed point must match the independently computed reference value")
}
