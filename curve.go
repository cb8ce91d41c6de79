package csidh

// Curve is a Montgomery curve `y² = x³ + A·x² + x` over F_p, represented
// by its single affine coefficient A (B is fixed to 1).
type Curve struct {
	A FieldElement
}

// NewCurve returns the Montgomery curve with coefficient `a`.
func NewCurve(a *FieldElement) *Curve {
	return &Curve{A: *a}
}

// rightSide returns `x·(x² + A·x + 1)`, the curve's right-hand side
// evaluated at `x`.  A random `x` lies on the curve itself when this is
// a quadratic residue, and on its quadratic twist otherwise.
func rightSide(A, x *FieldElement) *FieldElement {
	var x2, t, one, out FieldElement
	one.One()
	x2.Square(x)
	t.Multiply(A, x)
	t.Add(&t, &x2)
	t.Add(&t, &one)
	out.Multiply(&t, x)
	return &out
}

// RightSide is the exported form of rightSide, used by callers that
// need to classify a sampled x-coordinate as lying on the curve or on
// its quadratic twist.
func RightSide(A, x *FieldElement) *FieldElement {
	return rightSide(A, x)
}

// Contains reports whether the affine point `(x, y)` satisfies the
// curve equation.
func (c *Curve) Contains(x, y *FieldElement) bool {
	var lhs, rhs FieldElement
	lhs.Square(y)
	rhs = *rightSide(&c.A, x)
	return lhs.Equal(&rhs)
}

// projectiveCurve is a Montgomery curve coefficient kept in projective
// form `A = A_x / A_z`, used by the ladder and isogeny layers to avoid
// inverting on every step.
type projectiveCurve struct {
	Ax, Az FieldElement
}

// newProjectiveCurve lifts an affine curve to projective form `(A:1)`.
func newProjectiveCurve(c *Curve) *projectiveCurve {
	pc := &projectiveCurve{Ax: c.A}
	pc.Az.One()
	return pc
}

// normalize divides Az out of Ax, returning the affine curve and
// resetting the receiver to `(A:1)`.
func (pc *projectiveCurve) normalize() *Curve {
	var inv, a FieldElement
	inv.Inverse(&pc.Az)
	a.Multiply(&pc.Ax, &inv)
	pc.Ax = a
	pc.Az.One()
	return &Curve{A: a}
}

// a24 returns the projective `(A+2)/4` pair `(A24num:A24den)` used by
// xDBL (in the ladder and in isogeny): `A24num = A_x + 2·A_z`,
// `A24den = 4·A_z`.
func (pc *projectiveCurve) a24() (num, den FieldElement) {
	var twoAz FieldElement
	twoAz.Add(&pc.Az, &pc.Az)
	num.Add(&pc.Ax, &twoAz)
	den.Add(&twoAz, &twoAz)
	return num, den
}
