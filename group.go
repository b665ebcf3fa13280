package p256ff

// Point is an affine Weierstrass point over F_p: the pair (x, y) for a
// finite point, or the identity when infinity is set (in which case x and
// y are both the zero field element). No curve-equation check is
// performed on construction; use IsOnCurve to validate a point obtained
// from an untrusted source.
type Point struct {
	x, y     FieldElement
	infinity bool
}

// A, B are the NIST P-256 curve coefficients: y^2 = x^3 + A*x + B (mod P).
// N is the order of G. G is the base point.
var (
	A FieldElement
	B FieldElement
	N FieldElement
	G Point
)

func init() {
	A.SetHex("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc")
	B.SetHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")
	N.SetHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")

	var gx, gy FieldElement
	gx.SetHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	gy.SetHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")
	G.InitPoint(gx, gy)
}

// InitPoint sets p to the finite point (x, y) and returns p. No
// curve-equation check is performed.
func (pt *Point) InitPoint(x, y FieldElement) *Point {
	pt.x = x
	pt.y = y
	pt.infinity = false
	return pt
}

// SetInfinity sets p to the identity element and returns p.
func (pt *Point) SetInfinity() *Point {
	pt.x = FieldElement{}
	pt.y = FieldElement{}
	pt.infinity = true
	return pt
}

// IsInfinity reports whether p is the identity element.
func (pt *Point) IsInfinity() bool {
	return pt.infinity
}

// X returns the affine x-coordinate. Undefined (zero) when p is infinity.
func (pt *Point) X() FieldElement { return pt.x }

// Y returns the affine y-coordinate. Undefined (zero) when p is infinity.
func (pt *Point) Y() FieldElement { return pt.y }

// Equal reports whether p and q represent the same point.
func (pt *Point) Equal(q *Point) bool {
	if pt.infinity || q.infinity {
		return pt.infinity == q.infinity
	}
	return pt.x.Equal(&q.x) && pt.y.Equal(&q.y)
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + A*x + B (mod P). The
// point at infinity is considered on-curve by convention. This is invoked
// by tests and by callers validating untrusted points; Add never calls it.
func (pt *Point) IsOnCurve() bool {
	if pt.infinity {
		return true
	}
	var lhs, rhs, t FieldElement
	lhs.ModMul(&pt.y, &pt.y, &P)

	rhs.ModMul(&pt.x, &pt.x, &P)
	rhs.ModMul(&rhs, &pt.x, &P)
	t.ModMul(&A, &pt.x, &P)
	rhs.ModAdd(&rhs, &t, &P)
	rhs.ModAdd(&rhs, &B, &P)

	return lhs.Equal(&rhs)
}

// Negate sets p to the negation of q: same x, y negated mod P. Negating
// infinity yields infinity.
func (pt *Point) Negate(q *Point) *Point {
	if q.infinity {
		return pt.SetInfinity()
	}
	var negY FieldElement
	var zero FieldElement
	negY.ModSub(&zero, &q.y, &P)
	return pt.InitPoint(q.x, negY)
}

// Add sets r = p1 + p2 following the case dispatch: infinity identities,
// mutual negation yielding infinity, doubling when p1 == p2, and the
// general distinct-x chord formula otherwise. r may alias p1 or p2.
func (r *Point) Add(p1, p2 *Point) *Point {
	a, b := *p1, *p2

	if a.infinity {
		*r = b
		return r
	}
	if b.infinity {
		*r = a
		return r
	}

	var negBY FieldElement
	var zero FieldElement
	negBY.ModSub(&zero, &b.y, &P)
	if a.x.Equal(&b.x) && a.y.Equal(&negBY) {
		return r.SetInfinity()
	}

	var slope FieldElement
	if a.x.Equal(&b.x) && a.y.Equal(&b.y) {
		// Doubling: slope = (3x^2 + A) * (2y)^-1 mod P.
		var threeX2, twoY, inv FieldElement
		threeX2.ModMul(&a.x, &a.x, &P)
		var three FieldElement
		three.SetUint32(3)
		threeX2.ModMul(&threeX2, &three, &P)
		threeX2.ModAdd(&threeX2, &A, &P)

		var two FieldElement
		two.SetUint32(2)
		twoY.ModMul(&a.y, &two, &P)
		inv.ModInverse(&twoY)
		slope.ModMul(&threeX2, &inv, &P)
	} else {
		// Distinct-x addition: slope = (y2 - y1) * (x2 - x1)^-1 mod P.
		var dy, dx, inv FieldElement
		dy.ModSub(&b.y, &a.y, &P)
		dx.ModSub(&b.x, &a.x, &P)
		inv.ModInverse(&dx)
		slope.ModMul(&dy, &inv, &P)
	}

	var rx, ry FieldElement
	rx.ModMul(&slope, &slope, &P)
	rx.ModSub(&rx, &a.x, &P)
	rx.ModSub(&rx, &b.x, &P)

	ry.ModSub(&a.x, &rx, &P)
	ry.ModMul(&slope, &ry, &P)
	ry.ModSub(&ry, &a.y, &P)

	r.x = rx
	r.y = ry
	r.infinity = false
	return r
}

// ScalarMul sets r = k*p via LSB-first double-and-add over a fixed 256
// iterations, independent of k's magnitude. t tracks 2^i*p and is doubled
// each iteration; acc accumulates t whenever the corresponding bit of k is
// set. r may alias p.
func (r *Point) ScalarMul(p *Point, k *FieldElement) *Point {
	t := *p
	var acc Point
	acc.SetInfinity()

	for i := 0; i < 256; i++ {
		word := k.w[i/32]
		if (word>>uint(i%32))&1 == 1 {
			acc.Add(&acc, &t)
		}
		t.Add(&t, &t)
	}
	*r = acc
	return r
}
