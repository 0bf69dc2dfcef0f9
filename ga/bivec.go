/*Package ga implements the 4D geometric algebra types used to represent
rotations: bivectors, their factorization into commuting simple parts, and
rotors (unit elements of the even subalgebra) with exp/log/pow and
interpolation.

Component conventions: bivector components are ordered xy, xz, xw, yz, wy,
zw. The wy component stores the coefficient of the y^w plane (the reverse
of w^y), which makes the wedge of two bivectors and the action of the
pseudoscalar free of mixed signs. The pseudoscalar xyzw squares to +1.

Angle conventions: a rotor built by Exp from a bivector of magnitude theta
rotates vectors by 2*theta when applied. FromBivecAngles compensates by
halving, so its stated per-plane angles are the realized rotation angles.
Between(a, b) rotates by twice the angle separating a and b.
*/
package ga

import (
	"errors"
	"math"
)

// Epsilon is the tolerance used for the simplicity check and for the case
// splits in factorization and logarithms. Inputs closer to a degenerate
// configuration than this are treated as being in it.
const Epsilon = 1e-3

// ErrNotSimple reports that a bivector does not represent a single plane,
// i.e. its self-wedge is too far from zero.
var ErrNotSimple = errors.New("ga: bivector is not simple")

// Bivec4 is a 4D bivector: the sum of six plane components. A general
// bivector represents two independent rotation planes; use Factor to split
// it, or Simple to assert it is a single plane.
type Bivec4 struct {
	XY, XZ, XW, YZ, WY, ZW float64
}

func (b Bivec4) Neg() Bivec4 {
	return Bivec4{-b.XY, -b.XZ, -b.XW, -b.YZ, -b.WY, -b.ZW}
}

func (b Bivec4) Add(o Bivec4) Bivec4 {
	return Bivec4{
		b.XY + o.XY, b.XZ + o.XZ, b.XW + o.XW,
		b.YZ + o.YZ, b.WY + o.WY, b.ZW + o.ZW,
	}
}

func (b Bivec4) Sub(o Bivec4) Bivec4 {
	return Bivec4{
		b.XY - o.XY, b.XZ - o.XZ, b.XW - o.XW,
		b.YZ - o.YZ, b.WY - o.WY, b.ZW - o.ZW,
	}
}

func (b Bivec4) Scaled(s float64) Bivec4 {
	return Bivec4{s * b.XY, s * b.XZ, s * b.XW, s * b.YZ, s * b.WY, s * b.ZW}
}

// Dot is the sum of componentwise products. The scalar part of the
// geometric product of two bivectors is -Dot.
func (b Bivec4) Dot(o Bivec4) float64 {
	return b.XY*o.XY + b.XZ*o.XZ + b.XW*o.XW +
		b.YZ*o.YZ + b.WY*o.WY + b.ZW*o.ZW
}

// Wedge is the pseudoscalar coefficient of b ^ o. Each component pairs
// with its complementary plane; the wy convention makes every term
// positive.
func (b Bivec4) Wedge(o Bivec4) float64 {
	return b.XY*o.ZW + b.ZW*o.XY +
		b.XZ*o.WY + b.WY*o.XZ +
		b.XW*o.YZ + b.YZ*o.XW
}

// Square is the geometric product b*b, which only has scalar and
// pseudoscalar parts. The scalar part is -|b|^2 and the pseudoscalar part
// is twice the self-wedge; a simple bivector has pseudoscalar part zero.
func (b Bivec4) Square() ScalarPlusQuadvec4 {
	return ScalarPlusQuadvec4{
		C:    -b.Dot(b),
		XYZW: 2 * (b.XY*b.ZW + b.XZ*b.WY + b.XW*b.YZ),
	}
}

// dual is the product of the pseudoscalar with b. With the wy convention
// this is the negated component reversal.
func (b Bivec4) dual() Bivec4 {
	return Bivec4{-b.ZW, -b.WY, -b.YZ, -b.XW, -b.XZ, -b.XY}
}

// Cross is the commutator (b*o - o*b)/2, a bivector measuring how far the
// two planes are from commuting. Zero for orthogonal or equal planes.
func (b Bivec4) Cross(o Bivec4) Bivec4 {
	return Bivec4{
		XY: -(b.XZ*o.YZ - b.YZ*o.XZ) + (b.XW*o.WY - b.WY*o.XW),
		XZ: (b.XY*o.YZ - b.YZ*o.XY) - (b.XW*o.ZW - b.ZW*o.XW),
		XW: -(b.XY*o.WY - b.WY*o.XY) + (b.XZ*o.ZW - b.ZW*o.XZ),
		YZ: -(b.XY*o.XZ - b.XZ*o.XY) + (b.WY*o.ZW - b.ZW*o.WY),
		WY: (b.XY*o.XW - b.XW*o.XY) - (b.YZ*o.ZW - b.ZW*o.YZ),
		ZW: -(b.XZ*o.XW - b.XW*o.XZ) + (b.YZ*o.WY - b.WY*o.YZ),
	}
}

// Simple checks that b spans a single plane and tags it as such. Returns
// ErrNotSimple if the self-wedge exceeds Epsilon.
func (b Bivec4) Simple() (SimpleBivec4, error) {
	if math.Abs(b.Square().XYZW) >= Epsilon {
		return SimpleBivec4{}, ErrNotSimple
	}
	return SimpleBivec4{b}, nil
}

// forceSimple tags b as simple without checking. Only for call sites where
// simplicity holds analytically.
func forceSimple(b Bivec4) SimpleBivec4 {
	return SimpleBivec4{b}
}

// Factor splits b into two simple bivectors over orthogonal, commuting
// planes, with b = b1 + b2. When the two planes carry equal weight the
// split is not unique; the planar-halves split is used then. Returns
// ErrNotSimple only if numerical drift pushes a factor past the tolerance.
func (b Bivec4) Factor() (b1, b2 SimpleBivec4, err error) {
	u1, u2 := b.factor()
	if b1, err = u1.Simple(); err != nil {
		return SimpleBivec4{}, SimpleBivec4{}, err
	}
	if b2, err = u2.Simple(); err != nil {
		return SimpleBivec4{}, SimpleBivec4{}, err
	}
	return b1, b2, nil
}

// factor is the unchecked factorization. The two scalar+quadvector factors
// f1 and f2 are complementary idempotents built from the square of b, so
// f1 + f2 = 1 and each projects b onto one of its planes.
func (b Bivec4) factor() (Bivec4, Bivec4) {
	sq := b.Square()
	det2 := sq.C*sq.C - sq.XYZW*sq.XYZW
	if det2 < 0 {
		det2 = 0
	}
	det := math.Sqrt(det2)
	if det < Epsilon {
		// Equal-weight (isoclinic) or near-zero bivector: the projection
		// factors blow up, but the two coordinate halves are each simple
		// and orthogonal to one another.
		return Bivec4{XY: b.XY, XZ: b.XZ, XW: b.XW},
			Bivec4{YZ: b.YZ, WY: b.WY, ZW: b.ZW}
	}
	f1 := ScalarPlusQuadvec4{det - sq.C, sq.XYZW}.Scaled(1 / (2 * det))
	f2 := ScalarPlusQuadvec4{det + sq.C, -sq.XYZW}.Scaled(1 / (2 * det))
	return f1.MulBivec(b), f2.MulBivec(b)
}

// Exp is the rotor rotating by twice the angles encoded in b. The bivector
// is factored into commuting simple parts and their simple exponentials
// are combined; the pseudoscalar part of the result is the product of the
// two sines signed by the wedge of the unit planes.
func (b Bivec4) Exp() Rotor4 {
	u1, u2 := b.factor()
	s1, s2 := forceSimple(u1), forceSimple(u2)
	theta1, theta2 := s1.Magnitude(), s2.Magnitude()
	n1, n2 := s1.Normalized().bivec, s2.Normalized().bivec

	c1, c2 := math.Cos(theta1), math.Cos(theta2)
	sin1, sin2 := math.Sin(theta1), math.Sin(theta2)
	return Rotor4{
		c:     c1 * c2,
		bivec: n1.Scaled(sin1 * c2).Add(n2.Scaled(c1 * sin2)),
		xyzw:  sin1 * sin2 * n1.Wedge(n2),
	}
}

// ScalarPlusQuadvec4 is an element of the scalar+pseudoscalar subalgebra,
// which is closed under multiplication and commutes with every bivector.
type ScalarPlusQuadvec4 struct {
	C, XYZW float64
}

func (s ScalarPlusQuadvec4) Scaled(k float64) ScalarPlusQuadvec4 {
	return ScalarPlusQuadvec4{k * s.C, k * s.XYZW}
}

func (s ScalarPlusQuadvec4) Mul(o ScalarPlusQuadvec4) ScalarPlusQuadvec4 {
	return ScalarPlusQuadvec4{
		C:    s.C*o.C + s.XYZW*o.XYZW,
		XYZW: s.C*o.XYZW + s.XYZW*o.C,
	}
}

// MulBivec is the action of s on a bivector: the scalar part scales it and
// the pseudoscalar part maps it through the dual.
func (s ScalarPlusQuadvec4) MulBivec(b Bivec4) Bivec4 {
	return b.Scaled(s.C).Add(b.dual().Scaled(s.XYZW))
}

// SimpleBivec4 is a bivector known to span a single plane. Obtained from
// Bivec4.Simple or as a factorization output; the zero value is the zero
// bivector, which counts as simple.
type SimpleBivec4 struct {
	bivec Bivec4
}

// Bivec returns the underlying bivector.
func (s SimpleBivec4) Bivec() Bivec4 { return s.bivec }

// Squared is the scalar square, always <= 0.
func (s SimpleBivec4) Squared() float64 { return -s.bivec.Dot(s.bivec) }

// Magnitude is the rotation angle the plane carries.
func (s SimpleBivec4) Magnitude() float64 { return math.Sqrt(s.bivec.Dot(s.bivec)) }

// Scaled scales the plane's weight. Simplicity is preserved.
func (s SimpleBivec4) Scaled(k float64) SimpleBivec4 {
	return SimpleBivec4{s.bivec.Scaled(k)}
}

// Normalized returns the unit plane. The zero bivector is returned as is.
func (s SimpleBivec4) Normalized() SimpleBivec4 {
	m := s.Magnitude()
	if m == 0 {
		return s
	}
	return s.Scaled(1 / m)
}

// Exp is the rotor rotating in s's plane by twice s's magnitude.
func (s SimpleBivec4) Exp() Rotor4 {
	theta := s.Magnitude()
	if theta == 0 {
		return IdentityRotor4()
	}
	return Rotor4{
		c:     math.Cos(theta),
		bivec: s.bivec.Scaled(math.Sin(theta) / theta),
	}
}
