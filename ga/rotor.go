package ga

import (
	"math"

	"github.com/tessera-dev/tessera4d/la"
)

// Rotor4 is a unit element of the even subalgebra: scalar + bivector +
// pseudoscalar. Applying it to a vector rotates the vector; composition
// multiplies rotors. The fields are kept private because they satisfy two
// constraints (unit norm and the scalar-pseudoscalar coupling with the
// bivector self-wedge) that every constructor re-establishes.
type Rotor4 struct {
	c     float64
	bivec Bivec4
	xyzw  float64
}

// IdentityRotor4 returns the rotor that leaves every vector unchanged.
func IdentityRotor4() Rotor4 {
	return Rotor4{c: 1}
}

// Components returns the scalar, bivector, and pseudoscalar parts.
func (r Rotor4) Components() (c float64, bivec Bivec4, xyzw float64) {
	return r.c, r.bivec, r.xyzw
}

// Scalar returns the scalar part.
func (r Rotor4) Scalar() float64 { return r.c }

// Bivec returns the bivector part.
func (r Rotor4) Bivec() Bivec4 { return r.bivec }

// XYZW returns the pseudoscalar part.
func (r Rotor4) XYZW() float64 { return r.xyzw }

// FromBivecAngles returns the rotor rotating by the angles encoded in
// angles: component xy is the rotation angle in the xy plane and so on.
// Unlike Exp, the stated angles are the realized rotation angles.
func FromBivecAngles(angles Bivec4) Rotor4 {
	return angles.Scaled(0.5).Exp()
}

// Between returns the rotor whose application rotates by twice the angle
// from one vector to the other, in their common plane. Opposite vectors
// have no preferred plane and give a degenerate result.
func Between[V la.Vector4[V]](from, to V) Rotor4 {
	f, t := from.Normalized(), to.Normalized()
	r := Rotor4{c: f.Dot(t), bivec: Wedge(f, t)}
	return r.normalized()
}

// Wedge is the outer product of two 4D vectors.
func Wedge[V la.Vector4[V]](a, b V) Bivec4 {
	return Bivec4{
		XY: a.X()*b.Y() - a.Y()*b.X(),
		XZ: a.X()*b.Z() - a.Z()*b.X(),
		XW: a.X()*b.W() - a.W()*b.X(),
		YZ: a.Y()*b.Z() - a.Z()*b.Y(),
		WY: a.W()*b.Y() - a.Y()*b.W(),
		ZW: a.Z()*b.W() - a.W()*b.Z(),
	}
}

// Compose returns the rotor equivalent to applying r first and then o.
// The result is renormalized, so long chains of compositions stay on the
// rotor manifold instead of accumulating drift.
func (r Rotor4) Compose(o Rotor4) Rotor4 {
	c := r.c*o.c + r.xyzw*o.xyzw - r.bivec.Dot(o.bivec)
	xyzw := r.c*o.xyzw + r.xyzw*o.c + r.bivec.Wedge(o.bivec)
	bivec := o.bivec.Scaled(r.c).
		Add(r.bivec.Scaled(o.c)).
		Add(o.bivec.dual().Scaled(r.xyzw)).
		Add(r.bivec.dual().Scaled(o.xyzw)).
		Add(r.bivec.Cross(o.bivec))
	return Rotor4{c, bivec, xyzw}.normalized()
}

// Inverse returns the rotor undoing r. For a unit rotor this is the
// reverse, which only negates the bivector part.
func (r Rotor4) Inverse() Rotor4 {
	return Rotor4{r.c, r.bivec.Neg(), r.xyzw}
}

// normalized restores the rotor constraints: the pseudoscalar part is
// recovered from the coupling 2*c*xyzw = (B^B) when the scalar part
// permits, then the whole element is rescaled to unit norm.
func (r Rotor4) normalized() Rotor4 {
	if math.Abs(r.c) >= Epsilon {
		r.xyzw = r.bivec.Square().XYZW / (2 * r.c)
	}
	n := math.Sqrt(r.c*r.c + r.xyzw*r.xyzw + r.bivec.Dot(r.bivec))
	if n == 0 {
		return IdentityRotor4()
	}
	return Rotor4{r.c / n, r.bivec.Scaled(1 / n), r.xyzw / n}
}

// Apply rotates a vector by the rotor.
func Apply[V la.Vector4[V]](r Rotor4, v V) V {
	out := r.apply([4]float64{v.X(), v.Y(), v.Z(), v.W()})
	var zero V
	return zero.Make(out[0], out[1], out[2], out[3])
}

// ToMatrix converts the rotor to an equivalent rotation matrix.
func ToMatrix[M la.Matrix4[M, V], V any](r Rotor4) M {
	var zero M
	return zero.FromColumns(r.Matrix())
}

// Matrix returns the rotation as a column-major 4x4 array.
func (r Rotor4) Matrix() [4][4]float64 {
	var cols [4][4]float64
	for k := 0; k < 4; k++ {
		var e [4]float64
		e[k] = 1
		cols[k] = r.apply(e)
	}
	return cols
}

// apply evaluates the sandwich product on a component array. The grade-1
// part of rev(R) v R expands into five terms: the scalar/pseudoscalar
// diagonal, the antisymmetric action of the bivector taken once and
// twice, the contraction of the bivector with the trivector B^v, and the
// pseudoscalar coupling through the dual of B^v.
func (r Rotor4) apply(v [4]float64) [4]float64 {
	b := r.bivec
	a12, a13, a14 := b.XY, b.XZ, b.XW
	a23, a24, a34 := b.YZ, -b.WY, b.ZW
	c, p := r.c, r.xyzw

	av := [4]float64{
		a12*v[1] + a13*v[2] + a14*v[3],
		-a12*v[0] + a23*v[2] + a24*v[3],
		-a13*v[0] - a23*v[1] + a34*v[3],
		-a14*v[0] - a24*v[1] - a34*v[2],
	}
	aav := [4]float64{
		a12*av[1] + a13*av[2] + a14*av[3],
		-a12*av[0] + a23*av[2] + a24*av[3],
		-a13*av[0] - a23*av[1] + a34*av[3],
		-a14*av[0] - a24*av[1] - a34*av[2],
	}

	// Trivector components of B ^ v.
	t123 := a12*v[2] - a13*v[1] + a23*v[0]
	t124 := a12*v[3] - a14*v[1] + a24*v[0]
	t134 := a13*v[3] - a14*v[2] + a34*v[0]
	t234 := a23*v[3] - a24*v[2] + a34*v[1]

	// Grade-1 part of B (B ^ v).
	bt := [4]float64{
		-a23*t123 - a24*t124 - a34*t134,
		a13*t123 + a14*t124 - a34*t234,
		-a12*t123 + a14*t134 + a24*t234,
		-a12*t124 - a13*t134 - a23*t234,
	}

	// -2p (B ^ v) I.
	pi := [4]float64{
		-2 * p * t234,
		2 * p * t134,
		-2 * p * t124,
		2 * p * t123,
	}

	cc := c*c - p*p
	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = cc*v[i] - 2*c*av[i] + aav[i] - bt[i] + pi[i]
	}
	return out
}
