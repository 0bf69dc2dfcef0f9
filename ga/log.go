package ga

import "math"

// RotorLogKind discriminates the two shapes a rotor logarithm can take.
type RotorLogKind int

const (
	// LogSimple is a rotation in a single plane.
	LogSimple RotorLogKind = iota
	// LogDoubleRotation is two independent rotations in orthogonal planes.
	LogDoubleRotation
)

// RotorLog4 is the logarithm of a rotor: one or two unit planes with
// their rotation angles. Angles are rotor angles, so exponentiating gives
// a rotor that rotates vectors by twice each angle.
type RotorLog4 struct {
	Kind   RotorLogKind
	Plane1 SimpleBivec4
	Angle1 float64
	// Plane2 and Angle2 are only meaningful for LogDoubleRotation.
	Plane2 SimpleBivec4
	Angle2 float64
}

// Scaled multiplies both angles, leaving the planes fixed. This is the
// logarithm-space form of exponentiating a rotor by a scalar.
func (l RotorLog4) Scaled(t float64) RotorLog4 {
	l.Angle1 *= t
	l.Angle2 *= t
	return l
}

// Bivec flattens the logarithm back into a single generator bivector,
// with each plane weighted by its angle.
func (l RotorLog4) Bivec() Bivec4 {
	b := l.Plane1.Scaled(l.Angle1).bivec
	if l.Kind == LogDoubleRotation {
		b = b.Add(l.Plane2.Scaled(l.Angle2).bivec)
	}
	return b
}

// Exp rebuilds the rotor from the stored planes and angles directly,
// without refactoring the generator.
func (l RotorLog4) Exp() Rotor4 {
	if l.Kind == LogSimple {
		return l.Plane1.Scaled(l.Angle1).Exp()
	}
	c1, s1 := math.Cos(l.Angle1), math.Sin(l.Angle1)
	c2, s2 := math.Cos(l.Angle2), math.Sin(l.Angle2)
	n1, n2 := l.Plane1.bivec, l.Plane2.bivec
	return Rotor4{
		c:     c1 * c2,
		bivec: n1.Scaled(s1 * c2).Add(n2.Scaled(c1 * s2)),
		xyzw:  s1 * s2 * n1.Wedge(n2),
	}
}

// Log decomposes the rotor into rotation planes and angles. Four regimes:
// no pseudoscalar part means a single plane; a vanishing scalar part with
// no bivector means a fully isoclinic rotor whose planes are ambiguous
// (the xy/zw pair is chosen); a vanishing scalar part with a bivector
// pins one angle at pi/2 with the second plane the complement of the
// first; otherwise the bivector part factors and the two angles are
// recovered from the scalar and pseudoscalar parts by sum and difference.
// Returns ErrNotSimple if factorization drifts past the tolerance.
func (r Rotor4) Log() (RotorLog4, error) {
	bmag := math.Sqrt(r.bivec.Dot(r.bivec))

	switch {
	case math.Abs(r.xyzw) < Epsilon:
		s, err := r.bivec.Simple()
		if err != nil {
			return RotorLog4{}, err
		}
		if bmag < 1e-12 && r.c < 0 {
			// A full-turn rotor: the angle is pi but the plane is lost.
			return RotorLog4{
				Kind:   LogSimple,
				Plane1: forceSimple(Bivec4{XY: 1}),
				Angle1: math.Pi,
			}, nil
		}
		return RotorLog4{
			Kind:   LogSimple,
			Plane1: s.Normalized(),
			Angle1: math.Atan2(bmag, r.c),
		}, nil

	case math.Abs(r.c) < Epsilon && bmag < Epsilon:
		// Fully isoclinic: every choice of first plane works.
		p1 := forceSimple(Bivec4{XY: 1})
		p2 := forceSimple(Bivec4{ZW: math.Copysign(1, r.xyzw)})
		return RotorLog4{
			Kind:   LogDoubleRotation,
			Plane1: p1, Angle1: math.Pi / 2,
			Plane2: p2, Angle2: math.Pi / 2,
		}, nil

	case math.Abs(r.c) < Epsilon:
		// One angle is pi/2; the bivector part collapses onto the other
		// plane's complement.
		s, err := r.bivec.Simple()
		if err != nil {
			return RotorLog4{}, err
		}
		n1 := s.Normalized()
		n2 := forceSimple(n1.bivec.dual().Neg())
		return RotorLog4{
			Kind:   LogDoubleRotation,
			Plane1: n1, Angle1: math.Pi / 2,
			Plane2: n2, Angle2: math.Atan2(r.xyzw, bmag),
		}, nil

	default:
		b1, b2, err := r.bivec.Factor()
		if err != nil {
			return RotorLog4{}, err
		}
		a1, a2 := b1.Magnitude(), b2.Magnitude()
		n1, n2 := b1.Normalized(), b2.Normalized()
		w := n1.bivec.Wedge(n2.bivec)
		p := r.xyzw * w
		sum := math.Atan2(a1+a2, r.c-p)
		diff := math.Atan2(a1-a2, r.c+p)
		return RotorLog4{
			Kind:   LogDoubleRotation,
			Plane1: n1, Angle1: (sum + diff) / 2,
			Plane2: n2, Angle2: (sum - diff) / 2,
		}, nil
	}
}

// Pow raises the rotor to a scalar power through its logarithm, so
// Pow(0.5) is the half rotation and Pow(-1) the inverse.
func (r Rotor4) Pow(t float64) (Rotor4, error) {
	l, err := r.Log()
	if err != nil {
		return Rotor4{}, err
	}
	return l.Scaled(t).Exp(), nil
}

// InterpolateWith moves a fraction of the way from r to o along the
// geodesic, i.e. r composed with (r^-1 o)^fraction. Inputs whose relative
// rotor cannot be decomposed fall back to the nearer endpoint, so
// animation loops always get a usable value.
func (r Rotor4) InterpolateWith(o Rotor4, fraction float64) Rotor4 {
	delta, err := r.Inverse().Compose(o).Pow(fraction)
	if err != nil {
		if fraction < 0.5 {
			return r
		}
		return o
	}
	return r.Compose(delta)
}
