// Package transform implements the affine transform used to position 4D
// objects: a rotation, a uniform scale, and a translation, applied in
// that order.
package transform

import (
	"github.com/tessera-dev/tessera4d/ga"
	"github.com/tessera-dev/tessera4d/la"
)

// RotateScaleTranslate4 is rotation followed by uniform scaling followed
// by translation. Uniform scale keeps the class closed under composition
// and inversion.
type RotateScaleTranslate4[V la.Vector4[V]] struct {
	Rotation    ga.Rotor4
	Scale       float64
	Translation V
}

// Identity4 returns the transform that maps every point to itself.
func Identity4[V la.Vector4[V]]() RotateScaleTranslate4[V] {
	var zero V
	return RotateScaleTranslate4[V]{
		Rotation:    ga.IdentityRotor4(),
		Scale:       1,
		Translation: zero,
	}
}

// Transform maps a point.
func (t RotateScaleTranslate4[V]) Transform(point V) V {
	return ga.Apply(t.Rotation, point).Scaled(t.Scale).Add(t.Translation)
}

// TransformDirection maps a direction, ignoring scale and translation.
func (t RotateScaleTranslate4[V]) TransformDirection(dir V) V {
	return ga.Apply(t.Rotation, dir)
}

// Rotated applies a further rotation to the whole transform. The
// translation rotates too, so the transform's image moves rigidly.
func (t RotateScaleTranslate4[V]) Rotated(r ga.Rotor4) RotateScaleTranslate4[V] {
	return RotateScaleTranslate4[V]{
		Rotation:    t.Rotation.Compose(r),
		Scale:       t.Scale,
		Translation: ga.Apply(r, t.Translation),
	}
}

// Scaled applies a further uniform scale around the origin.
func (t RotateScaleTranslate4[V]) Scaled(s float64) RotateScaleTranslate4[V] {
	return RotateScaleTranslate4[V]{
		Rotation:    t.Rotation,
		Scale:       t.Scale * s,
		Translation: t.Translation.Scaled(s),
	}
}

// Translated applies a further translation.
func (t RotateScaleTranslate4[V]) Translated(offset V) RotateScaleTranslate4[V] {
	return RotateScaleTranslate4[V]{
		Rotation:    t.Rotation,
		Scale:       t.Scale,
		Translation: t.Translation.Add(offset),
	}
}

// Compose returns the transform equivalent to applying t first and then
// other.
func (t RotateScaleTranslate4[V]) Compose(other RotateScaleTranslate4[V]) RotateScaleTranslate4[V] {
	return t.Rotated(other.Rotation).
		Scaled(other.Scale).
		Translated(other.Translation)
}

// Inverse returns the transform undoing t. The scale must be nonzero.
func (t RotateScaleTranslate4[V]) Inverse() RotateScaleTranslate4[V] {
	rot := t.Rotation.Inverse()
	return RotateScaleTranslate4[V]{
		Rotation:    rot,
		Scale:       1 / t.Scale,
		Translation: ga.Apply(rot, t.Translation.Scaled(-1/t.Scale)),
	}
}

// InterpolateWith moves a fraction of the way from t to other: the
// rotation along its geodesic, scale and translation linearly.
func (t RotateScaleTranslate4[V]) InterpolateWith(
	other RotateScaleTranslate4[V], fraction float64,
) RotateScaleTranslate4[V] {
	return RotateScaleTranslate4[V]{
		Rotation:    t.Rotation.InterpolateWith(other.Rotation, fraction),
		Scale:       t.Scale + (other.Scale-t.Scale)*fraction,
		Translation: la.Lerp(t.Translation, other.Translation, fraction),
	}
}

// Matrix returns the rotation and scale as a column-major 4x4 array. The
// translation is not representable in a plain 4x4 matrix and must be
// added separately.
func (t RotateScaleTranslate4[V]) Matrix() [4][4]float64 {
	m := t.Rotation.Matrix()
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			m[j][i] *= t.Scale
		}
	}
	return m
}
