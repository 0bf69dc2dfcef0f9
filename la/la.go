/*Package la declares the interfaces that let the rest of the library be
written once against any linear-algebra implementation.

Engine adapters satisfy these constraints with their own vector and matrix
types so that no conversion happens at the boundary. The la/vec package is
the reference implementation used by the tests and the command-line tools.

The zero value of a vector type must be the zero vector.
*/
package la

// Vector is the common constraint for vector types of any dimension.
type Vector[V any] interface {
	Add(V) V
	Scaled(float64) V
	Dot(V) float64
	Normalized() V
}

// Vector2 is the constraint for two-component vectors.
type Vector2[V any] interface {
	Vector[V]
	// Make constructs a vector from components. The receiver is only used
	// for dispatch and may be the zero value.
	Make(x, y float64) V
	X() float64
	Y() float64
}

// Vector3 is the constraint for three-component vectors.
type Vector3[V any] interface {
	Vector[V]
	Make(x, y, z float64) V
	X() float64
	Y() float64
	Z() float64
	Cross(V) V
}

// Vector4 is the constraint for four-component vectors.
type Vector4[V any] interface {
	Vector[V]
	Make(x, y, z, w float64) V
	X() float64
	Y() float64
	Z() float64
	W() float64
}

// Matrix4 is the constraint for 4x4 matrices paired with the vector type V.
type Matrix4[M, V any] interface {
	// Identity returns the identity matrix. The receiver is only used for
	// dispatch and may be the zero value.
	Identity() M
	// FromColumns constructs a matrix from a column-major array.
	FromColumns(cols [4][4]float64) M
	MulVec(V) V
}

// Liftable is satisfied by vectors that can be raised one dimension by
// appending a new highest coordinate. Inverse of Projectable.
type Liftable[Up any] interface {
	Lift(depth float64) Up
}

// Projectable is satisfied by vectors that can be dropped one dimension by
// removing the highest coordinate. Inverse of Liftable.
type Projectable[Down any] interface {
	// Project removes the highest coordinate.
	Project() Down
	// Depth is the signed distance from the projection hyperplane, i.e.
	// the highest coordinate.
	Depth() float64
}

// Lerp linearly interpolates between two vectors. fraction 0 gives a,
// fraction 1 gives b.
func Lerp[V Vector[V]](a, b V, fraction float64) V {
	return a.Scaled(1 - fraction).Add(b.Scaled(fraction))
}
