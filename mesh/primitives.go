package mesh

import (
	"math"

	"github.com/tessera-dev/tessera4d/la"
)

// Rectangle builds a filled rectangle with the given side lengths,
// centered at the origin. Both triangles are wound clockwise.
func Rectangle[V la.Vector2[V]](size V) *TriangleMesh[V] {
	var zero V
	x, y := size.X()/2, size.Y()/2
	return &TriangleMesh[V]{
		Vertices: []V{
			zero.Make(x, y),
			zero.Make(x, -y),
			zero.Make(-x, -y),
			zero.Make(-x, y),
		},
		Triangles: [][3]int{{0, 1, 2}, {2, 3, 0}},
	}
}

// Square builds a filled square with the given side length, centered at
// the origin.
func Square[V la.Vector2[V]](size float64) *TriangleMesh[V] {
	var zero V
	return Rectangle[V](zero.Make(size, size))
}

// Circle builds a filled regular polygon with the given radius and side
// count, centered at the origin, wound like Rectangle.
func Circle[V la.Vector2[V]](radius float64, sides int) *TriangleMesh[V] {
	var zero V
	m := &TriangleMesh[V]{}
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		m.Vertices = append(m.Vertices,
			zero.Make(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	for i := 0; i < sides-2; i++ {
		m.Triangles = append(m.Triangles, [3]int{0, i + 2, i + 1})
	}
	return m
}

// RectangularPrismShell builds the hollow surface of a rectangular prism
// with the given side lengths, centered at the origin, wound clockwise
// seen from outside.
func RectangularPrismShell[V la.Vector3[V]](size V) *TriangleMesh[V] {
	var zero V
	x, y, z := size.X()/2, size.Y()/2, size.Z()/2
	return &TriangleMesh[V]{
		Vertices: []V{
			zero.Make(x, y, z),
			zero.Make(-x, y, z),
			zero.Make(x, -y, z),
			zero.Make(-x, -y, z),
			zero.Make(x, y, -z),
			zero.Make(-x, y, -z),
			zero.Make(x, -y, -z),
			zero.Make(-x, -y, -z),
		},
		Triangles: [][3]int{
			// Top
			{0, 2, 3},
			{3, 1, 0},
			// Bottom
			{4, 7, 6},
			{4, 5, 7},
			// Left
			{0, 4, 2},
			{4, 6, 2},
			// Right
			{1, 3, 5},
			{7, 5, 3},
			// Front
			{3, 2, 6},
			{3, 6, 7},
			// Back
			{0, 1, 4},
			{4, 1, 5},
		},
	}
}

// CubeShell builds the hollow surface of a cube with the given side
// length, centered at the origin.
func CubeShell[V la.Vector3[V]](size float64) *TriangleMesh[V] {
	var zero V
	return RectangularPrismShell[V](zero.Make(size, size, size))
}

// RectangularPrism builds a solid rectangular prism with the given side
// lengths, centered at the origin, by extruding a rectangle.
func RectangularPrism[V la.Vector3[V], V2 interface {
	la.Vector2[V2]
	la.Liftable[V]
}](size V) *TetrahedronMesh[V] {
	var zero2 V2
	base := Rectangle[V2](zero2.Make(size.X(), size.Y()))
	return Extrude[V2, V](base, size.Z())
}

// Cube builds a solid cube with the given side length, centered at the
// origin.
func Cube[V la.Vector3[V], V2 interface {
	la.Vector2[V2]
	la.Liftable[V]
}](size float64) *TetrahedronMesh[V] {
	var zero V
	return RectangularPrism[V, V2](zero.Make(size, size, size))
}

// Tesseract builds the hollow shell of a 4D box with the given side
// lengths, centered at the origin: the extruded prism shell plus two
// solid end caps, with the far cap inverted so the whole shell faces
// outward consistently.
func Tesseract[V la.Vector4[V], V3 interface {
	la.Vector3[V3]
	la.Liftable[V]
}, V2 interface {
	la.Vector2[V2]
	la.Liftable[V3]
}](size V) *TetrahedronMesh[V] {
	var zero3 V3
	size3 := zero3.Make(size.X(), size.Y(), size.Z())

	shell := Extrude[V3, V](RectangularPrismShell[V3](size3), size.W())
	endcap := RectangularPrism[V3, V2](size3)
	depth := size.W() / 2
	top := LiftTetrahedronMesh[V3, V](endcap, depth).Invert()
	bottom := LiftTetrahedronMesh[V3, V](endcap, -depth)
	return shell.Join(top).Join(bottom)
}

// TesseractCube builds the hollow shell of a 4D cube with the given side
// length, centered at the origin.
func TesseractCube[V la.Vector4[V], V3 interface {
	la.Vector3[V3]
	la.Liftable[V]
}, V2 interface {
	la.Vector2[V2]
	la.Liftable[V3]
}](size float64) *TetrahedronMesh[V] {
	var zero V
	return Tesseract[V, V3, V2](zero.Make(size, size, size, size))
}
