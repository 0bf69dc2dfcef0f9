package mesh

import (
	"math"

	"github.com/tessera-dev/tessera4d/la/vec"
)

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// triangleSign is the handedness of a 2D triangle: +1 for one winding,
// -1 for the other, 0 for degenerate triangles.
func triangleSign(tri [3]vec.Vec2) float64 {
	a := tri[0].Sub(tri[1])
	b := tri[2].Sub(tri[1])
	return sign(a.X()*b.Y() - a.Y()*b.X())
}

// tetrahedronSign is the handedness of a 3D tetrahedron, by the signed
// volume of its edge vectors.
func tetrahedronSign(tet [4]vec.Vec3) float64 {
	return sign(tet[1].Sub(tet[0]).Cross(tet[2].Sub(tet[0])).Dot(tet[3].Sub(tet[0])))
}

// triangleMeshClosed reports whether every edge is shared by exactly two
// triangles. Only meaningful when vertices are not duplicated.
func triangleMeshClosed[V any](m *TriangleMesh[V]) bool {
	edges := make(map[[2]int]int)
	insert := func(i, j int) {
		if j < i {
			i, j = j, i
		}
		edges[[2]int{i, j}]++
	}
	for _, tri := range m.Triangles {
		insert(tri[0], tri[1])
		insert(tri[0], tri[2])
		insert(tri[1], tri[2])
	}
	for _, count := range edges {
		if count != 2 {
			return false
		}
	}
	return true
}

// lineTriangleIntersect reports whether the line through offset along
// dir passes through the triangle.
func lineTriangleIntersect(tri [3]vec.Vec3, dir, offset vec.Vec3) bool {
	// A length guaranteed to put both endpoints beyond the triangle.
	far := math.Inf(-1)
	for _, v := range tri {
		far = math.Max(far, v.Norm())
	}
	mag := 2 * (far + offset.Norm())
	d := dir.Normalized()
	l1 := d.Scaled(mag).Add(offset)
	l2 := d.Scaled(-mag).Add(offset)

	oppositeSides := tetrahedronSign([4]vec.Vec3{l1, tri[0], tri[1], tri[2]}) !=
		tetrahedronSign([4]vec.Vec3{l2, tri[0], tri[1], tri[2]})
	insideSign := tetrahedronSign([4]vec.Vec3{l1, l2, tri[0], tri[1]})
	return oppositeSides &&
		tetrahedronSign([4]vec.Vec3{l1, l2, tri[1], tri[2]}) == insideSign &&
		tetrahedronSign([4]vec.Vec3{l1, l2, tri[2], tri[0]}) == insideSign
}

// lineIntersectCount counts the triangles the line passes through. Even
// counts along every line are strong evidence of a closed surface.
func lineIntersectCount(m *TriangleMesh[vec.Vec3], dir, offset vec.Vec3) int {
	count := 0
	for _, tri := range m.Triangles {
		verts := [3]vec.Vec3{
			m.Vertices[tri[0]],
			m.Vertices[tri[1]],
			m.Vertices[tri[2]],
		}
		if lineTriangleIntersect(verts, dir, offset) {
			count++
		}
	}
	return count
}
