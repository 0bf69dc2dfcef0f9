package mesh

import "github.com/tessera-dev/tessera4d/la"

// Extrude raises a triangle mesh into a tetrahedron mesh one dimension
// higher. The result spans height in the new dimension, centered on
// zero. Each triangle becomes a prism decomposed into three tetrahedra
// whose handedness matches the source triangle's winding.
func Extrude[V la.Liftable[Up], Up any](m *TriangleMesh[V], height float64) *TetrahedronMesh[Up] {
	depth := height / 2
	n := len(m.Vertices)
	vertices := make([]Up, 0, 2*n)
	for _, v := range m.Vertices {
		vertices = append(vertices, v.Lift(depth))
	}
	for _, v := range m.Vertices {
		vertices = append(vertices, v.Lift(-depth))
	}

	tetrahedra := make([][4]int, 0, 3*len(m.Triangles))
	for _, f := range m.Triangles {
		tetrahedra = append(tetrahedra,
			[4]int{f[0], f[2], f[1], f[0] + n},
			[4]int{f[2], f[1], f[0] + n, f[2] + n},
			[4]int{f[0] + n, f[1] + n, f[2] + n, f[1]},
		)
	}
	return &TetrahedronMesh[Up]{Vertices: vertices, Tetrahedra: tetrahedra}
}

// LiftTriangleMesh raises every vertex into the next dimension at the
// given depth, leaving the triangles untouched.
func LiftTriangleMesh[V la.Liftable[Up], Up any](m *TriangleMesh[V], depth float64) *TriangleMesh[Up] {
	vertices := make([]Up, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = v.Lift(depth)
	}
	triangles := make([][3]int, len(m.Triangles))
	copy(triangles, m.Triangles)
	return &TriangleMesh[Up]{Vertices: vertices, Triangles: triangles}
}

// LiftTetrahedronMesh raises every vertex into the next dimension at the
// given depth, leaving the tetrahedra untouched.
func LiftTetrahedronMesh[V la.Liftable[Up], Up any](m *TetrahedronMesh[V], depth float64) *TetrahedronMesh[Up] {
	vertices := make([]Up, len(m.Vertices))
	for i, v := range m.Vertices {
		vertices[i] = v.Lift(depth)
	}
	tetrahedra := make([][4]int, len(m.Tetrahedra))
	copy(tetrahedra, m.Tetrahedra)
	return &TetrahedronMesh[Up]{Vertices: vertices, Tetrahedra: tetrahedra}
}
