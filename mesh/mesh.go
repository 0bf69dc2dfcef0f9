/*Package mesh implements simplicial meshes over caller-supplied vector
types and the operations that move them between dimensions: extrusion,
orthographic lift, and cross-section.

A mesh is a flat vertex slice plus index tuples. Simplex orientation is
meaningful everywhere: extrusion and cross-section both preserve the
handedness of their input simplexes, so a consistently wound solid stays
consistently wound through a full build-transform-slice pipeline.
*/
package mesh

// Transform maps vertices; satisfied by transform.RotateScaleTranslate4
// and by anything else with a Transform method over V.
type Transform[V any] interface {
	Transform(V) V
}

// TriangleMesh is a mesh of 2-simplexes. Vertex uniqueness is not
// required, but shared vertices keep the mesh smaller.
type TriangleMesh[V any] struct {
	Vertices  []V
	Triangles [][3]int
}

// TetrahedronMesh is a mesh of 3-simplexes.
type TetrahedronMesh[V any] struct {
	Vertices   []V
	Tetrahedra [][4]int
}

// ApplyTransform transforms every vertex in place.
func (m *TriangleMesh[V]) ApplyTransform(t Transform[V]) *TriangleMesh[V] {
	for i, v := range m.Vertices {
		m.Vertices[i] = t.Transform(v)
	}
	return m
}

// Invert flips every triangle front to back in place.
func (m *TriangleMesh[V]) Invert() *TriangleMesh[V] {
	for i := range m.Triangles {
		m.Triangles[i][0], m.Triangles[i][1] = m.Triangles[i][1], m.Triangles[i][0]
	}
	return m
}

// Join appends another mesh's geometry. No attempt is made to merge
// duplicate vertices or remove internal geometry.
func (m *TriangleMesh[V]) Join(other *TriangleMesh[V]) *TriangleMesh[V] {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, tri := range other.Triangles {
		m.Triangles = append(m.Triangles,
			[3]int{tri[0] + offset, tri[1] + offset, tri[2] + offset})
	}
	return m
}

// ApplyTransform transforms every vertex in place.
func (m *TetrahedronMesh[V]) ApplyTransform(t Transform[V]) *TetrahedronMesh[V] {
	for i, v := range m.Vertices {
		m.Vertices[i] = t.Transform(v)
	}
	return m
}

// Invert turns every tetrahedron inside out in place.
func (m *TetrahedronMesh[V]) Invert() *TetrahedronMesh[V] {
	for i := range m.Tetrahedra {
		m.Tetrahedra[i][0], m.Tetrahedra[i][1] = m.Tetrahedra[i][1], m.Tetrahedra[i][0]
	}
	return m
}

// Join appends another mesh's geometry. No attempt is made to merge
// duplicate vertices or remove internal geometry.
func (m *TetrahedronMesh[V]) Join(other *TetrahedronMesh[V]) *TetrahedronMesh[V] {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, tet := range other.Tetrahedra {
		m.Tetrahedra = append(m.Tetrahedra,
			[4]int{tet[0] + offset, tet[1] + offset, tet[2] + offset, tet[3] + offset})
	}
	return m
}
