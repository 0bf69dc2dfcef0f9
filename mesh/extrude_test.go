package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessera-dev/tessera4d/la/vec"
)

func extrudeFixture(verts [3]vec.Vec2) *TriangleMesh[vec.Vec2] {
	return &TriangleMesh[vec.Vec2]{
		Vertices:  []vec.Vec2{verts[0], verts[1], verts[2]},
		Triangles: [][3]int{{0, 2, 1}},
	}
}

func tetSigns(m *TetrahedronMesh[vec.Vec3]) []float64 {
	signs := make([]float64, len(m.Tetrahedra))
	for i, tet := range m.Tetrahedra {
		signs[i] = tetrahedronSign([4]vec.Vec3{
			m.Vertices[tet[0]], m.Vertices[tet[1]],
			m.Vertices[tet[2]], m.Vertices[tet[3]],
		})
	}
	return signs
}

func triSigns(m *TriangleMesh[vec.Vec2]) []float64 {
	signs := make([]float64, len(m.Triangles))
	for i, tri := range m.Triangles {
		signs[i] = triangleSign([3]vec.Vec2{
			m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]],
		})
	}
	return signs
}

func TestExtrudePreservesLeftHandedness(t *testing.T) {
	trimesh := extrudeFixture([3]vec.Vec2{vec.V2(0, 0), vec.V2(1, 0), vec.V2(0, 1)})
	tetmesh := Extrude[vec.Vec2, vec.Vec3](trimesh, 1)
	assert.Equal(t, 3, len(tetmesh.Tetrahedra), "prism decomposition")
	for _, s := range tetSigns(tetmesh) {
		assert.Equal(t, -1.0, s, "left-handed tetrahedra")
	}
}

func TestExtrudePreservesRightHandedness(t *testing.T) {
	trimesh := extrudeFixture([3]vec.Vec2{vec.V2(0, 0), vec.V2(0, 1), vec.V2(1, 0)})
	tetmesh := Extrude[vec.Vec2, vec.Vec3](trimesh, 1)
	for _, s := range tetSigns(tetmesh) {
		assert.Equal(t, 1.0, s, "right-handed tetrahedra")
	}
}

func TestExtrudeThenCrossSectionPreservesLeftHandedness(t *testing.T) {
	trimesh := extrudeFixture([3]vec.Vec2{vec.V2(0, 0), vec.V2(1, 0), vec.V2(0, 1)})
	got := CrossSection[vec.Vec3, vec.Vec2](Extrude[vec.Vec2, vec.Vec3](trimesh, 1))
	assert.NotEmpty(t, got.Triangles, "section exists")
	for _, s := range triSigns(got) {
		assert.Equal(t, -1.0, s, "left-handed triangles")
	}
}

func TestExtrudeThenCrossSectionPreservesRightHandedness(t *testing.T) {
	trimesh := extrudeFixture([3]vec.Vec2{vec.V2(0, 0), vec.V2(0, 1), vec.V2(1, 0)})
	got := CrossSection[vec.Vec3, vec.Vec2](Extrude[vec.Vec2, vec.Vec3](trimesh, 1))
	assert.NotEmpty(t, got.Triangles, "section exists")
	for _, s := range triSigns(got) {
		assert.Equal(t, 1.0, s, "right-handed triangles")
	}
}

func TestExtrudedSquareCrossSection(t *testing.T) {
	square := Square[vec.Vec2](1)
	got := CrossSection[vec.Vec3, vec.Vec2](Extrude[vec.Vec2, vec.Vec3](square, 1))
	assert.NotEmpty(t, got.Triangles, "section exists")
	for _, s := range triSigns(got) {
		assert.Equal(t, -1.0, s, "winding matches the extruded solid")
	}
}

func TestLiftMesh(t *testing.T) {
	square := Square[vec.Vec2](2)
	lifted := LiftTriangleMesh[vec.Vec2, vec.Vec3](square, 0.25)
	for _, v := range lifted.Vertices {
		assert.Equal(t, 0.25, v.Z(), "depth becomes the new coordinate")
	}
	assert.Equal(t, square.Triangles, lifted.Triangles, "indices unchanged")

	solid := Cube[vec.Vec3, vec.Vec2](1)
	lifted4 := LiftTetrahedronMesh[vec.Vec3, vec.Vec4](solid, -0.5)
	for _, v := range lifted4.Vertices {
		assert.Equal(t, -0.5, v.W(), "depth becomes the new coordinate")
	}
	assert.Equal(t, solid.Tetrahedra, lifted4.Tetrahedra, "indices unchanged")

	// Inverting the lifted copy must not touch the source.
	before := append([][4]int(nil), solid.Tetrahedra...)
	lifted4.Invert()
	assert.Equal(t, before, solid.Tetrahedra, "lift copies the index slice")
}
