package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessera-dev/tessera4d/ga"
	"github.com/tessera-dev/tessera4d/la/vec"
	"github.com/tessera-dev/tessera4d/transform"
)

func TestJoin(t *testing.T) {
	m1 := &TriangleMesh[vec.Vec2]{
		Vertices:  []vec.Vec2{vec.V2(0, 0), vec.V2(1, 0), vec.V2(0, 1)},
		Triangles: [][3]int{{0, 1, 2}},
	}
	m2 := &TriangleMesh[vec.Vec2]{
		Vertices:  []vec.Vec2{vec.V2(2, 0), vec.V2(3, 0), vec.V2(2, 1)},
		Triangles: [][3]int{{0, 1, 2}},
	}
	m1.Join(m2)
	assert.Equal(t, 6, len(m1.Vertices), "vertices concatenated")
	assert.Equal(t, [][3]int{{0, 1, 2}, {3, 4, 5}}, m1.Triangles, "indices offset")
}

func TestInvert(t *testing.T) {
	m := &TriangleMesh[vec.Vec2]{
		Vertices:  []vec.Vec2{vec.V2(0, 0), vec.V2(1, 0), vec.V2(0, 1)},
		Triangles: [][3]int{{0, 1, 2}},
	}
	before := triangleSign([3]vec.Vec2{m.Vertices[0], m.Vertices[1], m.Vertices[2]})
	m.Invert()
	tri := m.Triangles[0]
	after := triangleSign([3]vec.Vec2{m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]})
	assert.Equal(t, -before, after, "winding flips")
	m.Invert()
	assert.Equal(t, [3]int{0, 1, 2}, m.Triangles[0], "double inversion restores")
}

func TestApplyTransform(t *testing.T) {
	m := TesseractCube[vec.Vec4, vec.Vec3, vec.Vec2](1)
	tr := transform.RotateScaleTranslate4[vec.Vec4]{
		Rotation:    ga.FromBivecAngles(ga.Bivec4{XY: math.Pi / 2}),
		Scale:       2,
		Translation: vec.V4(1, 0, 0, 0),
	}
	m.ApplyTransform(tr)
	// The +x/+y/+z/+w corner maps under rotate, scale, translate.
	got := m.Vertices[0]
	assert.InDelta(t, 0.0, got.X(), 1e-9, "x")
	assert.InDelta(t, 1.0, got.Y(), 1e-9, "y")
	assert.InDelta(t, 1.0, got.Z(), 1e-9, "z")
	assert.InDelta(t, 1.0, got.W(), 1e-9, "w")
}

func TestCubeShellClosed(t *testing.T) {
	m := CubeShell[vec.Vec3](1)
	assert.True(t, triangleMeshClosed(m), "every edge shared by two triangles")
}

func TestCubeShellLineIntersect(t *testing.T) {
	m := CubeShell[vec.Vec3](1)
	dirs := []vec.Vec3{
		vec.V3(1, 0, 0),
		vec.V3(0, 1, 0),
		vec.V3(0, 0, 1),
		vec.V3(1, 1, 1),
		vec.V3(-0.3, 0.8, 0.2),
	}
	// Pairwise-distinct components keep the line off the face diagonals.
	offset := vec.V3(1.3e-4, 0.7e-4, 0.23e-4)
	for _, dir := range dirs {
		assert.Equal(t, 2, lineIntersectCount(m, dir, offset),
			"two crossings through a closed shell")
	}
}

func TestCircle(t *testing.T) {
	m := Circle[vec.Vec2](1, 8)
	assert.Equal(t, 8, len(m.Vertices), "one vertex per side")
	assert.Equal(t, 6, len(m.Triangles), "fan triangulation")
	// Same winding as the rectangle primitive.
	rect := Rectangle[vec.Vec2](vec.V2(1, 1))
	rectSign := triangleSign([3]vec.Vec2{
		rect.Vertices[rect.Triangles[0][0]],
		rect.Vertices[rect.Triangles[0][1]],
		rect.Vertices[rect.Triangles[0][2]],
	})
	for _, tri := range m.Triangles {
		got := triangleSign([3]vec.Vec2{
			m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]],
		})
		assert.Equal(t, rectSign, got, "consistent winding")
	}
}
