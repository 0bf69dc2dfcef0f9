package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tessera-dev/tessera4d/la"
)

func TestCross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	assert.Equal(t, V3(0, 0, 1), got, "right-handed basis")
	got = V3(1, 2, 3).Cross(V3(4, 5, 6))
	assert.Equal(t, V3(-3, 6, -3), got, "general cross product")
}

func TestLiftProject(t *testing.T) {
	v := V3(1, 2, 3)
	assert.Equal(t, V4(1, 2, 3, -0.5), v.Lift(-0.5), "lift appends w")
	assert.Equal(t, v, v.Lift(-0.5).Project(), "project inverts lift")
	assert.Equal(t, -0.5, v.Lift(-0.5).Depth(), "depth is the lifted coordinate")

	u := V2(4, 5)
	assert.Equal(t, V3(4, 5, 2), u.Lift(2), "lift appends z")
	assert.Equal(t, u, u.Lift(2).Project(), "project inverts lift")
}

func TestNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, V4(3, 0, 4, 0).Normalized().Norm(), 1e-12, "unit length")
	assert.Equal(t, V4(0, 0, 0, 0), V4(0, 0, 0, 0).Normalized(), "zero stays zero")
}

func TestLerp(t *testing.T) {
	got := la.Lerp(V2(0, 0), V2(2, 4), 0.25)
	assert.Equal(t, V2(0.5, 1), got, "quarter point")
}

func TestMat4(t *testing.T) {
	id := Mat4{}.Identity()
	v := V4(1, -2, 3, 4)
	assert.Equal(t, v, id.MulVec(v), "identity")

	// Column-major: column j is the image of basis vector j.
	m := Mat4{}.FromColumns([4][4]float64{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	assert.Equal(t, V4(-2, 1, 0, 0), m.MulVec(V4(1, 2, 0, 0)), "xy rotation matrix")
	assert.Equal(t, V4(0, 1, 0, 0), m.Mul(id).MulVec(V4(1, 0, 0, 0)), "product")
}
