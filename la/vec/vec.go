// Package vec is the reference implementation of the la interfaces:
// plain float64 value types with value receivers. Engine adapters are
// expected to provide their own equivalents; nothing outside the tests,
// the command-line tools, and examples needs this package.
package vec

import (
	"math"

	"github.com/tessera-dev/tessera4d/la"
)

// Compile-time interface checks.
var (
	_ la.Vector2[Vec2]     = Vec2{}
	_ la.Vector3[Vec3]     = Vec3{}
	_ la.Vector4[Vec4]     = Vec4{}
	_ la.Matrix4[Mat4, Vec4] = Mat4{}
	_ la.Liftable[Vec3]    = Vec2{}
	_ la.Liftable[Vec4]    = Vec3{}
	_ la.Projectable[Vec2] = Vec3{}
	_ la.Projectable[Vec3] = Vec4{}
)

type Vec2 struct {
	x, y float64
}

type Vec3 struct {
	x, y, z float64
}

type Vec4 struct {
	x, y, z, w float64
}

func V2(x, y float64) Vec2       { return Vec2{x, y} }
func V3(x, y, z float64) Vec3    { return Vec3{x, y, z} }
func V4(x, y, z, w float64) Vec4 { return Vec4{x, y, z, w} }

func (v Vec2) Make(x, y float64) Vec2 { return Vec2{x, y} }
func (v Vec2) X() float64             { return v.x }
func (v Vec2) Y() float64             { return v.y }

func (v Vec2) Add(u Vec2) Vec2        { return Vec2{v.x + u.x, v.y + u.y} }
func (v Vec2) Sub(u Vec2) Vec2        { return Vec2{v.x - u.x, v.y - u.y} }
func (v Vec2) Scaled(s float64) Vec2  { return Vec2{v.x * s, v.y * s} }
func (v Vec2) Dot(u Vec2) float64     { return v.x*u.x + v.y*u.y }
func (v Vec2) Norm() float64          { return math.Sqrt(v.Dot(v)) }

func (v Vec2) Normalized() Vec2 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scaled(1 / n)
}

// Lift appends z as the new highest coordinate.
func (v Vec2) Lift(depth float64) Vec3 { return Vec3{v.x, v.y, depth} }

func (v Vec3) Make(x, y, z float64) Vec3 { return Vec3{x, y, z} }
func (v Vec3) X() float64                { return v.x }
func (v Vec3) Y() float64                { return v.y }
func (v Vec3) Z() float64                { return v.z }

func (v Vec3) Add(u Vec3) Vec3       { return Vec3{v.x + u.x, v.y + u.y, v.z + u.z} }
func (v Vec3) Sub(u Vec3) Vec3       { return Vec3{v.x - u.x, v.y - u.y, v.z - u.z} }
func (v Vec3) Scaled(s float64) Vec3 { return Vec3{v.x * s, v.y * s, v.z * s} }
func (v Vec3) Dot(u Vec3) float64    { return v.x*u.x + v.y*u.y + v.z*u.z }
func (v Vec3) Norm() float64         { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.y*u.z - v.z*u.y,
		v.z*u.x - v.x*u.z,
		v.x*u.y - v.y*u.x,
	}
}

func (v Vec3) Normalized() Vec3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scaled(1 / n)
}

// Lift appends w as the new highest coordinate.
func (v Vec3) Lift(depth float64) Vec4 { return Vec4{v.x, v.y, v.z, depth} }

// Project drops the z coordinate.
func (v Vec3) Project() Vec2 { return Vec2{v.x, v.y} }

// Depth is the coordinate Project drops.
func (v Vec3) Depth() float64 { return v.z }

func (v Vec4) Make(x, y, z, w float64) Vec4 { return Vec4{x, y, z, w} }
func (v Vec4) X() float64                   { return v.x }
func (v Vec4) Y() float64                   { return v.y }
func (v Vec4) Z() float64                   { return v.z }
func (v Vec4) W() float64                   { return v.w }

func (v Vec4) Add(u Vec4) Vec4       { return Vec4{v.x + u.x, v.y + u.y, v.z + u.z, v.w + u.w} }
func (v Vec4) Sub(u Vec4) Vec4       { return Vec4{v.x - u.x, v.y - u.y, v.z - u.z, v.w - u.w} }
func (v Vec4) Scaled(s float64) Vec4 { return Vec4{v.x * s, v.y * s, v.z * s, v.w * s} }
func (v Vec4) Dot(u Vec4) float64    { return v.x*u.x + v.y*u.y + v.z*u.z + v.w*u.w }
func (v Vec4) Norm() float64         { return math.Sqrt(v.Dot(v)) }

func (v Vec4) Normalized() Vec4 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scaled(1 / n)
}

// Project drops the w coordinate.
func (v Vec4) Project() Vec3 { return Vec3{v.x, v.y, v.z} }

// Depth is the coordinate Project drops.
func (v Vec4) Depth() float64 { return v.w }

// Mat4 is a column-major 4x4 matrix.
type Mat4 struct {
	cols [4][4]float64
}

func (m Mat4) Identity() Mat4 {
	return Mat4{[4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (m Mat4) FromColumns(cols [4][4]float64) Mat4 { return Mat4{cols} }

// Columns returns the column-major array backing the matrix.
func (m Mat4) Columns() [4][4]float64 { return m.cols }

func (m Mat4) MulVec(v Vec4) Vec4 {
	var out [4]float64
	in := [4]float64{v.x, v.y, v.z, v.w}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out[i] += m.cols[j][i] * in[j]
		}
	}
	return Vec4{out[0], out[1], out[2], out[3]}
}

func (m Mat4) Mul(o Mat4) Mat4 {
	var out [4][4]float64
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			for k := 0; k < 4; k++ {
				out[j][i] += m.cols[k][i] * o.cols[j][k]
			}
		}
	}
	return Mat4{out}
}
