// Package forge builds expression trees from Go geometry values.
//
// Embedding programs that generate shaders from computed data (transform
// matrices, precomputed directions, kernel constants) use these builders
// to splice vectors and matrices into a shader tree as GLSL constructor
// calls:
//
//	axis := forge.Vec3(ms3.Vec{X: 0, Y: 1, Z: 0})
//	tree := sexp.List(sexp.Sym("set!"), sexp.Sym("up"), axis)
//
// Matrix builders emit constructor arguments in column-major order, as
// the GLSL matN constructors expect.
package forge

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"

	"github.com/gerred/penumbra/sexp"
)

// Vec2 builds a vec2 constructor call from a 2D vector.
func Vec2(v ms2.Vec) sexp.Node {
	arr := v.Array()
	return sexp.List(sexp.Sym("vec2"), sexp.Float(arr[0]), sexp.Float(arr[1]))
}

// Vec3 builds a vec3 constructor call from a 3D vector.
func Vec3(v ms3.Vec) sexp.Node {
	arr := v.Array()
	return sexp.List(sexp.Sym("vec3"), sexp.Float(arr[0]), sexp.Float(arr[1]), sexp.Float(arr[2]))
}

// Vec4 builds a vec4 constructor call from four components.
func Vec4(x, y, z, w float32) sexp.Node {
	return sexp.List(sexp.Sym("vec4"), sexp.Float(x), sexp.Float(y), sexp.Float(z), sexp.Float(w))
}

// Mat2 builds a mat2 constructor call from a 2x2 matrix.
func Mat2(m ms2.Mat2) sexp.Node {
	arr := m.Array()
	return matCall("mat2", 2, arr[:])
}

// Mat3 builds a mat3 constructor call from a 3x3 matrix.
func Mat3(m ms3.Mat3) sexp.Node {
	arr := m.Array()
	return matCall("mat3", 3, arr[:])
}

// Mat4 builds a mat4 constructor call from a 4x4 matrix.
func Mat4(m ms3.Mat4) sexp.Node {
	arr := m.Array()
	return matCall("mat4", 4, arr[:])
}

// matCall lays out an n x n row-major element array as a GLSL constructor
// call, reading column-major as per the OpenGL standard.
func matCall(typename string, n int, arr []float32) sexp.Node {
	args := make([]sexp.Node, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			args = append(args, sexp.Float(arr[j*n+i]))
		}
	}
	return sexp.List(sexp.Sym(typename), args...)
}

// Radians converts degrees to radians for use with the rotation
// constructors in ms2 and ms3.
func Radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
